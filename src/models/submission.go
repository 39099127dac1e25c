package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission — one completed audit attempt. Immutable parent of Answers.
type Submission struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FormID    primitive.ObjectID `bson:"formId" json:"formId"`
	CompanyID primitive.ObjectID `bson:"companyId" json:"companyId"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
}

// Answer — one row per (submission, question, selected value). Checkbox
// questions with multiple selections produce multiple rows sharing
// (submissionId, questionId). Append-only once the submission exists.
type Answer struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SubmissionID primitive.ObjectID `bson:"submissionId" json:"submissionId"`
	QuestionID   primitive.ObjectID `bson:"questionId" json:"questionId"`
	Value        string             `bson:"value" json:"value"`
	CreatedAt    time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
}

// CompleteSubmissionRequest payload for POST /submissions/complete
type CompleteSubmissionRequest struct {
	CompanyName string   `json:"companyName" validate:"required,max=200"`
	FormData    FormData `json:"formData"`
}

// CreateAnswerRequest payload for POST /answers
type CreateAnswerRequest struct {
	SubmissionID string `json:"submissionId" validate:"required,len=24,hexadecimal"`
	QuestionID   string `json:"questionId" validate:"required,len=24,hexadecimal"`
	Value        string `json:"value" validate:"required"`
}
