package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuestionType ประเภทของคำถามในแบบสอบถาม
type QuestionType string

const (
	QuestionText            QuestionType = "text"
	QuestionMultipleChoice  QuestionType = "multiple_choice"
	QuestionCheckbox        QuestionType = "checkbox"
	QuestionConditionalType QuestionType = "conditional"
)

// ConditionalOperator combines the condition values of one visibility rule.
type ConditionalOperator string

const (
	OperatorAND ConditionalOperator = "AND"
	OperatorOR  ConditionalOperator = "OR"
)

// QuestionCategory — a section of the audit form. Order drives display
// sequence; ties are broken by id so rendering stays deterministic.
type QuestionCategory struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FormID primitive.ObjectID `bson:"formId" json:"formId"`
	Name   string             `bson:"name" json:"name"`
	Order  int                `bson:"order" json:"order"`
}

// Question belongs to exactly one category.
type Question struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CategoryID primitive.ObjectID `bson:"categoryId" json:"categoryId"`
	Text       string             `bson:"text" json:"text"`
	Type       QuestionType       `bson:"type" json:"type"`
	IsRequired bool               `bson:"isRequired" json:"isRequired"`
	Order      int                `bson:"order" json:"order"`
}

// QuestionOption enumerated choice for multiple_choice / checkbox questions.
type QuestionOption struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	QuestionID primitive.ObjectID `bson:"questionId" json:"questionId"`
	Text       string             `bson:"text" json:"text"`
	Value      string             `bson:"value" json:"value"`
	Order      int                `bson:"order" json:"order"`
}

// QuestionConditional — visibility rule: question QuestionID is shown or
// hidden depending on whether the answers given for ConditionQuestionID
// match ConditionValues under Operator.
type QuestionConditional struct {
	ID                  primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	QuestionID          primitive.ObjectID  `bson:"questionId" json:"questionId"`
	ConditionQuestionID primitive.ObjectID  `bson:"conditionQuestionId" json:"conditionQuestionId"`
	ConditionValues     []string            `bson:"conditionValues" json:"conditionValues"`
	ShowQuestion        bool                `bson:"showQuestion" json:"showQuestion"`
	Operator            ConditionalOperator `bson:"operator" json:"operator"`
}

// --- create/update DTOs ---

type CreateQuestionCategoryRequest struct {
	FormID string `json:"formId" validate:"required,len=24,hexadecimal"`
	Name   string `json:"name" validate:"required,max=200"`
	Order  int    `json:"order" validate:"gte=0"`
}

type CreateQuestionRequest struct {
	CategoryID string `json:"categoryId" validate:"required,len=24,hexadecimal"`
	Text       string `json:"text" validate:"required,max=2000"`
	Type       string `json:"type" validate:"required,oneof=text multiple_choice checkbox conditional"`
	IsRequired bool   `json:"isRequired"`
	Order      int    `json:"order" validate:"gte=0"`
}

type CreateQuestionOptionRequest struct {
	QuestionID string `json:"questionId" validate:"required,len=24,hexadecimal"`
	Text       string `json:"text" validate:"required,max=500"`
	Value      string `json:"value" validate:"required,max=500"`
	Order      int    `json:"order" validate:"gte=0"`
}

type CreateQuestionConditionalRequest struct {
	QuestionID          string   `json:"questionId" validate:"required,len=24,hexadecimal"`
	ConditionQuestionID string   `json:"conditionQuestionId" validate:"required,len=24,hexadecimal"`
	ConditionValues     []string `json:"conditionValues" validate:"required,min=1,dive,max=500"`
	ShowQuestion        bool     `json:"showQuestion"`
	Operator            string   `json:"operator" validate:"required,oneof=AND OR"`
}
