package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Form ---
type Form struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// CreateFormRequest payload for POST /forms
type CreateFormRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

// FormTree is the fully-resolved questionnaire used by the survey UI:
// categories in display order, each with its questions, options and
// visibility rules.
type FormTree struct {
	Form       Form           `json:"form"`
	Categories []CategoryTree `json:"categories"`
}

type CategoryTree struct {
	Category  QuestionCategory `json:"category"`
	Questions []QuestionTree   `json:"questions"`
}

type QuestionTree struct {
	Question     Question              `json:"question"`
	Options      []QuestionOption      `json:"options,omitempty"`
	Conditionals []QuestionConditional `json:"conditionals,omitempty"`
}
