package survey

import (
	"errors"
	"log"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-AuditHub/src/models"
)

var (
	// ErrNoQuestionsFound — the payload referenced no questions at all.
	ErrNoQuestionsFound = errors.New("No valid questions found in form data")
	// ErrNoValidAnswers — everything referenced was invalid or blank.
	ErrNoValidAnswers = errors.New("No valid question found")
)

// QuestionWithForm carries a question joined to its owning category's form,
// so the mapper can reject references that cross form boundaries.
type QuestionWithForm struct {
	Question models.Question    `bson:",inline"`
	FormID   primitive.ObjectID `bson:"formId"`
}

// MappedAnswer is one validated (question, value) pair ready for insert.
type MappedAnswer struct {
	QuestionID primitive.ObjectID `json:"questionId"`
	Value      string             `json:"value"`
}

// QuestionAnswers aggregates the validated values per question.
type QuestionAnswers struct {
	QuestionID   primitive.ObjectID  `json:"questionId"`
	QuestionText string              `json:"questionText"`
	QuestionType models.QuestionType `json:"questionType"`
	Answers      []string            `json:"answers"`
	RawValue     models.AnswerValue  `json:"rawValue"`
}

// MappingResult is the mapper output handed to the submission transaction.
type MappingResult struct {
	ValidatedAnswers        []MappedAnswer    `json:"validatedAnswers"`
	Questions               []QuestionAnswers `json:"questionsWithAnswers"`
	TotalQuestionsSubmitted int               `json:"totalQuestionsSubmitted"`
	ValidQuestionsCount     int               `json:"validQuestionsCount"`
	InvalidQuestionIDs      []string          `json:"invalidQuestionIds"`
}

// ExtractQuestionIDs collects the unique question ids referenced by the
// payload, in first-seen order, plus any references that are not well-formed
// object ids. Fails with ErrNoQuestionsFound when not a single well-formed id
// is present — the payload is structurally empty.
func ExtractQuestionIDs(fields models.FormData) ([]primitive.ObjectID, []string, error) {
	var (
		ids       []primitive.ObjectID
		malformed []string
		seen      = make(map[string]bool)
	)

	for _, f := range fields {
		if seen[f.QuestionID] {
			continue
		}
		seen[f.QuestionID] = true

		oid, err := primitive.ObjectIDFromHex(f.QuestionID)
		if err != nil {
			malformed = append(malformed, f.QuestionID)
			continue
		}
		ids = append(ids, oid)
	}

	if len(ids) == 0 {
		return nil, malformed, ErrNoQuestionsFound
	}
	return ids, malformed, nil
}

// MapFormData converts the submitted payload into validated answers scoped
// to one form. questions must contain every referenced question that exists,
// joined to its category's form id. References to questions of another form,
// to unknown questions, or with malformed ids are excluded and reported in
// InvalidQuestionIDs without failing the operation; blank values are dropped
// silently.
func MapFormData(fields models.FormData, formID primitive.ObjectID, questions []QuestionWithForm) (*MappingResult, error) {
	byID := make(map[string]QuestionWithForm, len(questions))
	for _, q := range questions {
		byID[q.Question.ID.Hex()] = q
	}

	// merge duplicate references, keeping first-seen order
	var order []string
	merged := make(map[string]models.AnswerValue)
	for _, f := range fields {
		if _, ok := merged[f.QuestionID]; !ok {
			order = append(order, f.QuestionID)
		}
		merged[f.QuestionID] = append(merged[f.QuestionID], f.Value...)
	}

	if len(order) == 0 {
		return nil, ErrNoQuestionsFound
	}

	result := &MappingResult{TotalQuestionsSubmitted: len(order)}

	for _, ref := range order {
		oid, err := primitive.ObjectIDFromHex(ref)
		if err != nil {
			result.InvalidQuestionIDs = append(result.InvalidQuestionIDs, ref)
			continue
		}

		q, ok := byID[ref]
		if !ok || q.FormID != formID {
			result.InvalidQuestionIDs = append(result.InvalidQuestionIDs, ref)
			continue
		}

		qa := QuestionAnswers{
			QuestionID:   oid,
			QuestionText: q.Question.Text,
			QuestionType: q.Question.Type,
			RawValue:     merged[ref],
		}
		for _, raw := range merged[ref] {
			value := strings.TrimSpace(raw)
			if value == "" {
				continue
			}
			qa.Answers = append(qa.Answers, value)
			result.ValidatedAnswers = append(result.ValidatedAnswers, MappedAnswer{
				QuestionID: oid,
				Value:      value,
			})
		}

		result.ValidQuestionsCount++
		result.Questions = append(result.Questions, qa)
	}

	if len(result.InvalidQuestionIDs) > 0 {
		log.Printf("[mapper] excluded %d question reference(s) not in form %s: %v",
			len(result.InvalidQuestionIDs), formID.Hex(), result.InvalidQuestionIDs)
	}

	if len(result.ValidatedAnswers) == 0 {
		return nil, ErrNoValidAnswers
	}
	return result, nil
}
