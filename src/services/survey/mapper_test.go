package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-AuditHub/src/models"
)

func questionInForm(formID primitive.ObjectID, text string, qtype models.QuestionType) QuestionWithForm {
	return QuestionWithForm{
		Question: models.Question{
			ID:   primitive.NewObjectID(),
			Text: text,
			Type: qtype,
		},
		FormID: formID,
	}
}

func TestExtractQuestionIDs(t *testing.T) {
	t.Run("empty payload is structurally empty", func(t *testing.T) {
		_, _, err := ExtractQuestionIDs(models.FormData{})
		assert.ErrorIs(t, err, ErrNoQuestionsFound)
	})

	t.Run("only malformed ids is structurally empty", func(t *testing.T) {
		fields := models.FormData{
			{QuestionID: "not-an-id", Value: models.AnswerValue{"x"}},
		}
		_, malformed, err := ExtractQuestionIDs(fields)
		assert.ErrorIs(t, err, ErrNoQuestionsFound)
		assert.Equal(t, []string{"not-an-id"}, malformed)
	})

	t.Run("duplicates collapse, order preserved", func(t *testing.T) {
		a, b := primitive.NewObjectID(), primitive.NewObjectID()
		fields := models.FormData{
			{QuestionID: a.Hex(), Value: models.AnswerValue{"1"}},
			{QuestionID: b.Hex(), Value: models.AnswerValue{"2"}},
			{QuestionID: a.Hex(), Value: models.AnswerValue{"3"}},
		}
		ids, malformed, err := ExtractQuestionIDs(fields)
		assert.NoError(t, err)
		assert.Empty(t, malformed)
		assert.Equal(t, []primitive.ObjectID{a, b}, ids)
	})
}

func TestMapFormData(t *testing.T) {
	formID := primitive.NewObjectID()
	otherFormID := primitive.NewObjectID()

	t.Run("checkbox multi-select drops blank entries", func(t *testing.T) {
		q := questionInForm(formID, "Which controls are in place?", models.QuestionCheckbox)
		fields := models.FormData{
			{QuestionID: q.Question.ID.Hex(), Value: models.AnswerValue{"a", "b", ""}},
		}

		result, err := MapFormData(fields, formID, []QuestionWithForm{q})
		assert.NoError(t, err)
		assert.Len(t, result.ValidatedAnswers, 2)
		assert.Equal(t, "a", result.ValidatedAnswers[0].Value)
		assert.Equal(t, "b", result.ValidatedAnswers[1].Value)
		assert.Equal(t, 1, result.ValidQuestionsCount)
	})

	t.Run("whitespace-only scalar is dropped silently", func(t *testing.T) {
		q := questionInForm(formID, "Anything to add?", models.QuestionText)
		other := questionInForm(formID, "Company size?", models.QuestionText)
		fields := models.FormData{
			{QuestionID: q.Question.ID.Hex(), Value: models.AnswerValue{"   "}},
			{QuestionID: other.Question.ID.Hex(), Value: models.AnswerValue{" 50 "}},
		}

		result, err := MapFormData(fields, formID, []QuestionWithForm{q, other})
		assert.NoError(t, err)
		assert.Len(t, result.ValidatedAnswers, 1)
		assert.Equal(t, "50", result.ValidatedAnswers[0].Value, "values are trimmed")
		assert.Equal(t, 2, result.ValidQuestionsCount, "blank-valued question still counts as valid")
	})

	t.Run("cross-form reference excluded but not fatal", func(t *testing.T) {
		valid := questionInForm(formID, "Do you store PII?", models.QuestionMultipleChoice)
		foreign := questionInForm(otherFormID, "Unrelated", models.QuestionText)
		fields := models.FormData{
			{QuestionID: valid.Question.ID.Hex(), Value: models.AnswerValue{"yes"}},
			{QuestionID: foreign.Question.ID.Hex(), Value: models.AnswerValue{"x"}},
		}

		result, err := MapFormData(fields, formID, []QuestionWithForm{valid, foreign})
		assert.NoError(t, err)
		assert.Len(t, result.ValidatedAnswers, 1)
		assert.Equal(t, valid.Question.ID, result.ValidatedAnswers[0].QuestionID)
		assert.Equal(t, "yes", result.ValidatedAnswers[0].Value)
		assert.Equal(t, []string{foreign.Question.ID.Hex()}, result.InvalidQuestionIDs)
		assert.Equal(t, 2, result.TotalQuestionsSubmitted)
		assert.Equal(t, 1, result.ValidQuestionsCount)
	})

	t.Run("nonexistent question is invalid", func(t *testing.T) {
		valid := questionInForm(formID, "Q", models.QuestionText)
		ghost := primitive.NewObjectID()
		fields := models.FormData{
			{QuestionID: valid.Question.ID.Hex(), Value: models.AnswerValue{"v"}},
			{QuestionID: ghost.Hex(), Value: models.AnswerValue{"v"}},
		}

		result, err := MapFormData(fields, formID, []QuestionWithForm{valid})
		assert.NoError(t, err)
		assert.Equal(t, []string{ghost.Hex()}, result.InvalidQuestionIDs)
	})

	t.Run("everything invalid fails with no-valid-answers", func(t *testing.T) {
		foreign := questionInForm(otherFormID, "Q", models.QuestionText)
		fields := models.FormData{
			{QuestionID: foreign.Question.ID.Hex(), Value: models.AnswerValue{"x"}},
		}

		_, err := MapFormData(fields, formID, []QuestionWithForm{foreign})
		assert.ErrorIs(t, err, ErrNoValidAnswers)
	})

	t.Run("all blank values fails with no-valid-answers", func(t *testing.T) {
		q := questionInForm(formID, "Q", models.QuestionText)
		fields := models.FormData{
			{QuestionID: q.Question.ID.Hex(), Value: models.AnswerValue{"", "  "}},
		}

		_, err := MapFormData(fields, formID, []QuestionWithForm{q})
		assert.ErrorIs(t, err, ErrNoValidAnswers)
	})

	t.Run("duplicate references merge values", func(t *testing.T) {
		q := questionInForm(formID, "Q", models.QuestionCheckbox)
		fields := models.FormData{
			{QuestionID: q.Question.ID.Hex(), Value: models.AnswerValue{"a"}},
			{QuestionID: q.Question.ID.Hex(), Value: models.AnswerValue{"b"}},
		}

		result, err := MapFormData(fields, formID, []QuestionWithForm{q})
		assert.NoError(t, err)
		assert.Len(t, result.ValidatedAnswers, 2)
		assert.Equal(t, 1, result.TotalQuestionsSubmitted)
		assert.Len(t, result.Questions, 1)
		assert.Equal(t, []string{"a", "b"}, result.Questions[0].Answers)
	})
}

// Feeding the mapper's validated answers back through the assembler's
// grouping must reproduce the same (questionId, value) pairs.
func TestMapperAssemblerRoundTrip(t *testing.T) {
	formID := primitive.NewObjectID()
	category := models.QuestionCategory{ID: primitive.NewObjectID(), FormID: formID, Name: "General", Order: 1}

	q1 := questionInForm(formID, "First", models.QuestionText)
	q2 := questionInForm(formID, "Second", models.QuestionCheckbox)
	q1.Question.CategoryID = category.ID
	q2.Question.CategoryID = category.ID

	fields := models.FormData{
		{QuestionID: q1.Question.ID.Hex(), Value: models.AnswerValue{"alpha"}},
		{QuestionID: q2.Question.ID.Hex(), Value: models.AnswerValue{"b1", "b2"}},
	}

	result, err := MapFormData(fields, formID, []QuestionWithForm{q1, q2})
	assert.NoError(t, err)

	var answers []models.Answer
	for _, v := range result.ValidatedAnswers {
		answers = append(answers, models.Answer{QuestionID: v.QuestionID, Value: v.Value})
	}

	doc := BuildQADocument(
		models.Company{Name: "Acme Corp"},
		models.Form{Title: "Audit"},
		[]models.QuestionCategory{category},
		[]models.Question{q1.Question, q2.Question},
		answers,
	)

	got := make(map[string][]string)
	for _, section := range doc.Sections {
		for _, e := range section.Entries {
			got[e.Question.ID.Hex()] = e.Answers
		}
	}
	assert.Equal(t, []string{"alpha"}, got[q1.Question.ID.Hex()])
	assert.Equal(t, []string{"b1", "b2"}, got[q2.Question.ID.Hex()])
}
