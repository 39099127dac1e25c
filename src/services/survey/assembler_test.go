package survey

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-AuditHub/src/models"
)

func TestBuildQADocument(t *testing.T) {
	formID := primitive.NewObjectID()
	form := models.Form{ID: formID, Title: "Security Audit"}
	company := models.Company{Name: "Acme Corp", Industry: "Manufacturing", Size: "200"}

	// categories stored out of display order on purpose
	catB := models.QuestionCategory{ID: primitive.NewObjectID(), FormID: formID, Name: "Processes", Order: 2}
	catA := models.QuestionCategory{ID: primitive.NewObjectID(), FormID: formID, Name: "General", Order: 1}
	catC := models.QuestionCategory{ID: primitive.NewObjectID(), FormID: formID, Name: "Infrastructure", Order: 3}

	mkQ := func(cat models.QuestionCategory, text string, order int) models.Question {
		return models.Question{ID: primitive.NewObjectID(), CategoryID: cat.ID, Text: text, Order: order}
	}
	qA1 := mkQ(catA, "A1", 1)
	qA2 := mkQ(catA, "A2", 2)
	qB1 := mkQ(catB, "B1", 1)
	qB2 := mkQ(catB, "B2", 2)
	qC1 := mkQ(catC, "C1", 1)

	categories := []models.QuestionCategory{catB, catA, catC}
	questions := []models.Question{qB2, qA2, qC1, qA1, qB1}

	answers := []models.Answer{
		{QuestionID: qA1.ID, Value: "yes"},
		{QuestionID: qB1.ID, Value: "first"},
		{QuestionID: qB1.ID, Value: "second"},
	}

	doc := BuildQADocument(company, form, categories, questions, answers)

	t.Run("categories ordered by order field, not storage order", func(t *testing.T) {
		assert.Len(t, doc.Sections, 3)
		assert.Equal(t, "General", doc.Sections[0].Category.Name)
		assert.Equal(t, "Processes", doc.Sections[1].Category.Name)
		assert.Equal(t, "Infrastructure", doc.Sections[2].Category.Name)
	})

	t.Run("question numbering continues across categories", func(t *testing.T) {
		assert.Equal(t, 1, doc.Sections[0].Entries[0].Number)
		assert.Equal(t, 2, doc.Sections[0].Entries[1].Number)
		assert.Equal(t, 3, doc.Sections[1].Entries[0].Number)
		assert.Equal(t, 4, doc.Sections[1].Entries[1].Number)
		assert.Equal(t, 5, doc.Sections[2].Entries[0].Number)
	})

	t.Run("multi-row answers join with comma and space", func(t *testing.T) {
		assert.Equal(t, "first, second", doc.Sections[1].Entries[0].Flat())
	})

	t.Run("unanswered question gets a placeholder", func(t *testing.T) {
		assert.Equal(t, "No response provided", doc.Sections[0].Entries[1].Flat())
	})

	t.Run("title carries form and company", func(t *testing.T) {
		assert.Equal(t, "Security Audit — Acme Corp", doc.Title)
	})
}

func TestBuildQADocumentOrderTies(t *testing.T) {
	formID := primitive.NewObjectID()

	// equal order values fall back to id order so output is deterministic
	idLow, _ := primitive.ObjectIDFromHex("111111111111111111111111")
	idHigh, _ := primitive.ObjectIDFromHex("222222222222222222222222")

	catFirst := models.QuestionCategory{ID: idLow, FormID: formID, Name: "First", Order: 1}
	catSecond := models.QuestionCategory{ID: idHigh, FormID: formID, Name: "Second", Order: 1}

	doc := BuildQADocument(
		models.Company{Name: "Acme"},
		models.Form{Title: "Audit"},
		[]models.QuestionCategory{catSecond, catFirst},
		nil, nil,
	)

	assert.Equal(t, "First", doc.Sections[0].Category.Name)
	assert.Equal(t, "Second", doc.Sections[1].Category.Name)
}

func TestQADocumentMarkdown(t *testing.T) {
	formID := primitive.NewObjectID()
	cat := models.QuestionCategory{ID: primitive.NewObjectID(), FormID: formID, Name: "General", Order: 1}
	q := models.Question{ID: primitive.NewObjectID(), CategoryID: cat.ID, Text: "Do you store PII?", Order: 1}

	doc := BuildQADocument(
		models.Company{Name: "Acme Corp", Industry: "Retail"},
		models.Form{ID: formID, Title: "Privacy Audit"},
		[]models.QuestionCategory{cat},
		[]models.Question{q},
		[]models.Answer{{QuestionID: q.ID, Value: "yes"}},
	)

	md := doc.Markdown()
	assert.True(t, strings.HasPrefix(md, "# Privacy Audit — Acme Corp\n"))
	assert.Contains(t, md, "## General\n")
	assert.Contains(t, md, "**1. Do you store PII?**\n\nyes\n")
	assert.Contains(t, md, "**Industry:** Retail")
}

func TestQADocumentPairs(t *testing.T) {
	formID := primitive.NewObjectID()
	cat := models.QuestionCategory{ID: primitive.NewObjectID(), FormID: formID, Name: "General", Order: 1}
	q1 := models.Question{ID: primitive.NewObjectID(), CategoryID: cat.ID, Text: "One", Order: 1}
	q2 := models.Question{ID: primitive.NewObjectID(), CategoryID: cat.ID, Text: "Two", Order: 2}

	doc := BuildQADocument(
		models.Company{Name: "Acme"},
		models.Form{Title: "Audit"},
		[]models.QuestionCategory{cat},
		[]models.Question{q1, q2},
		[]models.Answer{{QuestionID: q2.ID, Value: "answered"}},
	)

	pairs := doc.Pairs()
	assert.Equal(t, []QAPair{
		{Question: "One", Answer: "No response provided"},
		{Question: "Two", Answer: "answered"},
	}, pairs)
}
