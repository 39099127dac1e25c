package survey

import (
	"fmt"
	"sort"
	"strings"

	"Backend-AuditHub/src/models"
)

const (
	answerSeparator       = ", "
	noResponsePlaceholder = "No response provided"
)

// QAEntry is one numbered question with its collected answers. Numbering is
// global across the whole document, not reset per category.
type QAEntry struct {
	Number   int             `json:"number"`
	Question models.Question `json:"question"`
	Answers  []string        `json:"answers"`
}

// Flat joins multi-select answers into a single display string.
func (e QAEntry) Flat() string {
	if len(e.Answers) == 0 {
		return noResponsePlaceholder
	}
	return strings.Join(e.Answers, answerSeparator)
}

// QASection groups the entries of one category.
type QASection struct {
	Category models.QuestionCategory `json:"category"`
	Entries  []QAEntry               `json:"entries"`
}

// QAPair is the question/answer shape handed to the AI text generator.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// QADocument is the deterministic transcript of one submission, ready for
// Markdown rendering. It knows nothing about Word or PDF.
type QADocument struct {
	Title    string         `json:"title"`
	Company  models.Company `json:"company"`
	Sections []QASection    `json:"sections"`
}

// BuildQADocument groups a submission's answers by category and question.
// Categories and questions are ordered by their order field ascending with
// id as tiebreak; answer values keep retrieval order. Every question of the
// form appears, answered or not.
func BuildQADocument(company models.Company, form models.Form, categories []models.QuestionCategory, questions []models.Question, answers []models.Answer) *QADocument {
	cats := make([]models.QuestionCategory, len(categories))
	copy(cats, categories)
	sort.SliceStable(cats, func(i, j int) bool {
		if cats[i].Order != cats[j].Order {
			return cats[i].Order < cats[j].Order
		}
		return cats[i].ID.Hex() < cats[j].ID.Hex()
	})

	byCategory := make(map[string][]models.Question)
	for _, q := range questions {
		key := q.CategoryID.Hex()
		byCategory[key] = append(byCategory[key], q)
	}
	for key := range byCategory {
		qs := byCategory[key]
		sort.SliceStable(qs, func(i, j int) bool {
			if qs[i].Order != qs[j].Order {
				return qs[i].Order < qs[j].Order
			}
			return qs[i].ID.Hex() < qs[j].ID.Hex()
		})
		byCategory[key] = qs
	}

	values := make(map[string][]string)
	for _, a := range answers {
		key := a.QuestionID.Hex()
		values[key] = append(values[key], a.Value)
	}

	doc := &QADocument{
		Title:   fmt.Sprintf("%s — %s", form.Title, company.Name),
		Company: company,
	}

	number := 0
	for _, cat := range cats {
		section := QASection{Category: cat}
		for _, q := range byCategory[cat.ID.Hex()] {
			number++
			section.Entries = append(section.Entries, QAEntry{
				Number:   number,
				Question: q,
				Answers:  values[q.ID.Hex()],
			})
		}
		doc.Sections = append(doc.Sections, section)
	}
	return doc
}

// Markdown renders the transcript as the heading-structured intermediate
// representation consumed by the document renderer.
func (d *QADocument) Markdown() string {
	var b strings.Builder

	b.WriteString("# " + d.Title + "\n\n")
	b.WriteString(fmt.Sprintf("**Company:** %s", d.Company.Name))
	if d.Company.Industry != "" {
		b.WriteString(fmt.Sprintf("  \n**Industry:** %s", d.Company.Industry))
	}
	if d.Company.Size != "" {
		b.WriteString(fmt.Sprintf("  \n**Size:** %s", d.Company.Size))
	}
	b.WriteString("\n")

	for _, section := range d.Sections {
		b.WriteString("\n## " + section.Category.Name + "\n")
		for _, e := range section.Entries {
			b.WriteString(fmt.Sprintf("\n**%d. %s**\n\n%s\n", e.Number, e.Question.Text, e.Flat()))
		}
	}
	return b.String()
}

// Pairs flattens the transcript for the AI text generator.
func (d *QADocument) Pairs() []QAPair {
	var pairs []QAPair
	for _, section := range d.Sections {
		for _, e := range section.Entries {
			pairs = append(pairs, QAPair{Question: e.Question.Text, Answer: e.Flat()})
		}
	}
	return pairs
}
