package survey

import (
	"Backend-AuditHub/src/models"
)

// AnswerSet maps a question id (hex) to every value collected for it so far.
// An unanswered question simply has no key, which reads as the empty set.
type AnswerSet map[string][]string

// Add appends one collected value for a question.
func (s AnswerSet) Add(questionID, value string) {
	s[questionID] = append(s[questionID], value)
}

// RuleSatisfied evaluates a single visibility rule against the answers given
// so far. OR: at least one given value is in the allowed list. AND: every
// value in the allowed list is present in the given set (checkbox-driven
// conditions requiring multiple selections simultaneously).
func RuleSatisfied(rule models.QuestionConditional, answers AnswerSet) bool {
	given := answers[rule.ConditionQuestionID.Hex()]
	if len(rule.ConditionValues) == 0 {
		// a rule with no values can never match
		return false
	}

	switch rule.Operator {
	case models.OperatorAND:
		have := make(map[string]bool, len(given))
		for _, v := range given {
			have[v] = true
		}
		for _, want := range rule.ConditionValues {
			if !have[want] {
				return false
			}
		}
		return true
	default: // OR
		for _, want := range rule.ConditionValues {
			for _, v := range given {
				if v == want {
					return true
				}
			}
		}
		return false
	}
}

// IsQuestionVisible decides whether a question should currently be shown.
// Per rule: satisfied -> ShowQuestion, not satisfied -> !ShowQuestion.
// Multiple rules on one question must all agree; a single failing rule hides
// the question. A question with no rules is always visible.
func IsQuestionVisible(conditionals []models.QuestionConditional, answers AnswerSet) bool {
	for _, rule := range conditionals {
		visible := !rule.ShowQuestion
		if RuleSatisfied(rule, answers) {
			visible = rule.ShowQuestion
		}
		if !visible {
			return false
		}
	}
	return true
}
