package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-AuditHub/src/models"
)

func TestRuleSatisfied(t *testing.T) {
	condQ := primitive.NewObjectID()

	t.Run("OR matches on intersection", func(t *testing.T) {
		rule := models.QuestionConditional{
			ConditionQuestionID: condQ,
			ConditionValues:     []string{"yes", "maybe"},
			Operator:            models.OperatorOR,
		}

		answers := AnswerSet{condQ.Hex(): {"no", "maybe"}}
		assert.True(t, RuleSatisfied(rule, answers))

		answers = AnswerSet{condQ.Hex(): {"no", "never"}}
		assert.False(t, RuleSatisfied(rule, answers))
	})

	t.Run("AND requires every condition value", func(t *testing.T) {
		rule := models.QuestionConditional{
			ConditionQuestionID: condQ,
			ConditionValues:     []string{"iso27001", "gdpr"},
			Operator:            models.OperatorAND,
		}

		assert.False(t, RuleSatisfied(rule, AnswerSet{condQ.Hex(): {"iso27001"}}))
		assert.True(t, RuleSatisfied(rule, AnswerSet{condQ.Hex(): {"iso27001", "gdpr"}}))
		// extra selections do not break the superset check
		assert.True(t, RuleSatisfied(rule, AnswerSet{condQ.Hex(): {"soc2", "gdpr", "iso27001"}}))
	})

	t.Run("unanswered condition question reads as empty set", func(t *testing.T) {
		rule := models.QuestionConditional{
			ConditionQuestionID: condQ,
			ConditionValues:     []string{"yes"},
			Operator:            models.OperatorOR,
		}

		assert.False(t, RuleSatisfied(rule, AnswerSet{}))
		assert.False(t, RuleSatisfied(rule, nil))
	})

	t.Run("rule without values never matches", func(t *testing.T) {
		rule := models.QuestionConditional{
			ConditionQuestionID: condQ,
			Operator:            models.OperatorAND,
		}
		assert.False(t, RuleSatisfied(rule, AnswerSet{condQ.Hex(): {"yes"}}))
	})
}

func TestIsQuestionVisible(t *testing.T) {
	condQ := primitive.NewObjectID()
	otherQ := primitive.NewObjectID()

	show := func(cond primitive.ObjectID, values ...string) models.QuestionConditional {
		return models.QuestionConditional{
			ConditionQuestionID: cond,
			ConditionValues:     values,
			ShowQuestion:        true,
			Operator:            models.OperatorOR,
		}
	}

	t.Run("no rules means always visible", func(t *testing.T) {
		assert.True(t, IsQuestionVisible(nil, AnswerSet{}))
	})

	t.Run("show-when-selected defaults to hidden", func(t *testing.T) {
		rules := []models.QuestionConditional{show(condQ, "yes")}

		assert.False(t, IsQuestionVisible(rules, AnswerSet{}))
		assert.True(t, IsQuestionVisible(rules, AnswerSet{condQ.Hex(): {"yes"}}))
	})

	t.Run("hide-when-selected inverts the gate", func(t *testing.T) {
		rule := models.QuestionConditional{
			ConditionQuestionID: condQ,
			ConditionValues:     []string{"none"},
			ShowQuestion:        false,
			Operator:            models.OperatorOR,
		}

		// not satisfied -> !showQuestion -> visible
		assert.True(t, IsQuestionVisible([]models.QuestionConditional{rule}, AnswerSet{}))
		// satisfied -> showQuestion=false -> hidden
		assert.False(t, IsQuestionVisible([]models.QuestionConditional{rule}, AnswerSet{condQ.Hex(): {"none"}}))
	})

	t.Run("multiple rules combine with AND", func(t *testing.T) {
		rules := []models.QuestionConditional{
			show(condQ, "yes"),
			show(otherQ, "eu"),
		}

		answers := AnswerSet{condQ.Hex(): {"yes"}}
		assert.False(t, IsQuestionVisible(rules, answers), "one failing rule hides the question")

		answers.Add(otherQ.Hex(), "eu")
		assert.True(t, IsQuestionVisible(rules, answers))
	})
}

func TestCreatesCycle(t *testing.T) {
	t.Run("self reference", func(t *testing.T) {
		assert.True(t, CreatesCycle(nil, "a", "a"))
	})

	t.Run("direct cycle", func(t *testing.T) {
		deps := map[string][]string{"b": {"a"}}
		assert.True(t, CreatesCycle(deps, "a", "b"))
	})

	t.Run("transitive cycle", func(t *testing.T) {
		deps := map[string][]string{
			"b": {"c"},
			"c": {"a"},
		}
		assert.True(t, CreatesCycle(deps, "a", "b"))
	})

	t.Run("acyclic chain is allowed", func(t *testing.T) {
		deps := map[string][]string{
			"b": {"c"},
			"c": {"d"},
		}
		assert.False(t, CreatesCycle(deps, "a", "b"))
	})
}
