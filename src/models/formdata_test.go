package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormDataUnmarshal(t *testing.T) {
	t.Run("structured array form", func(t *testing.T) {
		raw := `[{"questionId":"64a000000000000000000001","value":"yes"},
		         {"questionId":"64a000000000000000000002","value":["a","b"]}]`

		var fd FormData
		assert.NoError(t, json.Unmarshal([]byte(raw), &fd))
		assert.Len(t, fd, 2)
		assert.Equal(t, "64a000000000000000000001", fd[0].QuestionID)
		assert.Equal(t, AnswerValue{"yes"}, fd[0].Value)
		assert.Equal(t, AnswerValue{"a", "b"}, fd[1].Value)
	})

	t.Run("legacy question_<id> keyed object", func(t *testing.T) {
		raw := `{"question_64a000000000000000000001":"yes",
		         "question_64a000000000000000000002":["a","b"],
		         "csrf_token":"ignored"}`

		var fd FormData
		assert.NoError(t, json.Unmarshal([]byte(raw), &fd))
		assert.Len(t, fd, 2, "non-question keys are ignored")
		assert.Equal(t, "64a000000000000000000001", fd[0].QuestionID)
		assert.Equal(t, AnswerValue{"a", "b"}, fd[1].Value)
	})

	t.Run("legacy object with no question keys decodes empty", func(t *testing.T) {
		var fd FormData
		assert.NoError(t, json.Unmarshal([]byte(`{"foo":"bar"}`), &fd))
		assert.Empty(t, fd)
	})

	t.Run("empty object decodes empty", func(t *testing.T) {
		var fd FormData
		assert.NoError(t, json.Unmarshal([]byte(`{}`), &fd))
		assert.Empty(t, fd)
	})

	t.Run("scalar payload is rejected", func(t *testing.T) {
		var fd FormData
		assert.Error(t, json.Unmarshal([]byte(`"nope"`), &fd))
	})
}

func TestAnswerValueUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want AnswerValue
	}{
		{"scalar string", `"yes"`, AnswerValue{"yes"}},
		{"string array", `["a","b",""]`, AnswerValue{"a", "b", ""}},
		{"number coerced", `42`, AnswerValue{"42"}},
		{"float coerced", `4.5`, AnswerValue{"4.5"}},
		{"bool coerced", `true`, AnswerValue{"true"}},
		{"mixed array coerced", `["a",7,false]`, AnswerValue{"a", "7", "false"}},
		{"null becomes empty", `null`, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var v AnswerValue
			assert.NoError(t, json.Unmarshal([]byte(tc.raw), &v))
			if tc.want == nil {
				assert.Empty(t, v)
				return
			}
			assert.Equal(t, tc.want, v)
		})
	}
}
