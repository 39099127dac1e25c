package models

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
)

// SubmittedField is one entry of the structured submission payload: a
// question reference plus whatever the respondent typed or selected.
type SubmittedField struct {
	QuestionID string      `json:"questionId"`
	Value      AnswerValue `json:"value"`
}

// FormData is the submission payload. The survey UI sends an array of
// {questionId, value} entries; older clients still send a flat object whose
// keys look like "question_<id>". Both decode to the same structure.
type FormData []SubmittedField

var legacyQuestionKey = regexp.MustCompile(`^question_([0-9a-fA-F]{24})$`)

func (f *FormData) UnmarshalJSON(data []byte) error {
	// structured form first
	var fields []SubmittedField
	if err := json.Unmarshal(data, &fields); err == nil {
		*f = fields
		return nil
	}

	var legacy map[string]AnswerValue
	if err := json.Unmarshal(data, &legacy); err != nil {
		return fmt.Errorf("formData must be an array of {questionId, value} or a question_<id> keyed object")
	}

	keys := make([]string, 0, len(legacy))
	for k := range legacy {
		keys = append(keys, k)
	}
	sort.Strings(keys) // map iteration order is random; keep decoding stable

	fields = make([]SubmittedField, 0, len(legacy))
	for _, k := range keys {
		m := legacyQuestionKey.FindStringSubmatch(k)
		if m == nil {
			continue // not a question field; ignore
		}
		fields = append(fields, SubmittedField{QuestionID: m[1], Value: legacy[k]})
	}
	*f = fields
	return nil
}

// AnswerValue normalizes the value side of a submitted field. A scalar
// string stays a single element, an array keeps its elements, and any other
// JSON value is coerced to its string form. Blank filtering happens later in
// the mapper, not here.
type AnswerValue []string

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = AnswerValue{s}
		return nil
	}

	var list []interface{}
	if err := json.Unmarshal(data, &list); err == nil {
		out := make(AnswerValue, 0, len(list))
		for _, el := range list {
			out = append(out, coerceString(el))
		}
		*v = out
		return nil
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*v = AnswerValue{}
		return nil
	}
	*v = AnswerValue{coerceString(raw)}
	return nil
}

func coerceString(el interface{}) string {
	switch t := el.(type) {
	case string:
		return t
	case float64:
		// drop the ".0" JSON numbers pick up through interface{} decoding
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}
