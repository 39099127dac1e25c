package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct returns a readable message listing every failed field, or
// "" when the struct is valid.
func ValidateStruct(s interface{}) string {
	err := validate.Struct(s)
	if err == nil {
		return ""
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Field()+" failed on '"+fe.Tag()+"'")
	}
	return strings.Join(msgs, ", ")
}
