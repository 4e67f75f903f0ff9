package src

import (
	"errors"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New()

// field name -> message reported for any violation on it
var violationMessages = map[string]string{
	"Author":  "usuário não pode estar vazio",
	"Content": "conteúdo não pode estar vazio",
}

// ValidateMessageRequest returns every violation found on the request, sorted.
// An empty result means the request is valid.
func ValidateMessageRequest(req MessageRequest) []string {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []string{err.Error()}
	}

	messages := lo.Map(fieldErrors, func(fe validator.FieldError, _ int) string {
		if msg, ok := violationMessages[fe.Field()]; ok {
			return msg
		}
		return fe.Error()
	})
	sort.Strings(messages)
	return messages
}
