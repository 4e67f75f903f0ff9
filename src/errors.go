package src

import "errors"

// NotFoundError is returned whenever the requested message can't be served.
// The message is written as-is to the 404 response body.
type NotFoundError struct {
	message string
}

func (e *NotFoundError) Error() string {
	return e.message
}

var (
	ErrMessageNotFound   = &NotFoundError{message: "mensagem não encontrada"}
	ErrMessageIDMismatch = &NotFoundError{message: "mensagem não apresenta o ID correto"}

	ErrInvalidID = errors.New("ID inválido")
)

// ErrorResponse payload for client errors carrying a list of details
type ErrorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

func isNotFound(err error) (*NotFoundError, bool) {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf, true
	}
	return nil, false
}
