package domain

import "fmt"

const (
	SourceFacebook = "facebook"
	SourceGoogle   = "google"
)

// ValidationError indica um registro bruto com campo ausente, de tipo errado ou fora do intervalo.
// Index é a posição do registro na origem, começando em zero.
type ValidationError struct {
	Source string
	Index  int
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("registro %s #%d", e.Source, e.Index)
	if e.Field != "" {
		msg = fmt.Sprintf("%s: campo %s", msg, e.Field)
	}
	msg = fmt.Sprintf("%s: %s", msg, e.Reason)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError cria um ValidationError sem erro subjacente
func NewValidationError(source string, index int, field, reason string) *ValidationError {
	return &ValidationError{
		Source: source,
		Index:  index,
		Field:  field,
		Reason: reason,
	}
}
