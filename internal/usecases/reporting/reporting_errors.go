package reporting

import (
	"errors"
	"fmt"
)

// Erros específicos para a leitura das métricas agregadas
var (
	// Erros de conexão
	ErrStoreNotConfigured = errors.New("metrics store is not configured")
	ErrStoreUnreachable   = errors.New("metrics store is unreachable")

	// Erros de consulta
	ErrAggregationFailed = errors.New("daily metrics aggregation failed")
)

// ConnectionError indica que o banco não foi configurado ou não respondeu
type ConnectionError struct {
	Err     error  // Sentinela (ErrStoreNotConfigured ou ErrStoreUnreachable)
	Cause   error  // Erro do driver, quando houver
	Code    string // Código de erro para API
	Details string
}

func (e *ConnectionError) Error() string {
	return formatError(e.Err, e.Details, e.Cause)
}

func (e *ConnectionError) Unwrap() []error {
	return unwrapAll(e.Err, e.Cause)
}

// QueryError indica que a consulta de agregação falhou
type QueryError struct {
	Err     error
	Cause   error
	Code    string
	Details string
}

func (e *QueryError) Error() string {
	return formatError(e.Err, e.Details, e.Cause)
}

func (e *QueryError) Unwrap() []error {
	return unwrapAll(e.Err, e.Cause)
}

func NewConnectionError(err error, cause error, code string, details string) *ConnectionError {
	return &ConnectionError{
		Err:     err,
		Cause:   cause,
		Code:    code,
		Details: details,
	}
}

func NewQueryError(err error, cause error, code string, details string) *QueryError {
	return &QueryError{
		Err:     err,
		Cause:   cause,
		Code:    code,
		Details: details,
	}
}

func formatError(err error, details string, cause error) string {
	msg := err.Error()
	if details != "" {
		msg = fmt.Sprintf("%s: %s", msg, details)
	}
	if cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, cause)
	}
	return msg
}

func unwrapAll(errs ...error) []error {
	out := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			out = append(out, err)
		}
	}
	return out
}
