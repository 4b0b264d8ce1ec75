package graph

import (
	"github.com/aussiebroadwan/empdir/internal/empdir/service"
)

// operationError carries a classified service failure across the GraphQL
// boundary. Implementing gqlerrors.ExtendedError surfaces the kind under
// extensions.code so clients can branch without string matching.
type operationError struct {
	err error
}

func (e *operationError) Error() string { return e.err.Error() }

func (e *operationError) Unwrap() error { return e.err }

func (e *operationError) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code": string(service.KindOf(e.err)),
	}
}

// wrapErr normalizes any resolver failure into an operationError. Service
// errors keep their classification; anything else surfaces as internal
// with its message intact.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	return &operationError{err: err}
}
