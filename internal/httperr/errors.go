package httperr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindValidation
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindValidation:
		return "validation_failed"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUpstream:
		return "upstream_failure"
	default:
		return "internal"
	}
}

// Error is the application error carried from domain and use case code up
// to the handlers. Err is logged, never serialized.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Code)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func ErrBadRequest(code, message string) error {
	return &Error{Kind: KindBadRequest, Code: code, Message: message}
}

func ErrValidation(fields map[string]string) error {
	return &Error{
		Kind:    KindValidation,
		Code:    "validation_failed",
		Message: "Validation failed",
		Fields:  fields,
	}
}

func ErrUnauthorized(code, message string) error {
	return &Error{Kind: KindUnauthorized, Code: code, Message: message}
}

func ErrForbidden(code, message string) error {
	return &Error{Kind: KindForbidden, Code: code, Message: message}
}

func ErrNotFound(code, message string) error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

func ErrConflict(code, message string) error {
	return &Error{Kind: KindConflict, Code: code, Message: message}
}

func ErrUpstream(code string, err error) error {
	return &Error{Kind: KindUpstream, Code: code, Message: "Payment provider error", Err: err}
}

func ErrInternal(err error) error {
	return &Error{Kind: KindInternal, Code: "internal_error", Message: internalMessage, Err: err}
}

// As normalizes any error into an *Error. Unknown errors become Internal.
func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &Error{Kind: KindNotFound, Code: "not_found", Message: "Not found", Err: err}
	}
	if IsUniqueViolation(err) {
		return &Error{Kind: KindConflict, Code: "conflict", Message: "Resource already exists", Err: err}
	}
	return &Error{Kind: KindInternal, Code: "internal_error", Message: internalMessage, Err: err}
}

func Is(err error, code string) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	return As(err).Kind == kind
}

func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
