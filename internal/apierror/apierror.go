// Package apierror defines the JSON error body every 400/404 response
// shares and the translation of persistence failures into it. Raw
// store errors never reach a client.
package apierror

import (
	"errors"
	"fmt"
	"net/http"

	"personal-finance-backend/internal/validation"

	"github.com/jackc/pgx/v5/pgconn"
)

const title = "Constraint Violation"

// Postgres SQLSTATE for unique_violation.
const uniqueViolation = "23505"

type Error struct {
	Title      string                 `json:"title"`
	Status     int                    `json:"status"`
	Violations []validation.Violation `json:"violations"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Title, e.Status)
}

// Invalid wraps a collected violation list into a 400.
func Invalid(violations []validation.Violation) *Error {
	return &Error{Title: title, Status: http.StatusBadRequest, Violations: violations}
}

// IDNotFound reports an id that does not resolve to a live row, for
// the target of the request or for a referenced entity. The id may be
// an int64, a raw path segment, or nil for a reference sent without
// one; nil renders as "null" on the wire.
func IDNotFound(entity string, id any) *Error {
	text := "null"
	if id != nil {
		text = fmt.Sprintf("%v", id)
	}
	return &Error{
		Title:  title,
		Status: http.StatusNotFound,
		Violations: []validation.Violation{
			{Field: entity, Message: "id_not_found:" + text},
		},
	}
}

// FromPersistence maps a store error to the uniform shape: unique
// index clashes name the offending index, anything else is reported
// as a generic persistence failure.
func FromPersistence(err error) *Error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return &Error{
			Title:  title,
			Status: http.StatusBadRequest,
			Violations: []validation.Violation{
				{Field: pgErr.ConstraintName, Message: "constraint_violation_exception"},
			},
		}
	}
	return &Error{
		Title:  title,
		Status: http.StatusBadRequest,
		Violations: []validation.Violation{
			{Field: err.Error(), Message: "persistence_exception"},
		},
	}
}
