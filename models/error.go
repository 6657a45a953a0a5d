package models

import (
	"errors"

	"github.com/lib/pq"
)

// Error is the JSON body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var ErrNotFound = errors.New("not found")

// IsConstraintViolation reports whether err is an integrity constraint
// violation (SQLSTATE class 23) raised by Postgres.
func IsConstraintViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Class() == "23"
	}
	return false
}

// IsRowError reports whether err was caused by the values of a single row:
// a constraint violation or a data exception (SQLSTATE class 22) such as a
// numeric overflow or an invalid byte sequence.
func IsRowError(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		class := pqErr.Code.Class()
		return class == "22" || class == "23"
	}
	return false
}

// ConstraintMessage turns a constraint violation or data exception into text
// an operator can act on.
func ConstraintMessage(err error) string {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err.Error()
	}

	switch pqErr.Code.Name() {
	case "unique_violation":
		if pqErr.Constraint != "" {
			return "duplicate value violates " + pqErr.Constraint
		}
		return "duplicate value"
	case "foreign_key_violation":
		return "referenced record does not exist"
	case "not_null_violation":
		if pqErr.Column != "" {
			return pqErr.Column + " must not be empty"
		}
		return "missing required value"
	case "check_violation":
		return "value rejected by " + pqErr.Constraint
	case "numeric_value_out_of_range":
		return "value out of range"
	case "string_data_right_truncation":
		return "value too long"
	case "character_not_in_repertoire", "untranslatable_character":
		return "contains invalid characters"
	case "invalid_text_representation":
		return "must be numeric"
	}
	return pqErr.Message
}
