package item

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDecode is returned when an uploaded document is not valid JSON.
	ErrDecode = errors.New("failed to decode item document")

	// ErrCorruptEffects is returned when a stored effects value can not be parsed.
	ErrCorruptEffects = errors.New("stored effects are not valid JSON")

	// ErrSchema is returned when the embedded item schema can not be compiled.
	ErrSchema = errors.New("failed to compile item schema")
)

// Violation describes one failed constraint of a candidate record.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	field := v.Field
	if field == "" {
		field = "(root)"
	}

	return field + ": " + v.Message
}

// ValidationError is returned by Validator when a record breaks one or more constraints.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}

	return fmt.Sprintf("invalid item: %s", strings.Join(parts, "; "))
}

// Has reports whether a violation for the given field and rule is present.
func (e *ValidationError) Has(field, rule string) bool {
	for _, v := range e.Violations {
		if v.Field == field && v.Rule == rule {
			return true
		}
	}

	return false
}
