package domain

import (
	"errors"
	"strings"
)

var ErrProjectNotFound = errors.New("project not found")

// ValidationError lists the required create fields the caller omitted.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}
