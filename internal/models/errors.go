package models

import (
	"errors"
	"strings"
)

// ValidationError describes a single invalid field in a request body.
// It is returned to clients as part of a 400 response.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidationErrors aggregates every invalid field of a request body.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	messages := make([]string, 0, len(e))
	for _, v := range e {
		messages = append(messages, v.Message)
	}
	return strings.Join(messages, ", ")
}

// Common errors
var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrCartItemNotFound = errors.New("cart item not found")
)
