package models

import "fmt"

// ValidationError reports invalid user input. Handlers translate it to a
// 400 response naming the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
