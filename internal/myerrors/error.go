package myerrors

import "fmt"

// ValidationError means a target is malformed or incomplete relative to its
// declared type.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError means an operation referenced an identifier with no record
// behind it.
type NotFoundError struct {
	Resource string
	Id       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.Id)
}
