package helper

import "fmt"

// FieldError is one failed validation rule on one payload field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	return v[0].Message
}

// BusinessError is a single-string domain failure ("Dealer not found",
// "Code already taken"). It rolls back the enclosing transaction but still
// answers HTTP 200 with success:false.
type BusinessError struct {
	Message string
}

func (e *BusinessError) Error() string { return e.Message }

func Business(format string, args ...interface{}) *BusinessError {
	return &BusinessError{Message: fmt.Sprintf(format, args...)}
}
