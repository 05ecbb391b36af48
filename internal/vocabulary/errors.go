package vocabulary

import "fmt"

// LoadError represents an error reading or validating a vocabulary document
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("vocabulary error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("vocabulary error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
