package ai

import "fmt"

// StatusError reports a non-success HTTP status from the generation service.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("ollama: status %d", e.Status)
}
