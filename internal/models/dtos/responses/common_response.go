package responses

import "time"

// APIResponse is the uniform envelope for every JSON endpoint.
type APIResponse[T any] struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Data      *T                `json:"data,omitempty"`
	Message   string            `json:"message,omitempty"`
	Error     string            `json:"error,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
}
