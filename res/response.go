package res

// Response is the JSON envelope of every endpoint. Details carries
// per-field validation messages on 400 responses.
type Response struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	Details []string               `json:"details,omitempty"`
	Data    map[string]interface{} `json:"body,omitempty"`
}

type ErrorRes struct {
	Err        error
	StatusCode int
}
