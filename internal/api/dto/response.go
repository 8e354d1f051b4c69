package dto

// Envelope is the uniform response shape: status is "success" for 2xx,
// "fail" for caller errors (4xx) and "error" for server faults (5xx).
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// SuccessEnvelope wraps a successful payload.
func SuccessEnvelope(message string, data any) Envelope {
	return Envelope{Status: "success", Message: message, Data: data}
}
