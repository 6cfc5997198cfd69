package dto

// Envelope is the uniform response shape for every exposed operation.
// Callers inspect Success/Status rather than the transport code alone:
// exhausted attempts, for instance, travel as a 200 with Success=false.
type Envelope struct {
	Status  int         `json:"status"`
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}
