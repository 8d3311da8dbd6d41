package dto

// ErrorResponse is the failure envelope shared by every endpoint.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	ErrorType string `json:"error_type,omitempty"`
}

func NewError(message, errorType string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message, ErrorType: errorType}
}
