package dto

// MessageResponseDTO carries a human readable success message
type MessageResponseDTO struct {
	Message string `json:"message"`
}

// ErrorResponseDTO is the body of every non-2xx API response
type ErrorResponseDTO struct {
	Error string `json:"error"`
}
