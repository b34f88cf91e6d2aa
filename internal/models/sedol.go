package models

// ValidateSedolRequest represents the request body for validating a SEDOL
type ValidateSedolRequest struct {
	Input string `json:"input"`
}

// ValidateSedolResponse carries the verdict for one candidate SEDOL
type ValidateSedolResponse struct {
	Input             string `json:"input"`
	IsValid           bool   `json:"is_valid"`
	IsUserDefined     bool   `json:"is_user_defined"`
	ValidationDetails string `json:"validation_details"`
}

// ChecksumResponse represents the computed checksum digit for a SEDOL body
type ChecksumResponse struct {
	Input         string `json:"input"`
	ChecksumDigit string `json:"checksum_digit"`
	Sedol         string `json:"sedol"` // input with the checksum digit appended
}

// PrefixResponse reports whether an input carries the end-user-defined prefix
type PrefixResponse struct {
	Input         string `json:"input"`
	IsUserDefined bool   `json:"is_user_defined"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
