package sedol

// ValidationResult is the outcome of validating one candidate string.
// Fields are set once by NewValidationResult and only exposed through accessors.
type ValidationResult struct {
	inputString       string
	isValidSedol      bool
	isUserDefined     bool
	validationDetails string
}

// NewValidationResult creates a ValidationResult
func NewValidationResult(inputString string, isValidSedol, isUserDefined bool, validationDetails string) ValidationResult {
	return ValidationResult{
		inputString:       inputString,
		isValidSedol:      isValidSedol,
		isUserDefined:     isUserDefined,
		validationDetails: validationDetails,
	}
}

// InputString returns the unmodified input that was validated
func (r ValidationResult) InputString() string {
	return r.inputString
}

// IsValidSedol reports whether the input passed both the length and checksum checks
func (r ValidationResult) IsValidSedol() bool {
	return r.isValidSedol
}

// IsUserDefined reports whether the input is an end-user-defined SEDOL
func (r ValidationResult) IsUserDefined() bool {
	return r.isUserDefined
}

// ValidationDetails returns the failure reason, or "" when the input is valid
func (r ValidationResult) ValidationDetails() string {
	return r.validationDetails
}
