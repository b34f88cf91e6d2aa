package sedol

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// ExpectedSedolLength is the number of characters in a SEDOL, checksum digit included
	ExpectedSedolLength = 7

	// EndUserDefinedSedolRangePrefix marks SEDOLs allocated outside the standard issuing process
	EndUserDefinedSedolRangePrefix = '9'

	// LetterASCIIOffset maps upper-case letters to their checksum value (A = 10, B = 11, ...)
	LetterASCIIOffset = 55
)

// Validation details reported by ValidateSedol
var (
	DetailsWrongLength      = fmt.Sprintf("Input string was not %d-characters long.", ExpectedSedolLength)
	DetailsChecksumMismatch = "Checksum digit does not agree with the first 6 characters."
)

var (
	ErrInvalidConfiguration = errors.New("invalid validator configuration")
	ErrInvalidArgument      = errors.New("invalid argument")
)

// DefaultCharacterWeights returns the standard SEDOL positional weights
func DefaultCharacterWeights() []int {
	return []int{1, 3, 1, 7, 3, 9, 1}
}

// defaultCharacterWeights backs zero-value and nil Validators; never modified
var defaultCharacterWeights = DefaultCharacterWeights()

// Validator checks SEDOL identifiers against a fixed set of character weights.
// It holds no mutable state and is safe for concurrent use.
// The zero value, and a nil *Validator, use DefaultCharacterWeights.
type Validator struct {
	characterWeights []int
}

// New creates a Validator with the given character weights.
// weights must have exactly ExpectedSedolLength entries.
func New(weights []int) (*Validator, error) {
	if err := checkCharacterWeights(weights); err != nil {
		return nil, err
	}

	w := make([]int, len(weights))
	copy(w, weights)
	return &Validator{characterWeights: w}, nil
}

// NewDefault creates a Validator with DefaultCharacterWeights
func NewDefault() *Validator {
	return &Validator{characterWeights: DefaultCharacterWeights()}
}

func checkCharacterWeights(weights []int) error {
	if weights == nil {
		return fmt.Errorf("%w: character weight array is not initialised", ErrInvalidConfiguration)
	}
	if len(weights) != ExpectedSedolLength {
		return fmt.Errorf("%w: expected %d character weights, got %d",
			ErrInvalidConfiguration, ExpectedSedolLength, len(weights))
	}
	return nil
}

// weights returns the configured weights, falling back to the defaults for
// a Validator that did not go through New
func (v *Validator) weights() []int {
	if v == nil || v.characterWeights == nil {
		return defaultCharacterWeights
	}
	return v.characterWeights
}

// CharacterWeights returns a copy of the weights used for checksum calculation
func (v *Validator) CharacterWeights() []int {
	weights := v.weights()
	w := make([]int, len(weights))
	copy(w, weights)
	return w
}

// ValidateSedol validates input and reports the outcome.
// Malformed input never produces an error; it yields an invalid result with details set.
// IsUserDefined is left false; use HasEndUserDefinedSedolPrefix for prefix detection.
func (v *Validator) ValidateSedol(input string) ValidationResult {
	if !v.HasRightLength(input) {
		return NewValidationResult(input, false, false, DetailsWrongLength)
	}

	// Both calls are safe: HasRightLength guarantees a non-empty input.
	body, _ := v.RemoveChecksumDigit(input)
	expected, _ := v.CalculateChecksumDigit(body)

	actual, _ := utf8.DecodeLastRuneInString(input)
	if actual != expected {
		return NewValidationResult(input, false, false, DetailsChecksumMismatch)
	}

	return NewValidationResult(input, true, false, "")
}

// RemoveChecksumDigit returns input without its final character
func (v *Validator) RemoveChecksumDigit(input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%w: input string is empty", ErrInvalidArgument)
	}

	_, size := utf8.DecodeLastRuneInString(input)
	return input[:len(input)-size], nil
}

// HasRightLength reports whether input is non-blank and exactly ExpectedSedolLength characters long
func (v *Validator) HasRightLength(input string) bool {
	if strings.TrimSpace(input) == "" {
		return false
	}
	return utf8.RuneCountInString(input) == ExpectedSedolLength
}

// CalculateChecksumDigit computes the checksum digit for input.
// Only the first min(len(input), len(weights)) characters are weighed; no other
// length check is made.
func (v *Validator) CalculateChecksumDigit(input string) (rune, error) {
	if input == "" {
		return 0, fmt.Errorf("%w: input not specified", ErrInvalidArgument)
	}

	weights := v.weights()
	sum := 0
	i := 0
	for _, c := range input {
		if i >= len(weights) {
			break
		}
		sum += characterValue(c) * weights[i]
		i++
	}

	checkDigit := (10 - sum%10) % 10
	return rune('0' + checkDigit), nil
}

// characterValue maps an ASCII digit to 0-9 and an ASCII letter to 10-35.
// Anything else counts as 0.
func characterValue(c rune) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'Z':
		return int(c) - LetterASCIIOffset
	case c >= 'a' && c <= 'z':
		return int(c-'a'+'A') - LetterASCIIOffset
	default:
		return 0
	}
}

// HasEndUserDefinedSedolPrefix reports whether input starts with EndUserDefinedSedolRangePrefix
func (v *Validator) HasEndUserDefinedSedolPrefix(input string) (bool, error) {
	if input == "" {
		return false, fmt.Errorf("%w: input not specified", ErrInvalidArgument)
	}

	first, _ := utf8.DecodeRuneInString(input)
	return first == EndUserDefinedSedolRangePrefix, nil
}
