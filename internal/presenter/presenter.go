package presenter

import (
	"errors"

	"github.com/epeers/sedolchecker/internal/sedol"
	log "github.com/sirupsen/logrus"
)

var ErrViewNotInitialized = errors.New("view not initialized")

// View is anything that can supply a candidate SEDOL and display the verdict
type View interface {
	InputSedol() string
	SetIsValid(bool)
	SetIsUserDefined(bool)
	SetValidationDetails(string)
}

// SedolValidator validates a candidate SEDOL
type SedolValidator interface {
	ValidateSedol(input string) sedol.ValidationResult
}

// Presenter connects a View to a SedolValidator
type Presenter struct {
	view      View
	validator SedolValidator
}

// New creates a Presenter for view. A nil validator, including a nil
// *sedol.Validator, uses the default SEDOL weights.
func New(view View, validator SedolValidator) (*Presenter, error) {
	if view == nil {
		return nil, ErrViewNotInitialized
	}
	if v, ok := validator.(*sedol.Validator); validator == nil || (ok && v == nil) {
		validator = sedol.NewDefault()
	}

	return &Presenter{
		view:      view,
		validator: validator,
	}, nil
}

// OnValidate validates the view's input and writes the result back to the view
func (p *Presenter) OnValidate() {
	input := p.view.InputSedol()
	result := p.validator.ValidateSedol(input)

	if !result.IsValidSedol() {
		log.Debugf("SEDOL %q rejected: %s", input, result.ValidationDetails())
	}

	p.view.SetIsValid(result.IsValidSedol())
	p.view.SetIsUserDefined(result.IsUserDefined())
	p.view.SetValidationDetails(result.ValidationDetails())
}
