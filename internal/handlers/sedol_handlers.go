package handlers

import (
	"net/http"
	"time"

	"github.com/epeers/sedolchecker/internal/models"
	"github.com/epeers/sedolchecker/internal/presenter"
	"github.com/epeers/sedolchecker/internal/sedol"
	"github.com/epeers/sedolchecker/internal/util"
	"github.com/gin-gonic/gin"
)

// SedolHandler handles SEDOL validation endpoints
type SedolHandler struct {
	validator *sedol.Validator
}

// NewSedolHandler creates a new SedolHandler. A nil validator uses the default SEDOL weights.
func NewSedolHandler(validator *sedol.Validator) *SedolHandler {
	if validator == nil {
		validator = sedol.NewDefault()
	}
	return &SedolHandler{
		validator: validator,
	}
}

// requestView is a presenter.View backed by a single HTTP request
type requestView struct {
	resp models.ValidateSedolResponse
}

func (v *requestView) InputSedol() string { return v.resp.Input }
func (v *requestView) SetIsValid(b bool) { v.resp.IsValid = b }
func (v *requestView) SetIsUserDefined(b bool) { v.resp.IsUserDefined = b }
func (v *requestView) SetValidationDetails(s string) { v.resp.ValidationDetails = s }

// present runs the presenter for input and returns what it rendered
func (h *SedolHandler) present(input string) models.ValidateSedolResponse {
	defer util.TrackTime("SedolHandler.present", time.Now())

	view := &requestView{resp: models.ValidateSedolResponse{Input: input}}
	// New only fails for a nil view
	p, _ := presenter.New(view, h.validator)
	p.OnValidate()
	return view.resp
}

func (h *SedolHandler) respond(c *gin.Context, input string) {
	c.JSON(http.StatusOK, h.present(input))
}

// Validate handles POST /sedols/validate
// @Summary Validate a SEDOL
// @Description Check the length and checksum digit of a candidate SEDOL. Invalid input is reported in the body, not as an error status.
// @Tags sedols
// @Accept json
// @Produce json
// @Param request body models.ValidateSedolRequest true "Candidate SEDOL"
// @Success 200 {object} models.ValidateSedolResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /sedols/validate [post]
func (h *SedolHandler) Validate(c *gin.Context) {
	var req models.ValidateSedolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	h.respond(c, req.Input)
}

// Get handles GET /sedols/:sedol/validation
// @Summary Validate a SEDOL from the path
// @Description Same as POST /sedols/validate with the candidate taken from the URL
// @Tags sedols
// @Produce json
// @Param sedol path string true "Candidate SEDOL"
// @Success 200 {object} models.ValidateSedolResponse
// @Router /sedols/{sedol}/validation [get]
func (h *SedolHandler) Get(c *gin.Context) {
	h.respond(c, c.Param("sedol"))
}

// Checksum handles GET /sedols/checksum
// @Summary Compute a SEDOL checksum digit
// @Description Compute the checksum digit for the first characters of a SEDOL
// @Tags sedols
// @Produce json
// @Param input query string true "SEDOL body (normally 6 characters)"
// @Success 200 {object} models.ChecksumResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /sedols/checksum [get]
func (h *SedolHandler) Checksum(c *gin.Context) {
	input := c.Query("input")

	digit, err := h.validator.CalculateChecksumDigit(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ChecksumResponse{
		Input:         input,
		ChecksumDigit: string(digit),
		Sedol:         input + string(digit),
	})
}

// Prefix handles GET /sedols/prefix
// @Summary Check the end-user-defined prefix
// @Description Report whether the input starts with the end-user-defined SEDOL prefix (9)
// @Tags sedols
// @Produce json
// @Param input query string true "Candidate SEDOL"
// @Success 200 {object} models.PrefixResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /sedols/prefix [get]
func (h *SedolHandler) Prefix(c *gin.Context) {
	input := c.Query("input")

	userDefined, err := h.validator.HasEndUserDefinedSedolPrefix(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.PrefixResponse{
		Input:         input,
		IsUserDefined: userDefined,
	})
}
