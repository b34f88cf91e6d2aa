package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/epeers/sedolchecker/internal/handlers"
	"github.com/epeers/sedolchecker/internal/models"
	"github.com/epeers/sedolchecker/internal/sedol"
	"github.com/gin-gonic/gin"
)

// setupSedolRouter creates a minimal router with the SEDOL endpoints.
func setupSedolRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	sedolHandler := handlers.NewSedolHandler(sedol.NewDefault())

	router := gin.New()
	sedols := router.Group("/sedols")
	sedols.POST("/validate", sedolHandler.Validate)
	sedols.GET("/checksum", sedolHandler.Checksum)
	sedols.GET("/prefix", sedolHandler.Prefix)
	sedols.GET("/:sedol/validation", sedolHandler.Get)
	return router
}

func postValidate(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest("POST", "/sedols/validate", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeValidateResponse(t *testing.T, w *httptest.ResponseRecorder) models.ValidateSedolResponse {
	t.Helper()
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.ValidateSedolResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	return resp
}

func TestValidate_ValidSedol(t *testing.T) {
	router := setupSedolRouter()

	resp := decodeValidateResponse(t, postValidate(t, router, `{"input":"0709954"}`))

	if resp.Input != "0709954" {
		t.Errorf("expected input '0709954', got %q", resp.Input)
	}
	if !resp.IsValid {
		t.Errorf("expected is_valid=true, details: %q", resp.ValidationDetails)
	}
	if resp.IsUserDefined {
		t.Error("expected is_user_defined=false")
	}
	if resp.ValidationDetails != "" {
		t.Errorf("expected empty details, got %q", resp.ValidationDetails)
	}
}

func TestValidate_InvalidSedolIsNotAnError(t *testing.T) {
	router := setupSedolRouter()

	tests := []struct {
		body    string
		details string
	}{
		{`{"input":"0709951"}`, "Checksum digit does not agree with the first 6 characters."},
		{`{"input":"12345"}`, "Input string was not 7-characters long."},
		{`{"input":""}`, "Input string was not 7-characters long."},
		{`{}`, "Input string was not 7-characters long."},
	}

	for _, tt := range tests {
		resp := decodeValidateResponse(t, postValidate(t, router, tt.body))
		if resp.IsValid {
			t.Errorf("%s: expected is_valid=false", tt.body)
		}
		if resp.ValidationDetails != tt.details {
			t.Errorf("%s: expected details %q, got %q", tt.body, tt.details, resp.ValidationDetails)
		}
	}
}

func TestValidate_MalformedJSON(t *testing.T) {
	router := setupSedolRouter()

	w := postValidate(t, router, `{"input":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error != "bad_request" {
		t.Errorf("expected error 'bad_request', got %q", resp.Error)
	}
}

func TestGet_ValidatesPathParam(t *testing.T) {
	router := setupSedolRouter()

	req, _ := http.NewRequest("GET", "/sedols/B0YBKJ7/validation", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := decodeValidateResponse(t, w)
	if resp.Input != "B0YBKJ7" || !resp.IsValid {
		t.Errorf("expected B0YBKJ7 to be valid, got %+v", resp)
	}
}

func TestChecksum(t *testing.T) {
	router := setupSedolRouter()

	req, _ := http.NewRequest("GET", "/sedols/checksum?input=070995", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.ChecksumResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.ChecksumDigit != "4" {
		t.Errorf("expected checksum digit '4', got %q", resp.ChecksumDigit)
	}
	if resp.Sedol != "0709954" {
		t.Errorf("expected sedol '0709954', got %q", resp.Sedol)
	}
}

func TestChecksum_MissingInput(t *testing.T) {
	router := setupSedolRouter()

	req, _ := http.NewRequest("GET", "/sedols/checksum", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestPrefix(t *testing.T) {
	router := setupSedolRouter()

	tests := []struct {
		input string
		want  bool
	}{
		{"9123456", true},
		{"1234567", false},
	}

	for _, tt := range tests {
		req, _ := http.NewRequest("GET", "/sedols/prefix?input="+tt.input, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d: %s", tt.input, w.Code, w.Body.String())
		}

		var resp models.PrefixResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if resp.IsUserDefined != tt.want {
			t.Errorf("%s: expected is_user_defined=%v, got %v", tt.input, tt.want, resp.IsUserDefined)
		}
	}
}

func TestPrefix_MissingInput(t *testing.T) {
	router := setupSedolRouter()

	req, _ := http.NewRequest("GET", "/sedols/prefix?input=", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestNewSedolHandler_NilValidatorUsesDefaults(t *testing.T) {
	gin.SetMode(gin.TestMode)

	sedolHandler := handlers.NewSedolHandler(nil)
	router := gin.New()
	router.POST("/sedols/validate", sedolHandler.Validate)
	router.GET("/sedols/checksum", sedolHandler.Checksum)

	resp := decodeValidateResponse(t, postValidate(t, router, `{"input":"0709954"}`))
	if !resp.IsValid {
		t.Errorf("expected 0709954 to be valid, details: %q", resp.ValidationDetails)
	}

	req, _ := http.NewRequest("GET", "/sedols/checksum?input=070995", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}
