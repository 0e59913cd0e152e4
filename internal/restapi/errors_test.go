package restapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerErrorResponse(t *testing.T) {
	api := createTestApi(t)

	rr := httptest.NewRecorder()
	api.serverErrorResponse(rr, httptest.NewRequest("GET", "/test", nil), errors.New("test server error"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response errorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, http.StatusInternalServerError, response.Code)
	assert.Equal(t, "internal server error", response.Text)
	assert.Equal(t, 1, response.Version)
	assert.NotZero(t, response.CurrentTime)
}

func TestInvalidAPIKeyResponse(t *testing.T) {
	api := createTestApi(t)

	rr := httptest.NewRecorder()
	api.invalidAPIKeyResponse(rr, httptest.NewRequest("GET", "/test", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	var response errorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "permission denied", response.Text)
	assert.Equal(t, 1, response.Version)
}

func TestValidationErrorResponse(t *testing.T) {
	api := createTestApi(t)

	rr := httptest.NewRecorder()
	api.validationErrorResponse(rr, httptest.NewRequest("GET", "/test", nil), map[string][]string{
		"city": {"city cannot be empty"},
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var response struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, []string{"city cannot be empty"}, response.FieldErrors["city"])
}

func TestSendNotFound(t *testing.T) {
	api := createTestApi(t)

	rr := httptest.NewRecorder()
	api.sendNotFound(rr, httptest.NewRequest("GET", "/test", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	var response errorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "resource not found", response.Text)
	assert.Equal(t, 2, response.Version)
}
