package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wisherr/wisherr-ui/internal/adapters/wisherr"
	apperrors "github.com/wisherr/wisherr-ui/internal/errors"
)

// DecodeJSON decodes the request body into dst. Returns false when decoding
// fails, in which case the error response has already been written.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		WriteJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_json", Message: err.Error()})
		return false
	}
	return true
}

// WriteJSON writes a JSON response with the given status code and data.
// The payload is encoded to a buffer first so an encoding failure never
// produces a half-written body.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		// Client disconnects cannot be recovered from here.
		return
	}
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// WriteError maps an error to its HTTP status and writes a JSON error body.
// Backend API errors keep their original status so the frontend sees the
// same contract it would against the backend directly.
func WriteError(w http.ResponseWriter, err error) {
	var apiErr *wisherr.APIError
	if errors.As(err, &apiErr) {
		WriteJSON(w, apiErr.StatusCode, errorBody{Error: "backend_error", Message: apiErr.Detail})
		return
	}

	code := apperrors.GetCode(err)
	body := errorBody{Error: string(code), Message: err.Error(), Field: apperrors.GetField(err)}
	WriteJSON(w, statusForCode(code), body)
}

func statusForCode(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeConflict:
		return http.StatusConflict
	case apperrors.ErrCodeValidation:
		return http.StatusBadRequest
	case apperrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case apperrors.ErrCodeForbidden:
		return http.StatusForbidden
	case apperrors.ErrCodeUnavailable:
		return http.StatusBadGateway
	case apperrors.ErrCodeCanceled:
		return 499
	default:
		return http.StatusInternalServerError
	}
}
