package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"brandcraft/internal/models"
)

// maxGenerateBody caps the POST /generate body. The field limits are far
// smaller; this only stops oversized payloads before decoding.
const maxGenerateBody = 64 << 10

// Client-facing error messages.
const (
	msgInvalidJSON  = "Invalid JSON body"
	msgBodyTooLarge = "Request body too large"
)

// decodeGenerationRequest reads and validates a generation request. On
// failure it returns the HTTP status and message to send; status is 0 when
// the request is acceptable.
func decodeGenerationRequest(w http.ResponseWriter, r *http.Request) (models.GenerationRequest, int, string) {
	var req models.GenerationRequest

	r.Body = http.MaxBytesReader(w, r.Body, maxGenerateBody)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, http.StatusRequestEntityTooLarge, msgBodyTooLarge
		}
		return req, http.StatusBadRequest, msgInvalidJSON
	}

	if msg := req.Validate(); msg != "" {
		return req, http.StatusBadRequest, msg
	}
	return req, 0, ""
}
