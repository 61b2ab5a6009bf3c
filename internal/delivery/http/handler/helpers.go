package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	domainerrors "local-services-marketplace/internal/domain/errors"
	"local-services-marketplace/pkg/response"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads a bounded JSON body into dst, writing a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.BadRequest(w, "Invalid request body")
		return false
	}
	return true
}

// queryInt returns 0 for a missing or malformed value so the usecase applies its default.
func queryInt(r *http.Request, key string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return v
}

// writeValidationError reports false when err is not a validation failure.
func writeValidationError(w http.ResponseWriter, err error) bool {
	var ve *domainerrors.ValidationError
	if !errors.As(err, &ve) {
		return false
	}
	response.ValidationError(w, ve.Fields)
	return true
}
