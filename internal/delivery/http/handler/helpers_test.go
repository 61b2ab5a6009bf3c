package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "local-services-marketplace/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?page=3&limit=abc&neg=-2", nil)
	assert.Equal(t, 3, queryInt(req, "page"))
	assert.Equal(t, 0, queryInt(req, "limit"))
	assert.Equal(t, -2, queryInt(req, "neg"))
	assert.Equal(t, 0, queryInt(req, "missing"))
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	rec := httptest.NewRecorder()
	ok := decodeJSON(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"ada"}`)), &dst)
	require.True(t, ok)
	require.Equal(t, "ada", dst.Name)

	rec = httptest.NewRecorder()
	ok = decodeJSON(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`)), &dst)
	require.False(t, ok)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	huge := `{"name":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	ok = decodeJSON(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(huge)), &dst)
	require.False(t, ok)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWriteValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	require.False(t, writeValidationError(rec, domainerrors.ErrConflict))

	rec = httptest.NewRecorder()
	require.True(t, writeValidationError(rec, domainerrors.NewValidationError(map[string]string{"bio": "bio is required"})))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), `"bio":"bio is required"`)
}
