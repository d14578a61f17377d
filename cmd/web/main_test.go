package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlerFillsSSHHost(t *testing.T) {
	h := newHandler("play.example.org", "2022")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "ssh -t -p 2022 play@play.example.org")
	assert.NotContains(t, rec.Body.String(), "{{.")
}

func TestHandlerUnknownPath(t *testing.T) {
	rec := httptest.NewRecorder()
	newHandler("h", "22").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
