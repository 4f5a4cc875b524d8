package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func get(t *testing.T, r *Router, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestExactRoute(t *testing.T) {
	r := New()
	r.GET("/api/v1/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, get(t, r, http.MethodGet, "/api/v1/health").Code)
	assert.Equal(t, http.StatusNotFound, get(t, r, http.MethodGet, "/api/v1/nothing").Code)
}

func TestMethodNotAllowed(t *testing.T) {
	r := New()
	r.GET("/api/v1/exports", func(w http.ResponseWriter, req *http.Request) {})

	assert.Equal(t, http.StatusMethodNotAllowed, get(t, r, http.MethodDelete, "/api/v1/exports").Code)
}

func TestWildcardPrefix(t *testing.T) {
	r := New()
	var seen string
	r.GET("/api/v1/download/*", func(w http.ResponseWriter, req *http.Request) {
		seen = req.URL.Path
	})

	rec := get(t, r, http.MethodGet, "/api/v1/download/abc/report.csv")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/api/v1/download/abc/report.csv", seen)
}

func TestExactBeatsWildcard(t *testing.T) {
	r := New()
	r.GET("/api/v1/exports/*", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.GET("/api/v1/exports", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, get(t, r, http.MethodGet, "/api/v1/exports").Code)
	assert.Equal(t, http.StatusTeapot, get(t, r, http.MethodGet, "/api/v1/exports/some-id").Code)
}
