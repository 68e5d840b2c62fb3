package tests

import (
	"net/http"
	"testing"
)

func TestHealth(t *testing.T) {
	app := setup(t)

	req, rec := newRequest(http.MethodGet, "/api/health")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("code = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestCORSAllowsFrontendOrigin(t *testing.T) {
	app := setup(t)

	req, rec := newRequest(http.MethodGet, "/api/tasks")
	req.Header.Set("Origin", "http://localhost:3000")
	app.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Access-Control-Allow-Origin = %q, want the frontend origin", got)
	}
}
