package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRespondErrorUsesMessageKey(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondError(rr, http.StatusNotFound, "Blog post not found")

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if got := rr.Body.String(); got != "{\"message\":\"Blog post not found\"}\n" {
		t.Fatalf("unexpected body %q", got)
	}
}

func TestRespondText(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondText(rr, http.StatusOK, "ok")

	if rr.Body.String() != "ok" {
		t.Fatalf("unexpected body %q", rr.Body.String())
	}
}
