package logger

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseLogger(t *testing.T) {
	rr := httptest.NewRecorder()
	lw := New(rr)

	lw.WriteHeader(http.StatusNotFound)
	io.WriteString(lw, "not found")

	if lw.Status() != http.StatusNotFound {
		t.Errorf("want status %v, got %v", http.StatusNotFound, lw.Status())
	}
	if lw.Bytes() != len("not found") {
		t.Errorf("want %d bytes recorded, got %d", len("not found"), lw.Bytes())
	}
	if rr.Code != http.StatusNotFound {
		t.Errorf("want status %v written through, got %v", http.StatusNotFound, rr.Code)
	}
}

func TestResponseLogger_DefaultStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	lw := New(rr)

	io.WriteString(lw, "ok")

	if lw.Status() != http.StatusOK {
		t.Errorf("want default status %v, got %v", http.StatusOK, lw.Status())
	}
}
