package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/h2non/gock"
	log "github.com/sirupsen/logrus"

	"github.com/metrue/discussing/pkg/models"
)

func TestMain(m *testing.M) {
	log.SetLevel(log.PanicLevel)
	exitCode := m.Run()
	os.Exit(exitCode)
}

func TestAPI_commentsHandler(t *testing.T) {
	defer gock.Off()

	gock.New("https://www.v2ex.com").
		Get("/api/replies/show.json").
		MatchParam("topic_id", "99").
		Reply(http.StatusOK).
		BodyString(`[{"id":5,"member":{"username":"u"},"content":"hi","created":1000}]`)

	api := New("discussing-test", &models.Options{CacheTimeout: -1}, nil)

	req := httptest.NewRequest(http.MethodGet, "/comments?platform=v2ex&url=https%3A%2F%2Fv2ex.com%2Ft%2F99", nil)
	rr := httptest.NewRecorder()
	api.Router().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("want status code %v, got status code %v", http.StatusOK, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("want Content-Type application/json, got %q", ct)
	}
	if rr.Header().Get("X-Request-Id") == "" {
		t.Error("want X-Request-Id header set")
	}

	b, err := io.ReadAll(rr.Body)
	if err != nil {
		t.Fatalf("unexpected error while reading response body: %v", err)
	}

	var resp CommentsResponse
	if err := json.Unmarshal(b, &resp); err != nil {
		t.Fatalf("unexpected error while unmarshaling response: %v", err)
	}
	if len(resp.Comments) != 1 {
		t.Fatalf("want 1 comment, got %d", len(resp.Comments))
	}
	if resp.Comments[0].ID != "v2ex-5" {
		t.Errorf("want comment ID %q, got %q", "v2ex-5", resp.Comments[0].ID)
	}
}

func TestAPI_commentsHandlerCacheControl(t *testing.T) {
	defer gock.Off()

	gock.New("https://www.v2ex.com").
		Get("/api/replies/show.json").
		Reply(http.StatusOK).
		BodyString(`[]`)

	api := New("discussing-test", &models.Options{CacheTimeout: 120}, nil)

	req := httptest.NewRequest(http.MethodGet, "/comments?platform=v2ex&url=https%3A%2F%2Fv2ex.com%2Ft%2F100", nil)
	rr := httptest.NewRecorder()
	api.Router().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("want status code %v, got status code %v", http.StatusOK, rr.Code)
	}
	if cc := rr.Header().Get("Cache-Control"); cc != "public, max-age=120" {
		t.Errorf("want Cache-Control %q, got %q", "public, max-age=120", cc)
	}
}

func TestAPI_commentsHandlerBadRequest(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"unknown platform", "/comments?platform=myspace&url=https%3A%2F%2Fexample.com"},
		{"missing platform", "/comments?url=https%3A%2F%2Fexample.com"},
		{"missing url", "/comments?platform=v2ex"},
	}

	api := New("discussing-test", &models.Options{CacheTimeout: -1}, nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rr := httptest.NewRecorder()
			api.Router().ServeHTTP(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Errorf("want status code %v, got status code %v", http.StatusBadRequest, rr.Code)
			}

			var resp ErrorResponse
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("unexpected error while decoding error body: %v", err)
			}
			if resp.Error == "" {
				t.Error("want non-empty error message in body")
			}
		})
	}
}

func TestAPI_commentsHandlerFailedPlatform(t *testing.T) {
	defer gock.Off()

	gock.New("https://www.v2ex.com").
		Get("/api/replies/show.json").
		Reply(http.StatusBadGateway)

	api := New("discussing-test", &models.Options{CacheTimeout: -1}, nil)

	req := httptest.NewRequest(http.MethodGet, "/comments?platform=v2ex&url=https%3A%2F%2Fv2ex.com%2Ft%2F101", nil)
	rr := httptest.NewRecorder()
	api.Router().ServeHTTP(rr, req)

	// A failing platform is not an error for the embed: it renders as
	// "no comments found".
	if rr.Code != http.StatusOK {
		t.Fatalf("want status code %v, got status code %v", http.StatusOK, rr.Code)
	}

	var resp CommentsResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("unexpected error while decoding response: %v", err)
	}
	if len(resp.Comments) != 0 {
		t.Errorf("want no comments for failed platform, got %d", len(resp.Comments))
	}
}
