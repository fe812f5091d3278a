package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sash/pkg/observability"
)

const fillScene = `
[shell]
width = 300
height = 90

[shell.layout]
kind = "fill"

[[control]]
name = "red"

[[control]]
name = "green"

[[control]]
name = "blue"
`

const cyclicScene = `
[shell]

[shell.layout]
kind = "form"

[[control]]
name = "a"

[control.form.left]
control = "b"

[[control]]
name = "b"

[control.form.left]
control = "a"
`

func testServer(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	return NewServer(cfg)
}

func postLayout(t *testing.T, s *Server, target, contentType string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	s := testServer(Config{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %s, want status ok", rec.Body.String())
	}
}

func TestLayoutRawManifest(t *testing.T) {
	s := testServer(Config{})

	rec := postLayout(t, s, "/api/v1/layout?format=json", "", []byte(fillScene))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	if !strings.Contains(rec.Body.String(), `"id": "red"`) {
		t.Errorf("body missing red box:\n%s", rec.Body.String())
	}
}

func TestLayoutDefaultFormat(t *testing.T) {
	s := testServer(Config{})

	rec := postLayout(t, s, "/api/v1/layout", "", []byte(fillScene))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want image/svg+xml", ct)
	}
	if !strings.Contains(rec.Body.String(), "<svg") {
		t.Error("body is not svg")
	}
}

func TestLayoutJSONEnvelope(t *testing.T) {
	s := testServer(Config{})

	body, err := json.Marshal(map[string]any{
		"source":  fillScene,
		"formats": []string{"text"},
	})
	if err != nil {
		t.Fatal(err)
	}

	rec := postLayout(t, s, "/api/v1/layout", "application/json", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q, want text/plain", ct)
	}
	if !strings.Contains(rec.Body.String(), "red") {
		t.Errorf("text body missing control:\n%s", rec.Body.String())
	}
}

func TestLayoutQueryOverrides(t *testing.T) {
	s := testServer(Config{})

	rec := postLayout(t, s, "/api/v1/layout?format=json&width=600", "", []byte(fillScene))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var out struct {
		Width int `json:"width"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Width != 600 {
		t.Errorf("frame width = %d, want 600", out.Width)
	}
}

func TestLayoutBadQuery(t *testing.T) {
	s := testServer(Config{})

	rec := postLayout(t, s, "/api/v1/layout?width=abc", "", []byte(fillScene))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestLayoutInvalidManifest(t *testing.T) {
	s := testServer(Config{})

	rec := postLayout(t, s, "/api/v1/layout", "", []byte("[[control"))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if resp.Error == "" {
		t.Error("error body should carry a message")
	}
}

func TestLayoutCircularAttachment(t *testing.T) {
	s := testServer(Config{})

	rec := postLayout(t, s, "/api/v1/layout", "", []byte(cyclicScene))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "circular") {
		t.Errorf("error body = %s, want circular attachment", rec.Body.String())
	}
}

func TestLayoutPathRejected(t *testing.T) {
	s := testServer(Config{})

	body, err := json.Marshal(map[string]any{"path": "/etc/passwd"})
	if err != nil {
		t.Fatal(err)
	}

	rec := postLayout(t, s, "/api/v1/layout", "application/json", body)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestLayoutMultipleFormats(t *testing.T) {
	s := testServer(Config{})

	body, err := json.Marshal(map[string]any{
		"source":  fillScene,
		"formats": []string{"svg", "json"},
	})
	if err != nil {
		t.Fatal(err)
	}

	rec := postLayout(t, s, "/api/v1/layout", "application/json", body)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestLayoutBodyLimit(t *testing.T) {
	s := testServer(Config{MaxBodyBytes: 16})

	rec := postLayout(t, s, "/api/v1/layout", "", []byte(fillScene))

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", rec.Code)
	}
}

func TestLayoutMethodNotAllowed(t *testing.T) {
	s := testServer(Config{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/layout", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

// recordingServerHooks counts request lifecycle events.
type recordingServerHooks struct {
	requests, responses, failures int
	lastStatus                    int
}

func (h *recordingServerHooks) OnRequest(_ context.Context, _, _ string) { h.requests++ }

func (h *recordingServerHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.responses++
	h.lastStatus = status
}

func (h *recordingServerHooks) OnError(_ context.Context, _, _ string, _ error) { h.failures++ }

func TestServerHooksNotified(t *testing.T) {
	hooks := &recordingServerHooks{}
	observability.SetServerHooks(hooks)
	t.Cleanup(observability.Reset)

	s := testServer(Config{})

	rec := postLayout(t, s, "/api/v1/layout?format=json", "", []byte(fillScene))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	postLayout(t, s, "/api/v1/layout", "", []byte("[[control"))

	if hooks.requests != 2 || hooks.responses != 2 {
		t.Errorf("requests=%d responses=%d, want 2, 2", hooks.requests, hooks.responses)
	}
	if hooks.failures != 1 {
		t.Errorf("failures = %d, want 1", hooks.failures)
	}
	if hooks.lastStatus != http.StatusUnprocessableEntity {
		t.Errorf("lastStatus = %d, want 422", hooks.lastStatus)
	}
}
