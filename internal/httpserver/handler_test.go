package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"master-data-barang/pkg/filestore"
	"master-data-barang/pkg/response"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// newTestServer stands up the full server with all routes mapped and no
// database attached.
func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	files, err := filestore.New(filestore.Config{
		Dir:          t.TempDir(),
		PublicPrefix: "/uploads",
	})
	if err != nil {
		t.Fatalf("filestore.New: %v", err)
	}

	srv, err := New(&mockLogger{}, Config{
		Logger:          &mockLogger{},
		Port:            8000,
		Mode:            gin.TestMode,
		Environment:     "development",
		Filestore:       files,
		RateLimitPerMin: 60,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := srv.mapHandlers(); err != nil {
		t.Fatalf("mapHandlers: %v", err)
	}
	return srv
}

func get(t *testing.T, srv *HTTPServer, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)

	t.Run("Root Message", func(t *testing.T) {
		w := get(t, srv, "/")

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}

		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal body: %v", err)
		}
		if body["message"] != RootMessage {
			t.Errorf("expected message %q, got %q", RootMessage, body["message"])
		}
	})

	t.Run("Probes", func(t *testing.T) {
		wantStatus := map[string]string{
			"/health": "healthy",
			"/ready":  "ready",
			"/live":   "alive",
		}
		for path, status := range wantStatus {
			w := get(t, srv, path)

			if w.Code != http.StatusOK {
				t.Errorf("%s: expected 200, got %d", path, w.Code)
				continue
			}

			var resp response.Resp
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("%s: unmarshal body: %v", path, err)
			}
			data, ok := resp.Data.(map[string]interface{})
			if !ok {
				t.Errorf("%s: unexpected data payload: %v", path, resp.Data)
				continue
			}
			if data["status"] != status {
				t.Errorf("%s: expected status %q, got %v", path, status, data["status"])
			}
			if data["service"] != ServiceName {
				t.Errorf("%s: expected service %q, got %v", path, ServiceName, data["service"])
			}
		}
	})

	t.Run("Domain Routes Registered", func(t *testing.T) {
		// No database: diagnostics still answers 200, items rejects the
		// empty POST with 400 rather than 404.
		if w := get(t, srv, "/test"); w.Code != http.StatusOK {
			t.Errorf("GET /test: expected 200, got %d", w.Code)
		}

		w := httptest.NewRecorder()
		srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/items", nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("POST /api/items: expected 400, got %d", w.Code)
		}
	})
}
