package observability

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cricsight-io/cricsight/internal/config"
)

func TestStartPprofServer_Disabled(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv, err := StartPprofServer(config.Config{PprofEnabled: false}, logger)
	if err != nil {
		t.Fatalf("start pprof: %v", err)
	}
	if srv != nil {
		t.Fatal("expected no server when disabled")
	}
	if err := StopPprofServer(srv, logger, time.Second); err != nil {
		t.Fatalf("stop nil pprof server: %v", err)
	}
}

func TestPprofMux_ServesIndex(t *testing.T) {
	rec := httptest.NewRecorder()
	pprofMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
