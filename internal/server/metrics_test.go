package server

import (
	"context"
	"testing"

	"github.com/teemow/mailsift/internal/instrumentation"
)

func TestNewMetricsServerRequiresEnabledProvider(t *testing.T) {
	if _, err := NewMetricsServer(":9090", nil); err == nil {
		t.Error("NewMetricsServer(nil provider) error = nil, want error")
	}

	// Disabled provider is rejected too
	provider, err := instrumentation.NewProvider(context.Background(), instrumentation.Config{
		ServiceName: "mailsift",
		Enabled:     false,
	})
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	if _, err := NewMetricsServer(":9090", provider); err == nil {
		t.Error("NewMetricsServer(disabled provider) error = nil, want error")
	}
}

func TestNewMetricsServerDefaultAddr(t *testing.T) {
	provider, err := instrumentation.NewProvider(context.Background(), instrumentation.Config{
		ServiceName:     "mailsift",
		Enabled:         true,
		MetricsExporter: instrumentation.ExporterStdout,
	})
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer provider.Shutdown(context.Background())

	s, err := NewMetricsServer("", provider)
	if err != nil {
		t.Fatalf("NewMetricsServer() error = %v", err)
	}
	if s.Addr() != DefaultMetricsAddr {
		t.Errorf("Addr() = %v, want %v", s.Addr(), DefaultMetricsAddr)
	}
}

func TestMetricsServerShutdownBeforeStart(t *testing.T) {
	s := &MetricsServer{addr: ":9090"}
	if err := s.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v, want nil", err)
	}
}
