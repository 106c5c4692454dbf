package otel_test

import (
	"context"
	"strings"
	"testing"

	"github.com/AkshayRaj367/Game-Smiths-Club/internal/platform/otel"
)

func TestLoadConfigReadsEnvironment(t *testing.T) {
	t.Setenv("GAMESMITHS_OTEL_ENDPOINT", " http://collector:4318 ")
	t.Setenv("GAMESMITHS_OTEL_ENABLED", "")
	t.Setenv("GAMESMITHS_OTEL_SAMPLE_RATIO", "0.25")

	cfg, err := otel.LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.Active() {
		t.Fatal("expected tracing active with endpoint set")
	}
	if cfg.SampleRatio != 0.25 {
		t.Fatalf("sample ratio = %v, want 0.25", cfg.SampleRatio)
	}
}

func TestLoadConfigRejectsBadRatio(t *testing.T) {
	t.Setenv("GAMESMITHS_OTEL_SAMPLE_RATIO", "most")

	if _, err := otel.LoadConfig(); err == nil {
		t.Fatal("expected parse error")
	}
	if _, err := otel.Setup(context.Background(), "web"); err == nil {
		t.Fatal("expected Setup to surface the parse error")
	}
}

func TestConfigActive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  otel.Config
		want bool
	}{
		{name: "no endpoint", cfg: otel.Config{}, want: false},
		{name: "blank endpoint", cfg: otel.Config{Endpoint: "  "}, want: false},
		{name: "endpoint", cfg: otel.Config{Endpoint: "http://collector:4318"}, want: true},
		{name: "explicitly enabled", cfg: otel.Config{Endpoint: "http://collector:4318", Enabled: "true"}, want: true},
		{name: "disabled wins", cfg: otel.Config{Endpoint: "http://collector:4318", Enabled: "FALSE"}, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.cfg.Active(); got != tc.want {
				t.Fatalf("Active() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestConfigSampler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ratio float64
		want  string
	}{
		{ratio: 1, want: "AlwaysOnSampler"},
		{ratio: 3, want: "AlwaysOnSampler"},
		{ratio: 0, want: "AlwaysOffSampler"},
		{ratio: -1, want: "AlwaysOffSampler"},
		{ratio: 0.5, want: "TraceIDRatioBased{0.5}"},
	}
	for _, tc := range tests {
		desc := otel.Config{SampleRatio: tc.ratio}.Sampler().Description()
		if !strings.HasPrefix(desc, "ParentBased{root:"+tc.want) {
			t.Fatalf("ratio %v sampler = %q, want parent-based %s", tc.ratio, desc, tc.want)
		}
	}
}

func TestServiceName(t *testing.T) {
	t.Parallel()

	if got := otel.ServiceName(" web "); got != "gamesmiths-web" {
		t.Fatalf("ServiceName() = %q", got)
	}
}

func TestSetupInactiveIsNoop(t *testing.T) {
	t.Parallel()

	for _, cfg := range []otel.Config{
		{},
		{Endpoint: "http://localhost:4318", Enabled: "false"},
	} {
		shutdown, err := otel.SetupWithConfig(context.Background(), "web", cfg)
		if err != nil {
			t.Fatalf("setup %+v: %v", cfg, err)
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if err := shutdown(ctx); err != nil {
			t.Fatalf("noop shutdown should not error: %v", err)
		}
	}
}

func TestSetupInstallsProvider(t *testing.T) {
	// Non-routable collector; nothing is exported before shutdown.
	t.Setenv("GAMESMITHS_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("GAMESMITHS_OTEL_ENABLED", "")
	t.Setenv("GAMESMITHS_OTEL_SAMPLE_RATIO", "0.1")

	shutdown, err := otel.Setup(context.Background(), "arcade")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}
