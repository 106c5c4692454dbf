package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/AkshayRaj367/Game-Smiths-Club/internal/platform/httpx"
	"github.com/AkshayRaj367/Game-Smiths-Club/internal/services/club/storage/sqlite"
	"github.com/klauspost/compress/gzip"
	"golang.org/x/net/websocket"
)

func newTestHandler(t *testing.T, joinOpen bool) http.Handler {
	t.Helper()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "club.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	now := time.Date(2026, time.October, 10, 12, 0, 0, 0, time.UTC)
	return NewHandler(store, HandlerOptions{
		JoinOpen:       joinOpen,
		ArcadeInterval: 5 * time.Millisecond,
		Now:            func() time.Time { return now },
	})
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestLandingRendersLiveCounts(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, true)
	rec := serve(h, http.MethodPost, "/api/join", `{"name":"Ada","email":"ada@example.com","interest":"Game Dev"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("join status = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = serve(h, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("landing status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"<title>Game Smiths Club</title>",
		`id="memberCount" data-target="1"`,
		`id="registeredCount" data-target="0"`,
		`<span id="days">06</span>`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("landing body missing %q", want)
		}
	}
	if rid := rec.Header().Get("X-Request-ID"); !strings.HasPrefix(rid, "club-") {
		t.Fatalf("X-Request-ID = %q, want club- prefix", rid)
	}
}

func TestRoutes(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, false)
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{name: "health", method: http.MethodGet, path: "/up", wantStatus: http.StatusOK, wantBody: "OK"},
		{name: "unknown page", method: http.MethodGet, path: "/nope", wantStatus: http.StatusNotFound, wantBody: "Route not found"},
		{name: "unknown api", method: http.MethodGet, path: "/api/nope", wantStatus: http.StatusNotFound, wantBody: "Route not found"},
		{name: "landing post", method: http.MethodPost, path: "/", wantStatus: http.StatusMethodNotAllowed},
		{name: "stylesheet", method: http.MethodGet, path: "/static/site.css", wantStatus: http.StatusOK, wantBody: "--neon-cyan"},
		{name: "join closed", method: http.MethodPost, path: "/api/join", body: `{"name":"Ada","email":"ada@example.com","interest":"x"}`, wantStatus: http.StatusForbidden, wantBody: "Registration period has ended."},
		{name: "registration count", method: http.MethodGet, path: "/api/registrations/count", wantStatus: http.StatusOK, wantBody: `"count":0`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(h, tc.method, tc.path, tc.body)
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tc.wantStatus, rec.Body.String())
			}
			if tc.wantBody != "" && !strings.Contains(rec.Body.String(), tc.wantBody) {
				t.Fatalf("body = %q, want substring %q", rec.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestStaticAssetsAreCached(t *testing.T) {
	t.Parallel()

	rec := serve(newTestHandler(t, true), http.MethodGet, "/static/site.js", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Cache-Control"); got != "public, max-age=86400" {
		t.Fatalf("Cache-Control = %q", got)
	}
}

func TestResponsesCarrySecurityHeaders(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, true)
	for _, path := range []string{"/", "/api/members/count", "/static/site.css", "/missing"} {
		rec := serve(h, http.MethodGet, path, "")
		if got := rec.Header().Get("Content-Security-Policy"); got != httpx.ContentSecurityPolicy {
			t.Fatalf("%s Content-Security-Policy = %q", path, got)
		}
		if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
			t.Fatalf("%s X-Content-Type-Options = %q", path, got)
		}
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Fatalf("%s Access-Control-Allow-Origin = %q, want none by default", path, got)
		}
	}
}

func TestStaticAssetsAreGzipped(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/static/site.js", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	newTestHandler(t, true).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("Content-Encoding = %q, want gzip", got)
	}
	zr, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	body, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("read gzip body: %v", err)
	}
	if !strings.Contains(string(body), "/ws/arcade") {
		t.Fatalf("unexpected script body: %.80q", body)
	}
}

func TestArcadeSocketServedThroughChain(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(newTestHandler(t, true))
	t.Cleanup(srv.Close)

	cfg, err := websocket.NewConfig("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws/arcade?game=snake", srv.URL)
	if err != nil {
		t.Fatalf("websocket config: %v", err)
	}
	cfg.Header = http.Header{"Accept-Encoding": {"gzip"}}
	conn, err := websocket.DialConfig(cfg)
	if err != nil {
		t.Fatalf("dial arcade: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	decoder := json.NewDecoder(conn)
	for range 10 {
		var frame struct {
			Type string `json:"type"`
		}
		if err := decoder.Decode(&frame); err != nil {
			t.Fatalf("decode frame: %v", err)
		}
		if frame.Type == "snake.state" {
			return
		}
	}
	t.Fatal("no snake.state frame received")
}

func TestConcurrentRegistrationsAllSucceed(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, true)
	const signUps = 40
	var (
		mu     sync.Mutex
		counts = map[int]int{}
		wg     sync.WaitGroup
	)
	for i := range signUps {
		wg.Add(1)
		go func() {
			defer wg.Done()
			body := fmt.Sprintf(
				`{"name":"Student %02d","email":"student%02d@example.com","phone":"9876543210","rollNumber":"21bce%04d","branch":"CSE","year":"1st Year","section":"a","interest":"Coding"}`,
				i, i, i,
			)
			rec := serve(h, http.MethodPost, "/api/register", body)
			mu.Lock()
			counts[rec.Code]++
			mu.Unlock()
		}()
	}
	wg.Wait()
	if counts[http.StatusCreated] != signUps {
		t.Fatalf("status counts = %v, want %d created", counts, signUps)
	}

	rec := serve(h, http.MethodGet, "/api/registrations/count", "")
	if want := fmt.Sprintf(`"count":%d`, signUps); !strings.Contains(rec.Body.String(), want) {
		t.Fatalf("count body = %s, want %s", rec.Body.String(), want)
	}
}

func TestNotFoundIsJSONEnvelope(t *testing.T) {
	t.Parallel()

	rec := serve(newTestHandler(t, true), http.MethodGet, "/missing", "")
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Success || body.Message != "Route not found" {
		t.Fatalf("body = %+v", body)
	}
}

func TestNewServerValidatesConfig(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(Config{DBPath: filepath.Join(t.TempDir(), "club.db")}); err == nil {
		t.Fatal("expected error for missing http address")
	}
	if _, err := NewServer(Config{HTTPAddr: ":0"}); err == nil {
		t.Fatal("expected error for missing database path")
	}
}

func TestServerStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	server, err := NewServer(Config{
		HTTPAddr: "127.0.0.1:0",
		DBPath:   filepath.Join(t.TempDir(), "nested", "club.db"),
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.ListenAndServe(ctx)
	}()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("ListenAndServe() = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
