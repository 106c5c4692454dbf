package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/AkshayRaj367/Game-Smiths-Club/internal/platform/httpx"
	"github.com/AkshayRaj367/Game-Smiths-Club/internal/platform/timeouts"
	"github.com/AkshayRaj367/Game-Smiths-Club/internal/services/club/api"
	"github.com/AkshayRaj367/Game-Smiths-Club/internal/services/club/arcade"
	"github.com/AkshayRaj367/Game-Smiths-Club/internal/services/club/static"
	"github.com/AkshayRaj367/Game-Smiths-Club/internal/services/club/storage"
	"github.com/AkshayRaj367/Game-Smiths-Club/internal/services/club/templates"
	"github.com/a-h/templ"
	"github.com/klauspost/compress/gzhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	staticMaxAge = 24 * time.Hour
	arcadePath   = "/ws/arcade"
)

// HandlerOptions configures the club route tree.
type HandlerOptions struct {
	JoinOpen       bool
	ArcadeInterval time.Duration
	AllowedOrigins []string
	Now            func() time.Time
}

// NewHandler builds the club HTTP surface over store.
func NewHandler(store storage.Store, opts HandlerOptions) http.Handler {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/up", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	mux.Handle("/static/", httpx.Chain(
		http.StripPrefix("/static/", http.FileServerFS(static.FS)),
		httpx.RequireMethod(http.MethodGet),
		httpx.CacheFor(staticMaxAge),
	))
	api.NewHandler(store, store, api.Options{JoinOpen: opts.JoinOpen, Now: opts.Now}).Register(mux)
	mux.Handle(arcadePath, arcade.NewHandler(arcade.Options{Interval: opts.ArcadeInterval}))
	mux.Handle("/", landingHandler(store, opts))

	return otelhttp.NewHandler(
		httpx.Chain(
			mux,
			httpx.RequestID(),
			httpx.RecoverPanic(),
			httpx.SecurityHeaders(),
			httpx.AllowOrigins(opts.AllowedOrigins),
			compressExcept(arcadePath),
		),
		"club-web",
	)
}

// compressExcept gzips responses for clients that accept it, leaving the
// websocket upgrade path untouched.
func compressExcept(path string) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		gzipped := gzhttp.GzipHandler(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == path {
				next.ServeHTTP(w, r)
				return
			}
			gzipped.ServeHTTP(w, r)
		})
	}
}

func landingHandler(store storage.Store, opts HandlerOptions) http.Handler {
	landing := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			httpx.NotFoundJSON().ServeHTTP(w, r)
			return
		}
		ctx, cancel := context.WithTimeout(httpx.RequestContext(r), timeouts.StoreQuery)
		defer cancel()

		members, err := store.CountMembers(ctx)
		if err != nil {
			log.Printf("landing count members failed request_id=%s err=%v", httpx.RequestIDFrom(r), err)
			members = 0
		}
		registered, err := store.CountRegistrations(ctx)
		if err != nil {
			log.Printf("landing count registrations failed request_id=%s err=%v", httpx.RequestIDFrom(r), err)
			registered = 0
		}
		view := templates.NewLandingView(opts.Now(), members, registered, opts.JoinOpen)
		templ.Handler(templates.Landing(view)).ServeHTTP(w, r)
	})
	return httpx.Chain(landing, httpx.RequireMethod(http.MethodGet))
}
