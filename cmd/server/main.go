package main

import (
    "compress/gzip"
    "context"
    "encoding/json"
    "io"
    "log"
    "net/http"
    "os"
    "os/signal"
    "strings"
    "sync"
    "syscall"
    "time"
    "unicode/utf8"

    "stockresolver/internal/backend"
    "stockresolver/internal/config"
    "stockresolver/internal/enrich"
    "stockresolver/internal/httpx"
    "stockresolver/internal/logo"
    "stockresolver/internal/search"
    "stockresolver/internal/search/yahoo"
)

// maxSuggestions caps the /search payload; enrichment already stops at the
// same prefix.
const maxSuggestions = 7

type searchResponse struct {
    Results []search.Suggestion `json:"results"`
}

type suggester interface {
    Search(ctx context.Context, term string) []search.Suggestion
}

type enricher interface {
    Enrich(ctx context.Context, suggestions []search.Suggestion) []search.Suggestion
}

type logoResolver interface {
    Resolve(ctx context.Context, symbol, website string) (logo.Asset, error)
}

func main() {
    cfgPath := os.Getenv("CONFIG_FILE")
    cfg, err := config.Load(cfgPath)
    if err != nil { log.Fatalf("config: %v", err) }

    if cfg.Logo.APIKey == "" {
        log.Println("warning: no logo API key configured; primary logo provider runs unauthenticated")
    }
    if cfg.Backend.BaseURL == "" {
        log.Println("warning: API_BASE not set; website enrichment disabled")
    }

    timeout := time.Duration(cfg.Server.RequestTimeoutSec) * time.Second
    httpClient := httpx.New(timeout)

    searchSvc := search.NewService(
        yahoo.NewClient(
            yahoo.WithBaseURL(cfg.Search.Endpoint),
            yahoo.WithHTTPClient(httpClient.HTTP),
        ),
        cfg.Search.QuotesCount,
    )

    var stocks enrich.StockFetcher
    if cfg.Backend.BaseURL != "" {
        stocks = backend.New(cfg.Backend.BaseURL, timeout)
    }
    enr := enrich.New(stocks, cfg.Search.EnrichTop, time.Duration(cfg.Search.EnrichTimeoutMs)*time.Millisecond)

    logos := &logo.Resolver{Providers: []logo.Provider{
        logo.NewLogoDev(logo.LogoDevConfig{Base: cfg.Logo.Base, APIKey: cfg.Logo.APIKey}, httpClient),
        logo.NewClearbit(logo.ClearbitConfig{Base: cfg.Logo.ClearbitBase}, httpClient),
    }}

    mux := http.NewServeMux()
    mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusOK)
        _, _ = w.Write([]byte("ok"))
    })
    mux.Handle("GET /search", withGzip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        handleSearch(w, r, searchSvc, enr, timeout)
    })))
    mux.HandleFunc("GET /logo/{symbol}", func(w http.ResponseWriter, r *http.Request) {
        handleLogo(w, r, logos, timeout)
    })

    srv := &http.Server{
        Addr:              ":" + cfg.Server.Port,
        Handler:           withCORS(recoverPanic(mux)),
        ReadHeaderTimeout: 5 * time.Second,
        ReadTimeout:       15 * time.Second,
        WriteTimeout:      20 * time.Second,
        IdleTimeout:       60 * time.Second,
    }

    go func() {
        log.Printf("server listening on :%s", cfg.Server.Port)
        if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            log.Fatalf("server: %v", err)
        }
    }()

    // graceful shutdown
    ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
    defer stop()
    <-ctx.Done()
    shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()
    _ = srv.Shutdown(shutdownCtx)
}

// handleSearch serves suggestions. Errors degrade to {"results":[]} with
// HTTP 200; search-as-you-type never sees a hard failure.
func handleSearch(w http.ResponseWriter, r *http.Request, svc suggester, enr enricher, timeout time.Duration) {
    w.Header().Set("Content-Type", "application/json; charset=utf-8")
    term := strings.TrimSpace(r.URL.Query().Get("q"))

    var results []search.Suggestion
    switch {
    case term == "":
        // short-circuit: no upstream call of any kind
    case utf8.RuneCountInString(term) < 2:
        results = search.Defaults()
    default:
        ctx, cancel := context.WithTimeout(r.Context(), timeout)
        defer cancel()
        results = enr.Enrich(ctx, svc.Search(ctx, term))
    }
    if len(results) > maxSuggestions { results = results[:maxSuggestions] }
    if results == nil { results = []search.Suggestion{} }

    w.WriteHeader(http.StatusOK)
    enc := json.NewEncoder(w)
    enc.SetEscapeHTML(false)
    _ = enc.Encode(searchResponse{Results: results})
}

// handleLogo serves the resolved image, or the fixed 404 body once every
// provider stage has failed.
func handleLogo(w http.ResponseWriter, r *http.Request, res logoResolver, timeout time.Duration) {
    symbol := r.PathValue("symbol")
    website := r.URL.Query().Get("website")

    ctx, cancel := context.WithTimeout(r.Context(), timeout)
    defer cancel()
    asset, err := res.Resolve(ctx, symbol, website)
    if err != nil {
        w.Header().Set("Content-Type", "text/plain; charset=utf-8")
        w.WriteHeader(http.StatusNotFound)
        _, _ = w.Write([]byte("Logo not found"))
        return
    }
    w.Header().Set("Content-Type", asset.ContentType)
    // Origin reads stay uncached; downstream/CDN may hold the response for
    // an hour.
    w.Header().Set("Cache-Control", "public, max-age=3600, s-maxage=3600, immutable")
    w.WriteHeader(http.StatusOK)
    _, _ = w.Write(asset.Bytes)
}

func withCORS(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.Header().Set("Access-Control-Allow-Origin", "*")
        w.Header().Set("Access-Control-Allow-Methods", "GET,OPTIONS")
        w.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
        if r.Method == http.MethodOptions {
            w.WriteHeader(http.StatusNoContent)
            return
        }
        next.ServeHTTP(w, r)
    })
}

// withGzip compresses response when client supports gzip.
func withGzip(next http.Handler) http.Handler {
    var gzPool = sync.Pool{New: func() any {
        // Prefer best speed to reduce CPU usage since payloads are JSON
        w, _ := gzip.NewWriterLevel(io.Discard, gzip.BestSpeed)
        return w
    }}
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
            next.ServeHTTP(w, r)
            return
        }
        gz := gzPool.Get().(*gzip.Writer)
        gz.Reset(w)
        defer func() {
            _ = gz.Close()
            gz.Reset(io.Discard)
            gzPool.Put(gz)
        }()
        w.Header().Set("Content-Encoding", "gzip")
        w.Header().Add("Vary", "Accept-Encoding")
        gw := gzipResponseWriter{ResponseWriter: w, Writer: gz}
        next.ServeHTTP(gw, r)
    })
}

type gzipResponseWriter struct {
    http.ResponseWriter
    Writer io.Writer
}

func (g gzipResponseWriter) Write(b []byte) (int, error) {
    return g.Writer.Write(b)
}

// recoverPanic protects handlers from panics.
func recoverPanic(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        defer func() {
            if rec := recover(); rec != nil {
                http.Error(w, "internal server error", http.StatusInternalServerError)
            }
        }()
        next.ServeHTTP(w, r)
    })
}
