package main

import (
    "bufio"
    "context"
    "flag"
    "fmt"
    "log"
    "os"
    "strings"
    "time"
    "unicode/utf8"

    "stockresolver/internal/backend"
    "stockresolver/internal/config"
    "stockresolver/internal/debounce"
    "stockresolver/internal/enrich"
    "stockresolver/internal/httpx"
    "stockresolver/internal/logo"
    "stockresolver/internal/resolve"
    "stockresolver/internal/search"
    "stockresolver/internal/search/yahoo"
)

func main() {
    var queryArg string
    var watch bool
    var timeout int
    var debounceMs int
    var configPath string

    flag.StringVar(&queryArg, "q", getenv("QUERY", ""), "stock query (symbol or company name)")
    flag.BoolVar(&watch, "watch", false, "interactive mode: type terms, get debounced suggestions")
    flag.IntVar(&timeout, "timeout", getenvInt("REQUEST_TIMEOUT_SEC", 15), "request timeout seconds")
    flag.IntVar(&debounceMs, "debounce", 150, "suggestion debounce in milliseconds")
    flag.StringVar(&configPath, "config", getenv("CONFIG_FILE", ""), "path to config.json (optional)")
    flag.Parse()

    cfg, err := config.Load(configPath)
    if err != nil { log.Fatalf("config: %v", err) }
    if timeout != 0 { cfg.Server.RequestTimeoutSec = timeout }
    if cfg.Backend.BaseURL == "" { log.Fatalf("API_BASE not set; the quote backend is required") }

    d := time.Duration(cfg.Server.RequestTimeoutSec) * time.Second
    httpClient := httpx.New(d)

    searchSvc := search.NewService(
        yahoo.NewClient(
            yahoo.WithBaseURL(cfg.Search.Endpoint),
            yahoo.WithHTTPClient(httpClient.HTTP),
        ),
        cfg.Search.QuotesCount,
    )
    quotes := backend.New(cfg.Backend.BaseURL, d)

    if watch {
        runWatch(searchSvc, enrich.New(quotes, cfg.Search.EnrichTop, time.Duration(cfg.Search.EnrichTimeoutMs)*time.Millisecond), time.Duration(debounceMs)*time.Millisecond)
        return
    }
    if strings.TrimSpace(queryArg) == "" && flag.NArg() > 0 {
        queryArg = strings.Join(flag.Args(), " ")
    }

    orch := &resolve.Orchestrator{
        Quotes: quotes,
        Search: searchSvc,
        OnTransition: func(s resolve.State) {
            if s == resolve.Loading { fmt.Fprintln(os.Stderr, "resolving...") }
        },
    }
    ctx, cancel := context.WithTimeout(context.Background(), d)
    defer cancel()
    out := orch.ResolveAndFetch(ctx, queryArg)
    if out.State != resolve.Success {
        log.Fatalf("%s", out.Message)
    }
    chain := logo.NewSourceChain(out.Symbol, out.Snapshot.Website, "/logo", "https://logo.clearbit.com")
    fmt.Fprintf(os.Stderr, "symbol: %s  logo: %s\n", out.Symbol, chain.URL())
    fmt.Println(string(out.Snapshot.Raw))
}

// runWatch reads one term per line and prints suggestions after a quiet
// period, mirroring search-as-you-type: a new line supersedes the pending
// lookup rather than queueing behind it.
func runWatch(svc *search.Service, enr *enrich.Coordinator, quiet time.Duration) {
    deb := debounce.New(quiet)
    defer deb.Stop()

    fmt.Println("type a ticker or company name (ctrl-d to quit):")
    sc := bufio.NewScanner(os.Stdin)
    for sc.Scan() {
        term := strings.TrimSpace(sc.Text())
        deb.Trigger(func() {
            ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
            defer cancel()
            var results []search.Suggestion
            if utf8.RuneCountInString(term) < 2 {
                results = search.Defaults()
            } else {
                results = enr.Enrich(ctx, svc.Search(ctx, term))
            }
            if len(results) == 0 {
                fmt.Printf("no suggestions for %q\n", term)
                return
            }
            for _, s := range results {
                chain := logo.NewSourceChain(s.Symbol, s.Website, "/logo", "https://logo.clearbit.com")
                fmt.Printf("%-8s %-36s %-10s %s\n", s.Symbol, s.Name, s.Exchange, chain.URL())
            }
        })
    }
}

func getenv(key, def string) string { if v := os.Getenv(key); v != "" { return v }; return def }
func getenvInt(key string, def int) int {
    if v := os.Getenv(key); v != "" {
        var x int
        _, _ = fmt.Sscanf(v, "%d", &x)
        if x != 0 { return x }
    }
    return def
}
