package config

import (
    "encoding/json"
    "errors"
    "fmt"
    "os"

    "github.com/joho/godotenv"
)

type Server struct {
    Port              string `json:"port"`
    RequestTimeoutSec int    `json:"request_timeout_sec"`
}

type Search struct {
    Endpoint    string `json:"endpoint"`
    QuotesCount int    `json:"quotes_count"`
    // EnrichTop is how many leading suggestions get a website lookup.
    EnrichTop       int `json:"enrich_top"`
    EnrichTimeoutMs int `json:"enrich_timeout_ms"`
}

type Logo struct {
    Base         string `json:"base"`
    APIKey       string `json:"api_key"`
    ClearbitBase string `json:"clearbit_base"`
}

type Backend struct {
    BaseURL string `json:"base_url"`
}

type Config struct {
    Server  Server  `json:"server"`
    Search  Search  `json:"search"`
    Logo    Logo    `json:"logo"`
    Backend Backend `json:"backend"`
}

func Default() Config {
    return Config{
        Server: Server{Port: "8080", RequestTimeoutSec: 10},
        Search: Search{
            Endpoint:        "https://query1.finance.yahoo.com/v1/finance/search",
            QuotesCount:     10,
            EnrichTop:       7,
            EnrichTimeoutMs: 1200,
        },
        Logo: Logo{
            Base:         "https://logo.dev/api/stock",
            ClearbitBase: "https://logo.clearbit.com",
        },
        Backend: Backend{},
    }
}

// Load reads JSON config from path. If path is empty or file does not exist,
// it returns defaults. A .env file, when present, is folded into the process
// environment first; environment variables override select fields for secrecy.
func Load(path string) (Config, error) {
    _ = godotenv.Load()
    cfg := Default()
    if path == "" {
        if _, err := os.Stat("config.json"); err == nil {
            path = "config.json"
        }
    }
    if path != "" {
        b, err := os.ReadFile(path)
        if err != nil && !errors.Is(err, os.ErrNotExist) {
            return cfg, fmt.Errorf("read config: %w", err)
        }
        if err == nil {
            if err := json.Unmarshal(b, &cfg); err != nil {
                return cfg, fmt.Errorf("parse config: %w", err)
            }
        }
    }
    applyEnv(&cfg)
    return cfg, nil
}

func applyEnv(cfg *Config) {
    if v := os.Getenv("PORT"); v != "" { cfg.Server.Port = v }
    if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
        var x int; fmt.Sscanf(v, "%d", &x); if x > 0 { cfg.Server.RequestTimeoutSec = x }
    }
    if v := os.Getenv("SEARCH_ENDPOINT"); v != "" { cfg.Search.Endpoint = v }
    if v := os.Getenv("SEARCH_QUOTES_COUNT"); v != "" {
        var x int; fmt.Sscanf(v, "%d", &x); if x > 0 { cfg.Search.QuotesCount = x }
    }
    if v := os.Getenv("SEARCH_ENRICH_TOP"); v != "" {
        var x int; fmt.Sscanf(v, "%d", &x); if x >= 0 { cfg.Search.EnrichTop = x }
    }
    if v := os.Getenv("SEARCH_ENRICH_TIMEOUT_MS"); v != "" {
        var x int; fmt.Sscanf(v, "%d", &x); if x > 0 { cfg.Search.EnrichTimeoutMs = x }
    }
    if v := os.Getenv("LOGO_DEV_BASE"); v != "" { cfg.Logo.Base = v }
    // Secret key wins over the public one when both are set.
    if v := os.Getenv("LOGO_DEV_PUBLIC_KEY"); v != "" { cfg.Logo.APIKey = v }
    if v := os.Getenv("LOGO_DEV_SECRET_KEY"); v != "" { cfg.Logo.APIKey = v }
    if v := os.Getenv("CLEARBIT_BASE"); v != "" { cfg.Logo.ClearbitBase = v }
    if v := os.Getenv("API_BASE"); v != "" { cfg.Backend.BaseURL = v }
}
