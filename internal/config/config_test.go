package config

import "testing"

func TestDefault_ResolutionKnobs(t *testing.T) {
    cfg := Default()
    if cfg.Search.EnrichTop != 7 { t.Fatalf("enrich top: %d", cfg.Search.EnrichTop) }
    if cfg.Search.EnrichTimeoutMs != 1200 { t.Fatalf("enrich timeout: %d", cfg.Search.EnrichTimeoutMs) }
    if cfg.Logo.Base == "" || cfg.Logo.ClearbitBase == "" { t.Fatalf("logo bases unset: %+v", cfg.Logo) }
    if cfg.Logo.APIKey != "" { t.Fatalf("api key should default empty") }
}

func TestApplyEnv_SecretKeyWinsOverPublic(t *testing.T) {
    t.Setenv("LOGO_DEV_PUBLIC_KEY", "pk-test")
    t.Setenv("LOGO_DEV_SECRET_KEY", "sk-test")
    t.Setenv("API_BASE", "https://api.example.com")
    t.Setenv("PORT", "9090")

    cfg := Default()
    applyEnv(&cfg)
    if cfg.Logo.APIKey != "sk-test" { t.Fatalf("api key: %q", cfg.Logo.APIKey) }
    if cfg.Backend.BaseURL != "https://api.example.com" { t.Fatalf("backend: %q", cfg.Backend.BaseURL) }
    if cfg.Server.Port != "9090" { t.Fatalf("port: %q", cfg.Server.Port) }
}

func TestApplyEnv_PublicKeyAloneStillUsed(t *testing.T) {
    t.Setenv("LOGO_DEV_PUBLIC_KEY", "pk-test")
    cfg := Default()
    applyEnv(&cfg)
    if cfg.Logo.APIKey != "pk-test" { t.Fatalf("api key: %q", cfg.Logo.APIKey) }
}
