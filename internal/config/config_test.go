package config

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("MONGODB_URI", "mongodb://localhost:27017/testdb")
	os.Setenv("MONGODB_DATABASE", "sahyatri_test")
	os.Setenv("AUTH0_AUDIENCE", "https://api.sahyatri.test")
	os.Setenv("AUTH0_ISSUER_BASE_URL", "https://sahyatri.eu.auth0.com/")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.MongoDB.URI == "" || cfg.Auth0.Audience == "" {
		t.Fatalf("unexpected empty config values: %+v", cfg)
	}
	if cfg.Auth0.ClaimsNamespace == "" {
		t.Fatalf("expected default claims namespace, got empty")
	}
	if cfg.Server.Port == "" {
		t.Fatalf("expected default server port, got empty")
	}
}
