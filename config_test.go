package main

import "testing"

func TestParseAPIKeys(t *testing.T) {
	keys := parseAPIKeys("k1=0.1, k2=0.2,bare")
	if len(keys) != 3 {
		t.Fatalf("parsed %d keys, want 3", len(keys))
	}
	if keys["k1"] != "0.1" || keys["k2"] != "0.2" {
		t.Errorf("keys = %v", keys)
	}
	if keys["bare"] != "0.1" {
		t.Errorf("keys without a version must default to 0.1, got %q", keys["bare"])
	}
}

func TestLoadConfigRequiresAPIKeys(t *testing.T) {
	t.Setenv("API_KEYS", "")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("LoadConfig must fail without API_KEYS")
	}

	t.Setenv("API_KEYS", "k1=0.1")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.APIKeys["k1"] != "0.1" {
		t.Errorf("APIKeys = %v", cfg.APIKeys)
	}
	if cfg.Port != "8080" {
		t.Errorf("default port = %q", cfg.Port)
	}
}
