package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"RATES_DB_PATH", "FEE_POLICY", "FLAT_FEE_PERCENT", "FEE_CURRENCY"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadFrom_DefaultsWithoutEnvFile(t *testing.T) {
	clearEnv(t)

	cfg := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))

	if cfg.FeePolicy != FeePolicyFlat {
		t.Fatalf("FeePolicy=%q, want %q", cfg.FeePolicy, FeePolicyFlat)
	}
	if cfg.FlatFeePercent != 8 {
		t.Fatalf("FlatFeePercent=%v, want 8", cfg.FlatFeePercent)
	}
	if cfg.FeeCurrency != "INR" {
		t.Fatalf("FeeCurrency=%q, want INR", cfg.FeeCurrency)
	}
	if cfg.UsesRatesDB() {
		t.Fatalf("expected built-in rate tables by default")
	}
}

func TestLoadFrom_ReadsEnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	content := []byte(`
# comment

RATES_DB_PATH=./rates.db
export FEE_POLICY=schedule
FLAT_FEE_PERCENT="10"
FEE_CURRENCY='usd'
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}

	cfg := LoadFrom(path)

	if cfg.RatesDBPath != "./rates.db" || !cfg.UsesRatesDB() {
		t.Fatalf("RatesDBPath=%q, want ./rates.db", cfg.RatesDBPath)
	}
	if cfg.FeePolicy != FeePolicySchedule {
		t.Fatalf("FeePolicy=%q, want %q", cfg.FeePolicy, FeePolicySchedule)
	}
	if cfg.FlatFeePercent != 10 {
		t.Fatalf("FlatFeePercent=%v, want 10", cfg.FlatFeePercent)
	}
	if cfg.FeeCurrency != "USD" {
		t.Fatalf("FeeCurrency=%q, want USD", cfg.FeeCurrency)
	}
}

func TestLoadFrom_DoesNotOverwriteExistingEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("FEE_POLICY", "none")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("FEE_POLICY=schedule\n"), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}

	cfg := LoadFrom(path)
	if cfg.FeePolicy != FeePolicyNone {
		t.Fatalf("FeePolicy=%q, want %q", cfg.FeePolicy, FeePolicyNone)
	}
}

func TestLoadFrom_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("FEE_POLICY", "surprise")
	t.Setenv("FLAT_FEE_PERCENT", "abc")

	cfg := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	if cfg.FeePolicy != FeePolicyFlat {
		t.Fatalf("FeePolicy=%q, want fallback %q", cfg.FeePolicy, FeePolicyFlat)
	}
	if cfg.FlatFeePercent != 8 {
		t.Fatalf("FlatFeePercent=%v, want fallback 8", cfg.FlatFeePercent)
	}
}
