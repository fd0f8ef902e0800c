package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/vsstudio/estimator/internal/pricing"
)

const (
	defaultEnvFile   = ".env"
	defaultFeePolicy = FeePolicyFlat
)

// Surcharge policies understood by the estimate harness.
const (
	FeePolicyNone     = "none"
	FeePolicyFlat     = "flat"
	FeePolicySchedule = "schedule"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	RatesDBPath    string
	FeePolicy      string
	FlatFeePercent float64
	FeeCurrency    string
}

// UsesRatesDB reports whether rate tables should be loaded from SQLite instead of the
// built-in defaults.
func (c Config) UsesRatesDB() bool {
	return c.RatesDBPath != ""
}

// Load reads environment variables, after best-effort loading of ./.env.
func Load() Config {
	return LoadFrom(defaultEnvFile)
}

// LoadFrom is Load with an explicit dotenv path. A missing file is ignored, and variables
// already present in the environment are never overwritten.
func LoadFrom(envFile string) Config {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning: could not load %s: %v", envFile, err)
	}

	cfg := Config{
		RatesDBPath:    strings.TrimSpace(os.Getenv("RATES_DB_PATH")),
		FeePolicy:      strings.ToLower(strings.TrimSpace(os.Getenv("FEE_POLICY"))),
		FlatFeePercent: pricing.DefaultFlatFeePercent,
		FeeCurrency:    strings.ToUpper(strings.TrimSpace(os.Getenv("FEE_CURRENCY"))),
	}

	switch cfg.FeePolicy {
	case "":
		cfg.FeePolicy = defaultFeePolicy
	case FeePolicyNone, FeePolicyFlat, FeePolicySchedule:
	default:
		log.Printf("warning: unknown FEE_POLICY %q, using %q", cfg.FeePolicy, defaultFeePolicy)
		cfg.FeePolicy = defaultFeePolicy
	}

	if raw := strings.TrimSpace(os.Getenv("FLAT_FEE_PERCENT")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || v > 100 {
			log.Printf("warning: FLAT_FEE_PERCENT %q must be between 0 and 100, using %v", raw, pricing.DefaultFlatFeePercent)
		} else {
			cfg.FlatFeePercent = v
		}
	}

	if cfg.FeeCurrency == "" {
		cfg.FeeCurrency = pricing.BaseCurrency
	}

	return cfg
}
