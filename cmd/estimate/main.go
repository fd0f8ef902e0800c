package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/vsstudio/estimator/internal/config"
	"github.com/vsstudio/estimator/internal/estimator"
	"github.com/vsstudio/estimator/internal/pricing"
	"github.com/vsstudio/estimator/internal/rates"
	"github.com/vsstudio/estimator/internal/ratestore"
)

type options struct {
	dbPath     string
	inPath     string
	newRecord  bool
	fees       string
	typology   string
	client     string
	complexity string
	viz        string
	rush       bool
}

type output struct {
	estimator.ProjectEstimate
	Surcharges *pricing.Result `json:"surcharges,omitempty"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	opts, err := parseFlags(os.Args[1:], cfg, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("invalid arguments: %v", err)
	}

	if err := run(ctx, opts, cfg, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("estimate failed: %v", err)
	}
}

func parseFlags(args []string, cfg config.Config, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("estimate", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := options{}
	fs.StringVar(&opts.dbPath, "db", cfg.RatesDBPath, "SQLite rates database (empty uses built-in tables)")
	fs.StringVar(&opts.inPath, "in", "", "read the project record from `file` instead of stdin")
	fs.BoolVar(&opts.newRecord, "new", false, "estimate a new record with default selections")
	fs.StringVar(&opts.fees, "fees", cfg.FeePolicy, "surcharge policy: none, flat or schedule")
	fs.StringVar(&opts.typology, "typology", "", "fee schedule typology (default derived from building use)")
	fs.StringVar(&opts.client, "client", "Individual", "fee schedule client type")
	fs.StringVar(&opts.complexity, "fee-complexity", "Standard", "fee schedule complexity")
	fs.StringVar(&opts.viz, "viz", "Standard", "fee schedule visualization package")
	fs.BoolVar(&opts.rush, "rush", false, "apply the rush multiplier to the fee schedule")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	switch opts.fees {
	case config.FeePolicyNone, config.FeePolicyFlat, config.FeePolicySchedule:
	default:
		return options{}, fmt.Errorf("unknown fee policy %q", opts.fees)
	}

	return opts, nil
}

func run(ctx context.Context, opts options, cfg config.Config, stdin io.Reader, stdout io.Writer) error {
	tables := rates.Default()
	if opts.dbPath != "" {
		loaded, stats, err := ratestore.Open(ctx, opts.dbPath)
		if err != nil {
			return fmt.Errorf("load rate tables: %w", err)
		}
		if stats.Inserts > 0 {
			log.Printf("seeded %d rate rows into %s", stats.Inserts, opts.dbPath)
		}
		tables = loaded
	}

	in, err := readInput(opts, stdin)
	if err != nil {
		return err
	}

	out, err := estimator.New(tables).Calculate(in)
	if err != nil {
		return err
	}

	result := output{ProjectEstimate: out}
	surcharges, err := applySurcharges(opts, cfg, out)
	if err != nil {
		return err
	}
	result.Surcharges = surcharges

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("write estimate: %w", err)
	}
	return nil
}

func readInput(opts options, stdin io.Reader) (estimator.ProjectEstimate, error) {
	if opts.newRecord {
		return estimator.NewProjectEstimate(), nil
	}

	r := stdin
	if opts.inPath != "" {
		f, err := os.Open(opts.inPath)
		if err != nil {
			return estimator.ProjectEstimate{}, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var in estimator.ProjectEstimate
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return estimator.ProjectEstimate{}, fmt.Errorf("decode project record: %w", err)
	}
	return in, nil
}

func applySurcharges(opts options, cfg config.Config, est estimator.ProjectEstimate) (*pricing.Result, error) {
	switch opts.fees {
	case config.FeePolicyFlat:
		res := pricing.Flat(est.Subtotal, cfg.FlatFeePercent)
		return &res, nil
	case config.FeePolicySchedule:
		in := pricing.DefaultScheduleInput(typologyFor(opts.typology, est.BuildingType), est.Subtotal, est.AreaSqM)
		in.ClientType = opts.client
		in.Complexity = opts.complexity
		in.VizPackage = opts.viz
		in.Rush = opts.rush
		in.Currency = cfg.FeeCurrency
		in.IncludeLandscape = est.ComponentCosts[rates.Landscape] > 0
		res, err := pricing.Schedule(in, pricing.DefaultFeeRates())
		if err != nil {
			return nil, fmt.Errorf("apply fee schedule: %w", err)
		}
		return &res, nil
	default:
		return nil, nil
	}
}

func typologyFor(explicit string, use estimator.BuildingUse) string {
	if explicit != "" {
		return explicit
	}
	switch use {
	case estimator.Commercial:
		return "Commercial"
	case estimator.MixedUse:
		return "Residential Block"
	default:
		return "Individual House"
	}
}
