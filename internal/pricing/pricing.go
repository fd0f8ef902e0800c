// Package pricing applies professional-fee and tax surcharges on top of an estimate's
// pre-surcharge subtotal. The estimator never bakes these in; callers pick a policy.
package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultFlatFeePercent is the flat professional fee quoted on the results page.
const DefaultFlatFeePercent = 8.0

// BaseCurrency is the currency all rate tables are expressed in.
const BaseCurrency = "INR"

// ErrUnknownOption is returned when a fee-schedule key is not in the rates.
var ErrUnknownOption = errors.New("unknown fee option")

// Breakdown contains every line item of the fee calculation, in base currency.
type Breakdown struct {
	Subtotal           float64 `json:"subtotal"`
	BaseFee            float64 `json:"baseFee"`
	FFEFee             float64 `json:"ffeFee"`
	LandscapeFee       float64 `json:"landscapeFee"`
	VizFee             float64 `json:"vizFee"`
	OverheadAllocation float64 `json:"overheadAllocation"`
	Profit             float64 `json:"profit"`
	Tax                float64 `json:"tax"`
}

// Totals contains roll-up values of the fee calculation.
type Totals struct {
	Fee           float64 `json:"fee"`
	Total         float64 `json:"total"`
	Currency      string  `json:"currency"`
	FeeInCurrency float64 `json:"feeInCurrency"`
}

// Result groups the detailed breakdown and totals.
type Result struct {
	Policy    string    `json:"policy"`
	Breakdown Breakdown `json:"breakdown"`
	Totals    Totals    `json:"totals"`
}

// Flat charges percent of subtotal as the professional fee, rounded to whole units.
func Flat(subtotal, percent float64) Result {
	sub := decimal.NewFromFloat(subtotal)
	fee := sub.Mul(decimal.NewFromFloat(percent)).Div(decimal.NewFromInt(100)).Round(0)

	return Result{
		Policy: "flat",
		Breakdown: Breakdown{
			Subtotal: subtotal,
			BaseFee:  fee.InexactFloat64(),
		},
		Totals: Totals{
			Fee:           fee.InexactFloat64(),
			Total:         sub.Add(fee).InexactFloat64(),
			Currency:      BaseCurrency,
			FeeInCurrency: fee.InexactFloat64(),
		},
	}
}

// FeeModel selects how a typology's rate applies.
type FeeModel string

const (
	ModelPercent FeeModel = "PERCENT"
	ModelSqM     FeeModel = "SQM"
)

// Typology is one line of the fee schedule.
type Typology struct {
	Model FeeModel
	Rate  float64
	Min   float64
}

// FeeRates is the typology-based fee schedule.
type FeeRates struct {
	Typologies         map[string]Typology
	ClientMultipliers  map[string]float64
	Complexity         map[string]float64
	VizPrices          map[string]float64
	ConversionRates    map[string]float64
	PremiumMultiplier  float64
	RushMultiplier     float64
	ProfitMargin       float64
	TaxRate            float64
	MinimumFeeStudio   float64
	OverheadAllocation float64
}

const (
	typologyFFE       = "FF&E Procurement"
	typologyLandscape = "Landscape - Detailed"

	// ffeShareOfConstruction is the portion of construction cost spent on FF&E.
	ffeShareOfConstruction = 0.15
)

// DefaultFeeRates returns the studio's fee schedule.
func DefaultFeeRates() FeeRates {
	return FeeRates{
		Typologies: map[string]Typology{
			"Individual House":  {Model: ModelPercent, Rate: 0.08, Min: 20000},
			"Residential Block": {Model: ModelPercent, Rate: 0.05, Min: 50000},
			"Commercial":        {Model: ModelPercent, Rate: 0.04, Min: 80000},
			typologyFFE:         {Model: ModelPercent, Rate: 0.10, Min: 30000},
			typologyLandscape:   {Model: ModelSqM, Rate: 150, Min: 25000},
		},
		ClientMultipliers: map[string]float64{
			"Friend/Family": 0.85,
			"Individual":    1.0,
			"Corporate":     1.15,
			"Developer":     1.10,
		},
		Complexity: map[string]float64{
			"Simple":   0.9,
			"Standard": 1.0,
			"Premium":  1.2,
			"Luxury":   1.5,
		},
		VizPrices: map[string]float64{
			"None":     0,
			"Standard": 25000,
			"Premium":  50000,
			"Luxury":   100000,
		},
		ConversionRates: map[string]float64{
			"INR": 1,
			"USD": 83,
			"EUR": 90,
		},
		PremiumMultiplier:  1.0,
		RushMultiplier:     1.25,
		ProfitMargin:       0.15,
		TaxRate:            0.18,
		MinimumFeeStudio:   50000,
		OverheadAllocation: 80000.0 / 3,
	}
}

// ScheduleInput holds the project facts the fee schedule depends on.
type ScheduleInput struct {
	Typology         string
	ConstructionCost float64
	AreaSqM          float64
	ClientType       string
	Complexity       string
	IncludeFFE       bool
	IncludeLandscape bool
	VizPackage       string
	Rush             bool
	Currency         string
}

// DefaultScheduleInput fills the options a caller usually leaves alone.
func DefaultScheduleInput(typology string, constructionCost, areaSqM float64) ScheduleInput {
	return ScheduleInput{
		Typology:         typology,
		ConstructionCost: constructionCost,
		AreaSqM:          areaSqM,
		ClientType:       "Individual",
		Complexity:       "Standard",
		IncludeFFE:       true,
		IncludeLandscape: true,
		VizPackage:       "Standard",
		Currency:         BaseCurrency,
	}
}

// Schedule computes the professional fee from the typology schedule. Profit and tax are
// rounded to whole units; the converted fee is rounded to two decimals.
func Schedule(in ScheduleInput, r FeeRates) (Result, error) {
	typ, ok := r.Typologies[in.Typology]
	if !ok {
		return Result{}, fmt.Errorf("%w: typology %q", ErrUnknownOption, in.Typology)
	}
	clientMult, ok := r.ClientMultipliers[in.ClientType]
	if !ok {
		return Result{}, fmt.Errorf("%w: client type %q", ErrUnknownOption, in.ClientType)
	}
	complexityMult, ok := r.Complexity[in.Complexity]
	if !ok {
		return Result{}, fmt.Errorf("%w: complexity %q", ErrUnknownOption, in.Complexity)
	}
	vizPrice, ok := r.VizPrices[in.VizPackage]
	if !ok {
		return Result{}, fmt.Errorf("%w: visualization package %q", ErrUnknownOption, in.VizPackage)
	}
	fx, ok := r.ConversionRates[in.Currency]
	if !ok || fx <= 0 {
		return Result{}, fmt.Errorf("%w: currency %q", ErrUnknownOption, in.Currency)
	}

	construction := decimal.NewFromFloat(in.ConstructionCost)
	area := decimal.NewFromFloat(in.AreaSqM)

	raw := applyModel(typ, construction, area)
	mult := decimal.NewFromFloat(clientMult).
		Mul(decimal.NewFromFloat(complexityMult)).
		Mul(decimal.NewFromFloat(r.PremiumMultiplier))
	if in.Rush {
		mult = mult.Mul(decimal.NewFromFloat(r.RushMultiplier))
	}
	baseFee := decimal.Max(
		raw.Mul(mult),
		decimal.NewFromFloat(typ.Min),
		decimal.NewFromFloat(r.MinimumFeeStudio),
	)

	ffeFee := decimal.Zero
	if in.IncludeFFE {
		ffe, ok := r.Typologies[typologyFFE]
		if !ok {
			return Result{}, fmt.Errorf("%w: typology %q", ErrUnknownOption, typologyFFE)
		}
		ffeFee = decimal.Max(
			decimal.NewFromFloat(ffe.Min),
			construction.Mul(decimal.NewFromFloat(ffeShareOfConstruction)).Mul(decimal.NewFromFloat(ffe.Rate)),
		)
	}

	landscapeFee := decimal.Zero
	if in.IncludeLandscape {
		ls, ok := r.Typologies[typologyLandscape]
		if !ok {
			return Result{}, fmt.Errorf("%w: typology %q", ErrUnknownOption, typologyLandscape)
		}
		landscapeFee = decimal.Max(decimal.NewFromFloat(ls.Min), area.Mul(decimal.NewFromFloat(ls.Rate)))
	}

	viz := decimal.NewFromFloat(vizPrice)
	overhead := decimal.NewFromFloat(r.OverheadAllocation)

	subtotal := baseFee.Add(ffeFee).Add(landscapeFee).Add(viz).Add(overhead)
	profit := subtotal.Mul(decimal.NewFromFloat(r.ProfitMargin)).Round(0)
	tax := subtotal.Add(profit).Mul(decimal.NewFromFloat(r.TaxRate)).Round(0)
	fee := subtotal.Add(profit).Add(tax)

	return Result{
		Policy: "schedule",
		Breakdown: Breakdown{
			Subtotal:           in.ConstructionCost,
			BaseFee:            baseFee.InexactFloat64(),
			FFEFee:             ffeFee.InexactFloat64(),
			LandscapeFee:       landscapeFee.InexactFloat64(),
			VizFee:             viz.InexactFloat64(),
			OverheadAllocation: overhead.InexactFloat64(),
			Profit:             profit.InexactFloat64(),
			Tax:                tax.InexactFloat64(),
		},
		Totals: Totals{
			Fee:           fee.Round(2).InexactFloat64(),
			Total:         construction.Add(fee).Round(2).InexactFloat64(),
			Currency:      in.Currency,
			FeeInCurrency: fee.Div(decimal.NewFromFloat(fx)).Round(2).InexactFloat64(),
		},
	}, nil
}

func applyModel(typ Typology, construction, area decimal.Decimal) decimal.Decimal {
	rate := decimal.NewFromFloat(typ.Rate)
	if typ.Model == ModelSqM {
		return area.Mul(rate)
	}
	return construction.Mul(rate)
}
