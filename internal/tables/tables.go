package tables

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/missionmarket/intel-api/internal/errors"
)

// ScoringWeights holds the six criterion weights. They must sum to 1.0.
type ScoringWeights struct {
	Price                 float64 `yaml:"price"`
	Quality               float64 `yaml:"quality"`
	Fit                   float64 `yaml:"fit"`
	Delay                 float64 `yaml:"delay"`
	Risk                  float64 `yaml:"risk"`
	CompletionProbability float64 `yaml:"completion_probability"`
}

// Sum returns the total of the six weights
func (w ScoringWeights) Sum() float64 {
	return w.Price + w.Quality + w.Fit + w.Delay + w.Risk + w.CompletionProbability
}

// Validate checks that the weights sum to exactly 1.0
func (w ScoringWeights) Validate() error {
	if math.Abs(w.Sum()-1.0) > 1e-9 {
		return errors.InvalidInput(fmt.Sprintf("scoring weights must sum to 1.0, got %.6f", w.Sum()), nil)
	}
	return nil
}

// BasePrice is a min/med/max price band in cents plus a delivery estimate
type BasePrice struct {
	Min  int `yaml:"min"`
	Med  int `yaml:"med"`
	Max  int `yaml:"max"`
	Days int `yaml:"days"`
}

// PricingTables holds the pricing engine configuration
type PricingTables struct {
	// Hourly rate by mission complexity for the base-price calculation
	ComplexityHourlyRates map[string]float64 `yaml:"complexity_hourly_rates"`
	// Price multipliers by competition level
	CompetitionMultipliers map[string]float64 `yaml:"competition_multipliers"`
	// Price multipliers by provider skill level
	SkillMultipliers map[string]float64 `yaml:"skill_multipliers"`

	// Category-aware suggester configuration
	CategoryBasePrices map[string]map[string]BasePrice `yaml:"category_base_prices"`
	CategoryAliases    map[string]string               `yaml:"category_aliases"`
	FallbackCategory   string                          `yaml:"fallback_category"`
	AdjustmentFactors  map[string]map[string]float64   `yaml:"adjustment_factors"`

	// Keyword lists driving text classification. Rule order matters for
	// tie-breaks; slices are evaluated first-match-wins.
	ComplexityKeywords   map[string][]string `yaml:"complexity_keywords"`
	ComplexityIndicators map[string][]string `yaml:"complexity_indicators"`
	UrgencyKeywords      map[string][]string `yaml:"urgency_keywords"`
	ClientTypeKeywords   map[string][]string `yaml:"client_type_keywords"`
	QualityKeywords      map[string][]string `yaml:"quality_keywords"`
	BigCities            []string            `yaml:"big_cities"`
}

// Tables groups every piece of immutable engine configuration. It is
// constructed once at startup and shared by reference; engines never
// mutate it.
type Tables struct {
	WeightProfiles map[string]ScoringWeights `yaml:"weight_profiles"`
	Pricing        PricingTables             `yaml:"pricing"`
}

// WeightProfile returns the named preset, falling back to the default
// profile for an unrecognized name.
func (t *Tables) WeightProfile(name string) ScoringWeights {
	if w, ok := t.WeightProfiles[name]; ok {
		return w
	}
	return t.WeightProfiles[DefaultWeightProfile]
}

// Validate checks every weight profile sums to 1.0
func (t *Tables) Validate() error {
	for name, weights := range t.WeightProfiles {
		if err := weights.Validate(); err != nil {
			return errors.InvalidInput(fmt.Sprintf("weight profile %q invalid", name), err)
		}
	}
	if t.Pricing.FallbackCategory == "" {
		return errors.InvalidInput("pricing fallback_category must be set", nil)
	}
	if _, ok := t.Pricing.CategoryBasePrices[t.Pricing.FallbackCategory]; !ok {
		return errors.InvalidInput(fmt.Sprintf("fallback category %q missing from base price table", t.Pricing.FallbackCategory), nil)
	}
	return nil
}

// Load returns the default tables, optionally overridden from a YAML file.
// An empty path keeps the compiled-in defaults.
func Load(path string) (*Tables, error) {
	t := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read tables file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, t); err != nil {
			return nil, fmt.Errorf("failed to parse tables file %s: %w", path, err)
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
