package pricing

import (
	"fmt"
	"math"
	"strings"

	"github.com/missionmarket/intel-api/internal/models"
	"github.com/missionmarket/intel-api/internal/tables"
)

// Complexity tiers produced by keyword analysis
const (
	tierSimple  = "simple"
	tierMedium  = "medium"
	tierComplex = "complex"
)

// adjustments maps factor type to detected key, e.g. "urgency" -> "urgent"
type adjustments map[string]string

// Suggester is the category-aware pricing variant: it classifies project
// complexity from the description, looks up a category base-price band and
// composes detected adjustment factors multiplicatively.
type Suggester struct {
	tables *tables.PricingTables
}

// NewSuggester creates a suggester over the given immutable tables
func NewSuggester(t *tables.PricingTables) *Suggester {
	return &Suggester{tables: t}
}

// Suggest analyzes a project's text and produces an adjusted price band
// and delivery estimate. briefQuality is a normalized completeness score
// in [0,1] supplied by an external analyzer; location may be empty.
// The composition order (complexity, base prices, adjustments, brief
// quality, band widening, day scaling) is significant.
func (s *Suggester) Suggest(title, description, category, location string, briefQuality float64) *models.PriceTimeSuggestion {
	complexity := s.analyzeComplexity(description)
	base := s.basePrices(category, complexity)
	adj := s.analyzeAdjustments(description, location)
	prices := s.applyAdjustments(base, adj, briefQuality)

	return &models.PriceTimeSuggestion{
		PriceSuggestedMin:  prices.Min,
		PriceSuggestedMed:  prices.Med,
		PriceSuggestedMax:  prices.Max,
		DelaySuggestedDays: prices.Days,
		Rationale:          s.rationale(category, complexity, adj, briefQuality),
		Confidence:         s.confidence(briefQuality, adj),
	}
}

// analyzeComplexity scores weighted keyword hits: complex-tier keywords
// count triple, medium double, simple single, plus one point per detected
// integration/custom-feature/technical-term/platform keyword
func (s *Suggester) analyzeComplexity(description string) string {
	desc := strings.ToLower(description)

	hits := func(keywords []string) int {
		n := 0
		for _, keyword := range keywords {
			if strings.Contains(desc, keyword) {
				n++
			}
		}
		return n
	}

	total := hits(s.tables.ComplexityKeywords[tierComplex])*3 +
		hits(s.tables.ComplexityKeywords[tierMedium])*2 +
		hits(s.tables.ComplexityKeywords[tierSimple])
	for _, indicators := range s.tables.ComplexityIndicators {
		total += hits(indicators)
	}

	switch {
	case total >= 6:
		return tierComplex
	case total >= 3:
		return tierMedium
	default:
		return tierSimple
	}
}

// basePrices resolves the category through the alias table, falling back
// to the documented fallback category when unmapped
func (s *Suggester) basePrices(category, complexity string) tables.BasePrice {
	mapped, ok := s.tables.CategoryAliases[category]
	if !ok {
		mapped = s.tables.FallbackCategory
	}
	band, ok := s.tables.CategoryBasePrices[mapped]
	if !ok {
		band = s.tables.CategoryBasePrices[s.tables.FallbackCategory]
	}
	return band[complexity]
}

// analyzeAdjustments independently detects the four adjustment factors
// from normalized text. Each rule list is evaluated in order,
// first-match-wins.
func (s *Suggester) analyzeAdjustments(description, location string) adjustments {
	desc := strings.ToLower(description)

	containsAny := func(keywords []string) bool {
		for _, keyword := range keywords {
			if strings.Contains(desc, keyword) {
				return true
			}
		}
		return false
	}

	adj := adjustments{}

	switch {
	case containsAny(s.tables.UrgencyKeywords["urgent"]):
		adj["urgency"] = "urgent"
	case containsAny(s.tables.UrgencyKeywords["flexible"]):
		adj["urgency"] = "flexible"
	default:
		adj["urgency"] = "normal"
	}

	if location != "" {
		loc := strings.ToLower(location)
		bigCity := false
		for _, city := range s.tables.BigCities {
			if strings.Contains(loc, city) {
				bigCity = true
				break
			}
		}
		switch {
		case strings.Contains(loc, "paris"):
			adj["location"] = "paris"
		case bigCity:
			adj["location"] = "grande_ville"
		default:
			adj["location"] = "petite_ville"
		}
	} else {
		adj["location"] = "normal"
	}

	switch {
	case containsAny(s.tables.ClientTypeKeywords["entreprise"]):
		adj["client_type"] = "entreprise"
	case containsAny(s.tables.ClientTypeKeywords["association"]):
		adj["client_type"] = "association"
	default:
		adj["client_type"] = "particulier"
	}

	switch {
	case containsAny(s.tables.QualityKeywords["premium"]):
		adj["quality_requirement"] = "premium"
	case containsAny(s.tables.QualityKeywords["budget"]):
		adj["quality_requirement"] = "budget"
	default:
		adj["quality_requirement"] = "standard"
	}

	return adj
}

// applyAdjustments multiplies the detected factors into one running
// adjustment, applies the brief-quality multiplier, then widens min/max
// asymmetrically around the adjusted median and scales the day count by
// urgency
func (s *Suggester) applyAdjustments(base tables.BasePrice, adj adjustments, briefQuality float64) tables.BasePrice {
	factor := 1.0
	for factorType, detected := range adj {
		if multipliers, ok := s.tables.AdjustmentFactors[factorType]; ok {
			if multiplier, ok := multipliers[detected]; ok {
				factor *= multiplier
			}
		}
	}

	// Brief quality moves the factor between x0.9 and x1.1
	factor *= 0.9 + briefQuality*0.2

	med := int(float64(base.Med) * factor)
	days := base.Days
	switch adj["urgency"] {
	case "urgent":
		days = int(math.Max(1, float64(days)*0.7))
	case "flexible":
		days = int(float64(days) * 1.3)
	}

	return tables.BasePrice{
		Min:  int(float64(med) * 0.8),
		Med:  med,
		Max:  int(float64(med) * 1.2),
		Days: days,
	}
}

func (s *Suggester) rationale(category, complexity string, adj adjustments, briefQuality float64) []string {
	rationale := []string{
		fmt.Sprintf("Base price for %s at %s complexity", category, complexity),
	}

	switch adj["urgency"] {
	case "urgent":
		rationale = append(rationale, "Urgency premium (+30%) for accelerated delivery")
	case "flexible":
		rationale = append(rationale, "Flexible schedule discount (-10%)")
	}

	switch adj["location"] {
	case "paris":
		rationale = append(rationale, "Paris location premium (+20%)")
	case "grande_ville":
		rationale = append(rationale, "Large city premium (+10%)")
	}

	switch adj["client_type"] {
	case "entreprise":
		rationale = append(rationale, "Business client premium (+10%)")
	case "association":
		rationale = append(rationale, "Nonprofit client discount (-15%)")
	}

	switch adj["quality_requirement"] {
	case "premium":
		rationale = append(rationale, "Premium quality requirement (+40%)")
	case "budget":
		rationale = append(rationale, "Constrained budget discount (-30%)")
	}

	if briefQuality > 0.8 {
		rationale = append(rationale, "Detailed and clear brief bonus (+10%)")
	} else if briefQuality < 0.6 {
		rationale = append(rationale, "Incomplete brief adjustment (-10%)")
	}

	rationale = append(rationale, "Range calibrated to the current market")

	return rationale
}

// confidence grows with brief quality and with how many adjustment
// factors were actually detected
func (s *Suggester) confidence(briefQuality float64, adj adjustments) float64 {
	confidence := 0.7 + briefQuality*0.2

	detected := 0
	for _, value := range adj {
		if value != "normal" {
			detected++
		}
	}
	confidence += float64(detected) / 4 * 0.1

	return math.Min(0.95, confidence)
}
