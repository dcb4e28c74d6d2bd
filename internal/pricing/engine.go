package pricing

import (
	"math"

	"github.com/missionmarket/intel-api/internal/models"
	"github.com/missionmarket/intel-api/internal/tables"
)

// Hours of work assumed per mission week for the base-price estimate
const estimatedHoursPerWeek = 35

// Fallbacks for unrecognized enum keys, applied instead of erroring
const (
	defaultCompetitionMultiplier = 0.95
	defaultSkillMultiplier       = 1.0
	defaultComplexityHourlyRate  = 50
)

// Engine produces price recommendations for a mission. It reads its
// multiplier and rate tables once at construction and is safe for
// concurrent use.
type Engine struct {
	tables *tables.PricingTables
}

// NewEngine creates a pricing engine over the given immutable tables
func NewEngine(t *tables.PricingTables) *Engine {
	return &Engine{tables: t}
}

// Recommend produces a price range for a mission given the competition
// level and the provider's skill level. Unrecognized levels fall back to
// the documented default multipliers.
func (e *Engine) Recommend(mission *models.Mission, competitionLevel, skillLevel string) (*models.PriceSuggestion, error) {
	if err := mission.Validate(); err != nil {
		return nil, err
	}

	basePrice := e.basePrice(mission)

	competitionMultiplier, ok := e.tables.CompetitionMultipliers[competitionLevel]
	if !ok {
		competitionMultiplier = defaultCompetitionMultiplier
	}
	skillMultiplier, ok := e.tables.SkillMultipliers[skillLevel]
	if !ok {
		skillMultiplier = defaultSkillMultiplier
	}

	recommended := basePrice * competitionMultiplier * skillMultiplier

	return &models.PriceSuggestion{
		PriceRange: models.PriceRange{
			Min:         recommended * 0.85,
			Recommended: recommended,
			Max:         recommended * 1.15,
		},
		Confidence:     e.confidence(mission, competitionLevel),
		Reasoning:      e.reasoning(competitionLevel, skillMultiplier),
		MarketPosition: marketPosition(recommended),
	}, nil
}

// basePrice derives the base price from mission complexity and duration
func (e *Engine) basePrice(mission *models.Mission) float64 {
	hourlyRate, ok := e.tables.ComplexityHourlyRates[mission.Complexity]
	if !ok {
		hourlyRate = defaultComplexityHourlyRate
	}
	estimatedHours := float64(mission.DurationWeeks) * estimatedHoursPerWeek

	return hourlyRate * estimatedHours
}

func (e *Engine) confidence(mission *models.Mission, competitionLevel string) float64 {
	confidence := 75.0

	if competitionLevel == tables.CompetitionLow {
		confidence += 15
	} else if competitionLevel == tables.CompetitionHigh {
		confidence -= 10
	}
	if mission.Complexity == models.LevelHigh {
		confidence -= 5
	}

	return math.Min(95, math.Max(50, confidence))
}

func (e *Engine) reasoning(competitionLevel string, skillMultiplier float64) []string {
	reasons := []string{}

	if competitionLevel == tables.CompetitionHigh {
		reasons = append(reasons, "High competition - aggressive pricing recommended")
	} else if competitionLevel == tables.CompetitionLow {
		reasons = append(reasons, "Low competition - premium pricing possible")
	}

	if skillMultiplier > 1.1 {
		reasons = append(reasons, "High expertise level - premium justified")
	} else if skillMultiplier < 0.9 {
		reasons = append(reasons, "Junior positioning - attractive pricing")
	}

	return reasons
}

func marketPosition(price float64) string {
	switch {
	case price < 2000:
		return models.PositionBudgetFriendly
	case price < 5000:
		return models.PositionStandard
	case price < 10000:
		return models.PositionPremium
	default:
		return models.PositionLuxury
	}
}
