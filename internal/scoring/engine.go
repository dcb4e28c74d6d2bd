package scoring

import (
	"math"
	"strconv"
	"strings"

	"github.com/missionmarket/intel-api/internal/models"
	"github.com/missionmarket/intel-api/internal/tables"
)

// Hours of work assumed per mission week when deriving the expected price
const hoursPerWeek = 40

// Timeline weeks assumed when a bid's free-text timeline carries no number
const defaultTimelineWeeks = 4

// Engine computes the six-criterion weighted score for a
// mission/provider/bid triple. It is stateless apart from its immutable
// weight table and safe for concurrent use.
type Engine struct {
	weights tables.ScoringWeights
}

// NewEngine creates a scoring engine with the given weights. The weights
// must sum to 1.0.
func NewEngine(weights tables.ScoringWeights) (*Engine, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Engine{weights: weights}, nil
}

// Weights returns the engine's weight table
func (e *Engine) Weights() tables.ScoringWeights {
	return e.weights
}

// Score computes the explainable multi-criteria score. bid may be nil;
// the price criterion then falls back to a neutral 70.
func (e *Engine) Score(mission *models.Mission, provider *models.Provider, bid *models.Bid) (*models.ScoreResult, error) {
	if err := mission.Validate(); err != nil {
		return nil, err
	}
	if err := provider.Validate(); err != nil {
		return nil, err
	}
	if bid != nil {
		if err := bid.Validate(); err != nil {
			return nil, err
		}
	}

	breakdown := models.ScoreBreakdown{
		Price:                 round2(clamp(e.priceScore(mission, provider, bid), 0, 100)),
		Quality:               round2(clamp(e.qualityScore(provider), 0, 100)),
		Fit:                   round2(clamp(e.fitScore(mission, provider), 0, 100)),
		Delay:                 round2(clamp(e.delayScore(provider, bid), 0, 100)),
		Risk:                  round2(clamp(e.riskScore(provider), 0, 100)),
		CompletionProbability: round2(clamp(e.completionScore(mission, provider), 0, 100)),
	}

	total := breakdown.Price*e.weights.Price +
		breakdown.Quality*e.weights.Quality +
		breakdown.Fit*e.weights.Fit +
		breakdown.Delay*e.weights.Delay +
		breakdown.Risk*e.weights.Risk +
		breakdown.CompletionProbability*e.weights.CompletionProbability

	return &models.ScoreResult{
		TotalScore:   round2(clamp(total, 0, 100)),
		Breakdown:    breakdown,
		Explanations: e.explain(breakdown),
	}, nil
}

// priceScore rates bid price competitiveness against the expected price
// derived from the provider's hourly rate
func (e *Engine) priceScore(mission *models.Mission, provider *models.Provider, bid *models.Bid) float64 {
	if bid == nil {
		return 70 // neutral without an offer
	}

	expectedPrice := provider.HourlyRate * float64(mission.DurationWeeks) * hoursPerWeek
	ratio := bid.Price / expectedPrice

	switch {
	case ratio < 0.5: // suspiciously low
		return 20
	case ratio < 0.8: // very competitive
		return 95
	case ratio <= 1.0: // competitive
		return 85
	case ratio <= 1.2: // acceptable
		return 70
	default: // expensive
		return math.Max(30, 70-(ratio-1.2)*100)
	}
}

// qualityScore rates the provider's track record
func (e *Engine) qualityScore(provider *models.Provider) float64 {
	ratingScore := (provider.Rating / 5.0) * 40
	experienceScore := math.Min(30, float64(provider.CompletedProjects)*0.5)
	successScore := provider.SuccessRate * 30

	return ratingScore + experienceScore + successScore
}

// fitScore rates skill and category compatibility between mission and
// provider
func (e *Engine) fitScore(mission *models.Mission, provider *models.Provider) float64 {
	required := make(map[string]bool, len(mission.SkillsRequired))
	for _, skill := range mission.SkillsRequired {
		required[strings.ToLower(skill)] = true
	}

	matched := 0
	seen := make(map[string]bool, len(provider.Skills))
	for _, skill := range provider.Skills {
		key := strings.ToLower(skill)
		if required[key] && !seen[key] {
			matched++
			seen[key] = true
		}
	}
	skillMatch := float64(matched) / math.Max(float64(len(required)), 1)

	categoryMatch := 0.3
	for _, category := range provider.Categories {
		if category == mission.Category {
			categoryMatch = 1.0
			break
		}
	}

	return skillMatch*70 + categoryMatch*30
}

// delayScore rates delivery speed from response time and, when a bid is
// present, its announced timeline
func (e *Engine) delayScore(provider *models.Provider, bid *models.Bid) float64 {
	score := math.Max(50, 100-provider.ResponseTime*10)

	if bid != nil {
		weeks := extractTimelineWeeks(bid.Timeline)
		switch {
		case weeks <= 2:
			score += 20
		case weeks <= 4:
			score += 10
		case weeks > 12:
			score -= 20
		}
	}

	return math.Min(100, score)
}

// riskScore rates provider reliability (higher is safer)
func (e *Engine) riskScore(provider *models.Provider) float64 {
	ratingFactor := provider.Rating / 5.0
	experienceFactor := math.Min(1.0, float64(provider.CompletedProjects)/20.0)

	return ratingFactor*40 + experienceFactor*30 + provider.SuccessRate*30
}

// completionScore estimates the probability the project completes
func (e *Engine) completionScore(mission *models.Mission, provider *models.Provider) float64 {
	score := provider.SuccessRate * 60

	if provider.Rating >= 4.5 {
		score += 15
	}
	if provider.CompletedProjects >= 20 {
		score += 10
	}

	complexityPenalty := map[string]float64{"low": 0, "medium": -5, "high": -10}
	urgencyPenalty := map[string]float64{"low": 5, "medium": 0, "high": -10}
	score += complexityPenalty[mission.Complexity]
	score += urgencyPenalty[mission.Urgency]

	return clamp(score, 10, 95)
}

// extractTimelineWeeks pulls a week count out of a free-text timeline:
// the first integer token found, defaulting when none parses
func extractTimelineWeeks(timeline string) int {
	for _, token := range strings.Fields(strings.ToLower(timeline)) {
		if weeks, err := strconv.Atoi(token); err == nil {
			return weeks
		}
	}
	return defaultTimelineWeeks
}

// explain generates explanation sentences for the price, quality, fit and
// completion criteria, in that order. Delay and risk intentionally produce
// no text.
func (e *Engine) explain(b models.ScoreBreakdown) []string {
	explanations := []string{}

	if b.Price >= 85 {
		explanations = append(explanations, "Highly competitive price")
	} else if b.Price <= 40 {
		explanations = append(explanations, "Price potentially problematic")
	}

	if b.Quality >= 80 {
		explanations = append(explanations, "Excellent provider profile")
	} else if b.Quality <= 50 {
		explanations = append(explanations, "Limited provider experience")
	}

	if b.Fit >= 80 {
		explanations = append(explanations, "Perfect skills match")
	} else if b.Fit <= 50 {
		explanations = append(explanations, "Partial skills match")
	}

	if b.CompletionProbability >= 80 {
		explanations = append(explanations, "High probability of success")
	} else if b.CompletionProbability <= 50 {
		explanations = append(explanations, "Risk of non-completion")
	}

	return explanations
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
