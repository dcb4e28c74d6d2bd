package models

// ScoreBreakdown holds the six weighted sub-scores, each in [0,100]
type ScoreBreakdown struct {
	Price                 float64 `json:"price"`
	Quality               float64 `json:"quality"`
	Fit                   float64 `json:"fit"`
	Delay                 float64 `json:"delay"`
	Risk                  float64 `json:"risk"`
	CompletionProbability float64 `json:"completion_probability"`
}

// ScoreResult is the explainable output of the scoring engine
type ScoreResult struct {
	TotalScore   float64        `json:"total_score"`
	Breakdown    ScoreBreakdown `json:"breakdown"`
	Explanations []string       `json:"explanations"`
}

// Market position labels for a recommended price
const (
	PositionBudgetFriendly = "budget_friendly"
	PositionStandard       = "standard"
	PositionPremium        = "premium"
	PositionLuxury         = "luxury"
)

// PriceRange is a min/recommended/max fork around a price point
type PriceRange struct {
	Min         float64 `json:"min"`
	Recommended float64 `json:"recommended"`
	Max         float64 `json:"max"`
}

// PriceSuggestion is the output of the pricing engine
type PriceSuggestion struct {
	PriceRange     PriceRange `json:"price_range"`
	Confidence     float64    `json:"confidence"`
	Reasoning      []string   `json:"reasoning"`
	MarketPosition string     `json:"market_position"`
}

// PriceTimeSuggestion is the output of the category-aware suggester.
// Prices are in cents, matching the base-price tables.
type PriceTimeSuggestion struct {
	PriceSuggestedMin int      `json:"price_suggested_min"`
	PriceSuggestedMed int      `json:"price_suggested_med"`
	PriceSuggestedMax int      `json:"price_suggested_max"`
	DelaySuggestedDays int     `json:"delay_suggested_days"`
	Rationale         []string `json:"rationale"`
	Confidence        float64  `json:"confidence"`
}

// GuidedBid is a suggested bid price with behavioral nudges
type GuidedBid struct {
	SuggestedPrice     float64  `json:"suggested_price"`
	Nudges             []string `json:"nudges"`
	AntiDumpingWarning string   `json:"anti_dumping_warning,omitempty"`
}

// CollusionReport flags coordinated bidding over a bid set
type CollusionReport struct {
	CollusionDetected bool     `json:"collusion_detected"`
	Indicators        []string `json:"indicators"`
	Confidence        float64  `json:"confidence"`
}

// Dumping severity levels
const (
	SeverityNone     = "none"
	SeverityMild     = "mild"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
)

// Dumping recommendations
const (
	RecommendationAllow = "allow"
	RecommendationFlag  = "flag"
	RecommendationBlock = "block"
)

// DumpingReport flags a bid priced materially below the market average
type DumpingReport struct {
	DumpingDetected bool    `json:"dumping_detected"`
	Severity        string  `json:"severity"`
	PriceRatio      float64 `json:"price_ratio"`
	Recommendation  string  `json:"recommendation"`
}

// IntegrityScan bundles collusion and per-bid dumping results for a mission
type IntegrityScan struct {
	Collusion *CollusionReport `json:"collusion,omitempty"`
	Dumping   []DumpingReport  `json:"dumping"`
}
