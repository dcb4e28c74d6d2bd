package services

import (
	"database/sql"

	"github.com/missionmarket/intel-api/internal/models"
	"github.com/missionmarket/intel-api/internal/repository"
	"github.com/missionmarket/intel-api/internal/tables"
	"github.com/missionmarket/intel-api/pkg/config"
)

// Services contains all application services
type Services struct {
	Evaluation EvaluationService
}

// EvaluationService defines the interface for bid evaluation business logic.
// weightProfile selects a named scoring preset; an empty or unknown name
// uses the default preset.
type EvaluationService interface {
	ScoreBid(weightProfile string, mission *models.Mission, provider *models.Provider, bid *models.Bid) (*models.ScoreResult, error)
	RecommendPrice(mission *models.Mission, competitionLevel, skillLevel string) (*models.PriceSuggestion, error)
	SuggestPriceTime(title, description, category, location string, briefQuality float64) (*models.PriceTimeSuggestion, error)
	GuidedBid(mission *models.Mission, currentBids []float64) (*models.GuidedBid, error)
	DetectCollusion(missionID string, bids []models.Bid) (*models.CollusionReport, error)
	DetectDumping(bid *models.Bid, mission *models.Mission, marketAverage float64) (*models.DumpingReport, error)
	ScanBids(mission *models.Mission, bids []models.Bid) (*models.IntegrityScan, error)
	GetEvaluations(missionID string, limit int) ([]repository.EvaluationRecord, error)
}

// NewServices creates a new Services instance with all dependencies
func NewServices(db *sql.DB, cfg *config.Config) (*Services, error) {
	tbl, err := tables.Load(cfg.PricingTablePath)
	if err != nil {
		return nil, err
	}

	repos := repository.NewRepositories(db)

	evaluation, err := NewEvaluationService(repos, tbl)
	if err != nil {
		return nil, err
	}

	return &Services{Evaluation: evaluation}, nil
}
