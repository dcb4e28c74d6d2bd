package services

import (
	"encoding/json"

	"github.com/missionmarket/intel-api/internal/errors"
	"github.com/missionmarket/intel-api/internal/integrity"
	"github.com/missionmarket/intel-api/internal/logger"
	"github.com/missionmarket/intel-api/internal/models"
	"github.com/missionmarket/intel-api/internal/pricing"
	"github.com/missionmarket/intel-api/internal/repository"
	"github.com/missionmarket/intel-api/internal/scoring"
	"github.com/missionmarket/intel-api/internal/tables"
)

// evaluationServiceImpl implements EvaluationService
type evaluationServiceImpl struct {
	repos     *repository.Repositories
	scorers   map[string]*scoring.Engine
	pricing   *pricing.Engine
	suggester *pricing.Suggester
	detector  *integrity.Detector
	logger    logger.Logger
}

// NewEvaluationService creates an evaluation service over the given
// repositories and configuration tables. repos may be nil, in which case
// no audit trail is written and GetEvaluations fails.
func NewEvaluationService(repos *repository.Repositories, tbl *tables.Tables) (EvaluationService, error) {
	if err := tbl.Validate(); err != nil {
		return nil, err
	}

	scorers := make(map[string]*scoring.Engine, len(tbl.WeightProfiles))
	for name := range tbl.WeightProfiles {
		engine, err := scoring.NewEngine(tbl.WeightProfile(name))
		if err != nil {
			return nil, err
		}
		scorers[name] = engine
	}

	return &evaluationServiceImpl{
		repos:     repos,
		scorers:   scorers,
		pricing:   pricing.NewEngine(&tbl.Pricing),
		suggester: pricing.NewSuggester(&tbl.Pricing),
		detector:  integrity.NewDetector(),
		logger:    logger.NewSimpleLogger(),
	}, nil
}

// ScoreBid scores a bid under the named weight profile
func (s *evaluationServiceImpl) ScoreBid(weightProfile string, mission *models.Mission, provider *models.Provider, bid *models.Bid) (*models.ScoreResult, error) {
	engine, ok := s.scorers[weightProfile]
	if !ok {
		engine = s.scorers[tables.DefaultWeightProfile]
	}

	result, err := engine.Score(mission, provider, bid)
	if err != nil {
		return nil, err
	}

	providerID := ""
	if provider != nil {
		providerID = provider.ID
	}
	s.audit(repository.KindScore, mission.ID, providerID, result)

	return result, nil
}

// RecommendPrice produces a price range for a mission
func (s *evaluationServiceImpl) RecommendPrice(mission *models.Mission, competitionLevel, skillLevel string) (*models.PriceSuggestion, error) {
	suggestion, err := s.pricing.Recommend(mission, competitionLevel, skillLevel)
	if err != nil {
		return nil, err
	}

	s.audit(repository.KindPriceRecommendation, mission.ID, "", suggestion)

	return suggestion, nil
}

// SuggestPriceTime produces a category-based price and delivery suggestion.
// The suggester is total over its inputs, so there is no audit key and no
// error path; suggestions are not persisted.
func (s *evaluationServiceImpl) SuggestPriceTime(title, description, category, location string, briefQuality float64) (*models.PriceTimeSuggestion, error) {
	if briefQuality < 0 || briefQuality > 1 {
		return nil, errors.InvalidInput("brief quality must be between 0 and 1", nil).
			WithOperation("SuggestPriceTime")
	}

	return s.suggester.Suggest(title, description, category, location, briefQuality), nil
}

// GuidedBid suggests a competitive bid price with nudges
func (s *evaluationServiceImpl) GuidedBid(mission *models.Mission, currentBids []float64) (*models.GuidedBid, error) {
	guided, err := s.pricing.GuidedBid(mission, currentBids)
	if err != nil {
		return nil, err
	}

	s.audit(repository.KindGuidedBid, mission.ID, "", guided)

	return guided, nil
}

// DetectCollusion runs collusion detection over a bid set
func (s *evaluationServiceImpl) DetectCollusion(missionID string, bids []models.Bid) (*models.CollusionReport, error) {
	report := s.detector.DetectCollusion(bids)

	if report.CollusionDetected {
		s.logger.Warn("Collusion indicators found",
			"mission_id", missionID, "bids", len(bids), "confidence", report.Confidence)
	}
	s.audit(repository.KindCollusion, missionID, "", report)

	return report, nil
}

// DetectDumping checks a bid against the market average price
func (s *evaluationServiceImpl) DetectDumping(bid *models.Bid, mission *models.Mission, marketAverage float64) (*models.DumpingReport, error) {
	report, err := s.detector.DetectDumping(bid, mission, marketAverage)
	if err != nil {
		return nil, err
	}

	if report.DumpingDetected {
		s.logger.Warn("Dumping detected",
			"mission_id", mission.ID, "provider_id", bid.ProviderID,
			"ratio", report.PriceRatio, "severity", report.Severity)
	}
	s.audit(repository.KindDumping, mission.ID, bid.ProviderID, report)

	return report, nil
}

// ScanBids runs the full integrity sweep over a mission's bid set:
// collusion over the set, dumping per bid against the set's own mean price.
func (s *evaluationServiceImpl) ScanBids(mission *models.Mission, bids []models.Bid) (*models.IntegrityScan, error) {
	if err := mission.Validate(); err != nil {
		return nil, err
	}

	scan := &models.IntegrityScan{
		Collusion: s.detector.DetectCollusion(bids),
		Dumping:   make([]models.DumpingReport, 0, len(bids)),
	}

	if len(bids) > 0 {
		sum := 0.0
		for _, bid := range bids {
			sum += bid.Price
		}
		mean := sum / float64(len(bids))

		for i := range bids {
			report, err := s.detector.DetectDumping(&bids[i], mission, mean)
			if err != nil {
				return nil, err
			}
			scan.Dumping = append(scan.Dumping, *report)
		}
	}

	s.audit(repository.KindIntegrityScan, mission.ID, "", scan)

	return scan, nil
}

// GetEvaluations returns the stored audit trail for a mission
func (s *evaluationServiceImpl) GetEvaluations(missionID string, limit int) ([]repository.EvaluationRecord, error) {
	if s.repos == nil || s.repos.Evaluation == nil {
		return nil, errors.InternalError("evaluation store not configured", nil).
			WithOperation("GetEvaluations")
	}

	records, err := s.repos.Evaluation.GetByMission(missionID, limit)
	if err != nil {
		return nil, errors.DatabaseError("failed to load evaluations", err).
			WithOperation("GetEvaluations")
	}

	return records, nil
}

// audit stores an evaluation result. Audit writes are best effort: engine
// results have already been computed and a storage failure must not turn a
// successful evaluation into an error.
func (s *evaluationServiceImpl) audit(kind, missionID, providerID string, result interface{}) {
	if s.repos == nil || s.repos.Evaluation == nil {
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		s.logger.Warn("Failed to marshal evaluation result for audit", "kind", kind, "error", err)
		return
	}

	record := &repository.EvaluationRecord{
		MissionID:  missionID,
		ProviderID: providerID,
		Kind:       kind,
		Result:     payload,
	}
	if err := s.repos.Evaluation.Store(record); err != nil {
		s.logger.Warn("Failed to store evaluation audit record", "kind", kind, "error", err)
	}
}
