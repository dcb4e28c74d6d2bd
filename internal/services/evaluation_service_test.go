package services

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/missionmarket/intel-api/internal/models"
	"github.com/missionmarket/intel-api/internal/repository"
	"github.com/missionmarket/intel-api/internal/tables"
)

// In-memory evaluation repository for service tests
type fakeEvaluationRepo struct {
	records     []repository.EvaluationRecord
	shouldError bool
}

func (f *fakeEvaluationRepo) Store(record *repository.EvaluationRecord) error {
	if f.shouldError {
		return errors.New("store failed")
	}
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeEvaluationRepo) GetByMission(missionID string, limit int) ([]repository.EvaluationRecord, error) {
	if f.shouldError {
		return nil, errors.New("query failed")
	}
	var out []repository.EvaluationRecord
	for _, record := range f.records {
		if record.MissionID == missionID {
			out = append(out, record)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeEvaluationRepo) DeleteByMission(missionID string) error {
	return nil
}

func newTestService(t *testing.T, repo repository.EvaluationRepository) EvaluationService {
	t.Helper()

	var repos *repository.Repositories
	if repo != nil {
		repos = &repository.Repositories{Evaluation: repo}
	}

	service, err := NewEvaluationService(repos, tables.Default())
	if err != nil {
		t.Fatalf("NewEvaluationService failed: %v", err)
	}
	return service
}

func serviceMission() *models.Mission {
	return &models.Mission{
		ID:             "m-1",
		Title:          "Shop rebuild",
		Description:    "Rebuild the online shop",
		Budget:         5000,
		Category:       "web",
		ClientID:       "c-1",
		SkillsRequired: []string{"go", "react"},
		Urgency:        "medium",
		Complexity:     "medium",
		DurationWeeks:  4,
	}
}

func serviceProvider() *models.Provider {
	return &models.Provider{
		ID:                "p-1",
		Skills:            []string{"go", "react", "sql"},
		Rating:            4.6,
		CompletedProjects: 30,
		Location:          "Paris",
		HourlyRate:        60,
		Categories:        []string{"web"},
		ResponseTime:      2,
		SuccessRate:       0.95,
	}
}

func serviceBid(price float64, at time.Time) models.Bid {
	return models.Bid{
		ID:         "b-1",
		MissionID:  "m-1",
		ProviderID: "p-1",
		Price:      price,
		Timeline:   "3 semaines",
		CreatedAt:  at,
	}
}

func TestEvaluationService_ScoreBid_WritesAudit(t *testing.T) {
	repo := &fakeEvaluationRepo{}
	service := newTestService(t, repo)

	bid := serviceBid(4500, time.Now())
	result, err := service.ScoreBid("", serviceMission(), serviceProvider(), &bid)
	if err != nil {
		t.Fatalf("ScoreBid failed: %v", err)
	}
	if result.TotalScore < 0 || result.TotalScore > 100 {
		t.Errorf("Total score %f outside [0,100]", result.TotalScore)
	}

	if len(repo.records) != 1 {
		t.Fatalf("Expected 1 audit record, got %d", len(repo.records))
	}
	record := repo.records[0]
	if record.Kind != repository.KindScore {
		t.Errorf("Expected kind %s, got %s", repository.KindScore, record.Kind)
	}
	if record.MissionID != "m-1" || record.ProviderID != "p-1" {
		t.Errorf("Unexpected record keys: %s / %s", record.MissionID, record.ProviderID)
	}

	var stored models.ScoreResult
	if err := json.Unmarshal(record.Result, &stored); err != nil {
		t.Fatalf("Stored result is not valid JSON: %v", err)
	}
	if math.Abs(stored.TotalScore-result.TotalScore) > 1e-9 {
		t.Errorf("Stored total %f differs from returned %f", stored.TotalScore, result.TotalScore)
	}
}

func TestEvaluationService_ScoreBid_ProfileSelection(t *testing.T) {
	service := newTestService(t, nil)

	bid := serviceBid(4500, time.Now())

	base, err := service.ScoreBid(tables.DefaultWeightProfile, serviceMission(), serviceProvider(), &bid)
	if err != nil {
		t.Fatalf("ScoreBid failed: %v", err)
	}
	clientFocused, err := service.ScoreBid(tables.ClientFocusedProfile, serviceMission(), serviceProvider(), &bid)
	if err != nil {
		t.Fatalf("ScoreBid failed: %v", err)
	}
	unknown, err := service.ScoreBid("nonsense", serviceMission(), serviceProvider(), &bid)
	if err != nil {
		t.Fatalf("ScoreBid failed: %v", err)
	}

	// Sub-scores do not depend on the profile, only the weighted total does
	if base.Breakdown != clientFocused.Breakdown {
		t.Errorf("Breakdowns differ between profiles: %+v vs %+v", base.Breakdown, clientFocused.Breakdown)
	}
	if unknown.TotalScore != base.TotalScore {
		t.Errorf("Unknown profile should fall back to default: %f vs %f", unknown.TotalScore, base.TotalScore)
	}
}

func TestEvaluationService_ScoreBid_AuditFailureIsNotFatal(t *testing.T) {
	repo := &fakeEvaluationRepo{shouldError: true}
	service := newTestService(t, repo)

	bid := serviceBid(4500, time.Now())
	if _, err := service.ScoreBid("", serviceMission(), serviceProvider(), &bid); err != nil {
		t.Errorf("Expected scoring to succeed despite audit failure, got %v", err)
	}
}

func TestEvaluationService_SuggestPriceTime_BriefQualityBounds(t *testing.T) {
	service := newTestService(t, nil)

	if _, err := service.SuggestPriceTime("t", "d", "web_development", "", 1.5); err == nil {
		t.Error("Expected error for brief quality above 1")
	}
	if _, err := service.SuggestPriceTime("t", "d", "web_development", "", -0.1); err == nil {
		t.Error("Expected error for negative brief quality")
	}

	suggestion, err := service.SuggestPriceTime("Site vitrine", "site vitrine simple", "web_development", "", 0.5)
	if err != nil {
		t.Fatalf("SuggestPriceTime failed: %v", err)
	}
	if suggestion.PriceSuggestedMed <= 0 {
		t.Errorf("Expected positive suggested price, got %d", suggestion.PriceSuggestedMed)
	}
}

func TestEvaluationService_ScanBids(t *testing.T) {
	repo := &fakeEvaluationRepo{}
	service := newTestService(t, repo)
	start := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

	// One outlier far below the set's own mean
	bids := []models.Bid{
		serviceBid(4000, start),
		serviceBid(4200, start.Add(2*time.Hour)),
		serviceBid(900, start.Add(4*time.Hour)),
	}

	scan, err := service.ScanBids(serviceMission(), bids)
	if err != nil {
		t.Fatalf("ScanBids failed: %v", err)
	}

	if scan.Collusion == nil {
		t.Fatal("Expected a collusion report")
	}
	if len(scan.Dumping) != 3 {
		t.Fatalf("Expected 3 dumping reports, got %d", len(scan.Dumping))
	}

	// mean = 9100/3; 900 is below half of it
	if !scan.Dumping[2].DumpingDetected {
		t.Error("Expected dumping detected for the outlier bid")
	}
	if scan.Dumping[0].DumpingDetected || scan.Dumping[1].DumpingDetected {
		t.Error("Expected no dumping for bids near the mean")
	}

	if len(repo.records) != 1 || repo.records[0].Kind != repository.KindIntegrityScan {
		t.Errorf("Expected a single integrity_scan audit record, got %+v", repo.records)
	}
}

func TestEvaluationService_ScanBids_EmptySet(t *testing.T) {
	service := newTestService(t, nil)

	scan, err := service.ScanBids(serviceMission(), nil)
	if err != nil {
		t.Fatalf("ScanBids failed: %v", err)
	}
	if scan.Collusion.CollusionDetected {
		t.Error("Expected no collusion signal for empty set")
	}
	if len(scan.Dumping) != 0 {
		t.Errorf("Expected no dumping reports, got %d", len(scan.Dumping))
	}
}

func TestEvaluationService_GetEvaluations(t *testing.T) {
	repo := &fakeEvaluationRepo{}
	service := newTestService(t, repo)

	bid := serviceBid(4500, time.Now())
	if _, err := service.ScoreBid("", serviceMission(), serviceProvider(), &bid); err != nil {
		t.Fatalf("ScoreBid failed: %v", err)
	}
	if _, err := service.GuidedBid(serviceMission(), []float64{4000, 4500}); err != nil {
		t.Fatalf("GuidedBid failed: %v", err)
	}

	records, err := service.GetEvaluations("m-1", 10)
	if err != nil {
		t.Fatalf("GetEvaluations failed: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("Expected 2 records, got %d", len(records))
	}
}

func TestEvaluationService_GetEvaluations_NoStore(t *testing.T) {
	service := newTestService(t, nil)

	if _, err := service.GetEvaluations("m-1", 10); err == nil {
		t.Error("Expected error when no audit store is configured")
	}
}
