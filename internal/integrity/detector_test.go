package integrity

import (
	"math"
	"testing"
	"time"

	"github.com/missionmarket/intel-api/internal/models"
)

func bidAt(id string, price float64, at time.Time) models.Bid {
	return models.Bid{
		ID:         id,
		MissionID:  "m-1",
		ProviderID: "p-" + id,
		Price:      price,
		Timeline:   "2 weeks",
		CreatedAt:  at,
	}
}

func integrityMission() *models.Mission {
	return &models.Mission{
		ID:            "m-1",
		Title:         "Garden redesign",
		Budget:        3000,
		Category:      "jardinage",
		Urgency:       "low",
		Complexity:    "low",
		DurationWeeks: 2,
	}
}

func TestDetector_DetectCollusion_BothSignals(t *testing.T) {
	detector := NewDetector()
	start := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

	// Near-identical prices posted seconds apart
	bids := []models.Bid{
		bidAt("1", 100, start),
		bidAt("2", 101, start.Add(10*time.Second)),
		bidAt("3", 99, start.Add(20*time.Second)),
	}

	report := detector.DetectCollusion(bids)
	if !report.CollusionDetected {
		t.Error("Expected collusion to be detected")
	}
	if len(report.Indicators) != 2 {
		t.Fatalf("Expected both indicators, got %v", report.Indicators)
	}
	if report.Indicators[0] != indicatorSimilarPrices || report.Indicators[1] != indicatorCoordinatedTiming {
		t.Errorf("Unexpected indicators: %v", report.Indicators)
	}
	if math.Abs(report.Confidence-80) > 1e-9 {
		t.Errorf("Expected confidence 80, got %f", report.Confidence)
	}
}

func TestDetector_DetectCollusion_SingleBidNoSignal(t *testing.T) {
	detector := NewDetector()

	for _, bids := range [][]models.Bid{
		nil,
		{},
		{bidAt("1", 500, time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC))},
	} {
		report := detector.DetectCollusion(bids)
		if report.CollusionDetected {
			t.Errorf("Expected no detection for %d bids", len(bids))
		}
		if len(report.Indicators) != 0 {
			t.Errorf("Expected no indicators, got %v", report.Indicators)
		}
		if report.Confidence != 0 {
			t.Errorf("Expected zero confidence, got %f", report.Confidence)
		}
	}
}

func TestDetector_DetectCollusion_TwoBidsSkipVariance(t *testing.T) {
	detector := NewDetector()
	start := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

	// Identical prices but only two samples: the variance signal needs
	// more than two prices, so only timing can fire
	bids := []models.Bid{
		bidAt("1", 100, start),
		bidAt("2", 100, start.Add(2*time.Hour)),
	}

	report := detector.DetectCollusion(bids)
	if report.CollusionDetected {
		t.Errorf("Expected no detection, got indicators %v", report.Indicators)
	}
}

func TestDetector_DetectCollusion_TimingUsesInputOrder(t *testing.T) {
	detector := NewDetector()
	start := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

	// Chronologically the bids are hours apart, but the input order puts
	// a later bid before an earlier one: the negative delta counts as
	// coordination. Input order is the contract; the detector must not
	// sort.
	bids := []models.Bid{
		bidAt("1", 900, start.Add(3*time.Hour)),
		bidAt("2", 400, start),
		bidAt("3", 2000, start.Add(6*time.Hour)),
	}

	report := detector.DetectCollusion(bids)
	found := false
	for _, indicator := range report.Indicators {
		if indicator == indicatorCoordinatedTiming {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected timing indicator from input-order deltas, got %v", report.Indicators)
	}
}

func TestDetector_DetectCollusion_SpreadPricesSlowTiming(t *testing.T) {
	detector := NewDetector()
	start := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

	bids := []models.Bid{
		bidAt("1", 400, start),
		bidAt("2", 900, start.Add(2*time.Hour)),
		bidAt("3", 2000, start.Add(5*time.Hour)),
	}

	report := detector.DetectCollusion(bids)
	if report.CollusionDetected {
		t.Errorf("Expected no detection, got indicators %v", report.Indicators)
	}
	if report.Confidence != 0 {
		t.Errorf("Expected zero confidence, got %f", report.Confidence)
	}
}

func TestDetector_DetectCollusion_DoesNotMutateInput(t *testing.T) {
	detector := NewDetector()
	start := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

	bids := []models.Bid{
		bidAt("1", 900, start.Add(3*time.Hour)),
		bidAt("2", 400, start),
		bidAt("3", 2000, start.Add(6*time.Hour)),
	}
	original := make([]models.Bid, len(bids))
	copy(original, bids)

	detector.DetectCollusion(bids)

	for i := range bids {
		if bids[i] != original[i] {
			t.Fatalf("Input bid %d mutated: %+v != %+v", i, bids[i], original[i])
		}
	}
}

func TestDetector_DetectDumping(t *testing.T) {
	detector := NewDetector()
	marketAverage := 1000.0

	testCases := []struct {
		name           string
		price          float64
		detected       bool
		severity       string
		recommendation string
	}{
		{name: "Severe dumping", price: 250, detected: true, severity: models.SeveritySevere, recommendation: models.RecommendationBlock},
		{name: "Ratio 0.3 is moderate not severe", price: 300, detected: true, severity: models.SeverityModerate, recommendation: models.RecommendationFlag},
		{name: "Moderate dumping", price: 350, detected: true, severity: models.SeverityModerate, recommendation: models.RecommendationFlag},
		{name: "Mild dumping", price: 450, detected: true, severity: models.SeverityMild, recommendation: models.RecommendationFlag},
		{name: "Ratio 0.5 is not dumping", price: 500, detected: false, severity: models.SeverityNone, recommendation: models.RecommendationAllow},
		{name: "Normal price", price: 950, detected: false, severity: models.SeverityNone, recommendation: models.RecommendationAllow},
		{name: "Above market", price: 1500, detected: false, severity: models.SeverityNone, recommendation: models.RecommendationAllow},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bid := bidAt("1", tc.price, time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC))
			report, err := detector.DetectDumping(&bid, integrityMission(), marketAverage)
			if err != nil {
				t.Fatalf("DetectDumping failed: %v", err)
			}
			if report.DumpingDetected != tc.detected {
				t.Errorf("Expected detected=%v, got %v", tc.detected, report.DumpingDetected)
			}
			if report.Severity != tc.severity {
				t.Errorf("Expected severity %s, got %s", tc.severity, report.Severity)
			}
			if report.Recommendation != tc.recommendation {
				t.Errorf("Expected recommendation %s, got %s", tc.recommendation, report.Recommendation)
			}
			if math.Abs(report.PriceRatio-tc.price/marketAverage) > 1e-9 {
				t.Errorf("Expected ratio %f, got %f", tc.price/marketAverage, report.PriceRatio)
			}
		})
	}
}

func TestDetector_DetectDumping_InvalidMarketAverage(t *testing.T) {
	detector := NewDetector()
	bid := bidAt("1", 500, time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC))

	for _, avg := range []float64{0, -100} {
		if _, err := detector.DetectDumping(&bid, integrityMission(), avg); err == nil {
			t.Errorf("Expected error for market average %f", avg)
		}
	}
}

func TestMeanStddev(t *testing.T) {
	mean, stddev := meanStddev([]float64{100, 101, 99})
	if math.Abs(mean-100) > 1e-9 {
		t.Errorf("Expected mean 100, got %f", mean)
	}
	// Population standard deviation of {100,101,99}
	expected := math.Sqrt(2.0 / 3.0)
	if math.Abs(stddev-expected) > 1e-9 {
		t.Errorf("Expected stddev %f, got %f", expected, stddev)
	}
}

func BenchmarkDetector_DetectCollusion(b *testing.B) {
	detector := NewDetector()
	start := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	bids := make([]models.Bid, 50)
	for i := range bids {
		bids[i] = bidAt(string(rune('a'+i%26)), float64(500+i*13), start.Add(time.Duration(i)*time.Minute))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		detector.DetectCollusion(bids)
	}
}
