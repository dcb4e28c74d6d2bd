package integrity

import (
	"fmt"
	"math"
	"time"

	"github.com/missionmarket/intel-api/internal/errors"
	"github.com/missionmarket/intel-api/internal/models"
)

// Detection thresholds
const (
	// Coefficient of variation under which a price set is considered
	// suspiciously uniform
	priceSimilarityCV = 0.05
	// Minimum samples before a coefficient of variation is meaningful
	minPricesForVariance = 3
	// Consecutive bids closer than this suggest coordination
	coordinatedWindow = 60 * time.Second
	// Confidence added per collusion indicator, capped at 95
	confidencePerIndicator = 40
	maxConfidence          = 95
	// Dumping threshold as a share of the market average
	dumpingShare = 0.5
)

// Indicator sentences attached to collusion reports
const (
	indicatorSimilarPrices     = "Prices suspiciously similar"
	indicatorCoordinatedTiming = "Coordinated timing detected"
)

// Detector runs statistical and temporal anomaly checks over bids. It is
// stateless and safe for concurrent use.
type Detector struct{}

// NewDetector creates a new integrity detector
func NewDetector() *Detector {
	return &Detector{}
}

// DetectCollusion looks for coordinated bidding over a bid set. With one
// bid or fewer there is nothing to correlate and a no-signal report is
// returned, never an error.
//
// Timing deltas are computed over the bids in the order given, not sorted
// by timestamp. Callers that want chronological analysis must sort first;
// the detector never reorders its input.
func (d *Detector) DetectCollusion(bids []models.Bid) *models.CollusionReport {
	indicators := []string{}

	if len(bids) > 1 {
		prices := make([]float64, len(bids))
		for i, bid := range bids {
			prices[i] = bid.Price
		}

		// Variance over fewer than three prices is degenerate; the
		// precondition guard skips the signal rather than faulting
		if len(prices) >= minPricesForVariance {
			mean, stddev := meanStddev(prices)
			if mean > 0 && stddev/mean < priceSimilarityCV {
				indicators = append(indicators, indicatorSimilarPrices)
			}
		}

		for i := 0; i < len(bids)-1; i++ {
			delta := bids[i+1].CreatedAt.Sub(bids[i].CreatedAt)
			if delta < coordinatedWindow {
				indicators = append(indicators, indicatorCoordinatedTiming)
				break
			}
		}
	}

	return &models.CollusionReport{
		CollusionDetected: len(indicators) > 0,
		Indicators:        indicators,
		Confidence:        math.Min(maxConfidence, float64(len(indicators))*confidencePerIndicator),
	}
}

// DetectDumping checks a single bid against the market average price.
// marketAverage must be positive.
func (d *Detector) DetectDumping(bid *models.Bid, mission *models.Mission, marketAverage float64) (*models.DumpingReport, error) {
	if marketAverage <= 0 {
		return nil, errors.InvalidInput(fmt.Sprintf("market average must be positive, got %.2f", marketAverage), nil).
			WithOperation("DetectDumping")
	}
	if err := bid.Validate(); err != nil {
		return nil, err
	}

	threshold := marketAverage * dumpingShare
	detected := bid.Price < threshold
	ratio := bid.Price / marketAverage

	severity := models.SeverityNone
	if detected {
		switch {
		case ratio < 0.3:
			severity = models.SeveritySevere
		case ratio < 0.4:
			severity = models.SeverityModerate
		default:
			severity = models.SeverityMild
		}
	}

	recommendation := models.RecommendationAllow
	if severity == models.SeveritySevere {
		recommendation = models.RecommendationBlock
	} else if detected {
		recommendation = models.RecommendationFlag
	}

	return &models.DumpingReport{
		DumpingDetected: detected,
		Severity:        severity,
		PriceRatio:      ratio,
		Recommendation:  recommendation,
	}, nil
}

// meanStddev returns the mean and population standard deviation
func meanStddev(values []float64) (float64, float64) {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values))

	return mean, math.Sqrt(variance)
}
