package pricing

import (
	"math"

	"github.com/missionmarket/intel-api/internal/models"
)

// Anti-dumping floor as a share of the mission budget
const minReasonableShare = 0.4

// GuidedBid suggests a competitive bid price for a provider entering a
// reverse auction, with behavioral nudges. currentBids holds the prices
// already offered on the mission.
func (e *Engine) GuidedBid(mission *models.Mission, currentBids []float64) (*models.GuidedBid, error) {
	if err := mission.Validate(); err != nil {
		return nil, err
	}

	avgBid := mission.Budget
	if len(currentBids) > 0 {
		sum := 0.0
		for _, price := range currentBids {
			sum += price
		}
		avgBid = sum / float64(len(currentBids))
	}

	minReasonable := mission.Budget * minReasonableShare
	competitive := math.Min(avgBid*0.95, mission.Budget*0.9)
	suggested := math.Max(minReasonable, competitive)

	nudges := []string{}
	if suggested < mission.Budget*0.5 {
		nudges = append(nudges, "Very aggressive price - make sure you can deliver with quality")
	}
	if len(currentBids) > 5 {
		nudges = append(nudges, "Strong competition - differentiate on quality")
	}
	if mission.Urgency == models.LevelHigh {
		nudges = append(nudges, "Urgent mission - highlight your availability")
	}

	guided := &models.GuidedBid{
		SuggestedPrice: suggested,
		Nudges:         nudges,
	}
	if suggested <= minReasonable {
		guided.AntiDumpingWarning = "Warning: this price could be considered dumping"
	}

	return guided, nil
}
