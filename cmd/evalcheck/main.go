package main

import (
	"fmt"
	"log"
	"time"

	"github.com/missionmarket/intel-api/internal/integrity"
	"github.com/missionmarket/intel-api/internal/models"
	"github.com/missionmarket/intel-api/internal/pricing"
	"github.com/missionmarket/intel-api/internal/scoring"
	"github.com/missionmarket/intel-api/internal/tables"
)

// evalcheck runs the three engines against a fixed scenario, without a
// database or HTTP server. Useful for eyeballing engine output after a
// table change.
func main() {
	tbl := tables.Default()

	mission := &models.Mission{
		ID:             "demo-mission",
		Title:          "Refonte du site e-commerce",
		Description:    "Refonte complète avec paiement en ligne",
		Budget:         5000,
		Category:       "web",
		SkillsRequired: []string{"go", "react", "postgres"},
		Urgency:        "medium",
		Complexity:     "medium",
		DurationWeeks:  4,
	}

	provider := &models.Provider{
		ID:                "demo-provider",
		Skills:            []string{"go", "react", "sql"},
		Rating:            4.6,
		CompletedProjects: 28,
		Location:          "Lyon",
		HourlyRate:        55,
		Categories:        []string{"web"},
		ResponseTime:      2,
		SuccessRate:       0.94,
	}

	now := time.Now()
	bid := models.Bid{
		ID:         "demo-bid",
		MissionID:  mission.ID,
		ProviderID: provider.ID,
		Price:      4300,
		Timeline:   "3 semaines",
		CreatedAt:  now,
	}

	fmt.Println("Scoring")
	fmt.Println("=======")
	for _, profile := range []string{tables.DefaultWeightProfile, tables.ClientFocusedProfile, tables.QualityFocusedProfile} {
		engine, err := scoring.NewEngine(tbl.WeightProfile(profile))
		if err != nil {
			log.Fatalf("Failed to build scoring engine: %v", err)
		}
		result, err := engine.Score(mission, provider, &bid)
		if err != nil {
			log.Fatalf("Scoring failed: %v", err)
		}
		fmt.Printf("%-16s total=%.2f breakdown=%+v\n", profile, result.TotalScore, result.Breakdown)
		for _, explanation := range result.Explanations {
			fmt.Printf("  - %s\n", explanation)
		}
	}

	fmt.Println("\nPricing")
	fmt.Println("=======")
	pricingEngine := pricing.NewEngine(&tbl.Pricing)
	suggestion, err := pricingEngine.Recommend(mission, tables.CompetitionMedium, tables.SkillMedium)
	if err != nil {
		log.Fatalf("Pricing failed: %v", err)
	}
	fmt.Printf("range=[%.2f, %.2f, %.2f] confidence=%.0f position=%s\n",
		suggestion.PriceRange.Min, suggestion.PriceRange.Recommended, suggestion.PriceRange.Max,
		suggestion.Confidence, suggestion.MarketPosition)

	suggester := pricing.NewSuggester(&tbl.Pricing)
	priceTime := suggester.Suggest(mission.Title, mission.Description, "developpement", "Paris", 0.8)
	fmt.Printf("suggester med=%d cents over %d days (confidence %.2f)\n",
		priceTime.PriceSuggestedMed, priceTime.DelaySuggestedDays, priceTime.Confidence)
	for _, reason := range priceTime.Rationale {
		fmt.Printf("  - %s\n", reason)
	}

	guided, err := pricingEngine.GuidedBid(mission, []float64{4400, 4600, 4200})
	if err != nil {
		log.Fatalf("Guided bidding failed: %v", err)
	}
	fmt.Printf("guided bid=%.2f nudges=%v\n", guided.SuggestedPrice, guided.Nudges)

	fmt.Println("\nIntegrity")
	fmt.Println("=========")
	detector := integrity.NewDetector()
	cluster := []models.Bid{
		{ID: "c-1", MissionID: mission.ID, ProviderID: "p-1", Price: 1000, Timeline: "2 semaines", CreatedAt: now},
		{ID: "c-2", MissionID: mission.ID, ProviderID: "p-2", Price: 1010, Timeline: "2 semaines", CreatedAt: now.Add(15 * time.Second)},
		{ID: "c-3", MissionID: mission.ID, ProviderID: "p-3", Price: 990, Timeline: "2 semaines", CreatedAt: now.Add(30 * time.Second)},
	}
	collusion := detector.DetectCollusion(cluster)
	fmt.Printf("collusion detected=%v confidence=%.0f indicators=%v\n",
		collusion.CollusionDetected, collusion.Confidence, collusion.Indicators)

	lowball := models.Bid{ID: "d-1", MissionID: mission.ID, ProviderID: "p-4", Price: 1200, Timeline: "1 semaine", CreatedAt: now}
	dumping, err := detector.DetectDumping(&lowball, mission, 4000)
	if err != nil {
		log.Fatalf("Dumping detection failed: %v", err)
	}
	fmt.Printf("dumping detected=%v ratio=%.2f severity=%s recommendation=%s\n",
		dumping.DumpingDetected, dumping.PriceRatio, dumping.Severity, dumping.Recommendation)
}
