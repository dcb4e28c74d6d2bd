package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/missionmarket/intel-api/internal/database"
	"github.com/missionmarket/intel-api/internal/services"
	"github.com/missionmarket/intel-api/pkg/config"
)

// SetupRoutes configures all API routes
func SetupRoutes(r *gin.Engine, db *database.DB, cfg *config.Config) error {
	svcs, err := services.NewServices(db.DB, cfg)
	if err != nil {
		return fmt.Errorf("failed to create services: %w", err)
	}

	scoringHandler := NewScoringHandler(svcs.Evaluation)
	pricingHandler := NewPricingHandler(svcs.Evaluation)
	integrityHandler := NewIntegrityHandler(svcs.Evaluation)
	healthHandler := NewHealthHandler(db)

	public := r.Group("/api/v1")
	{
		// Bid scoring
		public.POST("/score/comprehensive", scoringHandler.ScoreComprehensive)

		// Pricing
		public.POST("/price/recommend", pricingHandler.Recommend)
		public.POST("/price/suggest", pricingHandler.Suggest)
		public.POST("/bids/guided", pricingHandler.GuidedBid)

		// Market integrity
		public.POST("/integrity/collusion", integrityHandler.DetectCollusion)
		public.POST("/integrity/dumping", integrityHandler.DetectDumping)
		public.POST("/integrity/scan", integrityHandler.Scan)

		// Audit trail
		public.GET("/evaluations/:mission_id", scoringHandler.GetEvaluations)

		public.GET("/health", healthHandler.Health)
	}

	return nil
}
