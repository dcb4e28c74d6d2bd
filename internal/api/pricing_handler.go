package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/missionmarket/intel-api/internal/models"
	"github.com/missionmarket/intel-api/internal/services"
)

// PricingHandler handles price recommendation operations
type PricingHandler struct {
	evaluation services.EvaluationService
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(evaluation services.EvaluationService) *PricingHandler {
	return &PricingHandler{evaluation: evaluation}
}

type recommendRequest struct {
	Mission          *models.Mission `json:"mission" binding:"required"`
	CompetitionLevel string          `json:"competition_level"`
	SkillLevel       string          `json:"skill_level"`
}

// Recommend returns a price range for a mission
func (h *PricingHandler) Recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	suggestion, err := h.evaluation.RecommendPrice(req.Mission, req.CompetitionLevel, req.SkillLevel)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"suggestion": suggestion,
		"timestamp":  time.Now(),
	})
}

type suggestRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	Location     string  `json:"location"`
	BriefQuality float64 `json:"brief_quality"`
}

// Suggest returns a category-based price and delivery time suggestion
func (h *PricingHandler) Suggest(c *gin.Context) {
	var req suggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	suggestion, err := h.evaluation.SuggestPriceTime(req.Title, req.Description, req.Category, req.Location, req.BriefQuality)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"suggestion": suggestion,
		"timestamp":  time.Now(),
	})
}

type guidedBidRequest struct {
	Mission     *models.Mission `json:"mission" binding:"required"`
	CurrentBids []float64       `json:"current_bids"`
}

// GuidedBid returns a suggested bid price with behavioral nudges
func (h *PricingHandler) GuidedBid(c *gin.Context) {
	var req guidedBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	guided, err := h.evaluation.GuidedBid(req.Mission, req.CurrentBids)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"guided_bid": guided,
		"timestamp":  time.Now(),
	})
}
