package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/missionmarket/intel-api/internal/models"
	"github.com/missionmarket/intel-api/internal/services"
)

// ScoringHandler handles bid scoring and audit trail operations
type ScoringHandler struct {
	evaluation services.EvaluationService
}

// NewScoringHandler creates a new scoring handler
func NewScoringHandler(evaluation services.EvaluationService) *ScoringHandler {
	return &ScoringHandler{evaluation: evaluation}
}

type scoreRequest struct {
	Mission       *models.Mission  `json:"mission" binding:"required"`
	Provider      *models.Provider `json:"provider" binding:"required"`
	Bid           *models.Bid      `json:"bid"`
	WeightProfile string           `json:"weight_profile"`
}

// ScoreComprehensive scores a mission/provider/bid triple
func (h *ScoringHandler) ScoreComprehensive(c *gin.Context) {
	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.evaluation.ScoreBid(req.WeightProfile, req.Mission, req.Provider, req.Bid)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":    result,
		"timestamp": time.Now(),
	})
}

// GetEvaluations returns the stored evaluation audit trail for a mission
func (h *ScoringHandler) GetEvaluations(c *gin.Context) {
	missionID := c.Param("mission_id")

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		limit = parsed
	}

	records, err := h.evaluation.GetEvaluations(missionID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mission_id":  missionID,
		"evaluations": records,
		"timestamp":   time.Now(),
	})
}
