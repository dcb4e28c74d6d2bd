package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/missionmarket/intel-api/internal/models"
	"github.com/missionmarket/intel-api/internal/services"
)

// IntegrityHandler handles market-integrity operations
type IntegrityHandler struct {
	evaluation services.EvaluationService
}

// NewIntegrityHandler creates a new integrity handler
func NewIntegrityHandler(evaluation services.EvaluationService) *IntegrityHandler {
	return &IntegrityHandler{evaluation: evaluation}
}

type collusionRequest struct {
	MissionID string       `json:"mission_id"`
	Bids      []models.Bid `json:"bids"`
}

// DetectCollusion runs collusion detection over a bid set
func (h *IntegrityHandler) DetectCollusion(c *gin.Context) {
	var req collusionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	report, err := h.evaluation.DetectCollusion(req.MissionID, req.Bids)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"report":    report,
		"timestamp": time.Now(),
	})
}

type dumpingRequest struct {
	Bid           *models.Bid     `json:"bid" binding:"required"`
	Mission       *models.Mission `json:"mission" binding:"required"`
	MarketAverage float64         `json:"market_average"`
}

// DetectDumping checks a single bid against the market average price
func (h *IntegrityHandler) DetectDumping(c *gin.Context) {
	var req dumpingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	report, err := h.evaluation.DetectDumping(req.Bid, req.Mission, req.MarketAverage)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"report":    report,
		"timestamp": time.Now(),
	})
}

type scanRequest struct {
	Mission *models.Mission `json:"mission" binding:"required"`
	Bids    []models.Bid    `json:"bids"`
}

// Scan runs the full integrity sweep over a mission's bid set
func (h *IntegrityHandler) Scan(c *gin.Context) {
	var req scanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	scan, err := h.evaluation.ScanBids(req.Mission, req.Bids)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"scan":      scan,
		"timestamp": time.Now(),
	})
}
