package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestPricingHandler_Recommend(t *testing.T) {
	mockService := &mockEvaluationService{}
	handler := NewPricingHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/price/recommend", handler.Recommend)

	payload := map[string]interface{}{
		"mission":           testMissionPayload(),
		"competition_level": "medium",
		"skill_level":       "medium",
	}

	resp := postJSON(router, "/price/recommend", payload)
	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var response map[string]interface{}
	if err := json.Unmarshal(resp.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	suggestion, ok := response["suggestion"].(map[string]interface{})
	if !ok {
		t.Fatal("Expected 'suggestion' field in response")
	}
	priceRange, ok := suggestion["price_range"].(map[string]interface{})
	if !ok {
		t.Fatal("Expected 'price_range' in suggestion")
	}
	if recommended, ok := priceRange["recommended"].(float64); !ok || recommended != 6650 {
		t.Errorf("Expected recommended 6650, got %v", priceRange["recommended"])
	}

	// Missing mission fails binding
	resp = postJSON(router, "/price/recommend", map[string]interface{}{
		"competition_level": "low",
	})
	if resp.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for missing mission, got %d", resp.Code)
	}

	mockService.shouldError = true
	resp = postJSON(router, "/price/recommend", payload)
	if resp.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500 for error case, got %d", resp.Code)
	}
}

func TestPricingHandler_Suggest(t *testing.T) {
	mockService := &mockEvaluationService{}
	handler := NewPricingHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/price/suggest", handler.Suggest)

	payload := map[string]interface{}{
		"title":         "Refonte e-commerce",
		"description":   "besoin urgent d'une refonte",
		"category":      "web_development",
		"location":      "Paris",
		"brief_quality": 0.8,
	}

	resp := postJSON(router, "/price/suggest", payload)
	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var response map[string]interface{}
	if err := json.Unmarshal(resp.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	suggestion, ok := response["suggestion"].(map[string]interface{})
	if !ok {
		t.Fatal("Expected 'suggestion' field in response")
	}
	if med, ok := suggestion["price_suggested_med"].(float64); !ok || med != 600000 {
		t.Errorf("Expected price_suggested_med 600000, got %v", suggestion["price_suggested_med"])
	}

	// Out-of-range brief quality maps to 400 via typed invalid input
	mockService.shouldError = true
	mockService.invalidInput = true
	resp = postJSON(router, "/price/suggest", payload)
	if resp.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for invalid input, got %d", resp.Code)
	}
}

func TestPricingHandler_GuidedBid(t *testing.T) {
	mockService := &mockEvaluationService{}
	handler := NewPricingHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/bids/guided", handler.GuidedBid)

	payload := map[string]interface{}{
		"mission":      testMissionPayload(),
		"current_bids": []float64{4000, 4200},
	}

	resp := postJSON(router, "/bids/guided", payload)
	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var response map[string]interface{}
	if err := json.Unmarshal(resp.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	guided, ok := response["guided_bid"].(map[string]interface{})
	if !ok {
		t.Fatal("Expected 'guided_bid' field in response")
	}
	if price, ok := guided["suggested_price"].(float64); !ok || price != 4500 {
		t.Errorf("Expected suggested_price 4500, got %v", guided["suggested_price"])
	}

	mockService.shouldError = true
	resp = postJSON(router, "/bids/guided", payload)
	if resp.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500 for error case, got %d", resp.Code)
	}
}
