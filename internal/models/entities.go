package models

import (
	"fmt"
	"time"

	"github.com/missionmarket/intel-api/internal/errors"
)

// Urgency and complexity levels accepted on missions
const (
	LevelLow    = "low"
	LevelMedium = "medium"
	LevelHigh   = "high"
)

// Mission represents a job posted by a client
type Mission struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Budget         float64  `json:"budget"`
	Category       string   `json:"category"`
	ClientID       string   `json:"client_id"`
	SkillsRequired []string `json:"skills_required"`
	Urgency        string   `json:"urgency"`
	Complexity     string   `json:"complexity"`
	DurationWeeks  int      `json:"duration_weeks"`
}

// Provider represents a service provider profile
type Provider struct {
	ID                string   `json:"id"`
	Skills            []string `json:"skills"`
	Rating            float64  `json:"rating"`
	CompletedProjects int      `json:"completed_projects"`
	Location          string   `json:"location"`
	HourlyRate        float64  `json:"hourly_rate"`
	Categories        []string `json:"categories"`
	ResponseTime      float64  `json:"response_time"`
	SuccessRate       float64  `json:"success_rate"`
}

// Bid represents a provider's offer on a mission. CreatedAt is expected
// as an RFC3339 timestamp on the wire and is handled as a UTC instant.
type Bid struct {
	ID         string    `json:"id"`
	MissionID  string    `json:"mission_id"`
	ProviderID string    `json:"provider_id"`
	Price      float64   `json:"price"`
	Timeline   string    `json:"timeline"`
	Proposal   string    `json:"proposal"`
	CreatedAt  time.Time `json:"created_at"`
}

func validLevel(level string) bool {
	return level == LevelLow || level == LevelMedium || level == LevelHigh
}

// Validate checks mission fields against the documented input domain
func (m *Mission) Validate() error {
	if m.Budget <= 0 {
		return errors.InvalidInput(fmt.Sprintf("mission budget must be positive, got %.2f", m.Budget), nil)
	}
	if m.DurationWeeks <= 0 {
		return errors.InvalidInput(fmt.Sprintf("mission duration_weeks must be positive, got %d", m.DurationWeeks), nil)
	}
	if !validLevel(m.Urgency) {
		return errors.InvalidInput("mission urgency must be one of low, medium, high", nil)
	}
	if !validLevel(m.Complexity) {
		return errors.InvalidInput("mission complexity must be one of low, medium, high", nil)
	}
	return nil
}

// Validate checks provider fields against the documented input domain
func (p *Provider) Validate() error {
	if p.Rating < 0 || p.Rating > 5 {
		return errors.InvalidInput(fmt.Sprintf("provider rating must be in [0,5], got %.2f", p.Rating), nil)
	}
	if p.SuccessRate < 0 || p.SuccessRate > 1 {
		return errors.InvalidInput(fmt.Sprintf("provider success_rate must be in [0,1], got %.2f", p.SuccessRate), nil)
	}
	if p.HourlyRate <= 0 {
		return errors.InvalidInput(fmt.Sprintf("provider hourly_rate must be positive, got %.2f", p.HourlyRate), nil)
	}
	if p.CompletedProjects < 0 {
		return errors.InvalidInput(fmt.Sprintf("provider completed_projects must be non-negative, got %d", p.CompletedProjects), nil)
	}
	if p.ResponseTime < 0 {
		return errors.InvalidInput(fmt.Sprintf("provider response_time must be non-negative, got %.2f", p.ResponseTime), nil)
	}
	return nil
}

// Validate checks bid fields against the documented input domain
func (b *Bid) Validate() error {
	if b.Price <= 0 {
		return errors.InvalidInput(fmt.Sprintf("bid price must be positive, got %.2f", b.Price), nil)
	}
	return nil
}
