package repository

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Evaluation kinds stored in the audit trail
const (
	KindScore               = "score"
	KindPriceRecommendation = "price_recommendation"
	KindGuidedBid           = "guided_bid"
	KindCollusion           = "collusion"
	KindDumping             = "dumping"
	KindIntegrityScan       = "integrity_scan"
)

// EvaluationRecord is one stored evaluation result. Result holds the
// engine output as JSON, exactly as it was returned to the caller.
type EvaluationRecord struct {
	ID         uuid.UUID       `json:"id"`
	MissionID  string          `json:"mission_id"`
	ProviderID string          `json:"provider_id,omitempty"`
	Kind       string          `json:"kind"`
	Result     json.RawMessage `json:"result"`
	CreatedAt  time.Time       `json:"created_at"`
}

// EvaluationRepository defines the interface for evaluation audit data access
type EvaluationRepository interface {
	Store(record *EvaluationRecord) error
	GetByMission(missionID string, limit int) ([]EvaluationRecord, error)
	DeleteByMission(missionID string) error
}

// TransactionManager defines the interface for database transaction management
type TransactionManager interface {
	WithTransaction(fn func(repos *Repositories) error) error
}

// Repositories groups all repository interfaces
type Repositories struct {
	Evaluation EvaluationRepository
	Tx         TransactionManager
}
