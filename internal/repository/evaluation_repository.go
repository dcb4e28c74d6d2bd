package repository

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// evaluationRepository implements EvaluationRepository
type evaluationRepository struct {
	db dbExecutor
}

// NewEvaluationRepository creates a new evaluation repository
func NewEvaluationRepository(db dbExecutor) EvaluationRepository {
	return &evaluationRepository{db: db}
}

// Store inserts an evaluation record. A missing ID or timestamp is filled in.
func (r *evaluationRepository) Store(record *EvaluationRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO evaluations (id, mission_id, provider_id, kind, result, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(query, record.ID, record.MissionID, record.ProviderID,
		record.Kind, []byte(record.Result), record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to store evaluation record: %w", err)
	}

	return nil
}

// GetByMission retrieves the most recent evaluation records for a mission
func (r *evaluationRepository) GetByMission(missionID string, limit int) ([]EvaluationRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, mission_id, provider_id, kind, result, created_at
		FROM evaluations
		WHERE mission_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(query, missionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query evaluations: %w", err)
	}
	defer rows.Close()

	var records []EvaluationRecord
	for rows.Next() {
		var record EvaluationRecord
		var result []byte

		err := rows.Scan(&record.ID, &record.MissionID, &record.ProviderID,
			&record.Kind, &result, &record.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan evaluation record: %w", err)
		}

		record.Result = result
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read evaluations: %w", err)
	}

	return records, nil
}

// DeleteByMission deletes all evaluation records for a mission
func (r *evaluationRepository) DeleteByMission(missionID string) error {
	query := `DELETE FROM evaluations WHERE mission_id = $1`

	_, err := r.db.Exec(query, missionID)
	if err != nil {
		return fmt.Errorf("failed to delete evaluations: %w", err)
	}

	return nil
}
