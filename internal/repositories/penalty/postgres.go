package penalty

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/forfeit/internal/models"
	"github.com/lib/pq"
)

const (
	// uniqueViolation is the Postgres SQLSTATE for a unique constraint failure
	uniqueViolation = "23505"

	penaltyColumns = "id, type, obligation_id, challenge_id, from_user_id, to_user_id, amount, reason, COALESCE(period_key, ''), created_at"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS penalties (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		obligation_id TEXT NOT NULL DEFAULT '',
		challenge_id TEXT NOT NULL DEFAULT '',
		from_user_id TEXT NOT NULL,
		to_user_id TEXT NOT NULL,
		amount DOUBLE PRECISION NOT NULL,
		reason TEXT NOT NULL DEFAULT '',
		period_key TEXT,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS penalties_period_slot
		ON penalties (obligation_id, period_key, to_user_id)
		WHERE period_key IS NOT NULL`,
	`CREATE INDEX IF NOT EXISTS penalties_from_user ON penalties (from_user_id)`,
	`CREATE INDEX IF NOT EXISTS penalties_to_user ON penalties (to_user_id)`,
}

// PostgresConfig holds configuration for the Postgres penalty repository
type PostgresConfig struct {
	// DB is an open handle using the lib/pq driver
	DB *sql.DB
}

// postgresRepository implements the Repository interface using PostgreSQL
type postgresRepository struct {
	db *sql.DB
}

// NewPostgres creates a new Postgres-backed penalty repository
func NewPostgres(cfg *PostgresConfig) (*postgresRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("database cannot be nil")
	}

	if err := cfg.DB.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	return &postgresRepository{
		db: cfg.DB,
	}, nil
}

// EnsureSchema creates the penalties table and its indexes when missing
func (r *postgresRepository) EnsureSchema(ctx context.Context) error {
	for _, statement := range schemaStatements {
		if _, err := r.db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("failed to ensure penalty schema: %w", err)
		}
	}
	return nil
}

// PenaltyExists reports whether the period slot is taken
func (r *postgresRepository) PenaltyExists(ctx context.Context, input *PenaltyExistsInput) (bool, error) {
	if input == nil || input.ObligationID == "" || input.PeriodKey == "" || input.ToUserID == "" {
		return false, errors.New("obligation ID, period key and recipient cannot be empty")
	}

	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM penalties WHERE obligation_id = $1 AND period_key = $2 AND to_user_id = $3)",
		input.ObligationID, input.PeriodKey, input.ToUserID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check penalty: %w", err)
	}

	return exists, nil
}

// CreatePenalty inserts a penalty. The partial unique index makes the period
// slot claim atomic; a conflicting insert affects no rows.
func (r *postgresRepository) CreatePenalty(ctx context.Context, input *CreatePenaltyInput) error {
	if err := validatePenalty(input); err != nil {
		return err
	}

	record := input.Penalty
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO penalties (id, type, obligation_id, challenge_id, from_user_id, to_user_id, amount, reason, period_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10)
		ON CONFLICT (obligation_id, period_key, to_user_id) WHERE period_key IS NOT NULL DO NOTHING
	`
	result, err := r.db.ExecContext(ctx, query,
		record.ID, string(record.Type), record.ObligationID, record.ChallengeID,
		record.FromUserID, record.ToUserID, record.Amount, record.Reason,
		record.PeriodKey, record.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrDuplicatePenalty
		}
		return fmt.Errorf("failed to create penalty: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to create penalty: %w", err)
	}
	if affected == 0 {
		return ErrDuplicatePenalty
	}

	return nil
}

// GetPenaltiesForObligationPeriod retrieves the penalties of one period
func (r *postgresRepository) GetPenaltiesForObligationPeriod(ctx context.Context, input *GetPenaltiesForObligationPeriodInput) (*GetPenaltiesForObligationPeriodOutput, error) {
	if input == nil || input.ObligationID == "" || input.PeriodKey == "" {
		return nil, errors.New("obligation ID and period key cannot be empty")
	}

	penalties, err := r.query(ctx,
		"SELECT "+penaltyColumns+" FROM penalties WHERE obligation_id = $1 AND period_key = $2 ORDER BY created_at, id",
		input.ObligationID, input.PeriodKey)
	if err != nil {
		return nil, err
	}

	return &GetPenaltiesForObligationPeriodOutput{
		Penalties: penalties,
	}, nil
}

// GetPenaltiesForObligation retrieves every penalty of an obligation
func (r *postgresRepository) GetPenaltiesForObligation(ctx context.Context, input *GetPenaltiesForObligationInput) (*GetPenaltiesForObligationOutput, error) {
	if input == nil || input.ObligationID == "" {
		return nil, errors.New("input and obligation ID cannot be empty")
	}

	penalties, err := r.query(ctx,
		"SELECT "+penaltyColumns+" FROM penalties WHERE obligation_id = $1 ORDER BY created_at, id",
		input.ObligationID)
	if err != nil {
		return nil, err
	}

	return &GetPenaltiesForObligationOutput{
		Penalties: penalties,
	}, nil
}

// GetPenaltiesForUser retrieves every penalty where the user owes or is owed
func (r *postgresRepository) GetPenaltiesForUser(ctx context.Context, input *GetPenaltiesForUserInput) (*GetPenaltiesForUserOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	penalties, err := r.query(ctx,
		"SELECT "+penaltyColumns+" FROM penalties WHERE from_user_id = $1 OR to_user_id = $1 ORDER BY created_at, id",
		input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetPenaltiesForUserOutput{
		Penalties: penalties,
	}, nil
}

// DeletePenalty removes a penalty row, which also frees its period slot
func (r *postgresRepository) DeletePenalty(ctx context.Context, input *DeletePenaltyInput) error {
	if input == nil || input.PenaltyID == "" {
		return errors.New("input and penalty ID cannot be empty")
	}

	result, err := r.db.ExecContext(ctx, "DELETE FROM penalties WHERE id = $1", input.PenaltyID)
	if err != nil {
		return fmt.Errorf("failed to delete penalty: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete penalty: %w", err)
	}
	if affected == 0 {
		return ErrPenaltyNotFound
	}

	return nil
}

func (r *postgresRepository) query(ctx context.Context, query string, args ...any) ([]*models.PenaltyRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query penalties: %w", err)
	}
	defer rows.Close()

	penalties := make([]*models.PenaltyRecord, 0)
	for rows.Next() {
		var (
			record      models.PenaltyRecord
			penaltyType string
		)
		if err := rows.Scan(&record.ID, &penaltyType, &record.ObligationID, &record.ChallengeID,
			&record.FromUserID, &record.ToUserID, &record.Amount, &record.Reason,
			&record.PeriodKey, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan penalty: %w", err)
		}
		record.Type = models.PenaltyType(penaltyType)
		penalties = append(penalties, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read penalties: %w", err)
	}

	return penalties, nil
}
