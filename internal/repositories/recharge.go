package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/avelora/gw-agent-economy/internal/logger"
	"github.com/avelora/gw-agent-economy/internal/models"
)

const rechargeColumns = `
	intent_id, agent_id, remote_user_id, coins_amount, cost_minor, currency,
	method, reference, status, idempotency_key, failure_reason, created_at, updated_at
`

// RechargeIntentWriteRepository creates and transitions recharge intents.
type RechargeIntentWriteRepository struct {
	db *sqlx.DB
}

func NewRechargeIntentWriteRepository(db *sqlx.DB) *RechargeIntentWriteRepository {
	return &RechargeIntentWriteRepository{db: db}
}

// Create inserts a new intent in status processing.
func (r *RechargeIntentWriteRepository) Create(ctx context.Context, intent *models.RechargeIntentDB) error {
	query := `
		INSERT INTO recharge_intents (` + rechargeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
	`

	args := []any{
		intent.IntentID, intent.AgentID, intent.RemoteUserID, intent.CoinsAmount,
		intent.CostMinor, intent.Currency, intent.Method, intent.Reference,
		models.RechargeProcessing, intent.IdempotencyKey, nil,
	}
	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// MarkCompleted moves a processing intent to completed.
func (r *RechargeIntentWriteRepository) MarkCompleted(ctx context.Context, intentID uuid.UUID) error {
	return r.transition(ctx, intentID, models.RechargeCompleted, nil)
}

// MarkFailed moves a processing intent to failed with a reason.
func (r *RechargeIntentWriteRepository) MarkFailed(ctx context.Context, intentID uuid.UUID, reason string) error {
	return r.transition(ctx, intentID, models.RechargeFailed, &reason)
}

func (r *RechargeIntentWriteRepository) transition(ctx context.Context, intentID uuid.UUID, status string, reason *string) error {
	query := `
		UPDATE recharge_intents
		SET status = $2, failure_reason = COALESCE($3, failure_reason), updated_at = NOW()
		WHERE intent_id = $1 AND status = 'processing'
	`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, intentID, status, reason)
	var affected int64
	if res != nil {
		affected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{intentID, status, reason},
		"result", affected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// RechargeIntentReadRepository reads recharge intents.
type RechargeIntentReadRepository struct {
	db *sqlx.DB
}

func NewRechargeIntentReadRepository(db *sqlx.DB) *RechargeIntentReadRepository {
	return &RechargeIntentReadRepository{db: db}
}

// GetByKey returns the intent holding the idempotency key, or nil when absent.
func (r *RechargeIntentReadRepository) GetByKey(ctx context.Context, key uuid.UUID) (*models.RechargeIntentDB, error) {
	const query = `
		SELECT ` + rechargeColumns + `
		FROM recharge_intents
		WHERE idempotency_key = $1
	`

	var intent models.RechargeIntentDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &intent, query, key)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{key},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &intent, nil
}

// GetByID returns a single intent.
func (r *RechargeIntentReadRepository) GetByID(ctx context.Context, intentID uuid.UUID) (*models.RechargeIntentDB, error) {
	const query = `
		SELECT ` + rechargeColumns + `
		FROM recharge_intents
		WHERE intent_id = $1
	`

	var intent models.RechargeIntentDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &intent, query, intentID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{intentID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &intent, nil
}

// ListByAgent returns an agent's intents, newest first, optionally filtered
// by status.
func (r *RechargeIntentReadRepository) ListByAgent(ctx context.Context, agentID uuid.UUID, status string, limit int) ([]models.RechargeIntentDB, error) {
	const query = `
		SELECT ` + rechargeColumns + `
		FROM recharge_intents
		WHERE agent_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
		LIMIT $3
	`

	var intents []models.RechargeIntentDB
	err := r.db.SelectContext(ctx, &intents, query, agentID, status, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{agentID, status, limit},
		"result", len(intents),
		"error", err,
	)

	return intents, err
}

// ListStuckProcessing returns intents still processing after olderThan,
// for the reconciliation sweep.
func (r *RechargeIntentReadRepository) ListStuckProcessing(ctx context.Context, olderThan time.Duration, limit int) ([]models.RechargeIntentDB, error) {
	const query = `
		SELECT ` + rechargeColumns + `
		FROM recharge_intents
		WHERE status = 'processing' AND updated_at < NOW() - $1::interval
		ORDER BY updated_at
		LIMIT $2
	`

	var intents []models.RechargeIntentDB
	err := r.db.SelectContext(ctx, &intents, query, olderThan.String(), limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{olderThan, limit},
		"result", len(intents),
		"error", err,
	)

	return intents, err
}
