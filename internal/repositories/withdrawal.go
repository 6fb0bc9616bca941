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

const withdrawalColumns = `
	intent_id, agent_id, wallet_id, remote_user_id, diamonds_amount, payout_minor,
	currency, status, idempotency_key, remote_txn_ref, error_payload,
	created_at, updated_at, processed_at
`

// WithdrawalIntentWriteRepository creates and transitions withdrawal intents.
type WithdrawalIntentWriteRepository struct {
	db *sqlx.DB
}

func NewWithdrawalIntentWriteRepository(db *sqlx.DB) *WithdrawalIntentWriteRepository {
	return &WithdrawalIntentWriteRepository{db: db}
}

// Create inserts a new intent in status processing.
func (r *WithdrawalIntentWriteRepository) Create(ctx context.Context, intent *models.WithdrawalIntentDB) error {
	query := `
		INSERT INTO withdrawal_intents
			(intent_id, agent_id, wallet_id, remote_user_id, diamonds_amount, payout_minor,
			 currency, status, idempotency_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
	`

	args := []any{
		intent.IntentID, intent.AgentID, intent.WalletID, intent.RemoteUserID,
		intent.DiamondsAmount, intent.PayoutMinor, intent.Currency,
		models.WithdrawalProcessing, intent.IdempotencyKey,
	}
	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// MarkSuccessful finalizes a processing intent and stores the remote
// transaction reference.
func (r *WithdrawalIntentWriteRepository) MarkSuccessful(ctx context.Context, intentID uuid.UUID, remoteTxnRef string) error {
	query := `
		UPDATE withdrawal_intents
		SET status = $2, remote_txn_ref = $3, processed_at = NOW(), updated_at = NOW()
		WHERE intent_id = $1 AND status = 'processing'
	`
	return r.transition(ctx, query, intentID, models.WithdrawalSuccessful, remoteTxnRef)
}

// MarkFailed finalizes a processing intent with the remote error payload.
func (r *WithdrawalIntentWriteRepository) MarkFailed(ctx context.Context, intentID uuid.UUID, errorPayload string) error {
	query := `
		UPDATE withdrawal_intents
		SET status = $2, error_payload = $3, processed_at = NOW(), updated_at = NOW()
		WHERE intent_id = $1 AND status = 'processing'
	`
	return r.transition(ctx, query, intentID, models.WithdrawalFailed, errorPayload)
}

// MarkCancelled finalizes a processing intent as cancelled by the caller.
func (r *WithdrawalIntentWriteRepository) MarkCancelled(ctx context.Context, intentID uuid.UUID) error {
	query := `
		UPDATE withdrawal_intents
		SET status = $2, processed_at = NOW(), updated_at = NOW()
		WHERE intent_id = $1 AND status = 'processing'
	`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, intentID, models.WithdrawalCancelled)
	var affected int64
	if res != nil {
		affected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{intentID, models.WithdrawalCancelled},
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

func (r *WithdrawalIntentWriteRepository) transition(ctx context.Context, query string, intentID uuid.UUID, status, payload string) error {
	res, err := executor(ctx, r.db).ExecContext(ctx, query, intentID, status, payload)
	var affected int64
	if res != nil {
		affected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{intentID, status, payload},
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

// WithdrawalIntentReadRepository reads withdrawal intents.
type WithdrawalIntentReadRepository struct {
	db *sqlx.DB
}

func NewWithdrawalIntentReadRepository(db *sqlx.DB) *WithdrawalIntentReadRepository {
	return &WithdrawalIntentReadRepository{db: db}
}

// GetByKey returns the intent holding the idempotency key, or nil when absent.
func (r *WithdrawalIntentReadRepository) GetByKey(ctx context.Context, key uuid.UUID) (*models.WithdrawalIntentDB, error) {
	const query = `
		SELECT ` + withdrawalColumns + `
		FROM withdrawal_intents
		WHERE idempotency_key = $1
	`

	var intent models.WithdrawalIntentDB
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
func (r *WithdrawalIntentReadRepository) GetByID(ctx context.Context, intentID uuid.UUID) (*models.WithdrawalIntentDB, error) {
	const query = `
		SELECT ` + withdrawalColumns + `
		FROM withdrawal_intents
		WHERE intent_id = $1
	`

	var intent models.WithdrawalIntentDB
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

// HasSuccessfulSince reports whether the agent already has a successful
// withdrawal inside the cadence window.
func (r *WithdrawalIntentReadRepository) HasSuccessfulSince(ctx context.Context, agentID uuid.UUID, since time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM withdrawal_intents
			WHERE agent_id = $1 AND status = 'successful' AND created_at >= $2
		)
	`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &exists, query, agentID, since)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{agentID, since},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// ListByAgent returns an agent's intents, newest first, optionally filtered
// by status.
func (r *WithdrawalIntentReadRepository) ListByAgent(ctx context.Context, agentID uuid.UUID, status string, limit int) ([]models.WithdrawalIntentDB, error) {
	const query = `
		SELECT ` + withdrawalColumns + `
		FROM withdrawal_intents
		WHERE agent_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
		LIMIT $3
	`

	var intents []models.WithdrawalIntentDB
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
func (r *WithdrawalIntentReadRepository) ListStuckProcessing(ctx context.Context, olderThan time.Duration, limit int) ([]models.WithdrawalIntentDB, error) {
	const query = `
		SELECT ` + withdrawalColumns + `
		FROM withdrawal_intents
		WHERE status = 'processing' AND updated_at < NOW() - $1::interval
		ORDER BY updated_at
		LIMIT $2
	`

	var intents []models.WithdrawalIntentDB
	err := r.db.SelectContext(ctx, &intents, query, olderThan.String(), limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{olderThan, limit},
		"result", len(intents),
		"error", err,
	)

	return intents, err
}
