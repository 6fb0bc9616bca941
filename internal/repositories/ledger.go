package repositories

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/avelora/gw-agent-economy/internal/logger"
	"github.com/avelora/gw-agent-economy/internal/models"
)

// LedgerWriterRepository appends journal entries. Entries are written in the
// same transaction as the wallet mutation they describe and are never
// updated or deleted afterwards.
type LedgerWriterRepository struct {
	db *sqlx.DB
}

func NewLedgerWriterRepository(db *sqlx.DB) *LedgerWriterRepository {
	return &LedgerWriterRepository{db: db}
}

// Append writes a single immutable entry and returns its id.
func (r *LedgerWriterRepository) Append(ctx context.Context, walletID uuid.UUID, direction string, amountMinor int64, eventType string, eventID uuid.UUID, meta map[string]any) (uuid.UUID, error) {
	query := `
		INSERT INTO ledger_entries (entry_id, wallet_id, direction, amount_minor, event_type, event_id, meta, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	`

	entryID := uuid.New()
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return uuid.Nil, err
	}

	args := []any{entryID, walletID, direction, amountMinor, eventType, eventID, metaJSON}
	_, err = executor(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return uuid.Nil, err
	}
	return entryID, nil
}

// LedgerReaderRepository reads journal entries.
type LedgerReaderRepository struct {
	db *sqlx.DB
}

func NewLedgerReaderRepository(db *sqlx.DB) *LedgerReaderRepository {
	return &LedgerReaderRepository{db: db}
}

// ListByWallet returns up to limit entries for a wallet, most recent first.
func (r *LedgerReaderRepository) ListByWallet(ctx context.Context, walletID uuid.UUID, limit int) ([]models.LedgerEntryDB, error) {
	const query = `
		SELECT entry_id, wallet_id, direction, amount_minor, event_type, event_id, meta, created_at
		FROM ledger_entries
		WHERE wallet_id = $1
		ORDER BY created_at DESC, entry_id DESC
		LIMIT $2
	`

	var entries []models.LedgerEntryDB
	err := r.db.SelectContext(ctx, &entries, query, walletID, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID, limit},
		"result", len(entries),
		"error", err,
	)

	return entries, err
}
