package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/avelora/gw-agent-economy/internal/logger"
	"github.com/avelora/gw-agent-economy/internal/models"
)

// WalletWriterRepository handles wallet creation, locking and balance mutations.
// Every mutation must run inside a context transaction while the row lock
// acquired by LockWallet / LockByOwner is held.
type WalletWriterRepository struct {
	db *sqlx.DB
}

func NewWalletWriterRepository(db *sqlx.DB) *WalletWriterRepository {
	return &WalletWriterRepository{db: db}
}

// Ensure performs an idempotent get-or-create for (ownerType, ownerID, asset).
// The insert races are resolved by the unique constraint; the follow-up
// select always returns the surviving row.
func (r *WalletWriterRepository) Ensure(ctx context.Context, ownerType string, ownerID uuid.UUID, asset string) (*models.WalletDB, error) {
	insert := `
		INSERT INTO wallets (wallet_id, owner_type, owner_id, asset, available_minor, reserved_minor, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 0, 0, NOW(), NOW())
		ON CONFLICT (owner_type, owner_id, asset) DO NOTHING
	`
	ex := executor(ctx, r.db)

	_, err := ex.ExecContext(ctx, insert, uuid.New(), ownerType, ownerID, asset)
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(insert), " "),
		"args", []any{ownerType, ownerID, asset},
		"error", err,
	)
	if err != nil {
		return nil, err
	}

	const query = `
		SELECT wallet_id, owner_type, owner_id, asset, available_minor, reserved_minor, created_at, updated_at
		FROM wallets
		WHERE owner_type = $1 AND owner_id = $2 AND asset = $3
	`
	var wallet models.WalletDB
	err = sqlx.GetContext(ctx, ex, &wallet, query, ownerType, ownerID, asset)
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerType, ownerID, asset},
		"result", wallet.WalletID,
		"error", err,
	)
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// Lock acquires an exclusive row lock on the wallet for the duration of the
// enclosing transaction and returns the current balances.
func (r *WalletWriterRepository) Lock(ctx context.Context, walletID uuid.UUID) (*models.WalletDB, error) {
	const query = `
		SELECT wallet_id, owner_type, owner_id, asset, available_minor, reserved_minor, created_at, updated_at
		FROM wallets
		WHERE wallet_id = $1
		FOR UPDATE
	`
	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &wallet, query, walletID)
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID},
		"error", err,
	)
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// LockByOwner locks the unique wallet of (ownerType, ownerID, asset).
func (r *WalletWriterRepository) LockByOwner(ctx context.Context, ownerType string, ownerID uuid.UUID, asset string) (*models.WalletDB, error) {
	const query = `
		SELECT wallet_id, owner_type, owner_id, asset, available_minor, reserved_minor, created_at, updated_at
		FROM wallets
		WHERE owner_type = $1 AND owner_id = $2 AND asset = $3
		FOR UPDATE
	`
	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &wallet, query, ownerType, ownerID, asset)
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerType, ownerID, asset},
		"error", err,
	)
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// Credit increases the available balance.
func (r *WalletWriterRepository) Credit(ctx context.Context, walletID uuid.UUID, amountMinor int64) error {
	query := `
		UPDATE wallets
		SET available_minor = available_minor + $2, updated_at = NOW()
		WHERE wallet_id = $1
		RETURNING available_minor
	`
	return r.mutate(ctx, query, walletID, amountMinor)
}

// Debit decreases the available balance; fails with sql.ErrNoRows when the
// balance is insufficient (no row matches the guard, nothing is changed).
func (r *WalletWriterRepository) Debit(ctx context.Context, walletID uuid.UUID, amountMinor int64) error {
	query := `
		UPDATE wallets
		SET available_minor = available_minor - $2, updated_at = NOW()
		WHERE wallet_id = $1 AND available_minor >= $2
		RETURNING available_minor
	`
	return r.mutate(ctx, query, walletID, amountMinor)
}

// Reserve moves amountMinor from available to reserved.
func (r *WalletWriterRepository) Reserve(ctx context.Context, walletID uuid.UUID, amountMinor int64) error {
	query := `
		UPDATE wallets
		SET available_minor = available_minor - $2,
		    reserved_minor = reserved_minor + $2,
		    updated_at = NOW()
		WHERE wallet_id = $1 AND available_minor >= $2
		RETURNING available_minor
	`
	return r.mutate(ctx, query, walletID, amountMinor)
}

// ReleaseToAvailable returns a reservation to the available balance
// (compensation and cancellation path).
func (r *WalletWriterRepository) ReleaseToAvailable(ctx context.Context, walletID uuid.UUID, amountMinor int64) error {
	query := `
		UPDATE wallets
		SET available_minor = available_minor + $2,
		    reserved_minor = reserved_minor - $2,
		    updated_at = NOW()
		WHERE wallet_id = $1 AND reserved_minor >= $2
		RETURNING reserved_minor
	`
	return r.mutate(ctx, query, walletID, amountMinor)
}

// ReleaseReservation drops a reservation without returning it to available
// (the reserved amount has been paid out).
func (r *WalletWriterRepository) ReleaseReservation(ctx context.Context, walletID uuid.UUID, amountMinor int64) error {
	query := `
		UPDATE wallets
		SET reserved_minor = reserved_minor - $2, updated_at = NOW()
		WHERE wallet_id = $1 AND reserved_minor >= $2
		RETURNING reserved_minor
	`
	return r.mutate(ctx, query, walletID, amountMinor)
}

func (r *WalletWriterRepository) mutate(ctx context.Context, query string, walletID uuid.UUID, amountMinor int64) error {
	var balance int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &balance, query, walletID, amountMinor)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID, amountMinor},
		"result", balance,
		"error", err,
	)

	return err
}

// WalletReaderRepository handles wallet read operations.
type WalletReaderRepository struct {
	db *sqlx.DB
}

func NewWalletReaderRepository(db *sqlx.DB) *WalletReaderRepository {
	return &WalletReaderRepository{db: db}
}

// GetByOwner returns all wallets of an owner ordered by asset.
func (r *WalletReaderRepository) GetByOwner(ctx context.Context, ownerType string, ownerID uuid.UUID) ([]models.WalletDB, error) {
	const query = `
		SELECT wallet_id, owner_type, owner_id, asset, available_minor, reserved_minor, created_at, updated_at
		FROM wallets
		WHERE owner_type = $1 AND owner_id = $2
		ORDER BY asset
	`
	var wallets []models.WalletDB
	err := r.db.SelectContext(ctx, &wallets, query, ownerType, ownerID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerType, ownerID},
		"result", len(wallets),
		"error", err,
	)

	return wallets, err
}

// GetByID returns a single wallet.
func (r *WalletReaderRepository) GetByID(ctx context.Context, walletID uuid.UUID) (*models.WalletDB, error) {
	const query = `
		SELECT wallet_id, owner_type, owner_id, asset, available_minor, reserved_minor, created_at, updated_at
		FROM wallets
		WHERE wallet_id = $1
	`
	var wallet models.WalletDB
	err := r.db.GetContext(ctx, &wallet, query, walletID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &wallet, nil
}
