package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/avelora/gw-agent-economy/internal/logger"
	"github.com/avelora/gw-agent-economy/internal/models"
)

// WalletViewer reads wallet balances.
type WalletViewer interface {
	GetByOwner(ctx context.Context, ownerType string, ownerID uuid.UUID) ([]models.WalletDB, error)
	GetByID(ctx context.Context, walletID uuid.UUID) (*models.WalletDB, error)
}

// LedgerViewer reads journal entries.
type LedgerViewer interface {
	ListByWallet(ctx context.Context, walletID uuid.UUID, limit int) ([]models.LedgerEntryDB, error)
}

// WalletService exposes wallet views, idempotent wallet creation and the
// cash top-up funding lane.
type WalletService struct {
	inTx    TxRunner
	wallets WalletMutator
	reader  WalletViewer
	ledger  LedgerAppender
	entries LedgerViewer
	audit   AuditRecorder
}

func NewWalletService(
	inTx TxRunner,
	wallets WalletMutator,
	reader WalletViewer,
	ledger LedgerAppender,
	entries LedgerViewer,
	audit AuditRecorder,
) *WalletService {
	return &WalletService{
		inTx:    inTx,
		wallets: wallets,
		reader:  reader,
		ledger:  ledger,
		entries: entries,
		audit:   audit,
	}
}

// Ensure idempotently creates the wallet for (ownerType, ownerID, asset).
func (s *WalletService) Ensure(ctx context.Context, ownerType string, ownerID uuid.UUID, asset string) (*models.WalletDB, error) {
	var wallet *models.WalletDB
	err := s.inTx(ctx, func(ctx context.Context) error {
		var err error
		wallet, err = s.wallets.Ensure(ctx, ownerType, ownerID, asset)
		return err
	})
	return wallet, err
}

// Summary returns all wallets of an owner.
func (s *WalletService) Summary(ctx context.Context, ownerType string, ownerID uuid.UUID) ([]models.WalletDB, error) {
	return s.reader.GetByOwner(ctx, ownerType, ownerID)
}

// Ledger returns the most recent entries of one of the agent's wallets.
// A wallet owned by someone else is indistinguishable from a missing one.
func (s *WalletService) Ledger(ctx context.Context, agentID, walletID uuid.UUID, limit int) ([]models.LedgerEntryDB, error) {
	wallet, err := s.reader.GetByID(ctx, walletID)
	if err != nil {
		return nil, err
	}
	if wallet.OwnerType != models.OwnerAgent || wallet.OwnerID != agentID {
		return nil, sql.ErrNoRows
	}
	return s.entries.ListByWallet(ctx, walletID, limit)
}

// Topup credits an agent's cash wallet. This is the funding boundary of the
// card-capture flow: whatever captured the money, it arrives here as a plain
// wallet credit with a topup journal entry.
func (s *WalletService) Topup(ctx context.Context, actorID, agentID uuid.UUID, amountMinor int64, reference string) (*models.WalletDB, error) {
	if amountMinor <= 0 {
		return nil, fmt.Errorf("%w: top-up amount must be positive", ErrValidation)
	}

	var wallet *models.WalletDB
	eventID := uuid.New()

	err := s.inTx(ctx, func(ctx context.Context) error {
		w, err := s.wallets.Ensure(ctx, models.OwnerAgent, agentID, models.AssetCash)
		if err != nil {
			return err
		}
		if w, err = s.wallets.Lock(ctx, w.WalletID); err != nil {
			return err
		}
		if err := s.wallets.Credit(ctx, w.WalletID, amountMinor); err != nil {
			return err
		}
		if _, err := s.ledger.Append(ctx, w.WalletID, models.DirCredit, amountMinor,
			models.EventTopup, eventID, map[string]any{
				"reference": reference,
			}); err != nil {
			return err
		}
		w.AvailableMinor += amountMinor
		wallet = w
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, "wallet.topup", "wallet", wallet.WalletID.String(), map[string]any{
		"actor_id":     actorID.String(),
		"agent_id":     agentID.String(),
		"amount_minor": amountMinor,
		"reference":    reference,
	})

	logger.Log.Infow("wallet topped up",
		"wallet_id", wallet.WalletID, "agent_id", agentID, "amount_minor", amountMinor)
	return wallet, nil
}
