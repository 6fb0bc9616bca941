package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/avelora/gw-agent-economy/internal/conversion"
	"github.com/avelora/gw-agent-economy/internal/facades"
	"github.com/avelora/gw-agent-economy/internal/logger"
	"github.com/avelora/gw-agent-economy/internal/models"
	"github.com/avelora/gw-agent-economy/internal/repositories"
)

var (
	// ErrValidation is returned for malformed or invalid input. Nothing is mutated.
	ErrValidation = errors.New("validation failed")
	// ErrConversionMismatch is returned when the client-submitted monetary
	// value falls outside tolerance of the server computation.
	ErrConversionMismatch = errors.New("conversion mismatch")
	// ErrInsufficientFunds is returned when the local wallet lacks balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrPolicyViolation is returned when the minimum-amount or cadence rule fails.
	ErrPolicyViolation = errors.New("policy violation")
	// ErrNotCancellable is returned when a cancellation is refused.
	ErrNotCancellable = errors.New("withdrawal is not cancellable")
	// ErrRemoteFailed is returned when the remote apply terminally failed
	// and local compensation has already run.
	ErrRemoteFailed = errors.New("remote economy operation failed")
)

// TxRunner runs fn inside one local database transaction.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

// NewTxRunner builds the production TxRunner over a sqlx pool.
func NewTxRunner(db *sqlx.DB) TxRunner {
	return func(ctx context.Context, fn func(ctx context.Context) error) error {
		return repositories.InTx(ctx, db, fn)
	}
}

// WalletMutator defines the wallet store operations used by the orchestrators.
// All balance mutations require the row lock taken inside the same transaction.
type WalletMutator interface {
	Ensure(ctx context.Context, ownerType string, ownerID uuid.UUID, asset string) (*models.WalletDB, error)
	Lock(ctx context.Context, walletID uuid.UUID) (*models.WalletDB, error)
	LockByOwner(ctx context.Context, ownerType string, ownerID uuid.UUID, asset string) (*models.WalletDB, error)
	Credit(ctx context.Context, walletID uuid.UUID, amountMinor int64) error
	Debit(ctx context.Context, walletID uuid.UUID, amountMinor int64) error
	Reserve(ctx context.Context, walletID uuid.UUID, amountMinor int64) error
	ReleaseToAvailable(ctx context.Context, walletID uuid.UUID, amountMinor int64) error
	ReleaseReservation(ctx context.Context, walletID uuid.UUID, amountMinor int64) error
}

// LedgerAppender appends immutable journal entries.
type LedgerAppender interface {
	Append(ctx context.Context, walletID uuid.UUID, direction string, amountMinor int64, eventType string, eventID uuid.UUID, meta map[string]any) (uuid.UUID, error)
}

// RechargeIntentWriter creates and transitions recharge intents.
type RechargeIntentWriter interface {
	Create(ctx context.Context, intent *models.RechargeIntentDB) error
	MarkCompleted(ctx context.Context, intentID uuid.UUID) error
	MarkFailed(ctx context.Context, intentID uuid.UUID, reason string) error
}

// RechargeIntentReader reads recharge intents.
type RechargeIntentReader interface {
	GetByKey(ctx context.Context, key uuid.UUID) (*models.RechargeIntentDB, error)
	GetByID(ctx context.Context, intentID uuid.UUID) (*models.RechargeIntentDB, error)
	ListByAgent(ctx context.Context, agentID uuid.UUID, status string, limit int) ([]models.RechargeIntentDB, error)
	ListStuckProcessing(ctx context.Context, olderThan time.Duration, limit int) ([]models.RechargeIntentDB, error)
}

// IntentCache is the Redis fast path in front of the unique idempotency key
// column. Cache errors degrade to database lookups.
type IntentCache interface {
	GetRecharge(ctx context.Context, key uuid.UUID) (*models.RechargeIntentDB, error)
	SetRecharge(ctx context.Context, key uuid.UUID, intent *models.RechargeIntentDB) error
	GetWithdrawal(ctx context.Context, key uuid.UUID) (*models.WithdrawalIntentDB, error)
	SetWithdrawal(ctx context.Context, key uuid.UUID, intent *models.WithdrawalIntentDB) error
}

// EconomyBridge is the idempotent adapter over the remote document-store economy.
type EconomyBridge interface {
	CreditCoins(ctx context.Context, remoteUserID string, coins int64, key uuid.UUID, meta map[string]any) (*facades.RemoteApplyResult, error)
	DebitDiamonds(ctx context.Context, remoteUserID string, diamonds int64, key uuid.UUID, meta map[string]any) (*facades.RemoteApplyResult, error)
	GetTransaction(ctx context.Context, key uuid.UUID) (*facades.RemoteTransaction, error)
	GetUserBasic(ctx context.Context, remoteUserID string) (*facades.RemoteUserBasic, error)
}

// RechargeParams carries one recharge request. ActorID is the authenticated
// caller and is always passed explicitly.
type RechargeParams struct {
	ActorID         uuid.UUID
	AgentID         uuid.UUID
	RemoteUserID    string
	CoinsAmount     int64
	ClientCostMinor *int64
	Method          string
	Reference       *string
	IdempotencyKey  uuid.UUID
}

// RechargeService drives the recharge state machine:
// processing -> completed | failed. Agent cash goes down, player coins go up.
type RechargeService struct {
	inTx         TxRunner
	policy       conversion.Policy
	wallets      WalletMutator
	ledger       LedgerAppender
	intentWriter RechargeIntentWriter
	intentReader RechargeIntentReader
	cache        IntentCache
	bridge       EconomyBridge
	audit        AuditRecorder
}

func NewRechargeService(
	inTx TxRunner,
	policy conversion.Policy,
	wallets WalletMutator,
	ledger LedgerAppender,
	intentWriter RechargeIntentWriter,
	intentReader RechargeIntentReader,
	cache IntentCache,
	bridge EconomyBridge,
	audit AuditRecorder,
) *RechargeService {
	return &RechargeService{
		inTx:         inTx,
		policy:       policy,
		wallets:      wallets,
		ledger:       ledger,
		intentWriter: intentWriter,
		intentReader: intentReader,
		cache:        cache,
		bridge:       bridge,
		audit:        audit,
	}
}

// Execute performs one recharge. A replayed idempotency key returns the
// existing intent without touching any store.
func (s *RechargeService) Execute(ctx context.Context, p RechargeParams) (*models.RechargeIntentDB, error) {
	if existing, err := s.findExisting(ctx, p.IdempotencyKey); err != nil {
		return nil, err
	} else if existing != nil {
		logger.Log.Infow("recharge replay", "idempotency_key", p.IdempotencyKey, "status", existing.Status)
		return existing, nil
	}

	cost, err := s.policy.CostFor(p.CoinsAmount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if p.ClientCostMinor != nil {
		if err := s.policy.WithinTolerance(cost, *p.ClientCostMinor); err != nil {
			logger.Log.Warnw("client cost outside tolerance",
				"server", cost, "client", *p.ClientCostMinor)
			return nil, fmt.Errorf("%w: server=%d client=%d", ErrConversionMismatch, cost, *p.ClientCostMinor)
		}
	}

	intent := &models.RechargeIntentDB{
		IntentID:       uuid.New(),
		AgentID:        p.AgentID,
		RemoteUserID:   p.RemoteUserID,
		CoinsAmount:    p.CoinsAmount,
		CostMinor:      cost,
		Currency:       models.AssetCash,
		Method:         p.Method,
		Reference:      p.Reference,
		Status:         models.RechargeProcessing,
		IdempotencyKey: p.IdempotencyKey,
	}

	var walletID uuid.UUID
	err = s.inTx(ctx, func(ctx context.Context) error {
		wallet, err := s.wallets.LockByOwner(ctx, models.OwnerAgent, p.AgentID, models.AssetCash)
		if err != nil {
			return err
		}
		walletID = wallet.WalletID

		if wallet.AvailableMinor < cost {
			return ErrInsufficientFunds
		}
		if err := s.intentWriter.Create(ctx, intent); err != nil {
			return err
		}
		if err := s.wallets.Debit(ctx, wallet.WalletID, cost); err != nil {
			return err
		}
		_, err = s.ledger.Append(ctx, wallet.WalletID, models.DirDebit, cost,
			models.EventRecharge, intent.IntentID, map[string]any{
				"remote_user_id": p.RemoteUserID,
				"coins":          p.CoinsAmount,
				"cost_minor":     cost,
			})
		return err
	})
	if err != nil {
		// A concurrent duplicate submission loses the unique-key race here;
		// return the surviving intent as a replay.
		if existing, lookupErr := s.intentReader.GetByKey(ctx, p.IdempotencyKey); lookupErr == nil && existing != nil {
			return existing, nil
		}
		return nil, err
	}

	result, remoteErr := s.bridge.CreditCoins(ctx, p.RemoteUserID, p.CoinsAmount, p.IdempotencyKey, map[string]any{
		"agent_id":   p.AgentID.String(),
		"intent_id":  intent.IntentID.String(),
		"cost_minor": cost,
	})

	if remoteErr == nil && result.Status == facades.TxnSuccessful {
		return s.finalizeCompleted(ctx, p, intent, cost)
	}

	reason := "remote credit failed"
	if remoteErr != nil {
		reason = remoteErr.Error()
	}
	intent, err = s.compensate(ctx, p, intent, walletID, cost, reason)
	if err != nil {
		return nil, err
	}
	if remoteErr == nil {
		remoteErr = ErrRemoteFailed
	}
	return intent, remoteErr
}

func (s *RechargeService) findExisting(ctx context.Context, key uuid.UUID) (*models.RechargeIntentDB, error) {
	if cached, err := s.cache.GetRecharge(ctx, key); err != nil {
		logger.Log.Warnw("intent cache lookup failed", "idempotency_key", key, "error", err)
	} else if cached != nil {
		return cached, nil
	}
	return s.intentReader.GetByKey(ctx, key)
}

func (s *RechargeService) finalizeCompleted(ctx context.Context, p RechargeParams, intent *models.RechargeIntentDB, cost int64) (*models.RechargeIntentDB, error) {
	if err := s.inTx(ctx, func(ctx context.Context) error {
		return s.intentWriter.MarkCompleted(ctx, intent.IntentID)
	}); err != nil {
		// Remote credit landed but the local finalize did not; the intent
		// stays processing and the reconciliation sweep closes it.
		logger.Log.Errorw("failed to finalize recharge intent",
			"intent_id", intent.IntentID, "error", err)
		return nil, err
	}

	intent.Status = models.RechargeCompleted
	s.cacheTerminal(ctx, p.IdempotencyKey, intent)
	s.audit.Record(ctx, "recharge.completed", "recharge_intent", intent.IntentID.String(), map[string]any{
		"actor_id":   p.ActorID.String(),
		"coins":      p.CoinsAmount,
		"cost_minor": cost,
	})

	logger.Log.Infow("recharge completed",
		"intent_id", intent.IntentID, "agent_id", p.AgentID, "coins", p.CoinsAmount, "cost_minor", cost)
	return intent, nil
}

func (s *RechargeService) compensate(ctx context.Context, p RechargeParams, intent *models.RechargeIntentDB, walletID uuid.UUID, cost int64, reason string) (*models.RechargeIntentDB, error) {
	err := s.inTx(ctx, func(ctx context.Context) error {
		if _, err := s.wallets.Lock(ctx, walletID); err != nil {
			return err
		}
		if err := s.wallets.Credit(ctx, walletID, cost); err != nil {
			return err
		}
		if _, err := s.ledger.Append(ctx, walletID, models.DirCredit, cost,
			models.EventRecharge, intent.IntentID, map[string]any{
				"compensation": true,
				"reason":       reason,
			}); err != nil {
			return err
		}
		return s.intentWriter.MarkFailed(ctx, intent.IntentID, reason)
	})
	if err != nil {
		logger.Log.Errorw("recharge compensation failed",
			"intent_id", intent.IntentID, "error", err)
		return nil, err
	}

	intent.Status = models.RechargeFailed
	intent.FailureReason = &reason
	s.cacheTerminal(ctx, p.IdempotencyKey, intent)
	s.audit.Record(ctx, "recharge.failed", "recharge_intent", intent.IntentID.String(), map[string]any{
		"actor_id":   p.ActorID.String(),
		"coins":      p.CoinsAmount,
		"cost_minor": cost,
		"reason":     reason,
	})

	logger.Log.Warnw("recharge failed and compensated",
		"intent_id", intent.IntentID, "agent_id", p.AgentID, "reason", reason)
	return intent, nil
}

func (s *RechargeService) cacheTerminal(ctx context.Context, key uuid.UUID, intent *models.RechargeIntentDB) {
	if err := s.cache.SetRecharge(ctx, key, intent); err != nil {
		logger.Log.Warnw("failed to cache terminal intent", "idempotency_key", key, "error", err)
	}
}

// List returns an agent's recharge intents, newest first.
func (s *RechargeService) List(ctx context.Context, agentID uuid.UUID, status string, limit int) ([]models.RechargeIntentDB, error) {
	return s.intentReader.ListByAgent(ctx, agentID, status, limit)
}
