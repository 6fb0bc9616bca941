package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avelora/gw-agent-economy/internal/conversion"
	"github.com/avelora/gw-agent-economy/internal/facades"
	"github.com/avelora/gw-agent-economy/internal/logger"
	"github.com/avelora/gw-agent-economy/internal/models"
)

// WithdrawalIntentWriter creates and transitions withdrawal intents.
type WithdrawalIntentWriter interface {
	Create(ctx context.Context, intent *models.WithdrawalIntentDB) error
	MarkSuccessful(ctx context.Context, intentID uuid.UUID, remoteTxnRef string) error
	MarkFailed(ctx context.Context, intentID uuid.UUID, errorPayload string) error
	MarkCancelled(ctx context.Context, intentID uuid.UUID) error
}

// WithdrawalIntentReader reads withdrawal intents.
type WithdrawalIntentReader interface {
	GetByKey(ctx context.Context, key uuid.UUID) (*models.WithdrawalIntentDB, error)
	GetByID(ctx context.Context, intentID uuid.UUID) (*models.WithdrawalIntentDB, error)
	HasSuccessfulSince(ctx context.Context, agentID uuid.UUID, since time.Time) (bool, error)
	ListByAgent(ctx context.Context, agentID uuid.UUID, status string, limit int) ([]models.WithdrawalIntentDB, error)
	ListStuckProcessing(ctx context.Context, olderThan time.Duration, limit int) ([]models.WithdrawalIntentDB, error)
}

// WithdrawalPolicy holds the pre-check rules applied before any mutation.
type WithdrawalPolicy struct {
	MinDiamonds   int64
	CadenceWindow time.Duration
}

// WithdrawalParams carries one withdrawal request.
type WithdrawalParams struct {
	ActorID        uuid.UUID
	AgentID        uuid.UUID
	RemoteUserID   string
	DiamondsAmount int64
	IdempotencyKey uuid.UUID
}

// WithdrawalService drives the withdrawal state machine:
// processing -> successful | failed, with processing -> cancelled as an
// explicit caller action. Player diamonds go down, the agent payout is
// funded from the reserved cash balance.
type WithdrawalService struct {
	inTx         TxRunner
	policy       conversion.Policy
	rules        WithdrawalPolicy
	wallets      WalletMutator
	ledger       LedgerAppender
	intentWriter WithdrawalIntentWriter
	intentReader WithdrawalIntentReader
	cache        IntentCache
	bridge       EconomyBridge
	audit        AuditRecorder
}

func NewWithdrawalService(
	inTx TxRunner,
	policy conversion.Policy,
	rules WithdrawalPolicy,
	wallets WalletMutator,
	ledger LedgerAppender,
	intentWriter WithdrawalIntentWriter,
	intentReader WithdrawalIntentReader,
	cache IntentCache,
	bridge EconomyBridge,
	audit AuditRecorder,
) *WithdrawalService {
	return &WithdrawalService{
		inTx:         inTx,
		policy:       policy,
		rules:        rules,
		wallets:      wallets,
		ledger:       ledger,
		intentWriter: intentWriter,
		intentReader: intentReader,
		cache:        cache,
		bridge:       bridge,
		audit:        audit,
	}
}

// Execute performs one withdrawal. A replayed idempotency key returns the
// existing intent without touching any store.
func (s *WithdrawalService) Execute(ctx context.Context, p WithdrawalParams) (*models.WithdrawalIntentDB, error) {
	if existing, err := s.findExisting(ctx, p.IdempotencyKey); err != nil {
		return nil, err
	} else if existing != nil {
		logger.Log.Infow("withdrawal replay", "idempotency_key", p.IdempotencyKey, "status", existing.Status)
		return existing, nil
	}

	if p.DiamondsAmount < s.rules.MinDiamonds {
		return nil, fmt.Errorf("%w: minimum withdrawal is %d diamonds", ErrPolicyViolation, s.rules.MinDiamonds)
	}

	recent, err := s.intentReader.HasSuccessfulSince(ctx, p.AgentID, time.Now().Add(-s.rules.CadenceWindow))
	if err != nil {
		return nil, err
	}
	if recent {
		return nil, fmt.Errorf("%w: only one successful withdrawal per %s", ErrPolicyViolation, s.rules.CadenceWindow)
	}

	payout := s.policy.PayoutFor(p.DiamondsAmount)
	if payout <= 0 {
		return nil, fmt.Errorf("%w: payout computes to zero", ErrValidation)
	}

	intent := &models.WithdrawalIntentDB{
		IntentID:       uuid.New(),
		AgentID:        p.AgentID,
		RemoteUserID:   p.RemoteUserID,
		DiamondsAmount: p.DiamondsAmount,
		PayoutMinor:    payout,
		Currency:       models.AssetCash,
		Status:         models.WithdrawalProcessing,
		IdempotencyKey: p.IdempotencyKey,
	}

	err = s.inTx(ctx, func(ctx context.Context) error {
		wallet, err := s.wallets.LockByOwner(ctx, models.OwnerAgent, p.AgentID, models.AssetCash)
		if err != nil {
			return err
		}
		intent.WalletID = wallet.WalletID

		if wallet.AvailableMinor < payout {
			return ErrInsufficientFunds
		}
		if err := s.wallets.Reserve(ctx, wallet.WalletID, payout); err != nil {
			return err
		}
		if err := s.intentWriter.Create(ctx, intent); err != nil {
			return err
		}
		_, err = s.ledger.Append(ctx, wallet.WalletID, models.DirDebit, payout,
			models.EventWithdrawal, intent.IntentID, map[string]any{
				"remote_user_id": p.RemoteUserID,
				"diamonds":       p.DiamondsAmount,
				"payout_minor":   payout,
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

	result, remoteErr := s.bridge.DebitDiamonds(ctx, p.RemoteUserID, p.DiamondsAmount, p.IdempotencyKey, map[string]any{
		"agent_id":     p.AgentID.String(),
		"intent_id":    intent.IntentID.String(),
		"payout_minor": payout,
	})

	if remoteErr == nil && result.Status == facades.TxnSuccessful {
		return s.finalizeSuccessful(ctx, p, intent, result.TransactionRef)
	}

	reason := "remote debit failed"
	if remoteErr != nil {
		reason = remoteErr.Error()
	}
	intent, err = s.fail(ctx, p, intent, reason)
	if err != nil {
		return nil, err
	}
	if remoteErr == nil {
		remoteErr = ErrRemoteFailed
	}
	return intent, remoteErr
}

// Cancel aborts a processing withdrawal and returns the reservation to the
// available balance. Cancellation is refused while a remote debit is
// confirmed or still in flight: there is no remote refund path.
func (s *WithdrawalService) Cancel(ctx context.Context, actorID, agentID, intentID uuid.UUID) (*models.WithdrawalIntentDB, error) {
	intent, err := s.intentReader.GetByID(ctx, intentID)
	if err != nil {
		return nil, err
	}
	if intent.AgentID != agentID {
		return nil, fmt.Errorf("%w: intent belongs to another agent", ErrValidation)
	}
	if intent.Status != models.WithdrawalProcessing {
		return nil, fmt.Errorf("%w: status is %s", ErrNotCancellable, intent.Status)
	}

	// Only an absent or terminally failed remote record is safe: a pending
	// or applying debit may land after the reservation is released, leaving
	// no way to repair either side.
	remote, err := s.bridge.GetTransaction(ctx, intent.IdempotencyKey)
	if err != nil {
		return nil, err
	}
	if remote != nil && remote.Status != facades.TxnFailed {
		return nil, fmt.Errorf("%w: remote debit is %s", ErrNotCancellable, remote.Status)
	}

	err = s.inTx(ctx, func(ctx context.Context) error {
		if _, err := s.wallets.Lock(ctx, intent.WalletID); err != nil {
			return err
		}
		// Guarded transition: a concurrent finalize wins and this returns
		// sql.ErrNoRows, refusing the cancellation.
		if err := s.intentWriter.MarkCancelled(ctx, intent.IntentID); err != nil {
			return fmt.Errorf("%w: %v", ErrNotCancellable, err)
		}
		if err := s.wallets.ReleaseToAvailable(ctx, intent.WalletID, intent.PayoutMinor); err != nil {
			return err
		}
		_, err := s.ledger.Append(ctx, intent.WalletID, models.DirCredit, intent.PayoutMinor,
			models.EventWithdrawal, intent.IntentID, map[string]any{
				"cancelled": true,
			})
		return err
	})
	if err != nil {
		return nil, err
	}

	intent.Status = models.WithdrawalCancelled
	s.cacheTerminal(ctx, intent.IdempotencyKey, intent)
	s.audit.Record(ctx, "withdrawal.cancelled", "withdrawal_intent", intent.IntentID.String(), map[string]any{
		"actor_id":     actorID.String(),
		"diamonds":     intent.DiamondsAmount,
		"payout_minor": intent.PayoutMinor,
	})

	logger.Log.Infow("withdrawal cancelled", "intent_id", intent.IntentID, "agent_id", agentID)
	return intent, nil
}

func (s *WithdrawalService) findExisting(ctx context.Context, key uuid.UUID) (*models.WithdrawalIntentDB, error) {
	if cached, err := s.cache.GetWithdrawal(ctx, key); err != nil {
		logger.Log.Warnw("intent cache lookup failed", "idempotency_key", key, "error", err)
	} else if cached != nil {
		return cached, nil
	}
	return s.intentReader.GetByKey(ctx, key)
}

func (s *WithdrawalService) finalizeSuccessful(ctx context.Context, p WithdrawalParams, intent *models.WithdrawalIntentDB, remoteRef string) (*models.WithdrawalIntentDB, error) {
	err := s.inTx(ctx, func(ctx context.Context) error {
		if _, err := s.wallets.Lock(ctx, intent.WalletID); err != nil {
			return err
		}
		if err := s.wallets.ReleaseReservation(ctx, intent.WalletID, intent.PayoutMinor); err != nil {
			return err
		}
		return s.intentWriter.MarkSuccessful(ctx, intent.IntentID, remoteRef)
	})
	if err != nil {
		// Remote debit landed but the local finalize did not; the intent
		// stays processing and the reconciliation sweep closes it.
		logger.Log.Errorw("failed to finalize withdrawal intent",
			"intent_id", intent.IntentID, "error", err)
		return nil, err
	}

	intent.Status = models.WithdrawalSuccessful
	intent.RemoteTxnRef = &remoteRef
	s.cacheTerminal(ctx, p.IdempotencyKey, intent)
	s.audit.Record(ctx, "withdrawal.successful", "withdrawal_intent", intent.IntentID.String(), map[string]any{
		"actor_id":     p.ActorID.String(),
		"diamonds":     p.DiamondsAmount,
		"payout_minor": intent.PayoutMinor,
	})

	logger.Log.Infow("withdrawal successful",
		"intent_id", intent.IntentID, "agent_id", p.AgentID, "payout_minor", intent.PayoutMinor)
	return intent, nil
}

func (s *WithdrawalService) fail(ctx context.Context, p WithdrawalParams, intent *models.WithdrawalIntentDB, reason string) (*models.WithdrawalIntentDB, error) {
	err := s.inTx(ctx, func(ctx context.Context) error {
		if _, err := s.wallets.Lock(ctx, intent.WalletID); err != nil {
			return err
		}
		if err := s.wallets.ReleaseToAvailable(ctx, intent.WalletID, intent.PayoutMinor); err != nil {
			return err
		}
		if _, err := s.ledger.Append(ctx, intent.WalletID, models.DirCredit, intent.PayoutMinor,
			models.EventWithdrawal, intent.IntentID, map[string]any{
				"compensation": true,
				"reason":       reason,
			}); err != nil {
			return err
		}
		return s.intentWriter.MarkFailed(ctx, intent.IntentID, reason)
	})
	if err != nil {
		logger.Log.Errorw("withdrawal compensation failed",
			"intent_id", intent.IntentID, "error", err)
		return nil, err
	}

	intent.Status = models.WithdrawalFailed
	intent.ErrorPayload = &reason
	s.cacheTerminal(ctx, p.IdempotencyKey, intent)
	s.audit.Record(ctx, "withdrawal.failed", "withdrawal_intent", intent.IntentID.String(), map[string]any{
		"actor_id":     p.ActorID.String(),
		"diamonds":     p.DiamondsAmount,
		"payout_minor": intent.PayoutMinor,
		"reason":       reason,
	})

	logger.Log.Warnw("withdrawal failed and compensated",
		"intent_id", intent.IntentID, "agent_id", p.AgentID, "reason", reason)
	return intent, nil
}

func (s *WithdrawalService) cacheTerminal(ctx context.Context, key uuid.UUID, intent *models.WithdrawalIntentDB) {
	if err := s.cache.SetWithdrawal(ctx, key, intent); err != nil {
		logger.Log.Warnw("failed to cache terminal intent", "idempotency_key", key, "error", err)
	}
}

// List returns an agent's withdrawal intents, newest first.
func (s *WithdrawalService) List(ctx context.Context, agentID uuid.UUID, status string, limit int) ([]models.WithdrawalIntentDB, error) {
	return s.intentReader.ListByAgent(ctx, agentID, status, limit)
}
