package services

import (
	"context"
	"time"

	"github.com/avelora/gw-agent-economy/internal/facades"
	"github.com/avelora/gw-agent-economy/internal/logger"
	"github.com/avelora/gw-agent-economy/internal/models"
)

// ReconcileService closes intents left in processing by a crash or timeout
// between the remote apply and the local finalize. It re-queries the remote
// transaction by idempotency key and finalizes the local side to match; it
// never re-invokes the remote apply.
type ReconcileService struct {
	inTx             TxRunner
	wallets          WalletMutator
	ledger           LedgerAppender
	rechargeWriter   RechargeIntentWriter
	rechargeReader   RechargeIntentReader
	withdrawalWriter WithdrawalIntentWriter
	withdrawalReader WithdrawalIntentReader
	bridge           EconomyBridge
	audit            AuditRecorder
	stuckAfter       time.Duration
	batchSize        int
}

func NewReconcileService(
	inTx TxRunner,
	wallets WalletMutator,
	ledger LedgerAppender,
	rechargeWriter RechargeIntentWriter,
	rechargeReader RechargeIntentReader,
	withdrawalWriter WithdrawalIntentWriter,
	withdrawalReader WithdrawalIntentReader,
	bridge EconomyBridge,
	audit AuditRecorder,
	stuckAfter time.Duration,
	batchSize int,
) *ReconcileService {
	return &ReconcileService{
		inTx:             inTx,
		wallets:          wallets,
		ledger:           ledger,
		rechargeWriter:   rechargeWriter,
		rechargeReader:   rechargeReader,
		withdrawalWriter: withdrawalWriter,
		withdrawalReader: withdrawalReader,
		bridge:           bridge,
		audit:            audit,
		stuckAfter:       stuckAfter,
		batchSize:        batchSize,
	}
}

// Run performs one reconciliation sweep over both intent tables.
func (s *ReconcileService) Run(ctx context.Context) {
	s.sweepRecharges(ctx)
	s.sweepWithdrawals(ctx)
}

// Start runs sweeps on a ticker until the context is cancelled.
func (s *ReconcileService) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Log.Infow("reconciliation sweep started", "interval", interval, "stuck_after", s.stuckAfter)
	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("reconciliation sweep stopped")
			return
		case <-ticker.C:
			s.Run(ctx)
		}
	}
}

func (s *ReconcileService) sweepRecharges(ctx context.Context) {
	intents, err := s.rechargeReader.ListStuckProcessing(ctx, s.stuckAfter, s.batchSize)
	if err != nil {
		logger.Log.Errorw("failed to list stuck recharge intents", "error", err)
		return
	}

	for _, intent := range intents {
		remote, err := s.bridge.GetTransaction(ctx, intent.IdempotencyKey)
		if err != nil {
			logger.Log.Errorw("failed to query remote transaction",
				"intent_id", intent.IntentID, "error", err)
			continue
		}

		switch {
		case remote != nil && remote.Status == facades.TxnSuccessful:
			// Remote credit landed; only the local finalize is missing.
			err = s.inTx(ctx, func(ctx context.Context) error {
				return s.rechargeWriter.MarkCompleted(ctx, intent.IntentID)
			})
			s.report(ctx, err, "reconcile.recharge.completed", "recharge_intent", intent.IntentID.String())

		case remote == nil || remote.Status == facades.TxnFailed:
			// Remote apply never landed; return the reserved cost.
			reason := "reconciled: remote apply absent"
			if remote != nil {
				reason = "reconciled: remote apply failed (" + remote.Reason + ")"
			}
			err = s.inTx(ctx, func(ctx context.Context) error {
				wallet, err := s.wallets.LockByOwner(ctx, models.OwnerAgent, intent.AgentID, models.AssetCash)
				if err != nil {
					return err
				}
				if err := s.wallets.Credit(ctx, wallet.WalletID, intent.CostMinor); err != nil {
					return err
				}
				if _, err := s.ledger.Append(ctx, wallet.WalletID, models.DirCredit, intent.CostMinor,
					models.EventRecharge, intent.IntentID, map[string]any{
						"compensation": true,
						"reason":       reason,
					}); err != nil {
					return err
				}
				return s.rechargeWriter.MarkFailed(ctx, intent.IntentID, reason)
			})
			s.report(ctx, err, "reconcile.recharge.failed", "recharge_intent", intent.IntentID.String())

		default:
			// pending/applying: the remote outcome is genuinely unknown.
			// Assuming failure here would compensate a credit that may have
			// landed, so leave the intent for a later sweep or an operator.
			logger.Log.Warnw("remote transaction not terminal, skipping",
				"intent_id", intent.IntentID, "remote_status", remote.Status)
		}
	}
}

func (s *ReconcileService) sweepWithdrawals(ctx context.Context) {
	intents, err := s.withdrawalReader.ListStuckProcessing(ctx, s.stuckAfter, s.batchSize)
	if err != nil {
		logger.Log.Errorw("failed to list stuck withdrawal intents", "error", err)
		return
	}

	for _, intent := range intents {
		remote, err := s.bridge.GetTransaction(ctx, intent.IdempotencyKey)
		if err != nil {
			logger.Log.Errorw("failed to query remote transaction",
				"intent_id", intent.IntentID, "error", err)
			continue
		}

		switch {
		case remote != nil && remote.Status == facades.TxnSuccessful:
			err = s.inTx(ctx, func(ctx context.Context) error {
				if _, err := s.wallets.Lock(ctx, intent.WalletID); err != nil {
					return err
				}
				if err := s.wallets.ReleaseReservation(ctx, intent.WalletID, intent.PayoutMinor); err != nil {
					return err
				}
				return s.withdrawalWriter.MarkSuccessful(ctx, intent.IntentID, remote.TransactionRef)
			})
			s.report(ctx, err, "reconcile.withdrawal.successful", "withdrawal_intent", intent.IntentID.String())

		case remote == nil || remote.Status == facades.TxnFailed:
			reason := "reconciled: remote apply absent"
			if remote != nil {
				reason = "reconciled: remote apply failed (" + remote.Reason + ")"
			}
			err = s.inTx(ctx, func(ctx context.Context) error {
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
				return s.withdrawalWriter.MarkFailed(ctx, intent.IntentID, reason)
			})
			s.report(ctx, err, "reconcile.withdrawal.failed", "withdrawal_intent", intent.IntentID.String())

		default:
			logger.Log.Warnw("remote transaction not terminal, skipping",
				"intent_id", intent.IntentID, "remote_status", remote.Status)
		}
	}
}

func (s *ReconcileService) report(ctx context.Context, err error, action, entityType, entityID string) {
	if err != nil {
		logger.Log.Errorw("reconciliation step failed",
			"action", action, "entity_id", entityID, "error", err)
		return
	}
	s.audit.Record(ctx, action, entityType, entityID, nil)
	logger.Log.Infow("intent reconciled", "action", action, "entity_id", entityID)
}
