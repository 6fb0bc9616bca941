package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/avelora/gw-agent-economy/internal/logger"
	"github.com/avelora/gw-agent-economy/internal/models"
)

// IntentCacheRepository keeps terminal intents in Redis keyed by their
// idempotency key. It is a fast path in front of the unique key column:
// a miss falls through to the database, so cache failures are harmless.
type IntentCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewIntentCacheRepository(client *redis.Client, expiration time.Duration) *IntentCacheRepository {
	return &IntentCacheRepository{client: client, exp: expiration}
}

// GetRecharge returns the cached terminal recharge intent or nil on a miss.
func (r *IntentCacheRepository) GetRecharge(ctx context.Context, key uuid.UUID) (*models.RechargeIntentDB, error) {
	var intent models.RechargeIntentDB
	ok, err := r.get(ctx, fmt.Sprintf("intent:recharge:%s", key), &intent)
	if err != nil || !ok {
		return nil, err
	}
	return &intent, nil
}

// SetRecharge caches a terminal recharge intent.
func (r *IntentCacheRepository) SetRecharge(ctx context.Context, key uuid.UUID, intent *models.RechargeIntentDB) error {
	return r.set(ctx, fmt.Sprintf("intent:recharge:%s", key), intent)
}

// GetWithdrawal returns the cached terminal withdrawal intent or nil on a miss.
func (r *IntentCacheRepository) GetWithdrawal(ctx context.Context, key uuid.UUID) (*models.WithdrawalIntentDB, error) {
	var intent models.WithdrawalIntentDB
	ok, err := r.get(ctx, fmt.Sprintf("intent:withdrawal:%s", key), &intent)
	if err != nil || !ok {
		return nil, err
	}
	return &intent, nil
}

// SetWithdrawal caches a terminal withdrawal intent.
func (r *IntentCacheRepository) SetWithdrawal(ctx context.Context, key uuid.UUID, intent *models.WithdrawalIntentDB) error {
	return r.set(ctx, fmt.Sprintf("intent:withdrawal:%s", key), intent)
}

func (r *IntentCacheRepository) get(ctx context.Context, key string, out any) (bool, error) {
	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow(
		"key", key,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		return false, err
	}
	return true, nil
}

func (r *IntentCacheRepository) set(ctx context.Context, key string, in any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}
