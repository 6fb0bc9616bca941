package facades

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/avelora/gw-agent-economy/internal/logger"
)

// Remote transaction statuses. A transactionRef in a terminal status is
// never applied to a balance again.
const (
	TxnPending    = "pending"
	TxnApplying   = "applying"
	TxnSuccessful = "successful"
	TxnFailed     = "failed"
)

var (
	// ErrInvalidRemoteUserID is returned for ids that are not 24 hex chars.
	ErrInvalidRemoteUserID = errors.New("invalid remote user id")
	// ErrRemoteUserNotFound is returned when the target user does not exist.
	ErrRemoteUserNotFound = errors.New("remote user not found")
	// ErrInsufficientRemoteBalance is returned when the conditional update
	// matched no document because the balance guard failed.
	ErrInsufficientRemoteBalance = errors.New("insufficient remote balance")
	// ErrRemotePending is returned when an earlier attempt left the
	// transaction non-terminal; the true remote state is unknown and the
	// caller must not assume either outcome.
	ErrRemotePending = errors.New("remote transaction pending from earlier attempt")
)

var objectIDPattern = regexp.MustCompile(`^[a-f0-9]{24}$`)

// RemoteTransaction mirrors one document in the transactions collection.
type RemoteTransaction struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	TransactionRef  string             `bson:"transactionRef"`
	UserID          primitive.ObjectID `bson:"userId"`
	Status          string             `bson:"status"`
	CoinsCredited   int64              `bson:"coinsCredited,omitempty"`
	DiamondsDebited int64              `bson:"diamondsDebited,omitempty"`
	Source          string             `bson:"source"`
	Reason          string             `bson:"reason,omitempty"`
	Meta            map[string]any     `bson:"meta,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"`
}

// RemoteApplyResult is the outcome of one bridge operation.
type RemoteApplyResult struct {
	TransactionRef   string
	Status           string
	AlreadyProcessed bool
}

// RemoteUserBasic is the projection used to validate and display players.
type RemoteUserBasic struct {
	FullName string `bson:"FullName"`
	Username string `bson:"Username"`
}

// MongoEconomyFacade adapts the document-store economy. Every money-moving
// operation is idempotent by transactionRef and applies at most one
// conditional update to the target balance: exactly one document changes
// or none does.
type MongoEconomyFacade struct {
	db      *mongo.Database
	timeout time.Duration
}

func NewMongoEconomyFacade(db *mongo.Database, timeout time.Duration) *MongoEconomyFacade {
	return &MongoEconomyFacade{db: db, timeout: timeout}
}

// EnsureIndexes creates the unique transactionRef index that backs the
// replay short-circuit. Safe to call on every startup.
func (f *MongoEconomyFacade) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	_, err := f.transactions().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "transactionRef", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (f *MongoEconomyFacade) users() *mongo.Collection {
	return f.db.Collection("users")
}

func (f *MongoEconomyFacade) transactions() *mongo.Collection {
	return f.db.Collection("transactions")
}

func parseObjectID(remoteUserID string) (primitive.ObjectID, error) {
	if !objectIDPattern.MatchString(remoteUserID) {
		return primitive.NilObjectID, ErrInvalidRemoteUserID
	}
	return primitive.ObjectIDFromHex(remoteUserID)
}

// GetUserBasic returns name fields for a player, or ErrRemoteUserNotFound.
func (f *MongoEconomyFacade) GetUserBasic(ctx context.Context, remoteUserID string) (*RemoteUserBasic, error) {
	oid, err := parseObjectID(remoteUserID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	var user RemoteUserBasic
	err = f.users().FindOne(ctx,
		bson.M{"_id": oid},
		options.FindOne().SetProjection(bson.M{"FullName": 1, "Username": 1}),
	).Decode(&user)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrRemoteUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetTransaction returns the remote transaction for a key, or nil when the
// key was never applied. The reconciliation sweep uses this to learn the
// true remote outcome without re-invoking the apply.
func (f *MongoEconomyFacade) GetTransaction(ctx context.Context, key uuid.UUID) (*RemoteTransaction, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	var txn RemoteTransaction
	err := f.transactions().FindOne(ctx, bson.M{"transactionRef": key.String()}).Decode(&txn)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// CreditCoins credits coins to the player. Crediting only fails when the
// target user does not exist.
func (f *MongoEconomyFacade) CreditCoins(ctx context.Context, remoteUserID string, coins int64, key uuid.UUID, meta map[string]any) (*RemoteApplyResult, error) {
	return f.apply(ctx, applyOp{
		remoteUserID: remoteUserID,
		key:          key,
		meta:         meta,
		source:       "offline_agent_recharge",
		record:       bson.M{"coinsCredited": coins},
		filter:       bson.M{},
		update:       bson.M{"$inc": bson.M{"Coins": coins}},
		guarded:      false,
	})
}

// DebitDiamonds debits diamonds from the player with a balance guard: the
// update matches only while the player still holds at least the amount.
func (f *MongoEconomyFacade) DebitDiamonds(ctx context.Context, remoteUserID string, diamonds int64, key uuid.UUID, meta map[string]any) (*RemoteApplyResult, error) {
	return f.apply(ctx, applyOp{
		remoteUserID: remoteUserID,
		key:          key,
		meta:         meta,
		source:       "offline_agent_withdrawal",
		record:       bson.M{"diamondsDebited": diamonds},
		filter:       bson.M{"Diamonds": bson.M{"$gte": diamonds}},
		update:       bson.M{"$inc": bson.M{"Diamonds": -diamonds}},
		guarded:      true,
	})
}

// ReserveDiamonds is a guarded debit used when diamonds are held remotely
// ahead of a confirmed payout.
func (f *MongoEconomyFacade) ReserveDiamonds(ctx context.Context, remoteUserID string, diamonds int64, key uuid.UUID, meta map[string]any) (*RemoteApplyResult, error) {
	return f.apply(ctx, applyOp{
		remoteUserID: remoteUserID,
		key:          key,
		meta:         meta,
		source:       "diamond_reserve",
		record:       bson.M{"diamondsDebited": diamonds},
		filter:       bson.M{"Diamonds": bson.M{"$gte": diamonds}},
		update:       bson.M{"$inc": bson.M{"Diamonds": -diamonds}},
		guarded:      true,
	})
}

// ReleaseDiamonds returns previously reserved diamonds to the player.
func (f *MongoEconomyFacade) ReleaseDiamonds(ctx context.Context, remoteUserID string, diamonds int64, key uuid.UUID, meta map[string]any) (*RemoteApplyResult, error) {
	return f.apply(ctx, applyOp{
		remoteUserID: remoteUserID,
		key:          key,
		meta:         meta,
		source:       "diamond_release",
		record:       bson.M{"coinsCredited": 0, "diamondsDebited": -diamonds},
		filter:       bson.M{},
		update:       bson.M{"$inc": bson.M{"Diamonds": diamonds}},
		guarded:      false,
	})
}

type applyOp struct {
	remoteUserID string
	key          uuid.UUID
	meta         map[string]any
	source       string
	record       bson.M
	filter       bson.M
	update       bson.M
	guarded      bool
}

// apply implements the bridge contract: terminal transactionRef short-circuits,
// otherwise a pending record is inserted and exactly one conditional update
// runs against the target balance.
func (f *MongoEconomyFacade) apply(ctx context.Context, op applyOp) (*RemoteApplyResult, error) {
	oid, err := parseObjectID(op.remoteUserID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	ref := op.key.String()

	existing, err := f.GetTransaction(ctx, op.key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		switch existing.Status {
		case TxnSuccessful, TxnFailed:
			logger.Log.Infow("remote transaction replay",
				"transaction_ref", ref, "status", existing.Status)
			return &RemoteApplyResult{TransactionRef: ref, Status: existing.Status, AlreadyProcessed: true}, nil
		default:
			return nil, ErrRemotePending
		}
	}

	now := time.Now().UTC()
	doc := bson.M{
		"transactionRef": ref,
		"userId":         oid,
		"status":         TxnPending,
		"source":         op.source,
		"meta":           op.meta,
		"createdAt":      now,
		"updatedAt":      now,
	}
	for k, v := range op.record {
		doc[k] = v
	}

	inserted, err := f.transactions().InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	txnID := inserted.InsertedID

	if err := f.setTxnStatus(ctx, txnID, TxnApplying, ""); err != nil {
		return nil, err
	}

	filter := bson.M{"_id": oid}
	for k, v := range op.filter {
		filter[k] = v
	}

	res, err := f.users().UpdateOne(ctx, filter, op.update)
	if err != nil {
		// Outcome unknown: leave the transaction in applying for the
		// reconciliation sweep, surface the transport error.
		logger.Log.Errorw("remote conditional update failed",
			"transaction_ref", ref, "error", err)
		return nil, err
	}

	if res.ModifiedCount != 1 {
		reason := "not_found"
		outcome := ErrRemoteUserNotFound
		if op.guarded {
			n, countErr := f.users().CountDocuments(ctx, bson.M{"_id": oid})
			if countErr == nil && n > 0 {
				reason = "insufficient_balance"
				outcome = ErrInsufficientRemoteBalance
			}
		}
		if err := f.setTxnStatus(ctx, txnID, TxnFailed, reason); err != nil {
			return nil, err
		}
		logger.Log.Warnw("remote apply affected no document",
			"transaction_ref", ref, "reason", reason)
		return &RemoteApplyResult{TransactionRef: ref, Status: TxnFailed}, outcome
	}

	if err := f.setTxnStatus(ctx, txnID, TxnSuccessful, ""); err != nil {
		// The balance change landed; the record catches up via reconciliation.
		logger.Log.Errorw("failed to finalize remote transaction record",
			"transaction_ref", ref, "error", err)
	}

	logger.Log.Infow("remote apply successful", "transaction_ref", ref, "source", op.source)
	return &RemoteApplyResult{TransactionRef: ref, Status: TxnSuccessful}, nil
}

func (f *MongoEconomyFacade) setTxnStatus(ctx context.Context, txnID any, status, reason string) error {
	set := bson.M{"status": status, "updatedAt": time.Now().UTC()}
	if reason != "" {
		set["reason"] = reason
	}
	_, err := f.transactions().UpdateOne(ctx, bson.M{"_id": txnID}, bson.M{"$set": set})
	return err
}
