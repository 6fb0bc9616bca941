package conversion

import "errors"

var (
	// ErrInvalidAmount is returned when an amount converts to a non-positive cost.
	ErrInvalidAmount = errors.New("amount converts to a non-positive value")
	// ErrMismatch is returned when a client-submitted value falls outside the
	// tolerance of the server-side computation.
	ErrMismatch = errors.New("client value outside tolerance of server conversion")
)

// Policy converts between in-game assets (coins, diamonds) and monetary
// minor units. All arithmetic is integer; the server value is authoritative.
type Policy struct {
	CoinsPerUnit    int64 // coins per one monetary unit
	DiamondsPerUnit int64 // diamonds per one monetary unit
	CostRateMinor   int64 // cost minor units charged per monetary unit
	PayoutRateMinor int64 // payout minor units paid per monetary unit
	ToleranceMinor  int64 // allowed client/server divergence in minor units
}

// CostFor returns the minor-unit cost of crediting coinsAmount coins,
// rounded half up. Non-positive results are rejected.
func (p Policy) CostFor(coinsAmount int64) (int64, error) {
	if coinsAmount <= 0 {
		return 0, ErrInvalidAmount
	}
	cost := roundHalfUp(coinsAmount*p.CostRateMinor, p.CoinsPerUnit)
	if cost <= 0 {
		return 0, ErrInvalidAmount
	}
	return cost, nil
}

// PayoutFor returns the minor-unit payout for debiting diamondsAmount
// diamonds. The result is floored: the payout never exceeds the exact value.
func (p Policy) PayoutFor(diamondsAmount int64) int64 {
	if diamondsAmount <= 0 {
		return 0
	}
	return diamondsAmount * p.PayoutRateMinor / p.DiamondsPerUnit
}

// WithinTolerance checks a client-submitted minor-unit value against the
// server computation. A divergence beyond the tolerance is an error, never
// silently corrected.
func (p Policy) WithinTolerance(server, client int64) error {
	diff := server - client
	if diff < 0 {
		diff = -diff
	}
	if diff > p.ToleranceMinor {
		return ErrMismatch
	}
	return nil
}

// roundHalfUp divides n by d rounding half away from zero for positive inputs.
func roundHalfUp(n, d int64) int64 {
	return (2*n + d) / (2 * d)
}
