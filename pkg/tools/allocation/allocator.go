package allocation

import (
	"fmt"
	"math"

	"github.com/peter-kozarec/psecalc/pkg/trade"
	"github.com/peter-kozarec/psecalc/pkg/utility/fixed"
	"go.uber.org/zap"
)

type BuyEvaluator interface {
	EvaluateBuy(price fixed.Point, shares int64) (trade.Result, error)
}

// Allocation is the largest lot aligned position that fits the budget once fees are added.
// Zero shares means not even one lot fits, in which case nothing is bought and nothing is paid.
type Allocation struct {
	Shares           int64
	BuyTotalWithFees fixed.Point
	Iterations       int
}

type Allocator struct {
	logger    *zap.Logger
	evaluator BuyEvaluator
}

func NewAllocator(logger *zap.Logger, evaluator BuyEvaluator) *Allocator {
	return &Allocator{
		logger:    logger,
		evaluator: evaluator,
	}
}

// InitialShares is the largest lot aligned quantity whose gross, before fees, fits the budget.
func InitialShares(budget, buyPrice fixed.Point, lotSize int64) (int64, error) {
	if !budget.IsPos() || !buyPrice.IsPos() || lotSize <= 0 {
		return 0, fmt.Errorf("%w: budget %s, buy price %s, lot size %d", trade.ErrInvalidArgument, budget, buyPrice, lotSize)
	}

	lots, ok := budget.Div(buyPrice.MulInt64(lotSize)).Int64()
	if !ok {
		return 0, fmt.Errorf("%w: budget %s buys too many lots", trade.ErrInvalidArgument, budget)
	}

	if lots > math.MaxInt64/lotSize {
		return 0, fmt.Errorf("%w: budget %s buys more than %d shares", trade.ErrInvalidArgument, budget, int64(math.MaxInt64))
	}

	return lots * lotSize, nil
}

// Allocate walks down from initialShares one lot at a time until the fee inclusive
// buy cost is within budget. Buy cost grows with the share count, so the walk
// stops at the first fit and runs at most initialShares/lotSize evaluations.
func (a *Allocator) Allocate(budget, buyPrice fixed.Point, initialShares, lotSize int64) (Allocation, error) {
	if !budget.IsPos() || !buyPrice.IsPos() {
		return Allocation{}, fmt.Errorf("%w: budget %s and buy price %s must be positive", trade.ErrInvalidArgument, budget, buyPrice)
	}
	if lotSize <= 0 {
		return Allocation{}, fmt.Errorf("%w: lot size must be positive, got %d", trade.ErrInvalidArgument, lotSize)
	}
	if initialShares < 0 || initialShares%lotSize != 0 {
		return Allocation{}, fmt.Errorf("%w: initial shares %d is not a multiple of lot size %d", trade.ErrInvalidArgument, initialShares, lotSize)
	}

	allocation := Allocation{
		Shares:           initialShares,
		BuyTotalWithFees: fixed.Zero,
	}

	for allocation.Shares > 0 {
		allocation.Iterations++

		result, err := a.evaluator.EvaluateBuy(buyPrice, allocation.Shares)
		if err != nil {
			return Allocation{}, fmt.Errorf("unable to evaluate buy of %d shares: %w", allocation.Shares, err)
		}

		if result.TotalAmount.Lte(budget) {
			allocation.BuyTotalWithFees = result.TotalAmount
			break
		}

		a.logger.Debug("buy cost exceeds budget, dropping one lot",
			zap.Int64("shares", allocation.Shares),
			zap.Object("cost", result.TotalAmount),
			zap.Object("budget", budget))

		allocation.Shares -= lotSize
	}

	a.logger.Debug("allocation done",
		zap.Int64("initial_shares", initialShares),
		zap.Int64("shares", allocation.Shares),
		zap.Object("buy_total_with_fees", allocation.BuyTotalWithFees),
		zap.Int("iterations", allocation.Iterations))

	return allocation, nil
}
