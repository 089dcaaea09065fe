package estimate

import (
	"fmt"

	"github.com/peter-kozarec/psecalc/pkg/fees"
	"github.com/peter-kozarec/psecalc/pkg/tools/allocation"
	"github.com/peter-kozarec/psecalc/pkg/trade"
	"github.com/peter-kozarec/psecalc/pkg/utility/fixed"
	"go.uber.org/zap"
)

// Engine answers "how many shares can I buy and what do I make" questions.
// It holds no mutable state and can be shared between goroutines.
type Engine struct {
	logger    *zap.Logger
	schedule  *fees.Schedule
	evaluator *trade.Evaluator
	allocator *allocation.Allocator
}

func NewEngine(logger *zap.Logger, options ...Option) *Engine {
	e := &Engine{
		logger:   logger,
		schedule: fees.Default(),
	}

	for _, option := range options {
		option(e)
	}

	e.evaluator = trade.NewEvaluator(e.schedule)
	e.schedule = e.evaluator.Schedule()
	e.allocator = allocation.NewAllocator(logger, e.evaluator)

	return e
}

func (e *Engine) Buy(price fixed.Point, shares int64) (trade.Result, error) {
	return e.evaluate(trade.Buy, price, shares)
}

func (e *Engine) Sell(price fixed.Point, shares int64) (trade.Result, error) {
	return e.evaluate(trade.Sell, price, shares)
}

func (e *Engine) evaluate(side trade.Side, price fixed.Point, shares int64) (trade.Result, error) {
	result, err := e.evaluator.Evaluate(side, price, shares)
	if err != nil {
		return trade.Result{}, err
	}
	e.logger.Debug("trade evaluated", zap.Object("trade", result))
	return result, nil
}

// EstimateByPercentage sizes a position for budget and sells it percent above buyPrice.
// A negative percent estimates a loss.
func (e *Engine) EstimateByPercentage(budget, buyPrice, percent fixed.Point) (Report, error) {
	if !buyPrice.IsPos() {
		return Report{}, fmt.Errorf("%w: buy price must be positive, got %s", trade.ErrInvalidArgument, buyPrice)
	}

	sellPrice := SellPriceByPercentage(buyPrice, percent)
	if !sellPrice.IsPos() {
		return Report{}, fmt.Errorf("%w: %s%% leaves no positive sell price", trade.ErrInvalidArgument, percent)
	}

	return e.estimate(Percentage, budget, buyPrice, sellPrice, percent)
}

// EstimateBySellPrice sizes a position for budget and sells it at sellPrice.
func (e *Engine) EstimateBySellPrice(budget, buyPrice, sellPrice fixed.Point) (Report, error) {
	if !buyPrice.IsPos() {
		return Report{}, fmt.Errorf("%w: buy price must be positive, got %s", trade.ErrInvalidArgument, buyPrice)
	}
	if !sellPrice.IsPos() {
		return Report{}, fmt.Errorf("%w: sell price must be positive, got %s", trade.ErrInvalidArgument, sellPrice)
	}

	return e.estimate(SellPrice, budget, buyPrice, sellPrice, PercentageDiff(buyPrice, sellPrice))
}

func (e *Engine) estimate(calculatorType CalculatorType, budget, buyPrice, sellPrice, percent fixed.Point) (Report, error) {
	if !budget.IsPos() {
		return Report{}, fmt.Errorf("%w: budget must be positive, got %s", trade.ErrInvalidArgument, budget)
	}

	lotSize, err := e.schedule.LotSize(buyPrice)
	if err != nil {
		return Report{}, err
	}

	sharesPerLot := buyPrice.MulInt64(lotSize)

	initialShares, err := allocation.InitialShares(budget, buyPrice, lotSize)
	if err != nil {
		return Report{}, err
	}

	if initialShares < lotSize {
		e.logger.Debug("budget does not cover one board lot",
			zap.Stringer("budget", budget),
			zap.Stringer("shares_per_lot", sharesPerLot))
		return insufficientBudget(), nil
	}

	alloc, err := e.allocator.Allocate(budget, buyPrice, initialShares, lotSize)
	if err != nil {
		return Report{}, err
	}

	if alloc.Shares == 0 {
		e.logger.Debug("fees push one board lot over budget",
			zap.Stringer("budget", budget),
			zap.Int64("board_lot_size", lotSize))
		return insufficientBudget(), nil
	}

	sell, err := e.evaluator.EvaluateSell(sellPrice, alloc.Shares)
	if err != nil {
		return Report{}, err
	}

	return Report{
		CalculatorType:    calculatorType,
		Budget:            budget,
		BuyPrice:          buyPrice,
		LotSize:           lotSize,
		SharesPerLot:      sharesPerLot,
		TotalShares:       alloc.Shares,
		BuyTotal:          buyPrice.MulInt64(alloc.Shares),
		BuyTotalWithFees:  alloc.BuyTotalWithFees,
		SellTotalWithFees: sell.TotalAmount,
		Percent:           percent,
		SellPrice:         sellPrice,
		NetEarnings:       sell.TotalAmount.Sub(alloc.BuyTotalWithFees),
	}, nil
}
