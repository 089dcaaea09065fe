package trade

import (
	"errors"
	"fmt"

	"github.com/peter-kozarec/psecalc/pkg/fees"
	"github.com/peter-kozarec/psecalc/pkg/utility/fixed"
)

var ErrInvalidArgument = errors.New("invalid argument")

// Evaluator prices a single buy or sell leg against a fee schedule.
type Evaluator struct {
	schedule *fees.Schedule
}

func NewEvaluator(schedule *fees.Schedule) *Evaluator {
	if schedule == nil {
		schedule = fees.Default()
	}
	return &Evaluator{schedule: schedule}
}

func (e *Evaluator) Schedule() *fees.Schedule {
	return e.schedule
}

// EvaluateBuy returns the cost of buying shares at price, fees added on top of gross.
func (e *Evaluator) EvaluateBuy(price fixed.Point, shares int64) (Result, error) {
	return e.Evaluate(Buy, price, shares)
}

// EvaluateSell returns the proceeds of selling shares at price, fees and sales tax deducted.
func (e *Evaluator) EvaluateSell(price fixed.Point, shares int64) (Result, error) {
	return e.Evaluate(Sell, price, shares)
}

func (e *Evaluator) Evaluate(side Side, price fixed.Point, shares int64) (Result, error) {
	if !price.IsPos() {
		return Result{}, fmt.Errorf("%w: price must be positive, got %s", ErrInvalidArgument, price)
	}
	if shares < 0 {
		return Result{}, fmt.Errorf("%w: shares must not be negative, got %d", ErrInvalidArgument, shares)
	}

	gross := price.MulInt64(shares)
	commission := e.schedule.Commission(gross)

	breakdown := FeeBreakdown{
		Commission:     commission,
		CommissionVat:  e.schedule.CommissionVat(commission),
		TransactionFee: e.schedule.TransactionFee(gross),
		ClearingFee:    e.schedule.ClearingFee(gross),
		SalesTax:       fixed.Zero,
	}

	result := Result{
		Side:   side,
		Price:  price,
		Shares: shares,
		Gross:  gross,
	}

	switch side {
	case Buy:
		result.Fees = breakdown
		result.TotalFees = breakdown.Total()
		result.TotalAmount = gross.Add(result.TotalFees)
	case Sell:
		breakdown.SalesTax = e.schedule.SalesTax(gross)
		result.Fees = breakdown
		result.TotalFees = breakdown.Total()
		result.TotalAmount = gross.Sub(result.TotalFees)
	default:
		return Result{}, fmt.Errorf("%w: unknown side %q", ErrInvalidArgument, side)
	}

	return result, nil
}
