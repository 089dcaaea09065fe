package fees

import (
	"errors"
	"fmt"

	"github.com/peter-kozarec/psecalc/pkg/utility/fixed"
)

var ErrInvalidSchedule = errors.New("invalid fee schedule")

// Schedule is the fee policy of the exchange. All rates are percentages of the
// gross value except the VAT rate, which is a percentage of the commission.
// A schedule is immutable once built and safe for concurrent use.
type Schedule struct {
	minimumCommission  fixed.Point
	commissionRate     fixed.Point
	vatRate            fixed.Point
	transactionFeeRate fixed.Point
	clearingFeeRate    fixed.Point
	salesTaxRate       fixed.Point
	boardLots          []BoardLot
}

// Default returns the Philippine Stock Exchange policy.
func Default() *Schedule {
	return &Schedule{
		minimumCommission:  fixed.New(20, 0),
		commissionRate:     fixed.New(25, 2),
		vatRate:            fixed.New(12, 0),
		transactionFeeRate: fixed.New(5, 3),
		clearingFeeRate:    fixed.New(1, 2),
		salesTaxRate:       fixed.New(5, 1),
		boardLots:          DefaultBoardLots(),
	}
}

func NewSchedule(options ...Option) (*Schedule, error) {
	s := Default()

	for _, option := range options {
		option(s)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Schedule) MinimumCommission() fixed.Point  { return s.minimumCommission }
func (s *Schedule) CommissionRate() fixed.Point     { return s.commissionRate }
func (s *Schedule) VatRate() fixed.Point            { return s.vatRate }
func (s *Schedule) TransactionFeeRate() fixed.Point { return s.transactionFeeRate }
func (s *Schedule) ClearingFeeRate() fixed.Point    { return s.clearingFeeRate }
func (s *Schedule) SalesTaxRate() fixed.Point       { return s.salesTaxRate }

// Commission is the broker commission on gross, never less than the minimum commission.
func (s *Schedule) Commission(gross fixed.Point) fixed.Point {
	return gross.Percent(s.commissionRate).Max(s.minimumCommission)
}

func (s *Schedule) CommissionVat(commission fixed.Point) fixed.Point {
	return commission.Percent(s.vatRate)
}

// TransactionFee is the exchange transaction fee.
func (s *Schedule) TransactionFee(gross fixed.Point) fixed.Point {
	return gross.Percent(s.transactionFeeRate)
}

// ClearingFee is the SCCP clearing fee.
func (s *Schedule) ClearingFee(gross fixed.Point) fixed.Point {
	return gross.Percent(s.clearingFeeRate)
}

// SalesTax is only charged when selling.
func (s *Schedule) SalesTax(gross fixed.Point) fixed.Point {
	return gross.Percent(s.salesTaxRate)
}

func (s *Schedule) validate() error {
	rates := []struct {
		name string
		rate fixed.Point
	}{
		{"minimum commission", s.minimumCommission},
		{"commission rate", s.commissionRate},
		{"vat rate", s.vatRate},
		{"transaction fee rate", s.transactionFeeRate},
		{"clearing fee rate", s.clearingFeeRate},
		{"sales tax rate", s.salesTaxRate},
	}

	for _, r := range rates {
		if r.rate.IsNeg() {
			return fmt.Errorf("%w: %s is negative (%s)", ErrInvalidSchedule, r.name, r.rate)
		}
	}

	return validateBoardLots(s.boardLots)
}
