package fees

import (
	"github.com/peter-kozarec/psecalc/pkg/utility/fixed"
	"golang.org/x/exp/slices"
)

type Option func(*Schedule)

func WithMinimumCommission(amount fixed.Point) Option {
	return func(s *Schedule) {
		s.minimumCommission = amount
	}
}

func WithCommissionRate(rate fixed.Point) Option {
	return func(s *Schedule) {
		s.commissionRate = rate
	}
}

func WithVatRate(rate fixed.Point) Option {
	return func(s *Schedule) {
		s.vatRate = rate
	}
}

func WithTransactionFeeRate(rate fixed.Point) Option {
	return func(s *Schedule) {
		s.transactionFeeRate = rate
	}
}

func WithClearingFeeRate(rate fixed.Point) Option {
	return func(s *Schedule) {
		s.clearingFeeRate = rate
	}
}

func WithSalesTaxRate(rate fixed.Point) Option {
	return func(s *Schedule) {
		s.salesTaxRate = rate
	}
}

// WithBoardLots replaces the board lot table. Tiers may be passed in any order.
func WithBoardLots(boardLots ...BoardLot) Option {
	return func(s *Schedule) {
		s.boardLots = sortBoardLots(slices.Clone(boardLots))
	}
}
