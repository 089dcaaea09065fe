package fees

import (
	"errors"
	"fmt"

	"github.com/peter-kozarec/psecalc/pkg/utility/fixed"
	"golang.org/x/exp/slices"
)

var ErrInvalidPrice = errors.New("invalid price")

// BoardLot is a price tier: shares priced at MinPrice or above trade in multiples of Size.
type BoardLot struct {
	MinPrice fixed.Point
	Size     int64
}

func DefaultBoardLots() []BoardLot {
	return []BoardLot{
		{MinPrice: fixed.New(1000, 0), Size: 5},
		{MinPrice: fixed.New(50, 0), Size: 10},
		{MinPrice: fixed.New(5, 0), Size: 100},
		{MinPrice: fixed.New(5, 1), Size: 1000},
		{MinPrice: fixed.New(5, 2), Size: 10000},
		{MinPrice: fixed.New(1, 2), Size: 100000},
		{MinPrice: fixed.New(1, 4), Size: 1000000},
	}
}

// LotSize returns the board lot size for price. Prices below the lowest tier are rejected.
func (s *Schedule) LotSize(price fixed.Point) (int64, error) {
	for _, lot := range s.boardLots {
		if price.Gte(lot.MinPrice) {
			return lot.Size, nil
		}
	}
	return 0, fmt.Errorf("%w: %s is below the lowest board lot tier", ErrInvalidPrice, price)
}

// BoardLots returns a copy of the tiers, highest price first.
func (s *Schedule) BoardLots() []BoardLot {
	return slices.Clone(s.boardLots)
}

func sortBoardLots(boardLots []BoardLot) []BoardLot {
	slices.SortFunc(boardLots, func(a, b BoardLot) int {
		return b.MinPrice.Cmp(a.MinPrice)
	})
	return boardLots
}

func validateBoardLots(boardLots []BoardLot) error {
	if len(boardLots) == 0 {
		return fmt.Errorf("%w: empty board lot table", ErrInvalidSchedule)
	}

	for _, lot := range boardLots {
		if !lot.MinPrice.IsPos() {
			return fmt.Errorf("%w: board lot threshold %s must be positive", ErrInvalidSchedule, lot.MinPrice)
		}
		if lot.Size <= 0 {
			return fmt.Errorf("%w: board lot size %d must be positive", ErrInvalidSchedule, lot.Size)
		}
	}

	unique := slices.CompactFunc(slices.Clone(boardLots), func(a, b BoardLot) bool {
		return a.MinPrice.Eq(b.MinPrice)
	})
	if len(unique) != len(boardLots) {
		return fmt.Errorf("%w: duplicate board lot threshold", ErrInvalidSchedule)
	}

	return nil
}
