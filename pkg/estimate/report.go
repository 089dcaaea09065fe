package estimate

import (
	"encoding/json"
	"fmt"

	"github.com/peter-kozarec/psecalc/pkg/utility/fixed"
	"go.uber.org/zap"
)

type CalculatorType string

const (
	Percentage CalculatorType = "Percentage"
	SellPrice  CalculatorType = "Sell Price"
)

const InsufficientBudget = "insufficient budget"

// Report is the outcome of one estimate. When Error is set, no other field is populated.
type Report struct {
	CalculatorType    CalculatorType `json:"calculatorType"`
	Budget            fixed.Point    `json:"budget"`
	BuyPrice          fixed.Point    `json:"buyPrice"`
	LotSize           int64          `json:"boardLotSize"`
	SharesPerLot      fixed.Point    `json:"sharesPerLot"`
	TotalShares       int64          `json:"totalShares"`
	BuyTotal          fixed.Point    `json:"buyTotal"`
	BuyTotalWithFees  fixed.Point    `json:"buyTotalWithFees"`
	SellTotalWithFees fixed.Point    `json:"sellTotalWithFees"`
	Percent           fixed.Point    `json:"percent"`
	SellPrice         fixed.Point    `json:"sellPrice"`
	NetEarnings       fixed.Point    `json:"netEarnings"`
	Error             string         `json:"error,omitempty"`
}

func insufficientBudget() Report {
	return Report{Error: InsufficientBudget}
}

func (r Report) Ok() bool {
	return r.Error == ""
}

func (r Report) MarshalJSON() ([]byte, error) {
	if !r.Ok() {
		return json.Marshal(struct {
			Error string `json:"error"`
		}{r.Error})
	}

	type plain Report
	return json.Marshal(plain(r))
}

func (r Report) Print(logger *zap.Logger) {
	if !r.Ok() {
		logger.Warn("estimate not available", zap.String("error", r.Error))
		return
	}

	logger.Info("buy estimate",
		zap.String("calculator_type", string(r.CalculatorType)),
		zap.String("budget", r.Budget.String()),
		zap.String("buy_price", r.BuyPrice.String()),
		zap.Int64("board_lot_size", r.LotSize),
		zap.String("shares_per_lot", r.SharesPerLot.String()),
		zap.Int64("total_shares", r.TotalShares),
		zap.String("buy_total", r.BuyTotal.String()),
		zap.String("buy_total_with_fees", r.BuyTotalWithFees.String()),
	)

	logger.Info("sell estimate",
		zap.String("sell_price", r.SellPrice.String()),
		zap.String("percent", fmt.Sprintf("%s%%", r.Percent.Trim(0).String())),
		zap.String("sell_total_with_fees", r.SellTotalWithFees.String()),
		zap.String("net_earnings", r.NetEarnings.String()),
	)
}
