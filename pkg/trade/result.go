package trade

import (
	"github.com/peter-kozarec/psecalc/pkg/utility/fixed"
	"go.uber.org/zap/zapcore"
)

type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// FeeBreakdown lists every charge of one leg. SalesTax is zero on the buy side.
type FeeBreakdown struct {
	Commission     fixed.Point `json:"commission"`
	CommissionVat  fixed.Point `json:"commissionVat"`
	TransactionFee fixed.Point `json:"transactionFee"`
	ClearingFee    fixed.Point `json:"clearingFee"`
	SalesTax       fixed.Point `json:"salesTax"`
}

func (f FeeBreakdown) Total() fixed.Point {
	return f.Commission.Add(f.CommissionVat).Add(f.TransactionFee).Add(f.ClearingFee).Add(f.SalesTax)
}

type Result struct {
	Side        Side         `json:"side"`
	Price       fixed.Point  `json:"price"`
	Shares      int64        `json:"shares"`
	Gross       fixed.Point  `json:"gross"`
	Fees        FeeBreakdown `json:"fees"`
	TotalFees   fixed.Point  `json:"totalFees"`
	TotalAmount fixed.Point  `json:"totalAmount"`
}

func (r Result) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("side", string(r.Side))
	enc.AddString("price", r.Price.String())
	enc.AddInt64("shares", r.Shares)
	enc.AddString("gross", r.Gross.String())
	enc.AddString("commission", r.Fees.Commission.String())
	enc.AddString("commission_vat", r.Fees.CommissionVat.String())
	enc.AddString("transaction_fee", r.Fees.TransactionFee.String())
	enc.AddString("clearing_fee", r.Fees.ClearingFee.String())
	if r.Side == Sell {
		enc.AddString("sales_tax", r.Fees.SalesTax.String())
	}
	enc.AddString("total_fees", r.TotalFees.String())
	enc.AddString("total_amount", r.TotalAmount.String())
	return nil
}
