package tabunganku

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an amount in whole rupiah. The source data never carries
// fractional amounts, so minor units are not modeled; arithmetic stays exact
// integer arithmetic and formatting is delegated to go-money.
type Money int64

// currency returns the IDR currency definition.
func (m Money) currency() *money.Currency {
	return money.GetCurrency(money.IDR)
}

// String formats the amount as rupiah.
func (m Money) String() string {
	cur := m.currency()
	shifted := decimal.NewFromInt(int64(m)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(shifted.IntPart())
}

func (m Money) IsZero() bool     { return m == 0 }
func (m Money) IsPositive() bool { return m > 0 }
func (m Money) IsNegative() bool { return m < 0 }

// binary operators.
func (m Money) Add(n Money) Money { return m + n }
func (m Money) Sub(n Money) Money { return m - n }

// SignedString returns the string representation of the amount with a sign.
// 0 is represented as "-".
func (m Money) SignedString() string {
	if m.IsZero() {
		return "-"
	}
	if m.IsPositive() {
		return "+" + m.String()
	}
	return "-" + (-m).String()
}
