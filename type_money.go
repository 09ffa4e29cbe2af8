package practice

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the single currency the practice operates in.
const Currency = "MYR"

// Money represents a monetary value in the practice currency.
//
// Arithmetic stays exact through decimal; go-money is only consulted
// for the currency's display format and fraction.
type Money struct {
	value decimal.Decimal
}

// M builds a Money from any numeric value.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func newDecimal(v any) decimal.Decimal {
	switch n := v.(type) {
	case decimal.Decimal:
		return n
	case float32:
		return decimal.NewFromFloat32(n)
	case float64:
		return decimal.NewFromFloat(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int32:
		return decimal.NewFromInt32(n)
	case int64:
		return decimal.NewFromInt(n)
	default:
		return decimal.Zero
	}
}

// currency returns the full go-money currency for formatting.
func (m Money) currency() money.Currency {
	// the money.New constructor is the only way to get a never-nil currency.
	return *money.New(0, Currency).Currency()
}

// String formats the value with the currency's formatter (e.g. "RM1,250.00").
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Amount returns the decimal value rounded to the currency's fraction.
func (m Money) Amount() decimal.Decimal {
	return m.value.Round(int32(m.currency().Fraction))
}

func (m Money) Equal(n Money) bool   { return m.value.Equal(n.value) }
func (m Money) IsZero() bool         { return m.value.IsZero() }
func (m Money) IsPositive() bool     { return m.value.IsPositive() }
func (m Money) IsNegative() bool     { return m.value.IsNegative() }
func (m Money) Neg() Money           { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money    { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money    { return Money{value: m.value.Sub(n.value)} }
func (m Money) MulInt(q int64) Money { return Money{value: m.value.Mul(decimal.NewFromInt(q))} }

// SignedString returns the formatted value with an explicit sign, "-" for zero.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}
