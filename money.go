package finquant

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount represents a monetary value, such as the fair market value invested
// in a holding or an optimised allocation.
type Amount struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M builds an Amount from any numeric value and a currency code.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Amount {
	return Amount{value: newDecimal(value), cur: currency}
}

func newDecimal(v any) decimal.Decimal {
	switch x := v.(type) {
	case decimal.Decimal:
		return x
	case float32:
		return decimal.NewFromFloat32(x)
	case float64:
		return decimal.NewFromFloat(x)
	case int:
		return decimal.NewFromInt(int64(x))
	case int32:
		return decimal.NewFromInt32(x)
	case int64:
		return decimal.NewFromInt(x)
	default:
		panic("unsupported numeric type")
	}
}

// currency returns the amount's currency, defaulting to USD when unset.
func (m Amount) currency() money.Currency {
	cur := m.cur
	if cur == "" {
		cur = money.USD
	}
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, cur).Currency()
}

// String returns the formatted representation of the amount.
func (m Amount) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Amount) Currency() string    { return m.cur }
func (m Amount) Equal(n Amount) bool { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Amount) IsZero() bool        { return m.value.IsZero() }
func (m Amount) IsPositive() bool    { return m.value.IsPositive() }
func (m Amount) Add(n Amount) Amount { return Amount{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Amount) Sub(n Amount) Amount { return Amount{value: m.value.Sub(n.value), cur: cur(m, n)} }
func (m Amount) Mul(f float64) Amount {
	return Amount{value: m.value.Mul(decimal.NewFromFloat(f)), cur: m.cur}
}
func (m Amount) Div(n Amount) float64   { return m.value.Div(n.value).InexactFloat64() }
func (m Amount) LessThan(n Amount) bool { return m.value.LessThan(n.value) }
func (m Amount) AsFloat() float64       { return m.value.InexactFloat64() }

// makes the "" currency totally weak.
func cur(a, b Amount) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}
