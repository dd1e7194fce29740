package inventory

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Price represents a unit price. The value is kept exact, only String
// rounds it to the two digits the inventory file format carries.
type Price struct {
	value decimal.Decimal
}

func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Price {
	return Price{value: newDecimal(value)}
}

// ParsePrice parses a decimal string like "9.99" into a Price.
func ParsePrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	return Price{value: d}, nil
}

func (p Price) Equal(q Price) bool       { return p.value.Equal(q.value) }
func (p Price) LessThan(q Price) bool    { return p.value.LessThan(q.value) }
func (p Price) GreaterThan(q Price) bool { return p.value.GreaterThan(q.value) }
func (p Price) IsNegative() bool         { return p.value.IsNegative() }
func (p Price) IsZero() bool             { return p.value.IsZero() }
func (p Price) Add(q Price) Price        { return Price{value: p.value.Add(q.value)} }
func (p Price) Mul(n int) Price          { return Price{value: p.value.Mul(decimal.NewFromInt(int64(n)))} }

// String returns the file-format representation: two decimal digits,
// always with a '.' decimal point whatever the locale.
func (p Price) String() string { return p.value.StringFixed(2) }

// Format returns the price formatted for display in the given currency,
// e.g. Format("USD") -> "$9.99".
func (p Price) Format(currency string) string {
	cur := *money.New(0, currency).Currency()
	dec := p.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Deprecated: AsFloat should no longer be used, the purpose is to keep the price exact.
func (p Price) AsFloat() float64 { return p.value.InexactFloat64() }
