package expense

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Amount is an exact, currency-agnostic decimal value.
type Amount struct {
	value decimal.Decimal
}

// A returns the Amount for value.
func A[T float64 | int | int64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

// ParseAmount parses a user supplied amount. It must be a number strictly greater than 0.
func ParseAmount(str string) (Amount, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(str))
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q is not a valid number", ErrInvalidAmount, str)
	}
	if !v.IsPositive() {
		return Amount{}, fmt.Errorf("%w: got %s", ErrInvalidAmount, v)
	}
	return Amount{value: v}, nil
}

func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Equal(b Amount) bool { return a.value.Equal(b.value) }
func (a Amount) IsPositive() bool    { return a.value.IsPositive() }
func (a Amount) IsZero() bool        { return a.value.IsZero() }
func (a Amount) String() string      { return a.value.String() }

// Fixed returns the amount rounded to two decimal places, e.g. "7.50".
func (a Amount) Fixed() string { return a.value.StringFixed(2) }

// In returns the amount as Money in the given currency, for display.
func (a Amount) In(currency string) Money { return Money{value: a.value, cur: currency} }

func (a Amount) MarshalJSON() ([]byte, error) {
	return a.value.MarshalJSON()
}

func (a *Amount) UnmarshalJSON(decimalBytes []byte) error {
	return a.value.UnmarshalJSON(decimalBytes)
}
