package expense

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency used to display amounts when none is configured.
const DefaultCurrency = "USD"

// Money is an amount attached to a currency. Expenses are stored without
// currency, Money only exists to display them.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// CheckCurrency returns an error if code is not a known ISO 4217 currency code.
func CheckCurrency(code string) error {
	if money.GetCurrency(strings.ToUpper(code)) == nil {
		return fmt.Errorf("unknown currency %q", code)
	}
	return nil
}

// currency returns the money's currency, falling back to the default one.
func (m Money) currency() *money.Currency {
	if c := money.GetCurrency(strings.ToUpper(m.cur)); c != nil {
		return c
	}
	return money.GetCurrency(DefaultCurrency)
}

// String returns the amount formatted for its currency, e.g. "$25.00".
func (m Money) String() string {
	cur := m.currency()
	minor := m.value.Shift(int32(cur.Fraction)).Round(0)
	if minor.BigInt().IsInt64() {
		return cur.Formatter().Format(minor.IntPart())
	}
	return format(cur.Formatter(), m.value)
}

// format lays out value like f.Format does, for amounts whose minor units do
// not fit in an int64.
func format(f *money.Formatter, value decimal.Decimal) string {
	digits := value.Abs().StringFixed(int32(f.Fraction))
	integer, fraction, _ := strings.Cut(digits, ".")

	var b strings.Builder
	for i, r := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			b.WriteString(f.Thousand)
		}
		b.WriteRune(r)
	}
	if f.Fraction > 0 {
		b.WriteString(f.Decimal)
		b.WriteString(fraction)
	}

	out := strings.Replace(f.Template, "1", b.String(), 1)
	out = strings.Replace(out, "$", f.Grapheme, 1)
	if value.IsNegative() {
		out = "-" + out
	}
	return out
}
