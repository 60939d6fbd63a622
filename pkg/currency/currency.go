// Package currency formats trip amounts.
package currency

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Round rounds to whole units, half away from zero.
func Round(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(0)
}

// Convert multiplies a source amount by rate and rounds to whole units.
func Convert(amount, rate decimal.Decimal) decimal.Decimal {
	return Round(amount.Mul(rate))
}

// Format renders amount in the currency's own notation, e.g. ¥37,500.
// Amounts are never rounded: digits beyond the currency's minor unit are
// kept, so 1234.5 JPY is ¥1,234.5. Unknown codes fall back to the plain
// number followed by the code.
func Format(amount decimal.Decimal, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		if code == "" {
			return amount.String()
		}
		return amount.String() + " " + code
	}
	places := int(-amount.Exponent())
	if places <= cur.Fraction {
		return money.New(amount.Shift(int32(cur.Fraction)).IntPart(), cur.Code).Display()
	}
	return display(cur, amount)
}

// display lays out an amount with more digits than the currency's minor
// unit using the currency's symbol, separators and template.
func display(cur *money.Currency, amount decimal.Decimal) string {
	digits := amount.Abs().String()
	whole, frac, _ := strings.Cut(digits, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(cur.Thousand)
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteString(cur.Decimal)
		b.WriteString(frac)
	}

	out := strings.Replace(cur.Template, "1", b.String(), 1)
	out = strings.Replace(out, "$", cur.Grapheme, 1)
	if amount.IsNegative() {
		out = "-" + out
	}
	return out
}
