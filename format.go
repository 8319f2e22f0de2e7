package money

import (
	"fmt"
	"strings"

	"github.com/govalues/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders an amount in a currency for a locale.
// Implementations must be deterministic for a given amount, currency and locale.
// Money passes the rounded amount, see [Money.Amount].
type Formatter interface {
	FormatAmount(amount decimal.Decimal, curr Currency, tag language.Tag) (string, error)
}

// FormatterFunc is an adapter to allow the use of ordinary functions as formatters.
type FormatterFunc func(amount decimal.Decimal, curr Currency, tag language.Tag) (string, error)

// FormatAmount calls f(amount, curr, tag).
func (f FormatterFunc) FormatAmount(amount decimal.Decimal, curr Currency, tag language.Tag) (string, error) {
	return f(amount, curr, tag)
}

// LocaleFormatter is a [Formatter] that uses CLDR data from [golang.org/x/text]
// for symbols, digit grouping and decimal separators.
// It always prints [Scale] fractional digits.
// The layout is fixed: symbol, one space, number, whatever the locale's own
// currency pattern is, so "$ 1,234.50" for English and "€ 1.234,50" for German.
// Use a custom [Formatter] for locale-specific symbol placement.
// LocaleFormatter is stateless and safe for concurrent use.
type LocaleFormatter struct{}

// FormatAmount renders the locale-specific currency symbol, a space and the
// locale-formatted number.
func (LocaleFormatter) FormatAmount(amount decimal.Decimal, curr Currency, tag language.Tag) (string, error) {
	unit, err := currency.ParseISO(curr.Code())
	if err != nil {
		return "", fmt.Errorf("looking up %v: %w", curr, err)
	}
	num, err := formatNumber(amount, tag)
	if err != nil {
		return "", err
	}
	p := message.NewPrinter(tag)
	return p.Sprint(currency.Symbol(unit)) + " " + num, nil
}

// formatNumber renders d with locale grouping and exactly [Scale] fractional digits.
// The integer and fractional parts are printed as integers, so every digit
// of d is kept.
func formatNumber(d decimal.Decimal, tag language.Tag) (string, error) {
	d = d.Round(Scale).Pad(Scale)
	if d.Scale() != Scale {
		return "", fmt.Errorf("padding %v to %v digits: %w", d, Scale, ErrAmountOverflow)
	}
	p := message.NewPrinter(tag)
	whole := d.Coef() / 100
	frac := d.Coef() % 100

	var b strings.Builder
	if d.IsNeg() && !d.IsZero() {
		b.WriteString(minusSign(p))
	}
	b.WriteString(p.Sprint(number.Decimal(whole)))
	b.WriteString(decimalSeparator(p))
	b.WriteString(p.Sprint(number.Decimal(frac, number.MinIntegerDigits(Scale))))
	return b.String(), nil
}

// decimalSeparator returns the locale's decimal separator, "." or "," in most locales.
func decimalSeparator(p *message.Printer) string {
	r := []rune(p.Sprint(number.Decimal(0.5, number.Scale(1))))
	return string(r[1 : len(r)-1])
}

// minusSign returns everything the locale prints before the digits of a negative number.
func minusSign(p *message.Printer) string {
	r := []rune(p.Sprint(number.Decimal(-1)))
	return string(r[:len(r)-1])
}

// Localize returns the amount of m formatted for the locale tag.
// If m has a currency, the amount and the currency are passed to f;
// a nil f means [LocaleFormatter].
// If m is unit-less, f is not used and the amount is printed as a plain
// locale-formatted number without a currency symbol.
// See also method [Money.String] for a locale-independent representation.
//
// Localize returns an error if the formatter fails.
func (m Money) Localize(f Formatter, tag language.Tag) (string, error) {
	d := m.Amount()
	c, ok := m.Curr()
	if !ok {
		s, err := formatNumber(d, tag)
		if err != nil {
			return "", fmt.Errorf("formatting [%v] for %v: %w", m, tag, err)
		}
		return s, nil
	}
	if f == nil {
		f = LocaleFormatter{}
	}
	s, err := f.FormatAmount(d, c, tag)
	if err != nil {
		return "", fmt.Errorf("formatting [%v %v] for %v: %w", c, m, tag, err)
	}
	return s, nil
}
