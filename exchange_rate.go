package money

import (
	"fmt"

	"github.com/govalues/decimal"
)

// ExchangeRate represents a unidirectional exchange rate between two currencies.
// Rates are always supplied by the caller: this package does not look up,
// cache or expire them.
// The zero value is not a valid exchange rate.
// This type is designed to be safe for concurrent use by multiple goroutines.
type ExchangeRate struct {
	base  Currency        // currency being exchanged
	quote Currency        // currency being obtained in exchange for the base currency
	value decimal.Decimal // how many units of quote currency are needed to exchange for 1 unit of the base currency
}

// NewExchRate returns a new exchange rate between the base and quote currencies.
//
// NewExchRate returns an error if:
//   - the rate is not positive;
//   - the currencies are the same and the rate is not 1.
func NewExchRate(base, quote Currency, rate decimal.Decimal) (ExchangeRate, error) {
	if !rate.IsPos() {
		return ExchangeRate{}, fmt.Errorf("exchange rate %v/%v %v must be positive", base, quote, rate)
	}
	if base == quote && !rate.IsOne() {
		return ExchangeRate{}, fmt.Errorf("exchange rate %v/%v %v must be equal to 1", base, quote, rate)
	}
	return ExchangeRate{base: base, quote: quote, value: rate}, nil
}

// ParseExchRate converts currency and decimal strings to an exchange rate.
// See also constructors [ParseCurr] and [decimal.Parse].
func ParseExchRate(base, quote, rate string) (ExchangeRate, error) {
	b, err := ParseCurr(base)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing base currency: %w", err)
	}
	q, err := ParseCurr(quote)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing quote currency: %w", err)
	}
	d, err := decimal.Parse(rate)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing rate: %w", err)
	}
	r, err := NewExchRate(b, q, d)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("constructing rate: %w", err)
	}
	return r, nil
}

// MustParseExchRate is like [ParseExchRate] but panics if any of the strings cannot be parsed.
// It simplifies safe initialization of global variables holding exchange rates.
func MustParseExchRate(base, quote, rate string) ExchangeRate {
	r, err := ParseExchRate(base, quote, rate)
	if err != nil {
		panic(fmt.Sprintf("ParseExchRate(%q, %q, %q) failed: %v", base, quote, rate, err))
	}
	return r
}

// Base returns the currency being exchanged.
func (r ExchangeRate) Base() Currency {
	return r.base
}

// Quote returns the currency being obtained in exchange for the base currency.
func (r ExchangeRate) Quote() Currency {
	return r.quote
}

// Rate returns how many units of the quote currency are given for one unit
// of the base currency.
func (r ExchangeRate) Rate() decimal.Decimal {
	return r.value
}

// CanConv returns true if [ExchangeRate.Conv] can be used to convert m,
// that is when m is unit-less or denominated in the base currency.
func (r ExchangeRate) CanConv(m Money) bool {
	c, ok := m.Curr()
	return !ok || c == r.Base()
}

// Conv returns m converted from the base currency to the quote currency.
// It follows [Money.Convert], so a unit-less m is returned unchanged.
//
// Conv returns an error if m is denominated in a currency other than the base
// currency, or if the result is out of range.
func (r ExchangeRate) Conv(m Money) (Money, error) {
	if !r.CanConv(m) {
		c, _ := m.Curr()
		return Money{}, fmt.Errorf("converting [%v %v] with %v: %w", c, m, r, errCurrencyMismatch)
	}
	return m.Convert(r.Quote(), r.Rate())
}

// Inv returns the inverse of the exchange rate.
// The inverse of USD/EUR 0.8 is EUR/USD 1.25.
func (r ExchangeRate) Inv() (ExchangeRate, error) {
	d := r.Rate()
	e, err := d.One().Quo(d)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("inverting %v: %w", r, err)
	}
	return NewExchRate(r.Quote(), r.Base(), e)
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the exchange rate, such as "USD/EUR 0.9".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r ExchangeRate) String() string {
	return r.Base().Code() + "/" + r.Quote().Code() + " " + r.Rate().String()
}
