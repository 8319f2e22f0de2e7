package money

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/govalues/decimal"
)

// Scale is the number of digits after the decimal point in a rounded amount.
const Scale = 2

// floatDigits is the number of significant decimal digits kept from a float64.
const floatDigits = 17

var (
	// ErrInvalidNumber is returned when a string or a float is not a valid number.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrZeroDivisor is returned by [Money.Quo] when the divisor rounds to zero.
	ErrZeroDivisor = errors.New("divisor rounds to zero")
	// ErrAmountOverflow is returned when a value cannot be represented
	// with [Scale] digits after the decimal point.
	ErrAmountOverflow = errors.New("amount overflow")

	errCurrencyMismatch = errors.New("currency mismatch")
)

// Money type represents a monetary value that is optionally tagged with a currency.
// Its zero value corresponds to an amount of 0.00 without a currency.
//
// Money keeps two views of the same value:
//   - the raw value, an unrounded decimal accumulated by arithmetic;
//   - the amount, the raw value rounded to [Scale] digits using
//     [rounding half to even] (banker's rounding), see [Money.Amount].
//
// Comparison, equality, hashing, sign predicates and string conversion are
// defined on the amount and ignore the currency.
// Use [Money.Equal] or [Money.Cmp] instead of == to compare values.
//
// Money is designed to be safe for concurrent use by multiple goroutines.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
type Money struct {
	value decimal.Decimal // raw value, never rounded
	curr  NullCurrency    // absent for unit-less amounts
}

// newMoneyUnsafe creates a new money value without checking the range.
// Use it only if you are absolutely sure that the arguments are valid.
func newMoneyUnsafe(d decimal.Decimal, curr NullCurrency) Money {
	return Money{value: d, curr: curr}
}

// newMoneySafe creates a new money value and checks that its amount can be rounded.
func newMoneySafe(d decimal.Decimal, curr NullCurrency) (Money, error) {
	if _, err := round(d); err != nil {
		return Money{}, err
	}
	return newMoneyUnsafe(d, curr), nil
}

// round rounds d half to even and zero-pads it to exactly [Scale] digits.
// It fails when the integer part leaves no room for the fractional digits.
func round(d decimal.Decimal) (decimal.Decimal, error) {
	d = d.Round(Scale).Pad(Scale)
	if d.Scale() != Scale {
		return decimal.Decimal{}, fmt.Errorf("rounding %v to %v digits: %w", d, Scale, ErrAmountOverflow)
	}
	return d, nil
}

// NewFromDecimal returns a unit-less money value with the raw value d.
// The decimal is stored as is, without rounding.
// See also methods [Money.Raw] and [Money.In].
//
// NewFromDecimal returns an error if the integer part of d has more than
// ([decimal.MaxPrec] - [Scale]) digits.
func NewFromDecimal(d decimal.Decimal) (Money, error) {
	m, err := newMoneySafe(d, NullCurrency{})
	if err != nil {
		return Money{}, fmt.Errorf("converting decimal: %w", err)
	}
	return m, nil
}

// MustNewFromDecimal is like [NewFromDecimal] but panics if the value cannot be constructed.
func MustNewFromDecimal(d decimal.Decimal) Money {
	m, err := NewFromDecimal(d)
	if err != nil {
		panic(fmt.Sprintf("NewFromDecimal(%v) failed: %v", d, err))
	}
	return m
}

// NewFromInt64 returns a unit-less money value equal to the whole number n.
//
// NewFromInt64 returns an error if n has more than ([decimal.MaxPrec] - [Scale]) digits.
func NewFromInt64(n int64) (Money, error) {
	d, err := decimal.New(n, 0)
	if err != nil {
		return Money{}, fmt.Errorf("converting integer: %w", err)
	}
	m, err := newMoneySafe(d, NullCurrency{})
	if err != nil {
		return Money{}, fmt.Errorf("converting integer: %w", err)
	}
	return m, nil
}

// NewFromFloat64 converts a float to a unit-less money value.
// The float is converted using 17 significant digits, which is all that
// a float64 can hold, so 12.345 becomes 12.345000000000001 and rounds to 12.35.
// This is the only place where binary floating-point error can enter:
// once converted, the value is exact.
// See also method [Money.Float64].
//
// NewFromFloat64 returns an error if:
//   - the float is a special value (NaN or Inf);
//   - the integer part of the result has more than ([decimal.MaxPrec] - [Scale]) digits.
func NewFromFloat64(f float64) (Money, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Money{}, fmt.Errorf("converting float: special value %v: %w", f, ErrInvalidNumber)
	}
	s := strconv.FormatFloat(f, 'g', floatDigits, 64)
	d, err := decimal.Parse(s)
	if err != nil {
		return Money{}, fmt.Errorf("converting float: %w: %w", ErrAmountOverflow, err)
	}
	m, err := newMoneySafe(d, NullCurrency{})
	if err != nil {
		return Money{}, fmt.Errorf("converting float: %w", err)
	}
	return m, nil
}

// Parse converts a numeric string to a unit-less money value.
// The string is parsed as an exact decimal and does not go through float64,
// so Parse("12.345") keeps 12.345 and rounds to 12.34, unlike [NewFromFloat64].
// The string may carry more fractional digits than [Scale]: they are kept in
// the raw value and only rounded by [Money.Amount].
// Digits beyond [decimal.MaxPrec] significant digits are rounded half to even.
//
// Parse returns an error wrapping [ErrInvalidNumber] if the string is not a
// valid decimal number, and [ErrAmountOverflow] if its integer part is too long.
func Parse(s string) (Money, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return Money{}, fmt.Errorf("parsing %q: %w: %w", s, ErrInvalidNumber, err)
	}
	m, err := newMoneySafe(d, NullCurrency{})
	if err != nil {
		return Money{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return m, nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding money values.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return m
}

// In returns a copy of m tagged with the currency c.
// The raw value is not changed; use [Money.Convert] to apply an exchange rate.
func (m Money) In(c Currency) Money {
	return newMoneyUnsafe(m.value, NullCurrency{Currency: c, Valid: true})
}

// Curr returns the currency of m.
// If m is unit-less, Curr returns [XXX] and false.
func (m Money) Curr() (Currency, bool) {
	return m.curr.Currency, m.curr.Valid
}

// HasCurr returns true if m is tagged with a currency.
func (m Money) HasCurr() bool {
	return m.curr.Valid
}

// Raw returns the unrounded value of m.
func (m Money) Raw() decimal.Decimal {
	return m.value
}

// Amount returns the raw value rounded to exactly [Scale] digits after
// the decimal point using [rounding half to even] (banker's rounding).
// The result always has scale [Scale], so 5 becomes 5.00.
//
// Amount panics if the raw value cannot be rounded without losing integer digits.
// Values built by this package never trigger the panic.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (m Money) Amount() decimal.Decimal {
	d, err := round(m.value)
	if err != nil {
		panic(fmt.Sprintf("Amount() failed: %v", err))
	}
	return d
}

// Float64 returns the nearest binary floating-point number to the amount.
// This conversion may lose data, as float64 has a smaller precision
// than the decimal type.
func (m Money) Float64() (f float64, ok bool) {
	return m.Amount().Float64()
}

// Sign returns:
//
//	-1 if amount < 0
//	 0 if amount = 0
//	+1 if amount > 0
func (m Money) Sign() int {
	d := m.Amount()
	if d.IsZero() {
		return 0
	}
	return d.Sign()
}

// IsZero returns:
//
//	true  if amount = 0
//	false otherwise
//
// A non-zero raw value may still have a zero amount, for example 0.004.
func (m Money) IsZero() bool {
	return m.Sign() == 0
}

// IsPositive returns:
//
//	true  if amount >= 0
//	false otherwise
//
// Note that zero counts as positive.
// See also method [Money.IsGreaterThanZero].
func (m Money) IsPositive() bool {
	return m.Sign() >= 0
}

// IsNegative returns:
//
//	true  if amount < 0
//	false otherwise
func (m Money) IsNegative() bool {
	return m.Sign() < 0
}

// IsGreaterThanZero returns:
//
//	true  if amount > 0
//	false otherwise
func (m Money) IsGreaterThanZero() bool {
	return m.Sign() > 0
}

// Neg returns a money value with the opposite sign and the same currency.
func (m Money) Neg() Money {
	return newMoneyUnsafe(m.value.Neg(), m.curr)
}

// Abs returns the absolute value of m with the same currency.
func (m Money) Abs() Money {
	return newMoneyUnsafe(m.value.Abs(), m.curr)
}

// Add returns the sum of the raw values of a and b.
// Currencies are ignored and the result is unit-less.
//
// Add returns an error if the integer part of the result has more than
// ([decimal.MaxPrec] - [Scale]) digits.
func (a Money) Add(b Money) (Money, error) {
	c, err := a.add(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Money) add(b Money) (Money, error) {
	d, err := a.value.Add(b.value)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %w", ErrAmountOverflow, err)
	}
	return newMoneySafe(d, NullCurrency{})
}

// Sub returns the difference between the raw values of a and b.
// Currencies are ignored and the result is unit-less.
//
// Sub returns an error if the integer part of the result has more than
// ([decimal.MaxPrec] - [Scale]) digits.
func (a Money) Sub(b Money) (Money, error) {
	c, err := a.sub(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Money) sub(b Money) (Money, error) {
	d, err := a.value.Sub(b.value)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %w", ErrAmountOverflow, err)
	}
	return newMoneySafe(d, NullCurrency{})
}

// Mul returns the product of the raw values of a and b.
// Currencies are ignored and the result is unit-less.
//
// Mul returns an error if the integer part of the result has more than
// ([decimal.MaxPrec] - [Scale]) digits.
func (a Money) Mul(b Money) (Money, error) {
	c, err := a.mul(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Money) mul(b Money) (Money, error) {
	d, err := a.value.Mul(b.value)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %w", ErrAmountOverflow, err)
	}
	return newMoneySafe(d, NullCurrency{})
}

// Quo returns the (possibly rounded) quotient of the raw values of a and b.
// Currencies are ignored and the result is unit-less.
//
// The divisor is tested on its amount, while the division uses its raw value:
// dividing by 0.001 fails even though the raw value is not zero.
//
// Quo returns an error if:
//   - the amount of b is zero, see [ErrZeroDivisor];
//   - the integer part of the result has more than ([decimal.MaxPrec] - [Scale]) digits.
func (a Money) Quo(b Money) (Money, error) {
	c, err := a.quo(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Money) quo(b Money) (Money, error) {
	if b.IsZero() {
		return Money{}, ErrZeroDivisor
	}
	d, err := a.value.Quo(b.value)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %w", ErrAmountOverflow, err)
	}
	return newMoneySafe(d, NullCurrency{})
}

// Cmp compares the amounts of a and b and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Raw values and currencies are ignored.
func (a Money) Cmp(b Money) int {
	return a.Amount().Cmp(b.Amount())
}

// Equal returns true if a and b have the same amount.
// Raw values and currencies are ignored, so 10 USD equals 10 EUR.
func (a Money) Equal(b Money) bool {
	return a.Cmp(b) == 0
}

// Less returns true if the amount of a is less than the amount of b.
func (a Money) Less(b Money) bool {
	return a.Cmp(b) < 0
}

// Hash returns a hash of the amount.
// Values that are [Money.Equal] have the same hash.
func (m Money) Hash() uint64 {
	d := m.Amount()
	var buf [9]byte
	if m.IsNegative() {
		buf[0] = 1
	}
	binary.BigEndian.PutUint64(buf[1:], d.Coef())
	return xxhash.Sum64(buf[:])
}

// Convert returns m converted to the currency to at the given rate.
// The raw value is multiplied by the rate without rounding.
//
// A unit-less m is returned unchanged: its raw value is kept and it is not
// tagged with the currency to.
// See also [ExchangeRate.Conv].
//
// Convert returns an error if the integer part of the result has more than
// ([decimal.MaxPrec] - [Scale]) digits.
func (m Money) Convert(to Currency, rate decimal.Decimal) (Money, error) {
	if !m.curr.Valid {
		return newMoneyUnsafe(m.value, NullCurrency{}), nil
	}
	d, err := m.value.Mul(rate)
	if err != nil {
		return Money{}, fmt.Errorf("converting [%v %v] to %v at %v: %w: %w", m.curr.Currency, m, to, rate, ErrAmountOverflow, err)
	}
	c, err := newMoneySafe(d, NullCurrency{Currency: to, Valid: true})
	if err != nil {
		return Money{}, fmt.Errorf("converting [%v %v] to %v at %v: %w", m.curr.Currency, m, to, rate, err)
	}
	return c, nil
}

// String implements the [fmt.Stringer] interface and returns the amount
// as a plain decimal string with exactly [Scale] fractional digits,
// such as "12.35" or "-0.50".
// The currency is not included and the output does not depend on locale.
// See also methods [Money.Format] and [Money.Localize].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money) String() string {
	return m.Amount().String()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example | Description           |
//	| ------ | ------- | --------------------- |
//	| %s, %v | 5.68    | Amount                |
//	| %q     | "5.68"  | Quoted amount         |
//	| %f     | 5.68    | Amount                |
//	| %d     | 568     | Amount in minor units |
//	| %c     | USD     | Currency code         |
//
// The '-' format flag can be used with all verbs.
// The '+', ' ', '0' format flags can be used with all verbs except %c.
//
// Precision is only supported for the %f verb.
// The default precision is [Scale].
// The %c verb prints nothing for unit-less values.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (m Money) Format(state fmt.State, verb rune) {
	d := m.Amount()

	var text string
	switch verb {
	case 'c', 'C':
		if m.curr.Valid {
			text = m.curr.Currency.Code()
		}
		text = pad(state, text, false)
	case 'd', 'D':
		text = signed(state, d, strconv.FormatUint(d.Coef(), 10))
		text = pad(state, text, true)
	case 'f', 'F':
		if p, ok := state.Precision(); ok {
			switch {
			case p < Scale:
				d = d.Round(p)
			case p > Scale:
				d = d.Pad(p)
			}
		}
		text = signed(state, d, d.Abs().String())
		text = pad(state, text, true)
	case 'q', 'Q':
		text = signed(state, d, d.Abs().String())
		text = pad(state, `"`+text+`"`, true)
	default:
		text = signed(state, d, d.Abs().String())
		text = pad(state, text, true)
	}

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'd', 'D', 'c', 'C':
		state.Write([]byte(text))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(money.Money="))
		state.Write([]byte(text))
		state.Write([]byte(")"))
	}
}

// signed prefixes the digits of d with its arithmetic sign.
func signed(state fmt.State, d decimal.Decimal, digits string) string {
	switch {
	case d.IsNeg() && !d.IsZero():
		return "-" + digits
	case state.Flag('+'):
		return "+" + digits
	case state.Flag(' '):
		return " " + digits
	}
	return digits
}

// pad widens text to the width of the state.
// Numeric text is padded with zeros after any leading quote or sign when the '0' flag is set.
func pad(state fmt.State, text string, numeric bool) string {
	w, ok := state.Width()
	if !ok || w <= len(text) {
		return text
	}
	n := w - len(text)
	switch {
	case state.Flag('-'):
		return text + strings.Repeat(" ", n)
	case numeric && state.Flag('0'):
		i := 0
		for i < len(text) && strings.IndexByte(`"+- `, text[i]) >= 0 {
			i++
		}
		return text[:i] + strings.Repeat("0", n) + text[i:]
	}
	return strings.Repeat(" ", n) + text
}
