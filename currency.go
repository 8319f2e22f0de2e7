package money

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
)

//go:generate go run scripts/currency/codegen.go

// Currency type represents a currency in the global financial system.
// The zero value is [XXX], the ISO 4217 code for "no currency".
//
// Currency is implemented as an integer index into an in-memory array that
// stores properties defined by [ISO 4217], such as the alphabetic and numeric
// codes, together with a display symbol.
// Currency values are small, copyable and comparable with ==, which makes
// them safe for concurrent use by multiple goroutines.
//
// When persisting a currency value, use the alphabetic code returned by
// the [Currency.Code] method, rather than the integer index, as mapping between
// index and a particular currency may change in future versions.
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
type Currency uint8

// ErrInvalidCurrency is returned when a string is not a known currency code.
var ErrInvalidCurrency = errors.New("invalid currency")

// ParseCurr converts a string to currency.
// The input string must be in one of the following formats:
//
//	USD
//	usd
//	840
//
// ParseCurr returns an error if the string does not represent a known currency code.
func ParseCurr(curr string) (Currency, error) {
	c, ok := currLookup[curr]
	if !ok {
		return XXX, fmt.Errorf("%w %q", ErrInvalidCurrency, curr)
	}
	return c, nil
}

// MustParseCurr is like [ParseCurr] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(curr string) Currency {
	c, err := ParseCurr(curr)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", curr, err))
	}
	return c
}

// Code returns the [3-letter code] assigned to the currency by the ISO 4217 standard.
// The code is the identity of the currency and is the key used by formatters.
//
// [3-letter code]: https://en.wikipedia.org/wiki/ISO_4217#National_currencies
func (c Currency) Code() string {
	if int(c) >= len(codeLookup) {
		return codeLookup[XXX]
	}
	return codeLookup[c]
}

// Num returns the [3-digit code] assigned to the currency by the ISO 4217 standard.
//
// [3-digit code]: https://en.wikipedia.org/wiki/ISO_4217#Numeric_codes
func (c Currency) Num() string {
	if int(c) >= len(numLookup) {
		return numLookup[XXX]
	}
	return numLookup[c]
}

// Symbol returns the display symbol of the currency, such as "$" or "€".
// Symbols are not unique: several currencies share "kr" or "$"-like signs,
// so use [Currency.Code] whenever the currency must be identified.
func (c Currency) Symbol() string {
	if int(c) >= len(symbolLookup) {
		return symbolLookup[XXX]
	}
	return symbolLookup[c]
}

// String method implements the [fmt.Stringer] interface and returns
// the alphabetic code of the currency.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// unmarshalCode parses a stored currency code, see [ParseCurr].
func (c *Currency) unmarshalCode(code string) error {
	curr, err := ParseCurr(code)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	*c = curr
	return nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// It accepts a JSON string in any format understood by [ParseCurr].
// A JSON null leaves c unchanged.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Currency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if n := len(text); n >= 2 && text[0] == '"' && text[n-1] == '"' {
		text = text[1 : n-1]
	}
	return c.unmarshalCode(string(text))
}

// MarshalJSON implements the [json.Marshaler] interface.
// The currency is written as its alphabetic code in a JSON string, such as "USD".
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, c.Code()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	return c.unmarshalCode(string(text))
}

// MarshalText implements the [encoding.TextMarshaler] interface
// and returns the alphabetic code.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// Scan implements the [sql.Scanner] interface.
// The column must hold a code understood by [ParseCurr].
// Use [NullCurrency] for nullable columns.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (c *Currency) Scan(value any) error {
	switch value := value.(type) {
	case string:
		return c.unmarshalCode(value)
	case []byte:
		return c.unmarshalCode(string(value))
	case nil:
		return fmt.Errorf("scanning NULL into %T: use %T", XXX, NullCurrency{})
	}
	return fmt.Errorf("scanning %T into %T: unsupported type", value, XXX)
}

// Value implements the [driver.Valuer] interface and stores the alphabetic code.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (c Currency) Value() (driver.Value, error) {
	return c.Code(), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description     |
//	| ---------- | ------- | --------------- |
//	| %c, %s, %v | USD     | Currency code   |
//	| %q         | "USD"   | Quoted code     |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c Currency) Format(state fmt.State, verb rune) {
	text := c.Code()
	if verb == 'q' || verb == 'Q' {
		text = `"` + text + `"`
	}
	text = pad(state, text, false)

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'c', 'C':
		state.Write([]byte(text))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(money.Currency="))
		state.Write([]byte(text))
		state.Write([]byte(")"))
	}
}

// NullCurrency represents a currency that can be absent.
// Its zero value is absent.
// [Money] uses it to tag amounts that have no currency at all.
type NullCurrency struct {
	Currency Currency
	Valid    bool // Valid is true if Currency is set
}

// Scan implements the [sql.Scanner] interface. NULL makes n absent.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullCurrency) Scan(value any) error {
	if value == nil {
		*n = NullCurrency{}
		return nil
	}
	n.Valid = true
	return n.Currency.Scan(value)
}

// Value implements the [driver.Valuer] interface. An absent currency is stored as NULL.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullCurrency) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Currency.Value()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface. A JSON null makes n absent.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *NullCurrency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		*n = NullCurrency{}
		return nil
	}
	n.Valid = true
	return n.Currency.UnmarshalJSON(text)
}

// MarshalJSON implements the [json.Marshaler] interface. An absent currency is written as null.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n NullCurrency) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Currency.MarshalJSON()
}
