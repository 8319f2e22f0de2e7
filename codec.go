package money

import (
	"database/sql/driver"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// The serialized form of Money is a single number equal to the rounded amount.
// The currency is never encoded, so decoded values are always unit-less.
// To keep the currency, store it in a separate field of type [Currency] or
// [NullCurrency], which implement the JSON, text and SQL interfaces,
// and attach it back with [Money.In] after decoding.

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON writes the amount as a JSON number, such as 12.35.
// The currency is not encoded, see [NullCurrency.MarshalJSON] for a companion field.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (m Money) MarshalJSON() ([]byte, error) {
	f, ok := m.Float64()
	if !ok {
		return nil, fmt.Errorf("marshaling %v: %w", m, ErrAmountOverflow)
	}
	return strconv.AppendFloat(nil, f, 'f', -1, 64), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// The input must be a JSON number; it is converted like [NewFromFloat64]
// and the result is unit-less.
//
// For any other input, including null, UnmarshalJSON returns
// a [*json.UnmarshalTypeError]. When called by [json.Unmarshal], the error
// names the struct field holding the corrupted value.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
// [*json.UnmarshalTypeError]: https://pkg.go.dev/encoding/json#UnmarshalTypeError
func (m *Money) UnmarshalJSON(text []byte) error {
	kind := jsonKind(text)
	if kind != "number" {
		return &json.UnmarshalTypeError{Value: kind, Type: reflect.TypeOf(Money{})}
	}
	f, err := strconv.ParseFloat(string(text), 64)
	if err != nil {
		return &json.UnmarshalTypeError{Value: "number " + string(text), Type: reflect.TypeOf(Money{})}
	}
	v, err := NewFromFloat64(f)
	if err != nil {
		return &json.UnmarshalTypeError{Value: "number " + string(text), Type: reflect.TypeOf(Money{})}
	}
	*m = v
	return nil
}

// jsonKind names the JSON type of text the way encoding/json does in its errors.
func jsonKind(text []byte) string {
	if len(text) == 0 {
		return "empty input"
	}
	switch c := text[0]; {
	case c == 'n':
		return "null"
	case c == 't' || c == 'f':
		return "bool"
	case c == '"':
		return "string"
	case c == '{':
		return "object"
	case c == '[':
		return "array"
	case c == '-' || (c >= '0' && c <= '9'):
		return "number"
	}
	return "invalid input"
}

// Scan implements the [sql.Scanner] interface.
// Floats and integers are converted like [NewFromFloat64] and [NewFromInt64],
// strings and byte slices like [Parse].
// The result is unit-less.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (m *Money) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case float64:
		*m, err = NewFromFloat64(value)
	case int64:
		*m, err = NewFromInt64(value)
	case string:
		*m, err = Parse(value)
	case []byte:
		*m, err = Parse(string(value))
	case nil:
		err = fmt.Errorf("%T does not support null values, use *%T", Money{}, Money{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Money{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// Value returns the amount as a float64; the currency is not stored.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (m Money) Value() (driver.Value, error) {
	f, ok := m.Float64()
	if !ok {
		return nil, fmt.Errorf("converting %v to float: %w", m, ErrAmountOverflow)
	}
	return f, nil
}

// BSON element types, see https://bsonspec.org/spec.html
const (
	bsonDouble = 1
	bsonInt32  = 16
	bsonInt64  = 18
)

// UnmarshalBSONValue implements the [v2/bson.ValueUnmarshaler] interface.
// Doubles, 32-bit and 64-bit integers are supported.
// The byte order of the input data must be little-endian.
// The result is unit-less.
//
// [v2/bson.ValueUnmarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueUnmarshaler
func (m *Money) UnmarshalBSONValue(typ byte, data []byte) error {
	var err error
	switch typ {
	case bsonDouble:
		if len(data) != 8 {
			err = fmt.Errorf("%w: invalid data length %v", ErrInvalidNumber, len(data))
			break
		}
		*m, err = NewFromFloat64(math.Float64frombits(binary.LittleEndian.Uint64(data)))
	case bsonInt32:
		if len(data) != 4 {
			err = fmt.Errorf("%w: invalid data length %v", ErrInvalidNumber, len(data))
			break
		}
		*m, err = NewFromInt64(int64(int32(binary.LittleEndian.Uint32(data)))) //nolint:gosec
	case bsonInt64:
		if len(data) != 8 {
			err = fmt.Errorf("%w: invalid data length %v", ErrInvalidNumber, len(data))
			break
		}
		*m, err = NewFromInt64(int64(binary.LittleEndian.Uint64(data))) //nolint:gosec
	default:
		err = fmt.Errorf("BSON type %d is not supported", typ)
	}
	if err != nil {
		err = fmt.Errorf("converting from BSON type %d to %T: %w", typ, Money{}, err)
	}
	return err
}

// MarshalBSONValue implements the [v2/bson.ValueMarshaler] interface.
// MarshalBSONValue always writes the amount as a BSON double.
//
// [v2/bson.ValueMarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueMarshaler
func (m Money) MarshalBSONValue() (typ byte, data []byte, err error) {
	f, ok := m.Float64()
	if !ok {
		return 0, nil, fmt.Errorf("marshaling %v: %w", m, ErrAmountOverflow)
	}
	data = make([]byte, 8)
	binary.LittleEndian.PutUint64(data, math.Float64bits(f))
	return bsonDouble, data, nil
}
