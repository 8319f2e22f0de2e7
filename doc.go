/*
Package money implements exact monetary values that are optionally tagged
with a currency.
It leverages the [decimal] package's capabilities for handling decimal floating-point
numbers and combines it with a [Currency] type for representing currencies.

# Features

  - Immutable monetary values, ensuring safe usage across multiple goroutines
  - Unrounded accumulation with rounding only at display and comparison
  - Banker's rounding to two fractional digits
  - Arithmetic and comparison operations between monetary values
  - Conversion of monetary values using caller-supplied exchange rates
  - Locale-aware formatting and single-number serialization

# Representation

A [Money] value consists of a raw decimal.Decimal value and an optional [Currency].
The raw value is never rounded: sums, differences, products and quotients
are computed on raw values, so long chains of operations do not accumulate
rounding error.
The amount, returned by [Money.Amount], is the raw value rounded to [Scale]
digits using half-to-even rounding.
Comparison, equality, hashing, sign predicates and string conversion use the
amount and ignore the currency.

The [Currency] type is implemented as an integer index into an in-memory
array containing the ISO 4217 code, the numeric code and a display symbol.

# Currencies

Arithmetic never consults currencies: results of [Money.Add], [Money.Sub],
[Money.Mul] and [Money.Quo] are unit-less.
[Money.Convert] multiplies the raw value by a rate and tags the result with the
target currency, except for unit-less values, which are returned unchanged
and stay unit-less.
Serialized values do not carry a currency either.

# Supported Ranges

The raw value can hold up to 19 significant digits.
Since the amount always has two fractional digits, the integer part is limited
to 17 digits.
For more information, refer to the Supported Ranges section of the [decimal]
package description.

# Errors

Constructors return errors when the input is not a number or is out of range.
[Money.Quo] returns [ErrZeroDivisor] when the divisor's amount is zero.
Operations whose result cannot be rounded return [ErrAmountOverflow].
The package never logs; all errors are returned to the caller.
*/
package money
