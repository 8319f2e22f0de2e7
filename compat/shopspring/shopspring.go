// Package shopspring converts between [money.Money] and
// [github.com/shopspring/decimal] values, for code bases that keep amounts
// in shopspring decimals.
package shopspring

import (
	"fmt"

	"github.com/govalues/decimal"
	"github.com/moneykit/money"
	ssdecimal "github.com/shopspring/decimal"
)

// FromDecimal returns a unit-less money value with the raw value d.
// Digits beyond 19 significant digits are rounded half to even.
//
// FromDecimal returns an error if the integer part of d is out of range.
func FromDecimal(d ssdecimal.Decimal) (money.Money, error) {
	v, err := decimal.Parse(d.String())
	if err != nil {
		return money.Money{}, fmt.Errorf("converting %v: %w", d, err)
	}
	m, err := money.NewFromDecimal(v)
	if err != nil {
		return money.Money{}, fmt.Errorf("converting %v: %w", d, err)
	}
	return m, nil
}

// FromDecimalIn is like [FromDecimal] but tags the result with the currency c.
func FromDecimalIn(d ssdecimal.Decimal, c money.Currency) (money.Money, error) {
	m, err := FromDecimal(d)
	if err != nil {
		return money.Money{}, err
	}
	return m.In(c), nil
}

// Amount returns the rounded amount of m, see [money.Money.Amount].
func Amount(m money.Money) ssdecimal.Decimal {
	return ssdecimal.RequireFromString(m.Amount().String())
}

// Raw returns the unrounded value of m, see [money.Money.Raw].
func Raw(m money.Money) ssdecimal.Decimal {
	return ssdecimal.RequireFromString(m.Raw().String())
}
