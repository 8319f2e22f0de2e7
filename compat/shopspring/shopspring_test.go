package shopspring

import (
	"errors"
	"testing"

	"github.com/moneykit/money"
	ssdecimal "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDecimal(t *testing.T) {
	tests := []struct {
		in, raw, amount string
	}{
		{"0", "0", "0.00"},
		{"1.005", "1.005", "1.00"},
		{"1.015", "1.015", "1.02"},
		{"-12.346", "-12.346", "-12.35"},
		{"1234567.8", "1234567.8", "1234567.80"},
	}
	for _, tt := range tests {
		m, err := FromDecimal(ssdecimal.RequireFromString(tt.in))
		require.NoError(t, err)
		assert.Equal(t, tt.raw, m.Raw().String())
		assert.Equal(t, tt.amount, m.String())
		assert.False(t, m.HasCurr())
	}
}

func TestFromDecimal_Error(t *testing.T) {
	_, err := FromDecimal(ssdecimal.RequireFromString("100000000000000000"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, money.ErrAmountOverflow))

	_, err = FromDecimal(ssdecimal.RequireFromString("1e25"))
	assert.Error(t, err)
}

func TestFromDecimalIn(t *testing.T) {
	m, err := FromDecimalIn(ssdecimal.RequireFromString("9.99"), money.EUR)
	require.NoError(t, err)
	c, ok := m.Curr()
	assert.True(t, ok)
	assert.Equal(t, money.EUR, c)

	_, err = FromDecimalIn(ssdecimal.RequireFromString("1e25"), money.EUR)
	assert.Error(t, err)
}

func TestAmountAndRaw(t *testing.T) {
	m := money.MustParse("2.675").In(money.USD)
	assert.True(t, ssdecimal.RequireFromString("2.68").Equal(Amount(m)))
	assert.Equal(t, "2.68", Amount(m).StringFixed(2))
	assert.True(t, ssdecimal.RequireFromString("2.675").Equal(Raw(m)))
}

func TestRoundTrip(t *testing.T) {
	d := ssdecimal.RequireFromString("-0.123456789")
	m, err := FromDecimal(d)
	require.NoError(t, err)
	assert.True(t, d.Equal(Raw(m)))
}
