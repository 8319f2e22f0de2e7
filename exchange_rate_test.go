package money

import (
	"errors"
	"testing"

	"github.com/govalues/decimal"
)

func TestExchangeRate_ZeroValue(t *testing.T) {
	got := ExchangeRate{}
	if got.Base() != XXX || got.Quote() != XXX {
		t.Errorf("ExchangeRate{} = %v, want XXX/XXX", got)
	}
	if !got.Rate().IsZero() {
		t.Errorf("ExchangeRate{}.Rate() = %v, want 0", got.Rate())
	}
}

func TestNewExchRate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			b, q Currency
			rate string
		}{
			{USD, EUR, "0.9"},
			{EUR, USD, "1.1111"},
			{USD, JPY, "150.25"},
			{USD, USD, "1"},
			{USD, USD, "1.000"},
			{GBP, XXX, "0.0000001"},
		}
		for _, tt := range tests {
			rate := decimal.MustParse(tt.rate)
			got, err := NewExchRate(tt.b, tt.q, rate)
			if err != nil {
				t.Errorf("NewExchRate(%v, %v, %v) failed: %v", tt.b, tt.q, rate, err)
				continue
			}
			if got.Base() != tt.b || got.Quote() != tt.q || got.Rate() != rate {
				t.Errorf("NewExchRate(%v, %v, %v) = %v", tt.b, tt.q, rate, got)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			b, q Currency
			rate string
		}{
			"zero":     {USD, EUR, "0"},
			"negative": {USD, EUR, "-0.9"},
			"same 1":   {USD, USD, "0.9"},
			"same 2":   {EUR, EUR, "1.0001"},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				rate := decimal.MustParse(tt.rate)
				_, err := NewExchRate(tt.b, tt.q, rate)
				if err == nil {
					t.Errorf("NewExchRate(%v, %v, %v) did not fail", tt.b, tt.q, rate)
				}
			})
		}
	})
}

func TestParseExchRate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			b, q, rate string
			want       string
		}{
			{"USD", "EUR", "0.9", "USD/EUR 0.9"},
			{"usd", "jpy", "150.25", "USD/JPY 150.25"},
			{"840", "978", "0.90", "USD/EUR 0.90"},
			{"GBP", "GBP", "1", "GBP/GBP 1"},
		}
		for _, tt := range tests {
			got, err := ParseExchRate(tt.b, tt.q, tt.rate)
			if err != nil {
				t.Errorf("ParseExchRate(%q, %q, %q) failed: %v", tt.b, tt.q, tt.rate, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("ParseExchRate(%q, %q, %q) = %q, want %q", tt.b, tt.q, tt.rate, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			b, q, rate string
		}{
			"base":          {"UUU", "EUR", "0.9"},
			"quote":         {"USD", "UUU", "0.9"},
			"rate":          {"USD", "EUR", "abc"},
			"zero rate":     {"USD", "EUR", "0"},
			"negative rate": {"USD", "EUR", "-1"},
			"same currency": {"USD", "USD", "2"},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := ParseExchRate(tt.b, tt.q, tt.rate)
				if err == nil {
					t.Errorf("ParseExchRate(%q, %q, %q) did not fail", tt.b, tt.q, tt.rate)
				}
			})
		}
	})

	t.Run("invalid currency", func(t *testing.T) {
		_, err := ParseExchRate("UUU", "EUR", "0.9")
		if !errors.Is(err, ErrInvalidCurrency) {
			t.Errorf("ParseExchRate(\"UUU\", \"EUR\", \"0.9\") = %v, want %v", err, ErrInvalidCurrency)
		}
	})
}

func TestMustParseExchRate(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseExchRate(\"USD\", \"EUR\", \"-1\") did not panic")
			}
		}()
		MustParseExchRate("USD", "EUR", "-1")
	})
}

func TestExchangeRate_CanConv(t *testing.T) {
	r := MustParseExchRate("USD", "EUR", "0.9")
	tests := []struct {
		m    Money
		want bool
	}{
		{MustParse("10").In(USD), true},
		{MustParse("10"), true},
		{MustParse("10").In(EUR), false},
		{MustParse("10").In(XXX), false},
	}
	for _, tt := range tests {
		if got := r.CanConv(tt.m); got != tt.want {
			t.Errorf("%v.CanConv(%v %v) = %v, want %v", r, tt.m.curr, tt.m, got, tt.want)
		}
	}
}

func TestExchangeRate_Conv(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			r        ExchangeRate
			m        Money
			raw      string
			wantCurr bool
		}{
			{MustParseExchRate("USD", "EUR", "0.9"), MustParse("100").In(USD), "90", true},
			{MustParseExchRate("USD", "JPY", "150.25"), MustParse("1.005").In(USD), "151.00125", true},
			{MustParseExchRate("EUR", "EUR", "1"), MustParse("7.777").In(EUR), "7.777", true},
			{MustParseExchRate("USD", "EUR", "0.9"), MustParse("100"), "100", false},
		}
		for _, tt := range tests {
			got, err := tt.r.Conv(tt.m)
			if err != nil {
				t.Errorf("%v.Conv(%v) failed: %v", tt.r, tt.m, err)
				continue
			}
			if got.Raw().Cmp(decimal.MustParse(tt.raw)) != 0 {
				t.Errorf("%v.Conv(%v).Raw() = %v, want %v", tt.r, tt.m, got.Raw(), tt.raw)
			}
			c, ok := got.Curr()
			if ok != tt.wantCurr {
				t.Errorf("%v.Conv(%v).HasCurr() = %v, want %v", tt.r, tt.m, ok, tt.wantCurr)
			}
			if ok && c != tt.r.Quote() {
				t.Errorf("%v.Conv(%v).Curr() = %v, want %v", tt.r, tt.m, c, tt.r.Quote())
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		r := MustParseExchRate("USD", "EUR", "0.9")
		m := MustParse("100").In(GBP)
		_, err := r.Conv(m)
		if !errors.Is(err, errCurrencyMismatch) {
			t.Errorf("%v.Conv(%v) = %v, want %v", r, m, err, errCurrencyMismatch)
		}
	})
}

func TestExchangeRate_Inv(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			b, q, rate string
			want       string
		}{
			{"USD", "EUR", "0.8", "1.25"},
			{"USD", "EUR", "2", "0.5"},
			{"USD", "USD", "1", "1"},
			{"EUR", "USD", "3", "0.3333333333333333333"},
		}
		for _, tt := range tests {
			r := MustParseExchRate(tt.b, tt.q, tt.rate)
			got, err := r.Inv()
			if err != nil {
				t.Errorf("%v.Inv() failed: %v", r, err)
				continue
			}
			if got.Base() != r.Quote() || got.Quote() != r.Base() {
				t.Errorf("%v.Inv() = %v, want swapped currencies", r, got)
			}
			want := decimal.MustParse(tt.want)
			if got.Rate().Cmp(want) != 0 {
				t.Errorf("%v.Inv().Rate() = %v, want %v", r, got.Rate(), want)
			}
		}
	})
}

func TestExchangeRate_String(t *testing.T) {
	tests := []struct {
		r    ExchangeRate
		want string
	}{
		{MustParseExchRate("USD", "EUR", "0.9"), "USD/EUR 0.9"},
		{MustParseExchRate("EUR", "JPY", "160.125"), "EUR/JPY 160.125"},
		{ExchangeRate{}, "XXX/XXX 0"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("ExchangeRate.String() = %q, want %q", got, tt.want)
		}
	}
}
