package config

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is a display currency. Only the symbol affects formatting.
type Currency struct {
	Name   string `toml:"name"`
	Code   string `toml:"code"`
	Symbol string `toml:"symbol"`
}

// DefaultCurrency is used when the configured code is unknown.
var DefaultCurrency = Currency{Name: "Dólar estadounidense", Code: "USD", Symbol: "$"}

var builtinCurrencies = []Currency{
	DefaultCurrency,
	{Name: "Euro", Code: "EUR", Symbol: "€"},
	{Name: "Peso dominicano", Code: "DOP", Symbol: "RD$"},
	{Name: "Peso mexicano", Code: "MXN", Symbol: "MX$"},
}

// Currencies returns the built-in currencies followed by custom ones.
func Currencies(custom []Currency) []Currency {
	all := make([]Currency, 0, len(builtinCurrencies)+len(custom))
	all = append(all, builtinCurrencies...)
	return append(all, custom...)
}

// LookupCurrency finds a currency by code, case-insensitively.
// Built-in codes take precedence over custom ones.
func LookupCurrency(code string, custom []Currency) (Currency, bool) {
	for _, c := range Currencies(custom) {
		if strings.EqualFold(c.Code, code) {
			return c, true
		}
	}
	return Currency{}, false
}

// FormatAmount renders v with the currency symbol, thousands separators and
// two decimals, e.g. "RD$1,234.50". Negative values get a leading minus.
func FormatAmount(v float64, cur Currency) string {
	d := decimal.NewFromFloat(v).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	s := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	return sign + cur.Symbol + groupThousands(intPart) + "." + frac
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
