package models

import "fmt"

// Currency is a user's preferred display currency.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
	CurrencyCHF Currency = "CHF"
	CurrencyAUD Currency = "AUD"
	CurrencyCAD Currency = "CAD"
	CurrencySEK Currency = "SEK"
	CurrencyNOK Currency = "NOK"
	CurrencyPLN Currency = "PLN"
)

// DefaultCurrency is assigned to users created without an explicit preference.
const DefaultCurrency = CurrencyEUR

type currencyInfo struct {
	symbol      string
	displayName string
}

var currencies = map[Currency]currencyInfo{
	CurrencyEUR: {"€", "Euro"},
	CurrencyUSD: {"$", "US Dollar"},
	CurrencyGBP: {"£", "British Pound"},
	CurrencyJPY: {"¥", "Japanese Yen"},
	CurrencyCHF: {"CHF", "Swiss Franc"},
	CurrencyAUD: {"A$", "Australian Dollar"},
	CurrencyCAD: {"C$", "Canadian Dollar"},
	CurrencySEK: {"kr", "Swedish Krona"},
	CurrencyNOK: {"kr", "Norwegian Krone"},
	CurrencyPLN: {"zł", "Polish Złoty"},
}

// Symbol returns the display symbol for the currency, e.g. "€" for EUR.
func (c Currency) Symbol() string {
	if info, ok := currencies[c]; ok {
		return info.symbol
	}
	return string(c)
}

// DisplayName returns the human-readable name, e.g. "Euro".
func (c Currency) DisplayName() string {
	if info, ok := currencies[c]; ok {
		return info.displayName
	}
	return string(c)
}

func (c Currency) String() string {
	return fmt.Sprintf("%s (%s)", c.DisplayName(), c.Symbol())
}

// IsValidCurrency checks if the currency code is one of the supported codes.
func IsValidCurrency(c Currency) bool {
	_, ok := currencies[c]
	return ok
}

// AllCurrencies returns the supported currencies in a stable order.
func AllCurrencies() []Currency {
	return []Currency{
		CurrencyEUR,
		CurrencyUSD,
		CurrencyGBP,
		CurrencyJPY,
		CurrencyCHF,
		CurrencyAUD,
		CurrencyCAD,
		CurrencySEK,
		CurrencyNOK,
		CurrencyPLN,
	}
}
