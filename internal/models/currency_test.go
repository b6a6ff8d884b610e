package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency_Symbol(t *testing.T) {
	assert.Equal(t, "€", CurrencyEUR.Symbol())
	assert.Equal(t, "$", CurrencyUSD.Symbol())
	assert.Equal(t, "£", CurrencyGBP.Symbol())
	assert.Equal(t, "zł", CurrencyPLN.Symbol())
}

func TestCurrency_String(t *testing.T) {
	assert.Equal(t, "Euro (€)", CurrencyEUR.String())
}

func TestCurrency_UnknownCodeFallsBackToCode(t *testing.T) {
	unknown := Currency("XYZ")
	assert.Equal(t, "XYZ", unknown.Symbol())
	assert.Equal(t, "XYZ", unknown.DisplayName())
}

func TestIsValidCurrency(t *testing.T) {
	for _, currency := range AllCurrencies() {
		assert.True(t, IsValidCurrency(currency), "expected %s to be valid", currency)
	}
	assert.False(t, IsValidCurrency("XYZ"))
	assert.False(t, IsValidCurrency(""))
}

func TestAllCurrencies_IncludesDefault(t *testing.T) {
	assert.Contains(t, AllCurrencies(), DefaultCurrency)
	assert.Len(t, AllCurrencies(), 10)
}
