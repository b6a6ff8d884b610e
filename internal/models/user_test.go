package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_Validate(t *testing.T) {
	valid := User{Name: "Alice", PreferredCurrency: CurrencyEUR}
	assert.NoError(t, valid.Validate())

	noName := valid
	noName.Name = ""
	assert.Error(t, noName.Validate())

	badCurrency := valid
	badCurrency.PreferredCurrency = "XYZ"
	assert.Error(t, badCurrency.Validate())
}

func TestUser_CurrencySymbol(t *testing.T) {
	user := User{Name: "Alice", PreferredCurrency: CurrencyGBP}
	assert.Equal(t, "£", user.CurrencySymbol())
}
