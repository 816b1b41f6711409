package domain

import "strings"

// DefaultCurrencyCode is used when no currency is configured or the
// configured one is unknown.
const DefaultCurrencyCode = "EUR"

// Currency is a display-only currency. It never affects calculations.
type Currency struct {
	Code   string `json:"code" yaml:"code"`
	Symbol string `json:"symbol" yaml:"symbol"`
	Name   string `json:"name" yaml:"name"`
}

// Currencies lists the supported currencies.
var Currencies = []Currency{
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "CHF", Symbol: "CHF", Name: "Swiss Franc"},
	{Code: "CAD", Symbol: "$", Name: "Canadian Dollar"},
	{Code: "TND", Symbol: "DT", Name: "Tunisian Dinar"},
	{Code: "MAD", Symbol: "DH", Name: "Moroccan Dirham"},
	{Code: "DZD", Symbol: "DA", Name: "Algerian Dinar"},
}

// LookupCurrency finds a currency by code, falling back to EUR.
func LookupCurrency(code string) Currency {
	if currency, ok := FindCurrency(code); ok {
		return currency
	}
	currency, _ := FindCurrency(DefaultCurrencyCode)
	return currency
}

// FindCurrency finds a currency by code, case-insensitively.
func FindCurrency(code string) (Currency, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	for _, c := range Currencies {
		if c.Code == normalized {
			return c, true
		}
	}
	return Currency{}, false
}
