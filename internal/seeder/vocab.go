package seeder

import (
	"github.com/Lumos-Labs-HQ/sampledata/internal/model"
	"github.com/shopspring/decimal"
)

var (
	firstNames = []string{
		"John", "Jane", "Michael", "Sarah", "David", "Emma", "Robert", "Lisa", "William", "Mary",
		"James", "Patricia", "Richard", "Jennifer", "Thomas", "Linda", "Charles", "Barbara",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
		"Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore",
	}
	countries = []string{
		"USA", "UK", "Canada", "Australia", "Germany", "France", "Spain", "Italy", "Japan", "India",
	}
	emailDomains = []string{"gmail.com", "yahoo.com", "outlook.com", "company.com"}
	channels     = []string{"Online", "ATM", "Branch", "Mobile"}
)

// Injected replacements. Each set is sampled uniformly.
var (
	badEmailForms = []func(first, last string) string{
		func(first, last string) string { return first + "@" },
		func(first, last string) string { return first + "." + last },
		func(first, last string) string { return first + "@invalid" },
		func(first, last string) string { return "" },
	}
	badPhones  = []string{"123", "12345678901234567890", "ABC-DEF-GHIJ", ""}
	badDates   = []string{"2026-13-45", "NOT_A_DATE", "2099-12-31", ""}
	badFxRates = []string{"", "-1.0", "999999.0"}
)

// FX quotes are USD-based; the order here is the per-day row order.
const fxBaseCurrency = model.USD

type fxQuote struct {
	currency model.Currency
	nominal  decimal.Decimal
}

var fxQuotes = []fxQuote{
	{model.EUR, decimal.RequireFromString("1.10")},
	{model.GBP, decimal.RequireFromString("1.27")},
	{model.JPY, decimal.RequireFromString("0.0091")},
	{model.CAD, decimal.RequireFromString("0.74")},
	{model.AUD, decimal.RequireFromString("0.66")},
	{model.CHF, decimal.RequireFromString("1.12")},
	{model.CNY, decimal.RequireFromString("0.14")},
}

// QuoteCurrencies returns the currencies an FX day is generated for.
func QuoteCurrencies() []model.Currency {
	out := make([]model.Currency, len(fxQuotes))
	for i, q := range fxQuotes {
		out[i] = q.currency
	}
	return out
}
