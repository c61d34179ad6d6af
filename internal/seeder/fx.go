package seeder

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/sampledata/internal/model"
	"github.com/shopspring/decimal"
)

const fxRatePlaces = 6

func fxRateID(seq int) string {
	return fmt.Sprintf("FX%08d", seq)
}

// FxRates generates one USD quote per currency per day, going back days
// days from the reference date. Each rate is the nominal rate scaled by a
// uniform factor in [0.95, 1.05).
func (g *DataGenerator) FxRates(days int) []model.FxRate {
	if days < 0 {
		days = 0
	}
	rates := make([]model.FxRate, 0, days*len(fxQuotes))

	for day := 0; day < days; day++ {
		date := model.DateOf(g.reference.AddDate(0, 0, -day))

		for _, quote := range fxQuotes {
			rate := quote.nominal.Mul(decimal.NewFromFloat(g.uniform(0.95, 1.05)))

			r := model.FxRate{
				ID:   fxRateID(len(rates) + 1),
				From: fxBaseCurrency,
				To:   quote.currency,
				Rate: model.AmountOf(rate, fxRatePlaces),
				Date: date,
			}
			if g.chance(g.defects.InvalidFxRate) {
				r.Rate = model.RawAmount(pick(g.rand, badFxRates))
				g.tally.Add(InvalidFxRate)
			}
			r.Source = pick(g.rand, model.RateSources)

			rates = append(rates, r)
		}
	}

	return rates
}
