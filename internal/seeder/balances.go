package seeder

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/sampledata/internal/model"
	"github.com/shopspring/decimal"
)

const maxDailyChange = 1000

func balanceID(seq int) string {
	return fmt.Sprintf("BAL%010d", seq)
}

// DailyBalances walks each account backward from the reference date for
// days days. Day 0 opens at the account balance; every record closes at
// opening + delta, and the next (older) record opens at that close.
func (g *DataGenerator) DailyBalances(accounts []model.Account, days int) []model.DailyBalance {
	if days < 0 {
		days = 0
	}
	balances := make([]model.DailyBalance, 0, len(accounts)*days)

	for _, account := range accounts {
		opening, _ := account.Balance.Decimal()

		for day := 0; day < days; day++ {
			delta := decimal.NewFromFloat(g.uniform(-maxDailyChange, maxDailyChange)).Round(2)
			closing := opening.Add(delta)

			balances = append(balances, model.DailyBalance{
				ID:        balanceID(len(balances) + 1),
				AccountID: account.ID,
				Date:      model.DateOf(g.reference.AddDate(0, 0, -day)),
				Opening:   model.AmountOf(opening, 2),
				Closing:   model.AmountOf(closing, 2),
				Currency:  account.Currency,
			})

			opening = closing
		}
	}

	return balances
}
