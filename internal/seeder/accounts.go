package seeder

import (
	"fmt"
	"math"

	"github.com/Lumos-Labs-HQ/sampledata/internal/model"
	"github.com/shopspring/decimal"
)

const (
	openedRangeDays          = 730
	lastTransactionRangeDays = 30
	maxAccountBalance        = 100000

	orphanFloor = 900000
	orphanSpan  = 100000
)

func accountID(seq int) string {
	return fmt.Sprintf("ACC%08d", seq)
}

// AccountCount is floor(customers × ratio).
func AccountCount(customers int, ratio float64) int {
	if customers <= 0 || ratio <= 0 {
		return 0
	}
	return int(math.Floor(float64(customers) * ratio))
}

// orphanCustomerID returns an id above every generated customer sequence,
// so it can never resolve.
func (g *DataGenerator) orphanCustomerID(customers int) string {
	lo := max(orphanFloor, customers+1)
	return customerID(g.intRange(lo, lo+orphanSpan-1))
}

// Accounts generates floor(len(customers) × ratio) accounts, each owned by
// a customer picked uniformly with replacement.
func (g *DataGenerator) Accounts(customers []model.Customer, ratio float64) []model.Account {
	count := AccountCount(len(customers), ratio)
	accounts := make([]model.Account, 0, count)

	for i := 0; i < count; i++ {
		var owner string
		if g.chance(g.defects.OrphanAccountRate) {
			owner = g.orphanCustomerID(len(customers))
			g.tally.Add(OrphanedAccount)
		} else {
			owner = pick(g.rand, customers).ID
		}

		a := model.Account{
			ID:         accountID(i + 1),
			CustomerID: owner,
		}
		if g.chance(g.defects.MissingIDRate) {
			a.ID = ""
			g.tally.Add(MissingAccountID)
		}

		a.Type = pick(g.rand, model.AccountTypes)
		a.Balance = model.AmountOf(decimal.NewFromFloat(g.uniform(0, maxAccountBalance)), 2)
		a.Currency = pick(g.rand, model.Currencies)
		a.Status = pick(g.rand, model.AccountStatuses)
		a.OpenedDate = g.Date(g.reference, openedRangeDays, false)
		a.LastTransactionDate = g.Date(g.reference, lastTransactionRangeDays, false)

		accounts = append(accounts, a)
	}

	return accounts
}
