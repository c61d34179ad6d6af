package seeder

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/sampledata/internal/model"
	"github.com/shopspring/decimal"
)

const (
	transactionRangeDays = 90
	maxTransactionAmount = 10000
)

func transactionID(seq int) string {
	return fmt.Sprintf("TXN%010d", seq)
}

// Transactions generates len(accounts) × perAccount transactions. Accounts
// are sampled with replacement, so per-account counts vary.
func (g *DataGenerator) Transactions(accounts []model.Account, perAccount int) []model.Transaction {
	count := 0
	if perAccount > 0 {
		count = len(accounts) * perAccount
	}
	transactions := make([]model.Transaction, 0, count)

	for i := 0; i < count; i++ {
		account := pick(g.rand, accounts)

		t := model.Transaction{
			ID:        transactionID(i + 1),
			AccountID: account.ID,
			Currency:  account.Currency,
		}
		if g.chance(g.defects.MissingIDRate) {
			t.ID = ""
			g.tally.Add(MissingTransactionID)
		}

		t.Type = pick(g.rand, model.TransactionTypes)
		t.Amount = model.AmountOf(decimal.NewFromFloat(g.uniform(-maxTransactionAmount, maxTransactionAmount)), 2)
		t.Date = g.Date(g.reference, transactionRangeDays, false)
		t.Description = fmt.Sprintf("%s - %s", pick(g.rand, model.TransactionTypes), pick(g.rand, channels))
		t.Status = pick(g.rand, model.TransactionStatuses)

		transactions = append(transactions, t)
	}

	return transactions
}
