package seeder

import (
	"context"

	"github.com/Lumos-Labs-HQ/sampledata/internal/model"
)

// Dataset holds every generated collection of one run.
type Dataset struct {
	Customers     []model.Customer
	Accounts      []model.Account
	Transactions  []model.Transaction
	DailyBalances []model.DailyBalance
	FxRates       []model.FxRate
}

// Stage generates one entity collection into the dataset. Dependencies
// name the stages whose output it reads.
type Stage struct {
	Name         string
	Dependencies []string
	Run          func(ctx context.Context, ds *Dataset) error
}
