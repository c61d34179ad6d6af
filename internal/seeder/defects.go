package seeder

import "github.com/Lumos-Labs-HQ/sampledata/internal/config"

type Defect string

const (
	MissingCustomerID    Defect = "missing_customer_id"
	MissingFirstName     Defect = "missing_first_name"
	MissingLastName      Defect = "missing_last_name"
	MissingCountry       Defect = "missing_country"
	BadEmail             Defect = "bad_email"
	BadPhone             Defect = "bad_phone"
	BadDate              Defect = "bad_date"
	OrphanedAccount      Defect = "orphaned_account"
	MissingAccountID     Defect = "missing_account_id"
	MissingTransactionID Defect = "missing_transaction_id"
	InvalidFxRate        Defect = "invalid_fx_rate"
)

// Tally counts injected defects per category.
type Tally map[Defect]int

func (t Tally) Add(d Defect) {
	t[d]++
}

func (t Tally) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

type DefectInfo struct {
	Category    Defect
	Description string
	Rate        float64 // share of the affected entity's rows
}

// Catalog lists every defect category with its effective rate under d.
// Email, phone and date rates are conditional on the customer issue flag.
func Catalog(d config.Defects) []DefectInfo {
	return []DefectInfo{
		{MissingCustomerID, "of customers have a missing customer_id", d.MissingIDRate},
		{MissingFirstName, "of customers have a missing first_name", d.MissingNameRate},
		{MissingLastName, "of customers have a missing last_name", d.MissingNameRate},
		{MissingCountry, "of customers have a missing country", d.MissingCountryRate},
		{BadEmail, "of customers have a malformed email", d.CustomerIssueRate * d.EmailRate},
		{BadPhone, "of customers have a malformed phone", d.CustomerIssueRate * d.PhoneRate},
		{BadDate, "of customers have an invalid or future date_of_birth", d.CustomerIssueRate * d.DateRate},
		{OrphanedAccount, "of accounts are orphaned (invalid customer_id)", d.OrphanAccountRate},
		{MissingAccountID, "of accounts have a missing account_id", d.MissingIDRate},
		{MissingTransactionID, "of transactions have a missing transaction_id", d.MissingIDRate},
		{InvalidFxRate, "of FX rates are invalid", d.InvalidFxRate},
	}
}
