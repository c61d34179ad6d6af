package model

// Record is a generated row. Value returns the serialized form of one
// column, or "" for a column the record does not have.
type Record interface {
	Value(column string) string
}

var (
	CustomerColumns = []string{
		"customer_id", "first_name", "last_name", "email", "phone",
		"date_of_birth", "country", "kyc_status", "created_date", "last_updated",
	}
	AccountColumns = []string{
		"account_id", "customer_id", "account_type", "balance",
		"currency", "status", "opened_date", "last_transaction_date",
	}
	TransactionColumns = []string{
		"transaction_id", "account_id", "transaction_type", "amount",
		"currency", "transaction_date", "description", "status",
	}
	DailyBalanceColumns = []string{
		"balance_id", "account_id", "balance_date", "opening_balance",
		"closing_balance", "currency",
	}
	FxRateColumns = []string{
		"rate_id", "from_currency", "to_currency", "exchange_rate",
		"rate_date", "source",
	}
)

// Customer.ID, FirstName, LastName and Country may be empty in the defect
// variant; Email and Phone hold whatever the field generator produced.
type Customer struct {
	ID          string
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	DateOfBirth Date
	Country     string
	KYCStatus   KYCStatus
	CreatedDate Date
	LastUpdated Date
}

func (c Customer) Value(column string) string {
	switch column {
	case "customer_id":
		return c.ID
	case "first_name":
		return c.FirstName
	case "last_name":
		return c.LastName
	case "email":
		return c.Email
	case "phone":
		return c.Phone
	case "date_of_birth":
		return c.DateOfBirth.String()
	case "country":
		return c.Country
	case "kyc_status":
		return string(c.KYCStatus)
	case "created_date":
		return c.CreatedDate.String()
	case "last_updated":
		return c.LastUpdated.String()
	}
	return ""
}

// Account.CustomerID is a plain value match against Customer.ID and is
// allowed to dangle.
type Account struct {
	ID                  string
	CustomerID          string
	Type                AccountType
	Balance             Amount
	Currency            Currency
	Status              AccountStatus
	OpenedDate          Date
	LastTransactionDate Date
}

func (a Account) Value(column string) string {
	switch column {
	case "account_id":
		return a.ID
	case "customer_id":
		return a.CustomerID
	case "account_type":
		return string(a.Type)
	case "balance":
		return a.Balance.String()
	case "currency":
		return string(a.Currency)
	case "status":
		return string(a.Status)
	case "opened_date":
		return a.OpenedDate.String()
	case "last_transaction_date":
		return a.LastTransactionDate.String()
	}
	return ""
}

type Transaction struct {
	ID          string
	AccountID   string
	Type        TransactionType
	Amount      Amount
	Currency    Currency
	Date        Date
	Description string
	Status      TransactionStatus
}

func (t Transaction) Value(column string) string {
	switch column {
	case "transaction_id":
		return t.ID
	case "account_id":
		return t.AccountID
	case "transaction_type":
		return string(t.Type)
	case "amount":
		return t.Amount.String()
	case "currency":
		return string(t.Currency)
	case "transaction_date":
		return t.Date.String()
	case "description":
		return t.Description
	case "status":
		return string(t.Status)
	}
	return ""
}

type DailyBalance struct {
	ID        string
	AccountID string
	Date      Date
	Opening   Amount
	Closing   Amount
	Currency  Currency
}

func (b DailyBalance) Value(column string) string {
	switch column {
	case "balance_id":
		return b.ID
	case "account_id":
		return b.AccountID
	case "balance_date":
		return b.Date.String()
	case "opening_balance":
		return b.Opening.String()
	case "closing_balance":
		return b.Closing.String()
	case "currency":
		return string(b.Currency)
	}
	return ""
}

type FxRate struct {
	ID     string
	From   Currency
	To     Currency
	Rate   Amount
	Date   Date
	Source RateSource
}

func (r FxRate) Value(column string) string {
	switch column {
	case "rate_id":
		return r.ID
	case "from_currency":
		return string(r.From)
	case "to_currency":
		return string(r.To)
	case "exchange_rate":
		return r.Rate.String()
	case "rate_date":
		return r.Date.String()
	case "source":
		return string(r.Source)
	}
	return ""
}

// Records widens a typed collection for the writer.
func Records[T Record](rows []T) []Record {
	out := make([]Record, len(rows))
	for i, r := range rows {
		out[i] = r
	}
	return out
}
