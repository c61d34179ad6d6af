package model

type KYCStatus string

const (
	KYCVerified   KYCStatus = "VERIFIED"
	KYCPending    KYCStatus = "PENDING"
	KYCRejected   KYCStatus = "REJECTED"
	KYCExpired    KYCStatus = "EXPIRED"
	KYCNotStarted KYCStatus = "NOT_STARTED"
)

var KYCStatuses = []KYCStatus{KYCVerified, KYCPending, KYCRejected, KYCExpired, KYCNotStarted}

type AccountType string

const (
	AccountSavings    AccountType = "SAVINGS"
	AccountChecking   AccountType = "CHECKING"
	AccountCredit     AccountType = "CREDIT"
	AccountInvestment AccountType = "INVESTMENT"
	AccountLoan       AccountType = "LOAN"
)

var AccountTypes = []AccountType{AccountSavings, AccountChecking, AccountCredit, AccountInvestment, AccountLoan}

type AccountStatus string

const (
	AccountActive    AccountStatus = "ACTIVE"
	AccountClosed    AccountStatus = "CLOSED"
	AccountSuspended AccountStatus = "SUSPENDED"
	AccountPending   AccountStatus = "PENDING"
)

var AccountStatuses = []AccountStatus{AccountActive, AccountClosed, AccountSuspended, AccountPending}

type TransactionType string

const (
	TxnDeposit    TransactionType = "DEPOSIT"
	TxnWithdrawal TransactionType = "WITHDRAWAL"
	TxnTransfer   TransactionType = "TRANSFER"
	TxnPayment    TransactionType = "PAYMENT"
	TxnFee        TransactionType = "FEE"
	TxnInterest   TransactionType = "INTEREST"
)

var TransactionTypes = []TransactionType{TxnDeposit, TxnWithdrawal, TxnTransfer, TxnPayment, TxnFee, TxnInterest}

type TransactionStatus string

const (
	TxnCompleted TransactionStatus = "COMPLETED"
	TxnPending   TransactionStatus = "PENDING"
	TxnFailed    TransactionStatus = "FAILED"
	TxnReversed  TransactionStatus = "REVERSED"
)

var TransactionStatuses = []TransactionStatus{TxnCompleted, TxnPending, TxnFailed, TxnReversed}

type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
	CAD Currency = "CAD"
	AUD Currency = "AUD"
	CHF Currency = "CHF"
	CNY Currency = "CNY"
)

var Currencies = []Currency{USD, EUR, GBP, JPY, CAD, AUD, CHF, CNY}

type RateSource string

const (
	SourceCentralBank RateSource = "CENTRAL_BANK"
	SourceMarket      RateSource = "MARKET"
	SourceManual      RateSource = "MANUAL"
)

var RateSources = []RateSource{SourceCentralBank, SourceMarket, SourceManual}
