// Package extract turns classified MEC report pages into structured donor
// and expense records: page classification, table column location,
// multi-line cell parsing, and line-item deduplication.
package extract

// Contribution type values for donor records.
const (
	ContributionMonetary = "Monetary"
	ContributionInKind   = "In-Kind"
)

// Expense kind values.
const (
	ExpenseKindExpense      = "Expense"
	ExpenseKindContribution = "Contribution"
)

// Payment status values for expense records.
const (
	StatusPaid     = "Paid"
	StatusIncurred = "Incurred"
	StatusCategory = "Category"
)

// DonorRecord is one itemized contribution received by the committee.
// A record without a donor name is discarded before it leaves this package.
type DonorRecord struct {
	SourceReport     string
	CommitteeName    string
	ReportPeriod     string
	DonorName        string
	DonorAddress     string
	DonorCityState   string
	DateReceived     string
	Amount           string
	ContributionType string
}

// ExpenseRecord is one expenditure or outbound contribution. Category
// records aggregate small expenditures: no payee, purpose holds the
// category name, and the date is the committee's filing date.
type ExpenseRecord struct {
	SourceReport   string
	CommitteeName  string
	ReportPeriod   string
	ExpenseType    string
	PayeeName      string
	PayeeAddress   string
	PayeeCityState string
	Date           string
	Purpose        string
	Amount         string
	PaymentStatus  string
}
