package extract

import "testing"

func TestParseDetailedExpenseTable(t *testing.T) {
	rows := [][]string{
		{"NAME AND ADDRESS", "DATE", "PURPOSE", "AMOUNT THIS PERIOD"},
		{"Acme Printing\n100 Press Way\nSt. Louis, MO 63101", "2/10/2024", "Yard signs", "$ 4 Paid 161.80 Incurred"},
		{"SUBTOTAL OF EXPENDITURES", "", "", "$161.80"},
		{"12. Short", "", "", "$50.00"},
	}

	expenses := ParseDetailedExpenseTable(rows, testMetadata())
	if len(expenses) != 1 {
		t.Fatalf("expected 1 expense, got %d", len(expenses))
	}

	expense := expenses[0]
	if expense.PayeeName != "Acme Printing" {
		t.Errorf("payee = %q, want Acme Printing", expense.PayeeName)
	}
	if expense.PayeeAddress != "100 Press Way" {
		t.Errorf("address = %q", expense.PayeeAddress)
	}
	if expense.PayeeCityState != "St. Louis, MO 63101" {
		t.Errorf("city/state = %q", expense.PayeeCityState)
	}
	if expense.Date != "2/10/2024" {
		t.Errorf("date = %q, want 2/10/2024", expense.Date)
	}
	if expense.Purpose != "Yard signs" {
		t.Errorf("purpose = %q, want Yard signs", expense.Purpose)
	}
	if expense.Amount != "161.80" {
		t.Errorf("amount = %q, want 161.80", expense.Amount)
	}
	if expense.PaymentStatus != StatusPaid {
		t.Errorf("status = %q, want %q", expense.PaymentStatus, StatusPaid)
	}
	if expense.ExpenseType != ExpenseKindExpense {
		t.Errorf("type = %q, want %q", expense.ExpenseType, ExpenseKindExpense)
	}
}

func TestParseDetailedExpenseTableSwappedColumns(t *testing.T) {
	// Some filings land the date in the purpose column; with no date yet
	// the parser treats it as the date instead of the purpose.
	rows := [][]string{
		{"NAME AND ADDRESS", "DATE", "PURPOSE", "AMOUNT THIS PERIOD"},
		{"Acme Printing", "", "2/10/2024", "$146.00"},
	}

	expenses := ParseDetailedExpenseTable(rows, testMetadata())
	if len(expenses) != 1 {
		t.Fatalf("expected 1 expense, got %d", len(expenses))
	}
	if expenses[0].Date != "2/10/2024" {
		t.Errorf("date = %q, want 2/10/2024", expenses[0].Date)
	}
	if expenses[0].Purpose != "" {
		t.Errorf("purpose = %q, want empty", expenses[0].Purpose)
	}
}

func TestParseDetailedExpenseTableIncurredStatus(t *testing.T) {
	rows := [][]string{
		{"NAME AND ADDRESS", "DATE", "PURPOSE", "AMOUNT THIS PERIOD"},
		{"Print Shop LLC", "3/1/2024", "Mailers", "Incurred 995.00"},
	}

	expenses := ParseDetailedExpenseTable(rows, testMetadata())
	if len(expenses) != 1 {
		t.Fatalf("expected 1 expense, got %d", len(expenses))
	}
	if expenses[0].PaymentStatus != StatusIncurred {
		t.Errorf("status = %q, want %q", expenses[0].PaymentStatus, StatusIncurred)
	}
	if expenses[0].Amount != "995.00" {
		t.Errorf("amount = %q, want 995.00", expenses[0].Amount)
	}
}

func TestParseContributionsMadeTable(t *testing.T) {
	rows := [][]string{
		{"NAME AND ADDRESS OF CANDIDATE OR COMMITTEE", "DATE", "AMOUNT"},
		{"NAME: Friends of Smith\n500 Capitol Ave\nJefferson City, MO 65101", "2/20/2024", "$1,000.00"},
	}

	contributions := ParseContributionsMadeTable(rows, testMetadata())
	if len(contributions) != 1 {
		t.Fatalf("expected 1 contribution, got %d", len(contributions))
	}

	c := contributions[0]
	if c.PayeeName != "Friends of Smith" {
		t.Errorf("payee = %q, want Friends of Smith", c.PayeeName)
	}
	if c.Purpose != "Contribution to Committee" {
		t.Errorf("purpose = %q", c.Purpose)
	}
	if c.ExpenseType != ExpenseKindContribution {
		t.Errorf("type = %q, want %q", c.ExpenseType, ExpenseKindContribution)
	}
	if c.Amount != "1000.00" {
		t.Errorf("amount = %q, want 1000.00", c.Amount)
	}
}

func TestParseCategoryExpenseTable(t *testing.T) {
	rows := [][]string{
		{"CATEGORY OF EXPENDITURE", "AMOUNT"},
		{"Postage", "$85.50"},
		{"Office Supplies", "$0.00"},
		{"17. In-kind contributions", "$25.00"},
		{"2nd batch business cards", "$45.00"},
		{"", ""},
	}

	expenses := ParseCategoryExpenseTable(rows, testMetadata())
	if len(expenses) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(expenses))
	}

	if expenses[0].Purpose != "Postage" || expenses[0].Amount != "85.50" {
		t.Errorf("first = %q/%q", expenses[0].Purpose, expenses[0].Amount)
	}
	if expenses[0].PaymentStatus != StatusCategory {
		t.Errorf("status = %q, want %q", expenses[0].PaymentStatus, StatusCategory)
	}
	// Category rows have no transaction date; the filing date stands in.
	if expenses[0].Date != "4/15/2024" {
		t.Errorf("date = %q, want filing date", expenses[0].Date)
	}
	if expenses[1].Purpose != "2nd batch business cards" {
		t.Errorf("second = %q", expenses[1].Purpose)
	}
}

func TestIsValidCategoryName(t *testing.T) {
	tests := []struct {
		category string
		want     bool
	}{
		{"Postage", true},
		{"2nd batch business cards", true},
		{"16. Bank service fee", true},
		{"16. Some form field", false},
		{"SUBTOTAL", false},
		{"CATEGORY OF EXPENDITURE", false},
		{"NAME:", false},
		{"123", false},
		{"X", false},
	}

	for _, tt := range tests {
		if got := isValidCategoryName(tt.category); got != tt.want {
			t.Errorf("isValidCategoryName(%q) = %v, want %v", tt.category, got, tt.want)
		}
	}
}

func TestIsFormSummaryRow(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"SUBTOTAL of this page", true},
		{"14. Amount of line 12", true},
		{"Sum column A", true},
		{"Payment to vendor", false},
		{"Acme Printing", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isFormSummaryRow(tt.text); got != tt.want {
			t.Errorf("isFormSummaryRow(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestCleanFieldText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"NAME: Acme Printing", "Acme Printing"},
		{"ADDRESS: 100 Press Way", "100 Press Way"},
		{"CITY/STATE: St. Louis, MO", "St. Louis, MO"},
		{"CITY / STATE: St. Louis, MO", "St. Louis, MO"},
		{"Plain text", "Plain text"},
	}

	for _, tt := range tests {
		if got := cleanFieldText(tt.in); got != tt.want {
			t.Errorf("cleanFieldText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
