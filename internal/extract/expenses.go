package extract

import (
	"regexp"
	"strings"

	"github.com/Erross/MO-ethics-Full/internal/mec"
)

// formSummaryPhrases mark rows that belong to the form itself rather than
// a filed line item: subtotal bands, instruction lines, section headers.
var formSummaryPhrases = []string{
	"AMOUNT OF LINE",
	"IF COMMITTEE MADE",
	"FUNDS USED FOR PAYING",
	"SUBTOTAL",
	"TOTAL:",
	"SUM COLUMN",
	"CARRY TO ITEM",
	"NAME AND ADDRESS OF RECIPIENT",
	"C. CONTRIBUTIONS MADE",
	"CONTRIBUTIONS MADE (REGARDLESS",
	"20. NAME AND ADDRESS",
	"ITEMIZED EXPENDITURES",
	"AND ALL PAYMENTS TO CAMPAIGN",
	"B. ITEMIZED EXPENDITURES",
}

var numberedItemRe = regexp.MustCompile(`^\d{1,2}\.\s`)

var fieldLabelRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^NAME:\s*`),
	regexp.MustCompile(`(?i)^ADDRESS:\s*`),
	regexp.MustCompile(`(?i)^CITY\s*/?\s*STATE:\s*`),
}

var trailingDollarRe = regexp.MustCompile(`\$\s*$`)

// isFormSummaryRow reports whether a first-cell value is form furniture.
func isFormSummaryRow(text string) bool {
	if text == "" {
		return false
	}
	if numberedItemRe.MatchString(text) {
		return true
	}
	upper := strings.ToUpper(text)
	for _, phrase := range formSummaryPhrases {
		if strings.Contains(upper, phrase) {
			return true
		}
	}
	return false
}

// cleanFieldText strips leading form labels (NAME:, ADDRESS:, CITY/STATE:)
// from a cell line.
func cleanFieldText(text string) string {
	for _, re := range fieldLabelRes {
		text = re.ReplaceAllString(text, "")
	}
	return strings.TrimSpace(text)
}

// ParseDetailedExpenseTable extracts itemized expenditures (all over $100)
// from one table. Rows qualify only when the amount column yields a valid
// amount; everything else on these pages is form text.
func ParseDetailedExpenseTable(rows [][]string, meta mec.ReportMetadata) []ExpenseRecord {
	if len(rows) < 2 {
		return nil
	}

	cols := locateExpenseColumns(rows)

	startRow := 0
	if cols.headerRow != noColumn {
		startRow = cols.headerRow + 1
	}

	var expenses []ExpenseRecord
	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if rowEmpty(row) {
			continue
		}

		firstCell := strings.TrimSpace(row[0])
		if isFormSummaryRow(firstCell) || len(firstCell) <= 3 {
			continue
		}
		if !hasValidAmountAt(row, cols.amountCol) {
			continue
		}

		expense, ok := parseDetailedExpenseEntry(row, cols, meta)
		if ok {
			expenses = append(expenses, expense)
		}
	}

	return expenses
}

func parseDetailedExpenseEntry(row []string, cols expenseColumns, meta mec.ReportMetadata) (ExpenseRecord, bool) {
	expense := ExpenseRecord{
		SourceReport:  meta.Filename,
		CommitteeName: meta.CommitteeName,
		ReportPeriod:  meta.ReportPeriod(),
		ExpenseType:   ExpenseKindExpense,
		Purpose:       "",
	}

	expense.PayeeName, expense.PayeeAddress, expense.PayeeCityState = splitPayeeCell(strings.TrimSpace(row[0]))

	if dateCell := cellAt(row, cols.dateCol); dateCell != "" {
		if match := dateRe.FindStringSubmatch(dateCell); match != nil {
			expense.Date = match[1]
		}
	}

	if purposeCell := cellAt(row, cols.purposeCol); purposeCell != "" {
		// On some filings the date and purpose columns land swapped; a
		// date in the purpose cell with no date yet means this is the
		// date.
		if match := dateRe.FindStringSubmatch(purposeCell); match != nil && expense.Date == "" {
			expense.Date = match[1]
		} else {
			purposeCell = trailingDollarRe.ReplaceAllString(purposeCell, "")
			expense.Purpose = strings.TrimSpace(purposeCell)
		}
	}

	if amountCell := cellAt(row, cols.amountCol); amountCell != "" {
		upper := strings.ToUpper(amountCell)
		switch {
		case strings.Contains(amountCell, "✔") || strings.Contains(amountCell, "✓") || strings.Contains(upper, "PAID"):
			expense.PaymentStatus = StatusPaid
		case strings.Contains(upper, "INCURRED"):
			expense.PaymentStatus = StatusIncurred
		}

		if amount := ExtractAmount(amountCell); IsValidAmount(amount) {
			expense.Amount = amount
		}
	}

	if expense.PayeeName == "" || expense.Amount == "" {
		return ExpenseRecord{}, false
	}
	return expense, true
}

// ParseContributionsMadeTable extracts outbound contributions to other
// candidates and committees. These rows have no purpose column; the
// purpose is fixed.
func ParseContributionsMadeTable(rows [][]string, meta mec.ReportMetadata) []ExpenseRecord {
	if len(rows) < 2 {
		return nil
	}

	cols := locateContributionColumns(rows)

	startRow := 0
	if cols.headerRow != noColumn {
		startRow = cols.headerRow + 1
	}

	var contributions []ExpenseRecord
	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if rowEmpty(row) {
			continue
		}

		firstCell := strings.TrimSpace(row[0])
		if isFormSummaryRow(firstCell) || len(firstCell) <= 3 {
			continue
		}
		if !hasValidAmountAt(row, cols.amountCol) {
			continue
		}

		contribution := ExpenseRecord{
			SourceReport:  meta.Filename,
			CommitteeName: meta.CommitteeName,
			ReportPeriod:  meta.ReportPeriod(),
			ExpenseType:   ExpenseKindContribution,
			Purpose:       "Contribution to Committee",
		}

		contribution.PayeeName, contribution.PayeeAddress, contribution.PayeeCityState = splitPayeeCell(firstCell)

		if dateCell := cellAt(row, cols.dateCol); dateCell != "" {
			if match := dateRe.FindStringSubmatch(dateCell); match != nil {
				contribution.Date = match[1]
			}
		}

		if amountCell := cellAt(row, cols.amountCol); amountCell != "" {
			if amount := ExtractAmount(amountCell); IsValidAmount(amount) {
				contribution.Amount = amount
			}
		}

		if contribution.PayeeName == "" || contribution.Amount == "" {
			continue
		}
		contributions = append(contributions, contribution)
	}

	return contributions
}

// categoryInvalidPatterns are fragments that disqualify a candidate
// category name: labels, totals, and section instructions.
var categoryInvalidPatterns = []string{
	"NAME:",
	"ADDRESS:",
	"CITY",
	"STATE:",
	"SUBTOTAL",
	"TOTAL",
	"SUM COLUMN",
	"CARRY TO",
	"AMOUNT OF LINE",
	"EXPENDITURES AND CONTRIBUTIONS",
	"CATEGORY OF EXPENDITURE",
	"FUNDS USED FOR PAYING",
}

var letterRe = regexp.MustCompile(`[a-zA-Z]`)

// isValidCategoryName filters form instructions out of the category
// column. Numbered lines are form items ("16. ...") unless they read like
// a real purchase ("2nd batch business cards").
func isValidCategoryName(category string) bool {
	if len(category) < 2 {
		return false
	}

	if numberedItemRe.MatchString(category) {
		lower := strings.ToLower(category)
		allowed := false
		for _, word := range []string{"batch", "card", "fee", "service"} {
			if strings.Contains(lower, word) {
				allowed = true
				break
			}
		}
		if !allowed {
			return false
		}
	}

	upper := strings.ToUpper(category)
	for _, pattern := range categoryInvalidPatterns {
		if strings.Contains(upper, pattern) {
			return false
		}
	}

	return letterRe.MatchString(category)
}

// ParseCategoryExpenseTable extracts the aggregated $100-or-less category
// totals. Category rows carry no payee or transaction date; the
// committee's filing date stands in as the date.
func ParseCategoryExpenseTable(rows [][]string, meta mec.ReportMetadata) []ExpenseRecord {
	if len(rows) < 2 {
		return nil
	}

	startRow := 0
	for i, row := range rows {
		if strings.Contains(rowText(row), "CATEGORY OF EXPENDITURE") {
			startRow = i + 1
			break
		}
	}

	var expenses []ExpenseRecord
	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if rowEmpty(row) {
			continue
		}

		category := strings.TrimSpace(row[0])
		if !isValidCategoryName(category) {
			continue
		}

		// First cell after the category that yields a valid amount wins;
		// an invalid extraction from the last cell is kept for the zero
		// check below.
		var amount string
		for j := 1; j < len(row); j++ {
			cell := strings.TrimSpace(row[j])
			if cell == "" {
				continue
			}
			amount = ExtractAmount(cell)
			if IsValidAmount(amount) {
				break
			}
		}

		// $0.00 rows are pre-printed form lines.
		if amount == "" || isZeroAmount(amount) {
			continue
		}

		expenses = append(expenses, ExpenseRecord{
			SourceReport:  meta.Filename,
			CommitteeName: meta.CommitteeName,
			ReportPeriod:  meta.ReportPeriod(),
			ExpenseType:   ExpenseKindExpense,
			Date:          meta.DateFiled,
			Purpose:       category,
			Amount:        amount,
			PaymentStatus: StatusCategory,
		})
	}

	return expenses
}

// splitPayeeCell breaks the multi-line payee cell into name, address, and
// city/state, stripping form labels from each line first so that a line
// reading only "ADDRESS:" drops out instead of shifting the split.
func splitPayeeCell(cell string) (name, address, cityState string) {
	if !strings.Contains(cell, "\n") {
		return cleanFieldText(cell), "", ""
	}

	var lines []string
	for _, line := range strings.Split(cell, "\n") {
		line = cleanFieldText(strings.TrimSpace(line))
		if line != "" {
			lines = append(lines, line)
		}
	}

	if len(lines) > 0 {
		name = lines[0]
	}
	if len(lines) > 1 {
		address = lines[1]
	}
	if len(lines) > 2 {
		cityState = lines[2]
	}
	return name, address, cityState
}

// hasValidAmountAt reports whether the row's amount column holds a value
// at or above the noise floor.
func hasValidAmountAt(row []string, col int) bool {
	cell := cellAt(row, col)
	if cell == "" {
		return false
	}
	return IsValidAmount(ExtractAmount(cell))
}
