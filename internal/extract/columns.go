package extract

import "strings"

// noColumn marks a column role the header row did not provide. Field
// extraction for that role degrades to empty values instead of failing.
const noColumn = -1

// donorColumns maps the contributions table's semantic columns.
type donorColumns struct {
	headerRow int
	dateCol   int
	amountCol int
	typeCol   int
}

// expenseColumns maps the itemized expenditures table's semantic columns.
type expenseColumns struct {
	headerRow  int
	dateCol    int
	purposeCol int
	amountCol  int
}

// contributionColumns maps the contributions-made table's semantic columns.
type contributionColumns struct {
	headerRow int
	dateCol   int
	amountCol int
}

// rowText joins a row's cells for header-marker matching.
func rowText(row []string) string {
	return strings.ToUpper(strings.Join(row, " "))
}

// locateDonorColumns finds the contributions header in the first 5 rows:
// the row mentioning both DATE and RECEIVED. Within it, cells map by
// keyword to the date, amount, and monetary/in-kind type columns.
func locateDonorColumns(rows [][]string) donorColumns {
	cols := donorColumns{headerRow: noColumn, dateCol: noColumn, amountCol: noColumn, typeCol: noColumn}

	limit := len(rows)
	if limit > 5 {
		limit = 5
	}

	for i := 0; i < limit; i++ {
		row := rows[i]
		if len(row) == 0 {
			continue
		}
		text := rowText(row)
		if !strings.Contains(text, "DATE") || !strings.Contains(text, "RECEIVED") {
			continue
		}

		cols.headerRow = i
		for j, cell := range row {
			upper := strings.ToUpper(cell)
			if upper == "" {
				continue
			}
			if strings.Contains(upper, "DATE") {
				cols.dateCol = j
			}
			if strings.Contains(upper, "AMOUNT") {
				cols.amountCol = j
			}
			if strings.Contains(upper, "MONETARY") || strings.Contains(upper, "IN-KIND") {
				cols.typeCol = j
			}
		}
		break
	}

	return cols
}

// locateExpenseColumns finds the itemized expenditures header in the first
// 10 rows: the row mentioning both DATE and PURPOSE. The amount column is
// the AMOUNT THIS PERIOD cell, which disambiguates it from the received
// amount that shares the form; the date column must not be the
// DATE RECEIVED cell for the same reason.
func locateExpenseColumns(rows [][]string) expenseColumns {
	cols := expenseColumns{headerRow: noColumn, dateCol: noColumn, purposeCol: noColumn, amountCol: noColumn}

	limit := len(rows)
	if limit > 10 {
		limit = 10
	}

	for i := 0; i < limit; i++ {
		row := rows[i]
		if len(row) == 0 {
			continue
		}
		text := rowText(row)
		if !strings.Contains(text, "DATE") || !strings.Contains(text, "PURPOSE") {
			continue
		}

		cols.headerRow = i
		for j, cell := range row {
			upper := strings.ToUpper(cell)
			if strings.Contains(upper, "DATE") && !strings.Contains(upper, "RECEIVED") {
				cols.dateCol = j
			}
			if strings.Contains(upper, "PURPOSE") {
				cols.purposeCol = j
			}
			if strings.Contains(upper, "AMOUNT THIS PERIOD") ||
				(strings.Contains(upper, "AMOUNT") && strings.Contains(upper, "PERIOD")) {
				cols.amountCol = j
			}
		}
		break
	}

	return cols
}

// locateContributionColumns finds the contributions-made header in the
// first 10 rows: DATE together with AMOUNT or the recipient caption.
func locateContributionColumns(rows [][]string) contributionColumns {
	cols := contributionColumns{headerRow: noColumn, dateCol: noColumn, amountCol: noColumn}

	limit := len(rows)
	if limit > 10 {
		limit = 10
	}

	for i := 0; i < limit; i++ {
		row := rows[i]
		if len(row) == 0 {
			continue
		}
		text := rowText(row)
		if !strings.Contains(text, "DATE") {
			continue
		}
		if !strings.Contains(text, "AMOUNT") && !strings.Contains(text, "CANDIDATE OR COMMITTEE") {
			continue
		}

		cols.headerRow = i
		for j, cell := range row {
			upper := strings.ToUpper(cell)
			if strings.Contains(upper, "DATE") {
				cols.dateCol = j
			}
			if strings.Contains(upper, "AMOUNT") {
				cols.amountCol = j
			}
		}
		break
	}

	return cols
}

// cellAt returns the trimmed cell at col, or empty when the row is short
// or the column was never located.
func cellAt(row []string, col int) string {
	if col == noColumn || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
