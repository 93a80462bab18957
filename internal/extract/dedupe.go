package extract

// recordKey identifies a financial line item independently of which report
// or table pass produced it. The same physical line can surface under more
// than one page classification, and amended reports repeat lines from the
// originals they supersede, so the source report is deliberately not part
// of the key.
type recordKey struct {
	name   string
	amount string
	date   string
	kind   string
}

// DeduplicateExpenses drops repeated expense line items, first occurrence
// winning. Category rows have no payee, so they key on purpose instead.
func DeduplicateExpenses(expenses []ExpenseRecord) []ExpenseRecord {
	seen := make(map[recordKey]struct{}, len(expenses))
	deduplicated := make([]ExpenseRecord, 0, len(expenses))

	for _, expense := range expenses {
		var key recordKey
		if expense.PaymentStatus == StatusCategory {
			key = recordKey{expense.Purpose, expense.Amount, expense.Date, StatusCategory}
		} else {
			key = recordKey{expense.PayeeName, expense.Amount, expense.Date, expense.ExpenseType}
		}

		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		deduplicated = append(deduplicated, expense)
	}

	return deduplicated
}

// DeduplicateDonors drops repeated contribution line items, first
// occurrence winning.
func DeduplicateDonors(donors []DonorRecord) []DonorRecord {
	seen := make(map[recordKey]struct{}, len(donors))
	deduplicated := make([]DonorRecord, 0, len(donors))

	for _, donor := range donors {
		key := recordKey{donor.DonorName, donor.Amount, donor.DateReceived, donor.ContributionType}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		deduplicated = append(deduplicated, donor)
	}

	return deduplicated
}
