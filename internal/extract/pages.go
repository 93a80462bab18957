package extract

import "strings"

// ExpensePageKind names one of the three expense layouts a page can carry.
type ExpensePageKind string

const (
	// PageDetailed is the itemized expenditures section (all over $100).
	PageDetailed ExpensePageKind = "detailed"
	// PageContributions is the contributions-made-to-committees section.
	PageContributions ExpensePageKind = "contributions"
	// PageCategory is the aggregated $100-or-less-by-category section.
	PageCategory ExpensePageKind = "category"
)

// IsContributionsPage reports whether a page carries donor contribution
// data: the itemized or supplemental contributions-received section.
func IsContributionsPage(text string) bool {
	upper := strings.ToUpper(text)
	return strings.Contains(upper, "CONTRIBUTIONS") &&
		(strings.Contains(upper, "ITEMIZED") || strings.Contains(upper, "SUPPLEMENTAL")) &&
		strings.Contains(upper, "RECEIVED")
}

// expensePageRule pairs a page kind with its keyword trigger. Rules run in
// order; suppressedBy skips a rule when the named kind already matched,
// which keeps a vendor payment listed under both headings from being
// counted twice.
type expensePageRule struct {
	kind         ExpensePageKind
	match        func(upper string) bool
	suppressedBy ExpensePageKind
}

var expensePageRules = []expensePageRule{
	{
		kind: PageDetailed,
		match: func(upper string) bool {
			return (strings.Contains(upper, "ITEMIZED EXPENDITURES") && strings.Contains(upper, "ALL OVER $100")) ||
				strings.Contains(upper, "ITEMIZED EXPENDITURES OVER $100")
		},
	},
	{
		kind: PageContributions,
		match: func(upper string) bool {
			return strings.Contains(upper, "CONTRIBUTIONS MADE") &&
				strings.Contains(upper, "CANDIDATE OR COMMITTEE")
		},
		suppressedBy: PageDetailed,
	},
	{
		kind: PageCategory,
		match: func(upper string) bool {
			// Supplemental form section, or the category block on the
			// main CD3 form.
			return strings.Contains(upper, "EXPENDITURES OF $100 OR LESS BY CATEGORY") ||
				(strings.Contains(upper, "EXPENDITURES AND CONTRIBUTIONS MADE") &&
					strings.Contains(upper, "CATEGORY OF EXPENDITURE"))
		},
	},
}

// ExpensePageKinds returns every expense layout present on a page, in rule
// order. An empty result means the page holds no expense data.
func ExpensePageKinds(text string) []ExpensePageKind {
	upper := strings.ToUpper(text)

	var kinds []ExpensePageKind
	for _, rule := range expensePageRules {
		if !rule.match(upper) {
			continue
		}
		if rule.suppressedBy != "" && containsKind(kinds, rule.suppressedBy) {
			continue
		}
		if !containsKind(kinds, rule.kind) {
			kinds = append(kinds, rule.kind)
		}
	}
	return kinds
}

func containsKind(kinds []ExpensePageKind, kind ExpensePageKind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
