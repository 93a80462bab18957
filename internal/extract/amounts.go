package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// minValidAmount is the floor below which an extracted number is treated as
// noise (stray page numbers, form item digits) rather than money. 0.50
// still admits small service fees.
var minValidAmount = decimal.New(50, -2)

// amountMatcher is one strategy in the extraction cascade. The amount cell
// mixes checkbox glyphs, the words Paid/Incurred, and monetary text in
// inconsistent order, so strategies run in order and the first success
// wins.
type amountMatcher struct {
	name string
	re   *regexp.Regexp
	// collapse runs the match against whitespace-collapsed cell text,
	// needed when the keyword and number are split across lines.
	collapse bool
	// enforceFloor rejects the match (falling through to later
	// strategies) when the captured number is below the valid floor.
	enforceFloor bool
}

// Strategies a-g of the cascade. Go's regexp has no lookaround, so the
// standalone-number strategies anchor on non-digit boundaries instead.
var amountMatchers = []amountMatcher{
	{
		// "$ 4 Paid 161.80 Incurred" -> 161.80
		name:         "keyword",
		re:           regexp.MustCompile(`(?i)(?:PAID|INCURRED)\s+(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`),
		collapse:     true,
		enforceFloor: true,
	},
	{
		// "$4,990.53" or "$ 4,990.53"
		name: "dollar-comma",
		re:   regexp.MustCompile(`\$\s*(\d{1,3}(?:,\d{3})+(?:\.\d{2})?)`),
	},
	{
		// "$146.00" or "$ 995.00"
		name: "dollar-large",
		re:   regexp.MustCompile(`\$\s*(\d{3,}(?:\.\d{2})?)`),
	},
	{
		// "$10.75" or "$ 65.07"
		name: "dollar-small",
		re:   regexp.MustCompile(`\$\s*(\d{1,2}\.\d{2})`),
	},
	{
		// "1,250.00" with no dollar sign
		name: "standalone-comma",
		re:   regexp.MustCompile(`(?:^|[^\d])(\d{1,3}(?:,\d{3})+(?:\.\d{2})?)(?:[^\d]|$)`),
	},
	{
		// bare 3+ digit number
		name: "standalone-large",
		re:   regexp.MustCompile(`(?:^|[^\d])(\d{3,}(?:\.\d{2})?)(?:[^\d]|$)`),
	},
	{
		// small decimals like 8.06
		name: "standalone-small",
		re:   regexp.MustCompile(`(?:^|[^\d])(\d{1,2}\.\d{2})(?:[^\d]|$)`),
	},
}

// ExtractAmount pulls a monetary amount out of noisy cell text, returning
// a plain decimal string with no thousands separators, or empty when no
// strategy matches.
func ExtractAmount(cell string) string {
	if cell == "" {
		return ""
	}

	collapsed := strings.Join(strings.Fields(cell), " ")

	for _, matcher := range amountMatchers {
		input := cell
		if matcher.collapse {
			input = collapsed
		}

		match := matcher.re.FindStringSubmatch(input)
		if match == nil {
			continue
		}

		amount := strings.ReplaceAll(match[1], ",", "")
		if matcher.enforceFloor && !IsValidAmount(amount) {
			continue
		}
		return amount
	}

	return ""
}

// IsValidAmount reports whether an extracted string parses as a monetary
// amount at or above the noise floor.
func IsValidAmount(amount string) bool {
	if amount == "" {
		return false
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return false
	}
	return value.GreaterThanOrEqual(minValidAmount)
}

// isZeroAmount reports whether the string parses as exactly zero; category
// rows carrying $0.00 are form instructions, not data.
func isZeroAmount(amount string) bool {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return false
	}
	return value.IsZero()
}
