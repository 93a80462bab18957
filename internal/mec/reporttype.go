package mec

import (
	"regexp"
	"strings"
	"time"
)

// ReportTypeSeparator joins the matched labels into the display string.
const ReportTypeSeparator = " | "

// reportTypePattern pairs a human-readable label with the regexp that finds
// its checkbox caption on the form. Patterns are evaluated in declaration
// order; new form variants are added here, not in the decode loop.
type reportTypePattern struct {
	label   string
	pattern *regexp.Regexp
}

var reportTypePatterns = []reportTypePattern{
	{"COMMITTEE QUARTERLY REPORT", regexp.MustCompile(`(?i)COMMITTEE\s+QUARTERLY\s+REPORT`)},
	{"AMENDING PREVIOUS REPORT", regexp.MustCompile(`(?i)AMENDING\s+PREVIOUS\s+REPORT`)},
	{"15 DAYS AFTER CAUCUS NOMINATION", regexp.MustCompile(`(?i)15\s+DAYS\s+AFTER\s+CAUCUS`)},
	{"8 DAYS BEFORE", regexp.MustCompile(`(?i)8\s+DAYS\s+BEFORE`)},
	{"30 DAYS AFTER ELECTION", regexp.MustCompile(`(?i)30\s+DAYS\s+AFTER\s+ELECTION`)},
	{"TERMINATION", regexp.MustCompile(`(?i)TERMINATION`)},
	{"SEMIANNUAL DEBT REPORT", regexp.MustCompile(`(?i)SEMIANNUAL\s+DEBT\s+REPORT`)},
	{"ANNUAL SUPPLEMENTAL", regexp.MustCompile(`(?i)ANNUAL\s+SUPPLEMENTAL`)},
	{"15 DAYS AFTER PETITION DEADLINE", regexp.MustCompile(`(?i)15\s+DAYS\s+AFTER\s+PETITION`)},
}

var standaloneCheckRe = regexp.MustCompile(`^\s*` + checkGlyph + `\s*$`)

// DecodeReportTypes determines which report-type checkboxes are marked on
// page 1 and derives their annotations (quarterly deadline, amendment date).
// periodEnd may be empty; it only feeds the quarterly annotation. The result
// is the ordered label list; an empty list means no checkbox was detected.
func DecodeReportTypes(firstPageText, periodEnd string) []string {
	section := reportTypeSection(firstPageText)
	sectionLines := strings.Split(section, "\n")

	var labels []string
	for _, entry := range reportTypePatterns {
		loc := entry.pattern.FindStringIndex(section)
		if loc == nil {
			continue
		}

		lineIdx := strings.Count(section[:loc[0]], "\n")
		if !adjacentLineChecked(sectionLines, lineIdx) {
			continue
		}
		if containsLabel(labels, entry.label) {
			continue
		}

		labels = append(labels, entry.label)

		if strings.Contains(entry.label, "QUARTERLY") && periodEnd != "" {
			if quarter := quarterDeadline(periodEnd); quarter != "" {
				labels = append(labels, "Quarter: "+quarter)
			}
		}

		if strings.Contains(entry.label, "AMENDING") {
			if date := amendmentDate(section[loc[0]:]); date != "" {
				labels = append(labels, "Amending: "+date)
			}
		}
	}

	return labels
}

// FormatReportTypes renders the decoded labels as the single display string,
// "Unknown" when nothing matched.
func FormatReportTypes(labels []string) string {
	if len(labels) == 0 {
		return "Unknown"
	}
	return strings.Join(labels, ReportTypeSeparator)
}

// reportTypeSection isolates the text block between the TYPE OF REPORT
// marker (item 15 on the form) and the treasurer signature block.
func reportTypeSection(text string) string {
	var sectionLines []string
	inSection := false

	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, "TYPE OF REPORT") ||
			(strings.Contains(line, "15.") && strings.Contains(line, "TYPE")) {
			inSection = true
			continue
		}
		if !inSection {
			continue
		}
		if strings.Contains(line, "TREASURER") && strings.Contains(line, "SIGNATURE") {
			break
		}
		if strings.Contains(line, "COMMITTEE TREASURER") {
			break
		}
		sectionLines = append(sectionLines, line)
	}

	return strings.Join(sectionLines, "\n")
}

// adjacentLineChecked reports whether the line before or after lineIdx is a
// standalone check glyph.
func adjacentLineChecked(lines []string, lineIdx int) bool {
	if lineIdx > 0 && standaloneCheckRe.MatchString(lines[lineIdx-1]) {
		return true
	}
	if lineIdx+1 < len(lines) && standaloneCheckRe.MatchString(lines[lineIdx+1]) {
		return true
	}
	return false
}

func containsLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}

// quarterDeadline maps a period-end date to the quarterly filing deadline
// label. Breakpoints follow the commission calendar: reports ending in
// January file by Jan 15, through April by Apr 15, through July by Jul 15,
// and the rest by Oct 15.
func quarterDeadline(periodEnd string) string {
	endDate, err := time.Parse(dateLayout, periodEnd)
	if err != nil {
		return ""
	}
	switch month := int(endDate.Month()); {
	case month <= 1:
		return "Jan 15"
	case month <= 4:
		return "Apr 15"
	case month <= 7:
		return "Jul 15"
	default:
		return "Oct 15"
	}
}

var underscoreCommaRe = regexp.MustCompile(`[_,]+`)
var whitespaceRe = regexp.MustCompile(`\s+`)

// amendmentDate reconstructs the handwritten amendment date. The form prints
// it on the party line after the checkbox, with each character separated by
// fill-in underscores, e.g.
//
//	REPUBLICAN DEMOCRAT _____ J _ u _ l _ y ____ __ 3 ______, 20 _ 2 _ 3 ___
//
// which should come back as "July 3 2023". Only the 500 characters after
// the AMENDING match are searched.
func amendmentDate(sectionFromMatch string) string {
	window := sectionFromMatch
	if len(window) > 500 {
		window = window[:500]
	}

	for _, line := range strings.Split(window, "\n") {
		if !strings.Contains(line, "DEMOCRAT") {
			continue
		}
		rest := strings.ReplaceAll(strings.ReplaceAll(line, "DEMOCRAT", ""), "REPUBLICAN", "")
		if !strings.Contains(line, "_") && !containsAlpha(rest) {
			continue
		}

		parts := strings.SplitN(line, "DEMOCRAT", 2)
		if len(parts) < 2 {
			continue
		}

		cleaned := underscoreCommaRe.ReplaceAllString(parts[1], " ")
		cleaned = strings.TrimSpace(whitespaceRe.ReplaceAllString(cleaned, " "))

		var monthParts []string
		var yearParts []string
		day := ""

		for _, token := range strings.Fields(cleaned) {
			switch {
			case isAlphaToken(token):
				monthParts = append(monthParts, token)
			case isDigitToken(token):
				if day == "" && len(token) <= 2 {
					day = token
				} else {
					yearParts = append(yearParts, token)
				}
			}
		}

		if len(monthParts) == 0 || day == "" {
			continue
		}

		date := strings.Join(monthParts, "") + " " + day
		if len(yearParts) > 0 {
			date += " " + strings.Join(yearParts, "")
		}
		return date
	}

	return ""
}

func containsAlpha(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}

func isAlphaToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			return false
		}
	}
	return true
}

func isDigitToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
