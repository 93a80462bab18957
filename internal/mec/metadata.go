// Package mec decodes Missouri Ethics Commission committee disclosure
// reports: page-1 metadata, report versioning, and report-type checkboxes.
package mec

import (
	"regexp"
	"strings"
	"time"
)

// checkGlyph is how the MEC form font's checked-box symbol surfaces in
// extracted text. Tied to this extraction engine's glyph substitution; a
// different engine may render the same mark differently.
const checkGlyph = "4"

// dateLayout is the M/D/YYYY format used throughout the forms.
const dateLayout = "1/2/2006"

// ReportMetadata identifies one filed report. Derived once from page-1 text,
// immutable afterwards; fields missing from the text stay empty.
type ReportMetadata struct {
	Filename      string
	CommitteeName string
	PeriodStart   string
	PeriodEnd     string
	DateFiled     string
	IsAmendment   bool
}

// ReportPeriod renders the covered date range for output rows.
func (m ReportMetadata) ReportPeriod() string {
	return m.PeriodStart + " to " + m.PeriodEnd
}

// FiledTime parses the filing date for version ordering. A missing or
// unparseable date sorts as the oldest possible value.
func (m ReportMetadata) FiledTime() time.Time {
	if m.DateFiled == "" {
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, m.DateFiled)
	if err != nil {
		return time.Time{}
	}
	return t
}

var (
	// Newer form revisions label the committee "Name of Committee"; the
	// classic CD1 header uses the uppercase form.
	committeeLabelRe = regexp.MustCompile(`(?i)Name of Committee\s*\n\s*([^\n]+)`)
	committeeFullRe  = regexp.MustCompile(`FULL NAME OF COMMITTEE\s*\n\s*([^\n]+)`)

	periodRe = regexp.MustCompile(`(?s)FROM\s+(\d{1,2}/\d{1,2}/\d{4}).*?THROUGH\s+(\d{1,2}/\d{1,2}/\d{4})`)

	reportDateRe   = regexp.MustCompile(`(?i)Report Date\s*\n\s*(\d{1,2}/\d{1,2}/\d{4})`)
	dateOfReportRe = regexp.MustCompile(`(?s)DATE OF REPORT.*?(\d{1,2}/\d{1,2}/\d{4})`)
)

// ResolveMetadata derives report metadata from page-1 text. Every field is
// looked up independently; an absent pattern leaves its field empty and is
// never an error.
func ResolveMetadata(filename, firstPageText string) ReportMetadata {
	metadata := ReportMetadata{Filename: filename}

	if match := committeeLabelRe.FindStringSubmatch(firstPageText); match != nil {
		metadata.CommitteeName = strings.TrimSpace(match[1])
	} else if match := committeeFullRe.FindStringSubmatch(firstPageText); match != nil {
		metadata.CommitteeName = strings.TrimSpace(match[1])
	}

	if match := periodRe.FindStringSubmatch(firstPageText); match != nil {
		metadata.PeriodStart = match[1]
		metadata.PeriodEnd = match[2]
	}

	if match := reportDateRe.FindStringSubmatch(firstPageText); match != nil {
		metadata.DateFiled = match[1]
	} else if match := dateOfReportRe.FindStringSubmatch(firstPageText); match != nil {
		metadata.DateFiled = match[1]
	}

	metadata.IsAmendment = hasAmendmentMark(firstPageText)

	return metadata
}

// hasAmendmentMark reports whether the AMENDING PREVIOUS REPORT checkbox is
// marked: the adjacent line holds the standalone check glyph.
func hasAmendmentMark(text string) bool {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !strings.Contains(line, "AMENDING PREVIOUS REPORT") {
			continue
		}
		if i > 0 && strings.TrimSpace(lines[i-1]) == checkGlyph {
			return true
		}
		if i < len(lines)-1 && strings.TrimSpace(lines[i+1]) == checkGlyph {
			return true
		}
	}
	return false
}
