package extract

import (
	"regexp"
	"strings"

	"github.com/Erross/MO-ethics-Full/internal/mec"
)

// donorGarbagePatterns are boilerplate fragments that start rows which look
// like donor entries but are form furniture. Matched case-sensitively
// against the first cell, as they appear verbatim on the form.
var donorGarbagePatterns = []string{
	"SUBTOTAL", "TOTAL:", "SUM COLUMN", "ITEMIZED CONTRIBUTIONS",
	"NON-ITEMIZED", "FUND-RAISERS", "LOANS", "FORM CD",
	"MISSOURI ETHICS", "SUPPLEMENTAL", "Amendment Detail",
	"B. NON-ITEMIZED", "Added-Wolf",
}

var dateRe = regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})`)

// donorAmountRe is the simple in-column amount pattern; the contributions
// table keeps its amount in a dedicated column, so the full cascade is not
// needed here.
var donorAmountRe = regexp.MustCompile(`\$?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)

// trailingZipRe recognizes a city/state/zip value by its trailing ZIP code.
var trailingZipRe = regexp.MustCompile(`\s+\d{5}(-\d{4})?$`)

// ParseContributionTable extracts donor records from one contributions
// table. Rows whose first cell starts with the NAME: or ADDRESS: label are
// donor entries; everything else is form text.
func ParseContributionTable(rows [][]string, meta mec.ReportMetadata) []DonorRecord {
	if len(rows) < 2 {
		return nil
	}

	cols := locateDonorColumns(rows)

	startRow := 0
	if cols.headerRow != noColumn {
		startRow = cols.headerRow + 1
	}

	var donors []DonorRecord
	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if rowEmpty(row) {
			continue
		}

		firstCell := strings.TrimSpace(row[0])
		if !strings.HasPrefix(firstCell, "ADDRESS:") && !strings.HasPrefix(firstCell, "NAME:") {
			continue
		}

		donor, ok := parseDonorEntry(row, cols, meta)
		if !ok {
			continue
		}
		donor, ok = cleanDonorRecord(donor)
		if !ok {
			continue
		}
		donors = append(donors, donor)
	}

	return donors
}

// parseDonorEntry converts one table row into a raw donor record. The name
// field may still hold the whole multi-line composite cell; cleanDonorRecord
// splits it afterwards.
func parseDonorEntry(row []string, cols donorColumns, meta mec.ReportMetadata) (DonorRecord, bool) {
	donor := DonorRecord{
		SourceReport:  meta.Filename,
		CommitteeName: meta.CommitteeName,
		ReportPeriod:  meta.ReportPeriod(),
	}

	firstCell := strings.TrimSpace(row[0])

	for _, pattern := range donorGarbagePatterns {
		if strings.Contains(firstCell, pattern) {
			return DonorRecord{}, false
		}
	}
	if isAllDigits(firstCell) || len(firstCell) < 3 {
		return DonorRecord{}, false
	}

	donor.DonorName = firstCell

	if dateCell := cellAt(row, cols.dateCol); dateCell != "" {
		if match := dateRe.FindStringSubmatch(dateCell); match != nil {
			donor.DateReceived = match[1]
		}
	}

	if amountCell := cellAt(row, cols.amountCol); amountCell != "" {
		if match := donorAmountRe.FindStringSubmatch(amountCell); match != nil {
			donor.Amount = strings.ReplaceAll(match[1], ",", "")
		}
	}

	if typeCell := cellAt(row, cols.typeCol); typeCell != "" {
		donor.ContributionType = contributionTypeFromCell(typeCell)
	}

	if len(donor.DonorName) < 2 {
		return DonorRecord{}, false
	}

	return donor, true
}

// contributionTypeFromCell resolves the monetary/in-kind checkboxes. A box
// is marked when a check glyph sits in the text segment immediately before
// its label: between the previous label and this one, or from the start of
// the cell.
func contributionTypeFromCell(cell string) string {
	upper := strings.ToUpper(cell)

	if monetaryPos := strings.Index(upper, "MONETARY"); monetaryPos >= 0 {
		inKindPos := strings.Index(upper, "IN-KIND")
		if inKindPos < 0 {
			inKindPos = len(upper)
		}

		beforeMonetary := cell[:monetaryPos]
		if segmentChecked(beforeMonetary) {
			return ContributionMonetary
		}
		if inKindPos < len(upper) {
			beforeInKind := cell[monetaryPos:inKindPos]
			if strings.Contains(beforeInKind, "4") || strings.Contains(strings.ToUpper(beforeInKind), "X") {
				return ContributionInKind
			}
		}
		return ""
	}

	if strings.Contains(upper, "IN-KIND") || strings.Contains(upper, "IN KIND") {
		return ContributionInKind
	}

	return ""
}

// segmentChecked reports whether a checkbox mark appears in a cell segment.
func segmentChecked(segment string) bool {
	return strings.Contains(segment, "4") ||
		strings.Contains(strings.ToUpper(segment), "X") ||
		strings.Contains(segment, "☑")
}

// donorLabelTokens are label fragments that must not survive as a donor
// name; a name still equal to one of these means the split failed.
var donorLabelTokens = map[string]bool{
	"ADDRESS:": true, "CITY": true, "STATE": true,
	"EMPLOYER:": true, "COMMITTEE:": true, "NAME:": true,
}

var cityStateLabelRe = regexp.MustCompile(`(?i)CITY\s*/?\s*STATE:\s*`)

// cleanDonorRecord splits the composite name/address/city cell into its
// fields. The form prints NAME:/ADDRESS:/CITY/STATE:/EMPLOYER: labels and
// values on interleaved lines, and on some filings the value slots are
// transposed (the name arrives on the ADDRESS: line, the city/state in the
// EMPLOYER: column). Returns false when no usable name can be recovered.
func cleanDonorRecord(donor DonorRecord) (DonorRecord, bool) {
	if strings.Contains(donor.DonorName, "\n") {
		lines := nonEmptyLines(donor.DonorName)

		var name, address, cityState, employer string

		for i := 0; i < len(lines); i++ {
			line := lines[i]

			switch {
			// "NAME:" alone, value on the next line.
			case line == "NAME:" || (strings.HasPrefix(line, "NAME:") && strings.TrimSpace(strings.TrimPrefix(line, "NAME:")) == ""):
				if i+1 >= len(lines) {
					break
				}
				next := lines[i+1]
				if strings.HasPrefix(next, "ADDRESS:") {
					// Form-field swap: the name rode in on the
					// ADDRESS: line.
					nameText := strings.TrimSpace(strings.TrimPrefix(next, "ADDRESS:"))
					if nameText != "" && !hasLabelPrefix(nameText, "CITY", "EMPLOYER:", "COMMITTEE:") {
						name = nameText
						if i+2 < len(lines) {
							addrLine := lines[i+2]
							if !hasLabelPrefix(addrLine, "CITY", "EMPLOYER:", "COMMITTEE:", "ADDRESS:", "NAME:") {
								address = addrLine
							}
						}
						i++ // the ADDRESS: line is consumed
					}
				} else if !hasLabelPrefix(next, "ADDRESS:", "CITY", "EMPLOYER:", "COMMITTEE:") {
					name = next
				}

			// "ADDRESS: <name>" before any name was seen.
			case strings.HasPrefix(line, "ADDRESS:") && name == "":
				nameText := strings.TrimSpace(strings.TrimPrefix(line, "ADDRESS:"))
				if nameText != "" && !hasLabelPrefix(nameText, "CITY", "EMPLOYER:", "COMMITTEE:") {
					name = nameText
					if i+1 < len(lines) {
						next := lines[i+1]
						if !hasLabelPrefix(next, "CITY", "EMPLOYER:", "COMMITTEE:", "ADDRESS:", "NAME:") {
							address = next
						}
					}
				}

			// Bare "ADDRESS:", street on the next line.
			case strings.HasPrefix(line, "ADDRESS:") && name != "" && address == "":
				if strings.TrimSpace(strings.TrimPrefix(line, "ADDRESS:")) == "" && i+1 < len(lines) {
					next := lines[i+1]
					if !hasLabelPrefix(next, "CITY", "EMPLOYER:", "COMMITTEE:", "ADDRESS:", "NAME:") {
						address = next
					}
				}

			case strings.Contains(line, "CITY") && strings.Contains(line, "STATE"):
				cityText := strings.TrimSpace(cityStateLabelRe.ReplaceAllString(line, ""))
				if cityText != "" && !hasLabelPrefix(cityText, "EMPLOYER:", "COMMITTEE:") {
					// Whether this value is the street or the
					// city/state depends on what was already filled.
					if address == "" {
						address = cityText
					} else if cityState == "" {
						cityState = cityText
					}
				}
				if i+1 < len(lines) {
					next := lines[i+1]
					if !hasLabelPrefix(next, "EMPLOYER:", "COMMITTEE:", "ADDRESS:", "NAME:") {
						if address != "" && cityState == "" {
							cityState = next
						} else if address == "" {
							address = next
						}
					}
				}

			case strings.HasPrefix(line, "EMPLOYER:"):
				employerText := strings.TrimSpace(strings.TrimPrefix(line, "EMPLOYER:"))
				if employerText != "" {
					employer = employerText
				} else if i+1 < len(lines) {
					next := lines[i+1]
					if !hasLabelPrefix(next, "COMMITTEE:", "ADDRESS:", "CITY", "NAME:") {
						employer = next
					}
				}
			}
		}

		if name == "" || donorLabelTokens[name] {
			return DonorRecord{}, false
		}

		// Transposed employer/city columns: an employer value ending in
		// a ZIP code is really the city/state/zip.
		if cityState == "" && employer != "" && trailingZipRe.MatchString(employer) {
			cityState = employer
		}

		donor.DonorName = name
		donor.DonorAddress = address
		donor.DonorCityState = cityState
	}

	// A name still echoing both labels means the cell never split.
	if strings.Contains(donor.DonorName, "ADDRESS:") && strings.Contains(donor.DonorName, "CITY") {
		return DonorRecord{}, false
	}

	return donor, true
}

// nonEmptyLines splits on newlines, trims, and drops blanks.
func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// hasLabelPrefix reports whether the line starts with any of the given
// form labels.
func hasLabelPrefix(line string, prefixes ...string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

func isAllDigits(s string) bool {
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

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
