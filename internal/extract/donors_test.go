package extract

import (
	"testing"

	"github.com/Erross/MO-ethics-Full/internal/mec"
)

func testMetadata() mec.ReportMetadata {
	return mec.ReportMetadata{
		Filename:      "FHF_2024_Step8_217957.pdf",
		CommitteeName: "Francis Howell Families",
		PeriodStart:   "1/1/2024",
		PeriodEnd:     "3/31/2024",
		DateFiled:     "4/15/2024",
	}
}

func TestParseContributionTable(t *testing.T) {
	rows := [][]string{
		{"NAME AND ADDRESS", "DATE RECEIVED", "AMOUNT", "MONETARY IN-KIND"},
		{"ADDRESS: Jane Smith\n456 Oak Ave\nChicago, IL 60601", "1/15/2024", "$500.00", "4 MONETARY"},
		{"SUBTOTAL OF CONTRIBUTIONS", "", "$500.00", ""},
	}

	donors := ParseContributionTable(rows, testMetadata())
	if len(donors) != 1 {
		t.Fatalf("expected 1 donor, got %d", len(donors))
	}

	donor := donors[0]
	if donor.DonorName != "Jane Smith" {
		t.Errorf("name = %q, want %q", donor.DonorName, "Jane Smith")
	}
	if donor.DonorAddress != "456 Oak Ave" {
		t.Errorf("address = %q, want %q", donor.DonorAddress, "456 Oak Ave")
	}
	// No CITY/STATE label in the cell, so the third line stays unassigned.
	if donor.DonorCityState != "" {
		t.Errorf("city/state = %q, want empty", donor.DonorCityState)
	}
	if donor.DateReceived != "1/15/2024" {
		t.Errorf("date = %q, want 1/15/2024", donor.DateReceived)
	}
	if donor.Amount != "500.00" {
		t.Errorf("amount = %q, want 500.00", donor.Amount)
	}
	if donor.ContributionType != ContributionMonetary {
		t.Errorf("type = %q, want %q", donor.ContributionType, ContributionMonetary)
	}
	if donor.SourceReport != "FHF_2024_Step8_217957.pdf" {
		t.Errorf("source report = %q", donor.SourceReport)
	}
	if donor.ReportPeriod != "1/1/2024 to 3/31/2024" {
		t.Errorf("report period = %q", donor.ReportPeriod)
	}
}

func TestParseContributionTableRejectsBoilerplate(t *testing.T) {
	rows := [][]string{
		{"HEADER", "DATE RECEIVED", "AMOUNT"},
		{"ADDRESS: SUBTOTAL of page", "1/1/2024", "$100.00"},
		{"NAME: MISSOURI ETHICS COMMISSION", "1/1/2024", "$100.00"},
		{"Some instruction text without a label", "1/1/2024", "$100.00"},
	}

	donors := ParseContributionTable(rows, testMetadata())
	if len(donors) != 0 {
		t.Fatalf("expected no donors, got %d", len(donors))
	}
}

func TestCleanDonorRecordSplitsCompositeCell(t *testing.T) {
	donor := DonorRecord{
		DonorName: "NAME:\nJohn Doe\nADDRESS:\n123 Main St\nCITY/STATE:\nSt. Louis, MO 63101",
	}

	cleaned, ok := cleanDonorRecord(donor)
	if !ok {
		t.Fatal("expected record to survive cleaning")
	}
	if cleaned.DonorName != "John Doe" {
		t.Errorf("name = %q, want John Doe", cleaned.DonorName)
	}
	if cleaned.DonorAddress != "123 Main St" {
		t.Errorf("address = %q, want 123 Main St", cleaned.DonorAddress)
	}
	if cleaned.DonorCityState != "St. Louis, MO 63101" {
		t.Errorf("city/state = %q, want St. Louis, MO 63101", cleaned.DonorCityState)
	}
}

func TestCleanDonorRecordNameOnAddressLine(t *testing.T) {
	// The name value landing on the ADDRESS: line is a known form-field
	// transposition.
	donor := DonorRecord{
		DonorName: "NAME:\nADDRESS: Mary Jones\n789 Elm St\nSpringfield, MO 65801",
	}

	cleaned, ok := cleanDonorRecord(donor)
	if !ok {
		t.Fatal("expected record to survive cleaning")
	}
	if cleaned.DonorName != "Mary Jones" {
		t.Errorf("name = %q, want Mary Jones", cleaned.DonorName)
	}
	if cleaned.DonorAddress != "789 Elm St" {
		t.Errorf("address = %q, want 789 Elm St", cleaned.DonorAddress)
	}
}

func TestCleanDonorRecordEmployerHoldsCityState(t *testing.T) {
	// An employer value ending in a ZIP code is a transposed city/state.
	donor := DonorRecord{
		DonorName: "NAME:\nSam Green\nADDRESS:\n12 Pine Rd\nEMPLOYER: Wentzville, MO 63385",
	}

	cleaned, ok := cleanDonorRecord(donor)
	if !ok {
		t.Fatal("expected record to survive cleaning")
	}
	if cleaned.DonorCityState != "Wentzville, MO 63385" {
		t.Errorf("city/state = %q, want Wentzville, MO 63385", cleaned.DonorCityState)
	}
}

func TestCleanDonorRecordRejectsUnsplittable(t *testing.T) {
	donor := DonorRecord{DonorName: "NAME:\nADDRESS:\nCITY/STATE:"}
	if _, ok := cleanDonorRecord(donor); ok {
		t.Error("expected all-label cell to be rejected")
	}

	// A single-line name echoing both labels never split.
	donor = DonorRecord{DonorName: "ADDRESS: something CITY something"}
	if _, ok := cleanDonorRecord(donor); ok {
		t.Error("expected unsplit composite to be rejected")
	}
}

func TestContributionTypeFromCell(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want string
	}{
		{"check before monetary", "4 MONETARY IN-KIND", ContributionMonetary},
		{"x before monetary", "X MONETARY", ContributionMonetary},
		{"ballot glyph", "☑ MONETARY", ContributionMonetary},
		{"check between labels", "MONETARY 4 IN-KIND", ContributionInKind},
		{"bare in-kind", "IN-KIND", ContributionInKind},
		{"no mark", "MONETARY IN-KIND", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := contributionTypeFromCell(tt.cell); got != tt.want {
				t.Errorf("contributionTypeFromCell(%q) = %q, want %q", tt.cell, got, tt.want)
			}
		})
	}
}
