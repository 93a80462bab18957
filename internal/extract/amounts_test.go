package extract

import "testing"

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want string
	}{
		{"dollar with commas", "$1,234.56", "1234.56"},
		{"dollar with space", "$ 4,990.53", "4990.53"},
		{"paid keyword", "Paid 161.80 Incurred", "161.80"},
		{"checkbox noise before keyword", "$ 4 Paid 161.80 Incurred", "161.80"},
		{"keyword split across lines", "Paid\n161.80", "161.80"},
		{"three digit dollar", "$146.00", "146.00"},
		{"dollar no decimals", "$ 995", "995"},
		{"small dollar amount", "$10.75", "10.75"},
		{"standalone with commas", "1,250.00", "1250.00"},
		{"standalone large", "500.00", "500.00"},
		{"standalone small decimal", "8.06", "8.06"},
		{"no digits", "MONETARY", ""},
		{"empty cell", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractAmount(tt.cell)
			if got != tt.want {
				t.Errorf("ExtractAmount(%q) = %q, want %q", tt.cell, got, tt.want)
			}
		})
	}
}

func TestExtractAmountKeywordBelowFloorFallsThrough(t *testing.T) {
	// A sub-floor number after Paid is checkbox noise; the cascade should
	// keep going and find the real amount.
	got := ExtractAmount("Paid 0.25 $146.00")
	if got != "146.00" {
		t.Errorf("expected cascade to fall through to 146.00, got %q", got)
	}
}

func TestIsValidAmount(t *testing.T) {
	tests := []struct {
		amount string
		want   bool
	}{
		{"0.50", true},
		{"0.49", false},
		{"0.00", false},
		{"161.80", true},
		{"1234.56", true},
		{"", false},
		{"abc", false},
	}

	for _, tt := range tests {
		if got := IsValidAmount(tt.amount); got != tt.want {
			t.Errorf("IsValidAmount(%q) = %v, want %v", tt.amount, got, tt.want)
		}
	}
}

func TestIsZeroAmount(t *testing.T) {
	if !isZeroAmount("0.00") {
		t.Error("expected 0.00 to be zero")
	}
	if isZeroAmount("0.01") {
		t.Error("expected 0.01 to be nonzero")
	}
	if isZeroAmount("not a number") {
		t.Error("unparseable strings are not zero")
	}
}
