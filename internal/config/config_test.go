package config

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.SearchType != SearchCommittee {
		t.Errorf("SearchType = %q, want %q", cfg.SearchType, SearchCommittee)
	}
	if cfg.CommitteeName == "" {
		t.Error("expected a default committee name")
	}
	if cfg.MaxFileSize != DefaultMaxFileSize {
		t.Errorf("MaxFileSize = %d, want %d", cfg.MaxFileSize, DefaultMaxFileSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"empty committee", func(c *Config) { c.CommitteeName = "" }, "committee name"},
		{"empty candidate", func(c *Config) { c.SearchType = SearchCandidate }, "candidate name"},
		{"empty mecid", func(c *Config) { c.SearchType = SearchMECID; c.MECID = "" }, "MEC ID"},
		{"bad search type", func(c *Config) { c.SearchType = "bogus" }, "invalid search type"},
		{"empty dir", func(c *Config) { c.PDFDirectory = "" }, "PDF directory"},
		{"bad size", func(c *Config) { c.MaxFileSize = 0 }, "file size"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CommitteeName = "Francis Howell Families"
	if got := cfg.DisplayName(); got != "Francis Howell Families" {
		t.Errorf("DisplayName = %q", got)
	}

	cfg.SearchType = SearchCandidate
	cfg.CandidateName = "Jane Doe"
	if got := cfg.DisplayName(); got != "Jane Doe" {
		t.Errorf("DisplayName = %q", got)
	}

	cfg.SearchType = SearchMECID
	if got := cfg.DisplayName(); got != cfg.MECID {
		t.Errorf("DisplayName = %q, want MECID", got)
	}
}

func TestFilePrefix(t *testing.T) {
	tests := []struct {
		name      string
		committee string
		want      string
	}{
		{"initials", "Francis Howell Families", "FHF"},
		{"skip filler words", "Citizens for a Better Tomorrow", "CBT"},
		{"single word falls back", "Progress", "PROGRESS"},
		{"long single word clamps", "Accountability", "ACCOUNTABI"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.CommitteeName = tt.committee
			if got := cfg.FilePrefix(); got != tt.want {
				t.Errorf("FilePrefix(%q) = %q, want %q", tt.committee, got, tt.want)
			}
		})
	}
}

func TestReportFilename(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CommitteeName = "Francis Howell Families"

	got := cfg.ReportFilename(2024, "217957")
	if got != "FHF_2024_Step8_217957.pdf" {
		t.Errorf("ReportFilename = %q", got)
	}

	re := cfg.ReportFilenameRegexp()
	match := re.FindStringSubmatch(got)
	if match == nil {
		t.Fatalf("generated filename %q does not match its own pattern", got)
	}
	if match[1] != "2024" || match[2] != "217957" {
		t.Errorf("captures = %q, %q", match[1], match[2])
	}

	if re.MatchString("OTHER_2024_Step8_1.pdf") {
		t.Error("pattern matched a different prefix")
	}
}
