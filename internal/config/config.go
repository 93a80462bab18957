package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Search type constants
	SearchCommittee = "committee"
	SearchCandidate = "candidate"
	SearchMECID     = "mecid"

	// Default values
	DefaultCommitteeName = "Francis Howell Families"
	DefaultMECID         = "C2116"
	DefaultPDFDir        = "PDFs"
	DefaultDonorsCSV     = "donors_data.csv"
	DefaultExpensesCSV   = "expenses_data.csv"
	DefaultLogLevel      = "info"
	DefaultMaxFileSize   = 100 * 1024 * 1024 // 100MB

	maxPrefixLen = 10
)

// Config holds all configuration for a single extraction run. It is built
// once at startup and passed by value into every component; nothing mutates
// it afterwards.
type Config struct {
	// Search selection. Exactly one of CommitteeName/CandidateName/MECID
	// drives the search; SearchType records which.
	SearchType    string
	CommitteeName string
	CandidateName string
	MECID         string

	// Paths
	PDFDirectory string
	DonorsCSV    string
	ExpensesCSV  string

	// Application configuration
	LogLevel    string
	MaxFileSize int64
	Debug       bool

	// ValidateOnly runs the filename validator instead of extraction.
	ValidateOnly bool
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		SearchType:    SearchCommittee,
		CommitteeName: DefaultCommitteeName,
		MECID:         DefaultMECID,
		PDFDirectory:  DefaultPDFDir,
		DonorsCSV:     DefaultDonorsCSV,
		ExpensesCSV:   DefaultExpensesCSV,
		LogLevel:      DefaultLogLevel,
		MaxFileSize:   DefaultMaxFileSize,
	}
}

// LoadFromFlags parses command line flags and returns a configuration
func LoadFromFlags() (Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()

	pflag.Parse()

	populateConfigFromViper(&cfg)

	// The search type follows whichever selector was given, most
	// specific first.
	switch {
	case viper.GetString("mecid-only") != "":
		cfg.SearchType = SearchMECID
		cfg.MECID = viper.GetString("mecid-only")
	case cfg.CandidateName != "":
		cfg.SearchType = SearchCandidate
	default:
		cfg.SearchType = SearchCommittee
	}

	if expandedPath, err := filepath.Abs(cfg.PDFDirectory); err == nil {
		cfg.PDFDirectory = expandedPath
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg Config) {
	viper.SetEnvPrefix("MEC")
	viper.AutomaticEnv()

	viper.SetDefault("committee", cfg.CommitteeName)
	viper.SetDefault("candidate", cfg.CandidateName)
	viper.SetDefault("mecid", cfg.MECID)
	viper.SetDefault("mecid-only", "")
	viper.SetDefault("dir", cfg.PDFDirectory)
	viper.SetDefault("donors-csv", cfg.DonorsCSV)
	viper.SetDefault("expenses-csv", cfg.ExpensesCSV)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
	viper.SetDefault("validate", false)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg Config) {
	pflag.String("committee", cfg.CommitteeName, "Committee name to process")
	pflag.String("candidate", cfg.CandidateName, "Candidate name to process")
	pflag.String("mecid", cfg.MECID, "MEC committee ID for filtering results")
	pflag.String("mecid-only", "", "Search by MEC ID alone")
	pflag.String("dir", cfg.PDFDirectory, "Directory containing downloaded report PDFs")
	pflag.String("donors-csv", cfg.DonorsCSV, "Output CSV for donor records")
	pflag.String("expenses-csv", cfg.ExpensesCSV, "Output CSV for expense records")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum PDF file size in bytes")
	pflag.Bool("validate", false, "Validate report filenames against filing dates instead of extracting")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	for _, name := range []string{
		"committee", "candidate", "mecid", "mecid-only",
		"dir", "donors-csv", "expenses-csv", "loglevel", "maxfilesize", "validate",
	} {
		_ = viper.BindPFlag(name, pflag.Lookup(name))
	}
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.CommitteeName = viper.GetString("committee")
	cfg.CandidateName = viper.GetString("candidate")
	cfg.MECID = viper.GetString("mecid")
	cfg.PDFDirectory = viper.GetString("dir")
	cfg.DonorsCSV = viper.GetString("donors-csv")
	cfg.ExpensesCSV = viper.GetString("expenses-csv")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
	cfg.Debug = cfg.LogLevel == "debug"
	cfg.ValidateOnly = viper.GetBool("validate")
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	switch c.SearchType {
	case SearchCommittee:
		if c.CommitteeName == "" {
			return errors.New("committee name cannot be empty")
		}
	case SearchCandidate:
		if c.CandidateName == "" {
			return errors.New("candidate name cannot be empty")
		}
	case SearchMECID:
		if c.MECID == "" {
			return errors.New("MEC ID cannot be empty")
		}
	default:
		return fmt.Errorf("invalid search type: %s", c.SearchType)
	}

	if c.PDFDirectory == "" {
		return errors.New("PDF directory cannot be empty")
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// EnsurePDFDirectory creates the PDF directory if it does not exist.
func (c Config) EnsurePDFDirectory() error {
	if _, err := os.Stat(c.PDFDirectory); os.IsNotExist(err) {
		if err := os.MkdirAll(c.PDFDirectory, 0o750); err != nil {
			return fmt.Errorf("cannot create PDF directory %s: %w", c.PDFDirectory, err)
		}
	} else if err != nil {
		return fmt.Errorf("cannot access PDF directory %s: %w", c.PDFDirectory, err)
	}
	return nil
}

// DisplayName returns the human-readable search target.
func (c Config) DisplayName() string {
	switch c.SearchType {
	case SearchCandidate:
		return c.CandidateName
	case SearchMECID:
		return c.MECID
	default:
		return c.CommitteeName
	}
}

// filePrefixSkipWords are ignored when building initials for the file prefix.
var filePrefixSkipWords = map[string]bool{
	"for": true, "to": true, "the": true, "of": true,
	"and": true, "a": true, "an": true,
}

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]`)

// FilePrefix derives the short prefix used in report filenames from the
// search target, e.g. "Francis Howell Families" -> "FHF".
func (c Config) FilePrefix() string {
	words := strings.Fields(c.DisplayName())
	if len(words) == 0 {
		return ""
	}

	var initials strings.Builder
	for _, word := range words {
		if filePrefixSkipWords[strings.ToLower(word)] {
			continue
		}
		initials.WriteString(strings.ToUpper(word[:1]))
	}

	prefix := initials.String()
	if len(prefix) < 2 {
		cleaned := nonAlnum.ReplaceAllString(words[0], "")
		if len(cleaned) > maxPrefixLen {
			cleaned = cleaned[:maxPrefixLen]
		}
		prefix = strings.ToUpper(cleaned)
	}
	if len(prefix) > maxPrefixLen {
		prefix = prefix[:maxPrefixLen]
	}
	return prefix
}

// ReportFilename builds the expected filename for a downloaded report,
// e.g. "FHF_2024_Step8_217957.pdf".
func (c Config) ReportFilename(year int, reportID string) string {
	return fmt.Sprintf("%s_%d_Step8_%s.pdf", c.FilePrefix(), year, reportID)
}

// ReportFilenameRegexp returns the pattern matching this target's report
// filenames, with the year and report ID captured.
func (c Config) ReportFilenameRegexp() *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`^%s_(\d{4})_Step8_(\d+)\.pdf$`, regexp.QuoteMeta(c.FilePrefix())))
}

// String returns a string representation of the configuration
func (c Config) String() string {
	return fmt.Sprintf("Config{SearchType: %s, Target: %s, PDFDirectory: %s, LogLevel: %s}",
		c.SearchType, c.DisplayName(), c.PDFDirectory, c.LogLevel)
}
