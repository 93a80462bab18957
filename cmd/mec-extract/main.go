package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/Erross/MO-ethics-Full/internal/config"
	"github.com/Erross/MO-ethics-Full/internal/csvout"
	"github.com/Erross/MO-ethics-Full/internal/extract"
	"github.com/Erross/MO-ethics-Full/internal/pdf"
	"github.com/Erross/MO-ethics-Full/internal/validate"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
)

func main() {
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	cfg, err := config.LoadFromFlags()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log := setupLogging(cfg)

	if cfg.Debug {
		log.Debugf("Starting with configuration: %s", cfg.String())
	}

	if err := cfg.EnsurePDFDirectory(); err != nil {
		log.Fatalf("PDF directory: %v", err)
	}

	settings := pdf.DefaultTableSettings()

	if cfg.ValidateOnly {
		runValidation(cfg, settings, log)
		return
	}

	runExtraction(cfg, settings, log)
}

func setupLogging(cfg config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

func runExtraction(cfg config.Config, settings pdf.TableSettings, log *logrus.Logger) {
	log.WithFields(logrus.Fields{
		"target": cfg.DisplayName(),
		"dir":    cfg.PDFDirectory,
	}).Info("starting extraction")

	batch := extract.NewBatch(settings, cfg.MaxFileSize, log)

	donors, expenses, summary, err := batch.Run(cfg.PDFDirectory)
	if err != nil {
		log.Fatalf("Extraction failed: %v", err)
	}

	if len(donors) > 0 {
		if err := csvout.WriteDonors(cfg.DonorsCSV, donors); err != nil {
			log.Fatalf("Writing donors: %v", err)
		}
		log.Infof("wrote %d donor record(s) to %s", len(donors), cfg.DonorsCSV)
	} else {
		log.Info("no donor data extracted")
	}

	if len(expenses) > 0 {
		if err := csvout.WriteExpenses(cfg.ExpensesCSV, expenses); err != nil {
			log.Fatalf("Writing expenses: %v", err)
		}
		log.Infof("wrote %d expense record(s) to %s", len(expenses), cfg.ExpensesCSV)
	} else {
		log.Info("no expense data extracted")
	}

	log.WithFields(logrus.Fields{
		"found":      summary.Found,
		"processed":  len(summary.Processed),
		"skipped":    len(summary.Skipped),
		"unreadable": len(summary.Unreadable),
		"failed":     len(summary.Failed),
	}).Info("extraction complete")

	if len(summary.Failed) > 0 {
		os.Exit(1)
	}
}

func runValidation(cfg config.Config, settings pdf.TableSettings, log *logrus.Logger) {
	validator := validate.New(settings, cfg.MaxFileSize, cfg.ReportFilenameRegexp(), cfg.ReportFilename, log)

	issues, err := validator.Run(cfg.PDFDirectory)
	if err != nil {
		log.Fatalf("Validation failed: %v", err)
	}

	if len(issues) > 0 {
		log.Warn("validation found issues; review mismatched files or re-download affected reports")
		os.Exit(1)
	}

	log.Info("validation complete, all reports OK")
}

func printVersion() {
	fmt.Printf("MEC Report Extractor\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
