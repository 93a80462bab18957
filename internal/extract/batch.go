package extract

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/Erross/MO-ethics-Full/internal/mec"
	"github.com/Erross/MO-ethics-Full/internal/pdf"
)

// Extractor walks a report's pages and turns classified tables into donor
// and expense records.
type Extractor struct {
	settings    pdf.TableSettings
	maxFileSize int64
	log         *logrus.Logger
}

func NewExtractor(settings pdf.TableSettings, maxFileSize int64, log *logrus.Logger) *Extractor {
	return &Extractor{settings: settings, maxFileSize: maxFileSize, log: log}
}

// DonorsFromFile extracts every itemized contribution received that the
// report discloses, deduplicated within the report.
func (e *Extractor) DonorsFromFile(path string) ([]DonorRecord, error) {
	doc, meta, err := e.open(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	var donors []DonorRecord
	for pageNum := 1; pageNum <= doc.NumPages(); pageNum++ {
		text := doc.PageText(pageNum)
		if !IsContributionsPage(text) {
			continue
		}

		tables := doc.PageTables(pageNum)
		e.log.WithFields(logrus.Fields{
			"file":   meta.Filename,
			"page":   pageNum,
			"tables": len(tables),
		}).Debug("contributions page detected")

		for _, table := range tables {
			donors = append(donors, ParseContributionTable(table, meta)...)
		}
	}

	return DeduplicateDonors(donors), nil
}

// ExpensesFromFile extracts every expenditure and outbound contribution
// the report discloses, deduplicated within the report. A page carrying
// more than one expense layout is parsed once per layout.
func (e *Extractor) ExpensesFromFile(path string) ([]ExpenseRecord, error) {
	doc, meta, err := e.open(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	var expenses []ExpenseRecord
	for pageNum := 1; pageNum <= doc.NumPages(); pageNum++ {
		kinds := ExpensePageKinds(doc.PageText(pageNum))
		if len(kinds) == 0 {
			continue
		}

		tables := doc.PageTables(pageNum)
		e.log.WithFields(logrus.Fields{
			"file":   meta.Filename,
			"page":   pageNum,
			"kinds":  kinds,
			"tables": len(tables),
		}).Debug("expense page detected")

		for _, kind := range kinds {
			for _, table := range tables {
				switch kind {
				case PageDetailed:
					expenses = append(expenses, ParseDetailedExpenseTable(table, meta)...)
				case PageContributions:
					expenses = append(expenses, ParseContributionsMadeTable(table, meta)...)
				case PageCategory:
					expenses = append(expenses, ParseCategoryExpenseTable(table, meta)...)
				}
			}
		}
	}

	return DeduplicateExpenses(expenses), nil
}

func (e *Extractor) open(path string) (*pdf.Document, mec.ReportMetadata, error) {
	if err := pdf.Probe(path, e.maxFileSize); err != nil {
		return nil, mec.ReportMetadata{}, err
	}

	doc, err := pdf.Open(path, e.settings)
	if err != nil {
		return nil, mec.ReportMetadata{}, err
	}

	firstPage, err := doc.FirstPageText()
	if err != nil {
		doc.Close()
		return nil, mec.ReportMetadata{}, fmt.Errorf("reading first page of %s: %w", filepath.Base(path), err)
	}

	return doc, mec.ResolveMetadata(filepath.Base(path), firstPage), nil
}

// BatchSummary reports what a batch run did with the PDF directory.
type BatchSummary struct {
	Found      int
	Processed  []string
	Skipped    []string
	Unreadable []string
	Failed     []string
	Donors     int
	Expenses   int
}

// Batch runs the full pipeline over a directory of report PDFs: version
// filtering, then per-report donor and expense extraction.
type Batch struct {
	extractor *Extractor
	versions  *mec.VersionFilter
	log       *logrus.Logger
}

func NewBatch(settings pdf.TableSettings, maxFileSize int64, log *logrus.Logger) *Batch {
	return &Batch{
		extractor: NewExtractor(settings, maxFileSize, log),
		versions:  mec.NewVersionFilter(settings, maxFileSize, log),
		log:       log,
	}
}

// Run extracts donors and expenses from every current report in the
// directory. Per-file extraction failures are recorded in the summary and
// do not stop the batch.
func (b *Batch) Run(pdfDir string) ([]DonorRecord, []ExpenseRecord, BatchSummary, error) {
	paths, err := filepath.Glob(filepath.Join(pdfDir, "*.pdf"))
	if err != nil {
		return nil, nil, BatchSummary{}, fmt.Errorf("scanning %s: %w", pdfDir, err)
	}
	if len(paths) == 0 {
		return nil, nil, BatchSummary{}, fmt.Errorf("no PDF files found in %s", pdfDir)
	}
	sort.Strings(paths)

	summary := BatchSummary{Found: len(paths)}

	kept, unreadable := b.versions.FilterLatest(paths)
	summary.Unreadable = unreadable

	keptSet := make(map[string]struct{}, len(kept))
	for _, path := range kept {
		keptSet[path] = struct{}{}
	}
	for _, path := range paths {
		if _, ok := keptSet[path]; !ok && !containsString(unreadable, filepath.Base(path)) {
			summary.Skipped = append(summary.Skipped, filepath.Base(path))
		}
	}

	var allDonors []DonorRecord
	var allExpenses []ExpenseRecord

	for _, path := range kept {
		name := filepath.Base(path)

		donors, derr := b.extractor.DonorsFromFile(path)
		expenses, eerr := b.extractor.ExpensesFromFile(path)
		if derr != nil || eerr != nil {
			err := derr
			if err == nil {
				err = eerr
			}
			b.log.WithError(err).WithField("file", name).Error("extraction failed")
			summary.Failed = append(summary.Failed, name)
			continue
		}

		allDonors = append(allDonors, donors...)
		allExpenses = append(allExpenses, expenses...)
		summary.Processed = append(summary.Processed, name)

		b.log.WithFields(logrus.Fields{
			"file":     name,
			"donors":   len(donors),
			"expenses": len(expenses),
		}).Info("report processed")
	}

	summary.Donors = len(allDonors)
	summary.Expenses = len(allExpenses)

	return allDonors, allExpenses, summary, nil
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
