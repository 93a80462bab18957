// Package validate cross-checks downloaded report filenames against the
// filing dates printed inside the PDFs. Filenames encode the filing year
// and the commission's report ID; a re-filed report downloaded under two
// different years is the signal that one of the names is wrong.
package validate

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/Erross/MO-ethics-Full/internal/mec"
	"github.com/Erross/MO-ethics-Full/internal/pdf"
)

// Issue statuses.
const (
	StatusMismatch = "MISMATCH"
	StatusError    = "ERROR"
)

// Issue is one filename whose encoded year could not be confirmed against
// the PDF's filing date.
type Issue struct {
	Filename     string
	ReportID     string
	FilenameYear int
	FilingDate   string
	FilingYear   int
	Status       string
	Message      string
	// SuggestedName is the corrected filename, set for mismatches only.
	SuggestedName string
}

// Validator checks a directory of downloaded reports.
type Validator struct {
	settings    pdf.TableSettings
	maxFileSize int64
	filenameRe  *regexp.Regexp
	// rename builds the corrected filename for a mismatch.
	rename func(year int, reportID string) string
	log    *logrus.Logger
}

func New(settings pdf.TableSettings, maxFileSize int64, filenameRe *regexp.Regexp,
	rename func(year int, reportID string) string, log *logrus.Logger) *Validator {
	return &Validator{
		settings:    settings,
		maxFileSize: maxFileSize,
		filenameRe:  filenameRe,
		rename:      rename,
		log:         log,
	}
}

type namedFile struct {
	path string
	name string
	year int
	id   string
}

// Run validates every report in the directory. Only report IDs downloaded
// under more than one year get the expensive PDF check; a unique ID has
// nothing to conflict with. Returns the issues found; an empty slice means
// every name checked out.
func (v *Validator) Run(pdfDir string) ([]Issue, error) {
	paths, err := filepath.Glob(filepath.Join(pdfDir, "*.pdf"))
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", pdfDir, err)
	}
	if len(paths) == 0 {
		v.log.Infof("no PDF files found in %s", pdfDir)
		return nil, nil
	}
	sort.Strings(paths)

	v.log.Infof("checking %d file(s)", len(paths))

	byReportID := make(map[string][]namedFile)
	var idOrder []string
	for _, path := range paths {
		name := filepath.Base(path)
		match := v.filenameRe.FindStringSubmatch(name)
		if match == nil {
			continue
		}
		year, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		id := match[2]
		if _, seen := byReportID[id]; !seen {
			idOrder = append(idOrder, id)
		}
		byReportID[id] = append(byReportID[id], namedFile{path: path, name: name, year: year, id: id})
	}

	var conflicting []string
	for _, id := range idOrder {
		files := byReportID[id]
		if len(files) < 2 {
			continue
		}
		years := make(map[int]struct{})
		for _, f := range files {
			years[f.year] = struct{}{}
		}
		if len(years) > 1 {
			conflicting = append(conflicting, id)
		}
	}

	if len(conflicting) == 0 {
		v.log.Info("no duplicate report IDs with conflicting years found")
		return nil, nil
	}

	v.log.Infof("found %d report ID(s) with multiple year versions", len(conflicting))

	var issues []Issue
	for _, id := range conflicting {
		for _, file := range byReportID[id] {
			if issue, ok := v.checkFile(file); ok {
				issues = append(issues, issue)
			}
		}
	}

	v.report(issues)
	return issues, nil
}

// checkFile compares one filename's year against the filing date inside
// the PDF. A matching year yields no issue.
func (v *Validator) checkFile(file namedFile) (Issue, bool) {
	issue := Issue{
		Filename:     file.name,
		ReportID:     file.id,
		FilenameYear: file.year,
	}

	meta, err := v.readMetadata(file.path)
	if err != nil || meta.DateFiled == "" {
		issue.Status = StatusError
		issue.Message = "could not extract filing date from PDF"
		v.log.WithField("file", file.name).Warn(issue.Message)
		return issue, true
	}

	issue.FilingDate = meta.DateFiled

	filingYear, ok := yearOf(meta.DateFiled)
	if !ok {
		issue.Status = StatusError
		issue.Message = fmt.Sprintf("could not parse year from date: %s", meta.DateFiled)
		v.log.WithField("file", file.name).Warn(issue.Message)
		return issue, true
	}

	issue.FilingYear = filingYear

	if filingYear == file.year {
		v.log.WithFields(logrus.Fields{
			"file":        file.name,
			"filing_date": meta.DateFiled,
		}).Info("year matches")
		return Issue{}, false
	}

	issue.Status = StatusMismatch
	issue.Message = fmt.Sprintf("filename year %d != filing year %d", file.year, filingYear)
	issue.SuggestedName = v.rename(filingYear, file.id)
	return issue, true
}

func (v *Validator) readMetadata(path string) (mec.ReportMetadata, error) {
	if err := pdf.Probe(path, v.maxFileSize); err != nil {
		return mec.ReportMetadata{}, err
	}
	doc, err := pdf.Open(path, v.settings)
	if err != nil {
		return mec.ReportMetadata{}, err
	}
	defer doc.Close()

	text, err := doc.FirstPageText()
	if err != nil {
		return mec.ReportMetadata{}, err
	}
	return mec.ResolveMetadata(filepath.Base(path), text), nil
}

func (v *Validator) report(issues []Issue) {
	if len(issues) == 0 {
		v.log.Info("all reports validated successfully")
		return
	}

	var mismatches, errors int
	for _, issue := range issues {
		if issue.Status == StatusMismatch {
			mismatches++
		} else {
			errors++
		}
	}
	v.log.Warnf("found %d issue(s): %d year mismatches, %d read errors", len(issues), mismatches, errors)

	for _, issue := range issues {
		if issue.Status != StatusMismatch {
			continue
		}
		v.log.WithFields(logrus.Fields{
			"file":        issue.Filename,
			"filing_date": issue.FilingDate,
		}).Warnf("filename says %d, should be %s", issue.FilenameYear, issue.SuggestedName)
	}
	for _, issue := range issues {
		if issue.Status != StatusError {
			continue
		}
		v.log.WithField("file", issue.Filename).Warn(issue.Message)
	}
}

var dateYearRe = regexp.MustCompile(`^\d{1,2}/\d{1,2}/(\d{4})$`)

// yearOf pulls the year out of an M/D/YYYY date string.
func yearOf(date string) (int, bool) {
	match := dateYearRe.FindStringSubmatch(date)
	if match == nil {
		return 0, false
	}
	year, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return year, true
}
