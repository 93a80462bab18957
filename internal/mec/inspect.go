package mec

import (
	"path/filepath"

	"github.com/Erross/MO-ethics-Full/internal/pdf"
)

// ReportInfo is the flat single-report view used for ad hoc inspection of
// one filing.
type ReportInfo struct {
	Filename      string `json:"filename"`
	DateOfReport  string `json:"date_of_report"`
	CommitteeName string `json:"committee_name"`
	PeriodStart   string `json:"period_start"`
	PeriodEnd     string `json:"period_end"`
	ReportType    string `json:"report_type"`
}

// InspectFile reads one PDF and returns its report identification fields,
// including the decoded report type.
func InspectFile(path string, settings pdf.TableSettings, maxFileSize int64) (ReportInfo, error) {
	if err := pdf.Probe(path, maxFileSize); err != nil {
		return ReportInfo{}, err
	}

	doc, err := pdf.Open(path, settings)
	if err != nil {
		return ReportInfo{}, err
	}
	defer doc.Close()

	text, err := doc.FirstPageText()
	if err != nil {
		return ReportInfo{}, err
	}

	meta := ResolveMetadata(filepath.Base(path), text)
	labels := DecodeReportTypes(text, meta.PeriodEnd)

	return ReportInfo{
		Filename:      meta.Filename,
		DateOfReport:  meta.DateFiled,
		CommitteeName: meta.CommitteeName,
		PeriodStart:   meta.PeriodStart,
		PeriodEnd:     meta.PeriodEnd,
		ReportType:    FormatReportTypes(labels),
	}, nil
}
