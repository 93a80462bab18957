// Package pdf wraps document access for MEC disclosure reports: per-page
// plain text for pattern matching and grid-line based tables for record
// parsing.
package pdf

import (
	"errors"
	"fmt"
	"os"
	"strings"

	pdfplumber "github.com/allieus/pdfplumber-go"
	ledongthuc "github.com/ledongthuc/pdf"
)

// ErrUnreadable marks a document whose first page yields no usable text.
// Callers log the filename and skip the file.
var ErrUnreadable = errors.New("document is unreadable")

// TableSettings mirror the grid-line detection the MEC forms need: cell
// boundaries come from ruled lines, not text alignment.
type TableSettings struct {
	VerticalStrategy   string
	HorizontalStrategy string
}

// DefaultTableSettings returns the settings tuned against real MEC filings.
func DefaultTableSettings() TableSettings {
	return TableSettings{
		VerticalStrategy:   "lines",
		HorizontalStrategy: "lines",
	}
}

// Document owns both readers for a single PDF. Resources are scoped to one
// file's processing; Close releases them before the next file is opened.
type Document struct {
	path     string
	file     *os.File
	text     *ledongthuc.Reader
	tables   pdfplumber.Document
	settings TableSettings
}

// Open opens a PDF for text and table extraction.
func Open(path string, settings TableSettings) (*Document, error) {
	f, textReader, err := ledongthuc.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	tableDoc, err := pdfplumber.Open(path)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to open PDF for table extraction: %w", err)
	}

	return &Document{
		path:     path,
		file:     f,
		text:     textReader,
		tables:   tableDoc,
		settings: settings,
	}, nil
}

// Close releases the underlying file handles.
func (d *Document) Close() error {
	tErr := d.tables.Close()
	fErr := d.file.Close()
	if tErr != nil {
		return tErr
	}
	return fErr
}

// Path returns the path the document was opened from.
func (d *Document) Path() string {
	return d.path
}

// NumPages returns the page count.
func (d *Document) NumPages() int {
	return d.text.NumPage()
}

// PageText extracts the plain text of a page (1-based). A page that cannot
// be decoded yields an empty string rather than an error; classification
// simply skips it.
func (d *Document) PageText(pageNum int) string {
	defer func() {
		// ledongthuc/pdf can panic on malformed content streams.
		_ = recover()
	}()

	if pageNum < 1 || pageNum > d.text.NumPage() {
		return ""
	}
	page := d.text.Page(pageNum)
	if page.V.IsNull() {
		return ""
	}
	content, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return content
}

// FirstPageText returns the text of page 1, or ErrUnreadable when the page
// decodes to nothing. Page 1 carries all report metadata; without it the
// file cannot be identified or deduplicated.
func (d *Document) FirstPageText() (string, error) {
	text := d.PageText(1)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%s: %w", d.path, ErrUnreadable)
	}
	return text, nil
}

// PageTables extracts every table on a page (1-based) as a cell grid.
func (d *Document) PageTables(pageNum int) [][][]string {
	defer func() {
		_ = recover()
	}()

	if pageNum < 1 || pageNum > d.tables.PageCount() {
		return nil
	}
	page, err := d.tables.GetPage(pageNum - 1)
	if err != nil {
		return nil
	}

	tables := page.ExtractTables(
		pdfplumber.WithTableStrategy(d.settings.VerticalStrategy, d.settings.HorizontalStrategy),
	)

	grids := make([][][]string, 0, len(tables))
	for _, table := range tables {
		grids = append(grids, table.Rows)
	}
	return grids
}
