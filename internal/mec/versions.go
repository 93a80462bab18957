package mec

import (
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/Erross/MO-ethics-Full/internal/pdf"
)

// versionKey identifies one reporting obligation. The commission allows a
// committee to refile for the same period; only the newest filing counts.
type versionKey struct {
	committee string
	periodEnd string
}

// candidate pairs a path with the metadata read from it.
type candidate struct {
	path string
	meta ReportMetadata
}

// VersionFilter keeps the newest filing per (committee, period-end) key.
type VersionFilter struct {
	settings    pdf.TableSettings
	maxFileSize int64
	log         *logrus.Logger
}

// NewVersionFilter creates a version filter.
func NewVersionFilter(settings pdf.TableSettings, maxFileSize int64, log *logrus.Logger) *VersionFilter {
	return &VersionFilter{
		settings:    settings,
		maxFileSize: maxFileSize,
		log:         log,
	}
}

// ReadMetadata opens one PDF and resolves its page-1 metadata.
func (f *VersionFilter) ReadMetadata(path string) (ReportMetadata, error) {
	if err := pdf.Probe(path, f.maxFileSize); err != nil {
		return ReportMetadata{}, err
	}

	doc, err := pdf.Open(path, f.settings)
	if err != nil {
		return ReportMetadata{}, err
	}
	defer doc.Close()

	text, err := doc.FirstPageText()
	if err != nil {
		return ReportMetadata{}, err
	}

	return ResolveMetadata(filepath.Base(path), text), nil
}

// FilterLatest reduces the candidate set to at most one file per
// (committee, period-end) key, keeping the most recently filed version.
// It returns the kept paths and the names of files that could not be read.
// Every key with more than one candidate is reported so the operator can
// see which filings were superseded.
func (f *VersionFilter) FilterLatest(paths []string) (kept []string, unreadable []string) {
	byPeriod := make(map[versionKey][]candidate)
	var keyOrder []versionKey

	for _, path := range paths {
		meta, err := f.ReadMetadata(path)
		if err != nil {
			f.log.WithField("file", filepath.Base(path)).Warnf("could not read: %v", err)
			unreadable = append(unreadable, filepath.Base(path))
			continue
		}

		// Files missing committee or period end cannot be versioned
		// and are excluded from extraction.
		if meta.CommitteeName == "" || meta.PeriodEnd == "" {
			continue
		}

		key := versionKey{committee: meta.CommitteeName, periodEnd: meta.PeriodEnd}
		if _, seen := byPeriod[key]; !seen {
			keyOrder = append(keyOrder, key)
		}
		byPeriod[key] = append(byPeriod[key], candidate{path: path, meta: meta})
	}

	if len(unreadable) > 0 {
		f.log.Warnf("skipped %d corrupted/invalid PDF(s)", len(unreadable))
	}

	for _, key := range keyOrder {
		versions := byPeriod[key]
		newestFirst(versions)

		kept = append(kept, versions[0].path)

		if len(versions) > 1 {
			f.log.WithFields(logrus.Fields{
				"committee":  key.committee,
				"period_end": key.periodEnd,
			}).Infof("found %d versions, keeping %s (filed %s)",
				len(versions), filepath.Base(versions[0].path), versions[0].meta.DateFiled)
			for _, superseded := range versions[1:] {
				f.log.Infof("  skipping: %s (filed %s)",
					filepath.Base(superseded.path), superseded.meta.DateFiled)
			}
		}
	}

	return kept, unreadable
}

// newestFirst orders candidates by filing date descending. The stable sort
// keeps the input order for ties, so among equal dates the first-seen file
// wins.
func newestFirst(versions []candidate) {
	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].meta.FiledTime().After(versions[j].meta.FiledTime())
	})
}
