// Package csvout writes extracted records as CSV. Column order matches
// the published sheets downstream analysis already expects, so it is
// fixed here rather than derived from struct order.
package csvout

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/Erross/MO-ethics-Full/internal/extract"
	"github.com/Erross/MO-ethics-Full/internal/mec"
)

var donorHeader = []string{
	"source_report",
	"committee_name",
	"report_period",
	"donor_name",
	"donor_address",
	"donor_city_state",
	"date_received",
	"amount",
	"contribution_type",
}

var expenseHeader = []string{
	"source_report",
	"committee_name",
	"report_period",
	"expense_type",
	"payee_name",
	"payee_address",
	"payee_city_state",
	"date",
	"purpose",
	"amount",
	"payment_status",
}

var reportInfoHeader = []string{
	"filename",
	"date_of_report",
	"committee_name",
	"period_start",
	"period_end",
	"report_type",
}

// WriteDonors writes donor records to path, header included.
func WriteDonors(path string, donors []extract.DonorRecord) error {
	rows := make([][]string, 0, len(donors))
	for _, d := range donors {
		rows = append(rows, []string{
			d.SourceReport,
			d.CommitteeName,
			d.ReportPeriod,
			d.DonorName,
			d.DonorAddress,
			d.DonorCityState,
			d.DateReceived,
			d.Amount,
			d.ContributionType,
		})
	}
	return writeFile(path, donorHeader, rows)
}

// WriteExpenses writes expense records to path, header included.
func WriteExpenses(path string, expenses []extract.ExpenseRecord) error {
	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, []string{
			e.SourceReport,
			e.CommitteeName,
			e.ReportPeriod,
			e.ExpenseType,
			e.PayeeName,
			e.PayeeAddress,
			e.PayeeCityState,
			e.Date,
			e.Purpose,
			e.Amount,
			e.PaymentStatus,
		})
	}
	return writeFile(path, expenseHeader, rows)
}

// WriteReportInfo writes per-report identification rows to path.
func WriteReportInfo(path string, reports []mec.ReportInfo) error {
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{
			r.Filename,
			r.DateOfReport,
			r.CommitteeName,
			r.PeriodStart,
			r.PeriodEnd,
			r.ReportType,
		})
	}
	return writeFile(path, reportInfoHeader, rows)
}

func writeFile(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("writing header to %s: %w", path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("writing row to %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return f.Close()
}
