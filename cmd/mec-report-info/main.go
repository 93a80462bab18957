// mec-report-info identifies one or many MEC disclosure reports: filing
// date, committee, reporting period, and which report-type checkboxes are
// marked on page 1.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Erross/MO-ethics-Full/internal/csvout"
	"github.com/Erross/MO-ethics-Full/internal/mec"
	"github.com/Erross/MO-ethics-Full/internal/pdf"
)

const defaultMaxFileSize = 100 * 1024 * 1024

var (
	outputFormat = flag.String("format", "text", "Output format for a single file: text, json")
	outputCSV    = flag.String("csv", "extracted_data.csv", "Output CSV path when scanning a directory")
	help         = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: PDF file or directory required\n\n")
		printUsage()
		os.Exit(1)
	}

	target := flag.Arg(0)
	info, err := os.Stat(target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot access %s: %v\n", target, err)
		os.Exit(1)
	}

	settings := pdf.DefaultTableSettings()

	if info.IsDir() {
		if err := scanDirectory(target, settings); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	report, err := mec.InspectFile(target, settings, defaultMaxFileSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", target, err)
		os.Exit(1)
	}

	if err := outputReport(report); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func scanDirectory(dir string, settings pdf.TableSettings) error {
	paths, err := filepath.Glob(filepath.Join(dir, "*.pdf"))
	if err != nil {
		return fmt.Errorf("scanning %s: %w", dir, err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no PDF files found in %s", dir)
	}
	sort.Strings(paths)

	var reports []mec.ReportInfo
	for _, path := range paths {
		report, err := mec.InspectFile(path, settings, defaultMaxFileSize)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", filepath.Base(path), err)
			continue
		}
		reports = append(reports, report)
		fmt.Printf("%s: %s (%s)\n", report.Filename, report.ReportType, report.DateOfReport)
	}

	if len(reports) == 0 {
		return fmt.Errorf("no readable reports in %s", dir)
	}

	if err := csvout.WriteReportInfo(*outputCSV, reports); err != nil {
		return err
	}
	fmt.Printf("\nData exported to %s (%d report(s))\n", *outputCSV, len(reports))
	return nil
}

func outputReport(report mec.ReportInfo) error {
	switch *outputFormat {
	case "json":
		encoded, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(encoded))
	case "text":
		fmt.Printf("File:         %s\n", report.Filename)
		fmt.Printf("Committee:    %s\n", report.CommitteeName)
		fmt.Printf("Report date:  %s\n", report.DateOfReport)
		fmt.Printf("Period:       %s to %s\n", report.PeriodStart, report.PeriodEnd)
		fmt.Printf("Report type:  %s\n", report.ReportType)
	default:
		return fmt.Errorf("unknown output format: %s", *outputFormat)
	}
	return nil
}

func printHelp() {
	fmt.Println("mec-report-info - Identify MEC campaign finance disclosure reports")
	fmt.Println()
	fmt.Println("Reads the first page of a disclosure PDF and reports the committee,")
	fmt.Println("filing date, reporting period, and marked report-type checkboxes.")
	fmt.Println("Given a directory, scans every PDF and writes the results to CSV.")
	fmt.Println()
	printUsage()
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -format    Output format for a single file: text (default), json")
	fmt.Println("  -csv       Output CSV path when scanning a directory")
	fmt.Println("  -help      Show this help message")
}

func printUsage() {
	fmt.Println("USAGE:")
	fmt.Println("  mec-report-info [options] <report.pdf>")
	fmt.Println("  mec-report-info [options] <pdf-directory>")
}
