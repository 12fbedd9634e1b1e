package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/contribs-dev/contribs/internal/contract"
	"github.com/contribs-dev/contribs/schema"
	"github.com/olekukonko/tablewriter"
)

// PrintBranchResults outputs the branch catalog, dispatching based on the output format configured.
func PrintBranchResults(branches []schema.BranchDescriptor, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForBranches(branches, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForBranches(branches, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for branch listings")
	default:
		if err := printBranchesTable(branches); err != nil {
			return fmt.Errorf("error writing branches table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForBranches handles opening the file and calling the JSON writer.
func printJSONResultsForBranches(branches []schema.BranchDescriptor, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, branches)
	}, "JSON branch catalog")
}

// printCSVResultsForBranches handles opening the file and calling the CSV writer.
func printCSVResultsForBranches(branches []schema.BranchDescriptor, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForBranches(csvWriter, branches)
	}, "CSV branch catalog")
}

// printBranchesTable prints the catalog as a three-column table.
func printBranchesTable(branches []schema.BranchDescriptor) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Branch", "Kind", "Reference"})

	var data [][]string
	for _, b := range branches {
		data = append(data, []string{b.DisplayName, string(b.Kind), b.Reference})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("%d branches\n", len(branches))
	return nil
}

// writeCSVResultsForBranches writes one CSV row per catalog entry.
func writeCSVResultsForBranches(w *csv.Writer, branches []schema.BranchDescriptor) error {
	if err := w.Write([]string{"display_name", "kind", "reference"}); err != nil {
		return err
	}
	for _, b := range branches {
		if err := w.Write([]string{b.DisplayName, string(b.Kind), b.Reference}); err != nil {
			return err
		}
	}
	return nil
}
