package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/contribs-dev/contribs/internal/contract"
	"github.com/contribs-dev/contribs/internal/parquet"
	"github.com/contribs-dev/contribs/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintStatsResults outputs the aggregate result, dispatching based on the output format configured.
func PrintStatsResults(result *schema.AggregateResult, cfg *contract.Config, duration time.Duration) error {
	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForStats(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForStats(result, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.ExportAggregate(result, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := printStatsTable(result, cfg, duration); err != nil {
			return fmt.Errorf("error writing stats table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForStats handles opening the file and calling the JSON writer.
func printJSONResultsForStats(result *schema.AggregateResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForStats(w, result)
	}, "JSON stats results")
}

// printCSVResultsForStats handles opening the file and calling the CSV writer.
func printCSVResultsForStats(result *schema.AggregateResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForStats(csvWriter, result)
	}, "CSV stats results")
}

// printStatsTable prints the per-author aggregate as a six-column table.
func printStatsTable(result *schema.AggregateResult, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(os.Stdout)

	// --- 1. Define Headers ---
	table.Header([]string{"Author", "Email", "Commits", "Added", "Removed", "Net"})

	// --- 2. Configure Alignment ---
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// --- 3. Prepare Data Rows ---
	maxWidth := GetMaxLabelWidth(cfg)
	var data [][]string
	for _, r := range buildAuthorRows(result) {
		data = append(data, []string{
			contract.TruncateLabel(r.Name, maxWidth),
			contract.TruncateLabel(r.Email, maxWidth),
			fmt.Sprintf("%d", r.Commits),
			fmt.Sprintf("%d", r.Added),
			fmt.Sprintf("%d", r.Removed),
			contract.FormatNetLines(r.Net, cfg.UseColors),
		})
	}

	// --- 4. Render the table ---
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("Aggregated %d authors on %s (%s to %s, %d days) in %v\n",
		len(result.AuthorNames), result.BranchRef, result.StartLabel, result.EndLabel,
		len(result.DateAxis), duration)
	return nil
}
