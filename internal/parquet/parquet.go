// Package parquet exports aggregate contribution data to Parquet files
// using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/contribs-dev/contribs/schema"
	"github.com/parquet-go/parquet-go"
)

// AuthorTotals is one per-author row of the authors dataset.
type AuthorTotals struct {
	// AuthorEmail is the unique identity key for the author
	AuthorEmail string `parquet:"author_email,snappy"`

	// AuthorName is the display name that last appeared for this email
	AuthorName string `parquet:"author_name,snappy"`

	// Commits is the total commit count over the queried range
	Commits int32 `parquet:"commits,snappy"`

	// AddedLines and RemovedLines are summed over every parsed file delta
	AddedLines   int64 `parquet:"added_lines,snappy"`
	RemovedLines int64 `parquet:"removed_lines,snappy"`

	// NetLines is added minus removed
	NetLines int64 `parquet:"net_lines,snappy"`
}

// DailyCommits is one (date, author) cell of the commit matrix.
type DailyCommits struct {
	// Date is the calendar day in YYYY-MM-DD form
	Date string `parquet:"date,snappy"`

	// AuthorEmail is the unique identity key for the author
	AuthorEmail string `parquet:"author_email,snappy"`

	// Commits is the commit count for this author on this day
	Commits int32 `parquet:"commits,snappy"`
}

// ExportAggregate writes the aggregate result as two Parquet datasets,
// authors.parquet and activity.parquet, under outputPath.
func ExportAggregate(result *schema.AggregateResult, outputPath string) error {
	if outputPath == "" {
		return fmt.Errorf("parquet export requires an output path")
	}
	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := writeParquetFile(filepath.Join(outputPath, "authors.parquet"), buildAuthorRows(result)); err != nil {
		return err
	}
	return writeParquetFile(filepath.Join(outputPath, "activity.parquet"), buildDailyRows(result))
}

// writeParquetFile writes a slice of rows to a Parquet file. The schema is
// derived from the row struct tags.
func writeParquetFile[T any](outputPath string, rows []T) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

// buildAuthorRows flattens the per-author maps, ordered by email for
// reproducible files.
func buildAuthorRows(result *schema.AggregateResult) []AuthorTotals {
	rows := make([]AuthorTotals, 0, len(result.AuthorNames))
	for email, name := range result.AuthorNames {
		rows = append(rows, AuthorTotals{
			AuthorEmail:  email,
			AuthorName:   name,
			Commits:      int32(result.TotalCommits(email)),
			AddedLines:   int64(result.AddedLines[email]),
			RemovedLines: int64(result.RemovedLines[email]),
			NetLines:     int64(result.NetLines[email]),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].AuthorEmail < rows[j].AuthorEmail })
	return rows
}

// buildDailyRows flattens the commit matrix, ordered by date then email.
func buildDailyRows(result *schema.AggregateResult) []DailyCommits {
	var rows []DailyCommits
	for date, byAuthor := range result.CommitsByDate {
		for email, commits := range byAuthor {
			rows = append(rows, DailyCommits{
				Date:        date,
				AuthorEmail: email,
				Commits:     int32(commits),
			})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date < rows[j].Date
		}
		return rows[i].AuthorEmail < rows[j].AuthorEmail
	})
	return rows
}
