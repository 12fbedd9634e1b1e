package outwriter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/contribs-dev/contribs/internal/contract"
	"github.com/contribs-dev/contribs/schema"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "Wrote %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// authorRow is one flattened per-author line of an aggregate result.
type authorRow struct {
	Name    string
	Email   string
	Commits int
	Added   int
	Removed int
	Net     int
}

// buildAuthorRows flattens the aggregate maps into rows ordered by commit
// count descending, email ascending on ties, so output is deterministic.
func buildAuthorRows(result *schema.AggregateResult) []authorRow {
	rows := make([]authorRow, 0, len(result.AuthorNames))
	for email, name := range result.AuthorNames {
		rows = append(rows, authorRow{
			Name:    name,
			Email:   email,
			Commits: result.TotalCommits(email),
			Added:   result.AddedLines[email],
			Removed: result.RemovedLines[email],
			Net:     result.NetLines[email],
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Commits != rows[j].Commits {
			return rows[i].Commits > rows[j].Commits
		}
		return rows[i].Email < rows[j].Email
	})
	return rows
}
