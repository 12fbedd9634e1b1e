package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/contribs-dev/contribs/schema"
)

// writeJSONResultsForStats marshals the full schema.AggregateResult and writes it.
func writeJSONResultsForStats(w io.Writer, result *schema.AggregateResult) error {
	return writeJSON(w, result)
}

// writeCSVResultsForStats writes one CSV row per author.
func writeCSVResultsForStats(w *csv.Writer, result *schema.AggregateResult) error {
	// 1. Write Header Row
	header := []string{
		"author_name",
		"author_email",
		"commits",
		"added",
		"removed",
		"net",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	for _, r := range buildAuthorRows(result) {
		row := []string{
			r.Name,
			r.Email,
			strconv.Itoa(r.Commits),
			strconv.Itoa(r.Added),
			strconv.Itoa(r.Removed),
			strconv.Itoa(r.Net),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
