package core

import (
	"maps"
	"slices"

	"github.com/contribs-dev/contribs/schema"
)

// Aggregate folds commit records into per-author totals and the date-by-author
// commit matrix. The numeric sums are order-independent. Display names are
// last-write-wins per email in fold order: records arrive in the order the
// history query returned them, so an author who changed display name between
// commits keeps whichever name the query yielded last. That non-determinism
// is inherited from upstream ordering and accepted.
func Aggregate(records []schema.CommitRecord) *schema.ActivitySummary {
	summary := &schema.ActivitySummary{
		AuthorNames:   make(map[string]string),
		AddedLines:    make(map[string]int),
		RemovedLines:  make(map[string]int),
		NetLines:      make(map[string]int),
		CommitsByDate: make(map[string]map[string]int),
	}

	for _, rec := range records {
		email := rec.AuthorEmail
		summary.AuthorNames[email] = rec.AuthorName

		added := summary.AddedLines[email]
		removed := summary.RemovedLines[email]
		for _, d := range rec.Deltas {
			added += d.Added
			removed += d.Removed
		}
		summary.AddedLines[email] = added
		summary.RemovedLines[email] = removed
		summary.NetLines[email] = added - removed

		if summary.CommitsByDate[rec.Date] == nil {
			summary.CommitsByDate[rec.Date] = make(map[string]int)
		}
		summary.CommitsByDate[rec.Date][email]++
	}

	summary.Dates = slices.Sorted(maps.Keys(summary.CommitsByDate))
	return summary
}
