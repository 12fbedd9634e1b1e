// Package core has the parsing and aggregation logic for contribution stats.
package core

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/contribs-dev/contribs/internal/contract"
	"github.com/contribs-dev/contribs/schema"
)

// numstatPlaceholder is what git reports for binary files instead of a count.
const numstatPlaceholder = "-"

// authorPattern matches the "Name <email>" line of a history entry.
var authorPattern = regexp.MustCompile(`^(.+?)\s*<(.+)>$`)

// ParseHistory turns raw history-query text into commit records. Entries are
// delimited by contract.CommitBoundary; malformed entries are dropped whole
// and malformed numstat lines are skipped individually, never an error.
func ParseHistory(out []byte) []schema.CommitRecord {
	fragments := strings.Split(string(out), contract.CommitBoundary)
	var records []schema.CommitRecord
	for _, fragment := range fragments {
		rec, ok := parseEntry(fragment)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	return records
}

// parseEntry parses one boundary-delimited fragment: a date line, an author
// line, then zero or more numstat lines. An entry either fully contributes
// its identity, date and deltas or contributes nothing.
func parseEntry(fragment string) (schema.CommitRecord, bool) {
	var lines []string
	for _, l := range strings.Split(fragment, "\n") {
		l = strings.TrimRight(l, "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
	}
	if len(lines) < 2 {
		return schema.CommitRecord{}, false
	}

	name, email, ok := matchAuthor(strings.TrimSpace(lines[1]))
	if !ok {
		return schema.CommitRecord{}, false
	}

	rec := schema.CommitRecord{
		Date:        strings.TrimSpace(lines[0]),
		AuthorName:  name,
		AuthorEmail: email,
	}
	for _, l := range lines[2:] {
		delta, ok := parseDeltaLine(l)
		if !ok {
			continue
		}
		rec.Deltas = append(rec.Deltas, delta)
	}
	return rec, true
}

// matchAuthor matches a "Name <email>" line. The explicit ok result makes the
// drop-on-mismatch behavior a deliberate branch rather than a nil check.
func matchAuthor(line string) (name, email string, ok bool) {
	m := authorPattern.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), m[2], true
}

// parseDeltaLine parses a tab-separated "added\tremoved\tpath" numstat line.
func parseDeltaLine(line string) (schema.FileDelta, bool) {
	fields := strings.Split(line, "\t")
	if len(fields) != 3 {
		return schema.FileDelta{}, false
	}
	added, ok := parseCount(fields[0])
	if !ok {
		return schema.FileDelta{}, false
	}
	removed, ok := parseCount(fields[1])
	if !ok {
		return schema.FileDelta{}, false
	}
	return schema.FileDelta{Added: added, Removed: removed, Path: fields[2]}, true
}

// parseCount converts a numstat field to int, handling "-" as 0.
func parseCount(s string) (int, bool) {
	if s == numstatPlaceholder {
		return 0, true
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}
