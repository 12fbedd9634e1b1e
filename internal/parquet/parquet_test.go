package parquet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/contribs-dev/contribs/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorTotalsStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	pschema := parquet.SchemaOf(new(AuthorTotals))
	require.NotNil(t, pschema)

	expectedColumns := []string{
		"author_email",
		"author_name",
		"commits",
		"added_lines",
		"removed_lines",
		"net_lines",
	}

	for _, colName := range expectedColumns {
		col, ok := pschema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestDailyCommitsStructTags(t *testing.T) {
	pschema := parquet.SchemaOf(new(DailyCommits))
	require.NotNil(t, pschema)

	for _, colName := range []string{"date", "author_email", "commits"} {
		col, ok := pschema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func testResult() *schema.AggregateResult {
	return &schema.AggregateResult{
		AuthorNames: map[string]string{
			"bob@example.com":   "Bob",
			"alice@example.com": "Alice",
		},
		AddedLines:   map[string]int{"alice@example.com": 15, "bob@example.com": 1},
		RemovedLines: map[string]int{"alice@example.com": 2, "bob@example.com": 4},
		NetLines:     map[string]int{"alice@example.com": 13, "bob@example.com": -3},
		CommitsByDate: map[string]map[string]int{
			"2025-03-03": {"bob@example.com": 1},
			"2025-03-01": {"alice@example.com": 2},
		},
	}
}

func TestBuildAuthorRows_SortedByEmail(t *testing.T) {
	rows := buildAuthorRows(testResult())

	require.Len(t, rows, 2)
	assert.Equal(t, "alice@example.com", rows[0].AuthorEmail)
	assert.Equal(t, int32(2), rows[0].Commits)
	assert.Equal(t, int64(13), rows[0].NetLines)
	assert.Equal(t, "bob@example.com", rows[1].AuthorEmail)
	assert.Equal(t, int64(-3), rows[1].NetLines)
}

func TestBuildDailyRows_SortedByDateThenEmail(t *testing.T) {
	rows := buildDailyRows(testResult())

	require.Len(t, rows, 2)
	assert.Equal(t, DailyCommits{Date: "2025-03-01", AuthorEmail: "alice@example.com", Commits: 2}, rows[0])
	assert.Equal(t, DailyCommits{Date: "2025-03-03", AuthorEmail: "bob@example.com", Commits: 1}, rows[1])
}

func TestExportAggregate(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "stats")

	err := ExportAggregate(testResult(), outputPath)
	require.NoError(t, err)

	// Both datasets exist and round-trip through the generic reader.
	authorsFile, err := os.Open(filepath.Join(outputPath, "authors.parquet"))
	require.NoError(t, err)
	defer func() { _ = authorsFile.Close() }()

	reader := parquet.NewGenericReader[AuthorTotals](authorsFile)
	defer func() { _ = reader.Close() }()
	assert.Equal(t, int64(2), reader.NumRows())

	activityInfo, err := os.Stat(filepath.Join(outputPath, "activity.parquet"))
	require.NoError(t, err)
	assert.Greater(t, activityInfo.Size(), int64(0))
}

func TestExportAggregate_EmptyPath(t *testing.T) {
	err := ExportAggregate(testResult(), "")
	assert.Error(t, err)
}
