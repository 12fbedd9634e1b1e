// Package schema has the models and constants shared by all parts of contribs.
package schema

// FileDelta holds the line counts reported by one numstat line of a commit.
// Binary files report no counts; the parser maps their placeholder to zero.
type FileDelta struct {
	Added   int    `json:"added"`
	Removed int    `json:"removed"`
	Path    string `json:"path"`
}

// CommitRecord is one parsed commit from the history query.
// The author email is the identity key; the name is display-only.
type CommitRecord struct {
	Date        string      `json:"date"` // calendar day, YYYY-MM-DD
	AuthorName  string      `json:"authorName"`
	AuthorEmail string      `json:"authorEmail"`
	Deltas      []FileDelta `json:"deltas"`
}

// BranchDescriptor describes one catalog entry. DisplayName is what a caller
// selects; Reference is the exact string passed to the history query
// (for remote branches it includes the remote prefix, e.g. "origin/main").
type BranchDescriptor struct {
	DisplayName string     `json:"displayName"`
	Kind        BranchKind `json:"kind"`
	Reference   string     `json:"reference"`
}

// ActivitySummary is the aggregator output: per-author totals plus the
// date-by-author commit matrix. Dates holds the distinct commit days
// observed, sorted ascending (the sparse axis).
type ActivitySummary struct {
	AuthorNames   map[string]string         `json:"authorNames"`
	AddedLines    map[string]int            `json:"addedLines"`
	RemovedLines  map[string]int            `json:"removedLines"`
	NetLines      map[string]int            `json:"netLines"`
	CommitsByDate map[string]map[string]int `json:"commitsByDate"`
	Dates         []string                  `json:"dates"`
}

// AggregateResult is the full facade output for one stats run. It is created
// per invocation and never mutated after being returned.
type AggregateResult struct {
	AuthorNames   map[string]string         `json:"authorNames"`
	AddedLines    map[string]int            `json:"addedLines"`
	RemovedLines  map[string]int            `json:"removedLines"`
	NetLines      map[string]int            `json:"netLines"`
	CommitsByDate map[string]map[string]int `json:"commitsByDate"`
	DateAxis      []string                  `json:"dateAxis"`
	StartLabel    string                    `json:"startLabel"`
	EndLabel      string                    `json:"endLabel"`
	Branches      []BranchDescriptor        `json:"branches"`
	BranchRef     string                    `json:"branchRef"`
}

// TotalCommits sums the commit matrix for one author email.
func (r *AggregateResult) TotalCommits(email string) int {
	total := 0
	for _, byAuthor := range r.CommitsByDate {
		total += byAuthor[email]
	}
	return total
}
