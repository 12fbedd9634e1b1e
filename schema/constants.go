package schema

// Custom string types for type safety.
type (
	// BranchKind classifies a catalog entry as local or remote.
	BranchKind string

	// OutputMode represents the format of the output.
	OutputMode string
)

// All branch kinds supported.
const (
	LocalBranch  BranchKind = "local"
	RemoteBranch BranchKind = "remote"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// DateFormat is the calendar-day representation used on the date axis
// and accepted by the --start/--end flags.
const DateFormat = "2006-01-02"

// BeginningLabel is the sentinel accepted for --start meaning "from the first
// commit", and the StartLabel fallback when no bound was given and no commits
// were observed. NowLabel is the matching EndLabel fallback.
const (
	BeginningLabel = "beginning"
	NowLabel       = "now"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}
