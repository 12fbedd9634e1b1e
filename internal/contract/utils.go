package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Color variables for console output.
var (
	GainColor = color.New(color.FgGreen) // net line gain
	LossColor = color.New(color.FgRed)   // net line loss
)

// FormatNetLines renders a signed net-lines value, colored for console
// output when enabled.
func FormatNetLines(net int, useColors bool) string {
	text := fmt.Sprintf("%+d", net)
	if !useColors {
		return text
	}
	if net < 0 {
		return LossColor.Sprint(text)
	}
	return GainColor.Sprint(text)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// ParseBoolString interprets common yes/no spellings used by string flags.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "yes", "true", "1", "on":
		return true, nil
	case "no", "false", "0", "off":
		return false, nil
	}
	return false, fmt.Errorf("expected yes/no/true/false/1/0, got '%s'", s)
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateLabel shortens a display string to at most maxLen runes, keeping
// the head and appending an ellipsis marker.
func TruncateLabel(s string, maxLen int) string {
	if maxLen <= 3 {
		maxLen = 3
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
