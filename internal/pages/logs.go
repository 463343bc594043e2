package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/joeblew999/pagetail/internal/cfapi"
)

// Report formats for FetchLogs. Anything that is not FormatDetailed is
// treated as concise; unknown values are accepted on purpose.
const (
	FormatConcise  = "concise"
	FormatDetailed = "detailed"
)

// FetchLogs fetches the build log history of a deployment and prints a
// report. The detailed format prints every line in original order; any
// other format prints error/warning highlights plus a trailing window.
// The raw entries are returned; a failed call or an empty log set
// returns nil.
func FetchLogs(ctx context.Context, w io.Writer, client *cfapi.Client, project, deploymentID, format string, spin *spinner.Spinner) []cfapi.LogEntry {
	resp, err := client.DeploymentLogs(ctx, project, deploymentID)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		printError(w, err)
		return nil
	}
	if !resp.Success {
		return nil
	}

	logs := resp.Result.Logs
	if len(logs) == 0 {
		color.New(color.FgYellow).Fprintf(w, "⚠️  No logs found for deployment %s\n", deploymentID)
		return nil
	}

	color.New(color.FgCyan).Fprintf(w, "\n📋 Deployment Logs for %s:\n\n", deploymentID)
	fmt.Fprintln(w, strings.Repeat("=", 80))

	lines := FormatLines(logs)

	if format == FormatDetailed {
		for _, line := range lines {
			fmt.Fprintln(w, line)
		}
	} else {
		printConcise(w, lines)
	}

	fmt.Fprintln(w, "\n"+strings.Repeat("=", 80))
	fmt.Fprintf(w, "\nTotal log lines: %d\n", len(lines))

	return logs
}

// FormatLines renders log entries as "[timestamp] LEVEL: message".
// A missing level defaults to info.
func FormatLines(logs []cfapi.LogEntry) []string {
	lines := make([]string, 0, len(logs))
	for _, entry := range logs {
		level := entry.Level
		if level == "" {
			level = "info"
		}
		lines = append(lines, fmt.Sprintf("[%s] %s: %s", entry.Timestamp, strings.ToUpper(level), entry.Message))
	}
	return lines
}

// printConcise shows up to 5 error lines, up to 5 warning lines, and
// always the last 10 lines. The substring tests run against the whole
// formatted line, so ERROR or WARNING in a message body also matches.
func printConcise(w io.Writer, lines []string) {
	var errorLines, warningLines []string
	for _, line := range lines {
		if strings.Contains(line, "ERROR") {
			errorLines = append(errorLines, line)
		}
		if strings.Contains(line, "WARNING") {
			warningLines = append(warningLines, line)
		}
	}

	if len(errorLines) > 0 {
		color.New(color.FgRed).Fprintln(w, "\n🔴 ERRORS:")
		for _, line := range head(errorLines, 5) {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}

	if len(warningLines) > 0 {
		color.New(color.FgYellow).Fprintln(w, "\n🟡 WARNINGS:")
		for _, line := range head(warningLines, 5) {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}

	fmt.Fprintln(w, "\n📝 LAST 10 LOG LINES:")
	for _, line := range tail(lines, 10) {
		fmt.Fprintf(w, "  %s\n", line)
	}
}

func head(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}

func tail(lines []string, n int) []string {
	if len(lines) > n {
		return lines[len(lines)-n:]
	}
	return lines
}
