// Package pages renders deployment and build-log reports for a
// Cloudflare Pages project.
package pages

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/joeblew999/pagetail/internal/cfapi"
)

// ListDeployments fetches a project's deployments and prints a numbered
// summary of the most recent ones. At most limit entries are rendered;
// the full list is returned so callers can inspect everything the API
// sent back. A failed or unsuccessful call returns nil.
func ListDeployments(ctx context.Context, w io.Writer, client *cfapi.Client, project string, limit int, spin *spinner.Spinner) []cfapi.Deployment {
	resp, err := client.ListDeployments(ctx, project)
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

	deployments := []cfapi.Deployment(resp.Result)

	color.New(color.FgCyan).Fprintf(w, "\n📦 Recent Deployments for '%s':\n\n", project)
	for i, d := range deployments {
		if i >= limit {
			break
		}

		status := d.Status
		if status == "" {
			status = "unknown"
		}
		env := d.Environment
		if env == "" {
			env = "production"
		}

		fmt.Fprintf(w, "%d. [%s] ID: %s\n", i+1, statusGlyph(status), d.ID)
		fmt.Fprintf(w, "   Status: %s | Env: %s | Created: %s\n", status, env, d.CreatedOn)
		fmt.Fprintf(w, "   Copy ID above and run: pagetail %s <ID> detailed\n\n", project)
	}

	return deployments
}

func statusGlyph(status string) string {
	switch status {
	case "success":
		return "✅"
	case "failure":
		return "❌"
	default:
		return "⏳"
	}
}

// printError reports a failed API call. The process keeps its zero exit
// status; a failed fetch only costs the report.
func printError(w io.Writer, err error) {
	var apiErr *cfapi.APIError
	if errors.As(err, &apiErr) {
		color.New(color.FgRed).Fprintln(w, apiErr.Error())
		return
	}
	color.New(color.FgRed).Fprintf(w, "Error: %v\n", err)
}
