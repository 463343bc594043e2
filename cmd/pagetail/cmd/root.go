package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/joeblew999/pagetail/internal/cfapi"
	"github.com/joeblew999/pagetail/internal/config"
	"github.com/joeblew999/pagetail/internal/pages"
)

// defaultListLimit is how many deployments the list view shows.
const defaultListLimit = 5

var verbose bool

// SetVersion sets the version string (called from main)
func SetVersion(v string) {
	RootCmd.Version = v
}

// RootCmd is the pagetail entry point. The surface is positional: a
// project name alone lists recent deployments, adding a deployment ID
// fetches that deployment's build logs.
var RootCmd = &cobra.Command{
	Use:   "pagetail <project_name> [deployment_id] [format]",
	Short: "Cloudflare Pages deployment logs fetcher",
	Long: `pagetail lists Cloudflare Pages deployments and fetches their
build logs straight from the Cloudflare API - no wrangler CLI needed.

Arguments:
  project_name    Name of the Pages project
  deployment_id   (optional) Specific deployment ID. If not provided, lists recent deployments
  format          (optional) 'concise' (default) or 'detailed'

Environment:
  CLOUDFLARE_API_TOKEN    Cloudflare API token (required)
  CLOUDFLARE_ACCOUNT_ID   Cloudflare account ID (required)

Credentials can also live in a .env file in the working directory.`,
	Example: `  # List recent deployments
  pagetail audio-analyzer

  # Get logs for a deployment
  pagetail audio-analyzer abc123def456 detailed`,
	Args:          cobra.MaximumNArgs(3),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log each API request to stderr")
}

func run(cmd *cobra.Command, args []string) error {
	setupLogging()

	out := cmd.OutOrStdout()

	cfg := config.Load()
	if !cfg.Validate(out) {
		return fmt.Errorf("invalid configuration")
	}

	if len(args) == 0 {
		cmd.Help()
		return fmt.Errorf("missing project name")
	}

	client := cfapi.NewClient(cfg.APIToken, cfg.AccountID)
	ctx := cmd.Context()
	project := args[0]

	if len(args) == 1 {
		spin := newSpinner(" Fetching deployments...")
		spin.Start()
		pages.ListDeployments(ctx, out, client, project, defaultListLimit, spin)
		return nil
	}

	deploymentID := args[1]
	format := pages.FormatConcise
	if len(args) > 2 {
		format = args[2]
	}

	spin := newSpinner(" Fetching logs...")
	spin.Start()
	pages.FetchLogs(ctx, out, client, project, deploymentID, format, spin)
	return nil
}

// newSpinner spins on stderr so reports on stdout stay clean.
func newSpinner(suffix string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = suffix
	return s
}

// setupLogging configures zerolog. PAGETAIL_LOG_LEVEL picks the level,
// --verbose forces debug.
func setupLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	level := zerolog.WarnLevel
	if env := os.Getenv("PAGETAIL_LOG_LEVEL"); env != "" {
		if parsed, err := zerolog.ParseLevel(env); err == nil {
			level = parsed
		}
	}
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
}
