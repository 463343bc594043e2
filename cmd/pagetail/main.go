// pagetail - Cloudflare Pages deployment logs fetcher
//
// A single binary that lists Pages deployments and fetches their build
// logs straight from the Cloudflare v4 API.
package main

import (
	"os"

	"github.com/joeblew999/pagetail/cmd/pagetail/cmd"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cmd.SetVersion(Version)

	if err := cmd.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
