package main

import (
	"os"

	"github.com/olegiv/deeplog/internal/cmd"
)

// Version information - injected at build time via ldflags
var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

func main() {
	v := version
	if gitCommit != "unknown" {
		v += " (commit " + gitCommit + ")"
	}
	if buildTime != "unknown" {
		v += " built " + buildTime
	}
	os.Exit(cmd.Execute(v))
}
