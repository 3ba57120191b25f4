package main

import (
	"github.com/open-edge-insights/eii-deployment-tool-backend/cmd"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
