package main

import (
	"os"

	"synonym-search/backend/cmd/synctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
