package main

import (
	"os"

	"github.com/wonny/altman/cmd/zscore/commands"
)

// main is the entry point for the zscore CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/zscore [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
