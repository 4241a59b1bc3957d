// Package main is the entry point for the expense ledger CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/expense-ledger/backend/internal/cli"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
