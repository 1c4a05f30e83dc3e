// Package main is the entry point for the budgetctl command line tool.
package main

import (
	"os"

	"github.com/finance-tracker/budget/cmd/budgetctl/cmd"
)

func main() {
	if err := cmd.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
