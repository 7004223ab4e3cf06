package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mithrel/fairgen/internal/cli"
	"github.com/mithrel/fairgen/internal/roster"
)

// Exit codes.
const (
	exitError = 1
	exitUsage = 2
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fairgen:", err)
		var ue *roster.UsageError
		if errors.As(err, &ue) {
			os.Exit(exitUsage)
		}
		os.Exit(exitError)
	}
}
