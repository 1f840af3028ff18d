package main

import (
	"os"

	"github.com/ai8future/rcodegen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
