package main

import (
	"os"

	"github.com/monorkin/bmi-tracker/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
