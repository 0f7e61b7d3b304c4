package main

import (
	"errors"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/vergashev/hafta/cmd"
	"github.com/vergashev/hafta/internal/cli"
	"github.com/vergashev/hafta/internal/logging"
)

func main() {
	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	if err := cmd.Execute(); err != nil {
		// Coded errors were already reported through the output formatter
		var coded *cli.CodedError
		if !errors.As(err, &coded) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
