// Copyright 2025 The yield-tokenizer-cli Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/serfrae/yield-tokenizer-cli/internal/cmd"
	"github.com/serfrae/yield-tokenizer-cli/internal/telemetry"
)

func main() {
	shutdown, err := telemetry.Setup(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	code := run(cmd.Execute, os.Stderr)
	if err := shutdown(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: telemetry shutdown: %v\n", err)
	}
	os.Exit(code)
}

func run(execute func() error, stderr io.Writer) int {
	if err := execute(); err != nil {
		if cmd.IsInterrupted(err) {
			fmt.Fprintln(stderr, "Interrupted. Shutting down...")
			return cmd.InterruptExitCode
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
