// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

const prompt = "> "

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Edit a diagram interactively",
		Long: `Repl reads commands from stdin one line at a time and prints the status
after each of them. Use "render FILE" to save the current diagram and
"quit" to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			r, err := newRunner(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return r.repl(cmd.InOrStdin())
		},
	}
}

// repl runs commands from in until it is exhausted or quit is entered.
// Command errors are printed and do not stop the loop.
func (r *runner) repl(in io.Reader) error {
	if err := r.s.EnsureDiagram(); err != nil {
		r.logger.Warn("initial diagram failed", "error", err)
	}
	fmt.Fprintln(r.out, formatStatus(r.s.StatusLines()))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}
		cmd, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		err := r.exec(cmd)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(r.out, "error: %v\n", err)
			continue
		}
		if cmd.name != "status" {
			fmt.Fprintln(r.out, formatStatus(r.s.StatusLines()))
		}
	}
}
