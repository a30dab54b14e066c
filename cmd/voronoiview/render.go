// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [script]",
		Short: "Run a command script and write the resulting diagram",
		Long: `Render runs the commands of script, or none when it is omitted, against a
fresh session and writes the final diagram to the output file. The image
format follows the file extension: .svg or .png.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRender,
	}
	flags := cmd.Flags()
	flags.StringP("output", "o", "voronoi.svg", "Output image path")
	flags.Bool("strict", false, "Stop at the first failing command")
	flags.Int("width", 0, "Image width in pixels")
	flags.Int("height", 0, "Image height in pixels")
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	r, err := newRunner(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if len(args) == 1 {
		var in io.Reader
		if args[0] == "-" {
			in = cmd.InOrStdin()
		} else {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open script: %w", err)
			}
			defer f.Close()
			in = f
		}
		strict, _ := cmd.Flags().GetBool("strict")
		if err := r.runScript(in, strict); err != nil {
			return err
		}
	}

	output, _ := cmd.Flags().GetString("output")
	return r.writeImage(output)
}
