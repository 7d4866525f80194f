// Copyright 2025 The q15axpy Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command q15axpy checks the data-parallel Q15 AXPY kernel against the scalar
// reference on test vector files.
//
// Usage:
//
//	q15axpy gen --count 100 --output input.txt         # random test vectors
//	q15axpy run --input input.txt --output output.txt  # verify, exit 1 on mismatch
//	q15axpy run --level rvv --width 32 --kernel vla    # force a target and kernel
//	q15axpy info                                       # detected target and kernels
//
// Test vector files may be plain text, gzip or zstd; the container is
// detected from the file contents.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/riscv-audiomark/q15axpy/hwy"
	"github.com/riscv-audiomark/q15axpy/hwy/contrib/q15"
)

// errCasesFailed makes the process exit with status 1 without printing an
// extra error line; the failing cases were already reported.
var errCasesFailed = errors.New("one or more test cases failed")

type rootOptions struct {
	verbose bool
	level   string
	width   int
	logger  *slog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errCasesFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "q15axpy",
		Short:         "Verify the saturating Q15 AXPY kernels",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return opts.applyTarget(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every test case")
	flags.StringVar(&opts.level, "level", "", "force a dispatch level (scalar, sse2, avx2, avx512, neon, sve, rvv)")
	flags.IntVar(&opts.width, "width", 0, "force the vector width in bytes (positive multiple of 4)")

	root.AddCommand(newRunCmd(opts), newGenCmd(opts), newInfoCmd(opts))
	return root
}

// applyTarget overrides the detected target when -level or -width is given
// and rebinds the dispatched kernel. The override lasts for the process.
func (o *rootOptions) applyTarget(cmd *cobra.Command) error {
	levelSet := cmd.Flags().Changed("level")
	widthSet := cmd.Flags().Changed("width")
	if !levelSet && !widthSet {
		return nil
	}

	level := hwy.CurrentLevel()
	if levelSet {
		var err error
		if level, err = hwy.ParseDispatchLevel(o.level); err != nil {
			return err
		}
	}
	width := hwy.CurrentWidth()
	if widthSet {
		width = o.width
	}

	if _, err := hwy.OverrideTarget(level, width); err != nil {
		return err
	}
	q15.Reselect()
	o.logger.Debug("target overridden", "level", level, "width", width, "kernel", q15.Selected())
	return nil
}
