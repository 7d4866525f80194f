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

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/riscv-audiomark/q15axpy/hwy/contrib/q15"
	"github.com/riscv-audiomark/q15axpy/internal/harness"
)

func newRunCmd(root *rootOptions) *cobra.Command {
	var (
		input  string
		output string
		kernel string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every test case through the reference and a candidate kernel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			candidate, name, err := candidateKernel(kernel)
			if err != nil {
				return err
			}

			cases, err := harness.ReadFile(input)
			if err != nil {
				return err
			}
			root.logger.Debug("loaded test vectors", "path", input, "cases", len(cases), "kernel", name)

			var (
				log     io.Writer
				logFile *os.File
			)
			if output != "" {
				logFile, err = os.Create(output)
				if err != nil {
					// Verification still runs without the diagnostic log.
					root.logger.Warn("cannot create output log", "path", output, "err", err)
				} else {
					log = logFile
				}
			}

			out := cmd.OutOrStdout()
			r := harness.Runner{
				Reference: q15.AxpyRef,
				Candidate: candidate,
				Log:       log,
				Logger:    root.logger,
				OnResult: func(res harness.Result) {
					status := "PASS"
					if !res.Pass {
						status = "FAIL"
					}
					fmt.Fprintf(out, "Test Case %d: %s\n", res.Case, status)
				},
			}
			rep, err := r.Run(cmd.Context(), cases)
			if logFile != nil {
				closeLog(root.logger, output, logFile)
			}
			if err != nil {
				return err
			}

			root.logger.Info(rep.Summary(), "kernel", name)
			if !rep.OK() {
				return errCasesFailed
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&input, "input", "i", "input.txt", "test vector file")
	flags.StringVarP(&output, "output", "o", "output.txt", "diagnostic log of both outputs per case (empty disables)")
	flags.StringVarP(&kernel, "kernel", "k", "auto", "candidate kernel: auto or a registered kernel name")
	return cmd
}

// closeLog closes the diagnostic log. A failed close can lose the tail of the
// log, which is reported the same way as a failed create.
func closeLog(logger *slog.Logger, path string, c io.Closer) {
	if err := c.Close(); err != nil {
		logger.Warn("cannot close output log", "path", path, "err", err)
	}
}

// candidateKernel resolves the -kernel flag. "auto" is the runtime-selected
// kernel.
func candidateKernel(name string) (q15.Kernel, string, error) {
	if name == "auto" {
		return q15.Axpy, q15.Selected(), nil
	}
	e, err := q15.Global.ByName(name)
	if err != nil {
		return nil, "", err
	}
	return e.Kernel, e.Name, nil
}
