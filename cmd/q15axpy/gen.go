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
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/riscv-audiomark/q15axpy/internal/harness"
)

func newGenCmd(root *rootOptions) *cobra.Command {
	var (
		count    int
		maxN     int
		seed     uint64
		output   string
		compress string
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write a file of random test cases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := harness.ParseCompression(compress)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = rand.Uint64()
			}

			rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
			cases, err := harness.Generate(rng, count, maxN)
			if err != nil {
				return err
			}
			if err := harness.WriteFile(output, cases, c); err != nil {
				return err
			}
			root.logger.Info("wrote test vectors", "path", output, "cases", count, "seed", seed, "compression", c)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&count, "count", "n", 10, "number of test cases")
	flags.IntVar(&maxN, "max-n", harness.MaxN, "maximum elements per case")
	flags.Uint64Var(&seed, "seed", 0, "random seed (default: random)")
	flags.StringVarP(&output, "output", "o", "input.txt", "destination file")
	flags.StringVar(&compress, "compress", "none", "container: none, gzip or zstd")
	return cmd
}
