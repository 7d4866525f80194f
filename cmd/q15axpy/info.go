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

	"github.com/spf13/cobra"

	"github.com/riscv-audiomark/q15axpy/hwy"
	"github.com/riscv-audiomark/q15axpy/hwy/contrib/q15"
)

func newInfoCmd(_ *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the dispatch target and the registered kernels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "target:   %s (%s)\n", hwy.CurrentName(), hwy.CurrentLevel())
			fmt.Fprintf(out, "width:    %d bytes, %d int16 lanes\n", hwy.CurrentWidth(), hwy.MaxLanes[int16]())
			lanes := "emulated"
			if hwy.NativeLanes() {
				lanes = "native"
			}
			fmt.Fprintf(out, "lanes:    %s\n", lanes)
			fmt.Fprintf(out, "selected: %s\n", q15.Selected())
			fmt.Fprintln(out, "kernels:")
			for _, e := range q15.Global.Entries() {
				fmt.Fprintf(out, "  %-10s priority %-3d supported=%v\n", e.Name, e.Priority, e.Supports(hwy.CurrentLevel()))
			}
			return nil
		},
	}
}
