//  Copyright (c) 2026 Couchbase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// 		http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"os"

	"github.com/couchbase/tabledfa"
	"github.com/spf13/cobra"
)

func newDotCmd(opts *options) *cobra.Command {
	var output string
	var svg bool
	dotCmd := &cobra.Command{
		Use:   "dot",
		Short: "Exports the automaton in GraphViz dot format.",
		Long: `Exports the automaton in GraphViz dot format, or as SVG with --svg.
SVG output requires the dot binary on the PATH.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, _, err := opts.automaton()
			if err != nil {
				return err
			}
			if output == "" {
				if svg {
					return tabledfa.ExportSVG(d, cmd.OutOrStdout())
				}
				return tabledfa.ExportDot(d, cmd.OutOrStdout())
			}

			if svg {
				err = tabledfa.ExportSVGFile(d, output)
			} else {
				err = exportDotFile(d, output)
			}
			if err != nil {
				return err
			}
			opts.logger.Info("exported automaton", "path", output, "svg", svg)
			return nil
		},
	}
	dotCmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	dotCmd.Flags().BoolVar(&svg, "svg", false, "render SVG using the dot binary")
	return dotCmd
}

func exportDotFile(d *tabledfa.DFA, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return tabledfa.ExportDot(d, f)
}
