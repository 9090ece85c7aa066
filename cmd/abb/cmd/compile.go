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
	"fmt"

	"github.com/couchbase/tabledfa"
	"github.com/spf13/cobra"
)

func newCompileCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "compile <path>",
		Short: "Writes the automaton in binary form.",
		Long: `Writes the automaton in binary form.  The file can later be
matched against with --compiled, which memory maps it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, _, err := opts.automaton()
			if err != nil {
				return err
			}
			err = tabledfa.Save(d, args[0])
			if err != nil {
				return err
			}
			opts.logger.Debug("compiled automaton", "path", args[0], "states", d.States())
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d states to %s\n", d.States(), args[0])
			return nil
		},
	}
}
