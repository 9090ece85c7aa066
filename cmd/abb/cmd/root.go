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
	"log/slog"

	"github.com/couchbase/tabledfa"
	"github.com/couchbase/tabledfa/internal/logging"
	"github.com/spf13/cobra"
)

type options struct {
	definition string
	compiled   string
	logLevel   string
	logFormat  string
	trace      bool
	parallel   int

	logger *slog.Logger
}

// NewRootCmd returns the abb command tree.  Run without a subcommand,
// abb matches each argument against the selected automaton.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "abb [strings...]",
		Short: "Tests strings against a table driven DFA.",
		Long: `Tests each string against a table driven DFA, by default one
recognizing ` + tabledfa.Expression + `.  Use -- before an input that
has the same name as a subcommand.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			opts.logger, err = logging.New(opts.logFormat, opts.logLevel, cmd.ErrOrStderr())
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runMatch(cmd, args)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.definition, "definition", "", "TOML automaton definition to match against")
	flags.StringVar(&opts.compiled, "compiled", "", "compiled automaton file to match against")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: trace, debug, info, warn or error")
	flags.StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")
	rootCmd.Flags().BoolVar(&opts.trace, "trace", false, "print the states visited for each input")
	rootCmd.Flags().IntVar(&opts.parallel, "parallel", 1, "number of inputs to match concurrently")

	rootCmd.AddCommand(newDotCmd(opts))
	rootCmd.AddCommand(newTableCmd(opts))
	rootCmd.AddCommand(newCompileCmd(opts))
	return rootCmd
}

// automaton returns the DFA selected by the flags and the text used to
// describe it.
func (o *options) automaton() (*tabledfa.DFA, string, error) {
	switch {
	case o.definition != "" && o.compiled != "":
		return nil, "", fmt.Errorf("--definition and --compiled are mutually exclusive")
	case o.definition != "":
		def, err := tabledfa.LoadDefinition(o.definition)
		if err != nil {
			return nil, "", err
		}
		d, err := def.Build()
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", o.definition, err)
		}
		expr := def.Expression
		if expr == "" {
			expr = o.definition
		}
		return d, expr, nil
	case o.compiled != "":
		d, err := tabledfa.Open(o.compiled)
		if err != nil {
			return nil, "", err
		}
		return d, o.compiled, nil
	}
	return tabledfa.NewABB(), tabledfa.Expression, nil
}

func (o *options) runMatch(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		fmt.Fprintln(out, "Please provide at least 1 string to test.")
		return nil
	}

	d, expr, err := o.automaton()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Matching input to: %s\n", expr)

	var results []error
	if o.parallel > 1 {
		results = tabledfa.MatchAll(d, args, o.parallel)
	}
	for i, input := range args {
		fmt.Fprintf(out, "Input String is: %s\n", input)
		var merr error
		if results != nil {
			merr = results[i]
		} else {
			merr = d.Matches(input)
		}
		if merr == nil {
			fmt.Fprintln(out, "Input accepted!")
		} else {
			o.logger.Debug("input rejected", "input", input, "reason", merr)
			fmt.Fprintln(out, "Input Failed")
		}
		if o.trace {
			states, _ := d.Trace(input)
			fmt.Fprintf(out, "States visited: %v\n", states)
		}
	}
	return nil
}
