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
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/couchbase/tabledfa"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newTableCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Prints the transition table.",
		Long: `Prints the transition table.  The start state is marked with > and
accepting states with *.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, expr, err := opts.automaton()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s over %s\n", expr, d.Alphabet())
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(d))
			return nil
		},
	}
}

func renderTable(d *tabledfa.DFA) string {
	alphabet := d.Alphabet()
	headers := []string{"state"}
	for _, r := range alphabet.Symbols() {
		headers = append(headers, strconv.QuoteRune(r))
	}

	var rows [][]string
	for s, row := range d.Table() {
		state := tabledfa.State(s)
		label := strconv.Itoa(s)
		if d.IsAccepting(state) {
			label = "*" + label
		}
		if state == d.StartState() {
			label = ">" + label
		}
		cells := []string{label}
		for _, next := range row {
			cells = append(cells, strconv.Itoa(next))
		}
		rows = append(rows, cells)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String()
}
