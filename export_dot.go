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

package tabledfa

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

var dotHeader = `digraph g {
rankdir=LR
start [shape=point]
`

var dotFooter = `}
`

// ExportDot will export the provided DFA into the GraphViz (dot) file
// format.  Accepting states are drawn with a double circle and
// transitions between the same pair of states share one edge.
func ExportDot(d *DFA, w io.Writer) error {
	bw := bufio.NewWriter(w)

	_, err := bw.WriteString(dotHeader)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(bw, "start -> %d\n\n", d.start)
	if err != nil {
		return err
	}

	for s := range d.table {
		err = exportStateDot(d, State(s), bw)
		if err != nil {
			return err
		}
	}

	_, err = bw.WriteString(dotFooter)
	if err != nil {
		return err
	}

	return bw.Flush()
}

func exportStateDot(d *DFA, s State, bw *bufio.Writer) error {
	var buf bytes.Buffer
	if d.IsAccepting(s) {
		_, _ = buf.WriteString(fmt.Sprintf("%d [shape=doublecircle]\n", s))
	}

	// group symbols by destination, keeping first-seen order
	var dests []int
	labels := make(map[int][]string)
	for sym, next := range d.table[s] {
		if _, seen := labels[next]; !seen {
			dests = append(dests, next)
		}
		labels[next] = append(labels[next], string(d.alphabet.Symbol(sym)))
	}
	for _, next := range dests {
		label := strings.Join(labels[next], ",")
		_, _ = buf.WriteString(fmt.Sprintf("%d -> %d [label=%q]\n", s, next, label))
	}
	_, _ = buf.WriteString("\n")

	_, err := bw.Write(buf.Bytes())
	return err
}
