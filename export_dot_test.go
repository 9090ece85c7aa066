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
	"bytes"
	"testing"
)

func TestExportDot(t *testing.T) {
	expected := `digraph g {
rankdir=LR
start [shape=point]
start -> 0

0 -> 1 [label="a"]
0 -> 0 [label="b"]

1 -> 1 [label="a"]
1 -> 2 [label="b"]

2 -> 1 [label="a"]
2 -> 3 [label="b"]

3 [shape=doublecircle]
3 -> 1 [label="a"]
3 -> 0 [label="b"]

}
`

	var buf bytes.Buffer
	err := ExportDot(NewABB(), &buf)
	if err != nil {
		t.Fatal(err)
	}

	if buf.String() != expected {
		t.Errorf("expected: '%s', got '%s'", expected, buf.String())
	}
}

func TestExportDotMergesEdges(t *testing.T) {
	expected := `digraph g {
rankdir=LR
start [shape=point]
start -> 1

0 [shape=doublecircle]
0 -> 0 [label="x,\""]

1 -> 0 [label="x"]
1 -> 1 [label="\""]

}
`
	alphabet, err := NewAlphabet('x', '"')
	if err != nil {
		t.Fatal(err)
	}
	d, err := NewDFA(alphabet, Table{{0, 0}, {0, 1}}, 1, 0)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	err = ExportDot(d, &buf)
	if err != nil {
		t.Fatal(err)
	}

	if buf.String() != expected {
		t.Errorf("expected: '%s', got '%s'", expected, buf.String())
	}
}
