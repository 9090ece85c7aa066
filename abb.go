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

// Expression is the regular expression recognized by the automaton
// returned from NewABB.
const Expression = "(a|b)*abb"

// abbTable is the transition table for Expression over the alphabet
// {a,b}.  State 3 accepts but is not absorbing: further input leaves it.
var abbTable = Table{
	{1, 0}, // 0: start
	{1, 2}, // 1: seen a
	{1, 3}, // 2: seen ab
	{1, 0}, // 3: seen abb
}

const (
	// ABBStart is the start state of the ABBTable table.
	ABBStart = 0
	// ABBAccept is the accepting state of the ABBTable table.
	ABBAccept = 3
)

// ABBTable returns a copy of the transition table for Expression.
func ABBTable() Table {
	return abbTable.Clone()
}

// NewABB returns a DFA recognizing (a|b)*abb.
func NewABB() *DFA {
	alphabet, err := NewAlphabet('a', 'b')
	if err != nil {
		panic(err)
	}
	d, err := NewDFA(alphabet, abbTable, ABBStart, ABBAccept)
	if err != nil {
		panic(err)
	}
	return d
}
