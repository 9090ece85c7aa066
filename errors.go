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

import "fmt"

// ErrRejected is returned when every symbol of the input was recognized
// but the walk did not end in an accepting state.
var ErrRejected = fmt.Errorf("did not end in accepting state")

// ErrEmptyAlphabet is returned when an alphabet has no symbols
var ErrEmptyAlphabet = fmt.Errorf("alphabet must contain at least one symbol")

// ErrNoStates is returned when a transition table has no rows
var ErrNoStates = fmt.Errorf("transition table must contain at least one state")

// ErrNoAcceptStates is returned when a DFA is built without any
// accepting state.
var ErrNoAcceptStates = fmt.Errorf("at least one accepting state is required")

// ErrUnsupportedVersion is returned when decoding an automaton encoded
// with an unknown format version.
var ErrUnsupportedVersion = fmt.Errorf("unsupported encoding version")

// ErrShortData is returned when encoded automaton data is truncated.
var ErrShortData = fmt.Errorf("encoded automaton data truncated")

// UnrecognizedSymbolError is returned when the input contains a rune
// outside the alphabet.  Matching stops at the first such rune.
type UnrecognizedSymbolError struct {
	Symbol rune
	// Offset is the byte offset of Symbol within the input.
	Offset int
}

func (e *UnrecognizedSymbolError) Error() string {
	return fmt.Sprintf("unrecognized symbol %q at offset %d", e.Symbol, e.Offset)
}

// DuplicateSymbolError is returned when an alphabet lists the same
// symbol more than once.
type DuplicateSymbolError struct {
	Symbol rune
}

func (e *DuplicateSymbolError) Error() string {
	return fmt.Sprintf("duplicate symbol %q in alphabet", e.Symbol)
}

// TableShapeError is returned when a table row does not have one column
// per alphabet symbol.
type TableShapeError struct {
	State int
	Got   int
	Want  int
}

func (e *TableShapeError) Error() string {
	return fmt.Sprintf("state %d has %d transitions, want %d", e.State, e.Got, e.Want)
}

// StateRangeError is returned when a state index falls outside
// [0, States).  What names the offending field, e.g. "start" or
// "transition 2/1".
type StateRangeError struct {
	What   string
	State  int
	States int
}

func (e *StateRangeError) Error() string {
	return fmt.Sprintf("%s: state %d out of range [0, %d)", e.What, e.State, e.States)
}
