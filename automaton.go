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

import "unicode/utf8"

// State identifies a row of a transition table.
type State int

// DeadState is the sink reached after a byte outside the alphabet.  No
// transition leaves it and it never matches.
const DeadState State = -1

// Automaton represents the general contract of a byte-based finite automaton
type Automaton interface {

	// Start returns the start state
	Start() State

	// IsMatch returns true if and only if the state is a match
	IsMatch(State) bool

	// CanMatch returns true if and only if it is possible to reach a match
	// in zero or more steps
	CanMatch(State) bool

	// WillAlwaysMatch returns true if and only if the current state matches
	// and will always match no matter what steps are taken
	WillAlwaysMatch(State) bool

	// Accept returns the next state given the input to the specified state
	Accept(State, byte) State
}

// Start returns the start state of this automaton.
func (d *DFA) Start() State {
	return d.start
}

// IsMatch returns if the specified state is an accepting state.
func (d *DFA) IsMatch(s State) bool {
	return d.IsAccepting(s)
}

// CanMatch returns if some accepting state is reachable from the
// specified state.
func (d *DFA) CanMatch(s State) bool {
	return d.valid(s) && d.live.Test(uint(s))
}

// WillAlwaysMatch always returns false.  Any byte outside the alphabet,
// and every byte >= 0x80, leads to DeadState, so no state of a DFA keeps
// matching under every possible step.
func (d *DFA) WillAlwaysMatch(State) bool {
	return false
}

// Accept returns the new state, resulting from the transition on byte b
// when currently in the state s.  Only single-byte symbols can be
// stepped this way; use Matches for inputs with multi-byte runes.
func (d *DFA) Accept(s State, b byte) State {
	if !d.valid(s) || b >= utf8.RuneSelf {
		return DeadState
	}
	sym, ok := d.alphabet.Resolve(rune(b))
	if !ok {
		return DeadState
	}
	return State(d.table[s][sym])
}

// Run feeds every byte of input through a, returning whether it ends in
// a matching state.  It gives up as soon as no match is reachable.
func Run(a Automaton, input []byte) bool {
	s := a.Start()
	for _, b := range input {
		s = a.Accept(s, b)
		if !a.CanMatch(s) {
			return false
		}
	}
	return a.IsMatch(s)
}
