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
	"fmt"
	"unicode/utf8"

	"github.com/willf/bitset"
)

// DFA is a table driven deterministic finite automaton over a fixed
// alphabet.  A DFA is immutable once built and may be shared by any
// number of goroutines; each match walks its own private run.
type DFA struct {
	alphabet *Alphabet
	table    Table
	start    State
	accept   *bitset.BitSet
	// live marks states from which some accepting state is reachable
	live *bitset.BitSet
}

// NewDFA validates the provided definition and returns a DFA.  The
// table must have one column per alphabet symbol, and start and every
// accepting state must be rows of the table.  The table is copied.
func NewDFA(alphabet *Alphabet, table Table, start int, accept ...int) (*DFA, error) {
	if alphabet == nil {
		return nil, ErrEmptyAlphabet
	}
	err := table.Validate(alphabet.Size())
	if err != nil {
		return nil, err
	}
	n := table.States()
	if start < 0 || start >= n {
		return nil, &StateRangeError{What: "start", State: start, States: n}
	}
	if len(accept) == 0 {
		return nil, ErrNoAcceptStates
	}
	rv := &DFA{
		alphabet: alphabet,
		table:    table.Clone(),
		start:    State(start),
		accept:   bitset.New(uint(n)),
	}
	for _, s := range accept {
		if s < 0 || s >= n {
			return nil, &StateRangeError{What: "accept", State: s, States: n}
		}
		rv.accept.Set(uint(s))
	}
	rv.live = rv.coreachable()
	return rv, nil
}

// coreachable walks the reversed transition graph outward from the
// accepting states.
func (d *DFA) coreachable() *bitset.BitSet {
	n := d.table.States()
	reverse := make([][]int, n)
	for from, row := range d.table {
		for _, to := range row {
			reverse[to] = append(reverse[to], from)
		}
	}
	seen := d.accept.Clone()
	var stack []int
	for i, ok := seen.NextSet(0); ok; i, ok = seen.NextSet(i + 1) {
		stack = append(stack, int(i))
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, prev := range reverse[s] {
			if !seen.Test(uint(prev)) {
				seen.Set(uint(prev))
				stack = append(stack, prev)
			}
		}
	}
	return seen
}

// run is the mutable half of a match: the current state of a single
// walk over a single input.  A fresh run is used for every input.
type run struct {
	dfa   *DFA
	state State
}

func (d *DFA) newRun() *run {
	return &run{dfa: d, state: d.start}
}

// feed consumes input rune by rune, calling visit after every
// transition.  It stops at the first rune outside the alphabet.  A byte
// that is not valid UTF-8 is never a member, even of an alphabet
// containing utf8.RuneError.
func (r *run) feed(input string, visit func(State)) error {
	for offset := 0; offset < len(input); {
		ch, width := utf8.DecodeRuneInString(input[offset:])
		sym, ok := r.dfa.alphabet.Resolve(ch)
		if !ok || (ch == utf8.RuneError && width == 1) {
			return &UnrecognizedSymbolError{Symbol: ch, Offset: offset}
		}
		offset += width
		r.state = State(r.dfa.table[r.state][sym])
		if visit != nil {
			visit(r.state)
		}
	}
	return nil
}

func (r *run) verdict() error {
	if r.dfa.accept.Test(uint(r.state)) {
		return nil
	}
	return fmt.Errorf("%w (ended in state %d)", ErrRejected, r.state)
}

// Matches reports whether the entire input belongs to the language of
// this DFA.  It returns nil if the input is accepted.  Otherwise the
// error is an *UnrecognizedSymbolError, when a rune outside the
// alphabet was seen, or wraps ErrRejected.  Acceptance is decided only
// after the last rune; passing through an accepting state earlier does
// not count.  Malformed UTF-8 is reported as an unrecognized
// utf8.RuneError.
func (d *DFA) Matches(input string) error {
	r := d.newRun()
	err := r.feed(input, nil)
	if err != nil {
		return err
	}
	return r.verdict()
}

// Accepts is shorthand for Matches(input) == nil.
func (d *DFA) Accepts(input string) bool {
	return d.Matches(input) == nil
}

// Trace walks input like Matches and also returns every state visited,
// starting with the start state.  On an unrecognized symbol the trace
// ends at the last state reached before it.
func (d *DFA) Trace(input string) ([]State, error) {
	r := d.newRun()
	trace := []State{r.state}
	err := r.feed(input, func(s State) {
		trace = append(trace, s)
	})
	if err != nil {
		return trace, err
	}
	return trace, r.verdict()
}

// Alphabet returns the alphabet of this DFA.
func (d *DFA) Alphabet() *Alphabet {
	return d.alphabet
}

// Table returns a copy of the transition table.
func (d *DFA) Table() Table {
	return d.table.Clone()
}

// States returns the number of states.
func (d *DFA) States() int {
	return d.table.States()
}

// StartState returns the state every match begins in.
func (d *DFA) StartState() State {
	return d.start
}

// AcceptStates returns the accepting states in ascending order.
func (d *DFA) AcceptStates() []State {
	var rv []State
	for i, ok := d.accept.NextSet(0); ok; i, ok = d.accept.NextSet(i + 1) {
		rv = append(rv, State(i))
	}
	return rv
}

// IsAccepting returns true if s is an accepting state.
func (d *DFA) IsAccepting(s State) bool {
	return d.valid(s) && d.accept.Test(uint(s))
}

func (d *DFA) valid(s State) bool {
	return s >= 0 && int(s) < d.table.States()
}
