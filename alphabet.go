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
	"strings"
	"unicode/utf8"
)

// Alphabet is the ordered, immutable set of symbols an automaton
// recognizes.  The position of a symbol is its column in the
// transition table.
type Alphabet struct {
	symbols []rune
	// ascii holds index+1 for single-byte symbols, zero when absent
	ascii [utf8.RuneSelf]uint32
	wide  map[rune]int
}

// NewAlphabet returns an Alphabet over the provided symbols, in order.
// Symbols must be distinct.
func NewAlphabet(symbols ...rune) (*Alphabet, error) {
	if len(symbols) == 0 {
		return nil, ErrEmptyAlphabet
	}
	rv := &Alphabet{
		symbols: make([]rune, len(symbols)),
	}
	copy(rv.symbols, symbols)
	for i, r := range rv.symbols {
		if _, exists := rv.Resolve(r); exists {
			return nil, &DuplicateSymbolError{Symbol: r}
		}
		if r >= 0 && r < utf8.RuneSelf {
			rv.ascii[r] = uint32(i + 1)
			continue
		}
		if rv.wide == nil {
			rv.wide = make(map[rune]int)
		}
		rv.wide[r] = i
	}
	return rv, nil
}

// Resolve returns the index of r within the alphabet.  The second
// return value is false if r is not a member.
func (a *Alphabet) Resolve(r rune) (int, bool) {
	if r >= 0 && r < utf8.RuneSelf {
		i := a.ascii[r]
		if i == 0 {
			return 0, false
		}
		return int(i - 1), true
	}
	i, ok := a.wide[r]
	return i, ok
}

// Size returns the number of symbols.
func (a *Alphabet) Size() int {
	return len(a.symbols)
}

// Symbol returns the symbol at index i.
func (a *Alphabet) Symbol(i int) rune {
	return a.symbols[i]
}

// Symbols returns a copy of the symbols in order.
func (a *Alphabet) Symbols() []rune {
	rv := make([]rune, len(a.symbols))
	copy(rv, a.symbols)
	return rv
}

func (a *Alphabet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, r := range a.symbols {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	sb.WriteByte('}')
	return sb.String()
}
