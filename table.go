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

// Table is a transition table indexed by [state][symbol].  Each cell
// holds the next state.
type Table [][]int

// States returns the number of rows.
func (t Table) States() int {
	return len(t)
}

// Symbols returns the number of columns of the first row, or zero for
// an empty table.
func (t Table) Symbols() int {
	if len(t) == 0 {
		return 0
	}
	return len(t[0])
}

// Validate checks that every row has exactly symbols columns and that
// every cell names a state of this table.
func (t Table) Validate(symbols int) error {
	if len(t) == 0 {
		return ErrNoStates
	}
	for state, row := range t {
		if len(row) != symbols {
			return &TableShapeError{State: state, Got: len(row), Want: symbols}
		}
		for sym, next := range row {
			if next < 0 || next >= len(t) {
				return &StateRangeError{
					What:   fmt.Sprintf("transition %d/%d", state, sym),
					State:  next,
					States: len(t),
				}
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	rv := make(Table, len(t))
	for i, row := range t {
		rv[i] = make([]int, len(row))
		copy(rv[i], row)
	}
	return rv
}
