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
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Definition is the on-disk description of an automaton.
//
//	expression = "(a|b)*abb"
//	alphabet   = "ab"
//	start      = 0
//	accept     = [3]
//	table      = [[1, 0], [1, 2], [1, 3], [1, 0]]
//
// Each rune of Alphabet is one symbol, in column order.
type Definition struct {
	Expression string  `toml:"expression"`
	Alphabet   string  `toml:"alphabet"`
	Start      int     `toml:"start"`
	Accept     []int   `toml:"accept"`
	Table      [][]int `toml:"table"`
}

// ParseDefinition decodes a TOML automaton definition.  Unknown keys are
// an error.
func ParseDefinition(data []byte) (*Definition, error) {
	var def Definition
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	err := dec.Decode(&def)
	if err != nil {
		return nil, fmt.Errorf("parsing definition: %w", err)
	}
	return &def, nil
}

// LoadDefinition reads and decodes the TOML definition at path.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	def, err := ParseDefinition(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Build validates the definition and returns the DFA it describes.
func (def *Definition) Build() (*DFA, error) {
	alphabet, err := NewAlphabet([]rune(def.Alphabet)...)
	if err != nil {
		return nil, err
	}
	return NewDFA(alphabet, Table(def.Table), def.Start, def.Accept...)
}

// DefinitionOf describes d, labelled with expr.
func DefinitionOf(d *DFA, expr string) *Definition {
	def := &Definition{
		Expression: expr,
		Alphabet:   string(d.alphabet.symbols),
		Start:      int(d.start),
		Table:      d.Table(),
	}
	for _, s := range d.AcceptStates() {
		def.Accept = append(def.Accept, int(s))
	}
	return def
}

// Marshal encodes the definition as TOML.
func (def *Definition) Marshal() ([]byte, error) {
	return toml.Marshal(def)
}
