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
	"encoding/binary"
	"fmt"
	"io"

	"github.com/willf/bitset"
)

const versionV1 = 1

func init() {
	registerEncoder(versionV1, func(w io.Writer) encoder {
		return newEncoderV1(w)
	})
	registerDecoder(versionV1, func(body []byte) decoder {
		return &decoderV1{data: body}
	})
}

// encoderV1 lays out, after the header, all as little endian uint32:
//
//	symbol count, symbols..., state count, start,
//	table cells in row order..., accept set length, accept set bytes
//
// The accept set is the binary marshalling of a bitset.BitSet.
type encoderV1 struct {
	w *bufio.Writer
}

func newEncoderV1(w io.Writer) *encoderV1 {
	return &encoderV1{
		w: bufio.NewWriter(w),
	}
}

func (e *encoderV1) encode(d *DFA) error {
	err := encodeHeader(e.w, versionV1)
	if err != nil {
		return err
	}
	err = e.writeUint32(uint32(d.alphabet.Size()))
	if err != nil {
		return err
	}
	for _, r := range d.alphabet.symbols {
		err = e.writeUint32(uint32(r))
		if err != nil {
			return err
		}
	}
	err = e.writeUint32(uint32(d.table.States()))
	if err != nil {
		return err
	}
	err = e.writeUint32(uint32(d.start))
	if err != nil {
		return err
	}
	for _, row := range d.table {
		for _, next := range row {
			err = e.writeUint32(uint32(next))
			if err != nil {
				return err
			}
		}
	}
	accept, err := d.accept.MarshalBinary()
	if err != nil {
		return err
	}
	err = e.writeUint32(uint32(len(accept)))
	if err != nil {
		return err
	}
	_, err = e.w.Write(accept)
	if err != nil {
		return err
	}
	return e.w.Flush()
}

func (e *encoderV1) writeUint32(v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := e.w.Write(buf[:])
	return err
}

type decoderV1 struct {
	data []byte
	pos  int
}

func (d *decoderV1) decode() (*DFA, error) {
	nsyms, err := d.readUint32()
	if err != nil {
		return nil, err
	}
	if uint64(nsyms)*4 > uint64(len(d.data)-d.pos) {
		return nil, ErrShortData
	}
	symbols := make([]rune, nsyms)
	for i := range symbols {
		v, _ := d.readUint32()
		symbols[i] = rune(v)
	}
	alphabet, err := NewAlphabet(symbols...)
	if err != nil {
		return nil, err
	}
	nstates, err := d.readUint32()
	if err != nil {
		return nil, err
	}
	start, err := d.readUint32()
	if err != nil {
		return nil, err
	}
	if uint64(nstates)*uint64(nsyms)*4 > uint64(len(d.data)-d.pos) {
		return nil, ErrShortData
	}
	table := make(Table, nstates)
	for s := range table {
		table[s] = make([]int, nsyms)
		for c := range table[s] {
			v, _ := d.readUint32()
			table[s][c] = int(v)
		}
	}
	acceptLen, err := d.readUint32()
	if err != nil {
		return nil, err
	}
	if int(acceptLen) > len(d.data)-d.pos {
		return nil, ErrShortData
	}
	var accept bitset.BitSet
	err = accept.UnmarshalBinary(d.data[d.pos : d.pos+int(acceptLen)])
	if err != nil {
		return nil, fmt.Errorf("decoding accept states: %w", err)
	}
	var acceptStates []int
	for i, ok := accept.NextSet(0); ok; i, ok = accept.NextSet(i + 1) {
		acceptStates = append(acceptStates, int(i))
	}

	return NewDFA(alphabet, table, int(start), acceptStates...)
}

func (d *decoderV1) readUint32() (uint32, error) {
	if d.pos+4 > len(d.data) {
		return 0, ErrShortData
	}
	v := binary.LittleEndian.Uint32(d.data[d.pos:])
	d.pos += 4
	return v, nil
}
