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
)

const headerSize = 16

// typeDFA is the only automaton type written into headers so far
const typeDFA = 0

const defaultVersion = versionV1

type encoderConstructor func(w io.Writer) encoder
type decoderConstructor func(body []byte) decoder

var encoders = map[int]encoderConstructor{}
var decoders = map[int]decoderConstructor{}

type encoder interface {
	encode(d *DFA) error
}

type decoder interface {
	decode() (*DFA, error)
}

func loadEncoder(ver int, w io.Writer) (encoder, error) {
	if cons, ok := encoders[ver]; ok {
		return cons(w), nil
	}
	return nil, fmt.Errorf("no encoder for version %d registered", ver)
}

func loadDecoder(ver int, body []byte) (decoder, error) {
	if cons, ok := decoders[ver]; ok {
		return cons(body), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, ver)
}

func registerEncoder(ver int, cons encoderConstructor) {
	encoders[ver] = cons
}

func registerDecoder(ver int, cons decoderConstructor) {
	decoders[ver] = cons
}

func encodeHeader(w *bufio.Writer, ver int) error {
	header := make([]byte, headerSize)
	binary.LittleEndian.PutUint64(header, uint64(ver))
	binary.LittleEndian.PutUint64(header[8:], typeDFA)
	n, err := w.Write(header)
	if err != nil {
		return err
	}
	if n != headerSize {
		return fmt.Errorf("short write of header %d/%d", n, headerSize)
	}
	return nil
}

func decodeHeader(data []byte) (ver int, typ int, err error) {
	if len(data) < headerSize {
		return 0, 0, ErrShortData
	}
	ver = int(binary.LittleEndian.Uint64(data))
	typ = int(binary.LittleEndian.Uint64(data[8:]))
	if typ != typeDFA {
		return 0, 0, fmt.Errorf("unknown automaton type %d", typ)
	}
	return ver, typ, nil
}

// Encode writes the binary representation of d to w.  The result can
// be read back with Load or Open.
func (d *DFA) Encode(w io.Writer) error {
	enc, err := loadEncoder(defaultVersion, w)
	if err != nil {
		return err
	}
	return enc.encode(d)
}

// Load decodes a DFA previously written by Encode.  The returned DFA
// does not retain data.
func Load(data []byte) (*DFA, error) {
	ver, _, err := decodeHeader(data)
	if err != nil {
		return nil, err
	}
	dec, err := loadDecoder(ver, data[headerSize:])
	if err != nil {
		return nil, err
	}
	return dec.decode()
}
