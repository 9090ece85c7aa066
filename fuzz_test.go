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
	"errors"
	"strings"
	"testing"
)

func FuzzABB(f *testing.F) {
	f.Add("abb")
	f.Add("ababb")
	f.Add("")
	f.Add("abc")
	f.Add("abb~")
	f.Add("\xffabb")

	d := NewABB()
	f.Fuzz(func(t *testing.T, input string) {
		err := d.Matches(input)

		bad := strings.IndexFunc(input, func(r rune) bool {
			return r != 'a' && r != 'b'
		})
		if bad >= 0 {
			var unrec *UnrecognizedSymbolError
			if !errors.As(err, &unrec) {
				t.Fatalf("%q: expected unrecognized symbol, got %v", input, err)
			}
			if unrec.Offset != bad {
				t.Fatalf("%q: expected offset %d, got %d", input, bad, unrec.Offset)
			}
			return
		}

		if strings.HasSuffix(input, "abb") != (err == nil) {
			t.Fatalf("%q: unexpected result %v", input, err)
		}
	})
}

func FuzzAutomaton(f *testing.F) {
	f.Add([]byte("abb"))
	f.Add([]byte{0x00, 'a', 0x80})
	f.Add([]byte(""))

	d := NewABB()
	f.Fuzz(func(t *testing.T, input []byte) {
		// Run should not panic and should agree with Matches.
		if Run(d, input) != d.Accepts(string(input)) {
			t.Fatalf("%q: Run and Matches disagree", input)
		}
	})
}
