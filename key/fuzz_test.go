// Copyright 2026 Ironbark Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package key

import (
	"bytes"
	"testing"

	"github.com/ironbark-io/ledgercore/codec"
)

// FuzzReadKey exercises key decoding with arbitrary input. Decoding must
// never panic, a failure must leave the cursor untouched, and a success
// must re-encode to the exact bytes consumed.
func FuzzReadKey(f *testing.F) {
	for _, k := range allVariants() {
		f.Add(k.Bytes())
	}
	f.Add([]byte{})
	f.Add([]byte{0x2a})
	f.Add([]byte{0x05, 0x01, 0x02})
	f.Fuzz(func(t *testing.T, data []byte) {
		r := codec.NewReader(data)
		k, err := ReadKey(r)
		if err != nil {
			if r.Pos() != 0 {
				t.Fatalf("cursor advanced on failed key decode")
			}
			return
		}
		if !bytes.Equal(k.Bytes(), data[:r.Pos()]) {
			t.Fatalf("decoded key does not re-encode to consumed bytes")
		}
	})
}
