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

package codec_test

import (
	"testing"

	"github.com/ironbark-io/ledgercore/codec"
)

// FuzzReader exercises the decode paths with arbitrary input. Decoding must
// either succeed or fail with an error; it must never panic or read outside
// the provided buffer.
func FuzzReader(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add([]byte{0x01, 0x07, 0x00, 0x00, 0x00})
	f.Add([]byte{0xff, 0xff, 0xff, 0xff})
	f.Add([]byte{0x03, 0x00, 0x00, 0x00, 0x61, 0x62, 0x63})
	f.Fuzz(func(t *testing.T, data []byte) {
		readU32 := func(r *codec.Reader) (uint32, error) {
			return r.ReadUint32()
		}
		r := codec.NewReader(data)
		if _, err := r.ReadBool(); err != nil {
			// Failed reads must not advance the cursor
			if r.Pos() != 0 {
				t.Fatalf("cursor advanced on failed bool decode")
			}
		}
		r = codec.NewReader(data)
		//nolint:errcheck
		r.ReadByteSlice()
		r = codec.NewReader(data)
		//nolint:errcheck
		r.ReadString()
		r = codec.NewReader(data)
		//nolint:errcheck
		codec.ReadList(r, readU32)
		r = codec.NewReader(data)
		//nolint:errcheck
		codec.ReadOption(r, readU32)
		r = codec.NewReader(data)
		if out, err := r.ReadByteSlice(); err == nil {
			// A successful decode consumed exactly the prefix plus payload
			if r.Pos() != codec.LengthPrefixSize+len(out) {
				t.Fatalf(
					"byte slice decode consumed %d bytes for %d-byte payload",
					r.Pos(),
					len(out),
				)
			}
		}
	})
}
