// Copyright 2025 Ironbark Software
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

package codec

import (
	"math/big"
)

// Big unsigned integers use a shortest-form canonical encoding: one length
// byte holding the count of significant bytes, then that many little-endian
// bytes with no trailing zeros. Zero is the bare length byte 0x00. The same
// rule applies to every width class, so equal values encode identically
// regardless of which width carries them.

// BigLELen returns the encoded size of a big integer in shortest form
func BigLELen(i *big.Int) int {
	return 1 + (i.BitLen()+7)/8
}

// PutBigLE writes a non-negative big integer in canonical shortest form.
// Negative values cannot appear on the wire and are an encode error.
func (w *Writer) PutBigLE(i *big.Int) error {
	if i.Sign() < 0 {
		return newEncodeError("big integer", ErrFormat)
	}
	numBytes := (i.BitLen() + 7) / 8
	if numBytes > 255 {
		return newEncodeError("big integer", ErrValueTooLarge)
	}
	w.PutUint8(uint8(numBytes))
	if numBytes == 0 {
		return nil
	}
	// big.Int produces big-endian bytes; the wire form is little-endian
	be := i.Bytes()
	le := make([]byte, numBytes)
	for idx, b := range be {
		le[numBytes-1-idx] = b
	}
	w.PutRawBytes(le)
	return nil
}

// ReadBigLE reads a canonical shortest-form integer of at most maxBytes
// significant bytes. Non-canonical input (a trailing zero byte, or a
// declared length exceeding the width) is rejected.
func (r *Reader) ReadBigLE(what string, maxBytes int) (*big.Int, error) {
	start := r.pos
	numBytes, err := r.ReadUint8()
	if err != nil {
		return nil, newDecodeError(what, ErrEarlyEndOfStream)
	}
	if int(numBytes) > maxBytes {
		r.pos = start
		return nil, newDecodeError(what, ErrFormat)
	}
	if numBytes == 0 {
		return new(big.Int), nil
	}
	le, err := r.readRawBytesNoCopy(int(numBytes))
	if err != nil {
		r.pos = start
		return nil, newDecodeError(what, ErrEarlyEndOfStream)
	}
	// The most significant byte is the final little-endian byte; a zero
	// there means the encoding was not shortest-form
	if le[len(le)-1] == 0 {
		r.pos = start
		return nil, newDecodeError(what, ErrFormat)
	}
	be := make([]byte, len(le))
	for idx, b := range le {
		be[len(le)-1-idx] = b
	}
	return new(big.Int).SetBytes(be), nil
}
