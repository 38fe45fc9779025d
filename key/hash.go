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

package key

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	// DigestSize is the fixed width of every hash-shaped key payload
	DigestSize = 32
)

// AccountHash is the 32-byte digest that addresses an account's state. It is
// derived from a tagged public key (see the crypto package), never chosen
// directly.
type AccountHash [DigestSize]byte

// NewAccountHash creates an AccountHash from raw digest bytes, failing when
// the length is wrong
func NewAccountHash(data []byte) (AccountHash, error) {
	var h AccountHash
	if len(data) != DigestSize {
		return h, newFormatError("account hash", ErrWrongLength)
	}
	copy(h[:], data)
	return h, nil
}

func (h AccountHash) String() string {
	return hex.EncodeToString(h[:])
}

func (h AccountHash) Bytes() []byte {
	return h[:]
}

// Bech32 renders the hash with the given human-readable prefix for display
// tooling. The binary protocol never uses this form.
func (h AccountHash) Bech32(prefix string) string {
	convData, err := bech32.ConvertBits(h[:], 8, 5, true)
	if err != nil {
		panic(
			fmt.Sprintf("unexpected error converting data to base32: %s", err),
		)
	}
	encoded, err := bech32.Encode(prefix, convData)
	if err != nil {
		panic(fmt.Sprintf("unexpected error encoding data as bech32: %s", err))
	}
	return encoded
}

func (h AccountHash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// Hash is the 32-byte digest addressing a stored value (contract code,
// package records and the like) in global state
type Hash [DigestSize]byte

// NewHash creates a Hash from raw digest bytes, failing when the length is
// wrong
func NewHash(data []byte) (Hash, error) {
	var h Hash
	if len(data) != DigestSize {
		return h, newFormatError("hash", ErrWrongLength)
	}
	copy(h[:], data)
	return h, nil
}

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

func (h Hash) Bytes() []byte {
	return h[:]
}

func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// TransferAddr is the 32-byte identifier of a completed transfer record
type TransferAddr [DigestSize]byte

func (t TransferAddr) String() string {
	return hex.EncodeToString(t[:])
}

// DeployHash is the 32-byte identifier of an executed deploy record
type DeployHash [DigestSize]byte

func (d DeployHash) String() string {
	return hex.EncodeToString(d[:])
}
