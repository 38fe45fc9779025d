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

package crypto

import (
	"fmt"

	"github.com/ironbark-io/ledgercore/key"
	"golang.org/x/crypto/blake2b"
)

// AccountHash derives the account identity addressed by this public key:
// the blake2b-256 digest of the algorithm tag byte followed by the raw key
// bytes. Hashing the tag first guarantees that identities can never collide
// across algorithms, even when raw key bytes coincide.
func (p PublicKey) AccountHash() key.AccountHash {
	tmpHash, err := blake2b.New256(nil)
	if err != nil {
		panic(
			fmt.Sprintf(
				"unexpected error generating empty blake2b hash: %s",
				err,
			),
		)
	}
	tmpHash.Write([]byte{uint8(p.alg)})
	tmpHash.Write(p.data)
	out, err := key.NewAccountHash(tmpHash.Sum(nil))
	if err != nil {
		panic(fmt.Sprintf("unexpected account hash size: %s", err))
	}
	return out
}

// AccountKey derives the global-state key for this public key's account
func (p PublicKey) AccountKey() key.Key {
	return key.AccountKey(p.AccountHash())
}
