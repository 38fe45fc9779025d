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

// Package crypto wraps the ledger's supported signature algorithms —
// Ed25519 and ECDSA over secp256k1, plus the reserved system identity —
// behind one tagged PublicKey/Signature pair. Verification dispatches on
// the key's tag and rejects cross-algorithm signatures outright. Account
// identities are derived by hashing the tag byte ahead of the raw key
// bytes, which separates identity spaces across algorithms by construction.
package crypto
