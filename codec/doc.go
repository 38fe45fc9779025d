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

// Package codec implements the canonical binary wire format shared by every
// ledger type. The format is deterministic: a logical value has exactly one
// valid byte sequence, so independently produced encodings can be compared
// and hashed byte-for-byte.
//
// Fixed-width integers are raw little-endian with no prefix. Sequences carry
// a 4-byte little-endian length prefix. Options carry one presence byte,
// results one discriminant byte, and fixed-arity aggregates concatenate
// their elements with no framing at all.
//
// Decoding is strict and total: for any input the Reader either produces a
// value and advances by exactly its encoded length, or returns a DecodeError
// and leaves the cursor untouched. Declared lengths are never trusted beyond
// the bytes actually present.
package codec
