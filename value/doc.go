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

// Package value implements the ledger's dynamic typed value container: a
// structural type descriptor paired with the canonical encoding of a
// payload of that shape. Contract arguments and stored state travel in
// this form, so a host can route and persist values without knowing their
// shapes at compile time, while typed extraction stays safe: the expected
// descriptor is checked before any payload byte is decoded.
//
// Descriptors cover primitives (bool, fixed-width and wide integers,
// strings, unit), ledger domain types (Key, URef, PublicKey), and
// composites (option, list, fixed-size list, result, map, tuples up to
// three fields). The Any descriptor marks a payload as opaque; it can be
// carried and re-encoded but never inspected.
package value
