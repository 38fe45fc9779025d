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

// Package key defines the canonical address forms for entries in global
// state: accounts, stored values, unforgeable references, transfer and
// deploy records, and the auction's era, balance, bid and withdrawal
// records.
//
// The variant set is closed. Every key encodes as one tag byte plus a
// fixed-width payload, the encoding is injective, and ordering is defined
// over the encoded bytes. Each variant also has a stable text form
// (prefix plus hex payload) that round-trips through Parse.
package key
