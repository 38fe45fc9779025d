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

// Package numeric provides the fixed-width unsigned big integers used for
// token amounts and gas: U128, U256 and U512. Arithmetic is checked — an
// operation that would overflow, underflow or divide by zero returns an
// ArithmeticError instead of wrapping or panicking.
//
// All three widths share one shortest-form canonical wire encoding, so a
// value hashes identically regardless of which width class carries it.
package numeric
