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
	"errors"
	"fmt"
)

// Sentinel errors for decode failures so callers can use errors.Is
var (
	// ErrEarlyEndOfStream indicates the input ended before the declared
	// structure was complete
	ErrEarlyEndOfStream = errors.New("early end of stream")

	// ErrFormat indicates a byte that has no valid interpretation for the
	// expected type (bad boolean byte, unknown discriminant, non-canonical
	// integer form)
	ErrFormat = errors.New("invalid format")

	// ErrDuplicateMapKey indicates a serialized map carrying the same key twice
	ErrDuplicateMapKey = errors.New("duplicate map key")

	// ErrLeftoverBytes indicates trailing input after a complete decode where
	// none was expected
	ErrLeftoverBytes = errors.New("leftover bytes after decode")

	// ErrValueTooLarge indicates a value that cannot be represented in the
	// wire format (e.g. a sequence longer than the 32-bit length prefix allows)
	ErrValueTooLarge = errors.New("value too large to encode")
)

// DecodeError wraps one of the decode sentinels with the wire type being
// decoded when the failure occurred.
type DecodeError struct {
	What string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %s", e.What, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func newDecodeError(what string, err error) *DecodeError {
	return &DecodeError{What: what, Err: err}
}

// EncodeError wraps an encode-side failure. Encoding a well-formed in-memory
// value only fails on resource limits such as ErrValueTooLarge.
type EncodeError struct {
	What string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s: %s", e.What, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

func newEncodeError(what string, err error) *EncodeError {
	return &EncodeError{What: what, Err: err}
}
