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

package value

import (
	"errors"
	"fmt"
)

var (
	// ErrAnyOpaque is returned when an operation requires traversing a
	// value whose descriptor contains Any. Such payloads are opaque and
	// can only be round-tripped, never inspected.
	ErrAnyOpaque = errors.New("value with Any type is opaque")

	// ErrElementType is returned when a homogeneous container is built
	// from elements whose descriptors disagree
	ErrElementType = errors.New("element type does not match container type")

	// ErrArity is returned when a fixed-size list is built with a length
	// that disagrees with its descriptor
	ErrArity = errors.New("element count does not match fixed list arity")
)

// TypeMismatchError reports an extraction attempted against the wrong
// descriptor. The payload bytes are never touched when this is returned.
type TypeMismatchError struct {
	Expected Type
	Actual   Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf(
		"type mismatch: expected %s, found %s",
		e.Expected,
		e.Actual,
	)
}

func newTypeMismatch(expected, actual Type) *TypeMismatchError {
	return &TypeMismatchError{Expected: expected, Actual: actual}
}
