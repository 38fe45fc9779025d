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

package numeric

import (
	"errors"
	"fmt"
)

// Sentinel errors for arithmetic failures so callers can use errors.Is
var (
	ErrOverflow     = errors.New("overflow")
	ErrUnderflow    = errors.New("underflow")
	ErrDivideByZero = errors.New("division by zero")
	ErrOutOfRange   = errors.New("value out of range")
)

// ArithmeticError reports a failed checked operation along with the operation
// name and the width class it was attempted on.
type ArithmeticError struct {
	Op   string
	Type string
	Err  error
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Type, e.Op, e.Err)
}

func (e *ArithmeticError) Unwrap() error { return e.Err }

func newArithmeticError(typ, op string, err error) *ArithmeticError {
	return &ArithmeticError{Op: op, Type: typ, Err: err}
}
