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
	"errors"
	"fmt"
)

// Sentinel errors for malformed key material so callers can use errors.Is
var (
	ErrWrongLength         = errors.New("wrong payload length")
	ErrUnknownVariant      = errors.New("unknown key variant")
	ErrInvalidAccessRights = errors.New("invalid access rights")
	ErrBadTextForm         = errors.New("malformed key text form")
)

// FormatError reports malformed key material. Construction and parsing fail
// here rather than letting a bad payload surface later at use.
type FormatError struct {
	What string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("key format %s: %s", e.What, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

func newFormatError(what string, err error) *FormatError {
	return &FormatError{What: what, Err: err}
}
