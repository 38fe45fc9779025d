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
	"errors"
	"fmt"
)

// Sentinel errors so callers can use errors.Is
var (
	// ErrSignatureInvalid indicates a well-formed signature that does not
	// verify against the key and message
	ErrSignatureInvalid = errors.New("signature verification failed")

	// ErrAlgorithmMismatch indicates a signature tagged for a different
	// algorithm than the key; cross-algorithm verification is rejected
	// outright, never attempted
	ErrAlgorithmMismatch = errors.New("signature algorithm does not match key")

	// ErrSystemKeyVerify indicates an attempt to verify against the system
	// key, which holds no signing capability
	ErrSystemKeyVerify = errors.New("system key cannot verify signatures")

	// ErrWrongLength indicates key or signature material of the wrong size
	// for its claimed algorithm
	ErrWrongLength = errors.New("wrong payload length for algorithm")

	// ErrInvalidPoint indicates key bytes that do not describe a valid
	// curve point
	ErrInvalidPoint = errors.New("bytes do not encode a valid curve point")

	// ErrUnknownAlgorithm indicates an unrecognized algorithm tag
	ErrUnknownAlgorithm = errors.New("unknown algorithm tag")

	// ErrBadTextForm indicates malformed hex text for a key or signature
	ErrBadTextForm = errors.New("malformed text form")
)

// VerificationError reports a failed signature verification. It is a
// distinct kind from FormatError so callers can tell a wrong signature from
// corrupt data.
type VerificationError struct {
	Algorithm Algorithm
	Err       error
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Algorithm, e.Err)
}

func (e *VerificationError) Unwrap() error { return e.Err }

func newVerificationError(alg Algorithm, err error) *VerificationError {
	return &VerificationError{Algorithm: alg, Err: err}
}

// FormatError reports malformed key or signature material. Construction
// fails here rather than letting bad material surface later at use.
type FormatError struct {
	What string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("crypto format %s: %s", e.What, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

func newFormatError(what string, err error) *FormatError {
	return &FormatError{What: what, Err: err}
}
