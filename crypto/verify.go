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
	"crypto/ed25519"
	"fmt"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/blake2b"
)

// Blake2b256Hash generates a Blake2b-256 hash from the provided data
func Blake2b256Hash(data []byte) [32]byte {
	tmpHash, err := blake2b.New256(nil)
	if err != nil {
		panic(
			fmt.Sprintf(
				"unexpected error generating empty blake2b hash: %s",
				err,
			),
		)
	}
	tmpHash.Write(data)
	var out [32]byte
	copy(out[:], tmpHash.Sum(nil))
	return out
}

// Verify checks a signature over a message against a public key. The
// signature's algorithm tag must match the key's tag; a mismatch is rejected
// before any cryptographic work. A failed verification and malformed input
// are reported as distinct error kinds.
func Verify(pk PublicKey, msg []byte, sig Signature) error {
	if pk.alg == AlgorithmSystem {
		return newVerificationError(pk.alg, ErrSystemKeyVerify)
	}
	if sig.alg != pk.alg {
		return newVerificationError(pk.alg, ErrAlgorithmMismatch)
	}
	switch pk.alg {
	case AlgorithmEd25519:
		return verifyEd25519(pk.data, msg, sig.data)
	case AlgorithmSecp256k1:
		return verifySecp256k1(pk.data, msg, sig.data)
	default:
		return newVerificationError(pk.alg, ErrUnknownAlgorithm)
	}
}

func verifyEd25519(pubKey, msg, sig []byte) error {
	if !ed25519.Verify(ed25519.PublicKey(pubKey), msg, sig) {
		return newVerificationError(AlgorithmEd25519, ErrSignatureInvalid)
	}
	return nil
}

func verifySecp256k1(pubKey, msg, sig []byte) error {
	parsedKey, err := secp256k1.ParsePubKey(pubKey)
	if err != nil {
		// Unreachable for keys built through the constructors
		return newFormatError("secp256k1 public key", ErrInvalidPoint)
	}
	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(sig[:32]); overflow {
		return newFormatError("secp256k1 signature", ErrInvalidPoint)
	}
	if overflow := s.SetByteSlice(sig[32:]); overflow {
		return newFormatError("secp256k1 signature", ErrInvalidPoint)
	}
	digest := Blake2b256Hash(msg)
	if !secpecdsa.NewSignature(&r, &s).Verify(digest[:], parsedKey) {
		return newVerificationError(AlgorithmSecp256k1, ErrSignatureInvalid)
	}
	return nil
}

// SignEd25519 produces a tagged Ed25519 signature over the message. Intended
// for client tooling; nodes only verify.
func SignEd25519(priv ed25519.PrivateKey, msg []byte) (Signature, error) {
	if len(priv) != ed25519.PrivateKeySize {
		return Signature{}, newFormatError("ed25519 private key", ErrWrongLength)
	}
	return NewEd25519Signature(ed25519.Sign(priv, msg))
}

// SignSecp256k1 produces a tagged compact ECDSA signature over the
// blake2b-256 digest of the message
func SignSecp256k1(priv *secp256k1.PrivateKey, msg []byte) (Signature, error) {
	if priv == nil {
		return Signature{}, newFormatError("secp256k1 private key", ErrWrongLength)
	}
	digest := Blake2b256Hash(msg)
	// SignCompact prepends a recovery byte; the wire form carries bare r||s
	compact := secpecdsa.SignCompact(priv, digest[:], true)
	return NewSecp256k1Signature(compact[1:])
}
