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

package crypto_test

import (
	"crypto/ed25519"
	"testing"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ironbark-io/ledgercore/codec"
	"github.com/ironbark-io/ledgercore/crypto"
	"github.com/ironbark-io/ledgercore/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMessage = []byte("transfer 100 motes to account A")

func ed25519TestKeys(t *testing.T) (crypto.PublicKey, ed25519.PrivateKey) {
	t.Helper()
	seed := test.DecodeHexString(
		"0101010101010101010101010101010101010101010101010101010101010101",
	)
	priv := ed25519.NewKeyFromSeed(seed)
	pk, err := crypto.NewEd25519PublicKey(priv.Public().(ed25519.PublicKey))
	require.NoError(t, err)
	return pk, priv
}

func secp256k1TestKeys(t *testing.T) (crypto.PublicKey, *secp256k1.PrivateKey) {
	t.Helper()
	priv := secp256k1.PrivKeyFromBytes(test.DecodeHexString(
		"2222222222222222222222222222222222222222222222222222222222222222",
	))
	pk, err := crypto.NewSecp256k1PublicKey(
		priv.PubKey().SerializeCompressed(),
	)
	require.NoError(t, err)
	return pk, priv
}

func TestEd25519SignVerify(t *testing.T) {
	pk, priv := ed25519TestKeys(t)
	sig, err := crypto.SignEd25519(priv, testMessage)
	require.NoError(t, err)
	require.NoError(t, crypto.Verify(pk, testMessage, sig))

	// A modified message must fail with a verification error, not a
	// format error
	err = crypto.Verify(pk, []byte("tampered"), sig)
	var verErr *crypto.VerificationError
	require.ErrorAs(t, err, &verErr)
	assert.ErrorIs(t, err, crypto.ErrSignatureInvalid)
}

func TestSecp256k1SignVerify(t *testing.T) {
	pk, priv := secp256k1TestKeys(t)
	sig, err := crypto.SignSecp256k1(priv, testMessage)
	require.NoError(t, err)
	require.NoError(t, crypto.Verify(pk, testMessage, sig))

	err = crypto.Verify(pk, []byte("tampered"), sig)
	assert.ErrorIs(t, err, crypto.ErrSignatureInvalid)
}

func TestCrossAlgorithmRejected(t *testing.T) {
	edPk, _ := ed25519TestKeys(t)
	_, secpPriv := secp256k1TestKeys(t)
	// A structurally valid secp256k1 signature presented against an Ed25519
	// key must be rejected on the tag alone
	secpSig, err := crypto.SignSecp256k1(secpPriv, testMessage)
	require.NoError(t, err)
	err = crypto.Verify(edPk, testMessage, secpSig)
	assert.ErrorIs(t, err, crypto.ErrAlgorithmMismatch)
	var verErr *crypto.VerificationError
	assert.ErrorAs(t, err, &verErr)
}

func TestSystemKeyCannotVerify(t *testing.T) {
	pk := crypto.SystemPublicKey()
	_, priv := ed25519TestKeys(t)
	sig, err := crypto.SignEd25519(priv, testMessage)
	require.NoError(t, err)
	err = crypto.Verify(pk, testMessage, sig)
	assert.ErrorIs(t, err, crypto.ErrSystemKeyVerify)
}

func TestMalformedKeysRejectedAtConstruction(t *testing.T) {
	_, err := crypto.NewEd25519PublicKey([]byte{0x01, 0x02})
	assert.ErrorIs(t, err, crypto.ErrWrongLength)

	// Right length, but not a canonical curve point
	bad := make([]byte, crypto.Ed25519PublicKeySize)
	for i := range bad {
		bad[i] = 0xff
	}
	_, err = crypto.NewEd25519PublicKey(bad)
	assert.ErrorIs(t, err, crypto.ErrInvalidPoint)

	_, err = crypto.NewSecp256k1PublicKey(make([]byte, 10))
	assert.ErrorIs(t, err, crypto.ErrWrongLength)

	// 33 zero bytes is not a valid compressed point
	_, err = crypto.NewSecp256k1PublicKey(
		make([]byte, crypto.Secp256k1PublicKeySize),
	)
	assert.ErrorIs(t, err, crypto.ErrInvalidPoint)

	_, err = crypto.NewEd25519Signature([]byte{0x01})
	assert.ErrorIs(t, err, crypto.ErrWrongLength)
}

func TestPublicKeyCodecRoundTrip(t *testing.T) {
	edPk, _ := ed25519TestKeys(t)
	secpPk, _ := secp256k1TestKeys(t)
	for _, pk := range []crypto.PublicKey{
		crypto.SystemPublicKey(),
		edPk,
		secpPk,
	} {
		data, err := codec.Encode(pk)
		require.NoError(t, err)
		require.Equal(t, pk.EncodedLen(), len(data))
		// Tag byte leads the encoding
		assert.Equal(t, uint8(pk.Algorithm()), data[0])
		r := codec.NewReader(data)
		got, err := crypto.ReadPublicKey(r)
		require.NoError(t, err)
		require.NoError(t, r.Finish())
		assert.True(t, got.Equal(pk))
	}
}

func TestSignatureCodecRoundTrip(t *testing.T) {
	_, priv := ed25519TestKeys(t)
	sig, err := crypto.SignEd25519(priv, testMessage)
	require.NoError(t, err)
	data, err := codec.Encode(sig)
	require.NoError(t, err)
	r := codec.NewReader(data)
	got, err := crypto.ReadSignature(r)
	require.NoError(t, err)
	require.NoError(t, r.Finish())
	assert.True(t, got.Equal(sig))

	// The system tag has no signature form
	_, err = crypto.ReadSignature(codec.NewReader([]byte{0x00}))
	assert.ErrorIs(t, err, codec.ErrFormat)

	// Unknown tags are rejected
	_, err = crypto.ReadSignature(codec.NewReader([]byte{0x07}))
	assert.ErrorIs(t, err, codec.ErrFormat)
}

func TestPublicKeyTextRoundTrip(t *testing.T) {
	edPk, _ := ed25519TestKeys(t)
	text := edPk.String()
	assert.Equal(t, "01", text[:2])
	parsed, err := crypto.ParsePublicKey(text)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(edPk))

	assert.Equal(t, "00", crypto.SystemPublicKey().String())
	parsed, err = crypto.ParsePublicKey("00")
	require.NoError(t, err)
	assert.Equal(t, crypto.AlgorithmSystem, parsed.Algorithm())

	_, err = crypto.ParsePublicKey("zz")
	assert.ErrorIs(t, err, crypto.ErrBadTextForm)
	_, err = crypto.ParsePublicKey("05ab")
	assert.ErrorIs(t, err, crypto.ErrUnknownAlgorithm)
}

func TestAccountHashDerivation(t *testing.T) {
	edPk, _ := ed25519TestKeys(t)
	h1 := edPk.AccountHash()
	h2 := edPk.AccountHash()
	// Derivation is deterministic
	assert.Equal(t, h1, h2)

	// The derived key addresses the account variant
	k := edPk.AccountKey()
	got, ok := k.Account()
	require.True(t, ok)
	assert.Equal(t, h1, got)
}

func TestIdentitySeparationAcrossAlgorithms(t *testing.T) {
	// Two keys with identical raw bytes but different algorithm tags must
	// derive different identities. 33 bytes that parse under secp256k1
	// cannot be reused as ed25519 (32 bytes), so compare against the
	// digest rule directly: tag is hashed ahead of the payload.
	_, secpPriv := secp256k1TestKeys(t)
	raw := secpPriv.PubKey().SerializeCompressed()
	pk, err := crypto.NewSecp256k1PublicKey(raw)
	require.NoError(t, err)

	withTag := append([]byte{uint8(crypto.AlgorithmSecp256k1)}, raw...)
	expected := crypto.Blake2b256Hash(withTag)
	assert.Equal(t, expected[:], pk.AccountHash().Bytes())

	otherTag := append([]byte{uint8(crypto.AlgorithmEd25519)}, raw...)
	other := crypto.Blake2b256Hash(otherTag)
	assert.NotEqual(t, expected, other)
}

func TestSystemAccountHashStable(t *testing.T) {
	// The system identity is the digest of the bare tag byte
	expected := crypto.Blake2b256Hash([]byte{0x00})
	assert.Equal(
		t,
		expected[:],
		crypto.SystemPublicKey().AccountHash().Bytes(),
	)
}
