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
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ironbark-io/ledgercore/codec"
)

// Tag identifies a key variant on the wire. The set is closed: adding a
// variant is a protocol-breaking change, and an unrecognized tag byte is a
// decode error, never a fallback.
type Tag uint8

const (
	TagAccount Tag = iota
	TagHash
	TagURef
	TagTransfer
	TagDeployInfo
	TagEraInfo
	TagBalance
	TagBid
	TagWithdraw
)

func (t Tag) String() string {
	switch t {
	case TagAccount:
		return "Account"
	case TagHash:
		return "Hash"
	case TagURef:
		return "URef"
	case TagTransfer:
		return "Transfer"
	case TagDeployInfo:
		return "DeployInfo"
	case TagEraInfo:
		return "EraInfo"
	case TagBalance:
		return "Balance"
	case TagBid:
		return "Bid"
	case TagWithdraw:
		return "Withdraw"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(t))
	}
}

// Text prefixes per variant. The text form is a bijection with the binary
// form; it exists for display and non-binary map keys, never for the wire.
const (
	prefixAccount    = "account-hash-"
	prefixHash       = "hash-"
	prefixURef       = "uref-"
	prefixTransfer   = "transfer-"
	prefixDeployInfo = "deploy-"
	prefixEraInfo    = "era-"
	prefixBalance    = "balance-"
	prefixBid        = "bid-"
	prefixWithdraw   = "withdraw-"
)

// Key addresses an entry in global state. It is an immutable tagged value:
// one of nine variants, each with a fixed-width payload. Equality and
// ordering are defined over the encoded form so every node agrees on
// iteration order.
type Key struct {
	tag    Tag
	hash   [DigestSize]byte
	access AccessRights // URef only
	era    uint64       // EraInfo only
}

// AccountKey creates the account variant
func AccountKey(h AccountHash) Key {
	return Key{tag: TagAccount, hash: h}
}

// HashKey creates the stored-value hash variant
func HashKey(h Hash) Key {
	return Key{tag: TagHash, hash: h}
}

// URefKey creates the uniform reference variant
func URefKey(u URef) Key {
	return Key{tag: TagURef, hash: u.Addr, access: u.Access}
}

// TransferKey creates the transfer record variant
func TransferKey(t TransferAddr) Key {
	return Key{tag: TagTransfer, hash: t}
}

// DeployInfoKey creates the deploy record variant
func DeployInfoKey(d DeployHash) Key {
	return Key{tag: TagDeployInfo, hash: d}
}

// EraInfoKey creates the per-era record variant
func EraInfoKey(era uint64) Key {
	return Key{tag: TagEraInfo, era: era}
}

// BalanceKey creates the balance record variant, addressed by the purse
// URef address without its access rights
func BalanceKey(addr [URefAddrSize]byte) Key {
	return Key{tag: TagBalance, hash: addr}
}

// BidKey creates the bid/stake record variant
func BidKey(h AccountHash) Key {
	return Key{tag: TagBid, hash: h}
}

// WithdrawKey creates the withdrawal record variant
func WithdrawKey(h AccountHash) Key {
	return Key{tag: TagWithdraw, hash: h}
}

// Tag returns the variant tag
func (k Key) Tag() Tag {
	return k.tag
}

// Account returns the account hash payload when the key is the account
// variant
func (k Key) Account() (AccountHash, bool) {
	if k.tag != TagAccount {
		return AccountHash{}, false
	}
	return AccountHash(k.hash), true
}

// Hash returns the stored-value hash payload when the key is the hash
// variant
func (k Key) Hash() (Hash, bool) {
	if k.tag != TagHash {
		return Hash{}, false
	}
	return Hash(k.hash), true
}

// URef returns the reference payload when the key is the URef variant
func (k Key) URef() (URef, bool) {
	if k.tag != TagURef {
		return URef{}, false
	}
	return URef{Addr: k.hash, Access: k.access}, true
}

// Transfer returns the transfer address when the key is the transfer variant
func (k Key) Transfer() (TransferAddr, bool) {
	if k.tag != TagTransfer {
		return TransferAddr{}, false
	}
	return TransferAddr(k.hash), true
}

// DeployInfo returns the deploy hash when the key is the deploy variant
func (k Key) DeployInfo() (DeployHash, bool) {
	if k.tag != TagDeployInfo {
		return DeployHash{}, false
	}
	return DeployHash(k.hash), true
}

// EraInfo returns the era id when the key is the era variant
func (k Key) EraInfo() (uint64, bool) {
	if k.tag != TagEraInfo {
		return 0, false
	}
	return k.era, true
}

// Balance returns the purse address when the key is the balance variant
func (k Key) Balance() ([URefAddrSize]byte, bool) {
	if k.tag != TagBalance {
		return [URefAddrSize]byte{}, false
	}
	return k.hash, true
}

// Bid returns the account hash when the key is the bid variant
func (k Key) Bid() (AccountHash, bool) {
	if k.tag != TagBid {
		return AccountHash{}, false
	}
	return AccountHash(k.hash), true
}

// Withdraw returns the account hash when the key is the withdraw variant
func (k Key) Withdraw() (AccountHash, bool) {
	if k.tag != TagWithdraw {
		return AccountHash{}, false
	}
	return AccountHash(k.hash), true
}

// EncodeTo writes the tag byte followed by the variant's fixed-width payload
func (k Key) EncodeTo(w *codec.Writer) error {
	w.PutUint8(uint8(k.tag))
	switch k.tag {
	case TagURef:
		w.PutRawBytes(k.hash[:])
		w.PutUint8(uint8(k.access))
	case TagEraInfo:
		w.PutUint64(k.era)
	default:
		w.PutRawBytes(k.hash[:])
	}
	return nil
}

// EncodedLen returns the wire size of the key
func (k Key) EncodedLen() int {
	switch k.tag {
	case TagURef:
		return 1 + URefSerializedSize
	case TagEraInfo:
		return 1 + codec.Uint64Size
	default:
		return 1 + DigestSize
	}
}

// Bytes returns the canonical binary form
func (k Key) Bytes() []byte {
	return codec.MustEncode(k)
}

// Equal reports whether two keys have identical encodings
func (k Key) Equal(other Key) bool {
	return k.Compare(other) == 0
}

// Compare orders keys over their encoded form. Two nodes iterating global
// state therefore always agree on ordering.
func (k Key) Compare(other Key) int {
	return bytes.Compare(k.Bytes(), other.Bytes())
}

// ReadKey decodes a key, rejecting unknown variant tags
func ReadKey(r *codec.Reader) (Key, error) {
	start := r.Pos()
	tag, err := r.ReadUint8()
	if err != nil {
		return Key{}, &codec.DecodeError{What: "key", Err: codec.ErrEarlyEndOfStream}
	}
	var k Key
	k.tag = Tag(tag)
	switch k.tag {
	case TagURef:
		u, err := ReadURef(r)
		if err != nil {
			r.Rewind(start)
			return Key{}, err
		}
		k.hash = u.Addr
		k.access = u.Access
	case TagEraInfo:
		era, err := r.ReadUint64()
		if err != nil {
			r.Rewind(start)
			return Key{}, err
		}
		k.era = era
	case TagAccount, TagHash, TagTransfer, TagDeployInfo,
		TagBalance, TagBid, TagWithdraw:
		payload, err := r.ReadRawBytes(DigestSize)
		if err != nil {
			r.Rewind(start)
			return Key{}, err
		}
		copy(k.hash[:], payload)
	default:
		r.Rewind(start)
		return Key{}, &codec.DecodeError{What: "key", Err: codec.ErrFormat}
	}
	return k, nil
}

// String returns the canonical text form: the variant prefix followed by the
// hex payload (decimal for era keys)
func (k Key) String() string {
	switch k.tag {
	case TagAccount:
		return prefixAccount + hex.EncodeToString(k.hash[:])
	case TagHash:
		return prefixHash + hex.EncodeToString(k.hash[:])
	case TagURef:
		return URef{Addr: k.hash, Access: k.access}.String()
	case TagTransfer:
		return prefixTransfer + hex.EncodeToString(k.hash[:])
	case TagDeployInfo:
		return prefixDeployInfo + hex.EncodeToString(k.hash[:])
	case TagEraInfo:
		return prefixEraInfo + strconv.FormatUint(k.era, 10)
	case TagBalance:
		return prefixBalance + hex.EncodeToString(k.hash[:])
	case TagBid:
		return prefixBid + hex.EncodeToString(k.hash[:])
	case TagWithdraw:
		return prefixWithdraw + hex.EncodeToString(k.hash[:])
	default:
		// Unreachable: keys cannot be constructed with an unknown tag
		return fmt.Sprintf("invalid-key-%d", uint8(k.tag))
	}
}

// Parse parses the canonical text form produced by String. The account
// prefix is checked before the bare hash prefix because the former contains
// the latter.
func Parse(s string) (Key, error) {
	switch {
	case strings.HasPrefix(s, prefixAccount):
		payload, err := parseDigest(s[len(prefixAccount):])
		if err != nil {
			return Key{}, err
		}
		return AccountKey(AccountHash(payload)), nil
	case strings.HasPrefix(s, prefixURef):
		u, err := ParseURef(s)
		if err != nil {
			return Key{}, err
		}
		return URefKey(u), nil
	case strings.HasPrefix(s, prefixHash):
		payload, err := parseDigest(s[len(prefixHash):])
		if err != nil {
			return Key{}, err
		}
		return HashKey(Hash(payload)), nil
	case strings.HasPrefix(s, prefixTransfer):
		payload, err := parseDigest(s[len(prefixTransfer):])
		if err != nil {
			return Key{}, err
		}
		return TransferKey(TransferAddr(payload)), nil
	case strings.HasPrefix(s, prefixDeployInfo):
		payload, err := parseDigest(s[len(prefixDeployInfo):])
		if err != nil {
			return Key{}, err
		}
		return DeployInfoKey(DeployHash(payload)), nil
	case strings.HasPrefix(s, prefixEraInfo):
		era, err := strconv.ParseUint(s[len(prefixEraInfo):], 10, 64)
		if err != nil {
			return Key{}, newFormatError("era", ErrBadTextForm)
		}
		return EraInfoKey(era), nil
	case strings.HasPrefix(s, prefixBalance):
		payload, err := parseDigest(s[len(prefixBalance):])
		if err != nil {
			return Key{}, err
		}
		return BalanceKey(payload), nil
	case strings.HasPrefix(s, prefixBid):
		payload, err := parseDigest(s[len(prefixBid):])
		if err != nil {
			return Key{}, err
		}
		return BidKey(AccountHash(payload)), nil
	case strings.HasPrefix(s, prefixWithdraw):
		payload, err := parseDigest(s[len(prefixWithdraw):])
		if err != nil {
			return Key{}, err
		}
		return WithdrawKey(AccountHash(payload)), nil
	default:
		return Key{}, newFormatError("key", ErrUnknownVariant)
	}
}

func parseDigest(hexPayload string) ([DigestSize]byte, error) {
	var out [DigestSize]byte
	decoded, err := hex.DecodeString(hexPayload)
	if err != nil {
		return out, newFormatError("key", ErrBadTextForm)
	}
	if len(decoded) != DigestSize {
		return out, newFormatError("key", ErrWrongLength)
	}
	copy(out[:], decoded)
	return out, nil
}

func (k Key) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *Key) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
