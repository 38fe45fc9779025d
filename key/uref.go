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
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/ironbark-io/ledgercore/codec"
)

// AccessRights is the permission bitfield carried by a URef: read, write and
// add may be combined freely
type AccessRights uint8

const (
	AccessNone  AccessRights = 0
	AccessRead  AccessRights = 1
	AccessWrite AccessRights = 2
	AccessAdd   AccessRights = 4

	AccessReadWrite    = AccessRead | AccessWrite
	AccessReadAdd      = AccessRead | AccessAdd
	AccessAddWrite     = AccessAdd | AccessWrite
	AccessReadAddWrite = AccessRead | AccessAdd | AccessWrite

	accessAllBits = AccessReadAddWrite
)

// Valid reports whether only defined permission bits are set
func (a AccessRights) Valid() bool {
	return a&^accessAllBits == 0
}

// CanRead reports whether the read bit is set
func (a AccessRights) CanRead() bool { return a&AccessRead != 0 }

// CanWrite reports whether the write bit is set
func (a AccessRights) CanWrite() bool { return a&AccessWrite != 0 }

// CanAdd reports whether the add bit is set
func (a AccessRights) CanAdd() bool { return a&AccessAdd != 0 }

func (a AccessRights) String() string {
	if a == AccessNone {
		return "NONE"
	}
	parts := make([]string, 0, 3)
	if a.CanRead() {
		parts = append(parts, "READ")
	}
	if a.CanAdd() {
		parts = append(parts, "ADD")
	}
	if a.CanWrite() {
		parts = append(parts, "WRITE")
	}
	return strings.Join(parts, "_")
}

const (
	// URefAddrSize is the width of a URef address
	URefAddrSize = 32

	// URefSerializedSize is the wire size of a URef: address plus access byte
	URefSerializedSize = URefAddrSize + 1
)

// URef is an unforgeable reference into global state: a 32-byte address plus
// the access rights the holder was granted over it
type URef struct {
	Addr   [URefAddrSize]byte
	Access AccessRights
}

// NewURef creates a URef from raw address bytes and access rights, failing
// on a wrong address length or undefined permission bits
func NewURef(addr []byte, access AccessRights) (URef, error) {
	var u URef
	if len(addr) != URefAddrSize {
		return u, newFormatError("uref", ErrWrongLength)
	}
	if !access.Valid() {
		return u, newFormatError("uref", ErrInvalidAccessRights)
	}
	copy(u.Addr[:], addr)
	u.Access = access
	return u, nil
}

// String returns the canonical text form: uref-<hex addr>-<3-digit access>
func (u URef) String() string {
	return fmt.Sprintf(
		"uref-%s-%03d",
		hex.EncodeToString(u.Addr[:]),
		uint8(u.Access),
	)
}

// ParseURef parses the canonical text form produced by String
func ParseURef(s string) (URef, error) {
	var u URef
	rest, ok := strings.CutPrefix(s, "uref-")
	if !ok {
		return u, newFormatError("uref", ErrBadTextForm)
	}
	addrHex, accessText, ok := strings.Cut(rest, "-")
	if !ok || len(accessText) != 3 {
		return u, newFormatError("uref", ErrBadTextForm)
	}
	addr, err := hex.DecodeString(addrHex)
	if err != nil {
		return u, newFormatError("uref", ErrBadTextForm)
	}
	access, err := strconv.ParseUint(accessText, 10, 8)
	if err != nil {
		return u, newFormatError("uref", ErrBadTextForm)
	}
	return NewURef(addr, AccessRights(access))
}

// EncodeTo writes the address followed by the access byte. Both sides know
// the width, so no length prefix is carried.
func (u URef) EncodeTo(w *codec.Writer) error {
	w.PutRawBytes(u.Addr[:])
	w.PutUint8(uint8(u.Access))
	return nil
}

// EncodedLen returns the wire size of a URef
func (u URef) EncodedLen() int {
	return URefSerializedSize
}

// ReadURef decodes a URef, rejecting undefined access bits
func ReadURef(r *codec.Reader) (URef, error) {
	var u URef
	start := r.Pos()
	addr, err := r.ReadRawBytes(URefAddrSize)
	if err != nil {
		return u, err
	}
	access, err := r.ReadUint8()
	if err != nil {
		r.Rewind(start)
		return u, err
	}
	if !AccessRights(access).Valid() {
		r.Rewind(start)
		return u, &codec.DecodeError{What: "uref", Err: codec.ErrFormat}
	}
	copy(u.Addr[:], addr)
	u.Access = AccessRights(access)
	return u, nil
}
