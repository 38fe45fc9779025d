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
	"github.com/ironbark-io/ledgercore/codec"
	"github.com/ironbark-io/ledgercore/crypto"
	"github.com/ironbark-io/ledgercore/key"
	"github.com/ironbark-io/ledgercore/numeric"
)

// walkValue consumes exactly one encoded value of the given shape from the
// reader, applying the same strictness as the real decoders: bool and
// option bytes must be 0x00/0x01, big integers must be shortest-form, map
// keys must be unique. It never inspects bytes beyond the reader's bound.
func walkValue(r *codec.Reader, t Type, depth int) error {
	if depth > maxTypeNesting {
		return &codec.DecodeError{What: "value", Err: codec.ErrFormat}
	}
	switch t.Tag {
	case TypeBool:
		_, err := r.ReadBool()
		return err
	case TypeI32:
		_, err := r.ReadInt32()
		return err
	case TypeI64:
		_, err := r.ReadInt64()
		return err
	case TypeU8:
		_, err := r.ReadUint8()
		return err
	case TypeU32:
		_, err := r.ReadUint32()
		return err
	case TypeU64:
		_, err := r.ReadUint64()
		return err
	case TypeU128:
		_, err := r.ReadBigLE("u128", numeric.U128MaxBytes)
		return err
	case TypeU256:
		_, err := r.ReadBigLE("u256", numeric.U256MaxBytes)
		return err
	case TypeU512:
		_, err := r.ReadBigLE("u512", numeric.U512MaxBytes)
		return err
	case TypeUnit:
		// Unit occupies zero bytes
		return nil
	case TypeString:
		_, err := r.ReadString()
		return err
	case TypeKey:
		_, err := key.ReadKey(r)
		return err
	case TypeURef:
		_, err := key.ReadURef(r)
		return err
	case TypePublicKey:
		_, err := crypto.ReadPublicKey(r)
		return err
	case TypeOption:
		present, err := r.ReadBool()
		if err != nil {
			return err
		}
		if present {
			return walkValue(r, t.Params[0], depth+1)
		}
		return nil
	case TypeList:
		count, err := r.ReadUint32()
		if err != nil {
			return err
		}
		for i := uint32(0); i < count; i++ {
			if err := walkValue(r, t.Params[0], depth+1); err != nil {
				return err
			}
		}
		return nil
	case TypeFixedList:
		// No count on the wire; the descriptor's arity governs
		for i := uint32(0); i < t.Arity; i++ {
			if err := walkValue(r, t.Params[0], depth+1); err != nil {
				return err
			}
		}
		return nil
	case TypeResult:
		ok, err := r.ReadBool()
		if err != nil {
			return err
		}
		if ok {
			return walkValue(r, t.Params[0], depth+1)
		}
		return walkValue(r, t.Params[1], depth+1)
	case TypeMap:
		count, err := r.ReadUint32()
		if err != nil {
			return err
		}
		seen := make(map[string]struct{})
		for i := uint32(0); i < count; i++ {
			keyStart := r.Pos()
			if err := walkValue(r, t.Params[0], depth+1); err != nil {
				return err
			}
			keyBytes, err := r.Range(keyStart, r.Pos())
			if err != nil {
				return err
			}
			if _, dup := seen[string(keyBytes)]; dup {
				return &codec.DecodeError{
					What: "map",
					Err:  codec.ErrDuplicateMapKey,
				}
			}
			seen[string(keyBytes)] = struct{}{}
			if err := walkValue(r, t.Params[1], depth+1); err != nil {
				return err
			}
		}
		return nil
	case TypeTuple1, TypeTuple2, TypeTuple3:
		for _, p := range t.Params {
			if err := walkValue(r, p, depth+1); err != nil {
				return err
			}
		}
		return nil
	case TypeAny:
		return ErrAnyOpaque
	default:
		return &codec.DecodeError{What: "value", Err: codec.ErrFormat}
	}
}

// captureValue walks one value and returns the exact bytes it occupied
func captureValue(r *codec.Reader, t Type, depth int) ([]byte, error) {
	start := r.Pos()
	if err := walkValue(r, t, depth); err != nil {
		return nil, err
	}
	return r.Range(start, r.Pos())
}
