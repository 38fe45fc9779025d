// Copyright 2026 Ironbark Software
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
	"math"
)

// PutFunc writes a single element of type T to the Writer
type PutFunc[T any] func(w *Writer, v T) error

// ReadFunc reads a single element of type T from the Reader
type ReadFunc[T any] func(r *Reader) (T, error)

// PutOption writes an option: one presence byte, then the element encoding
// when present. A nil pointer is the absent case.
func PutOption[T any](w *Writer, v *T, put PutFunc[T]) error {
	if v == nil {
		w.PutUint8(optionNone)
		return nil
	}
	w.PutUint8(optionSome)
	return put(w, *v)
}

// ReadOption reads an option written by PutOption. Any presence byte other
// than 0 or 1 is a format error.
func ReadOption[T any](r *Reader, read ReadFunc[T]) (*T, error) {
	start := r.pos
	tag, err := r.ReadUint8()
	if err != nil {
		return nil, newDecodeError("option", ErrEarlyEndOfStream)
	}
	switch tag {
	case optionNone:
		return nil, nil
	case optionSome:
		v, err := read(r)
		if err != nil {
			r.pos = start
			return nil, err
		}
		return &v, nil
	default:
		r.pos = start
		return nil, newDecodeError("option", ErrFormat)
	}
}

// PutList writes a sequence: a 4-byte little-endian element count followed
// by each element's encoding in order
func PutList[T any](w *Writer, items []T, put PutFunc[T]) error {
	if len(items) > math.MaxUint32 {
		return newEncodeError("list", ErrValueTooLarge)
	}
	w.PutUint32(uint32(len(items)))
	for _, item := range items {
		if err := put(w, item); err != nil {
			return err
		}
	}
	return nil
}

// ReadList reads a sequence written by PutList. The declared count is never
// trusted for allocation: capacity is capped by the bytes actually
// remaining, so a bogus count cannot force a large allocation and instead
// fails when the input runs out.
func ReadList[T any](r *Reader, read ReadFunc[T]) ([]T, error) {
	start := r.pos
	count, err := r.ReadUint32()
	if err != nil {
		return nil, newDecodeError("list", ErrEarlyEndOfStream)
	}
	// Elements may legitimately encode to zero bytes (unit), so the count
	// cannot be rejected against Remaining() up front. Capping the initial
	// capacity is what bounds the allocation.
	capHint := int(count)
	if capHint > r.Remaining() {
		capHint = r.Remaining()
	}
	out := make([]T, 0, capHint)
	for i := uint32(0); i < count; i++ {
		v, err := read(r)
		if err != nil {
			r.pos = start
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// PutResult writes a result: one discriminant byte (0=err, 1=ok) followed by
// the matching variant's encoding
func PutResult[T, E any](
	w *Writer,
	ok *T,
	errVal *E,
	putOk PutFunc[T],
	putErr PutFunc[E],
) error {
	if ok != nil {
		w.PutUint8(resultOk)
		return putOk(w, *ok)
	}
	if errVal != nil {
		w.PutUint8(resultErr)
		return putErr(w, *errVal)
	}
	return newEncodeError("result", ErrFormat)
}

// ReadResult reads a result written by PutResult. Exactly one of the
// returned pointers is non-nil on success.
func ReadResult[T, E any](
	r *Reader,
	readOk ReadFunc[T],
	readErr ReadFunc[E],
) (*T, *E, error) {
	start := r.pos
	tag, err := r.ReadUint8()
	if err != nil {
		return nil, nil, newDecodeError("result", ErrEarlyEndOfStream)
	}
	switch tag {
	case resultOk:
		v, err := readOk(r)
		if err != nil {
			r.pos = start
			return nil, nil, err
		}
		return &v, nil, nil
	case resultErr:
		v, err := readErr(r)
		if err != nil {
			r.pos = start
			return nil, nil, err
		}
		return nil, &v, nil
	default:
		r.pos = start
		return nil, nil, newDecodeError("result", ErrFormat)
	}
}

// MapEntry is a single key/value pair in a serialized map
type MapEntry[K comparable, V any] struct {
	Key   K
	Value V
}

// PutMap writes a map as a length-prefixed sequence of key/value pairs in
// the order given. Producing a canonical encoding is the caller's
// responsibility: entries must already be in the protocol's key order.
func PutMap[K comparable, V any](
	w *Writer,
	entries []MapEntry[K, V],
	putKey PutFunc[K],
	putValue PutFunc[V],
) error {
	if len(entries) > math.MaxUint32 {
		return newEncodeError("map", ErrValueTooLarge)
	}
	w.PutUint32(uint32(len(entries)))
	for _, entry := range entries {
		if err := putKey(w, entry.Key); err != nil {
			return err
		}
		if err := putValue(w, entry.Value); err != nil {
			return err
		}
	}
	return nil
}

// ReadMap reads a map written by PutMap, preserving entry order. A repeated
// key is a decode error.
func ReadMap[K comparable, V any](
	r *Reader,
	readKey ReadFunc[K],
	readValue ReadFunc[V],
) ([]MapEntry[K, V], error) {
	start := r.pos
	count, err := r.ReadUint32()
	if err != nil {
		return nil, newDecodeError("map", ErrEarlyEndOfStream)
	}
	capHint := int(count)
	if capHint > r.Remaining() {
		capHint = r.Remaining()
	}
	out := make([]MapEntry[K, V], 0, capHint)
	seen := make(map[K]struct{}, capHint)
	for i := uint32(0); i < count; i++ {
		k, err := readKey(r)
		if err != nil {
			r.pos = start
			return nil, err
		}
		if _, ok := seen[k]; ok {
			r.pos = start
			return nil, newDecodeError("map", ErrDuplicateMapKey)
		}
		seen[k] = struct{}{}
		v, err := readValue(r)
		if err != nil {
			r.pos = start
			return nil, err
		}
		out = append(out, MapEntry[K, V]{Key: k, Value: v})
	}
	return out, nil
}
