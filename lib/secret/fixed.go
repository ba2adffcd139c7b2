// Copyright 2026 The Secure Gate Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"crypto/rand"
	"fmt"
	"io"
	"unsafe"

	"github.com/Slurp9187/secure-gate-sub000/lib/codec"
	"github.com/Slurp9187/secure-gate-sub000/lib/memzero"
)

// ByteArray enumerates the payload shapes a [Fixed] container can
// hold. Alias of [memzero.ByteArray] so the supported sizes are
// defined in one place.
type ByteArray = memzero.ByteArray

// asBytes views the array payload as a byte slice. Sound because
// ByteArray admits only plain byte-array underlying types, so the
// pointed-to memory is exactly Sizeof(*p) contiguous bytes.
func asBytes[T ByteArray](p *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), int(unsafe.Sizeof(*p)))
}

// Fixed holds a compile-time-sized secret inline. The payload is part
// of the struct, so there is no separate payload allocation and the
// whole container can live on the caller's stack when it does not
// escape.
//
// A Fixed must not be copied (go vet enforces this); pass the pointer
// returned by the constructor. Call Destroy when the secret's
// lifetime ends.
type Fixed[T ByteArray] struct {
	noCopy    noCopy
	inner     T
	destroyed bool
}

// NewFixed wraps an exact-size value. Infallible. The argument is a
// copy (array value semantics); callers holding the original in a
// variable should wipe it with memzero if it outlives this call.
func NewFixed[T ByteArray](value T) *Fixed[T] {
	return &Fixed[T]{inner: value}
}

// FixedFromSlice copies a borrowed view of exactly the payload size
// into a new container. Returns a *LengthMismatchError when the view
// has the wrong length; the view is borrowed, not consumed, so it is
// left untouched either way.
func FixedFromSlice[T ByteArray](view []byte) (*Fixed[T], error) {
	container := &Fixed[T]{}
	payload := asBytes(&container.inner)
	if len(view) != len(payload) {
		return nil, &LengthMismatchError{Expected: len(payload), Actual: len(view)}
	}
	copy(payload, view)
	return container, nil
}

// NewFixedRandom fills a new container from the operating system's
// cryptographic random source. On entropy failure no container is
// returned — the payload is never left zero-filled or low-entropy.
func NewFixedRandom[T ByteArray]() (*Fixed[T], error) {
	container := &Fixed[T]{}
	if _, err := rand.Read(asBytes(&container.inner)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyFailure, err)
	}
	return container, nil
}

// ExposeSecret returns a direct pointer to the payload. The pointer
// stays valid until Destroy; prefer WithSecret, which bounds the
// exposure to a call. Panics after Destroy.
func (f *Fixed[T]) ExposeSecret() *T {
	f.mustLive()
	return &f.inner
}

// WithSecret passes a read view of the payload to fn. The view is
// borrowed for the duration of the call and must not be retained.
// Panics after Destroy.
func (f *Fixed[T]) WithSecret(fn func(view []byte)) {
	f.mustLive()
	fn(asBytes(&f.inner))
}

// WithSecretMut passes a writable view of the payload to fn, for
// in-place mutation. Same borrowing rules as WithSecret.
func (f *Fixed[T]) WithSecretMut(fn func(view []byte)) {
	f.mustLive()
	fn(asBytes(&f.inner))
}

// Len returns the payload size in bytes. Does not expose content and
// remains callable after Destroy.
func (f *Fixed[T]) Len() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Equal reports whether two containers hold identical payloads in
// constant time.
func (f *Fixed[T]) Equal(other *Fixed[T]) bool {
	return Equal(f, other)
}

// Destroy wipes the payload. Stack frames are reused without
// clearing, so the wipe matters even for stack-resident containers.
// Any later payload access panics. Idempotent.
func (f *Fixed[T]) Destroy() {
	if f.destroyed {
		return
	}
	f.destroyed = true
	memzero.ZeroArray(&f.inner)
}

func (f *Fixed[T]) mustLive() {
	if f.destroyed {
		panic("secret: use of destroyed container")
	}
}

// String implements fmt.Stringer with the fixed redaction marker.
func (f *Fixed[T]) String() string { return Redacted }

// Format implements fmt.Formatter so that every verb, including %#v,
// renders the redaction marker rather than the payload.
func (f *Fixed[T]) Format(state fmt.State, verb rune) {
	io.WriteString(state, Redacted)
}

// MarshalCBOR denies outward serialization; see [FixedExportable].
func (f *Fixed[T]) MarshalCBOR() ([]byte, error) { return nil, ErrExportDenied }

// MarshalJSON denies outward serialization; see [FixedExportable].
func (f *Fixed[T]) MarshalJSON() ([]byte, error) { return nil, ErrExportDenied }

// MarshalText denies outward serialization; see [FixedExportable].
func (f *Fixed[T]) MarshalText() ([]byte, error) { return nil, ErrExportDenied }

// MarshalBinary denies outward serialization; see [FixedExportable].
func (f *Fixed[T]) MarshalBinary() ([]byte, error) { return nil, ErrExportDenied }

// UnmarshalCBOR reconstructs the payload from a CBOR byte string of
// exactly the payload size. Import from trusted structured input is
// always permitted. The intermediate decode buffer is wiped before
// returning.
func (f *Fixed[T]) UnmarshalCBOR(data []byte) error {
	f.mustLive()

	var payload []byte
	if err := codec.Unmarshal(data, &payload); err != nil {
		memzero.Zero(payload)
		return fmt.Errorf("secret: importing fixed payload: %w", err)
	}

	target := asBytes(&f.inner)
	if len(payload) != len(target) {
		mismatch := &LengthMismatchError{Expected: len(target), Actual: len(payload)}
		memzero.Zero(payload)
		return mismatch
	}

	copy(target, payload)
	memzero.Zero(payload)
	return nil
}
