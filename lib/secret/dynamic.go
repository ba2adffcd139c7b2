// Copyright 2026 The Secure Gate Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/Slurp9187/secure-gate-sub000/lib/codec"
	"github.com/Slurp9187/secure-gate-sub000/lib/memzero"
)

// Dynamic holds a runtime-sized secret on the heap. It tracks the
// full allocated capacity of its backing array: growth wipes the
// abandoned allocation at the moment the payload moves, and Destroy
// wipes the entire capacity rather than just the logical length,
// because slack left by earlier growth can still hold stale secret
// bytes.
//
// The zero value is an empty, live container. A Dynamic must not be
// copied (go vet enforces this); pass the pointer.
type Dynamic struct {
	noCopy    noCopy
	data      []byte
	destroyed bool
}

// NewBytes takes ownership of source: the bytes are moved into a
// fresh backing array sized exactly to the payload, and source is
// wiped so the caller's slice no longer holds the secret. Infallible.
func NewBytes(source []byte) *Dynamic {
	data := make([]byte, len(source))
	copy(data, source)
	memzero.Zero(source)
	return &Dynamic{data: data}
}

// NewString copies a string payload. Go strings are immutable, so the
// original cannot be wiped; prefer NewBytes when the caller holds
// mutable bytes.
func NewString(source string) *Dynamic {
	data := make([]byte, len(source))
	copy(data, source)
	return &Dynamic{data: data}
}

// NewRandom allocates exactly length bytes of cryptographically
// secure random content. On entropy failure no container is returned.
func NewRandom(length int) (*Dynamic, error) {
	if length < 0 {
		return nil, fmt.Errorf("secret: random payload length must be non-negative, got %d", length)
	}
	data := make([]byte, length)
	if _, err := rand.Read(data); err != nil {
		memzero.Zero(data)
		return nil, fmt.Errorf("%w: %v", ErrEntropyFailure, err)
	}
	return &Dynamic{data: data}, nil
}

// ExposeSecret returns a direct view of the payload. The slice points
// into the container's backing array and stays valid until the next
// Append or Destroy; prefer WithSecret, which bounds the exposure to
// a call. Panics after Destroy.
func (d *Dynamic) ExposeSecret() []byte {
	d.mustLive()
	return d.data
}

// ExposeSecretMut returns a direct, writable view of the payload for
// in-place mutation. Go cannot hand out a read-only slice, so this is
// the same view as ExposeSecret under a name that keeps mutation
// sites greppable in an audit. Prefer WithSecretMut, which bounds the
// exposure to a call. Panics after Destroy.
func (d *Dynamic) ExposeSecretMut() []byte {
	d.mustLive()
	return d.data
}

// ExposeSecretString returns the payload as a string for API
// boundaries that demand one. The string is an unwipeable heap copy;
// use it only where a []byte genuinely cannot serve. Panics after
// Destroy.
func (d *Dynamic) ExposeSecretString() string {
	d.mustLive()
	return string(d.data)
}

// WithSecret passes a read view of the payload to fn. The view is
// borrowed for the duration of the call and must not be retained.
// Panics after Destroy.
func (d *Dynamic) WithSecret(fn func(view []byte)) {
	d.mustLive()
	fn(d.data)
}

// WithSecretMut passes a writable view of the payload to fn, for
// in-place mutation. Same borrowing rules as WithSecret.
func (d *Dynamic) WithSecretMut(fn func(view []byte)) {
	d.mustLive()
	fn(d.data)
}

// Len returns the logical payload length without exposing content.
func (d *Dynamic) Len() int {
	return len(d.data)
}

// Equal reports whether two containers hold identical payloads in
// constant time.
func (d *Dynamic) Equal(other *Dynamic) bool {
	return Equal(d, other)
}

// Append takes ownership of more and appends it to the payload,
// wiping more afterwards. When growth forces a move to a larger
// backing array, the abandoned array is wiped in full at the move —
// not deferred to Destroy, since nothing reaches that memory again.
func (d *Dynamic) Append(more []byte) {
	d.mustLive()

	needed := len(d.data) + len(more)
	if needed <= cap(d.data) {
		offset := len(d.data)
		d.data = d.data[:needed]
		copy(d.data[offset:], more)
		memzero.Zero(more)
		return
	}

	// Amortized doubling; the slack is wiped at Destroy.
	grownCapacity := 2 * cap(d.data)
	if grownCapacity < needed {
		grownCapacity = needed
	}
	grown := make([]byte, needed, grownCapacity)
	copy(grown, d.data)
	copy(grown[len(d.data):], more)

	abandoned := d.data
	d.data = grown
	memzero.Zero(abandoned[:cap(abandoned)])
	memzero.Zero(more)
}

// Destroy wipes the full allocated capacity of the backing array and
// releases it. Any later payload access panics. Idempotent.
func (d *Dynamic) Destroy() {
	if d.destroyed {
		return
	}
	d.destroyed = true
	memzero.Zero(d.data[:cap(d.data)])
	d.data = nil
}

func (d *Dynamic) mustLive() {
	if d.destroyed {
		panic("secret: use of destroyed container")
	}
}

// String implements fmt.Stringer with the fixed redaction marker.
func (d *Dynamic) String() string { return Redacted }

// Format implements fmt.Formatter so that every verb, including %#v,
// renders the redaction marker rather than the payload.
func (d *Dynamic) Format(state fmt.State, verb rune) {
	io.WriteString(state, Redacted)
}

// MarshalCBOR denies outward serialization; see [Exportable].
func (d *Dynamic) MarshalCBOR() ([]byte, error) { return nil, ErrExportDenied }

// MarshalJSON denies outward serialization; see [Exportable].
func (d *Dynamic) MarshalJSON() ([]byte, error) { return nil, ErrExportDenied }

// MarshalText denies outward serialization; see [Exportable].
func (d *Dynamic) MarshalText() ([]byte, error) { return nil, ErrExportDenied }

// MarshalBinary denies outward serialization; see [Exportable].
func (d *Dynamic) MarshalBinary() ([]byte, error) { return nil, ErrExportDenied }

// UnmarshalCBOR reconstructs the payload from a CBOR byte string.
// Import from trusted structured input is always permitted. Any
// previous payload is wiped in full before the new one is adopted.
func (d *Dynamic) UnmarshalCBOR(data []byte) error {
	d.mustLive()

	var payload []byte
	if err := codec.Unmarshal(data, &payload); err != nil {
		memzero.Zero(payload)
		return fmt.Errorf("secret: importing payload: %w", err)
	}

	if d.data != nil {
		memzero.Zero(d.data[:cap(d.data)])
	}
	// The decoder allocated payload exclusively for this call, so the
	// container can adopt it without another copy.
	if payload == nil {
		payload = []byte{}
	}
	d.data = payload
	return nil
}
