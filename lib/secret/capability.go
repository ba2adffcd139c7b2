// Copyright 2026 The Secure Gate Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"github.com/Slurp9187/secure-gate-sub000/lib/codec"
	"github.com/Slurp9187/secure-gate-sub000/lib/memzero"
)

// Capabilities are carried by distinct wrapper types, chosen at
// construction: the Clone method exists only on [Cloneable] and
// [FixedCloneable], so cloning a default container is a compile-time
// error (there is no method to call), and only [Exportable] and
// [FixedExportable] override the export denial inherited from the
// wrapped container. Go's serializers are reflection-driven, so the
// export side cannot be rejected statically; the default containers
// instead deny it loudly at runtime with [ErrExportDenied].
//
// Removing a wrapper restores the default no-clone, no-export posture
// with no other code changes — the wrapped container is unchanged.

// Cloneable is a [Dynamic] that additionally supports deep
// duplication. Construct one only when a second independent owner of
// the payload is genuinely required.
type Cloneable struct {
	Dynamic
}

// NewCloneableBytes is [NewBytes] for a clone-capable container; it
// takes ownership of source and wipes it.
func NewCloneableBytes(source []byte) *Cloneable {
	container := &Cloneable{}
	container.data = make([]byte, len(source))
	copy(container.data, source)
	memzero.Zero(source)
	return container
}

// NewCloneableString is [NewString] for a clone-capable container.
func NewCloneableString(source string) *Cloneable {
	container := &Cloneable{}
	container.data = make([]byte, len(source))
	copy(container.data, source)
	return container
}

// Clone returns a second, fully independent container: its own
// backing array, its own wipe-on-Destroy. Mutating or destroying
// either container never affects the other. Panics after Destroy.
func (c *Cloneable) Clone() *Cloneable {
	c.mustLive()

	clone := &Cloneable{}
	clone.data = make([]byte, len(c.data))
	copy(clone.data, c.data)
	return clone
}

// Exportable is a [Dynamic] that additionally marshals its payload
// through the module's CBOR codec, as a raw byte string. Export is
// the risky direction and stays CBOR-only; the JSON/text/binary
// marshalers still deny.
type Exportable struct {
	Dynamic
}

// NewExportableBytes is [NewBytes] for an export-capable container;
// it takes ownership of source and wipes it.
func NewExportableBytes(source []byte) *Exportable {
	container := &Exportable{}
	container.data = make([]byte, len(source))
	copy(container.data, source)
	memzero.Zero(source)
	return container
}

// NewExportableString is [NewString] for an export-capable container.
func NewExportableString(source string) *Exportable {
	container := &Exportable{}
	container.data = make([]byte, len(source))
	copy(container.data, source)
	return container
}

// MarshalCBOR emits the payload as a CBOR byte string. This is the
// export capability — the single sanctioned path for a payload to
// leave the container in structured form. Panics after Destroy.
func (e *Exportable) MarshalCBOR() ([]byte, error) {
	e.mustLive()
	return codec.Marshal(e.data)
}

// FixedCloneable is a [Fixed] that additionally supports deep
// duplication.
type FixedCloneable[T ByteArray] struct {
	Fixed[T]
}

// NewFixedCloneable wraps an exact-size value in a clone-capable
// fixed container.
func NewFixedCloneable[T ByteArray](value T) *FixedCloneable[T] {
	container := &FixedCloneable[T]{}
	container.inner = value
	return container
}

// Clone returns a second, fully independent fixed container with its
// own payload copy and its own wipe-on-Destroy. Panics after Destroy.
func (c *FixedCloneable[T]) Clone() *FixedCloneable[T] {
	c.mustLive()

	clone := &FixedCloneable[T]{}
	clone.inner = c.inner
	return clone
}

// FixedExportable is a [Fixed] that additionally marshals its payload
// through the module's CBOR codec, as a raw byte string.
type FixedExportable[T ByteArray] struct {
	Fixed[T]
}

// NewFixedExportable wraps an exact-size value in an export-capable
// fixed container.
func NewFixedExportable[T ByteArray](value T) *FixedExportable[T] {
	container := &FixedExportable[T]{}
	container.inner = value
	return container
}

// MarshalCBOR emits the payload as a CBOR byte string. Panics after
// Destroy.
func (e *FixedExportable[T]) MarshalCBOR() ([]byte, error) {
	e.mustLive()
	return codec.Marshal(asBytes(&e.inner))
}
