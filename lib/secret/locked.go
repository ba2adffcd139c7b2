// Copyright 2026 The Secure Gate Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/Slurp9187/secure-gate-sub000/lib/codec"
	"github.com/Slurp9187/secure-gate-sub000/lib/memzero"
)

// LockedBuffer holds a secret in memory allocated outside the Go heap
// via mmap(MAP_ANONYMOUS). The region is locked into physical RAM via
// mlock (preventing swap) and excluded from core dumps via
// madvise(MADV_DONTDUMP). Because the garbage collector never sees
// the region, it cannot copy or relocate the payload behind the
// container's back — use this kind for long-lived key material.
//
// Destroy zeroes, unlocks, and unmaps the region. After Destroy, any
// payload access panics. The mutex guards the destroy transition so a
// concurrent Destroy cannot unmap memory under a reader.
type LockedBuffer struct {
	mu        sync.Mutex
	data      []byte
	length    int
	destroyed bool
}

// NewLocked allocates a zero-filled locked buffer of the given size.
// The caller must call Destroy when the secret is no longer needed.
func NewLocked(size int) (*LockedBuffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("secret: locked buffer size must be positive, got %d", size)
	}

	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("secret: mmap failed: %w", err)
	}

	if err := unix.Mlock(data); err != nil {
		unix.Munmap(data)
		return nil, fmt.Errorf("secret: mlock failed: %w", err)
	}

	if err := unix.Madvise(data, unix.MADV_DONTDUMP); err != nil {
		unix.Munlock(data)
		unix.Munmap(data)
		return nil, fmt.Errorf("secret: madvise(MADV_DONTDUMP) failed: %w", err)
	}

	return &LockedBuffer{
		data:   data,
		length: size,
	}, nil
}

// NewLockedFromBytes moves source into a locked buffer: the bytes are
// copied into the protected region and source is wiped, so the
// caller's slice no longer holds the secret.
func NewLockedFromBytes(source []byte) (*LockedBuffer, error) {
	if len(source) == 0 {
		return nil, fmt.Errorf("secret: cannot create locked buffer from empty source")
	}

	buffer, err := NewLocked(len(source))
	if err != nil {
		return nil, err
	}

	copy(buffer.data, source)
	memzero.Zero(source)
	return buffer, nil
}

// NewLockedRandom allocates a locked buffer of exactly size bytes of
// cryptographically secure random content. On entropy failure the
// region is released and no container is returned.
func NewLockedRandom(size int) (*LockedBuffer, error) {
	buffer, err := NewLocked(size)
	if err != nil {
		return nil, err
	}
	if _, err := rand.Read(buffer.data); err != nil {
		buffer.Destroy()
		return nil, fmt.Errorf("%w: %v", ErrEntropyFailure, err)
	}
	return buffer, nil
}

// ExposeSecret returns a direct view into the locked region. Do not
// hold the slice beyond the buffer's lifetime; prefer WithSecret.
// Panics after Destroy.
func (b *LockedBuffer) ExposeSecret() []byte {
	return b.acquireView()
}

// WithSecret passes a read view of the payload to fn. The view is
// borrowed for the duration of the call and must not be retained.
// The lock is not held while fn runs (so nested exposure, such as
// comparing a buffer against itself, cannot deadlock); do not destroy
// the buffer concurrently with an exposure. Panics after Destroy.
func (b *LockedBuffer) WithSecret(fn func(view []byte)) {
	fn(b.acquireView())
}

// WithSecretMut passes a writable view of the payload to fn, for
// in-place mutation. Same borrowing rules as WithSecret.
func (b *LockedBuffer) WithSecretMut(fn func(view []byte)) {
	fn(b.acquireView())
}

// acquireView checks liveness and snapshots the payload view under
// the lock.
func (b *LockedBuffer) acquireView() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.mustLive()
	return b.data[:b.length]
}

// Len returns the payload size without exposing content.
func (b *LockedBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.length
}

// Destroy zeroes the region, unlocks it, and unmaps it. Any later
// payload access panics. Idempotent.
func (b *LockedBuffer) Destroy() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.destroyed {
		return nil
	}
	b.destroyed = true

	memzero.Zero(b.data)

	// Unlock and unmap failures are surfaced but the buffer is
	// considered destroyed regardless — the region is zeroed and the
	// mapping is released when the process exits at the latest.
	var firstError error
	if err := unix.Munlock(b.data); err != nil && firstError == nil {
		firstError = fmt.Errorf("secret: munlock failed: %w", err)
	}
	if err := unix.Munmap(b.data); err != nil && firstError == nil {
		firstError = fmt.Errorf("secret: munmap failed: %w", err)
	}

	b.data = nil
	return firstError
}

func (b *LockedBuffer) mustLive() {
	if b.destroyed {
		panic("secret: use of destroyed container")
	}
}

// String implements fmt.Stringer with the fixed redaction marker.
func (b *LockedBuffer) String() string { return Redacted }

// Format implements fmt.Formatter so that every verb, including %#v,
// renders the redaction marker rather than the payload.
func (b *LockedBuffer) Format(state fmt.State, verb rune) {
	io.WriteString(state, Redacted)
}

// MarshalCBOR denies outward serialization. Locked buffers have no
// exportable wrapper: material worth locking out of swap is material
// that should not cross a serialization boundary.
func (b *LockedBuffer) MarshalCBOR() ([]byte, error) { return nil, ErrExportDenied }

// MarshalJSON denies outward serialization.
func (b *LockedBuffer) MarshalJSON() ([]byte, error) { return nil, ErrExportDenied }

// MarshalText denies outward serialization.
func (b *LockedBuffer) MarshalText() ([]byte, error) { return nil, ErrExportDenied }

// MarshalBinary denies outward serialization.
func (b *LockedBuffer) MarshalBinary() ([]byte, error) { return nil, ErrExportDenied }

// UnmarshalCBOR reconstructs the payload from a CBOR byte string into
// a fresh locked region. Import from trusted structured input is
// always permitted, with one exception: an empty payload is rejected,
// because a locked buffer always owns at least one mapped page and an
// empty one has nothing to protect (use [Dynamic] for payloads that
// may be empty). Any previous region is zeroed and released; the
// intermediate decode buffer is wiped by the ownership transfer.
func (b *LockedBuffer) UnmarshalCBOR(data []byte) error {
	var payload []byte
	if err := codec.Unmarshal(data, &payload); err != nil {
		memzero.Zero(payload)
		return fmt.Errorf("secret: importing locked payload: %w", err)
	}
	if len(payload) == 0 {
		return fmt.Errorf("secret: cannot import empty payload into locked buffer")
	}

	// NewLockedFromBytes wipes payload after copying it in.
	replacement, err := NewLockedFromBytes(payload)
	if err != nil {
		memzero.Zero(payload)
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.mustLive()

	if b.data != nil {
		memzero.Zero(b.data)
		unix.Munlock(b.data)
		unix.Munmap(b.data)
	}

	// Adopt the replacement's mapping; the replacement wrapper itself
	// is discarded without Destroy since ownership moved here.
	b.data = replacement.data
	b.length = replacement.length
	return nil
}
