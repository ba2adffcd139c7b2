// Copyright 2026 The Secure Gate Authors
// SPDX-License-Identifier: Apache-2.0

// Package memzero overwrites byte regions that held sensitive data.
//
// The Go compiler is allowed to remove stores to memory it can prove
// is never read again, which is exactly the situation a wipe before
// release creates. Both wipe functions end with a runtime.KeepAlive
// barrier so the stores cannot be treated as dead.
package memzero

import (
	"crypto/subtle"
	"runtime"
	"unsafe"
)

// ByteArray enumerates the fixed array shapes [ZeroArray] can wipe:
// plain byte arrays at the symmetric-key sizes in practical use. The
// underlying-type terms admit named key types, e.g.
// `type ChaChaKey [32]byte`.
type ByteArray interface {
	~[16]byte | ~[24]byte | ~[32]byte | ~[48]byte | ~[64]byte
}

// Zero overwrites b with zero bytes. Safe to call with an empty or
// nil slice.
func Zero(b []byte) {
	for index := range b {
		b[index] = 0
	}
	runtime.KeepAlive(b)
}

// ZeroArray overwrites a fixed-size stack array with zero bytes.
// Sound because ByteArray admits only plain byte-array underlying
// types, so the pointed-to memory is exactly Sizeof(*p) contiguous
// bytes.
func ZeroArray[T ByteArray](p *T) {
	Zero(unsafe.Slice((*byte)(unsafe.Pointer(p)), int(unsafe.Sizeof(*p))))
}

// ZeroCopy overwrites b with zero bytes using a data-independent
// store pattern (subtle.ConstantTimeCopy). Use this when the wipe
// itself runs adjacent to timing-sensitive code and a uniform memory
// access pattern is wanted; Zero is otherwise equivalent.
func ZeroCopy(b []byte) {
	if len(b) == 0 {
		return
	}
	zeros := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zeros)
	runtime.KeepAlive(b)
}
