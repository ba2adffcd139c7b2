// Copyright 2026 The Secure Gate Authors
// SPDX-License-Identifier: Apache-2.0

// Package secret provides single-owner containers for sensitive
// byte-bearing values such as keys, passwords, and tokens.
//
// Three container kinds cover the storage spectrum:
//
//   - [Fixed] -- a compile-time-sized payload (one of the byte-array
//     sizes in [ByteArray]), held inline with no separate payload
//     allocation.
//   - [Dynamic] -- a runtime-sized heap payload. Growth wipes the
//     abandoned backing array at the moment of the move, and Destroy
//     wipes the full allocated capacity, not just the logical length,
//     because slack capacity can still hold stale secret bytes.
//   - [LockedBuffer] -- an off-heap payload allocated with
//     mmap(MAP_ANONYMOUS), locked into physical RAM via mlock
//     (preventing swap), and excluded from core dumps via
//     madvise(MADV_DONTDUMP). The garbage collector never sees this
//     memory and cannot copy or relocate it.
//
// Payload access goes through exactly one audited surface: the
// ExposeSecret, ExposeSecretString, WithSecret, and WithSecretMut
// operations. Nothing else yields content — formatting a container
// with the fmt verbs or calling String produces the fixed [Redacted]
// marker, and the standard marshaler interfaces return
// [ErrExportDenied]. The deliberate names make every read greppable in
// an audit.
//
// Containers are single-owner: there is no sharing, no reference
// counting, and no Clone method on the default types. Duplication and
// outward serialization are opt-in capabilities carried by distinct
// wrapper types ([Cloneable], [Exportable], and their Fixed analogs);
// a container constructed without the wrapper cannot be cloned (no
// such method exists to call) and refuses to marshal. Importing a
// payload from trusted structured input (UnmarshalCBOR) is always
// permitted — construction is the safe direction.
//
// Destroy ends a payload's lifetime: the backing store is overwritten
// with zeros before release, and any later access panics. Go has no
// destructors, so Destroy must be called explicitly, typically with
// defer at the acquisition site.
//
// Containers may move between goroutines like any other single-owner
// value; they add no internal locking (except [LockedBuffer], whose
// mutex guards the destroy transition) and must not be mutated from
// two goroutines at once.
package secret
