// Copyright 2026 The Secure Gate Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"errors"
	"fmt"

	"github.com/Slurp9187/secure-gate-sub000/lib/cteq"
)

// Redacted is what every container renders as under the fmt verbs and
// String. A fixed marker, independent of the payload, so diagnostics
// can never leak content.
const Redacted = "[REDACTED]"

// ErrExportDenied is returned by the marshaler methods of containers
// that do not carry the export capability. Wrap the payload in
// [Exportable] (or [FixedExportable]) if marshaling is genuinely
// intended.
var ErrExportDenied = errors.New("secret: container does not permit export")

// ErrEntropyFailure wraps failures of the operating system's
// cryptographic random source. Construction that hits it returns no
// container at all — a secret is never silently zero-filled.
var ErrEntropyFailure = errors.New("secret: entropy source failed")

// LengthMismatchError reports a fixed-size construction from a view of
// the wrong length. It carries the lengths only, never content.
type LengthMismatchError struct {
	Expected int
	Actual   int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("secret: length mismatch: expected %d bytes, got %d", e.Expected, e.Actual)
}

// Exposer is the read-side exposure contract shared by all container
// kinds. The view passed to f is borrowed for the duration of the
// call only and must not be retained or returned.
type Exposer interface {
	WithSecret(f func(view []byte))
	Len() int
}

// Equal reports whether two containers hold identical payloads,
// using the hybrid constant-time comparator (cteq.EqAuto): direct
// branch-free comparison for short payloads, keyed-hash comparison
// for long ones. Works across container kinds.
func Equal(a, b Exposer) bool {
	var equal bool
	a.WithSecret(func(viewA []byte) {
		b.WithSecret(func(viewB []byte) {
			equal = cteq.EqAuto(viewA, viewB)
		})
	})
	return equal
}

// noCopy makes `go vet` flag by-value copies of a container
// (copylocks). Copying would duplicate the payload outside the
// container's wipe discipline.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
