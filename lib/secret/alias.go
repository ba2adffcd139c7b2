// Copyright 2026 The Secure Gate Authors
// SPDX-License-Identifier: Apache-2.0

package secret

// Aliases for the fixed containers at each supported payload size.
// Naming sugar only — no semantics beyond the instantiated type.
type (
	Key128 = Fixed[[16]byte]
	Key192 = Fixed[[24]byte]
	Key256 = Fixed[[32]byte]
	Key384 = Fixed[[48]byte]
	Key512 = Fixed[[64]byte]
)
