// Copyright 2026 The Secure Gate Authors
// SPDX-License-Identifier: Apache-2.0

// Package cteq compares secret byte views without leaking their
// contents through timing.
//
// Three comparators are provided:
//
//   - [Eq] -- direct constant-time comparison. Scans every position up
//     to the longer length with a single branch-free accumulator; cost
//     is O(max(len(a), len(b))) regardless of where the inputs differ.
//   - [EqHash] -- keyed-hash comparison. Digests both inputs with
//     BLAKE3 under a per-process random key, then compares the two
//     32-byte digests with [Eq]. Equality becomes probabilistic: the
//     false-positive probability is about 2^-128, which is accepted by
//     design, not a defect.
//   - [EqAuto] -- hybrid. Short inputs (at most [DefaultThreshold]
//     bytes) go through [Eq]; longer inputs through [EqHash], whose
//     compare step costs the same 32-byte scan no matter how large the
//     inputs are.
//
// The hybrid selector branches on input length. This package treats
// length as public: callers that must also hide the length of their
// secrets should use [EqHash] directly, which hashes both inputs
// unconditionally. This is a documented policy assumption, not an
// oversight.
//
// EqHash's per-process key defeats precomputed multi-target attacks: a
// digest table built before the process started is useless against a
// key drawn at process start. [EqHashDeterministic] is the explicit
// unkeyed fallback (BLAKE2b-256) for callers that need digests to be
// stable across processes; it is weaker against precomputation and its
// doc comment says so.
//
// No comparator allocates a plaintext copy of either input, and none
// of them can fail: every call terminates with a boolean. The only
// fatal condition is at package initialization, when the process key
// cannot be drawn from the operating system's entropy source — the
// package panics rather than degrade to a guessable key.
package cteq
