// Copyright 2026 The Secure Gate Authors
// SPDX-License-Identifier: Apache-2.0

package cteq

import (
	"crypto/rand"
	"crypto/subtle"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"

	"github.com/Slurp9187/secure-gate-sub000/lib/memzero"
)

// DefaultThreshold is the input length, in bytes, at which [EqAuto]
// switches from direct comparison to keyed-hash comparison. At 32
// bytes and below, the per-byte cost of a direct scan is cheaper than
// the fixed setup cost of hashing; above it, hashing collapses the
// timing-sensitive compare to a fixed 32-byte scan.
const DefaultThreshold = 32

// processKey keys EqHash's BLAKE3 digests. Drawn once per process so
// digest tables precomputed before process start are worthless.
var processKey [32]byte

func init() {
	if _, err := rand.Read(processKey[:]); err != nil {
		// A guessable comparison key silently weakens every EqHash
		// call in the process. Refuse to start instead.
		panic("cteq: drawing process hash key from OS entropy: " + err.Error())
	}
}

// Eq reports whether a and b hold identical bytes, in time that
// depends only on the longer of the two lengths — never on where the
// inputs first differ, and never on an early length short-circuit.
//
// Inputs of different lengths are supported: positions beyond a
// slice's end read a fixed sentinel, the full scan always runs to
// max(len(a), len(b)), and the length difference is folded into the
// same branch-free accumulator as the content difference.
func Eq(a, b []byte) bool {
	scanLength := len(a)
	if len(b) > scanLength {
		scanLength = len(b)
	}

	var diff byte
	for index := 0; index < scanLength; index++ {
		// Out-of-range positions contribute the sentinel value 0.
		// The bounds checks branch on the (public) lengths only,
		// never on byte values.
		var byteA, byteB byte
		if index < len(a) {
			byteA = a[index]
		}
		if index < len(b) {
			byteB = b[index]
		}
		diff |= byteA ^ byteB
	}

	// Equal-length tails of sentinel-matching bytes must not mask a
	// length mismatch, so fold len(a) XOR len(b) into the accumulator
	// byte by byte.
	lengthDiff := uint64(len(a)) ^ uint64(len(b))
	for shift := 0; shift < 64; shift += 8 {
		diff |= byte(lengthDiff >> shift)
	}

	return subtle.ConstantTimeByteEq(diff, 0) == 1
}

// EqHash reports whether a and b hold identical bytes by comparing
// their keyed BLAKE3 digests with [Eq]. Total cost is one O(len) hash
// pass per input plus a fixed 32-byte compare; the hash pass may
// correlate with input length, which this package treats as public.
//
// Equality is probabilistic: two distinct inputs collide with
// probability about 2^-128. That risk is accepted by design.
func EqHash(a, b []byte) bool {
	digestA := keyedDigest(a)
	digestB := keyedDigest(b)
	equal := Eq(digestA[:], digestB[:])

	// Digests of secrets are themselves sensitive (they admit offline
	// guessing if the key ever leaks). Wipe before returning.
	memzero.Zero(digestA[:])
	memzero.Zero(digestB[:])

	return equal
}

// EqHashDeterministic is EqHash with an unkeyed BLAKE2b-256 digest
// instead of the keyed per-process BLAKE3 digest. Digests are stable
// across processes, which makes this variant weaker: an attacker can
// precompute digests of candidate secrets ahead of time. Prefer
// [EqHash] unless cross-process digest stability is required.
func EqHashDeterministic(a, b []byte) bool {
	digestA := blake2b.Sum256(a)
	digestB := blake2b.Sum256(b)
	equal := Eq(digestA[:], digestB[:])

	memzero.Zero(digestA[:])
	memzero.Zero(digestB[:])

	return equal
}

// EqAuto compares a and b with [EqAutoThreshold] at
// [DefaultThreshold].
func EqAuto(a, b []byte) bool {
	return EqAutoThreshold(a, b, DefaultThreshold)
}

// EqAutoThreshold compares a and b, choosing the strategy by length:
// if max(len(a), len(b)) <= threshold the inputs go through [Eq],
// otherwise through [EqHash]. A threshold of 0 forces every non-empty
// input through the hash path; two empty inputs still take the direct
// path (max length 0 is never above any threshold), which returns the
// same result without the hashing cost.
//
// The branch on length is deliberate and is not treated as a timing
// leak: this package assumes the length of a secret is public (see
// the package documentation). Both paths return a plain boolean with
// no other observable difference.
func EqAutoThreshold(a, b []byte, threshold int) bool {
	maxLength := len(a)
	if len(b) > maxLength {
		maxLength = len(b)
	}

	if maxLength <= threshold {
		return Eq(a, b)
	}
	return EqHash(a, b)
}

// keyedDigest computes the keyed BLAKE3 digest of view under the
// per-process key. BLAKE3 has no secret-dependent branches or table
// lookups, which is what qualifies it for use here.
func keyedDigest(view []byte) [32]byte {
	hasher, err := blake3.NewKeyed(processKey[:])
	if err != nil {
		// NewKeyed fails only for a key length other than 32 bytes,
		// which the processKey type rules out.
		panic("cteq: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(view)

	// Sum into the caller-wiped array directly; Sum(nil) would
	// allocate an intermediate copy of the digest that nothing wipes.
	var digest [32]byte
	hasher.Sum(digest[:0])
	return digest
}
