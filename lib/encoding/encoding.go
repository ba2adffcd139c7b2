// Copyright 2026 The Secure Gate Authors
// SPDX-License-Identifier: Apache-2.0

// Package encoding provides the text codecs (hex, base64, bech32) used
// to move secret payloads across text boundaries. Encoding is total
// over any byte input; decoding fails on malformed text, and any bytes
// already produced before the failure was discovered are wiped before
// the error is returned, so no partial secret lingers on the heap.
package encoding

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/Slurp9187/secure-gate-sub000/lib/memzero"
)

// Codec encodes byte views to text and decodes text back to bytes.
// Implementations must wipe any partially-decoded output before
// returning a decode error.
type Codec interface {
	// Encode returns the text form of view. Total: every byte input
	// has an encoding.
	Encode(view []byte) string

	// Decode parses text back into bytes. Returns a *DecodeError on
	// malformed input; the error never contains decoded content.
	Decode(text string) ([]byte, error)
}

// DecodeError reports malformed text input. It wraps the underlying
// parser error and deliberately carries no decoded bytes.
type DecodeError struct {
	Codec string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("encoding: decoding %s input: %v", e.Codec, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Hex is lowercase hexadecimal, two characters per byte.
type Hex struct{}

func (Hex) Encode(view []byte) string {
	return hex.EncodeToString(view)
}

func (Hex) Decode(text string) ([]byte, error) {
	decoded, err := hex.DecodeString(text)
	if err != nil {
		// hex.DecodeString returns the bytes it managed to parse
		// before hitting the bad character.
		memzero.Zero(decoded)
		return nil, &DecodeError{Codec: "hex", Err: err}
	}
	return decoded, nil
}

// Base64 is standard base64 with padding (RFC 4648 §4).
type Base64 struct{}

func (Base64) Encode(view []byte) string {
	return base64.StdEncoding.EncodeToString(view)
}

func (Base64) Decode(text string) ([]byte, error) {
	decoded, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		memzero.Zero(decoded)
		return nil, &DecodeError{Codec: "base64", Err: err}
	}
	return decoded, nil
}

// Base64URL is unpadded URL-safe base64 (RFC 4648 §5), for payloads
// embedded in URLs or filenames.
type Base64URL struct{}

func (Base64URL) Encode(view []byte) string {
	return base64.RawURLEncoding.EncodeToString(view)
}

func (Base64URL) Decode(text string) ([]byte, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(text)
	if err != nil {
		memzero.Zero(decoded)
		return nil, &DecodeError{Codec: "base64url", Err: err}
	}
	return decoded, nil
}

// Bech32 encodes with a fixed human-readable prefix and the bech32
// checksum. The prefix is validated once at construction so Encode
// stays total.
type Bech32 struct {
	hrp string
}

// NewBech32 returns a bech32 codec with the given human-readable
// prefix. The prefix must be non-empty lowercase ASCII in the range
// bech32 permits.
func NewBech32(prefix string) (*Bech32, error) {
	if prefix == "" {
		return nil, fmt.Errorf("encoding: bech32 prefix must not be empty")
	}
	for index := 0; index < len(prefix); index++ {
		c := prefix[index]
		if c < 33 || c > 126 || (c >= 'A' && c <= 'Z') {
			return nil, fmt.Errorf("encoding: bech32 prefix contains invalid character at index %d", index)
		}
	}
	return &Bech32{hrp: prefix}, nil
}

func (c *Bech32) Encode(view []byte) string {
	// 8-to-5 bit regrouping with padding cannot fail.
	words, err := bech32.ConvertBits(view, 8, 5, true)
	if err != nil {
		panic("encoding: bech32 bit conversion failed: " + err.Error())
	}
	encoded, err := bech32.Encode(c.hrp, words)
	memzero.Zero(words)
	if err != nil {
		// The prefix was validated at construction and the words are
		// in range by construction, so Encode cannot fail here.
		panic("encoding: bech32 encoding failed: " + err.Error())
	}
	return encoded
}

func (c *Bech32) Decode(text string) ([]byte, error) {
	// DecodeNoLimit lifts the 90-character cap so arbitrarily long
	// payloads round-trip; the checksum is still verified.
	prefix, words, err := bech32.DecodeNoLimit(text)
	if err != nil {
		return nil, &DecodeError{Codec: "bech32", Err: err}
	}
	if prefix != c.hrp {
		memzero.Zero(words)
		return nil, &DecodeError{Codec: "bech32", Err: fmt.Errorf("prefix %q, want %q", prefix, c.hrp)}
	}
	decoded, err := bech32.ConvertBits(words, 5, 8, false)
	memzero.Zero(words)
	if err != nil {
		memzero.Zero(decoded)
		return nil, &DecodeError{Codec: "bech32", Err: err}
	}
	return decoded, nil
}
