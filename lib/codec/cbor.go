// Copyright 2026 The Secure Gate Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec is the structured-serialization facade for the module.
// It pins a single CBOR configuration so exported secret payloads and
// imported container state always use the same byte-level encoding.
// Consumers import this package, never fxamacker/cbor directly.
package codec

import (
	"github.com/fxamacker/cbor/v2"
)

// encMode uses Core Deterministic Encoding (RFC 8949 §4.2): sorted map
// keys, smallest integer encoding, no indefinite-length items. The
// same payload always produces identical bytes, so an exported secret
// has exactly one wire form.
var encMode cbor.EncMode

// decMode accepts standard CBOR. Unknown fields are ignored for
// forward compatibility.
var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v to CBOR using Core Deterministic Encoding.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}
