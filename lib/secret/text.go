// Copyright 2026 The Secure Gate Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"github.com/Slurp9187/secure-gate-sub000/lib/encoding"
	"github.com/Slurp9187/secure-gate-sub000/lib/memzero"
)

// DynamicFromText decodes text with the given codec and moves the
// result into a new container. The intermediate decode buffer is
// wiped by the ownership transfer; on decode failure the codec has
// already wiped any partial output before returning its error.
func DynamicFromText(c encoding.Codec, text string) (*Dynamic, error) {
	decoded, err := c.Decode(text)
	if err != nil {
		return nil, err
	}
	return NewBytes(decoded), nil
}

// FixedFromText decodes text with the given codec into a fixed-size
// container. Returns a *LengthMismatchError when the decoded payload
// has the wrong length; the decoded bytes are wiped on every path.
func FixedFromText[T ByteArray](c encoding.Codec, text string) (*Fixed[T], error) {
	decoded, err := c.Decode(text)
	if err != nil {
		return nil, err
	}
	container, err := FixedFromSlice[T](decoded)
	memzero.Zero(decoded)
	if err != nil {
		return nil, err
	}
	return container, nil
}

// ToText encodes a container's payload with the given codec. The
// encoding runs on a view borrowed through the exposure interface; no
// side copy of the payload is made beyond the returned text itself.
func ToText(c encoding.Codec, s Exposer) string {
	var encoded string
	s.WithSecret(func(view []byte) {
		encoded = c.Encode(view)
	})
	return encoded
}
