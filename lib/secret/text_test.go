// Copyright 2026 The Secure Gate Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"errors"
	"testing"

	"github.com/Slurp9187/secure-gate-sub000/lib/encoding"
)

func TestDynamicFromText_RoundTrip(t *testing.T) {
	bech, err := encoding.NewBech32("sg")
	if err != nil {
		t.Fatalf("NewBech32 failed: %v", err)
	}

	for name, codec := range map[string]encoding.Codec{
		"hex":    encoding.Hex{},
		"base64": encoding.Base64{},
		"bech32": bech,
	} {
		original := NewString("text-codec round trip")

		text := ToText(codec, original)
		restored, err := DynamicFromText(codec, text)
		if err != nil {
			t.Fatalf("%s: DynamicFromText failed: %v", name, err)
		}

		if !original.Equal(restored) {
			t.Errorf("%s: round-tripped payload mismatch", name)
		}

		original.Destroy()
		restored.Destroy()
	}
}

func TestDynamicFromText_MalformedInput(t *testing.T) {
	_, err := DynamicFromText(encoding.Hex{}, "zz-not-hex")
	if err == nil {
		t.Fatal("expected error for malformed input")
	}

	var decodeError *encoding.DecodeError
	if !errors.As(err, &decodeError) {
		t.Errorf("expected *encoding.DecodeError, got %T", err)
	}
}

func TestFixedFromText(t *testing.T) {
	source, err := NewFixedRandom[[32]byte]()
	if err != nil {
		t.Fatalf("NewFixedRandom failed: %v", err)
	}
	defer source.Destroy()

	text := ToText(encoding.Hex{}, source)

	restored, err := FixedFromText[[32]byte](encoding.Hex{}, text)
	if err != nil {
		t.Fatalf("FixedFromText failed: %v", err)
	}
	defer restored.Destroy()

	if !source.Equal(restored) {
		t.Error("round-tripped payload mismatch")
	}
}

func TestFixedFromText_LengthMismatch(t *testing.T) {
	_, err := FixedFromText[[32]byte](encoding.Hex{}, "deadbeef")

	var mismatch *LengthMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected *LengthMismatchError, got %v", err)
	}
	if mismatch.Expected != 32 || mismatch.Actual != 4 {
		t.Errorf("expected lengths 32/4, got %d/%d", mismatch.Expected, mismatch.Actual)
	}
}
