// Copyright 2026 The Secure Gate Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"testing"
)

func TestMarshal_Deterministic(t *testing.T) {
	payload := map[string]any{
		"beta":  2,
		"alpha": 1,
	}

	first, err := Marshal(payload)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	second, err := Marshal(payload)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("same payload produced different encodings")
	}
}

func TestRoundTrip_ByteString(t *testing.T) {
	payload := []byte{0x00, 0x01, 0xFE, 0xFF}

	encoded, err := Marshal(payload)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded []byte
	if err := Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if !bytes.Equal(decoded, payload) {
		t.Errorf("round trip mismatch: got %v, want %v", decoded, payload)
	}
}

func TestUnmarshal_Malformed(t *testing.T) {
	var decoded []byte
	if err := Unmarshal([]byte{0xFF, 0xFF, 0xFF}, &decoded); err == nil {
		t.Fatal("expected error for malformed CBOR")
	}
}
