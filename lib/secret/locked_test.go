// Copyright 2026 The Secure Gate Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"bytes"
	"testing"

	"github.com/Slurp9187/secure-gate-sub000/lib/codec"
)

func TestNewLocked(t *testing.T) {
	buffer, err := NewLocked(64)
	if err != nil {
		t.Fatalf("NewLocked(64) failed: %v", err)
	}
	defer buffer.Destroy()

	if buffer.Len() != 64 {
		t.Errorf("expected length 64, got %d", buffer.Len())
	}

	// mmap memory arrives zero-initialized.
	buffer.WithSecret(func(view []byte) {
		for index, value := range view {
			if value != 0 {
				t.Fatalf("expected zero at index %d, got %d", index, value)
			}
		}
	})
}

func TestNewLocked_InvalidSize(t *testing.T) {
	if _, err := NewLocked(0); err == nil {
		t.Fatal("expected error for zero size")
	}
	if _, err := NewLocked(-1); err == nil {
		t.Fatal("expected error for negative size")
	}
}

func TestNewLockedFromBytes(t *testing.T) {
	source := []byte("machine-key-material")
	original := string(source)

	buffer, err := NewLockedFromBytes(source)
	if err != nil {
		t.Fatalf("NewLockedFromBytes failed: %v", err)
	}
	defer buffer.Destroy()

	if !bytes.Equal(buffer.ExposeSecret(), []byte(original)) {
		t.Error("payload does not match the source")
	}

	// The source slice must no longer hold the secret.
	for index, value := range source {
		if value != 0 {
			t.Fatalf("source byte %d was not wiped: got %#x", index, value)
		}
	}
}

func TestNewLockedFromBytes_Empty(t *testing.T) {
	if _, err := NewLockedFromBytes(nil); err == nil {
		t.Fatal("expected error for empty source")
	}
}

func TestNewLockedRandom(t *testing.T) {
	buffer, err := NewLockedRandom(32)
	if err != nil {
		t.Fatalf("NewLockedRandom failed: %v", err)
	}
	defer buffer.Destroy()

	if bytes.Equal(buffer.ExposeSecret(), make([]byte, 32)) {
		t.Error("random payload is all zeros")
	}
}

func TestLockedBuffer_WithSecretMut(t *testing.T) {
	buffer, err := NewLocked(16)
	if err != nil {
		t.Fatalf("NewLocked failed: %v", err)
	}
	defer buffer.Destroy()

	buffer.WithSecretMut(func(view []byte) {
		copy(view, "locked secrets!")
	})

	if got := string(buffer.ExposeSecret()); got != "locked secrets!\x00" {
		t.Errorf("unexpected content: %q", got)
	}
}

func TestLockedBuffer_Destroy_Idempotent(t *testing.T) {
	buffer, err := NewLocked(16)
	if err != nil {
		t.Fatalf("NewLocked failed: %v", err)
	}

	if err := buffer.Destroy(); err != nil {
		t.Fatalf("Destroy failed: %v", err)
	}
	if err := buffer.Destroy(); err != nil {
		t.Fatalf("second Destroy failed: %v", err)
	}
	if buffer.data != nil {
		t.Error("expected nil backing after Destroy")
	}
}

func TestLockedBuffer_AccessAfterDestroyPanics(t *testing.T) {
	buffer, err := NewLocked(16)
	if err != nil {
		t.Fatalf("NewLocked failed: %v", err)
	}
	buffer.Destroy()

	defer func() {
		if recover() == nil {
			t.Error("expected panic on access after Destroy")
		}
	}()
	buffer.ExposeSecret()
}

func TestLockedBuffer_Redaction(t *testing.T) {
	buffer, err := NewLockedFromBytes([]byte("do not print"))
	if err != nil {
		t.Fatalf("NewLockedFromBytes failed: %v", err)
	}
	defer buffer.Destroy()

	if buffer.String() != Redacted {
		t.Errorf("expected %q, got %q", Redacted, buffer.String())
	}
	if _, err := buffer.MarshalCBOR(); err == nil {
		t.Error("expected export denial")
	}
}

func TestLockedBuffer_Import(t *testing.T) {
	payload := []byte("relocked payload")
	blob, err := codec.Marshal(payload)
	if err != nil {
		t.Fatalf("encoding payload: %v", err)
	}

	var buffer LockedBuffer
	if err := codec.Unmarshal(blob, &buffer); err != nil {
		t.Fatalf("import failed: %v", err)
	}
	defer buffer.Destroy()

	if !bytes.Equal(buffer.ExposeSecret(), payload) {
		t.Error("imported payload mismatch")
	}
}

func TestLockedBuffer_Import_EmptyPayload(t *testing.T) {
	blob, err := codec.Marshal([]byte{})
	if err != nil {
		t.Fatalf("encoding payload: %v", err)
	}

	var buffer LockedBuffer
	if err := codec.Unmarshal(blob, &buffer); err == nil {
		t.Fatal("expected error importing an empty payload")
	}
}
