// Copyright 2026 The Secure Gate Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"bytes"
	"testing"

	"github.com/Slurp9187/secure-gate-sub000/lib/codec"
)

func TestCloneable_CloneIsIndependent(t *testing.T) {
	original := NewCloneableBytes([]byte("shared seed material"))
	defer original.Destroy()

	clone := original.Clone()
	defer clone.Destroy()

	// Mutating the clone must not touch the original.
	clone.WithSecretMut(func(view []byte) {
		for index := range view {
			view[index] = 0x00
		}
	})
	if got := original.ExposeSecretString(); got != "shared seed material" {
		t.Errorf("original changed after clone mutation: %q", got)
	}
}

func TestCloneable_OriginalDestroyLeavesCloneIntact(t *testing.T) {
	original := NewCloneableBytes([]byte("outlived"))
	clone := original.Clone()
	defer clone.Destroy()

	original.Destroy()

	if got := clone.ExposeSecretString(); got != "outlived" {
		t.Errorf("clone content lost after original Destroy: %q", got)
	}
}

func TestCloneable_CloneAfterDestroyPanics(t *testing.T) {
	original := NewCloneableString("gone")
	original.Destroy()

	defer func() {
		if recover() == nil {
			t.Error("expected panic cloning a destroyed container")
		}
	}()
	original.Clone()
}

func TestFixedCloneable_CloneIsIndependent(t *testing.T) {
	original := NewFixedCloneable([16]byte{9, 9, 9, 9})
	defer original.Destroy()

	clone := original.Clone()

	clone.WithSecretMut(func(view []byte) {
		view[0] = 0x77
	})
	if original.ExposeSecret()[0] != 9 {
		t.Error("original changed after clone mutation")
	}

	original.Destroy()
	if clone.ExposeSecret()[0] != 0x77 {
		t.Error("clone content lost after original Destroy")
	}
	clone.Destroy()
}

func TestExportable_MarshalRoundTrip(t *testing.T) {
	payload := []byte("exportable payload")
	exportable := NewExportableBytes(append([]byte(nil), payload...))
	defer exportable.Destroy()

	blob, err := codec.Marshal(exportable)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	// The wire form is the raw byte payload.
	var exported []byte
	if err := codec.Unmarshal(blob, &exported); err != nil {
		t.Fatalf("decoding exported payload: %v", err)
	}
	if !bytes.Equal(exported, payload) {
		t.Error("exported payload mismatch")
	}

	// Import back into a default (non-exportable) container.
	var imported Dynamic
	if err := codec.Unmarshal(blob, &imported); err != nil {
		t.Fatalf("import failed: %v", err)
	}
	defer imported.Destroy()

	imported.WithSecret(func(view []byte) {
		if !bytes.Equal(view, payload) {
			t.Error("imported payload mismatch")
		}
	})
}

func TestExportable_JSONStillDenied(t *testing.T) {
	exportable := NewExportableString("cbor only")
	defer exportable.Destroy()

	// The export capability is CBOR-only; the other marshalers keep
	// the default denial.
	if _, err := exportable.MarshalJSON(); err == nil {
		t.Error("expected JSON marshal to stay denied")
	}
	if _, err := exportable.MarshalText(); err == nil {
		t.Error("expected text marshal to stay denied")
	}
}

func TestFixedExportable_MarshalRoundTrip(t *testing.T) {
	var key [32]byte
	for index := range key {
		key[index] = byte(0xF0 | index&0x0F)
	}

	exportable := NewFixedExportable(key)
	defer exportable.Destroy()

	blob, err := codec.Marshal(exportable)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	imported := &Fixed[[32]byte]{}
	if err := codec.Unmarshal(blob, imported); err != nil {
		t.Fatalf("import failed: %v", err)
	}
	defer imported.Destroy()

	if *imported.ExposeSecret() != key {
		t.Error("round-tripped payload mismatch")
	}
}

func TestDefaultContainers_HaveNoCloneMethod(t *testing.T) {
	// Compile-time capability gating: the Clone method exists only on
	// the wrapper types. Interface probing must not find it on the
	// defaults.
	type cloner interface{ Clone() *Cloneable }

	var container any = NewString("unclonable")
	defer container.(*Dynamic).Destroy()

	if _, ok := container.(cloner); ok {
		t.Error("default container unexpectedly satisfies the clone capability")
	}
}
