package oracle

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestHMACOracle_Deterministic(t *testing.T) {
	o, err := NewHMACFromConfig("test", map[string]any{"secret": "shared-secret"})
	if err != nil {
		t.Fatalf("NewHMACFromConfig() error = %v", err)
	}

	ctx := context.Background()
	msg := []byte("0000000101|2026-03-14|492738")

	first, err := o.GenerateMAC(ctx, msg)
	if err != nil {
		t.Fatalf("GenerateMAC() error = %v", err)
	}
	if len(first) != 32 {
		t.Errorf("GenerateMAC() returned %d bytes, want 32", len(first))
	}

	second, err := o.GenerateMAC(ctx, msg)
	if err != nil {
		t.Fatalf("GenerateMAC() error = %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("GenerateMAC() is not deterministic for identical messages")
	}

	other, err := o.GenerateMAC(ctx, []byte("0000000101|2026-03-14|492739"))
	if err != nil {
		t.Fatalf("GenerateMAC() error = %v", err)
	}
	if bytes.Equal(first, other) {
		t.Error("GenerateMAC() returned identical tags for different messages")
	}
}

func TestHMACOracle_KeyDependence(t *testing.T) {
	a, err := NewHMACFromConfig("a", map[string]any{"secret": "key-a"})
	if err != nil {
		t.Fatalf("NewHMACFromConfig() error = %v", err)
	}
	b, err := NewHMACFromConfig("b", map[string]any{"secret": "key-b"})
	if err != nil {
		t.Fatalf("NewHMACFromConfig() error = %v", err)
	}

	msg := []byte("same message")
	macA, _ := a.GenerateMAC(context.Background(), msg)
	macB, _ := b.GenerateMAC(context.Background(), msg)
	if bytes.Equal(macA, macB) {
		t.Error("different keys produced identical MACs")
	}
}

func TestHMACOracle_ConfigVariants(t *testing.T) {
	t.Run("secret_hex", func(t *testing.T) {
		hexed, err := NewHMACFromConfig("hexed", map[string]any{"secret_hex": "736861726564"})
		if err != nil {
			t.Fatalf("NewHMACFromConfig() error = %v", err)
		}
		plain, err := NewHMACFromConfig("plain", map[string]any{"secret": "shared"})
		if err != nil {
			t.Fatalf("NewHMACFromConfig() error = %v", err)
		}

		msg := []byte("message")
		macHex, _ := hexed.GenerateMAC(context.Background(), msg)
		macPlain, _ := plain.GenerateMAC(context.Background(), msg)
		if !bytes.Equal(macHex, macPlain) {
			t.Error("secret_hex and equivalent secret produced different MACs")
		}
	})

	t.Run("secret_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "secret")
		if err := os.WriteFile(path, []byte("shared\n"), 0600); err != nil {
			t.Fatalf("writing secret file: %v", err)
		}

		fromFile, err := NewHMACFromConfig("file", map[string]any{"secret_file": path})
		if err != nil {
			t.Fatalf("NewHMACFromConfig() error = %v", err)
		}
		plain, _ := NewHMACFromConfig("plain", map[string]any{"secret": "shared"})

		msg := []byte("message")
		macFile, _ := fromFile.GenerateMAC(context.Background(), msg)
		macPlain, _ := plain.GenerateMAC(context.Background(), msg)
		if !bytes.Equal(macFile, macPlain) {
			t.Error("secret_file did not strip whitespace / match plain secret")
		}
	})

	t.Run("missing secret", func(t *testing.T) {
		if _, err := NewHMACFromConfig("bad", map[string]any{}); err == nil {
			t.Error("NewHMACFromConfig() without secret should fail")
		}
	})

	t.Run("bad hex", func(t *testing.T) {
		if _, err := NewHMACFromConfig("bad", map[string]any{"secret_hex": "zz"}); err == nil {
			t.Error("NewHMACFromConfig() with invalid hex should fail")
		}
	})
}

func TestStaticOracle(t *testing.T) {
	fixture := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B}
	o := NewStatic("fixture", fixture)

	mac, err := o.GenerateMAC(context.Background(), []byte("anything"))
	if err != nil {
		t.Fatalf("GenerateMAC() error = %v", err)
	}
	if !bytes.Equal(mac, fixture) {
		t.Errorf("GenerateMAC() = %x, want %x", mac, fixture)
	}

	// callers must not be able to mutate the fixture through the result
	mac[0] = 0xFF
	again, _ := o.GenerateMAC(context.Background(), []byte("anything"))
	if again[0] != 0x00 {
		t.Error("GenerateMAC() result aliases the internal fixture")
	}
}
