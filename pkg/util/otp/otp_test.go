package otp

import (
	"strings"
	"testing"
)

func TestGenerate_LengthAndCharset(t *testing.T) {
	for _, n := range []int{4, 6, 8} {
		code, err := Generate(n)
		if err != nil {
			t.Fatalf("Generate(%d) failed: %v", n, err)
		}
		if len(code) != n {
			t.Errorf("Generate(%d) returned %q (len %d)", n, code, len(code))
		}
		if strings.Trim(code, "0123456789") != "" {
			t.Errorf("Generate(%d) returned non-digit characters: %q", n, code)
		}
	}
}

func TestGenerate_RejectsZeroLength(t *testing.T) {
	if _, err := Generate(0); err == nil {
		t.Error("expected error for zero length")
	}
}

func TestGenerateHex_Length(t *testing.T) {
	tok, err := GenerateHex(24)
	if err != nil {
		t.Fatalf("GenerateHex failed: %v", err)
	}
	if len(tok) != 48 {
		t.Errorf("GenerateHex(24) returned %d chars, want 48", len(tok))
	}
}

func TestHashAndVerify(t *testing.T) {
	h := Hash("482913")
	if err := Verify(h, "482913"); err != nil {
		t.Errorf("Verify failed for matching code: %v", err)
	}
	// Whitespace from copy-paste should not break verification.
	if err := Verify(h, "  482913 "); err != nil {
		t.Errorf("Verify failed for padded code: %v", err)
	}
	if err := Verify(h, "482914"); err == nil {
		t.Error("Verify accepted a wrong code")
	}
}
