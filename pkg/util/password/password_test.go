package password

import (
	"strings"
	"testing"
)

func TestHashProducesPHCFormat(t *testing.T) {
	h, err := Hash("correcthorsebatterystaple")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if !strings.HasPrefix(h, "$argon2id$v=") {
		t.Errorf("unexpected hash prefix: %s", h)
	}
	if got := len(strings.Split(h, "$")); got != 6 {
		t.Errorf("hash has %d segments, want 6", got)
	}
}

func TestHashIsSalted(t *testing.T) {
	a, err := Hash("same-password")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	b, err := Hash("same-password")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password are identical; salt is not random")
	}
}

func TestVerify(t *testing.T) {
	h, err := Hash("mysecretpassword")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	if err := Verify(h, "mysecretpassword"); err != nil {
		t.Errorf("Verify rejected the correct password: %v", err)
	}
	if err := Verify(h, "wrongpassword"); err != ErrMismatch {
		t.Errorf("Verify(wrong) = %v, want ErrMismatch", err)
	}
	if err := Verify("not-a-phc-string", "anything"); err != ErrBadHash {
		t.Errorf("Verify(garbage hash) = %v, want ErrBadHash", err)
	}
	if err := Verify("$argon2i$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA", "x"); err != ErrBadHash {
		t.Errorf("Verify(wrong variant) = %v, want ErrBadHash", err)
	}
}

func TestMatch(t *testing.T) {
	h, err := Hash("pw")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if !Match(h, "pw") {
		t.Error("Match rejected the correct password")
	}
	if Match(h, "pW") {
		t.Error("Match accepted a wrong password")
	}
}

func TestGenerate(t *testing.T) {
	pw := Generate(16)
	if len(pw) != 16 {
		t.Errorf("Generate(16) returned %d chars", len(pw))
	}
	if pw == Generate(16) {
		t.Error("two generated passwords are identical")
	}
	// Zero falls back to a usable length rather than an empty password.
	if len(Generate(0)) == 0 {
		t.Error("Generate(0) returned empty password")
	}
}
