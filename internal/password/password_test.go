package password

import (
	"errors"
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash() error: %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("Hash() = %q, want argon2id encoding", hash)
	}

	if err := Verify(hash, "correct horse battery staple"); err != nil {
		t.Errorf("Verify() with correct password: %v", err)
	}

	if err := Verify(hash, "wrong"); !errors.Is(err, ErrMismatch) {
		t.Errorf("Verify() with wrong password = %v, want ErrMismatch", err)
	}
}

func TestHashIsSalted(t *testing.T) {
	a, err := Hash("same password")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Hash("same password")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("two hashes of the same password are identical; salt missing")
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"not argon2", "$2a$12$abcdefghijklmnopqrstuv"},
		{"truncated", "$argon2id$v=19$m=65536,t=1,p=4"},
		{"bad salt encoding", "$argon2id$v=19$m=65536,t=1,p=4$!!!$AAAA"},
		{"bad key encoding", "$argon2id$v=19$m=65536,t=1,p=4$AAAA$!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Verify(tt.encoded, "anything"); !errors.Is(err, ErrInvalidHash) {
				t.Errorf("Verify(%q) = %v, want ErrInvalidHash", tt.encoded, err)
			}
		})
	}
}
