package crypto

import (
	"strings"
	"testing"
)

func TestArgon2_Hash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "success", password: "testPassword123", wantErr: false},
		{name: "empty password", password: "", wantErr: false},
		{name: "long password", password: strings.Repeat("a", 128), wantErr: false},
		{name: "unicode", password: "пароль🔐", wantErr: false},
		{name: "special chars", password: "p@ssw0rd!#$%", wantErr: false},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			a := NewArgon2()

			// Act
			hash, err := a.Hash(test.password)

			// Assert
			if (err != nil) != test.wantErr {
				t.Fatalf("Hash() error = %v, wantErr %v", err, test.wantErr)
			}
			if !test.wantErr {
				if hash == "" {
					t.Error("Hash() returned empty hash")
				}
				if !strings.HasPrefix(hash, "$argon2id$") {
					t.Error("Hash() should start with $argon2id$")
				}
				if len(strings.Split(hash, "$")) != 6 {
					t.Error("Hash() should have 6 parts")
				}
			}
		})
	}
}

func TestArgon2_Verify(t *testing.T) {
	a := NewArgon2()
	hash, err := a.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
		wantErr  bool
	}{
		{name: "correct password", password: "correct horse battery staple", hash: hash, want: true},
		{name: "wrong password", password: "Tr0ub4dor&3", hash: hash, want: false},
		{name: "garbage hash", password: "anything", hash: "not-a-hash", wantErr: true},
		{name: "wrong algorithm", password: "anything", hash: "$argon2i$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA", wantErr: true},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			got, err := a.Verify(test.password, test.hash)
			if (err != nil) != test.wantErr {
				t.Fatalf("Verify() error = %v, wantErr %v", err, test.wantErr)
			}
			if got != test.want {
				t.Errorf("Verify() = %v, want %v", got, test.want)
			}
		})
	}
}

func TestArgon2_HashIsSalted(t *testing.T) {
	a := NewArgon2()

	first, err := a.Hash("same password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	second, err := a.Hash("same password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if first == second {
		t.Error("two hashes of the same password should differ (random salt)")
	}
}
