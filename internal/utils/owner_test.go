package utils

import "testing"

func TestOwnerKeyStable(t *testing.T) {
	a := OwnerKey("Ana", "EPC X")
	b := OwnerKey("  ANA ", "epc x")
	if a != b {
		t.Fatalf("owner key should be insensitive to case and spacing: %q != %q", a, b)
	}
}

func TestOwnerKeyScopesBySchool(t *testing.T) {
	a := OwnerKey("Ana", "EPC X")
	b := OwnerKey("Ana", "EPC Y")
	if a == b {
		t.Fatalf("different schools must give different owner keys")
	}
}

func TestOwnerKeyScopesByTeacher(t *testing.T) {
	a := OwnerKey("Ana", "EPC X")
	b := OwnerKey("Berta", "EPC X")
	if a == b {
		t.Fatalf("different teachers must give different owner keys")
	}
}
