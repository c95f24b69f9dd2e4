package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidRUT(t *testing.T) {
	valid := []string{"12345678-5", "12.345.678-5", "11111111-1", "10000013-K", "10000013-k", "10000004-0"}
	invalid := []string{"", "12345678", "12345678-", "12345678-4", "11111111-2", "abcdefgh-1", "12.345.678-K"}
	for _, rut := range valid {
		if !IsValidRUT(rut) {
			t.Errorf("IsValidRUT(%q) = false, want true", rut)
		}
	}
	for _, rut := range invalid {
		if IsValidRUT(rut) {
			t.Errorf("IsValidRUT(%q) = true, want false", rut)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	if !IsNumeric("2025") || IsNumeric("20a5") || IsNumeric("") {
		t.Error("IsNumeric mismatch")
	}
}

func TestIsValidDate(t *testing.T) {
	if !IsValidDate("2025-09-18") {
		t.Error("expected 2025-09-18 to be valid")
	}
	for _, s := range []string{"2025-13-01", "18-09-2025", "2025-09-31", ""} {
		if IsValidDate(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestIsValidYear(t *testing.T) {
	if !IsValidYear("2025") || IsValidYear("1800") || IsValidYear("year") {
		t.Error("IsValidYear mismatch")
	}
}
