package version

import (
	"strings"
	"testing"
)

func TestCompare(t *testing.T) {
	cmp, err := Compare("0.4.0", "0.5.0")
	if err != nil {
		t.Fatalf("Compare error: %v", err)
	}
	if cmp >= 0 {
		t.Fatalf("expected 0.4.0 < 0.5.0")
	}

	cmp, err = Compare("v0.5.0", "0.5.0")
	if err != nil {
		t.Fatalf("Compare error: %v", err)
	}
	if cmp != 0 {
		t.Fatalf("expected versions equal")
	}

	if _, err := Compare("not-a-version", "0.5.0"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestIsDevelopment(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"dev", true},
		{"unknown", true},
		{"1.0.0-dirty", true},
		{"v0.1.0-0.20251231235959-06c807842604", true},
		{"0.4.2", false},
	}
	for _, c := range cases {
		if got := IsDevelopment(c.value); got != c.want {
			t.Fatalf("IsDevelopment(%q) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestCheckService(t *testing.T) {
	if err := CheckService("0.4.0"); err != nil {
		t.Fatalf("CheckService(0.4.0) error: %v", err)
	}
	if err := CheckService("v1.2.0"); err != nil {
		t.Fatalf("CheckService(v1.2.0) error: %v", err)
	}

	err := CheckService("0.3.9")
	if err == nil {
		t.Fatalf("expected incompatibility error")
	}
	if !strings.Contains(err.Error(), MinServiceVersion) {
		t.Fatalf("error %q should name the minimum version", err)
	}

	if err := CheckService("garbage"); err == nil {
		t.Fatalf("expected parse error")
	}
}
