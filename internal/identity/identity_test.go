package identity

import "testing"

func TestIsCLICommandToken(t *testing.T) {
	cases := map[string]bool{
		"scour":  true,
		"SCOUR":  true,
		" scour": true,
		"sc":     true,
		"":       false,
		"other":  false,
	}
	for token, want := range cases {
		if got := IsCLICommandToken(token); got != want {
			t.Fatalf("IsCLICommandToken(%q) = %v, want %v", token, got, want)
		}
	}
}
