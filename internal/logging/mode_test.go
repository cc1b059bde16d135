package logging

import "testing"

func TestModeFromArgs(t *testing.T) {
	cases := []struct {
		args []string
		want Mode
	}{
		{[]string{"scour"}, ModeDashboard},
		{[]string{"scour", "--workspace", "orders"}, ModeDashboard},
		{[]string{"scour", "layouts", "list"}, ModeCLI},
		{[]string{"scour", "init"}, ModeCLI},
		{[]string{"scour", "config", "edit"}, ModeCLI},
		{[]string{"scour", "version"}, ModeCLI},
		{[]string{"scour", ""}, ModeDashboard},
	}
	for _, c := range cases {
		if got := ModeFromArgs(c.args); got != c.want {
			t.Fatalf("ModeFromArgs(%v) = %v, want %v", c.args, got, c.want)
		}
	}
}

func TestModeString(t *testing.T) {
	if ModeCLI.String() != "cli" {
		t.Fatalf("ModeCLI.String() = %q", ModeCLI.String())
	}
	if ModeDashboard.String() != "dashboard" {
		t.Fatalf("ModeDashboard.String() = %q", ModeDashboard.String())
	}
}
