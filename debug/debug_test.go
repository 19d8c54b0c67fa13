package debug

import "testing"

func TestBoolEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"nope", false},
	}
	for _, tt := range tests {
		t.Setenv("TREESPAN_DEBUG_TEST", tt.val)
		if got := boolEnv("TREESPAN_DEBUG_TEST"); got != tt.want {
			t.Errorf("boolEnv(%q) = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestSwitchesDefaultOff(t *testing.T) {
	if Parse() || Resolve() || Sniff() {
		t.Errorf("switches on without environment: parse=%v resolve=%v sniff=%v",
			Parse(), Resolve(), Sniff())
	}
}
