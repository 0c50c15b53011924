package vars

import "testing"

func TestStrToBool(t *testing.T) {
	tests := []struct {
		str      string
		expected bool
	}{
		{"true", true},
		{"T", true},
		{"Yes", true},
		{"y", true},
		{"false", false},
		{"no", false},
		{"", false},
		{"whatever", false},
	}
	for _, test := range tests {
		if got := StrToBool(test.str); got != test.expected {
			t.Fatalf("%s: got %v", test.str, got)
		}
	}
}
