package core

import "testing"

func TestColorByName(t *testing.T) {
	tests := []struct {
		name     string
		expected Color
	}{
		{"red", ColorRed},
		{"Blue", ColorBlue},
		{" black ", ColorBlack},
		{"aqua", ColorCyan},
		{"grey", ColorGray},
		{"rebeccapurple", ColorDefault},
		{"", ColorDefault},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ColorByName(tc.name); got != tc.expected {
				t.Errorf("ColorByName(%q) = %v, expected %v", tc.name, got, tc.expected)
			}
		})
	}
}
