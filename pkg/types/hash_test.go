package types

import (
	"strings"
	"testing"
)

func TestHash_String(t *testing.T) {
	var h Hash
	s := h.String()
	if s != strings.Repeat("0", 64) {
		t.Errorf("zero hash String() = %s, want all zeros", s)
	}

	h[0] = 0xab
	h[31] = 0xcd
	s = h.String()
	if !strings.HasPrefix(s, "ab") || !strings.HasSuffix(s, "cd") {
		t.Errorf("String() = %s, want ab...cd", s)
	}
}

func TestHash160_String(t *testing.T) {
	h := Hash160{0x75, 0x1e}
	if got := h.String(); !strings.HasPrefix(got, "751e") || len(got) != 2*Hash160Size {
		t.Errorf("String() = %s, want 751e... of %d chars", got, 2*Hash160Size)
	}
}

func TestHexToHash(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", strings.Repeat("ab", 32), false},
		{"too short", strings.Repeat("ab", 31), true},
		{"too long", strings.Repeat("ab", 33), true},
		{"bad hex", strings.Repeat("zz", 32), true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := HexToHash(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("HexToHash(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && h.String() != tt.input {
				t.Errorf("HexToHash(%q) = %s", tt.input, h)
			}
		})
	}
}
