package crypto

import (
	"errors"
	"strings"
	"testing"
)

func TestHexToBytes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLen int
		wantErr bool
	}{
		{"valid", "00ff10", 3, false},
		{"uppercase", "ABCDEF", 3, false},
		{"empty", "", 0, false},
		{"odd length", "abc", 0, true},
		{"non-hex", "zz", 0, true},
		{"whitespace", "ab cd", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := HexToBytes(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrDecode) {
					t.Fatalf("HexToBytes(%q) error = %v, want ErrDecode", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("HexToBytes(%q) error: %v", tt.input, err)
			}
			if len(b) != tt.wantLen {
				t.Errorf("HexToBytes(%q) length = %d, want %d", tt.input, len(b), tt.wantLen)
			}
		})
	}
}

func TestBytesToScalar_InvalidLength(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"too short", make([]byte, 31)},
		{"too long", make([]byte, 33)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BytesToScalar(tt.data)
			if !errors.Is(err, ErrLength) {
				t.Errorf("BytesToScalar() error = %v, want ErrLength", err)
			}
		})
	}
}

func TestBytesToScalar_CopiesInput(t *testing.T) {
	in := make([]byte, ScalarSize)
	in[31] = 0x07
	s, err := BytesToScalar(in)
	if err != nil {
		t.Fatalf("BytesToScalar() error: %v", err)
	}
	in[31] = 0x00
	if b := s.Bytes(); b[31] != 0x07 {
		t.Error("scalar should not alias the input slice")
	}
}

func TestScalarFromHex(t *testing.T) {
	s, err := ScalarFromHex(strings.Repeat("00", 31) + "2a")
	if err != nil {
		t.Fatalf("ScalarFromHex() error: %v", err)
	}
	b := s.Bytes()
	if b[31] != 0x2a || b[0] != 0x00 {
		t.Errorf("Bytes() = %x", b)
	}

	if _, err := ScalarFromHex("0g"); !errors.Is(err, ErrDecode) {
		t.Errorf("ScalarFromHex(bad hex) error = %v, want ErrDecode", err)
	}
	if _, err := ScalarFromHex("00"); !errors.Is(err, ErrLength) {
		t.Errorf("ScalarFromHex(short) error = %v, want ErrLength", err)
	}
}

func TestScalar_Swapped(t *testing.T) {
	in := make([]byte, ScalarSize)
	for i := range in {
		in[i] = byte(i)
	}
	s, err := BytesToScalar(in)
	if err != nil {
		t.Fatalf("BytesToScalar() error: %v", err)
	}

	sw := s.Swapped().Bytes()
	for i := 0; i < 16; i++ {
		if sw[i] != byte(i+16) || sw[i+16] != byte(i) {
			t.Fatalf("Swapped() = %x", sw)
		}
	}
	// Original untouched.
	if b := s.Bytes(); b[0] != 0 || b[16] != 16 {
		t.Errorf("Swapped() modified the receiver: %x", b)
	}
	// Involution.
	if s.Swapped().Swapped().Bytes() != s.Bytes() {
		t.Error("swapping twice should restore the scalar")
	}
}

func TestScalar_Zero(t *testing.T) {
	s, err := ScalarFromHex(strings.Repeat("ff", 32))
	if err != nil {
		t.Fatalf("ScalarFromHex() error: %v", err)
	}
	if s.IsZero() {
		t.Fatal("fresh scalar reported as zero")
	}
	s.Zero()
	if !s.IsZero() {
		t.Errorf("Zero() left %x", s.Bytes())
	}

	var nilScalar *Scalar
	nilScalar.Zero()
}
