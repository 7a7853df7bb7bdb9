package binary

import (
	"bytes"
	"testing"
)

func TestSwap(t *testing.T) {
	tests := []struct {
		name     string
		elSize   int
		in       []byte
		expected []byte
	}{
		{"1-byte untouched", 1, []byte{0x01, 0x02, 0x03}, []byte{0x01, 0x02, 0x03}},
		{"2-byte", 2, []byte{0x01, 0x02, 0x03, 0x04}, []byte{0x02, 0x01, 0x04, 0x03}},
		{"4-byte", 4, []byte{0x11, 0x22, 0x33, 0x44}, []byte{0x44, 0x33, 0x22, 0x11}},
		{"4-byte pair", 4,
			[]byte{0x11, 0x22, 0x33, 0x44, 0xAA, 0xBB, 0xCC, 0xDD},
			[]byte{0x44, 0x33, 0x22, 0x11, 0xDD, 0xCC, 0xBB, 0xAA}},
		{"8-byte", 8,
			[]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
			[]byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}},
		{"empty", 4, []byte{}, []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := append([]byte(nil), tt.in...)
			Swap(buf, tt.elSize)
			if !bytes.Equal(buf, tt.expected) {
				t.Errorf("Swap(%v, %d) = %v, expected %v", tt.in, tt.elSize, buf, tt.expected)
			}
		})
	}
}

func TestSwapTwiceIsIdentity(t *testing.T) {
	orig := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02, 0x03, 0x04}
	for _, elSize := range []int{1, 2, 4, 8} {
		buf := append([]byte(nil), orig...)
		Swap(buf, elSize)
		Swap(buf, elSize)
		if !bytes.Equal(buf, orig) {
			t.Errorf("double Swap with elSize %d changed %v to %v", elSize, orig, buf)
		}
	}
}
