package pdb

import (
	"testing"
)

func TestDecodeStringShortASCIIRoundTrip(t *testing.T) {
	cases := []string{"", "a", "kick.wav", "PIONEER/USBANLZ/P001"}
	for _, s := range cases {
		encoded, ok := encodeShortASCIIString(s)
		if !ok {
			t.Fatalf("encodeShortASCIIString(%q): want ok", s)
		}
		got, n, err := decodeString(encoded, 0)
		if err != nil {
			t.Fatalf("decodeString(%q): %v", s, err)
		}
		if got != s {
			t.Errorf("decodeString(%q) = %q", s, got)
		}
		if n != len(encoded) {
			t.Errorf("decodeString(%q) consumed %d, want %d", s, n, len(encoded))
		}
	}
}

func TestDecodeStringLongUTF16(t *testing.T) {
	// header byte: bit0 unset, UTF-16 flag (bit4) set.
	m := byte(strFlagUTF16)
	payload := []byte{'h', 0, 'i', 0} // "hi" as little-endian UTF-16 code units
	lenField := uint16(4 + len(payload))
	buf := []byte{m, byte(lenField), byte(lenField >> 8), 0} // 4-byte prefix: header, u16 length, pad
	buf = append(buf, payload...)

	got, n, err := decodeString(buf, 0)
	if err != nil {
		t.Fatalf("decodeString: %v", err)
	}
	if got != "hi" {
		t.Errorf("decodeString = %q, want %q", got, "hi")
	}
	if n != len(buf) {
		t.Errorf("decodeString consumed %d, want %d", n, len(buf))
	}
}

func TestDecodeStringLongUTF8(t *testing.T) {
	m := byte(strFlagUTF8)
	payload := []byte("Aphex Twin")
	lenField := uint16(4 + len(payload))
	buf := []byte{m, byte(lenField), byte(lenField >> 8), 0}
	buf = append(buf, payload...)

	got, _, err := decodeString(buf, 0)
	if err != nil {
		t.Fatalf("decodeString: %v", err)
	}
	if got != "Aphex Twin" {
		t.Errorf("decodeString = %q, want %q", got, "Aphex Twin")
	}
}

func TestDecodeStringEmptyAtOffsetZero(t *testing.T) {
	// A header byte whose length field is 0 must yield an empty string, not
	// an error, per the "offset 0 means unset" boundary behavior used by
	// track string slots.
	buf := []byte{0, 0, 0}
	got, _, err := decodeString(buf, 0)
	if err != nil {
		t.Fatalf("decodeString: %v", err)
	}
	if got != "" {
		t.Errorf("decodeString = %q, want empty", got)
	}
}

func TestDecodeStringTruncated(t *testing.T) {
	m := byte(strFlagASCII)
	buf := []byte{m, 10, 0} // claims 10 bytes but buffer is much shorter
	_, _, err := decodeString(buf, 0)
	if _, ok := err.(*TruncatedInput); !ok {
		t.Fatalf("decodeString error = %v (%T), want *TruncatedInput", err, err)
	}
}
