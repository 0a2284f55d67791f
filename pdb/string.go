package pdb

import (
	"strings"
	"unicode/utf16"
)

// string encoding flags, valid only when the header byte's bit 0 is unset.
const (
	strFlagUTF16 = 1 << 4
	strFlagUTF8  = 1 << 5
	strFlagASCII = 1 << 6
	// strFlagLittleEndian (bit 7) is informational only; UTF-16 payloads are
	// always little-endian in practice.
)

// decodeString decodes a PDB-encoded string starting at offset, returning
// the decoded text and the number of bytes consumed (including the header).
// It is a pure function of (buf, offset) so it can be tested in isolation
// against hand-built byte vectors, per the row decoders that call it.
func decodeString(buf []byte, offset int) (string, int, error) {
	m, err := readU8(buf, offset)
	if err != nil {
		return "", 0, err
	}

	if m&1 != 0 {
		// Short ASCII form: length counts the header byte itself.
		length := int(m >> 1)
		if length == 0 {
			return "", 1, nil
		}
		payload, err := bytesAt(buf, offset+1, length-1)
		if err != nil {
			return "", 0, err
		}
		return string(payload), length, nil
	}

	lenField, err := readU16(buf, offset+1)
	if err != nil {
		return "", 0, err
	}
	length := int(lenField)
	if length < 4 {
		return "", length, nil
	}
	payload, err := bytesAt(buf, offset+4, length-4)
	if err != nil {
		return "", 0, err
	}

	switch {
	case m&strFlagUTF16 != 0:
		return decodeUTF16LE(payload), length, nil
	case m&strFlagUTF8 != 0:
		return trimTrailingNUL(string(payload)), length, nil
	default:
		// ASCII, or an unrecognized flag combination: treat as raw bytes.
		return trimTrailingNUL(string(payload)), length, nil
	}
}

// encodeShortASCIIString encodes s using the short-ASCII form, valid
// whenever len(s) <= 126 and every byte of s is < 0x80. It exists to
// exercise the round-trip property required of the codec; the decoder
// never needs it.
func encodeShortASCIIString(s string) ([]byte, bool) {
	if len(s) > 126 {
		return nil, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return nil, false
		}
	}
	length := len(s) + 1
	out := make([]byte, length)
	out[0] = byte(length<<1) | 1
	copy(out[1:], s)
	return out, true
}

func decodeUTF16LE(b []byte) string {
	n := len(b) / 2
	units := make([]uint16, n)
	for i := 0; i < n; i++ {
		units[i] = uint16(b[2*i]) | uint16(b[2*i+1])<<8
	}
	return trimTrailingNUL(string(utf16.Decode(units)))
}

func trimTrailingNUL(s string) string {
	return strings.TrimRight(s, "\x00")
}
