package value

import "unicode/utf16"

// Text payloads arrive in several carrier types. Each constructor below
// promotes its carrier to string before wrapping, so every text input
// hashes, compares, and renders as its canonical string form regardless of
// which carrier produced it.

// NewBytes wraps a UTF-8 byte slice as its string value.
func NewBytes(b []byte) Value {
	return New(string(b))
}

// NewRunes wraps a rune slice as its string value.
func NewRunes(r []rune) Value {
	return New(string(r))
}

// NewUTF16 decodes a UTF-16 code unit sequence and wraps the resulting
// string value.
func NewUTF16(u []uint16) Value {
	return New(string(utf16.Decode(u)))
}
