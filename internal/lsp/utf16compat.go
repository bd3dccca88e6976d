package lsp

// utf16RuneLen mirrors utf16.RuneLen (Go 1.23+) for older toolchains: the
// number of 16-bit words in the UTF-16 encoding of r, or -1 if r is not a
// valid value to encode in UTF-16.
func utf16RuneLen(r rune) int {
	switch {
	case 0 <= r && r < 0xd800, 0xe000 <= r && r < 0x10000:
		return 1
	case 0x10000 <= r && r <= 0x10ffff:
		return 2
	default:
		return -1
	}
}
