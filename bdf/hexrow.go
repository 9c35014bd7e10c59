package bdf

import (
	"fmt"
)

// DecodeHexRow decodes a bitmap row given as pairs of hex digits into dst.
// Each pair becomes one byte, high nibble first; digits are case-insensitive.
//
// The token is validated as a whole before anything is written. Odd length
// or non-hex characters result in an error wrapping [ErrMalformedRow] and
// leave dst untouched. If the token holds more bytes than dst, the excess
// bytes are not written. DecodeHexRow returns the number of bytes the
// token holds, which may be larger than len(dst).
func DecodeHexRow(dst []byte, token string) (int, error) {
	if len(token)%2 != 0 {
		return 0, fmt.Errorf("%w: odd number of hex digits in %q", ErrMalformedRow, token)
	}
	n := len(token) / 2
	for i := 0; i < len(token); i++ {
		if _, ok := fromHexChar(token[i]); !ok {
			return 0, fmt.Errorf("%w: %q is not hexadecimal", ErrMalformedRow, token)
		}
	}
	for i := 0; i < n && i < len(dst); i++ {
		hi, _ := fromHexChar(token[2*i])
		lo, _ := fromHexChar(token[2*i+1])
		dst[i] = hi<<4 | lo
	}
	return n, nil
}

// fromHexChar converts a hex character into its value.
func fromHexChar(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
