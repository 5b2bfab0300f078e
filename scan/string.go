package scan

import (
	"errors"
	"unicode/utf16"
	"unicode/utf8"
)

var (
	ErrUnterminatedString   = errors.New("scan: unterminated string")
	ErrInvalidEscape        = errors.New("scan: invalid escape sequence")
	ErrInvalidUTF16CodeUnit = errors.New("scan: invalid utf-16 code unit")
	ErrInvalidUTF8Codepoint = errors.New("scan: invalid utf-8 codepoint")
)

// String scans a quoted JSON string starting at d[0] == '"'. It returns the
// number of bytes consumed (including both quotes) and whether any escape
// sequence was present. When hasEscapes is false, the returned raw slice is
// a subslice of d (the bytes between the quotes) and needs no further
// decoding. When true, callers must call Decode on that same raw slice to
// produce the actual string contents.
func String(d []byte) (consumed int, raw []byte, hasEscapes bool, err error) {
	if len(d) == 0 || d[0] != '"' {
		return 0, nil, false, ErrInvalidEscape
	}
	i := 1
	for i < len(d) {
		c := d[i]
		switch {
		case c == '"':
			return i + 1, d[1:i], hasEscapes, nil
		case c == '\\':
			hasEscapes = true
			if i+1 >= len(d) {
				return 0, nil, false, ErrUnterminatedString
			}
			switch d[i+1] {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				i += 2
			case 'u':
				if i+6 > len(d) || !isHex4(d[i+2:i+6]) {
					return 0, nil, false, ErrInvalidUTF16CodeUnit
				}
				i += 6
			default:
				return 0, nil, false, ErrInvalidEscape
			}
		case c < 0x20:
			return 0, nil, false, ErrInvalidEscape
		case c < 0x80:
			i++
		default:
			n := utf8RuneLen(d[i:])
			if n == 0 {
				return 0, nil, false, ErrInvalidUTF8Codepoint
			}
			i += n
		}
	}
	return 0, nil, false, ErrUnterminatedString
}

// Decode converts the raw bytes between a string's quotes (as returned by
// String) into their final UTF-8 form, resolving \uXXXX and short escapes.
// It is only meaningful to call when String reported hasEscapes == true.
func Decode(raw []byte, dst []byte) ([]byte, error) {
	i := 0
	for i < len(raw) {
		c := raw[i]
		if c != '\\' {
			dst = append(dst, c)
			i++
			continue
		}
		switch raw[i+1] {
		case '"':
			dst = append(dst, '"')
			i += 2
		case '\\':
			dst = append(dst, '\\')
			i += 2
		case '/':
			dst = append(dst, '/')
			i += 2
		case 'b':
			dst = append(dst, '\b')
			i += 2
		case 'f':
			dst = append(dst, '\f')
			i += 2
		case 'n':
			dst = append(dst, '\n')
			i += 2
		case 'r':
			dst = append(dst, '\r')
			i += 2
		case 't':
			dst = append(dst, '\t')
			i += 2
		case 'u':
			r1, err := hex4(raw[i+2 : i+6])
			if err != nil {
				return nil, err
			}
			i += 6
			if utf16.IsSurrogate(rune(r1)) {
				if r1 >= 0xD800 && r1 <= 0xDBFF && i+6 <= len(raw) && raw[i] == '\\' && raw[i+1] == 'u' {
					r2, err := hex4(raw[i+2 : i+6])
					if err == nil && r2 >= 0xDC00 && r2 <= 0xDFFF {
						combined := utf16.DecodeRune(rune(r1), rune(r2))
						dst = appendRune(dst, combined)
						i += 6
						continue
					}
				}
				dst = appendRune(dst, utf8.RuneError)
				continue
			}
			dst = appendRune(dst, rune(r1))
		default:
			return nil, ErrInvalidEscape
		}
	}
	return dst, nil
}

func appendRune(dst []byte, r rune) []byte {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return append(dst, buf[:n]...)
}

func hex4(b []byte) (uint32, error) {
	var v uint32
	for _, c := range b {
		d, ok := hexDigit(c)
		if !ok {
			return 0, ErrInvalidUTF16CodeUnit
		}
		v = v<<4 | uint32(d)
	}
	return v, nil
}

func isHex4(b []byte) bool {
	for _, c := range b {
		if _, ok := hexDigit(c); !ok {
			return false
		}
	}
	return true
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// utf8RuneLen validates the UTF-8 sequence at the start of b and returns its
// byte length, or 0 if it is malformed.
func utf8RuneLen(b []byte) int {
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return 0
	}
	return size
}
