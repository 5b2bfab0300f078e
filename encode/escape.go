package encode

const hexDigits = "0123456789abcdef"

// quote renders s as a double-quoted JSON string literal. Only the bytes
// JSON requires escaping are escaped: the quote and backslash characters,
// and control characters below 0x20 (using the short \b \f \n \r \t forms
// where they exist, \u00XX otherwise). Everything else, including
// multi-byte UTF-8 sequences, passes through unchanged.
func quote(s string) string {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			out = append(out, '\\', '"')
		case c == '\\':
			out = append(out, '\\', '\\')
		case c == '\b':
			out = append(out, '\\', 'b')
		case c == '\f':
			out = append(out, '\\', 'f')
		case c == '\n':
			out = append(out, '\\', 'n')
		case c == '\r':
			out = append(out, '\\', 'r')
		case c == '\t':
			out = append(out, '\\', 't')
		case c < 0x20:
			out = append(out, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
		default:
			out = append(out, c)
		}
	}
	out = append(out, '"')
	return string(out)
}
