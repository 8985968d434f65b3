package scanner

// IsNameChar reports whether c may appear in an element name.
// Only ASCII letters, digits, ':', '-' and '_' are accepted; this is a subset
// of the XML NameChar production that covers the documents we scan.
func IsNameChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == ':', c == '-', c == '_':
		return true
	default:
		return false
	}
}

// isSpace matches the ASCII whitespace set: space, \t, \n, \v, \f and \r.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// isNameTerminator reports whether c ends an element name inside an opening
// tag, which separates "<foo>" from "<foobar>".
func isNameTerminator(c byte) bool {
	return c == '/' || c == '>' || isSpace(c)
}
