package scanner

// Character classifiers: pure predicates over a single byte, used by the
// scanner core and sub-scanners to classify digits, letters, and identifier
// bytes without allocating.

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func isOctalDigit(c byte) bool {
	return '0' <= c && c <= '7'
}

func isBinaryDigit(c byte) bool {
	return c == '0' || c == '1'
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// isIdentStart reports whether c may begin an identifier: a letter or '_'.
func isIdentStart(c byte) bool {
	return isLetter(c) || c == '_'
}

// isIdentContinue reports whether c may continue an identifier once started:
// a letter, digit, or '_'.
func isIdentContinue(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}

// isSpaceNoNewline reports whether c is inter-token whitespace that is not
// itself part of a newline sequence (space, tab, vertical tab, form feed,
// and a lone carriage return that turns out not to start a newline is
// handled separately by the newline scanner, not here).
func isSpaceNoNewline(c byte) bool {
	return c == ' ' || c == '\t' || c == '\v' || c == '\f'
}
