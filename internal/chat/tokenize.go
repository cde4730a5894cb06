package chat

// Tokenize splits s into chunks suitable for incremental delivery. Each token
// is a word together with its trailing whitespace, so concatenating the tokens
// reproduces s exactly. Empty input yields no tokens.
func Tokenize(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string
	start := 0
	inSpace := false
	for i, r := range s {
		if isSpace(r) {
			inSpace = true
		} else if inSpace {
			tokens = append(tokens, s[start:i])
			start = i
			inSpace = false
		}
	}
	return append(tokens, s[start:])
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}
