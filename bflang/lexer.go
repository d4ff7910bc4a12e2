package bflang

// Lex scans source and returns the command tokens in order. Any byte
// that is not one of the eight command characters is a comment and is
// dropped without diagnostics.
func Lex(source string) []Token {
	var tokens []Token
	for i := 0; i < len(source); i++ {
		if token := classify(source[i]); token != TokenInvalid {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

func classify(b byte) Token {
	switch b {
	case '+':
		return TokenIncrement
	case '-':
		return TokenDecrement
	case '>':
		return TokenMoveRight
	case '<':
		return TokenMoveLeft
	case '.':
		return TokenOutput
	case ',':
		return TokenInput
	case '[':
		return TokenLoopBegin
	case ']':
		return TokenLoopEnd
	}
	return TokenInvalid
}
