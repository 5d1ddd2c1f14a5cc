package tokenizer

import (
	"unicode"
)

// TokenType identifies the type of token.
type TokenType int

const (
	TokenWord TokenType = iota
	TokenSeparator
)

func (t TokenType) String() string {
	if t == TokenWord {
		return "word"
	}
	return "separator"
}

// RawToken is a run of word or separator runes. Start and End are rune
// offsets into the input.
type RawToken struct {
	Text  string
	Type  TokenType
	Start int
	End   int
}

// SplitWords splits text into words and separators.
// Word characters: letters, numbers and apostrophes, so that "don't" and
// "cats'" stay whole.
// Separators: whitespace, punctuation, symbols.
func SplitWords(text string) []RawToken {
	var tokens []RawToken
	runes := []rune(text)

	if len(runes) == 0 {
		return tokens
	}

	start := 0
	currentType := getTokenType(runes[0])

	for i := 1; i <= len(runes); i++ {
		nextType := TokenType(-1) // flush at end of input
		if i < len(runes) {
			nextType = getTokenType(runes[i])
		}
		if nextType == currentType {
			continue
		}
		tokens = append(tokens, RawToken{
			Text:  string(runes[start:i]),
			Type:  currentType,
			Start: start,
			End:   i,
		})
		start = i
		currentType = nextType
	}

	return tokens
}

func isApostrophe(r rune) bool {
	switch r {
	case '\'', '‘', '’', '‛':
		return true
	}
	return false
}

// getTokenType determines if a rune is a word character or separator.
func getTokenType(r rune) TokenType {
	if unicode.IsLetter(r) || unicode.IsNumber(r) || isApostrophe(r) {
		return TokenWord
	}
	return TokenSeparator
}

// hasWordRune reports whether s has a letter or number, i.e. is more than
// a run of apostrophes.
func hasWordRune(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}
