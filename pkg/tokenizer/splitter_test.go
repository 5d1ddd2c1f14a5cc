package tokenizer

import (
	"testing"
)

func TestSplitWords(t *testing.T) {
	tests := []struct {
		input    string
		expected []RawToken
	}{
		{
			input: "Don't stop!",
			expected: []RawToken{
				{Text: "Don't", Type: TokenWord, Start: 0, End: 5},
				{Text: " ", Type: TokenSeparator, Start: 5, End: 6},
				{Text: "stop", Type: TokenWord, Start: 6, End: 10},
				{Text: "!", Type: TokenSeparator, Start: 10, End: 11},
			},
		},
		{
			input: "the cats’ toys",
			expected: []RawToken{
				{Text: "the", Type: TokenWord, Start: 0, End: 3},
				{Text: " ", Type: TokenSeparator, Start: 3, End: 4},
				{Text: "cats’", Type: TokenWord, Start: 4, End: 9},
				{Text: " ", Type: TokenSeparator, Start: 9, End: 10},
				{Text: "toys", Type: TokenWord, Start: 10, End: 14},
			},
		},
		{
			input:    "",
			expected: []RawToken{},
		},
		{
			input: "well-known",
			expected: []RawToken{
				{Text: "well", Type: TokenWord, Start: 0, End: 4},
				{Text: "-", Type: TokenSeparator, Start: 4, End: 5},
				{Text: "known", Type: TokenWord, Start: 5, End: 10},
			},
		},
		{
			input: "123abc",
			expected: []RawToken{
				{Text: "123abc", Type: TokenWord, Start: 0, End: 6},
			},
		},
		{
			input: "  ",
			expected: []RawToken{
				{Text: "  ", Type: TokenSeparator, Start: 0, End: 2},
			},
		},
	}

	for _, tt := range tests {
		result := SplitWords(tt.input)
		if len(result) != len(tt.expected) {
			t.Errorf("SplitWords(%q) returned %d tokens, want %d", tt.input, len(result), len(tt.expected))
			continue
		}
		for i, tok := range result {
			if tok != tt.expected[i] {
				t.Errorf("SplitWords(%q)[%d] = %+v, want %+v", tt.input, i, tok, tt.expected[i])
			}
		}
	}
}

func TestGetTokenType(t *testing.T) {
	tests := []struct {
		input    rune
		expected TokenType
	}{
		{'a', TokenWord},
		{'Z', TokenWord},
		{'é', TokenWord},
		{'5', TokenWord},
		{'\'', TokenWord},
		{'’', TokenWord},
		{' ', TokenSeparator},
		{'.', TokenSeparator},
		{'"', TokenSeparator},
		{'-', TokenSeparator},
	}

	for _, tt := range tests {
		result := getTokenType(tt.input)
		if result != tt.expected {
			t.Errorf("getTokenType(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestHasWordRune(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"'", false},
		{"''’", false},
		{"cats'", true},
		{"42", true},
	}

	for _, tt := range tests {
		if got := hasWordRune(tt.input); got != tt.expected {
			t.Errorf("hasWordRune(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
