package porter2

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// apostrophes folds the single-quote variants to a plain apostrophe.
var apostrophes = runes.Map(func(r rune) rune {
	switch r {
	case '‘', '’', '‛':
		return '\''
	}
	return r
})

// foldApostrophes maps ‘ ’ and ‛ to '.
func foldApostrophes(s string) string {
	folded, _, err := transform.String(apostrophes, s)
	if err != nil {
		return s
	}
	return folded
}

// normalize prepares a raw word for region computation: apostrophes are
// folded, one leading apostrophe is dropped and consonant y's are marked.
func normalize(word string) []rune {
	w := []rune(foldApostrophes(word))
	if len(w) > 0 && w[0] == '\'' {
		w = w[1:]
	}
	return markY(w)
}

// markY marks every y that starts the word or follows a vowel. A marked y
// is not a vowel, so "yy" after a vowel marks only the first one.
func markY(w []rune) []rune {
	for i, r := range w {
		if r != 'y' {
			continue
		}
		if i == 0 || isVowel(w[i-1]) {
			w[i] = markedY
		}
	}
	return w
}

// unmarkY reverts markY and returns the word as a string.
func unmarkY(w []rune) string {
	out := make([]rune, len(w))
	for i, r := range w {
		if r == markedY {
			r = 'y'
		}
		out[i] = r
	}
	return string(out)
}
