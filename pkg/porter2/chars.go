package porter2

import (
	"github.com/bits-and-blooms/bitset"
)

// markedY replaces a 'y' that acts as a consonant. It lives in the private
// use area, away from anything a tokenizer produces for English text.
const markedY = '\uE059'

// charClass is a set of runes below 128. Runes outside ASCII are never members.
type charClass struct {
	bits *bitset.BitSet
}

func newCharClass(members string) charClass {
	b := bitset.New(128)
	for _, r := range members {
		b.Set(uint(r))
	}
	return charClass{bits: b}
}

func (c charClass) has(r rune) bool {
	if r < 0 || r >= 128 {
		return false
	}
	return c.bits.Test(uint(r))
}

var (
	vowels    = newCharClass("aeiouy")
	doubles   = newCharClass("bdfgmnprt") // letters whose doubling is undone in Step 1b
	liEndings = newCharClass("cdeghkmnrt")
	wx        = newCharClass("wx")
)

func isVowel(r rune) bool {
	return vowels.has(r)
}

// runeAt returns w[i], or 0 when i is out of range. 0 is neither a vowel nor
// any letter the rules probe for.
func runeAt(w []rune, i int) rune {
	if i < 0 || i >= len(w) {
		return 0
	}
	return w[i]
}

// hasVowel reports whether any rune of w is a vowel.
func hasVowel(w []rune) bool {
	for _, r := range w {
		if isVowel(r) {
			return true
		}
	}
	return false
}

// endsWithDouble reports whether w ends in bb, dd, ff, gg, mm, nn, pp, rr or tt.
func endsWithDouble(w []rune) bool {
	n := len(w)
	if n < 2 {
		return false
	}
	return w[n-1] == w[n-2] && doubles.has(w[n-1])
}

// endsWithShortSyllable reports whether w ends in a non-vowel, a vowel and a
// non-vowel other than w, x or marked y, or is exactly a vowel followed by a
// non-vowel.
func endsWithShortSyllable(w []rune) bool {
	n := len(w)
	switch {
	case n == 2:
		return isVowel(w[0]) && !isVowel(w[1])
	case n >= 3:
		last := w[n-1]
		return !isVowel(w[n-3]) && isVowel(w[n-2]) &&
			!isVowel(last) && !wx.has(last) && last != markedY
	}
	return false
}
