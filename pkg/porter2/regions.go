package porter2

import "strings"

// regionPrefixes pin R1 to the end of the prefix instead of the vowel scan.
var regionPrefixes = []string{"gener", "commun", "arsen"}

// regionStart returns the index just past the first non-vowel that follows
// a vowel, scanning w from index from. It returns len(w) if there is none.
func regionStart(w []rune, from int) int {
	for i := from + 1; i < len(w); i++ {
		if !isVowel(w[i]) && isVowel(w[i-1]) {
			return i + 1
		}
	}
	return len(w)
}

// regions computes the starts of R1 and R2 for a normalized word.
func regions(w []rune) (p1, p2 int) {
	p1 = -1
	s := string(w)
	for _, prefix := range regionPrefixes {
		if strings.HasPrefix(s, prefix) {
			p1 = len(prefix)
			break
		}
	}
	if p1 < 0 {
		p1 = regionStart(w, 0)
	}
	p2 = regionStart(w, p1)
	return p1, p2
}
