package porter2

// wordState is the word threaded through the suffix stages together with
// its regions. Regions are kept as start offsets that do not move when the
// word is rewritten: trimming the word trims R1 and R2 with it, a region
// whose start lies past the end is empty, and letters appended at the end
// join every region that still starts inside the word.
type wordState struct {
	word   []rune
	p1, p2 int
}

func newWordState(w []rune) wordState {
	p1, p2 := regions(w)
	return wordState{word: w, p1: p1, p2: p2}
}

func (s wordState) region(p int) []rune {
	if p >= len(s.word) {
		return nil
	}
	return s.word[p:]
}

func (s wordState) r1() []rune { return s.region(s.p1) }
func (s wordState) r2() []rune { return s.region(s.p2) }

// inR1 reports whether index i lies inside R1.
func (s wordState) inR1(i int) bool { return i >= s.p1 && i < len(s.word) }

// inR2 reports whether index i lies inside R2.
func (s wordState) inR2(i int) bool { return i >= s.p2 && i < len(s.word) }

// replaceFrom returns a new state with word[at:] replaced by repl.
func (s wordState) replaceFrom(at int, repl string) wordState {
	w := make([]rune, 0, at+len(repl))
	w = append(w, s.word[:at]...)
	w = append(w, []rune(repl)...)
	return wordState{word: w, p1: s.p1, p2: s.p2}
}

// trim returns a new state with the last n runes removed.
func (s wordState) trim(n int) wordState {
	if n > len(s.word) {
		n = len(s.word)
	}
	return s.replaceFrom(len(s.word)-n, "")
}

// appendRunes returns a new state with tail added to the end of the word.
func (s wordState) appendRunes(tail string) wordState {
	return s.replaceFrom(len(s.word), tail)
}

func (s wordState) String() string {
	return unmarkY(s.word)
}
