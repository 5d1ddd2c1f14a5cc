package porter2

// Step 0: possessive apostrophes.
var step0 = newRuleTable("step0",
	rule{suffix: "'s'"},
	rule{suffix: "'s"},
	rule{suffix: "'"},
)

// Step 1a: plurals and -ied/-ies.
var step1a = newRuleTable("step1a",
	rule{suffix: "sses", repl: "ss"},
	rule{suffix: "ied", apply: shortenIes},
	rule{suffix: "ies", apply: shortenIes},
	rule{suffix: "us", keep: true},
	rule{suffix: "ss", keep: true},
	rule{suffix: "s", cond: vowelBeforePrevious},
)

// Step 1b: -eed, -ed and -ing forms.
var step1b = newRuleTable("step1b",
	rule{suffix: "eedly", gate: inR1, repl: "ee"},
	rule{suffix: "ingly", cond: vowelBefore, apply: repairStem},
	rule{suffix: "edly", cond: vowelBefore, apply: repairStem},
	rule{suffix: "eed", gate: inR1, repl: "ee"},
	rule{suffix: "ing", cond: vowelBefore, apply: repairStem},
	rule{suffix: "ed", cond: vowelBefore, apply: repairStem},
)

// Step 1c: terminal y after a consonant.
var step1c = newRuleTable("step1c",
	rule{suffix: "y", repl: "i", cond: consonantBefore},
	rule{suffix: string(markedY), repl: "i", cond: consonantBefore},
)

var step2 = newRuleTable("step2",
	rule{suffix: "ization", gate: inR1, repl: "ize"},
	rule{suffix: "ational", gate: inR1, repl: "ate"},
	rule{suffix: "fulness", gate: inR1, repl: "ful"},
	rule{suffix: "ousness", gate: inR1, repl: "ous"},
	rule{suffix: "iveness", gate: inR1, repl: "ive"},
	rule{suffix: "tional", gate: inR1, repl: "tion"},
	rule{suffix: "biliti", gate: inR1, repl: "ble"},
	rule{suffix: "lessli", gate: inR1, repl: "less"},
	rule{suffix: "entli", gate: inR1, repl: "ent"},
	rule{suffix: "ation", gate: inR1, repl: "ate"},
	rule{suffix: "alism", gate: inR1, repl: "al"},
	rule{suffix: "aliti", gate: inR1, repl: "al"},
	rule{suffix: "ousli", gate: inR1, repl: "ous"},
	rule{suffix: "iviti", gate: inR1, repl: "ive"},
	rule{suffix: "fulli", gate: inR1, repl: "ful"},
	rule{suffix: "enci", gate: inR1, repl: "ence"},
	rule{suffix: "anci", gate: inR1, repl: "ance"},
	rule{suffix: "abli", gate: inR1, repl: "able"},
	rule{suffix: "izer", gate: inR1, repl: "ize"},
	rule{suffix: "ator", gate: inR1, repl: "ate"},
	rule{suffix: "alli", gate: inR1, repl: "al"},
	rule{suffix: "bli", gate: inR1, repl: "ble"},
	rule{suffix: "ogi", gate: inR1, repl: "og", cond: precededBy('l')},
	rule{suffix: "li", gate: inR1, cond: precededByLiEnding},
)

var step3 = newRuleTable("step3",
	rule{suffix: "ational", gate: inR1, repl: "ate"},
	rule{suffix: "tional", gate: inR1, repl: "tion"},
	rule{suffix: "alize", gate: inR1, repl: "al"},
	rule{suffix: "icate", gate: inR1, repl: "ic"},
	rule{suffix: "iciti", gate: inR1, repl: "ic"},
	rule{suffix: "ative", gate: inR2},
	rule{suffix: "ical", gate: inR1, repl: "ic"},
	rule{suffix: "ness", gate: inR1},
	rule{suffix: "ful", gate: inR1},
)

var step4 = newRuleTable("step4",
	rule{suffix: "ement", gate: inR2},
	rule{suffix: "ance", gate: inR2},
	rule{suffix: "ence", gate: inR2},
	rule{suffix: "able", gate: inR2},
	rule{suffix: "ible", gate: inR2},
	rule{suffix: "ment", gate: inR2},
	rule{suffix: "ant", gate: inR2},
	rule{suffix: "ent", gate: inR2},
	rule{suffix: "ism", gate: inR2},
	rule{suffix: "ate", gate: inR2},
	rule{suffix: "iti", gate: inR2},
	rule{suffix: "ous", gate: inR2},
	rule{suffix: "ive", gate: inR2},
	rule{suffix: "ize", gate: inR2},
	rule{suffix: "ion", gate: inR2, cond: precededBy('s', 't')},
	rule{suffix: "al", gate: inR2},
	rule{suffix: "er", gate: inR2},
	rule{suffix: "ic", gate: inR2},
)

// Step 5: final e and double l.
var step5 = newRuleTable("step5",
	rule{suffix: "e", cond: removableE},
	rule{suffix: "l", gate: inR2, cond: precededBy('l')},
)

// stages is the suffix pipeline in order. Stages never repeat.
var stages = []*ruleTable{step0, step1a, step1b, step1c, step2, step3, step4, step5}

func shortenIes(s wordState, at int) wordState {
	if at > 1 {
		return s.replaceFrom(at, "i")
	}
	return s.replaceFrom(at, "ie")
}

// vowelBeforePrevious holds if a vowel occurs before the letter preceding the suffix.
func vowelBeforePrevious(s wordState, at int) bool {
	if at < 1 {
		return false
	}
	return hasVowel(s.word[:at-1])
}

func vowelBefore(s wordState, at int) bool {
	return hasVowel(s.word[:at])
}

// repairStem deletes the suffix and then fixes up what is left: luxuriat
// becomes luxuriate, hopp becomes hop, and the short word hop becomes hope.
func repairStem(s wordState, at int) wordState {
	s = s.replaceFrom(at, "")
	w := s.word
	switch {
	case endsWith(w, "at"), endsWith(w, "bl"), endsWith(w, "iz"):
		return s.appendRunes("e")
	case endsWithDouble(w):
		return s.trim(1)
	case isShortWord(s):
		return s.appendRunes("e")
	}
	return s
}

// isShortWord holds if the word ends in a short syllable and R1 is empty.
func isShortWord(s wordState) bool {
	return s.p1 >= len(s.word) && endsWithShortSyllable(s.word)
}

// consonantBefore holds if the letter before the suffix is a non-vowel
// that is not the first letter of the word.
func consonantBefore(s wordState, at int) bool {
	return at > 1 && !isVowel(s.word[at-1])
}

func precededBy(letters ...rune) func(wordState, int) bool {
	return func(s wordState, at int) bool {
		prev := runeAt(s.word, at-1)
		for _, l := range letters {
			if prev == l {
				return true
			}
		}
		return false
	}
}

func precededByLiEnding(s wordState, at int) bool {
	return liEndings.has(runeAt(s.word, at-1))
}

// removableE holds for a final e in R2, or in R1 when not preceded by a
// short syllable.
func removableE(s wordState, at int) bool {
	if s.inR2(at) {
		return true
	}
	return s.inR1(at) && !endsWithShortSyllable(s.word[:at])
}

func endsWith(w []rune, suffix string) bool {
	sr := []rune(suffix)
	if len(sr) > len(w) {
		return false
	}
	tail := w[len(w)-len(sr):]
	for i := range sr {
		if tail[i] != sr[i] {
			return false
		}
	}
	return true
}
