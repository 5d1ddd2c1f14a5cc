package porter2

import (
	"fmt"

	"github.com/derekparker/trie"
)

// gate restricts where a matched suffix may start.
type gate uint8

const (
	anywhere gate = iota
	inR1          // suffix must lie entirely within R1
	inR2          // suffix must lie entirely within R2
)

func (g gate) String() string {
	switch g {
	case inR1:
		return "R1"
	case inR2:
		return "R2"
	}
	return "-"
}

// rule is one entry of a stage table. By default a rule replaces the matched
// suffix with repl (deleting it when repl is empty). keep leaves the word as
// is; the entry only exists to shadow shorter suffixes. cond, if set, must
// hold for the rule to fire. apply, if set, replaces the default rewrite.
//
// cond and apply receive the index at which the suffix starts.
type rule struct {
	suffix string
	gate   gate
	repl   string
	keep   bool
	cond   func(s wordState, at int) bool
	apply  func(s wordState, at int) wordState

	n int // rune length of suffix
}

// ruleTable is the ordered rule list of one stage. Rules are listed longest
// suffix first; the index finds the longest suffix of a word that has a rule.
type ruleTable struct {
	name   string
	rules  []rule
	index  *trie.Trie // reversed suffix -> position in rules
	maxLen int
}

func newRuleTable(name string, rules ...rule) *ruleTable {
	t := &ruleTable{
		name:  name,
		rules: rules,
		index: trie.New(),
	}
	for i := range t.rules {
		r := &t.rules[i]
		r.n = len([]rune(r.suffix))
		if i > 0 && r.n > t.rules[i-1].n {
			panic(fmt.Sprintf("porter2: %s rules not ordered longest first at %q", name, r.suffix))
		}
		if r.n > t.maxLen {
			t.maxLen = r.n
		}
		t.index.Add(reversed(r.suffix), i)
	}
	tracer().Debugf("rule table %s: %d rules, longest suffix %d", name, len(t.rules), t.maxLen)
	return t
}

func reversed(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// match returns the position of the rule with the longest suffix of w and
// the index in w where that suffix starts, or -1 if no rule matches.
func (t *ruleTable) match(w []rune) (int, int) {
	best := -1
	key := make([]rune, 0, t.maxLen)
	for k := 1; k <= t.maxLen && k <= len(w); k++ {
		key = append(key, w[len(w)-k])
		ks := string(key)
		if node, ok := t.index.Find(ks); ok {
			best = node.Meta().(int)
		}
		if !t.index.HasKeysWithPrefix(ks) {
			break
		}
	}
	if best < 0 {
		return -1, 0
	}
	return best, len(w) - t.rules[best].n
}

// apply runs the stage on s. Only the longest matching suffix is considered;
// if its gate or condition fails the stage leaves s unchanged.
func (t *ruleTable) apply(s wordState) wordState {
	i, at := t.match(s.word)
	if i < 0 {
		return s
	}
	r := t.rules[i]
	switch {
	case r.gate == inR1 && !s.inR1(at), r.gate == inR2 && !s.inR2(at):
		return s
	}
	if r.cond != nil && !r.cond(s, at) {
		return s
	}
	if r.keep {
		return s
	}
	if r.apply != nil {
		return r.apply(s, at)
	}
	return s.replaceFrom(at, r.repl)
}
