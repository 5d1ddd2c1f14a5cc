package porter2

import (
	"bytes"
	"sort"

	"github.com/blevesearch/vellum"
	"github.com/pkg/errors"
)

// irregularForms maps words whose stem cannot be derived by the rules.
// Words mapping to themselves are protected from stemming.
var irregularForms = map[string]string{
	"skis":   "ski",
	"skies":  "sky",
	"dying":  "die",
	"lying":  "lie",
	"tying":  "tie",
	"idly":   "idl",
	"gently": "gentl",
	"ugly":   "ugli",
	"early":  "earli",
	"only":   "onli",
	"singly": "singl",

	"sky":    "sky",
	"news":   "news",
	"howe":   "howe",
	"atlas":  "atlas",
	"cosmos": "cosmos",
	"bias":   "bias",
	"andes":  "andes",

	"inning":     "inning",
	"innings":    "inning",
	"outing":     "outing",
	"outings":    "outing",
	"canning":    "canning",
	"cannings":   "canning",
	"herring":    "herring",
	"herrings":   "herring",
	"earring":    "earring",
	"earrings":   "earring",
	"proceed":    "proceed",
	"proceeds":   "proceed",
	"proceeded":  "proceed",
	"proceeding": "proceed",
	"exceed":     "exceed",
	"exceeds":    "exceed",
	"exceeded":   "exceed",
	"exceeding":  "exceed",
	"succeed":    "succeed",
	"succeeds":   "succeed",
	"succeeded":  "succeed",
	"succeeding": "succeed",
}

// invariantForms stop the pipeline when Step 1a leaves one of them, so that
// e.g. "inning's" is not reduced to "in".
var invariantForms = []string{
	"inning", "outing", "canning", "herring", "earring",
	"proceed", "exceed", "succeed",
}

var (
	irregulars = mustFormTable("irregular", irregularForms)
	invariants = mustFormTable("invariant", identity(invariantForms))
)

// formTable is a read-only word -> stem table compiled into an FST. The FST
// output of a word is the index of its stem.
type formTable struct {
	fst   *vellum.FST
	stems []string
}

func newFormTable(forms map[string]string) (*formTable, error) {
	words := make([]string, 0, len(forms))
	for w := range forms {
		words = append(words, w)
	}
	sort.Strings(words)

	var buf bytes.Buffer
	builder, err := vellum.New(&buf, nil)
	if err != nil {
		return nil, errors.Wrap(err, "creating FST builder")
	}
	t := &formTable{stems: make([]string, 0, len(words))}
	for i, w := range words {
		if err := builder.Insert([]byte(w), uint64(i)); err != nil {
			builder.Close()
			return nil, errors.Wrapf(err, "inserting %q", w)
		}
		t.stems = append(t.stems, forms[w])
	}
	if err := builder.Close(); err != nil {
		return nil, errors.Wrap(err, "finishing FST")
	}
	t.fst, err = vellum.Load(buf.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "loading FST")
	}
	return t, nil
}

func mustFormTable(name string, forms map[string]string) *formTable {
	t, err := newFormTable(forms)
	if err != nil {
		panic(errors.Wrapf(err, "porter2: building %s table", name))
	}
	tracer().Debugf("%s table: %d forms", name, len(t.stems))
	return t
}

func (t *formTable) lookup(word string) (string, bool) {
	v, ok, err := t.fst.Get([]byte(word))
	if err != nil || !ok || v >= uint64(len(t.stems)) {
		return "", false
	}
	return t.stems[v], true
}

func (t *formTable) contains(word string) bool {
	_, ok := t.lookup(word)
	return ok
}

func identity(words []string) map[string]string {
	m := make(map[string]string, len(words))
	for _, w := range words {
		m[w] = w
	}
	return m
}
