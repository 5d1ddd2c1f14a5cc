package stopwords

import (
	"bytes"
	"sort"

	"github.com/blevesearch/vellum"
	"github.com/pkg/errors"
)

// Set is an immutable set of words. It is safe for concurrent use.
type Set struct {
	name string
	fst  *vellum.FST
}

// NewSet builds a set from words. Duplicates and empty strings are dropped.
func NewSet(name string, words []string) (*Set, error) {
	sorted := make([]string, 0, len(words))
	for _, w := range words {
		if w != "" {
			sorted = append(sorted, w)
		}
	}
	if len(sorted) == 0 {
		return &Set{name: name}, nil
	}
	sort.Strings(sorted)

	var buf bytes.Buffer
	if err := writeFST(&buf, sorted); err != nil {
		return nil, errors.Wrapf(err, "building set %q", name)
	}
	fst, err := vellum.Load(buf.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "loading set %q", name)
	}
	return &Set{name: name, fst: fst}, nil
}

// writeFST inserts sorted words into a new FST written to w. Repeated words
// are skipped.
func writeFST(w *bytes.Buffer, sorted []string) error {
	builder, err := vellum.New(w, nil)
	if err != nil {
		return err
	}
	prev := ""
	for i, word := range sorted {
		if i > 0 && word == prev {
			continue
		}
		if err := builder.Insert([]byte(word), 0); err != nil {
			builder.Close()
			return errors.Wrapf(err, "inserting %q", word)
		}
		prev = word
	}
	return builder.Close()
}

// Name returns the corpus or file the set was built from.
func (s *Set) Name() string {
	return s.name
}

// Contains reports whether word is in the set. Matching is exact.
func (s *Set) Contains(word string) bool {
	if s == nil || s.fst == nil {
		return false
	}
	_, ok, err := s.fst.Get([]byte(word))
	return err == nil && ok
}

// Len returns the number of words in the set.
func (s *Set) Len() int {
	if s == nil || s.fst == nil {
		return 0
	}
	return s.fst.Len()
}

// Words returns the words of the set in lexicographic order.
func (s *Set) Words() []string {
	if s == nil || s.fst == nil {
		return nil
	}
	words := make([]string, 0, s.fst.Len())
	itr, err := s.fst.Iterator(nil, nil)
	for err == nil {
		key, _ := itr.Current()
		words = append(words, string(key))
		err = itr.Next()
	}
	if err != vellum.ErrIteratorDone {
		tracer().Errorf("iterating set %q: %v", s.name, err)
	}
	return words
}
