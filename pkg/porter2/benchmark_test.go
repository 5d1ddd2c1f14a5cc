package porter2

import (
	"testing"

	"github.com/blevesearch/snowballstem"
	snowballenglish "github.com/blevesearch/snowballstem/english"
	"github.com/kljensen/snowball/english"
)

var benchWords = []string{
	"running", "generously", "consolidating", "communication", "knightly",
	"hopefulness", "abeyance", "replacement", "skies", "the",
}

// referenceWords are stemmed identically by every Snowball English
// implementation, with or without stopword handling.
var referenceWords = []string{
	"running", "knitting", "consignment", "knightly", "relational",
	"conditional", "hopeful", "goodness", "adjustment", "replacement",
	"allowance", "inference",
}

func TestReferenceImplementations(t *testing.T) {
	s := newTestStemmer(t, Config{Stopwords: NoStopwords})
	for _, w := range referenceWords {
		want := s.Stem(w)
		if got := english.Stem(w, true); got != want {
			t.Errorf("kljensen Stem(%q) = %q, ours %q", w, got, want)
		}
		env := snowballstem.NewEnv(w)
		snowballenglish.Stem(env)
		if got := env.Current(); got != want {
			t.Errorf("snowballstem Stem(%q) = %q, ours %q", w, got, want)
		}
	}
}

func BenchmarkStem(b *testing.B) {
	s, err := New(Config{})
	if err != nil {
		b.Fatalf("Failed to create stemmer: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Stem(benchWords[i%len(benchWords)])
	}
}

func BenchmarkStem_Cached(b *testing.B) {
	s, err := New(Config{Cache: true})
	if err != nil {
		b.Fatalf("Failed to create stemmer: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Stem(benchWords[i%len(benchWords)])
	}
}

func BenchmarkKljensen(b *testing.B) {
	for i := 0; i < b.N; i++ {
		english.Stem(benchWords[i%len(benchWords)], false)
	}
}

func BenchmarkSnowballstem(b *testing.B) {
	for i := 0; i < b.N; i++ {
		env := snowballstem.NewEnv(benchWords[i%len(benchWords)])
		snowballenglish.Stem(env)
	}
}

func BenchmarkExplain(b *testing.B) {
	s, err := New(Config{})
	if err != nil {
		b.Fatalf("Failed to create stemmer: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Explain(benchWords[i%len(benchWords)])
	}
}
