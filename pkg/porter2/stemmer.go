package porter2

import (
	"sync"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"

	"github.com/kerem-kaynak/english-stemmer/pkg/stopwords"
)

// StopwordCorpus is the corpus a Stemmer asks its stopword source for.
const StopwordCorpus = stopwords.Snowball

// DefaultCacheSize is used when caching is enabled without a size.
const DefaultCacheSize = 10_000

// WordSet is a set of words returned unchanged by the stemmer.
type WordSet interface {
	Contains(word string) bool
}

// StopwordSource returns the stopword set for a corpus identifier.
type StopwordSource func(corpus string) (WordSet, error)

// Config configures a Stemmer. The zero value stems with the embedded
// Snowball stopword list and no cache.
type Config struct {
	Stopwords StopwordSource // nil means SnowballStopwords
	Cache     bool           // memoize stems in an LRU cache
	CacheSize int            // entries; DefaultCacheSize if <= 0
}

// Stemmer reduces words to their Porter2 stem. It is safe for concurrent use.
type Stemmer struct {
	stopwords WordSet
	cache     *lru.Cache[string, string]
}

// New creates a stemmer. It consults cfg.Stopwords once, for StopwordCorpus.
func New(cfg Config) (*Stemmer, error) {
	source := cfg.Stopwords
	if source == nil {
		source = SnowballStopwords
	}
	set, err := source(StopwordCorpus)
	if err != nil {
		return nil, errors.Wrapf(err, "loading stopwords %q", StopwordCorpus)
	}
	if set == nil {
		set = emptySet{}
	}
	s := &Stemmer{stopwords: set}

	if cfg.Cache {
		size := cfg.CacheSize
		if size <= 0 {
			size = DefaultCacheSize
		}
		cache, err := lru.New[string, string](size)
		if err != nil {
			return nil, errors.Wrap(err, "creating stem cache")
		}
		s.cache = cache
	}
	tracer().Infof("stemmer ready: cache=%v", s.cache != nil)
	return s, nil
}

// SnowballStopwords is the default StopwordSource, backed by the corpora
// embedded in package stopwords.
func SnowballStopwords(corpus string) (WordSet, error) {
	set, err := stopwords.Load(corpus)
	if err != nil {
		return nil, err
	}
	return set, nil
}

// NoStopwords is a StopwordSource that returns an empty set.
func NoStopwords(string) (WordSet, error) {
	return emptySet{}, nil
}

// FromSource adapts a stopwords.Source.
func FromSource(src stopwords.Source) StopwordSource {
	return func(corpus string) (WordSet, error) {
		set, err := src(corpus)
		if err != nil {
			return nil, err
		}
		return set, nil
	}
}

type emptySet struct{}

func (emptySet) Contains(string) bool { return false }

// Stem returns the stem of word. Stopwords, irregular forms and words of at
// most two letters are returned without running the suffix rules. Input that
// is not valid UTF-8 is returned unchanged.
func (s *Stemmer) Stem(word string) string {
	if s.cache == nil {
		return s.stem(word)
	}
	if stem, ok := s.cache.Get(word); ok {
		return stem
	}
	stem := s.stem(word)
	s.cache.Add(word, stem)
	return stem
}

func (s *Stemmer) stem(word string) string {
	if stem, ok := s.exception(word); ok {
		return stem
	}
	st, _ := run(normalize(word), nil)
	return st.String()
}

// IsStopword reports whether word is in the stemmer's stopword set.
func (s *Stemmer) IsStopword(word string) bool {
	return s.stopwords.Contains(word)
}

// exception applies the gates that bypass the suffix rules.
func (s *Stemmer) exception(word string) (string, bool) {
	if !utf8.ValidString(word) {
		return word, true
	}
	if s.stopwords.Contains(word) {
		return word, true
	}
	if stem, ok := irregulars.lookup(word); ok {
		return stem, true
	}
	if utf8.RuneCountInString(word) <= 2 {
		return word, true
	}
	return "", false
}

// run threads a normalized word through the stages, calling visit after
// each one. It reports whether the pipeline stopped early on an invariant.
func run(w []rune, visit func(stage string, s wordState)) (wordState, bool) {
	s := newWordState(w)
	for _, stage := range stages {
		s = stage.apply(s)
		if visit != nil {
			visit(stage.name, s)
		}
		if stage == step1a && invariants.contains(string(s.word)) {
			return s, true
		}
	}
	return s, false
}

// CacheLen returns the number of cached stems (0 if caching is disabled).
func (s *Stemmer) CacheLen() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.Len()
}

// ClearCache empties the stem cache.
func (s *Stemmer) ClearCache() {
	if s.cache != nil {
		s.cache.Purge()
	}
}

// CacheEnabled returns true if caching is enabled.
func (s *Stemmer) CacheEnabled() bool {
	return s.cache != nil
}

// Trace is the state of a word after one stage of the pipeline.
type Trace struct {
	Stage string `json:"stage"`
	Word  string `json:"word"`
	R1    string `json:"r1"`
	R2    string `json:"r2"`
}

// Explain stems word like Stem and records every step. Words that bypass
// the rules yield a single "exception" entry.
func (s *Stemmer) Explain(word string) []Trace {
	if stem, ok := s.exception(word); ok {
		return []Trace{{Stage: "exception", Word: stem}}
	}
	w := normalize(word)
	st := newWordState(w)
	steps := []Trace{traceOf("regions", st)}
	run(w, func(stage string, st wordState) {
		steps = append(steps, traceOf(stage, st))
	})
	return steps
}

func traceOf(stage string, s wordState) Trace {
	return Trace{
		Stage: stage,
		Word:  s.String(),
		R1:    unmarkY(s.r1()),
		R2:    unmarkY(s.r2()),
	}
}

var (
	defaultOnce    sync.Once
	defaultStemmer *Stemmer
)

// Stem stems word with a shared stemmer using the Snowball stopword list.
func Stem(word string) string {
	defaultOnce.Do(func() {
		s, err := New(Config{})
		if err != nil {
			tracer().Errorf("default stemmer without stopwords: %v", err)
			s = &Stemmer{stopwords: emptySet{}}
		}
		defaultStemmer = s
	})
	return defaultStemmer.Stem(word)
}
