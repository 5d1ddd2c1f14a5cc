package tokenizer

import (
	"github.com/pkg/errors"

	"github.com/kerem-kaynak/english-stemmer/pkg/porter2"
)

// Config configures a Tokenizer.
type Config struct {
	Cache             bool // memoize stems
	CacheSize         int  // porter2.DefaultCacheSize if <= 0
	LowercaseOriginal bool // emit the lowercased word next to its stem
	FilterStopwords   bool // drop words in the stopword set
	Stopwords         porter2.StopwordSource
	Normalizers       NormalizerConfig
}

// Tokenizer turns English text into deduplicated index terms.
type Tokenizer struct {
	stemmer    *porter2.Stemmer
	normalizer *Normalizer
	config     Config
}

// NewTokenizer creates a tokenizer. The stemmer used by the StemEnglish step
// is private to the tokenizer and shares its stopword source.
func NewTokenizer(cfg Config) (*Tokenizer, error) {
	stemmer, err := porter2.New(porter2.Config{
		Stopwords: cfg.Stopwords,
		Cache:     cfg.Cache,
		CacheSize: cfg.CacheSize,
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating tokenizer")
	}
	t := &Tokenizer{
		stemmer:    stemmer,
		normalizer: newNormalizer(cfg.Normalizers, stemmer.Stem),
		config:     cfg,
	}
	tracer().Infof("tokenizer ready: %d normalizer steps, filter stopwords=%v",
		t.normalizer.Len(), cfg.FilterStopwords)
	return t, nil
}

// Tokenize processes input text and returns deduplicated tokens in order of
// first appearance.
func (t *Tokenizer) Tokenize(text string) []string {
	rawTokens := SplitWords(text)

	resultSet := make(map[string]struct{})
	var results []string
	add := func(tok string) {
		if tok == "" {
			return
		}
		if _, exists := resultSet[tok]; !exists {
			resultSet[tok] = struct{}{}
			results = append(results, tok)
		}
	}

	for _, raw := range rawTokens {
		if raw.Type != TokenWord || !hasWordRune(raw.Text) {
			continue
		}

		original := t.normalizer.LowercaseOnly(raw.Text)
		if t.config.FilterStopwords && t.stemmer.IsStopword(NormalizeQuotes(original)) {
			tracer().Debugf("dropping stopword %q", original)
			continue
		}
		if t.config.LowercaseOriginal {
			add(original)
		}
		add(t.normalizer.Normalize(raw.Text))
	}

	return results
}

// Stem stems a single word with the tokenizer's stemmer, without running
// the rest of the pipeline.
func (t *Tokenizer) Stem(word string) string {
	return t.stemmer.Stem(word)
}

// Normalize runs the full normalizer pipeline on a single word.
func (t *Tokenizer) Normalize(word string) string {
	return t.normalizer.Normalize(word)
}

// Stemmer returns the stemmer behind the StemEnglish step.
func (t *Tokenizer) Stemmer() *porter2.Stemmer {
	return t.stemmer
}

// CacheSize returns the number of cached stems.
func (t *Tokenizer) CacheSize() int {
	return t.stemmer.CacheLen()
}

// ClearCache clears the stem cache.
func (t *Tokenizer) ClearCache() {
	t.stemmer.ClearCache()
}

// CacheEnabled returns true if caching is enabled.
func (t *Tokenizer) CacheEnabled() bool {
	return t.stemmer.CacheEnabled()
}
