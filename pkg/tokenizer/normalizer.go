package tokenizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/kerem-kaynak/english-stemmer/pkg/porter2"
)

// NormalizerFunc defines a single normalization step.
type NormalizerFunc func(string) string

// Normalizer applies a configurable pipeline of normalization steps.
type Normalizer struct {
	steps []NormalizerFunc
}

// NormalizerConfig selects the steps of a pipeline. Steps run in the order
// of the fields.
type NormalizerConfig struct {
	NFKDDecompose        bool
	RemoveControlChars   bool
	Lowercase            bool
	NormalizeQuotes      bool
	ExpandLigatures      bool
	RemoveCombiningMarks bool
	StemEnglish          bool
}

// DefaultNormalizerConfig enables every step.
func DefaultNormalizerConfig() NormalizerConfig {
	return NormalizerConfig{
		NFKDDecompose:        true,
		RemoveControlChars:   true,
		Lowercase:            true,
		NormalizeQuotes:      true,
		ExpandLigatures:      true,
		RemoveCombiningMarks: true,
		StemEnglish:          true,
	}
}

// NewNormalizer creates a normalizer with the default pipeline.
func NewNormalizer() *Normalizer {
	return NewNormalizerFromConfig(DefaultNormalizerConfig())
}

// NewNormalizerWithSteps creates a normalizer with a custom pipeline.
func NewNormalizerWithSteps(steps ...NormalizerFunc) *Normalizer {
	return &Normalizer{steps: steps}
}

// NewNormalizerFromConfig creates a normalizer running the enabled steps.
// Stemming uses the shared porter2 stemmer.
func NewNormalizerFromConfig(cfg NormalizerConfig) *Normalizer {
	return newNormalizer(cfg, StemEnglish)
}

func newNormalizer(cfg NormalizerConfig, stem NormalizerFunc) *Normalizer {
	var steps []NormalizerFunc
	add := func(enabled bool, step NormalizerFunc) {
		if enabled {
			steps = append(steps, step)
		}
	}
	add(cfg.NFKDDecompose, NFKDDecompose)
	add(cfg.RemoveControlChars, RemoveControlChars)
	add(cfg.Lowercase, Lowercase)
	add(cfg.NormalizeQuotes, NormalizeQuotes)
	add(cfg.ExpandLigatures, ExpandLigatures)
	add(cfg.RemoveCombiningMarks, RemoveCombiningMarks)
	add(cfg.StemEnglish, stem)
	tracer().Debugf("normalizer with %d steps", len(steps))
	return &Normalizer{steps: steps}
}

// Normalize applies all configured steps in order.
func (n *Normalizer) Normalize(s string) string {
	for _, step := range n.steps {
		s = step(s)
	}
	return s
}

// Len returns the number of steps in the pipeline.
func (n *Normalizer) Len() int {
	return len(n.steps)
}

// LowercaseOnly lowercases without other transformations.
func (n *Normalizer) LowercaseOnly(s string) string {
	return strings.ToLower(s)
}

// NFKDDecompose applies Unicode NFKD normalization.
// Decomposes é → e + combining acute, ﬁ → fi, etc.
func NFKDDecompose(s string) string {
	return norm.NFKD.String(s)
}

func apply(t transform.Transformer, s string) string {
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// RemoveControlChars removes Unicode control characters.
func RemoveControlChars(s string) string {
	return apply(runes.Remove(runes.Predicate(unicode.IsControl)), s)
}

// Lowercase converts to lowercase with Unicode case mapping.
func Lowercase(s string) string {
	// a Caser keeps state, so each call gets its own
	return cases.Lower(language.Und).String(s)
}

var quotes = runes.Map(func(r rune) rune {
	switch r {
	case '“', '”', '„', '«', '»':
		return '"'
	case '‘', '’', '‚', '‛', '‹', '›':
		return '\''
	}
	return r
})

// NormalizeQuotes converts typographic quotes to ASCII. Single quotes become
// apostrophes, which the stemmer treats as possessive markers.
func NormalizeQuotes(s string) string {
	return apply(quotes, s)
}

var ligatures = strings.NewReplacer(
	"æ", "ae", "Æ", "ae",
	"œ", "oe", "Œ", "oe",
)

// ExpandLigatures expands æ→ae, œ→oe. NFKD already splits ﬁ, ﬂ and friends.
func ExpandLigatures(s string) string {
	return ligatures.Replace(s)
}

// RemoveCombiningMarks removes Unicode combining characters (category Mn).
// Removes accents after NFKD decomposition.
func RemoveCombiningMarks(s string) string {
	return apply(runes.Remove(runes.In(unicode.Mn)), s)
}

// StemEnglish applies the Porter2 English stemmer.
func StemEnglish(s string) string {
	return porter2.Stem(s)
}
