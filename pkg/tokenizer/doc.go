// Package tokenizer splits English text into words and reduces them to
// index terms: each word is normalized (Unicode folding, lowercasing,
// quote and ligature cleanup) and stemmed with package porter2.
package tokenizer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tokenizer'
func tracer() tracing.Trace {
	return tracing.Select("tokenizer")
}
