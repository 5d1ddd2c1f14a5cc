// Package stopwords provides word sets that a stemmer leaves untouched.
//
// Sets are immutable and backed by an FST. They come from corpora embedded
// in the package (see Load), or from plain word list files that can be
// edited and persisted next to their FST (see List).
package stopwords

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'stopwords'
func tracer() tracing.Trace {
	return tracing.Select("stopwords")
}
