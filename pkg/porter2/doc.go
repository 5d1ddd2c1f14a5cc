/*
Package porter2 stems English words with the Snowball English algorithm,
also known as Porter2.

	http://snowball.tartarus.org/algorithms/english/stemmer.html

A word is first checked against a stopword set and a table of irregular
forms. Words that pass both gates are normalized (apostrophes folded, some
y's marked as consonants), their regions R1 and R2 are computed, and a
fixed pipeline of suffix stages (Step 0 through Step 5) rewrites the end
of the word.

The stemmer expects one lowercase token per call. It does not fold case
or validate its input; mixed case simply misses the exception tables.
All tables are built once and shared, so a Stemmer may be used from many
goroutines.
*/
package porter2

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'porter2'
func tracer() tracing.Trace {
	return tracing.Select("porter2")
}
