package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/blevesearch/snowballstem"
	snowballenglish "github.com/blevesearch/snowballstem/english"
	"github.com/kljensen/snowball"

	"github.com/kerem-kaynak/english-stemmer/pkg/logging"
	"github.com/kerem-kaynak/english-stemmer/pkg/porter2"
	"github.com/kerem-kaynak/english-stemmer/pkg/stopwords"
	"github.com/kerem-kaynak/english-stemmer/pkg/tokenizer"
)

const (
	iterations = 100000
	warmup     = 1000
	boxWidth   = 62

	// ANSI color codes
	colorReset  = "\033[0m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

var line = strings.Repeat("─", boxWidth)

func main() {
	logging.Install("Error", os.Stderr)

	fmt.Print("Loading stemmer and tokenizer... ")
	start := time.Now()
	stemmer, err := porter2.New(porter2.Config{Cache: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	tok, err := tokenizer.NewTokenizer(tokenizer.Config{
		Cache:             true,
		LowercaseOriginal: true,
		Normalizers:       tokenizer.DefaultNormalizerConfig(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	set, err := stopwords.Load(stopwords.Snowball)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("done (%d stopwords in %v)\n", set.Len(), time.Since(start).Round(time.Millisecond))
	fmt.Printf("Iterations: %d (warmup: %d)\n", iterations, warmup)
	fmt.Println("Reference: 1 second = 1,000,000,000 ns")
	fmt.Println()

	// Test data
	singleWord := "generously"
	irregular := "skies"
	sentence := "The runners were running quickly through the generously planted gardens"

	printHeader("FULL PIPELINE THROUGHPUT")
	bench("Single word", func() { tok.Tokenize(singleWord) })
	bench("Sentence (11 words)", func() { tok.Tokenize(sentence) })
	printFooter()
	fmt.Println()

	printHeader("STEMMER")
	stemmer.ClearCache()
	stemmer.Stem(singleWord)
	bench("Stem (cache hit)", func() {
		stemmer.Stem(singleWord)
	})
	bench("Stem (cache miss)", func() {
		stemmer.ClearCache()
		stemmer.Stem(singleWord)
	})
	bench("Stem (irregular)", func() {
		stemmer.ClearCache()
		stemmer.Stem(irregular)
	})
	bench("Stopword lookup", func() {
		set.Contains("having")
	})
	bench("Explain", func() {
		stemmer.Explain(singleWord)
	})
	printFooter()
	fmt.Println()

	printHeader("REFERENCE ENGINES")
	bench("porter2 (uncached)", func() {
		stemmer.ClearCache()
		stemmer.Stem(singleWord)
	})
	bench("kljensen/snowball", func() {
		snowball.Stem(singleWord, "english", true)
	})
	bench("blevesearch/snowballstem", func() {
		env := snowballstem.NewEnv(singleWord)
		snowballenglish.Stem(env)
	})
	printFooter()
	fmt.Println()

	printHeader("NORMALIZER STEPS BREAKDOWN")
	bench("NFKD decompose", func() {
		tokenizer.NFKDDecompose("Café")
	})
	bench("Remove control chars", func() {
		tokenizer.RemoveControlChars("Generously")
	})
	bench("Lowercase", func() {
		tokenizer.Lowercase("Generously")
	})
	bench("Normalize quotes", func() {
		tokenizer.NormalizeQuotes("\u201Ccat\u2019s\u201D")
	})
	bench("Expand ligatures", func() {
		tokenizer.ExpandLigatures("Æsthetic")
	})
	bench("Remove combining marks", func() {
		tokenizer.RemoveCombiningMarks("Cafe\u0301")
	})
	bench("Stem English", func() {
		tokenizer.StemEnglish("generously")
	})
	printFooter()
}

// bench times fn and prints one row of the current box.
func bench(name string, fn func()) {
	for i := 0; i < warmup; i++ {
		fn()
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		fn()
	}
	elapsed := time.Since(start)

	opsPerSec := float64(iterations) / elapsed.Seconds()
	nsPerOp := float64(elapsed.Nanoseconds()) / float64(iterations)

	if len(name) > 26 {
		name = name[:26]
	}

	// pad the uncolored row, then reuse its padding for the colored one
	plain := fmt.Sprintf("  %-26s %10.0f ops/sec %8.0f ns", name, opsPerSec, nsPerOp)
	pad := len(padLine(plain)) - len(plain)
	colored := fmt.Sprintf("  %-26s %s%10.0f%s ops/sec %s%8.0f%s ns%s",
		name,
		colorGreen, opsPerSec, colorReset,
		colorYellow, nsPerOp, colorReset,
		strings.Repeat(" ", max(pad, 0)))

	fmt.Println(colorDim + "│" + colorReset + colored + colorDim + "│" + colorReset)
}

func padLine(content string) string {
	if len(content) >= boxWidth {
		return content[:boxWidth]
	}
	return content + strings.Repeat(" ", boxWidth-len(content))
}

func printHeader(title string) {
	fmt.Println(colorDim + "┌" + line + "┐" + colorReset)
	printTitleRow("  " + title)
	fmt.Println(colorDim + "├" + line + "┤" + colorReset)
}

func printFooter() {
	fmt.Println(colorDim + "└" + line + "┘" + colorReset)
}

func printTitleRow(content string) {
	fmt.Println(colorDim + "│" + colorReset + colorCyan + padLine(content) + colorReset + colorDim + "│" + colorReset)
}
