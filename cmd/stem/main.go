package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/kerem-kaynak/english-stemmer/pkg/porter2"
	"github.com/kerem-kaynak/english-stemmer/pkg/tokenizer"
)

func main() {
	configFile := flag.String("conf", "", "config file (INI)")
	stopwordList := flag.String("stopwords", "", "stopwords: snowball, none, or a word list file")
	textMode := flag.Bool("text", false, "tokenize the input as text instead of stemming words")
	compareMode := flag.Bool("compare", false, "show the stems of the reference Snowball engines")
	explainMode := flag.Bool("explain", false, "show the word after every stage")
	traceLevel := flag.String("trace", "", "trace level (Debug, Info, Error)")
	flag.Usage = printUsage
	flag.Parse()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *stopwordList != "" {
		cfg.Stopwords = *stopwordList
	}
	if *traceLevel != "" {
		cfg.TraceLevel = *traceLevel
	}
	cfg.setupTracing(os.Stderr)

	var run func(input string) interface{}
	if *textMode {
		tok, err := tokenizer.NewTokenizer(cfg.tokenizerConfig())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		run = func(input string) interface{} { return tok.Tokenize(input) }
	} else {
		stemmer, err := porter2.New(cfg.stemmerConfig())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		run = func(input string) interface{} {
			return stemWords(stemmer, strings.Fields(input), *compareMode, *explainMode)
		}
	}

	// If input provided as arguments, process and exit
	if flag.NArg() > 0 {
		output, _ := json.Marshal(run(strings.Join(flag.Args(), " ")))
		fmt.Println(string(output))
		return
	}

	// Interactive mode
	fmt.Println("English Stemmer (interactive mode)")
	fmt.Printf("Stopwords: %s\n", cfg.Stopwords)
	fmt.Println("Type words or a sentence, press Enter to stem. Ctrl+C to exit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		output, _ := json.Marshal(run(text))
		fmt.Printf("  %s\n\n", output)
	}
}

// stemWords maps every word to its stem, its comparison with the reference
// engines, or its stage-by-stage trace.
func stemWords(s *porter2.Stemmer, words []string, compareMode, explainMode bool) map[string]interface{} {
	result := make(map[string]interface{}, len(words))
	for _, w := range words {
		switch {
		case explainMode:
			result[w] = s.Explain(w)
		case compareMode:
			result[w] = compare(s, w)
		default:
			result[w] = s.Stem(w)
		}
	}
	return result
}

func printUsage() {
	fmt.Println("Usage: stem [flags] [word...]")
	fmt.Println("       stem [flags]              (interactive mode)")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
}
