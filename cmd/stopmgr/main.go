package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kerem-kaynak/english-stemmer/pkg/logging"
	"github.com/kerem-kaynak/english-stemmer/pkg/stopwords"
)

// edit is a List mutation that reports whether the list changed.
type edit func(l *stopwords.List, word string) (bool, error)

var edits = map[string]struct {
	apply      edit
	done, noop string
}{
	"add":    {(*stopwords.List).Add, "Added", "Already present"},
	"remove": {(*stopwords.List).Remove, "Removed", "Not in list"},
}

func main() {
	traceLevel := flag.String("trace", "Error", "trace level (Debug, Info, Error)")
	flag.Usage = printUsage
	flag.Parse()
	logging.Install(*traceLevel, os.Stderr)

	args := flag.Args()
	if len(args) < 2 {
		printUsage()
		os.Exit(1)
	}
	listPath, command, words := args[0], args[1], args[2:]

	list, err := stopwords.OpenList(listPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading stopword list: %v\n", err)
		os.Exit(1)
	}
	defer list.Close()

	if e, ok := edits[command]; ok {
		if len(words) == 0 {
			fmt.Printf("Error: %s requires at least one word\n", command)
			os.Exit(1)
		}
		changed := 0
		for _, word := range words {
			changedWord, err := e.apply(list, word)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %s '%s': %v\n", command, word, err)
				os.Exit(1)
			}
			if changedWord {
				changed++
				fmt.Printf("%s: %s\n", e.done, word)
			} else {
				fmt.Printf("%s: %s\n", e.noop, word)
			}
		}
		fmt.Printf("Changed: %d, total words: %d\n", changed, list.WordCount())
		return
	}

	switch command {
	case "contains":
		if len(words) == 0 {
			fmt.Println("Error: contains requires a word")
			os.Exit(1)
		}
		missing := 0
		for _, word := range words {
			if list.Contains(word) {
				fmt.Printf("'%s' is a stopword\n", word)
			} else {
				fmt.Printf("'%s' is not a stopword\n", word)
				missing++
			}
		}
		if missing > 0 {
			os.Exit(1)
		}

	case "rebuild":
		if err := list.Rebuild(); err != nil {
			fmt.Fprintf(os.Stderr, "Error rebuilding FST: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("FST rebuilt. Total words: %d\n", list.WordCount())

	case "stats":
		printStats(listPath, list)

	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// printStats compares the list with the embedded Snowball corpus.
func printStats(path string, list *stopwords.List) {
	fmt.Printf("Stopword list: %s\n", path)
	fmt.Printf("Word count: %d\n", list.WordCount())

	embedded, err := stopwords.Load(stopwords.Snowball)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s corpus: %v\n", stopwords.Snowball, err)
		return
	}
	own, err := list.Set()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading list: %v\n", err)
		return
	}
	shared := 0
	for _, w := range own.Words() {
		if embedded.Contains(w) {
			shared++
		}
	}
	fmt.Printf("Shared with %s: %d of %d\n", stopwords.Snowball, shared, embedded.Len())
	fmt.Printf("Only in list: %d\n", own.Len()-shared)
}

func printUsage() {
	fmt.Println("Usage: stopmgr [-trace level] <list.txt> <command> [args...]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  add <word> [word...]      Add stopwords")
	fmt.Println("  remove <word> [word...]   Remove stopwords")
	fmt.Println("  contains <word> [word...] Check if words are stopwords")
	fmt.Println("  rebuild                   Rebuild FST from text file")
	fmt.Println("  stats                     Show list statistics")
}
