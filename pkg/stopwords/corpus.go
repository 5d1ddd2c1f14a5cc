package stopwords

import (
	"bufio"
	"embed"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Snowball is the stopword list published with the Snowball English stemmer.
const Snowball = "snowball"

// ErrUnknownCorpus is returned by Load for a corpus that is not embedded.
var ErrUnknownCorpus = errors.New("unknown stopword corpus")

// Source returns the stopword set for a corpus identifier.
type Source func(corpus string) (*Set, error)

//go:embed corpora/*.txt
var corpora embed.FS

var (
	loadedMu sync.Mutex
	loaded   = map[string]*Set{}
)

// Load returns the embedded corpus with the given identifier. Sets are built
// on first use and shared afterwards.
func Load(corpus string) (*Set, error) {
	loadedMu.Lock()
	defer loadedMu.Unlock()

	if set, ok := loaded[corpus]; ok {
		return set, nil
	}
	f, err := corpora.Open("corpora/" + corpus + ".txt")
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownCorpus, "corpus %q", corpus)
	}
	defer f.Close()

	words, err := ParseList(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading corpus %q", corpus)
	}
	set, err := NewSet(corpus, words)
	if err != nil {
		return nil, err
	}
	tracer().Infof("loaded stopword corpus %s: %d words", corpus, set.Len())
	loaded[corpus] = set
	return set, nil
}

// Corpora lists the identifiers accepted by Load.
func Corpora() []string {
	entries, err := corpora.ReadDir("corpora")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(names)
	return names
}

// ParseList reads one word per line. Text after '|' or '#' is a comment,
// surrounding space is trimmed, words are lowercased and blank lines skipped.
func ParseList(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexAny(line, "|#"); i >= 0 {
			line = line[:i]
		}
		word := strings.ToLower(strings.TrimSpace(line))
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	return words, scanner.Err()
}

// FileSource returns a Source that ignores the corpus identifier and reads
// the word list at path instead.
func FileSource(path string) Source {
	return func(string) (*Set, error) {
		return LoadFile(path)
	}
}
