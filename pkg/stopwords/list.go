package stopwords

import (
	"bufio"
	"bytes"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/blevesearch/vellum"
	"github.com/pkg/errors"
)

// List is an editable stopword list kept in a text file, one word per line,
// with a compiled FST stored next to it (list.txt -> list.fst).
type List struct {
	fst     *vellum.FST
	words   map[string]struct{} // source of truth for edits
	fstPath string
	txtPath string
	mu      sync.RWMutex
}

// OpenList loads the word list at txtPath. An existing FST is reused,
// otherwise one is built and written to disk.
func OpenList(txtPath string) (*List, error) {
	l := &List{
		words:   make(map[string]struct{}, 256),
		fstPath: strings.TrimSuffix(txtPath, ".txt") + ".fst",
		txtPath: txtPath,
	}
	if err := l.loadTextFile(); err != nil {
		return nil, err
	}
	if err := l.loadOrBuildFST(); err != nil {
		return nil, err
	}
	return l, nil
}

// LoadFile reads the word list at path into an immutable Set. No FST file
// is written.
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening stopword list")
	}
	defer f.Close()

	words, err := ParseList(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	set, err := NewSet(path, words)
	if err != nil {
		return nil, err
	}
	tracer().Infof("loaded stopword list %s: %d words", path, set.Len())
	return set, nil
}

func (l *List) loadTextFile() error {
	file, err := os.Open(l.txtPath)
	if err != nil {
		return errors.Wrap(err, "opening stopword list")
	}
	defer file.Close()

	words, err := ParseList(file)
	if err != nil {
		return errors.Wrapf(err, "reading %s", l.txtPath)
	}
	for _, w := range words {
		l.words[w] = struct{}{}
	}
	return nil
}

// loadOrBuildFST opens the FST on disk if it matches the word list,
// otherwise rebuilds it.
func (l *List) loadOrBuildFST() error {
	if fst, err := vellum.Open(l.fstPath); err == nil {
		if fst.Len() == len(l.words) {
			l.fst = fst
			return nil
		}
		tracer().Infof("%s is stale (%d words, list has %d), rebuilding", l.fstPath, fst.Len(), len(l.words))
		fst.Close()
	}
	return l.rebuildFST()
}

// Contains reports whether word is in the list.
func (l *List) Contains(word string) bool {
	lower := strings.ToLower(word)

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.fst == nil {
		return false
	}
	_, exists, _ := l.fst.Get([]byte(lower))
	return exists
}

// Add adds a word and persists the list. It reports false, without touching
// the files, if the word was already present.
func (l *List) Add(word string) (bool, error) {
	lower := strings.ToLower(strings.TrimSpace(word))
	if lower == "" {
		return false, errors.New("empty word")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.words[lower]; ok {
		return false, nil
	}
	l.words[lower] = struct{}{}
	return true, l.rebuildFST()
}

// Remove removes a word and persists the list. It reports false, without
// touching the files, if the word was not present.
func (l *List) Remove(word string) (bool, error) {
	lower := strings.ToLower(strings.TrimSpace(word))

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.words[lower]; !ok {
		return false, nil
	}
	delete(l.words, lower)
	tracer().Debugf("removed %q from %s", lower, l.txtPath)
	return true, l.rebuildFST()
}

// Rebuild rewrites the FST and the text file from the current words.
func (l *List) Rebuild() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rebuildFST()
}

// rebuildFST rebuilds without locking (caller must hold lock).
func (l *List) rebuildFST() error {
	if l.fst != nil {
		l.fst.Close()
		l.fst = nil
	}

	sorted := l.sortedWords()
	var buf bytes.Buffer
	if err := writeFST(&buf, sorted); err != nil {
		return errors.Wrapf(err, "building FST for %s", l.txtPath)
	}
	if err := os.WriteFile(l.fstPath, buf.Bytes(), 0644); err != nil {
		return errors.Wrap(err, "writing FST")
	}

	fst, err := vellum.Open(l.fstPath)
	if err != nil {
		return errors.Wrap(err, "opening FST")
	}
	l.fst = fst

	return l.saveTextFile(sorted)
}

func (l *List) sortedWords() []string {
	sorted := make([]string, 0, len(l.words))
	for w := range l.words {
		sorted = append(sorted, w)
	}
	sort.Strings(sorted)
	return sorted
}

// saveTextFile writes the word set back to the text file. Comments in the
// original file are not preserved.
func (l *List) saveTextFile(sorted []string) error {
	file, err := os.Create(l.txtPath)
	if err != nil {
		return errors.Wrap(err, "creating stopword list")
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, word := range sorted {
		if _, err := w.WriteString(word + "\n"); err != nil {
			return errors.Wrap(err, "writing stopword list")
		}
	}
	return errors.Wrap(w.Flush(), "writing stopword list")
}

// Set returns an immutable snapshot of the list.
func (l *List) Set() (*Set, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return NewSet(l.txtPath, l.sortedWords())
}

// WordCount returns the number of words in the list.
func (l *List) WordCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.words)
}

// Close releases FST resources.
func (l *List) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fst != nil {
		err := l.fst.Close()
		l.fst = nil
		return err
	}
	return nil
}
