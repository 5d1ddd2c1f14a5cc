package stopwords

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTestList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "list.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write list: %v", err)
	}
	return path
}

func TestOpenList(t *testing.T) {
	path := writeTestList(t, "| custom list\nthe\nand\nOf\n")
	l, err := OpenList(path)
	if err != nil {
		t.Fatalf("OpenList() error: %v", err)
	}
	defer l.Close()

	if l.WordCount() != 3 {
		t.Errorf("WordCount() = %d, want 3", l.WordCount())
	}
	for _, w := range []string{"the", "and", "of", "OF"} {
		if !l.Contains(w) {
			t.Errorf("Contains(%q) = false, want true", w)
		}
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(path), "list.fst")); err != nil {
		t.Errorf("FST not written: %v", err)
	}
}

func TestOpenListMissing(t *testing.T) {
	if _, err := OpenList(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("OpenList() on a missing file returned no error")
	}
}

func TestListAddRemove(t *testing.T) {
	path := writeTestList(t, "the\nand\n")
	l, err := OpenList(path)
	if err != nil {
		t.Fatalf("OpenList() error: %v", err)
	}

	if added, err := l.Add("  Thus "); err != nil || !added {
		t.Fatalf("Add(thus) = %v, %v, want true, nil", added, err)
	}
	if !l.Contains("thus") {
		t.Error("Contains(thus) = false after Add")
	}
	if added, err := l.Add("THE"); err != nil || added {
		t.Errorf("Add(THE) = %v, %v, want false, nil for a present word", added, err)
	}
	if _, err := l.Add(" "); err == nil {
		t.Error("Add() of a blank word returned no error")
	}
	if removed, err := l.Remove("and"); err != nil || !removed {
		t.Fatalf("Remove(and) = %v, %v, want true, nil", removed, err)
	}
	if l.Contains("and") {
		t.Error("Contains(and) = true after Remove")
	}
	if removed, err := l.Remove("absent"); err != nil || removed {
		t.Errorf("Remove(absent) = %v, %v, want false, nil", removed, err)
	}
	if l.WordCount() != 2 {
		t.Errorf("WordCount() = %d, want 2", l.WordCount())
	}
	l.Close()

	// Edits are persisted and picked up on reopen.
	reopened, err := OpenList(path)
	if err != nil {
		t.Fatalf("OpenList() after edits error: %v", err)
	}
	defer reopened.Close()
	if reopened.WordCount() != 2 || !reopened.Contains("thus") || reopened.Contains("and") {
		t.Errorf("reopened list has %d words, want [the thus]", reopened.WordCount())
	}
}

func TestListStaleFST(t *testing.T) {
	path := writeTestList(t, "the\nand\n")
	l, err := OpenList(path)
	if err != nil {
		t.Fatalf("OpenList() error: %v", err)
	}
	l.Close()

	// Editing the text file behind the list's back makes the FST stale.
	if err := os.WriteFile(path, []byte("the\nand\nor\n"), 0644); err != nil {
		t.Fatalf("Failed to rewrite list: %v", err)
	}
	l, err = OpenList(path)
	if err != nil {
		t.Fatalf("OpenList() error: %v", err)
	}
	defer l.Close()
	if !l.Contains("or") {
		t.Error("stale FST was not rebuilt")
	}
}

func TestListSet(t *testing.T) {
	path := writeTestList(t, "the\nand\n")
	l, err := OpenList(path)
	if err != nil {
		t.Fatalf("OpenList() error: %v", err)
	}
	defer l.Close()

	set, err := l.Set()
	if err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if set.Len() != 2 || !set.Contains("and") {
		t.Errorf("Set() = %v, want [and the]", set.Words())
	}
	if err := l.Rebuild(); err != nil {
		t.Errorf("Rebuild() error: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeTestList(t, "the | article\nand\n")
	set, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if set.Name() != path || set.Len() != 2 {
		t.Errorf("LoadFile() = %s with %d words", set.Name(), set.Len())
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(path), "list.fst")); !os.IsNotExist(err) {
		t.Error("LoadFile() wrote an FST")
	}

	fromSource, err := FileSource(path)(Snowball)
	if err != nil || !fromSource.Contains("the") {
		t.Errorf("FileSource() = %v, %v", fromSource, err)
	}
}
