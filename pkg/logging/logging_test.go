package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"

	"github.com/kerem-kaynak/english-stemmer/pkg/porter2"
)

func TestInstallRoutesLibraryTracers(t *testing.T) {
	var buf bytes.Buffer
	Install("Info", &buf)
	defer Uninstall()

	if _, err := porter2.New(porter2.Config{Stopwords: porter2.NoStopwords}); err != nil {
		t.Fatalf("porter2.New() error: %v", err)
	}
	if !strings.Contains(buf.String(), "stemmer ready") {
		t.Errorf("porter2 trace missing from output %q", buf.String())
	}
}

func TestInstallLevel(t *testing.T) {
	var buf bytes.Buffer
	sel := Install("Error", &buf)
	defer Uninstall()

	if _, err := porter2.New(porter2.Config{Stopwords: porter2.NoStopwords}); err != nil {
		t.Fatalf("porter2.New() error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Info trace written at Error level: %q", buf.String())
	}

	sel.SetLevel(tracing.LevelDebug)
	tracing.Select("stopwords").Debugf("loading %s", "snowball")
	if !strings.Contains(buf.String(), "loading snowball") {
		t.Errorf("Debug trace missing after SetLevel: %q", buf.String())
	}
	if sel.Level() != tracing.LevelDebug {
		t.Errorf("Level() = %v, want Debug", sel.Level())
	}
}

func TestSelectorReusesTracers(t *testing.T) {
	sel := NewSelector(tracing.LevelError, &bytes.Buffer{})
	if sel.Select("porter2") != sel.Select("porter2") {
		t.Error("Select() returned a new tracer for a known key")
	}
	if sel.Select("porter2") == sel.Select("tokenizer") {
		t.Error("Select() shared a tracer between keys")
	}
}

func TestUninstall(t *testing.T) {
	var buf bytes.Buffer
	Install("Debug", &buf)
	Uninstall()

	tracing.Select("porter2").Errorf("dropped")
	if buf.Len() != 0 {
		t.Errorf("trace written after Uninstall: %q", buf.String())
	}
}
