/*
Package logging routes the tracers of the library packages to the Go
standard logger.

The library packages trace through schuko's tracing.Select, which hands out
no-op tracers until a selector is installed. Programs call Install once at
startup:

	logging.Install("Info", os.Stderr)
*/
package logging

import (
	"io"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// Keys are the tracer keys used by the library packages.
var Keys = []string{"porter2", "stopwords", "tokenizer"}

// Selector hands out one gologadapter tracer per key. All tracers share a
// level and an output.
type Selector struct {
	mu      sync.Mutex
	level   tracing.TraceLevel
	out     io.Writer
	tracers map[string]tracing.Trace
}

// NewSelector creates a selector tracing at level to out.
func NewSelector(level tracing.TraceLevel, out io.Writer) *Selector {
	return &Selector{
		level:   level,
		out:     out,
		tracers: make(map[string]tracing.Trace, len(Keys)),
	}
}

// Select is part of interface tracing.TraceSelector.
func (s *Selector) Select(key string) tracing.Trace {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tracers[key]
	if !ok {
		t = gologadapter.New()
		t.SetOutput(s.out)
		t.SetTraceLevel(s.level)
		s.tracers[key] = t
	}
	return t
}

// SetLevel changes the level of every tracer, including ones handed out
// later.
func (s *Selector) SetLevel(level tracing.TraceLevel) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.level = level
	for _, t := range s.tracers {
		t.SetTraceLevel(level)
	}
}

// Level returns the current trace level.
func (s *Selector) Level() tracing.TraceLevel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// Install makes a new selector the global one. level is one of "Debug",
// "Info" or "Error"; unknown names mean Info.
func Install(level string, out io.Writer) *Selector {
	sel := NewSelector(tracing.TraceLevelFromString(level), out)
	for _, key := range Keys {
		sel.Select(key)
	}
	tracing.SetTraceSelector(sel)
	return sel
}

// Uninstall restores the no-op default.
func Uninstall() {
	tracing.SetTraceSelector(nil)
}
