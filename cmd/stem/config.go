package main

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"

	"github.com/kerem-kaynak/english-stemmer/pkg/logging"
	"github.com/kerem-kaynak/english-stemmer/pkg/porter2"
	"github.com/kerem-kaynak/english-stemmer/pkg/stopwords"
	"github.com/kerem-kaynak/english-stemmer/pkg/tokenizer"
)

// config is the merged result of the INI file and the command line.
type config struct {
	Stopwords  string // "snowball", "none" or a word list file
	Cache      bool
	CacheSize  int
	Tokenizer  tokenizer.Config
	TraceLevel string
}

// loadConfig reads path, or stem.ini in the working directory when path is
// empty. No file at all yields the defaults.
func loadConfig(path string) (config, error) {
	var cfg *ini.File
	var err error
	if path != "" {
		cfg, err = ini.Load(path)
	} else {
		cfg, err = ini.LooseLoad("stem.ini")
	}
	if err != nil {
		return config{}, errors.Wrap(err, "loading config")
	}
	return parseConfig(cfg), nil
}

func parseConfig(f *ini.File) config {
	stemmer := f.Section("stemmer")
	tok := f.Section("tokenizer")
	defaults := tokenizer.DefaultNormalizerConfig()

	c := config{
		Stopwords: stemmer.Key("stopwords").MustString(stopwords.Snowball),
		Cache:     stemmer.Key("cache").MustBool(true),
		CacheSize: stemmer.Key("cache_size").MustInt(porter2.DefaultCacheSize),
		Tokenizer: tokenizer.Config{
			LowercaseOriginal: tok.Key("lowercase_original").MustBool(false),
			FilterStopwords:   tok.Key("filter_stopwords").MustBool(false),
			Normalizers: tokenizer.NormalizerConfig{
				NFKDDecompose:        tok.Key("nfkd_decompose").MustBool(defaults.NFKDDecompose),
				RemoveControlChars:   tok.Key("remove_control_chars").MustBool(defaults.RemoveControlChars),
				Lowercase:            tok.Key("lowercase").MustBool(defaults.Lowercase),
				NormalizeQuotes:      tok.Key("normalize_quotes").MustBool(defaults.NormalizeQuotes),
				ExpandLigatures:      tok.Key("expand_ligatures").MustBool(defaults.ExpandLigatures),
				RemoveCombiningMarks: tok.Key("remove_combining_marks").MustBool(defaults.RemoveCombiningMarks),
				StemEnglish:          tok.Key("stem_english").MustBool(defaults.StemEnglish),
			},
		},
		TraceLevel: f.Section("trace").Key("level").MustString("Error"),
	}
	return c
}

// stopwordSource maps the stopwords setting to a source.
func (c config) stopwordSource() porter2.StopwordSource {
	switch c.Stopwords {
	case "", stopwords.Snowball:
		return porter2.SnowballStopwords
	case "none":
		return porter2.NoStopwords
	}
	return porter2.FromSource(stopwords.FileSource(c.Stopwords))
}

func (c config) stemmerConfig() porter2.Config {
	return porter2.Config{
		Stopwords: c.stopwordSource(),
		Cache:     c.Cache,
		CacheSize: c.CacheSize,
	}
}

func (c config) tokenizerConfig() tokenizer.Config {
	tc := c.Tokenizer
	tc.Stopwords = c.stopwordSource()
	tc.Cache = c.Cache
	tc.CacheSize = c.CacheSize
	return tc
}

// setupTracing routes the library tracers to out at the configured level.
func (c config) setupTracing(out io.Writer) *logging.Selector {
	return logging.Install(c.TraceLevel, out)
}
