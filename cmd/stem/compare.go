package main

import (
	"github.com/blevesearch/snowballstem"
	snowballenglish "github.com/blevesearch/snowballstem/english"
	"github.com/kljensen/snowball"

	"github.com/kerem-kaynak/english-stemmer/pkg/porter2"
)

// comparison is the stem of one word from each engine.
type comparison struct {
	Porter2      string `json:"porter2"`
	Kljensen     string `json:"kljensen"`
	Snowballstem string `json:"snowballstem"`
	Stopword     bool   `json:"stopword,omitempty"`
	Agree        bool   `json:"agree"`
}

// compare stems word with every engine. The reference engines stem
// stopwords, so a stopword of s agrees whenever s keeps it unchanged.
func compare(s *porter2.Stemmer, word string) comparison {
	c := comparison{
		Porter2:      s.Stem(word),
		Kljensen:     stemKljensen(word),
		Snowballstem: stemSnowballstem(word),
		Stopword:     s.IsStopword(word),
	}
	if c.Stopword {
		c.Agree = c.Porter2 == word
		return c
	}
	c.Agree = c.Porter2 == c.Kljensen && c.Porter2 == c.Snowballstem
	return c
}

func stemKljensen(word string) string {
	stemmed, err := snowball.Stem(word, "english", true)
	if err != nil {
		return ""
	}
	return stemmed
}

func stemSnowballstem(word string) string {
	env := snowballstem.NewEnv(word)
	snowballenglish.Stem(env)
	return env.Current()
}
