// Package sentiment scores aggregate polarity and subjectivity against a
// fixed word lexicon. The lexicon ships embedded in the binary, is loaded
// once, and is never mutated afterwards, so concurrent analyses share it
// without locking.
package sentiment

import (
	_ "embed"
	"encoding/json"
	"sync"

	"textmetrics/internal/tokenize"
)

//go:embed lexicon.json
var lexiconJSON []byte

// Entry holds a word's fixed sentiment values: polarity in [-1, 1],
// subjectivity in [0, 1].
type Entry struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// Lexicon maps normalized word forms to sentiment entries. Read-only after
// construction.
type Lexicon struct {
	entries map[string]Entry
}

// NewLexicon builds a lexicon from an explicit table. Tests use this to
// substitute a small fixed vocabulary.
func NewLexicon(entries map[string]Entry) *Lexicon {
	copied := make(map[string]Entry, len(entries))
	for w, e := range entries {
		copied[w] = e
	}
	return &Lexicon{entries: copied}
}

var (
	defaultOnce    sync.Once
	defaultLexicon *Lexicon
)

// Default returns the embedded lexicon, parsed once per process.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		entries := map[string]Entry{}
		if err := json.Unmarshal(lexiconJSON, &entries); err != nil {
			panic("sentiment: embedded lexicon is malformed: " + err.Error())
		}
		defaultLexicon = &Lexicon{entries: entries}
	})
	return defaultLexicon
}

// Len reports the number of lexicon entries.
func (l *Lexicon) Len() int {
	return len(l.entries)
}

// Lookup returns the entry for a normalized word form.
func (l *Lexicon) Lookup(word string) (Entry, bool) {
	e, ok := l.entries[word]
	return e, ok
}

// Words that flip the polarity of the word they precede.
var negations = map[string]struct{}{
	"not": {}, "never": {}, "no": {},
}

type Result struct {
	Polarity     float64 `json:"sentiment_polarity"`
	Subjectivity float64 `json:"sentiment_subjectivity"`
	ScoredWords  int     `json:"scored_word_count"`
}

// Score computes the mean polarity and subjectivity over all word tokens
// found in the lexicon. A negation word immediately before a scored word
// flips that word's polarity; subjectivity is unaffected. Documents where
// nothing scores come back neutral (0, 0), not as an error.
func (l *Lexicon) Score(doc *tokenize.Document) Result {
	var r Result
	sumPolarity := 0.0
	sumSubjectivity := 0.0

	for _, sent := range doc.Sentences {
		prevWord := ""
		for _, tok := range sent.Tokens {
			if !tok.IsWord() {
				continue
			}
			if e, ok := l.entries[tok.Norm]; ok {
				p := e.Polarity
				if _, negated := negations[prevWord]; negated {
					p = -p
				}
				sumPolarity += p
				sumSubjectivity += e.Subjectivity
				r.ScoredWords++
			}
			prevWord = tok.Norm
		}
	}

	if r.ScoredWords > 0 {
		r.Polarity = sumPolarity / float64(r.ScoredWords)
		r.Subjectivity = sumSubjectivity / float64(r.ScoredWords)
	}
	return r
}
