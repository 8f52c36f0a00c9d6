// Package passive flags passive-voice constructions: a "to be" verb form
// followed by a past participle within a short lookahead window.
package passive

import "textmetrics/internal/tokenize"

// How far past the be-verb the participle may sit ("was quickly thrown",
// "was not being driven").
const lookahead = 3

type Result struct {
	PassiveSentenceCount int     `json:"passive_sentence_count"`
	PassiveRatio         float64 `json:"passive_ratio"`
}

// Detect counts sentences containing at least one passive construction.
// A sentence is flagged at most once no matter how many matches it holds.
func Detect(doc *tokenize.Document) Result {
	var r Result
	for _, sent := range doc.Sentences {
		if sentenceIsPassive(sent.Tokens) {
			r.PassiveSentenceCount++
		}
	}
	if n := doc.SentenceCount(); n > 0 {
		r.PassiveRatio = float64(r.PassiveSentenceCount) / float64(n)
	}
	return r
}

func sentenceIsPassive(tokens []tokenize.Token) bool {
	for i, tok := range tokens {
		if tok.Tag != tokenize.VerbBe {
			continue
		}
		seen := 0
		for j := i + 1; j < len(tokens) && seen < lookahead; j++ {
			switch tokens[j].Tag {
			case tokenize.Participle:
				return true
			case tokenize.Punct:
				// Clause boundary ends the window.
				seen = lookahead
			case tokenize.Adv, tokenize.VerbBe:
				// Intervening adverbs and chained be-forms don't count
				// against the window.
			default:
				seen++
			}
		}
	}
	return false
}
