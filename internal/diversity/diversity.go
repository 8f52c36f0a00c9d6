// Package diversity computes the type-token ratio over case-folded word
// forms. Punctuation and pure-numeric tokens are excluded from both the
// numerator and the denominator.
package diversity

import "textmetrics/internal/tokenize"

type Result struct {
	LexicalWordCount  int     `json:"lexical_word_count"`
	DistinctWordCount int     `json:"distinct_word_count"`
	TypeTokenRatio    float64 `json:"lexical_diversity_ttr"`
}

func TypeTokenRatio(doc *tokenize.Document) Result {
	var r Result
	seen := map[string]struct{}{}
	for _, sent := range doc.Sentences {
		for _, tok := range sent.Tokens {
			if !tok.IsWord() || tok.IsNumeric() {
				continue
			}
			r.LexicalWordCount++
			seen[tok.Norm] = struct{}{}
		}
	}
	r.DistinctWordCount = len(seen)
	if r.LexicalWordCount > 0 {
		r.TypeTokenRatio = float64(r.DistinctWordCount) / float64(r.LexicalWordCount)
	}
	return r
}
