// Package readability computes the standard readability formulas from
// sentence, word and syllable counts.
package readability

import (
	"math"

	"textmetrics/internal/syllable"
	"textmetrics/internal/tokenize"
)

type Scores struct {
	SyllableCount       int     `json:"syllable_count"`
	PolysyllableCount   int     `json:"polysyllable_count"`
	AvgSentenceLength   float64 `json:"avg_sentence_length"`
	AvgSyllablesPerWord float64 `json:"avg_syllables_per_word"`
	FleschReadingEase   float64 `json:"flesch_reading_ease"`
	FleschKincaidGrade  float64 `json:"flesch_kincaid_grade"`
	SMOGIndex           float64 `json:"smog_index"`
}

// Score derives readability metrics for the document. Output ranges are not
// clamped: negative grades and ease values above 100 are valid and surfaced
// as-is. A document with no words scores zero everywhere rather than
// producing formula constants from empty denominators.
func Score(doc *tokenize.Document) Scores {
	var s Scores
	wordCount := 0
	for _, sent := range doc.Sentences {
		for _, tok := range sent.Tokens {
			if !tok.IsWord() {
				continue
			}
			wordCount++
			n := syllable.Count(tok.Norm)
			s.SyllableCount += n
			if n >= 3 {
				s.PolysyllableCount++
			}
		}
	}
	if wordCount == 0 {
		return s
	}

	sentences := doc.SentenceCount()
	if sentences < 1 {
		sentences = 1
	}
	s.AvgSentenceLength = float64(wordCount) / float64(sentences)
	s.AvgSyllablesPerWord = float64(s.SyllableCount) / float64(wordCount)

	s.FleschReadingEase = 206.835 - 1.015*s.AvgSentenceLength - 84.6*s.AvgSyllablesPerWord
	s.FleschKincaidGrade = 0.39*s.AvgSentenceLength + 11.8*s.AvgSyllablesPerWord - 15.59
	s.SMOGIndex = 1.043*math.Sqrt(float64(s.PolysyllableCount)*30.0/float64(sentences)) + 3.1291
	return s
}
