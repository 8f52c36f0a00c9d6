package engine

import (
	"textmetrics/internal/diversity"
	"textmetrics/internal/passive"
	"textmetrics/internal/readability"
	"textmetrics/internal/readtime"
	"textmetrics/internal/sentiment"
	"textmetrics/internal/tokenize"
)

// The default scorers. Each one owns a disjoint group of report fields.

type readabilityScorer struct{}

func (readabilityScorer) Name() string { return "readability" }

func (readabilityScorer) Score(doc *tokenize.Document, _ Config, rep *Report) {
	s := readability.Score(doc)
	rep.SyllableCount = s.SyllableCount
	rep.FleschReadingEase = s.FleschReadingEase
	rep.FleschKincaidGrade = s.FleschKincaidGrade
	rep.SMOGIndex = s.SMOGIndex
}

type passiveScorer struct{}

func (passiveScorer) Name() string { return "passive" }

func (passiveScorer) Score(doc *tokenize.Document, _ Config, rep *Report) {
	r := passive.Detect(doc)
	rep.PassiveSentenceCount = r.PassiveSentenceCount
	rep.PassiveRatio = r.PassiveRatio
}

type sentimentScorer struct {
	lex *sentiment.Lexicon
}

func (sentimentScorer) Name() string { return "sentiment" }

func (s sentimentScorer) Score(doc *tokenize.Document, _ Config, rep *Report) {
	r := s.lex.Score(doc)
	rep.SentimentPolarity = r.Polarity
	rep.SentimentSubjectivity = r.Subjectivity
}

type diversityScorer struct{}

func (diversityScorer) Name() string { return "diversity" }

func (diversityScorer) Score(doc *tokenize.Document, _ Config, rep *Report) {
	r := diversity.TypeTokenRatio(doc)
	rep.DistinctWordCount = r.DistinctWordCount
	rep.LexicalDiversityTTR = r.TypeTokenRatio
}

type readtimeScorer struct{}

func (readtimeScorer) Name() string { return "readtime" }

func (readtimeScorer) Score(doc *tokenize.Document, cfg Config, rep *Report) {
	rep.EstimatedReadingMinutes = readtime.Minutes(doc.WordCount(), cfg.WordsPerMinute)
}
