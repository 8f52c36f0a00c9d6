// Package engine runs the analysis pipeline: tokenize and tag once, then
// fan the scorers out in parallel over the shared read-only document and
// assemble a single immutable report.
package engine

import (
	"errors"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"textmetrics/internal/postag"
	"textmetrics/internal/readtime"
	"textmetrics/internal/sentiment"
	"textmetrics/internal/tokenize"
)

// ErrInvalidInput is the single hard-failure case: text that is not valid
// UTF-8. Every other degenerate input (empty, whitespace-only, nothing
// scoreable) resolves to a defined zero/neutral report instead.
var ErrInvalidInput = errors.New("engine: input is not valid UTF-8 text")

// Config carries the per-call knobs recognized by Analyze.
type Config struct {
	// WordsPerMinute sets the reading-rate divisor for the reading-time
	// estimate. Zero or negative means the default of 200.
	WordsPerMinute float64 `json:"words_per_minute"`
}

// Report is the immutable result of one analysis call.
type Report struct {
	WordCount               int     `json:"word_count"`
	SentenceCount           int     `json:"sentence_count"`
	AvgSentenceLength       float64 `json:"avg_sentence_length"`
	SyllableCount           int     `json:"syllable_count"`
	FleschReadingEase       float64 `json:"flesch_reading_ease"`
	FleschKincaidGrade      float64 `json:"flesch_kincaid_grade"`
	SMOGIndex               float64 `json:"smog_index"`
	PassiveSentenceCount    int     `json:"passive_sentence_count"`
	PassiveRatio            float64 `json:"passive_ratio"`
	SentimentPolarity       float64 `json:"sentiment_polarity"`
	SentimentSubjectivity   float64 `json:"sentiment_subjectivity"`
	DistinctWordCount       int     `json:"distinct_word_count"`
	LexicalDiversityTTR     float64 `json:"lexical_diversity_ttr"`
	EstimatedReadingMinutes float64 `json:"estimated_reading_minutes"`
}

// A Scorer derives one named group of metrics from the tokenized document.
// Scorers must treat the document as read-only and must write only their own
// report fields; the engine runs them concurrently.
type Scorer interface {
	Name() string
	Score(doc *tokenize.Document, cfg Config, rep *Report)
}

// Engine composes an ordered set of scorers over the tokenizer. The zero
// set is never used: New always installs the default scorers unless options
// replace them.
type Engine struct {
	scorers []Scorer
}

type Option func(*Engine)

// WithLexicon substitutes the sentiment lexicon, keeping the rest of the
// default scorer set.
func WithLexicon(lex *sentiment.Lexicon) Option {
	return func(e *Engine) {
		for i, s := range e.scorers {
			if s.Name() == "sentiment" {
				e.scorers[i] = sentimentScorer{lex: lex}
			}
		}
	}
}

// WithScorers replaces the scorer set entirely.
func WithScorers(scorers ...Scorer) Option {
	return func(e *Engine) {
		e.scorers = scorers
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{
		scorers: []Scorer{
			readabilityScorer{},
			passiveScorer{},
			sentimentScorer{lex: sentiment.Default()},
			diversityScorer{},
			readtimeScorer{},
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Analyze tokenizes and tags the text once, then runs every scorer in
// parallel over the finished document. Scorers own disjoint report fields,
// so the fan-out needs no locking and the result is identical to running
// them sequentially.
func (e *Engine) Analyze(text string, cfg Config) (Report, error) {
	if !utf8.ValidString(text) {
		return Report{}, ErrInvalidInput
	}
	if cfg.WordsPerMinute <= 0 {
		cfg.WordsPerMinute = readtime.DefaultWordsPerMinute
	}

	doc := tokenize.Split(text)
	postag.Annotate(doc)

	rep := Report{
		WordCount:     doc.WordCount(),
		SentenceCount: doc.SentenceCount(),
	}
	if rep.SentenceCount > 0 {
		rep.AvgSentenceLength = float64(rep.WordCount) / float64(rep.SentenceCount)
	}

	var g errgroup.Group
	for _, s := range e.scorers {
		g.Go(func() error {
			s.Score(doc, cfg, &rep)
			return nil
		})
	}
	_ = g.Wait()

	return rep, nil
}

var defaultEngine = New()

// Analyze runs the default engine with the embedded lexicon.
func Analyze(text string, cfg Config) (Report, error) {
	return defaultEngine.Analyze(text, cfg)
}
