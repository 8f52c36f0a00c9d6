package engine

import (
	"errors"
	"math"
	"strings"
	"testing"

	"textmetrics/internal/sentiment"
	"textmetrics/internal/tokenize"
)

func TestAnalyzeEmptyStringIsAllZero(t *testing.T) {
	rep, err := Analyze("", Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep != (Report{}) {
		t.Fatalf("expected all-zero report for empty input, got %+v", rep)
	}
}

func TestAnalyzeWhitespaceOnlyIsAllZero(t *testing.T) {
	rep, err := Analyze("   \n\t ", Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep != (Report{}) {
		t.Fatalf("expected all-zero report, got %+v", rep)
	}
}

func TestAnalyzeRejectsInvalidUTF8(t *testing.T) {
	_, err := Analyze(string([]byte{0xff, 0xfe, 0xfd}), Config{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	text := "The ball was thrown by John. The crowd cheered loudly! A wonderful day for everyone."
	first, err := Analyze(text, Config{WordsPerMinute: 180})
	if err != nil {
		t.Fatalf("first analyze: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Analyze(text, Config{WordsPerMinute: 180})
		if err != nil {
			t.Fatalf("analyze %d: %v", i, err)
		}
		if again != first {
			t.Fatalf("run %d differs:\n%+v\nvs\n%+v", i, again, first)
		}
	}
}

func TestAnalyzePassiveScenario(t *testing.T) {
	rep, err := Analyze("The ball was thrown by John.", Config{})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if rep.PassiveSentenceCount != 1 || rep.PassiveRatio != 1.0 {
		t.Fatalf("expected fully passive, got count=%d ratio=%.3f", rep.PassiveSentenceCount, rep.PassiveRatio)
	}

	rep, err = Analyze("John threw the ball.", Config{})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if rep.PassiveSentenceCount != 0 || rep.PassiveRatio != 0.0 {
		t.Fatalf("expected no passive, got count=%d ratio=%.3f", rep.PassiveSentenceCount, rep.PassiveRatio)
	}
}

func TestAnalyzeLexicalDiversityScenario(t *testing.T) {
	rep, err := Analyze("the cat sat on the mat", Config{})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if rep.WordCount != 6 {
		t.Fatalf("expected 6 words, got %d", rep.WordCount)
	}
	if rep.SentenceCount != 1 {
		t.Fatalf("expected 1 sentence, got %d", rep.SentenceCount)
	}
	if rep.DistinctWordCount != 5 {
		t.Fatalf("expected 5 distinct forms, got %d", rep.DistinctWordCount)
	}
	if math.Abs(rep.LexicalDiversityTTR-5.0/6.0) > 1e-9 {
		t.Fatalf("expected TTR 5/6, got %.4f", rep.LexicalDiversityTTR)
	}
}

func TestAnalyzeReadingTimeScenario(t *testing.T) {
	words := make([]string, 400)
	for i := range words {
		words[i] = "word"
	}
	rep, err := Analyze(strings.Join(words, " "), Config{WordsPerMinute: 200})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if rep.WordCount != 400 {
		t.Fatalf("expected 400 words, got %d", rep.WordCount)
	}
	if rep.EstimatedReadingMinutes != 2.0 {
		t.Fatalf("expected 2.0 minutes, got %.4f", rep.EstimatedReadingMinutes)
	}
}

func TestAnalyzeRatiosStayInRange(t *testing.T) {
	for _, text := range []string{
		"",
		"One.",
		"It was done. It was seen. He ran. She laughed. They sang together all night long.",
		"word word word word word",
	} {
		rep, err := Analyze(text, Config{})
		if err != nil {
			t.Fatalf("%q: %v", text, err)
		}
		if rep.PassiveRatio < 0 || rep.PassiveRatio > 1 {
			t.Fatalf("%q: passive ratio out of range: %.3f", text, rep.PassiveRatio)
		}
		if rep.LexicalDiversityTTR < 0 || rep.LexicalDiversityTTR > 1 {
			t.Fatalf("%q: TTR out of range: %.3f", text, rep.LexicalDiversityTTR)
		}
	}
}

func TestAnalyzeUsesInjectedLexicon(t *testing.T) {
	lex := sentiment.NewLexicon(map[string]sentiment.Entry{
		"mat": {Polarity: -1.0, Subjectivity: 1.0},
	})
	eng := New(WithLexicon(lex))
	rep, err := eng.Analyze("the cat sat on the mat", Config{})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if rep.SentimentPolarity != -1.0 || rep.SentimentSubjectivity != 1.0 {
		t.Fatalf("expected injected lexicon scores, got %.2f/%.2f", rep.SentimentPolarity, rep.SentimentSubjectivity)
	}
}

type wordCountDoubler struct{}

func (wordCountDoubler) Name() string { return "doubler" }

func (wordCountDoubler) Score(doc *tokenize.Document, _ Config, rep *Report) {
	rep.SyllableCount = doc.WordCount() * 2
}

func TestAnalyzeComposesCustomScorerSet(t *testing.T) {
	eng := New(WithScorers(wordCountDoubler{}))
	rep, err := eng.Analyze("one two three", Config{})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if rep.SyllableCount != 6 {
		t.Fatalf("expected custom scorer output 6, got %d", rep.SyllableCount)
	}
	if rep.PassiveRatio != 0 || rep.SentimentPolarity != 0 {
		t.Fatalf("expected untouched fields to stay zero, got %+v", rep)
	}
}

func TestAnalyzeAverageSentenceLength(t *testing.T) {
	rep, err := Analyze("One two three. Four five six seven.", Config{})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if math.Abs(rep.AvgSentenceLength-3.5) > 1e-9 {
		t.Fatalf("expected average sentence length 3.5, got %.4f", rep.AvgSentenceLength)
	}
}
