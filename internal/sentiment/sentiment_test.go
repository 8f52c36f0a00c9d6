package sentiment

import (
	"math"
	"testing"

	"textmetrics/internal/tokenize"
)

func testLexicon() *Lexicon {
	return NewLexicon(map[string]Entry{
		"good":  {Polarity: 0.8, Subjectivity: 0.9},
		"bad":   {Polarity: -0.6, Subjectivity: 0.7},
		"awful": {Polarity: -1.0, Subjectivity: 1.0},
	})
}

func score(lex *Lexicon, text string) Result {
	return lex.Score(tokenize.Split(text))
}

func TestScoreAveragesOverScoredWordsOnly(t *testing.T) {
	r := score(testLexicon(), "The good dog had a bad day.")
	if r.ScoredWords != 2 {
		t.Fatalf("expected 2 scored words, got %d", r.ScoredWords)
	}
	if math.Abs(r.Polarity-0.1) > 1e-9 {
		t.Fatalf("expected polarity 0.1, got %.4f", r.Polarity)
	}
	if math.Abs(r.Subjectivity-0.8) > 1e-9 {
		t.Fatalf("expected subjectivity 0.8, got %.4f", r.Subjectivity)
	}
}

func TestScoreNegationFlipsPolarityOnly(t *testing.T) {
	r := score(testLexicon(), "not good")
	if math.Abs(r.Polarity-(-0.8)) > 1e-9 {
		t.Fatalf("expected flipped polarity -0.8, got %.4f", r.Polarity)
	}
	if math.Abs(r.Subjectivity-0.9) > 1e-9 {
		t.Fatalf("expected subjectivity unchanged at 0.9, got %.4f", r.Subjectivity)
	}

	for _, text := range []string{"never good", "no good"} {
		if r := score(testLexicon(), text); r.Polarity >= 0 {
			t.Fatalf("%q: expected negated polarity, got %.4f", text, r.Polarity)
		}
	}
}

func TestScoreNegationDoesNotCarryPastOneWord(t *testing.T) {
	// "not" negates only the word immediately after it.
	r := score(testLexicon(), "not very good")
	if r.Polarity <= 0 {
		t.Fatalf("expected unnegated polarity, got %.4f", r.Polarity)
	}
}

func TestScoreIsCaseInsensitive(t *testing.T) {
	a := score(testLexicon(), "GOOD")
	b := score(testLexicon(), "good")
	if a != b {
		t.Fatalf("expected identical results, got %+v vs %+v", a, b)
	}
}

func TestScoreNothingScoredIsNeutral(t *testing.T) {
	for _, text := range []string{"", "the mat sat flat", "...!!!"} {
		r := score(testLexicon(), text)
		if r.Polarity != 0 || r.Subjectivity != 0 || r.ScoredWords != 0 {
			t.Fatalf("%q: expected neutral zero result, got %+v", text, r)
		}
	}
}

func TestDefaultLexiconIsLoadedAndSigned(t *testing.T) {
	lex := Default()
	if lex.Len() < 100 {
		t.Fatalf("expected embedded lexicon with at least 100 entries, got %d", lex.Len())
	}
	good, ok := lex.Lookup("good")
	if !ok || good.Polarity <= 0 {
		t.Fatalf("expected positive entry for good, got %+v ok=%v", good, ok)
	}
	terrible, ok := lex.Lookup("terrible")
	if !ok || terrible.Polarity >= 0 {
		t.Fatalf("expected negative entry for terrible, got %+v ok=%v", terrible, ok)
	}
	for w, e := range map[string]Entry{"good": good, "terrible": terrible} {
		if e.Polarity < -1 || e.Polarity > 1 || e.Subjectivity < 0 || e.Subjectivity > 1 {
			t.Fatalf("%q: entry out of range: %+v", w, e)
		}
	}
}

func TestDefaultLexiconIsSharedInstance(t *testing.T) {
	if Default() != Default() {
		t.Fatal("expected Default to return the same lexicon instance")
	}
}
