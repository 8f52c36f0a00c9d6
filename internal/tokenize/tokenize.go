// Package tokenize turns raw text into an annotated Document: ordered
// sentences of word and punctuation tokens with byte offsets into the
// original input. A Document is built once and is read-only afterwards,
// so any number of scorers can consume it concurrently.
package tokenize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tag is the coarse grammatical role assigned to a token. The tokenizer
// only sets Punct; everything else is assigned by the postag package.
type Tag uint8

const (
	Other Tag = iota
	Noun
	Verb
	VerbBe
	Participle
	Adj
	Adv
	Punct
)

func (t Tag) String() string {
	switch t {
	case Noun:
		return "NOUN"
	case Verb:
		return "VERB"
	case VerbBe:
		return "VERB_BE"
	case Participle:
		return "PARTICIPLE"
	case Adj:
		return "ADJ"
	case Adv:
		return "ADV"
	case Punct:
		return "PUNCT"
	default:
		return "OTHER"
	}
}

type Token struct {
	Text  string `json:"text"`
	Norm  string `json:"norm"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Tag   Tag    `json:"tag"`
}

// IsWord reports whether the token is a word rather than punctuation.
func (t Token) IsWord() bool {
	return t.Tag != Punct
}

// IsNumeric reports whether the token is made of digits only (plus an
// optional decimal point), e.g. "1984" or "3.14".
func (t Token) IsNumeric() bool {
	if t.Norm == "" {
		return false
	}
	for _, r := range t.Norm {
		if r != '.' && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

type Sentence struct {
	Tokens []Token `json:"tokens"`
	Start  int     `json:"start"`
	End    int     `json:"end"`
}

type Document struct {
	Text      string     `json:"text"`
	Sentences []Sentence `json:"sentences"`
}

func (d *Document) SentenceCount() int {
	return len(d.Sentences)
}

// WordCount counts word tokens across all sentences, excluding punctuation.
func (d *Document) WordCount() int {
	n := 0
	for _, s := range d.Sentences {
		for _, tok := range s.Tokens {
			if tok.IsWord() {
				n++
			}
		}
	}
	return n
}

// Common abbreviations whose trailing period does not end a sentence.
var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "sr": {}, "jr": {},
	"st": {}, "vs": {}, "etc": {}, "e.g": {}, "i.e": {}, "fig": {}, "no": {},
	"inc": {}, "ltd": {}, "co": {}, "al": {},
}

// Split segments text into sentences of word and punctuation tokens.
// Sentences end at '.', '!' or '?' followed by whitespace or end of input,
// unless the period belongs to a listed abbreviation. Text without terminal
// punctuation becomes a single sentence. Empty or whitespace-only input
// yields a Document with no sentences.
func Split(text string) *Document {
	doc := &Document{Text: text}

	var tokens []Token
	sentStart := -1
	lastWord := ""

	flush := func(end int) {
		if len(tokens) == 0 {
			return
		}
		doc.Sentences = append(doc.Sentences, Sentence{Tokens: tokens, Start: sentStart, End: end})
		tokens = nil
		sentStart = -1
		lastWord = ""
	}

	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case unicode.IsSpace(r):
			i += size
		case isWordRune(r):
			start := i
			i = scanWord(text, i)
			if sentStart < 0 {
				sentStart = start
			}
			word := text[start:i]
			lastWord = strings.ToLower(word)
			tokens = append(tokens, Token{Text: word, Norm: lastWord, Start: start, End: i})
		default:
			start := i
			i += size
			if sentStart < 0 {
				sentStart = start
			}
			tokens = append(tokens, Token{Text: text[start:i], Norm: text[start:i], Start: start, End: i, Tag: Punct})
			if r != '.' && r != '!' && r != '?' {
				continue
			}
			terminal := r
			// Collapse runs like "..." or "?!" into one boundary.
			for i < len(text) {
				nr, ns := utf8.DecodeRuneInString(text[i:])
				if nr != '.' && nr != '!' && nr != '?' {
					break
				}
				tokens = append(tokens, Token{Text: text[i : i+ns], Norm: text[i : i+ns], Start: i, End: i + ns, Tag: Punct})
				terminal = nr
				i += ns
			}
			if !boundaryFollows(text, i) {
				continue
			}
			if terminal == '.' {
				if _, ok := abbreviations[lastWord]; ok {
					continue
				}
			}
			flush(i)
		}
	}
	flush(len(text))
	return doc
}

func boundaryFollows(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return unicode.IsSpace(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// scanWord consumes a word starting at i. Apostrophes and hyphens stay
// inside the word when followed by a letter or digit ("don't", "well-known").
// A period flanked by word characters on both sides also stays inside, which
// keeps decimals ("3.14") and dotted abbreviations ("e.g.", "U.S.A") whole;
// a sentence-final period is always followed by whitespace or end of input,
// so it never gets swallowed.
func scanWord(text string, i int) int {
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if isWordRune(r) {
			i += size
			continue
		}
		if r == '\'' || r == '-' || r == '.' {
			nr, _ := utf8.DecodeRuneInString(text[i+size:])
			if isWordRune(nr) {
				i += size
				continue
			}
		}
		break
	}
	return i
}
