// Package postag assigns coarse grammatical tags with a closed rule set:
// fixed word lists plus suffix heuristics. It is deliberately shallow: the
// only consumer that needs accuracy is passive-voice detection, which relies
// on the VERB_BE + PARTICIPLE adjacency signal.
package postag

import (
	"strings"

	"textmetrics/internal/tokenize"
)

var beForms = map[string]struct{}{
	"is": {}, "are": {}, "was": {}, "were": {}, "am": {},
	"be": {}, "been": {}, "being": {},
}

// Irregular past participles that carry no "-ed" suffix.
var irregularParticiples = map[string]struct{}{
	"done": {}, "gone": {}, "seen": {}, "taken": {}, "known": {}, "written": {},
	"given": {}, "shown": {}, "broken": {}, "chosen": {}, "made": {}, "found": {},
	"built": {}, "sent": {}, "spent": {}, "left": {}, "kept": {}, "held": {},
	"brought": {}, "thrown": {}, "caught": {}, "taught": {}, "bought": {},
	"fought": {}, "sold": {}, "told": {}, "worn": {}, "torn": {}, "sworn": {},
	"driven": {}, "eaten": {}, "beaten": {}, "fallen": {}, "forgotten": {},
	"forbidden": {}, "frozen": {}, "hidden": {}, "ridden": {}, "risen": {},
	"spoken": {}, "stolen": {}, "woken": {}, "drawn": {}, "grown": {},
	"blown": {}, "flown": {}, "sung": {}, "hung": {}, "struck": {}, "won": {},
	"lost": {}, "paid": {}, "said": {}, "heard": {}, "meant": {}, "felt": {},
	"read": {}, "understood": {}, "set": {}, "put": {}, "cut": {}, "hit": {},
	"hurt": {}, "let": {}, "shot": {}, "sought": {},
}

var adverbWords = map[string]struct{}{
	"not": {}, "never": {}, "also": {}, "very": {}, "quite": {}, "too": {},
	"rather": {}, "always": {}, "often": {}, "sometimes": {}, "nearly": {},
	"almost": {}, "just": {}, "still": {}, "already": {}, "soon": {},
	"again": {}, "here": {}, "there": {}, "now": {}, "then": {}, "well": {},
}

// Determiners, pronouns, prepositions, conjunctions: none of these can be a
// participle or an adjective, so they all collapse into OTHER.
var functionWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "this": {}, "that": {}, "these": {}, "those": {},
	"i": {}, "you": {}, "he": {}, "she": {}, "it": {}, "we": {}, "they": {},
	"me": {}, "him": {}, "her": {}, "us": {}, "them": {}, "my": {}, "your": {},
	"his": {}, "its": {}, "our": {}, "their": {}, "who": {}, "whom": {},
	"which": {}, "what": {}, "of": {}, "in": {}, "on": {}, "at": {}, "by": {},
	"to": {}, "for": {}, "with": {}, "from": {}, "about": {}, "into": {},
	"over": {}, "under": {}, "between": {}, "through": {}, "after": {},
	"before": {}, "and": {}, "or": {}, "but": {}, "nor": {}, "so": {}, "yet": {},
	"if": {}, "because": {}, "while": {}, "as": {}, "no": {}, "any": {},
	"some": {}, "all": {}, "each": {}, "both": {},
}

var auxiliaryVerbs = map[string]struct{}{
	"will": {}, "would": {}, "can": {}, "could": {}, "shall": {}, "should": {},
	"may": {}, "might": {}, "must": {}, "do": {}, "does": {}, "did": {},
	"have": {}, "has": {}, "had": {}, "get": {}, "got": {}, "go": {}, "goes": {},
	"went": {}, "come": {}, "comes": {}, "came": {}, "say": {}, "says": {},
	"make": {}, "makes": {}, "take": {}, "takes": {}, "see": {}, "sees": {},
}

var adjectiveSuffixes = []string{"ous", "ful", "ive", "able", "ible", "less", "ish"}

// Annotate assigns a tag to every token in the document. Punctuation tokens
// arrive already tagged by the tokenizer and are left alone. After Annotate
// returns, the document is complete and must not be mutated again.
func Annotate(doc *tokenize.Document) {
	for si := range doc.Sentences {
		toks := doc.Sentences[si].Tokens
		for ti := range toks {
			if toks[ti].Tag == tokenize.Punct {
				continue
			}
			toks[ti].Tag = TagWord(toks[ti])
		}
	}
}

// TagWord classifies a single word token by its normalized form.
func TagWord(tok tokenize.Token) tokenize.Tag {
	w := tok.Norm
	if w == "" {
		return tokenize.Other
	}
	if tok.IsNumeric() {
		return tokenize.Other
	}
	if _, ok := beForms[w]; ok {
		return tokenize.VerbBe
	}
	if _, ok := adverbWords[w]; ok {
		return tokenize.Adv
	}
	if _, ok := functionWords[w]; ok {
		return tokenize.Other
	}
	if _, ok := irregularParticiples[w]; ok {
		return tokenize.Participle
	}
	if _, ok := auxiliaryVerbs[w]; ok {
		return tokenize.Verb
	}
	if strings.HasSuffix(w, "ed") && len(w) > 3 {
		return tokenize.Participle
	}
	if strings.HasSuffix(w, "ly") && len(w) > 3 {
		return tokenize.Adv
	}
	if strings.HasSuffix(w, "ing") && len(w) > 4 {
		return tokenize.Verb
	}
	for _, suf := range adjectiveSuffixes {
		if strings.HasSuffix(w, suf) && len(w) > len(suf)+1 {
			return tokenize.Adj
		}
	}
	return tokenize.Noun
}
