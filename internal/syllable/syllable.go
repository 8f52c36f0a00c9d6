// Package syllable estimates syllable counts with a vowel-group heuristic.
// It is an approximation: no dictionary lookup, so words like "people" or
// "queue" come out slightly off. That shifts readability scores by a small
// constant factor without affecting any other metric.
package syllable

import "strings"

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// Count returns the estimated syllable count for a word: one per maximal
// run of vowels (y included), minus one for a trailing silent "e" that is
// not preceded by another vowel, floored at 1 for any non-empty word.
func Count(word string) int {
	w := strings.ToLower(word)
	if w == "" {
		return 0
	}

	count := 0
	prevVowel := false
	last := rune(0)
	beforeLast := rune(0)
	for _, r := range w {
		if r < 'a' || r > 'z' {
			prevVowel = false
			continue
		}
		if isVowel(r) {
			if !prevVowel {
				count++
			}
			prevVowel = true
		} else {
			prevVowel = false
		}
		beforeLast = last
		last = r
	}

	if last == 'e' && count > 1 && !isVowel(beforeLast) {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}
