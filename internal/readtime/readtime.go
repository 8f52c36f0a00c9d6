// Package readtime estimates reading time from word count and a
// words-per-minute rate.
package readtime

// DefaultWordsPerMinute matches the average silent reading rate used by the
// reading-time estimate when no rate is configured.
const DefaultWordsPerMinute = 200.0

// Minutes returns the estimated reading time without rounding; presentation
// layers round for display. A non-positive rate falls back to the default.
func Minutes(wordCount int, wordsPerMinute float64) float64 {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}
	if wordCount <= 0 {
		return 0
	}
	return float64(wordCount) / wordsPerMinute
}
