package grading

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize lowercases, replaces every non-word character with a space,
// collapses whitespace runs and trims. Word characters are Unicode
// letters, digits and underscore. Empty input yields "".
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	pending := false
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			if pending && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pending = false
			b.WriteRune(r)
		} else {
			pending = true
		}
	}
	return b.String()
}

// Short function words that still carry meaning in an answer key and are
// kept despite the length-3 cutoff below.
var shortImportantWords = []string{"is", "as", "an", "in", "of", "to", "or"}

// KeywordMatch scores how many of the correct answer's important terms
// appear in the submitted answer. Both inputs must already be normalized.
// A term is important if it is longer than 2 runes; the short function
// words above are re-included when the answer key uses them. Set
// semantics throughout: order and duplicates are ignored.
func KeywordMatch(correct, submitted string) float64 {
	correctTerms := wordSet(correct)

	important := make([]string, 0, len(correctTerms))
	for term := range correctTerms {
		if utf8.RuneCountInString(term) > 2 {
			important = append(important, term)
		}
	}
	for _, w := range shortImportantWords {
		if _, ok := correctTerms[w]; ok {
			important = append(important, w)
		}
	}

	if len(important) == 0 {
		if correct == submitted {
			return 1.0
		}
		return 0.0
	}

	submittedTerms := wordSet(submitted)
	matches := 0
	for _, term := range important {
		if _, ok := submittedTerms[term]; ok {
			matches++
		}
	}
	return float64(matches) / float64(len(important))
}

func wordSet(s string) map[string]struct{} {
	fields := strings.Fields(s)
	m := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		m[f] = struct{}{}
	}
	return m
}

// SequenceRatio is a Ratcliff/Obershelp similarity over runes:
// 2*M / (len(a)+len(b)) where M totals the matching runes found by
// recursing around the longest common block. Symmetric, in [0,1];
// two empty strings are identical (1.0).
func SequenceRatio(a, b string) float64 {
	ar, br := []rune(a), []rune(b)
	total := len(ar) + len(br)
	if total == 0 {
		return 1.0
	}
	return 2.0 * float64(matchingRunes(ar, br)) / float64(total)
}

func matchingRunes(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	ai, bi, size := longestCommonBlock(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchingRunes(a[:ai], b[:bi]) +
		matchingRunes(a[ai+size:], b[bi+size:])
}

// longestCommonBlock finds the earliest longest common substring of a
// and b, returning its start offsets and length.
func longestCommonBlock(a, b []rune) (int, int, int) {
	bestA, bestB, best := 0, 0, 0
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > best {
					best = cur[j]
					bestA = i - best
					bestB = j - best
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}
	return bestA, bestB, best
}
