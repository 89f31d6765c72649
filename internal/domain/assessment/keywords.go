package assessment

import (
	"regexp"
	"strings"
)

var nonWord = regexp.MustCompile(`\W+`)

type keywords []string

// extractKeywords lower-cases text, splits on non-word runs and drops short
// tokens and stop words. Duplicates and order are kept.
func extractKeywords(text string, stop map[string]struct{}) keywords {
	words := nonWord.Split(strings.ToLower(text), -1)

	out := make(keywords, 0, len(words))
	for _, w := range words {
		if len(w) <= 2 {
			continue
		}
		if _, ok := stop[w]; ok {
			continue
		}
		out = append(out, w)
	}
	return out
}

func (k keywords) any(terms []string) bool {
	for _, w := range k {
		for _, t := range terms {
			if w == t {
				return true
			}
		}
	}
	return false
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
