package generation

import (
	"strings"
	"unicode"
)

// MinKeyTermLength is the minimum number of letters in a key term.
const MinKeyTermLength = 4

// MaxKeyTerms is the number of key terms used by the fallback templates.
const MaxKeyTerms = 3

// StopWords are generic interrogative and pronoun words never used as key
// terms. Entries are lower case.
var StopWords = []string{
	"what", "how", "why", "when", "where",
	"this", "that", "there", "their", "which",
}

var stopWordSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(StopWords))
	for _, w := range StopWords {
		set[w] = struct{}{}
	}
	return set
}()

// ExtractKeyTerms returns the distinct lower-cased words of at least
// MinKeyTermLength ASCII letters in text, in order of first appearance,
// excluding StopWords. A word is a maximal run of Unicode letters, digits,
// marks and underscores; words holding anything besides ASCII letters are
// skipped whole, so "Schrödinger" yields nothing rather than "dinger".
func ExtractKeyTerms(text string) []string {
	words := strings.FieldsFunc(text, func(r rune) bool { return !isWordRune(r) })

	terms := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, word := range words {
		if len(word) < MinKeyTermLength || !isASCIIWord(word) {
			continue
		}
		term := strings.ToLower(word)
		if _, stop := stopWordSet[term]; stop {
			continue
		}
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		terms = append(terms, term)
	}
	return terms
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

func isASCIIWord(word string) bool {
	for i := 0; i < len(word); i++ {
		c := word[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
