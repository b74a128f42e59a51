package sentimen

import (
	"strings"

	"github.com/bbalet/stopwords"
)

// StopwordFilter decides which tokens are dropped before Naive Bayes counting.
type StopwordFilter struct {
	words     map[string]struct{}
	languages []string
}

// NewStopwordFilter builds a filter from an explicit word list and, optionally, a set of
// ISO 639-1 language codes whose stopword lists are also applied.
func NewStopwordFilter(words []string, languages ...string) *StopwordFilter {
	return &StopwordFilter{
		words:     wordSet(words),
		languages: languages,
	}
}

// IsStopword reports whether token is filtered out.
func (sf *StopwordFilter) IsStopword(token string) bool {
	if _, ok := sf.words[token]; ok {
		return true
	}
	for _, lang := range sf.languages {
		if isLibraryStopword(token, lang) {
			return true
		}
	}
	return false
}

// Languages returns the language codes consulted besides the explicit word list.
func (sf *StopwordFilter) Languages() []string {
	return append([]string(nil), sf.languages...)
}

// isLibraryStopword asks the stopwords library about a single word. The library does not
// export its lists, so a word is a stopword when cleaning it leaves nothing behind.
func isLibraryStopword(word, langCode string) bool {
	return strings.TrimSpace(stopwords.CleanString(word, langCode, false)) == ""
}
