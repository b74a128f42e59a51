package sentimen

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tokenizer splits text into word-level tokens.
type Tokenizer interface {
	Tokenize(string) []string
}

// iterTokenizer splits a sentence into words, peeling punctuation off each
// whitespace-delimited span.
type iterTokenizer struct {
	sanitizer    *strings.Replacer
	contractions []string
	suffixes     []string
	prefixes     []string
}

type TokenizerOptFunc func(*iterTokenizer)

// Use the provided sanitizer.
func UsingSanitizer(x *strings.Replacer) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.sanitizer = x
	}
}

// Use the provided suffixes.
func UsingSuffixes(x []string) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.suffixes = x
	}
}

// Use the provided prefixes.
func UsingPrefixes(x []string) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.prefixes = x
	}
}

// Use the provided contractions.
func UsingContractions(x []string) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.contractions = x
	}
}

// NewIterTokenizer is the constructor for the default tokenizer.
func NewIterTokenizer(opts ...TokenizerOptFunc) Tokenizer {
	tok := &iterTokenizer{
		contractions: contractions,
		prefixes:     prefixes,
		sanitizer:    sanitizer,
		suffixes:     suffixes,
	}

	for _, applyOpt := range opts {
		applyOpt(tok)
	}

	return tok
}

func addToken(s string, toks []string) []string {
	if strings.TrimSpace(s) != "" {
		toks = append(toks, s)
	}
	return toks
}

func (t *iterTokenizer) doSplit(token string) []string {
	tokens := []string{}
	suffs := []string{}

	last := 0
	for token != "" && utf8.RuneCountInString(token) != last {
		last = utf8.RuneCountInString(token)
		lowered := strings.ToLower(token)
		if hasAnyPrefix(token, t.prefixes) {
			// $100 -> [$, 100].
			tokens = addToken(token[:1], tokens)
			token = token[1:]
		} else if idx := hasAnyIndex(lowered, t.contractions); idx > -1 {
			// don't -> [do, n't].
			tokens = addToken(token[:idx], tokens)
			token = token[idx:]
		} else if hasAnySuffix(token, t.suffixes) {
			// senang, -> [senang, ,].
			suffs = append([]string{token[len(token)-1:]}, suffs...)
			token = token[:len(token)-1]
		} else {
			tokens = addToken(token, tokens)
		}
	}

	return append(tokens, suffs...)
}

// Tokenize splits a sentence into a slice of words.
func (t *iterTokenizer) Tokenize(text string) []string {
	var tokens []string
	for _, span := range strings.Fields(t.sanitizer.Replace(text)) {
		tokens = append(tokens, t.doSplit(span)...)
	}
	return tokens
}

// hasAnyPrefix reports whether s starts with one of the single-byte prefixes.
func hasAnyPrefix(s string, prefixes []string) bool {
	n := len(s)
	for _, prefix := range prefixes {
		if n > 1 && strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// hasAnySuffix reports whether s ends with one of the single-byte suffixes.
func hasAnySuffix(s string, suffixes []string) bool {
	n := len(s)
	for _, suffix := range suffixes {
		if n > 1 && strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

// hasAnyIndex returns the index of the first contraction that ends s, or -1.
func hasAnyIndex(s string, suffixes []string) int {
	n := len(s)
	for _, suffix := range suffixes {
		idx := strings.Index(s, suffix)
		if idx > 0 && idx+len(suffix) == n {
			return idx
		}
	}
	return -1
}

// lower is the Unicode-aware lowercasing used everywhere text is compared. A Caser
// keeps state, so one is made per call.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// isAlpha reports whether s is non-empty and made only of letters.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

var sanitizer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
	"&rsquo;", "'")
var contractions = []string{"'ll", "'s", "'re", "'m", "n't"}
var suffixes = []string{",", ")", `"`, "]", "!", ";", ".", "?", ":", "'"}
var prefixes = []string{"$", "(", `"`, "["}
