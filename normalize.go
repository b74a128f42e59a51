package sentimen

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// errInvalidUTF8 triggers the fallback tokenization path.
var errInvalidUTF8 = errors.New("text is not valid UTF-8")

// Normalizer turns raw text into the tokens counted by the Naive Bayes model.
type Normalizer struct {
	tokenizer Tokenizer
	stopwords *StopwordFilter
	affixes   []string
}

// NormalizerOptFunc configures a Normalizer.
type NormalizerOptFunc func(*Normalizer)

// UsingTokenizer specifies the Tokenizer to use.
func UsingTokenizer(x Tokenizer) NormalizerOptFunc {
	return func(n *Normalizer) {
		n.tokenizer = x
	}
}

// UsingStopwords replaces the stopword filter.
func UsingStopwords(x *StopwordFilter) NormalizerOptFunc {
	return func(n *Normalizer) {
		n.stopwords = x
	}
}

// UsingAffixes replaces the substrings stripped from every token.
func UsingAffixes(x []string) NormalizerOptFunc {
	return func(n *Normalizer) {
		n.affixes = x
	}
}

// NewNormalizer creates a normalizer with the bundled stopwords and affixes.
func NewNormalizer(opts ...NormalizerOptFunc) *Normalizer {
	n := &Normalizer{
		tokenizer: NewIterTokenizer(),
		stopwords: NewStopwordFilter(defaultStopwords),
		affixes:   defaultAffixes,
	}
	for _, applyOpt := range opts {
		applyOpt(n)
	}
	return n
}

// Normalize lowercases text, keeps alphabetic tokens, drops stopwords and strips the
// affixes wherever they occur inside a token. Empty input yields no tokens.
func (n *Normalizer) Normalize(text string) []string {
	tokens, _ := n.NormalizeDetailed(text)
	return tokens
}

// NormalizeDetailed behaves like Normalize and also returns the reason the fallback
// tokenization was used, or nil when the full pipeline ran.
//
// The fallback lowercases, splits on whitespace and keeps alphabetic tokens only. It
// never fails.
func (n *Normalizer) NormalizeDetailed(text string) (tokens []string, fallback error) {
	tokens, err := n.normalize(text)
	if err != nil {
		return fallbackTokens(text), err
	}
	return tokens, nil
}

func (n *Normalizer) normalize(text string) (tokens []string, err error) {
	if !utf8.ValidString(text) {
		return nil, errInvalidUTF8
	}

	defer func() {
		if r := recover(); r != nil {
			tokens, err = nil, fmt.Errorf("tokenizer panicked: %v", r)
		}
	}()

	for _, token := range n.tokenizer.Tokenize(lower(text)) {
		if !isAlpha(token) || n.stopwords.IsStopword(token) {
			continue
		}
		for _, affix := range n.affixes {
			token = strings.ReplaceAll(token, affix, "")
		}
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens, nil
}

func fallbackTokens(text string) []string {
	var tokens []string
	for _, word := range strings.Fields(lower(text)) {
		if isAlpha(word) {
			tokens = append(tokens, word)
		}
	}
	return tokens
}
