package sentimen

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Lexicon holds the positive and negative sentiment word sets. It is immutable once
// built and safe for concurrent use.
type Lexicon struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

// ExternalLexicon represents the JSON structure for external lexicon files
type ExternalLexicon struct {
	Positive []string `json:"positive"`
	Negative []string `json:"negative"`
}

// NewLexicon builds a lexicon from two word lists. Words are lowercased and trimmed;
// blank entries are skipped.
func NewLexicon(positive, negative []string) *Lexicon {
	return &Lexicon{
		positive: wordSet(positive),
		negative: wordSet(negative),
	}
}

// DefaultLexicon returns the bundled Indonesian/English lexicon.
func DefaultLexicon() *Lexicon {
	return NewLexicon(defaultPositiveWords, defaultNegativeWords)
}

// LoadLexiconJSON reads a lexicon in the ExternalLexicon format.
func LoadLexiconJSON(r io.Reader) (*Lexicon, error) {
	var external ExternalLexicon
	if err := json.NewDecoder(r).Decode(&external); err != nil {
		return nil, fmt.Errorf("error parsing lexicon JSON: %w", err)
	}

	lexicon := NewLexicon(external.Positive, external.Negative)
	if lexicon.Size() == 0 {
		return nil, ErrEmptyLexicon
	}
	return lexicon, nil
}

// LoadLexiconFile reads a JSON lexicon from disk.
func LoadLexiconFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading lexicon file: %w", err)
	}
	defer f.Close()

	return LoadLexiconJSON(f)
}

func wordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = lower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

// IsPositive reports whether word is in the positive set. The match is exact.
func (lx *Lexicon) IsPositive(word string) bool {
	_, ok := lx.positive[word]
	return ok
}

// IsNegative reports whether word is in the negative set. The match is exact.
func (lx *Lexicon) IsNegative(word string) bool {
	_, ok := lx.negative[word]
	return ok
}

// Size returns the number of words across both sets.
func (lx *Lexicon) Size() int {
	return len(lx.positive) + len(lx.negative)
}

// Score lowercases text, splits it on whitespace and counts tokens found in each set.
// Punctuation is not stripped, so "senang," is not a hit.
func (lx *Lexicon) Score(text string) (positive, negative int) {
	for _, word := range strings.Fields(lower(text)) {
		if lx.IsPositive(word) {
			positive++
		}
		if lx.IsNegative(word) {
			negative++
		}
	}
	return positive, negative
}

// Classify scores text and derives a label with two probabilities.
//
// Text without any hit is neutral with a fixed 0.5/0.5 split. Otherwise the
// probabilities are the share of hits on each side, and a tie is neutral.
func (lx *Lexicon) Classify(text string) LexiconResult {
	pos, neg := lx.Score(text)
	result := LexiconResult{
		Label:        Neutral,
		PositiveHits: pos,
		NegativeHits: neg,
		ProbPositive: 0.5,
		ProbNegative: 0.5,
	}
	if pos == 0 && neg == 0 {
		return result
	}

	result.ProbPositive = float64(pos) / float64(pos+neg)
	result.ProbNegative = 1 - result.ProbPositive

	switch {
	case pos > neg:
		result.Label = Positive
	case neg > pos:
		result.Label = Negative
	}
	return result
}
