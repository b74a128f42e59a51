package sentimen

import (
	"fmt"
	"strings"
)

// Label represents a sentiment category.
type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

// Labels lists every label in its canonical order.
var Labels = []Label{Positive, Negative, Neutral}

// labelAliases maps accepted spellings to labels. The Indonesian names are the ones used
// by the bundled training data.
var labelAliases = map[string]Label{
	"positive": Positive,
	"positif":  Positive,
	"negative": Negative,
	"negatif":  Negative,
	"neutral":  Neutral,
	"netral":   Neutral,
}

// ParseLabel converts a label name into a Label.
func ParseLabel(name string) (Label, error) {
	if label, ok := labelAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return label, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLabel, name)
}

// Valid reports whether l is one of the known labels.
func (l Label) Valid() bool {
	return l == Positive || l == Negative || l == Neutral
}

// UnmarshalText lets labels be decoded from configuration files by any of their names.
func (l *Label) UnmarshalText(text []byte) error {
	label, err := ParseLabel(string(text))
	if err != nil {
		return err
	}
	*l = label
	return nil
}

// A TrainingExample is a labelled piece of text.
type TrainingExample struct {
	Text  string `yaml:"text" json:"text"`
	Label Label  `yaml:"label" json:"label"`
}

// A Clause represents a fragment of a sentence treated as one unit of sentiment.
type Clause struct {
	Text  string // The clause's trimmed text.
	Start int    // Start byte offset in the source text
	End   int    // End byte offset in the source text
}

// String returns the text content of the clause
func (c Clause) String() string {
	return c.Text
}

// LexiconResult is the outcome of lexicon scoring for one piece of text.
type LexiconResult struct {
	Label        Label
	PositiveHits int
	NegativeHits int
	ProbPositive float64
	ProbNegative float64
}

// Prediction is the outcome of Naive Bayes classification.
type Prediction struct {
	Label         Label
	Probabilities map[Label]float64 // Distribution over the labels seen in training
	Fallback      bool              // True when the fixed fallback distribution was returned
	NormalizeErr  error             // Why normalization fell back to plain tokenization, if it did
}

// Prob returns the probability assigned to label, or zero when the model never saw it.
func (p Prediction) Prob(label Label) float64 {
	return p.Probabilities[label]
}

// ClauseResult pairs a clause with both of its classifications.
type ClauseResult struct {
	Clause  Clause
	Lexicon LexiconResult
	Bayes   Prediction
}

// Verdict is the overall conclusion drawn from the clause tally.
type Verdict string

const (
	VerdictPositive Verdict = "positive"
	VerdictNegative Verdict = "negative"
	VerdictBalanced Verdict = "balanced"
)

// Summary tallies clause labels.
type Summary struct {
	Positive int // Clauses the lexicon labelled positive
	Negative int // Clauses the lexicon labelled negative
	Neutral  int // Clauses the lexicon labelled neutral

	Bayes map[Label]int // Clauses per Naive Bayes label

	Verdict Verdict
}

// Report holds the full analysis of one text.
type Report struct {
	Text    string
	Clauses []ClauseResult
	Summary Summary
}
