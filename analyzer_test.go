package sentimen

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnalyzer(t *testing.T, sources ...DataSource) *Analyzer {
	t.Helper()
	analyzer, err := NewAnalyzer(sources...)
	require.NoError(t, err)
	return analyzer
}

func TestAnalyzeTwoClauses(t *testing.T) {
	report := newTestAnalyzer(t).Analyze("saya senang tapi saya sedih")

	require.Len(t, report.Clauses, 2)

	first, second := report.Clauses[0], report.Clauses[1]
	assert.Equal(t, "saya senang", first.Clause.Text)
	assert.Equal(t, Positive, first.Lexicon.Label)
	assert.Equal(t, 1, first.Lexicon.PositiveHits)
	assert.Equal(t, 0, first.Lexicon.NegativeHits)
	assert.Equal(t, Positive, first.Bayes.Label)

	assert.Equal(t, "saya sedih", second.Clause.Text)
	assert.Equal(t, Negative, second.Lexicon.Label)
	assert.Equal(t, 0, second.Lexicon.PositiveHits)
	assert.Equal(t, 1, second.Lexicon.NegativeHits)
	assert.Equal(t, Negative, second.Bayes.Label)

	assert.Equal(t, 1, report.Summary.Positive)
	assert.Equal(t, 1, report.Summary.Negative)
	assert.Equal(t, VerdictBalanced, report.Summary.Verdict)
}

func TestAnalyzeNeutralText(t *testing.T) {
	report := newTestAnalyzer(t).Analyze("hari ini biasa saja")

	require.Len(t, report.Clauses, 1)
	r := report.Clauses[0]
	assert.Equal(t, Neutral, r.Lexicon.Label)
	assert.Equal(t, 0.5, r.Lexicon.ProbPositive)
	assert.Equal(t, 0.5, r.Lexicon.ProbNegative)
	assert.Equal(t, Neutral, r.Bayes.Label)
	assert.Equal(t, 1, report.Summary.Neutral)
}

func TestAnalyzeDefaultText(t *testing.T) {
	report := newTestAnalyzer(t).Analyze(DefaultText)

	require.Len(t, report.Clauses, 15)
	assert.Equal(t, 8, report.Summary.Positive)
	assert.Equal(t, 5, report.Summary.Negative)
	assert.Equal(t, 2, report.Summary.Neutral)
	assert.Equal(t, VerdictPositive, report.Summary.Verdict)

	bayesTotal := 0
	for _, n := range report.Summary.Bayes {
		bayesTotal += n
	}
	assert.Equal(t, 15, bayesTotal)

	last := report.Clauses[14].Lexicon
	assert.Equal(t, Negative, last.Label)
	assert.Equal(t, 1, last.PositiveHits)
	assert.Equal(t, 2, last.NegativeHits)
	assert.InDelta(t, 1.0/3.0, last.ProbPositive, 1e-9)
}

func TestAnalyzeDocument(t *testing.T) {
	analyzer := newTestAnalyzer(t, UsingClauseSplitter(NewClauseSplitter("but")))

	report, err := analyzer.AnalyzeDocument("I feel amazing. But the ending was terrible.")
	require.NoError(t, err)

	require.Len(t, report.Clauses, 2)
	assert.Equal(t, "I feel amazing.", report.Clauses[0].Clause.Text)
	assert.Equal(t, "the ending was terrible.", report.Clauses[1].Clause.Text)
	// "amazing." keeps its period, so the lexicon misses it.
	assert.Equal(t, Neutral, report.Clauses[0].Lexicon.Label)
}

func TestAnalyzerWithBadTrainingDataFallsBack(t *testing.T) {
	analyzer, err := NewAnalyzer(UsingTrainingData([]TrainingExample{{Text: "bagus", Label: Label("hmm")}}))
	require.ErrorIs(t, err, ErrUnknownLabel)
	require.NotNil(t, analyzer)

	report := analyzer.Analyze("saya senang")
	require.Len(t, report.Clauses, 1)
	assert.Equal(t, Positive, report.Clauses[0].Lexicon.Label)
	assert.True(t, report.Clauses[0].Bayes.Fallback)
	assert.Equal(t, Neutral, report.Clauses[0].Bayes.Label)
}

func TestSummarize(t *testing.T) {
	result := func(lex, nb Label) ClauseResult {
		return ClauseResult{Lexicon: LexiconResult{Label: lex}, Bayes: Prediction{Label: nb}}
	}

	tests := []struct {
		results []ClauseResult
		verdict Verdict
		desc    string
	}{
		{nil, VerdictBalanced, "No clauses"},
		{[]ClauseResult{result(Positive, Positive)}, VerdictPositive, "One positive"},
		{[]ClauseResult{result(Negative, Positive), result(Neutral, Neutral)}, VerdictNegative, "Negative and neutral"},
		{[]ClauseResult{result(Positive, Negative), result(Negative, Negative)}, VerdictBalanced, "Tie"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			summary := Summarize(tt.results)
			assert.Equal(t, tt.verdict, summary.Verdict)

			total := 0
			for _, n := range summary.Bayes {
				total += n
			}
			assert.Equal(t, len(tt.results), total)
			assert.Equal(t, len(tt.results), summary.Positive+summary.Negative+summary.Neutral)
		})
	}
}

func TestAnalyzeClauseLogsNormalizerFallback(t *testing.T) {
	var buf bytes.Buffer
	analyzer := newTestAnalyzer(t, WithLogger(log.New(&buf)))

	result := analyzer.AnalyzeClause(Clause{Text: "aku senang \xff"})
	assert.Error(t, result.Bayes.NormalizeErr)
	assert.Contains(t, buf.String(), "normalizer fell back to plain tokenization")

	buf.Reset()
	analyzer.AnalyzeClause(Clause{Text: "aku senang"})
	assert.Empty(t, buf.String())
}
