package sentimen

// Analyzer scores text clause by clause with both the lexicon and Naive Bayes.
type Analyzer struct {
	model *Model
}

// NewAnalyzer creates an analyzer over a freshly trained default model. A training
// failure is returned alongside a usable analyzer whose Naive Bayes side falls back.
func NewAnalyzer(sources ...DataSource) (*Analyzer, error) {
	model := ModelFromData("default", sources...)
	err := model.Train()
	return model.Analyzer(), err
}

// Analyze splits text into clauses and classifies each one.
func (a *Analyzer) Analyze(text string) Report {
	return a.analyzeClauses(text, a.model.splitter.Split(text))
}

// AnalyzeDocument segments text into sentences before clause splitting, so sentence
// boundaries also end clauses.
func (a *Analyzer) AnalyzeDocument(text string) (Report, error) {
	clauses, err := a.model.splitter.SplitDocument(text)
	if err != nil {
		return Report{}, err
	}
	return a.analyzeClauses(text, clauses), nil
}

// AnalyzeClause classifies a single clause.
func (a *Analyzer) AnalyzeClause(clause Clause) ClauseResult {
	result := ClauseResult{
		Clause:  clause,
		Lexicon: a.model.lexicon.Classify(clause.Text),
		Bayes:   a.model.bayes.Predict(clause.Text),
	}
	if err := result.Bayes.NormalizeErr; err != nil {
		a.model.logger.Warn("normalizer fell back to plain tokenization",
			"clause", clause.Text, "err", err)
	}
	return result
}

func (a *Analyzer) analyzeClauses(text string, clauses []Clause) Report {
	report := Report{
		Text:    text,
		Clauses: make([]ClauseResult, 0, len(clauses)),
	}
	for _, clause := range clauses {
		report.Clauses = append(report.Clauses, a.AnalyzeClause(clause))
	}
	report.Summary = Summarize(report.Clauses)

	a.model.logger.Debug("analyzed text",
		"clauses", len(report.Clauses),
		"positive", report.Summary.Positive,
		"negative", report.Summary.Negative,
		"verdict", report.Summary.Verdict,
	)
	return report
}

// Summarize tallies clause labels by majority vote. The verdict follows the lexicon
// labels: more positive than negative clauses is positive, fewer is negative, and equal
// counts are balanced.
func Summarize(results []ClauseResult) Summary {
	summary := Summary{Bayes: make(map[Label]int)}
	for _, r := range results {
		switch r.Lexicon.Label {
		case Positive:
			summary.Positive++
		case Negative:
			summary.Negative++
		default:
			summary.Neutral++
		}
		summary.Bayes[r.Bayes.Label]++
	}

	switch {
	case summary.Positive > summary.Negative:
		summary.Verdict = VerdictPositive
	case summary.Negative > summary.Positive:
		summary.Verdict = VerdictNegative
	default:
		summary.Verdict = VerdictBalanced
	}
	return summary
}
