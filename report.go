package sentimen

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ReportOptions controls report rendering.
type ReportOptions struct {
	Plain bool // Disable terminal styling
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	verdictStyle = lipgloss.NewStyle().Bold(true)
	labelStyles  = map[Label]lipgloss.Style{
		Positive: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Negative: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Neutral:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
)

const rule = "============================================================"

// WriteReport prints the per-clause lexicon results, the per-clause Naive Bayes results
// and the summary.
func WriteReport(w io.Writer, report Report, opts ReportOptions) error {
	p := &printer{w: w, plain: opts.Plain}

	p.printf("Original text: %s\n", report.Text)
	p.printf("\n%s\n", rule)

	p.heading("LEXICON ANALYSIS PER CLAUSE")
	for i, r := range report.Clauses {
		p.printf("\nClause %d: '%s'\n", i+1, r.Clause.Text)
		p.printf("-> Prediction: %s\n", p.label(r.Lexicon.Label))
		p.printf("-> Positive probability: %s\n", percent(r.Lexicon.ProbPositive))
		p.printf("-> Negative probability: %s\n", percent(r.Lexicon.ProbNegative))
	}

	p.heading("NAIVE BAYES ANALYSIS PER CLAUSE")
	for i, r := range report.Clauses {
		p.printf("\nClause %d: '%s'\n", i+1, r.Clause.Text)
		p.printf("-> Prediction: %s\n", p.label(r.Bayes.Label))
		p.printf("-> Positive probability: %s\n", percent(r.Bayes.Prob(Positive)))
		p.printf("-> Negative probability: %s\n", percent(r.Bayes.Prob(Negative)))
		p.printf("-> Neutral probability: %s\n", percent(r.Bayes.Prob(Neutral)))
	}

	p.printf("\n%s\n", rule)
	p.heading("SENTIMENT SUMMARY")
	p.printf("Positive clauses: %d\n", report.Summary.Positive)
	p.printf("Negative clauses: %d\n", report.Summary.Negative)

	verdict := strings.ToUpper(string(report.Summary.Verdict))
	if !p.plain {
		verdict = verdictStyle.Render(verdict)
	}
	p.printf("\nConclusion: overall, the text carries %s sentiment.\n", verdict)

	return p.err
}

// printer remembers the first write error so the report reads top to bottom.
type printer struct {
	w     io.Writer
	plain bool
	err   error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) heading(title string) {
	title = "=== " + title + " ==="
	if !p.plain {
		title = headingStyle.Render(title)
	}
	p.printf("\n%s\n", title)
}

func (p *printer) label(l Label) string {
	text := strings.ToUpper(string(l))
	if p.plain {
		return text
	}
	return labelStyles[l].Render(text)
}

func percent(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}
