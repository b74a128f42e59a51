package sentimen

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// ClauseSplitter breaks sentences into clauses at commas and conjunction markers.
// It is a heuristic segmenter: quotes, nesting and other punctuation are not handled.
type ClauseSplitter struct {
	delimiter *regexp.Regexp
	markers   []string
}

// NewClauseSplitter builds a splitter from conjunction/transition markers. With no
// markers the bundled Indonesian list is used. Markers match case-insensitively as whole
// words, where any Unicode letter or digit counts as part of a word; longer markers are
// tried first so a phrase wins over a marker that begins it.
func NewClauseSplitter(markers ...string) *ClauseSplitter {
	if len(markers) == 0 {
		markers = defaultMarkers
	}

	cleaned := make([]string, 0, len(markers))
	for _, m := range markers {
		if m = strings.TrimSpace(m); m != "" {
			cleaned = append(cleaned, m)
		}
	}
	sort.SliceStable(cleaned, func(i, j int) bool {
		return len(cleaned[i]) > len(cleaned[j])
	})

	alternatives := []string{","}
	for _, m := range cleaned {
		alternatives = append(alternatives, `\b`+regexp.QuoteMeta(m)+`\b`)
	}

	return &ClauseSplitter{
		delimiter: regexp.MustCompile(`(?i)(?:` + strings.Join(alternatives, "|") + `)`),
		markers:   cleaned,
	}
}

// Markers returns the markers in matching order.
func (cs *ClauseSplitter) Markers() []string {
	return append([]string(nil), cs.markers...)
}

// Split breaks text into trimmed, non-empty clauses in order of appearance.
func (cs *ClauseSplitter) Split(text string) []Clause {
	return cs.split(text, 0)
}

func (cs *ClauseSplitter) split(text string, base int) []Clause {
	var (
		clauses []Clause
		buffer  strings.Builder
		start   = -1
	)

	flush := func() {
		raw := buffer.String()
		buffer.Reset()
		trimmed := strings.TrimSpace(raw)
		if trimmed != "" {
			offset := start + strings.Index(raw, trimmed)
			clauses = append(clauses, Clause{
				Text:  trimmed,
				Start: base + offset,
				End:   base + offset + len(trimmed),
			})
		}
		start = -1
	}

	last := 0
	for _, loc := range cs.delimiter.FindAllStringIndex(text, -1) {
		if !isDelimiter(text, loc) {
			continue
		}
		if loc[0] > last {
			if start < 0 {
				start = last
			}
			buffer.WriteString(text[last:loc[0]])
		}
		flush()
		last = loc[1]
	}
	if last < len(text) {
		if start < 0 {
			start = last
		}
		buffer.WriteString(text[last:])
	}
	flush()

	return clauses
}

// isDelimiter reports whether the match at loc splits text. RE2's \b only knows ASCII
// word characters, so a marker touching a non-ASCII letter such as "dané" is rejected
// here.
func isDelimiter(text string, loc []int) bool {
	if text[loc[0]:loc[1]] == "," {
		return true
	}
	before, _ := utf8.DecodeLastRuneInString(text[:loc[0]])
	after, _ := utf8.DecodeRuneInString(text[loc[1]:])
	return !isWordRune(before) && !isWordRune(after)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

var (
	sentenceTokenizer     *sentences.DefaultSentenceTokenizer
	sentenceTokenizerErr  error
	sentenceTokenizerOnce sync.Once
)

func loadSentenceTokenizer() (*sentences.DefaultSentenceTokenizer, error) {
	sentenceTokenizerOnce.Do(func() {
		sentenceTokenizer, sentenceTokenizerErr = english.NewSentenceTokenizer(nil)
	})
	return sentenceTokenizer, sentenceTokenizerErr
}

// SplitSentences segments text into sentences with the punkt tokenizer. Offsets refer to
// text.
func SplitSentences(text string) ([]Clause, error) {
	tokenizer, err := loadSentenceTokenizer()
	if err != nil {
		return nil, fmt.Errorf("loading sentence tokenizer: %w", err)
	}

	var sents []string
	for _, sent := range tokenizer.Tokenize(text) {
		sents = append(sents, sent.Text)
	}
	return locateSentences(text, sents)
}

// locateSentences trims each sentence and finds it in text, left to right.
func locateSentences(text string, sents []string) ([]Clause, error) {
	var (
		out    []Clause
		cursor int
	)
	for _, sent := range sents {
		trimmed := strings.TrimSpace(sent)
		if trimmed == "" {
			continue
		}
		idx := strings.Index(text[cursor:], trimmed)
		if idx < 0 {
			return nil, fmt.Errorf("sentence %q not found in text after offset %d", trimmed, cursor)
		}
		start := cursor + idx
		end := start + len(trimmed)
		out = append(out, Clause{Text: trimmed, Start: start, End: end})
		cursor = end
	}
	return out, nil
}

// SplitDocument segments text into sentences and each sentence into clauses. Clause
// offsets refer to the whole document.
func (cs *ClauseSplitter) SplitDocument(text string) ([]Clause, error) {
	sents, err := SplitSentences(text)
	if err != nil {
		return nil, err
	}

	var clauses []Clause
	for _, sent := range sents {
		clauses = append(clauses, cs.split(text[sent.Start:sent.End], sent.Start)...)
	}
	return clauses, nil
}
