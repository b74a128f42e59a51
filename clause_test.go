package sentimen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clauseTexts(clauses []Clause) []string {
	var out []string
	for _, c := range clauses {
		out = append(out, c.Text)
	}
	return out
}

func TestClauseSplit(t *testing.T) {
	tests := []struct {
		text string
		want []string
		desc string
	}{
		{"saya senang tapi saya sedih", []string{"saya senang", "saya sedih"}, "Conjunction"},
		{"Saya senang, TAPI sedih", []string{"Saya senang", "sedih"}, "Comma and uppercase marker"},
		{"bagus tetapi mahal", []string{"bagus", "mahal"}, "Longer marker"},
		{"makan abis itu tidur", []string{"makan", "tidur"}, "Colloquial phrase"},
		{"makan abis tu tidur", []string{"makan", "tidur"}, "Short colloquial phrase"},
		{"abis itu pulang", []string{"pulang"}, "Leading marker"},
		{"danau indah", []string{"danau indah"}, "Marker inside a word"},
		{"kopi dané enak", []string{"kopi dané enak"}, "Marker before a non-ASCII letter"},
		{"édan manis", []string{"édan manis"}, "Marker after a non-ASCII letter"},
		{"kopi dan_enak", []string{"kopi dan_enak"}, "Marker before an underscore"},
		{"café dan teh", []string{"café", "teh"}, "Non-ASCII word before a marker"},
		{"lalu kemudian namun dan", nil, "Only markers"},
		{" , ,, ", nil, "Only commas"},
		{"", nil, "Empty text"},
	}

	splitter := NewClauseSplitter()
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			assert.Equal(t, tt.want, clauseTexts(splitter.Split(tt.text)))
		})
	}
}

func TestClauseSplitDefaultText(t *testing.T) {
	want := []string{
		"Saya merasa senang",
		"bahagia",
		"bangga karena hasil kerja yang bagus",
		"keren",
		"berhasil",
		"bahkan terasa luar biasa",
		"mantap",
		"di sisi lain sempat muncul perasaan lelah",
		"cemas",
		"khawatir karena beberapa kendala yang menyebalkan",
		"membuat situasi terasa stress",
		"hampir putus asa",
		"meskipun akhirnya saya tetap optimis",
		"bersemangat",
		"grateful karena masalah tersebut tidak berujung gagal atau buruk.",
	}
	assert.Equal(t, want, clauseTexts(NewClauseSplitter().Split(DefaultText)))
}

func TestClauseSplitOffsets(t *testing.T) {
	texts := []string{DefaultText, "saya senang tapi saya sedih", "  a , b dan   c  "}

	splitter := NewClauseSplitter()
	for _, text := range texts {
		prevEnd := 0
		var content []string
		for _, c := range splitter.Split(text) {
			assert.NotEmpty(t, strings.TrimSpace(c.Text))
			assert.Equal(t, c.Text, text[c.Start:c.End])
			assert.GreaterOrEqual(t, c.Start, prevEnd)
			prevEnd = c.End
			content = append(content, strings.Fields(c.Text)...)
		}

		// Dropping the delimiters from the source leaves exactly the clause words.
		stripped := splitter.delimiter.ReplaceAllString(text, " ")
		assert.Equal(t, strings.Fields(stripped), content)
	}
}

func TestClauseSplitCustomMarkers(t *testing.T) {
	splitter := NewClauseSplitter("but", "however", " ", "and then")

	assert.Equal(t, []string{"and then", "however", "but"}, splitter.Markers())
	assert.Equal(t,
		[]string{"good", "bad", "fine", "done"},
		clauseTexts(splitter.Split("good But bad however fine and then done")),
	)
}

func TestSplitDocument(t *testing.T) {
	text := "The food was great. But the service was slow, and the room was cold."
	splitter := NewClauseSplitter("but", "and")

	clauses, err := splitter.SplitDocument(text)
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"The food was great.", "the service was slow", "the room was cold."},
		clauseTexts(clauses),
	)
	for _, c := range clauses {
		assert.Equal(t, c.Text, text[c.Start:c.End])
	}
}

func TestClauseSplitOffsetsNonASCII(t *testing.T) {
	text := "kopi dané enak, tapi édan manis dan café"
	clauses := NewClauseSplitter().Split(text)

	require.Equal(t, []string{"kopi dané enak", "édan manis", "café"}, clauseTexts(clauses))
	for _, c := range clauses {
		assert.Equal(t, c.Text, text[c.Start:c.End])
	}
}

func TestLocateSentences(t *testing.T) {
	sents, err := locateSentences("I am happy.  I am sad.", []string{"I am happy.", " I am sad. "})
	require.NoError(t, err)
	require.Len(t, sents, 2)
	assert.Equal(t, 13, sents[1].Start)

	_, err = locateSentences("I am happy. I am sad.", []string{"I am sad.", "I am happy."})
	assert.ErrorContains(t, err, `"I am happy." not found`)
}

func TestSplitSentences(t *testing.T) {
	text := "I am happy. I am sad."
	sents, err := SplitSentences(text)
	require.NoError(t, err)

	require.Len(t, sents, 2)
	assert.Equal(t, "I am happy.", sents[0].Text)
	assert.Equal(t, "I am sad.", sents[1].Text)
	assert.Equal(t, 12, sents[1].Start)
}
