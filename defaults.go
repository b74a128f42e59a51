package sentimen

// Default data used when no configuration overrides it. Multi-word lexicon entries are
// kept as-is; whitespace tokenization never produces them.

var defaultPositiveWords = []string{
	"senang", "bahagia", "menyenangkan", "bagus", "suka", "cinta", "gembira", "puas", "hebat", "mantap",
	"indah", "cantik", "luar biasa", "fantastis", "menakjubkan", "sempurna", "terbaik", "keren", "asyik", "menarik",
	"berhasil", "sukses", "bangga", "optimis", "antusias", "bersemangat", "excited", "amazing", "wonderful", "excellent",
	"lega", "tenang", "damai", "nyaman", "fresh", "segar", "cerah", "positif", "beruntung", "grateful",
}

var defaultNegativeWords = []string{
	"sedih", "buruk", "kecewa", "marah", "benci", "jelek", "tidak", "bosan", "lelah", "susah",
	"menyebalkan", "kesal", "jengkel", "stress", "depresi", "putus asa", "hopeless", "terrible", "awful", "bad",
	"gagal", "rugi", "sakit", "pusing", "mual", "muntah", "demam", "flu", "batuk", "pilek",
	"takut", "cemas", "khawatir", "nervous", "panik", "gelisah", "resah", "hancur", "rusak", "patah",
}

// Indonesian function words removed before Naive Bayes counting.
var defaultStopwords = []string{
	"dan", "atau", "yang", "ini", "itu", "adalah", "dengan", "untuk", "dari", "ke", "di", "pada",
	"dalam", "akan", "telah", "sudah", "juga", "dapat", "bisa", "harus", "sangat", "sekali", "banget",
}

// Substrings stripped from every token, in order. This is naive affix removal: any
// occurrence is removed, not only a true suffix.
var defaultAffixes = []string{"nya", "kan", "an"}

// Clause boundary markers, besides the comma.
var defaultMarkers = []string{
	"abis itu", "abis tu", "tapi", "tetapi", "namun", "lalu", "kemudian", "dan",
}

// DefaultText is the sentence analyzed when no input is given.
const DefaultText = "Saya merasa senang, bahagia, dan bangga karena hasil kerja yang bagus, keren, dan berhasil, " +
	"bahkan terasa luar biasa dan mantap, namun di sisi lain sempat muncul perasaan lelah, cemas, dan khawatir " +
	"karena beberapa kendala yang menyebalkan, membuat situasi terasa stress dan hampir putus asa, meskipun " +
	"akhirnya saya tetap optimis, bersemangat, dan grateful karena masalah tersebut tidak berujung gagal atau buruk."

func examples(label Label, texts ...string) []TrainingExample {
	out := make([]TrainingExample, len(texts))
	for i, text := range texts {
		out[i] = TrainingExample{Text: text, Label: label}
	}
	return out
}

var defaultTraining = concatExamples(
	examples(Positive,
		"saya sangat senang hari ini", "aku bahagia sekali", "ini menyenangkan", "bagus banget",
		"aku suka ini", "cinta banget", "gembira sekali", "puas dengan hasil", "hebat sekali",
		"mantap jiwa", "indah sekali", "cantik banget", "luar biasa", "fantastis",
	),
	examples(Negative,
		"aku sedih sekali", "ini buruk", "kecewa banget", "marah sekali", "benci ini",
		"jelek banget", "tidak suka", "bosan sekali", "lelah banget", "susah sekali",
		"menyebalkan", "kesal banget", "jengkel sekali", "stress banget", "depresi",
	),
	examples(Neutral,
		"hari ini biasa saja", "tidak ada yang spesial", "standar", "lumayan", "cukup",
	),
)

func concatExamples(groups ...[]TrainingExample) []TrainingExample {
	var out []TrainingExample
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// DefaultTrainingData returns a copy of the bundled 34-example training set.
func DefaultTrainingData() []TrainingExample {
	return append([]TrainingExample(nil), defaultTraining...)
}

// DefaultStopwords returns a copy of the bundled stopword list.
func DefaultStopwords() []string {
	return append([]string(nil), defaultStopwords...)
}
