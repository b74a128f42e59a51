package sentimen

import (
	"io"

	"github.com/charmbracelet/log"
)

// A Model holds the structures and data used internally by sentimen.
type Model struct {
	Name string

	lexicon    *Lexicon
	normalizer *Normalizer
	splitter   *ClauseSplitter
	bayes      *NaiveBayes
	training   []TrainingExample
	logger     *log.Logger
}

// DataSource provides data to a Model.
type DataSource func(model *Model)

// UsingLexicon sets the lexicon used for keyword scoring.
func UsingLexicon(lexicon *Lexicon) DataSource {
	return func(model *Model) {
		model.lexicon = lexicon
	}
}

// UsingTrainingData sets the examples the Naive Bayes model is trained on.
func UsingTrainingData(data []TrainingExample) DataSource {
	return func(model *Model) {
		model.training = data
	}
}

// UsingNormalizer sets the normalizer applied before Naive Bayes counting.
func UsingNormalizer(normalizer *Normalizer) DataSource {
	return func(model *Model) {
		model.normalizer = normalizer
	}
}

// UsingClauseSplitter sets the clause splitter.
func UsingClauseSplitter(splitter *ClauseSplitter) DataSource {
	return func(model *Model) {
		model.splitter = splitter
	}
}

// WithLogger sets the logger. Models log nothing by default.
func WithLogger(logger *log.Logger) DataSource {
	return func(model *Model) {
		model.logger = logger
	}
}

// UsingConfig builds every component from cfg.
func UsingConfig(cfg Config) DataSource {
	return func(model *Model) {
		model.lexicon = NewLexicon(cfg.Positive, cfg.Negative)
		model.normalizer = NewNormalizer(
			UsingStopwords(NewStopwordFilter(cfg.Stopwords, cfg.StopwordLanguages...)),
			UsingAffixes(cfg.Affixes),
		)
		model.splitter = NewClauseSplitter(cfg.Markers...)
		model.training = cfg.Training
	}
}

// ModelFromData creates an untrained Model. Components not provided by a source fall
// back to the bundled defaults.
func ModelFromData(name string, sources ...DataSource) *Model {
	model := &Model{Name: name}
	for _, source := range sources {
		source(model)
	}

	if model.lexicon == nil {
		model.lexicon = DefaultLexicon()
	}
	if model.normalizer == nil {
		model.normalizer = NewNormalizer()
	}
	if model.splitter == nil {
		model.splitter = NewClauseSplitter()
	}
	if model.training == nil {
		model.training = DefaultTrainingData()
	}
	if model.logger == nil {
		model.logger = log.New(io.Discard)
	}
	model.bayes = NewNaiveBayes(model.normalizer)

	return model
}

// Train trains the Naive Bayes model on the model's training data. On error the model
// stays untrained and Naive Bayes predictions use the fallback distribution.
func (m *Model) Train() error {
	if err := m.bayes.Train(m.training); err != nil {
		m.logger.Warn("naive bayes training failed", "model", m.Name, "err", err)
		return err
	}
	m.logger.Debug("naive bayes trained",
		"model", m.Name,
		"examples", len(m.training),
		"vocabulary", m.bayes.VocabularySize(),
	)
	return nil
}

// Lexicon returns the model's lexicon.
func (m *Model) Lexicon() *Lexicon {
	return m.lexicon
}

// NaiveBayes returns the model's classifier.
func (m *Model) NaiveBayes() *NaiveBayes {
	return m.bayes
}

// Splitter returns the model's clause splitter.
func (m *Model) Splitter() *ClauseSplitter {
	return m.splitter
}

// Analyzer creates an analyzer backed by this model.
func (m *Model) Analyzer() *Analyzer {
	return &Analyzer{model: m}
}
