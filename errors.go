package sentimen

import "errors"

var (
	// ErrUnknownLabel is returned for a label name outside positive, negative and neutral.
	ErrUnknownLabel = errors.New("unknown label")

	// ErrNoTrainingData is returned when Train is given no examples.
	ErrNoTrainingData = errors.New("training data is empty")

	// ErrAlreadyTrained is returned when Train is called on a trained model.
	ErrAlreadyTrained = errors.New("model is already trained")

	// ErrEmptyLexicon is returned when a lexicon source holds no words at all.
	ErrEmptyLexicon = errors.New("lexicon is empty")
)
