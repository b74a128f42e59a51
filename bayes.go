package sentimen

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// fallbackProbability is given to every label when the model has nothing to say.
const fallbackProbability = 0.33

// NaiveBayes is a multinomial Naive Bayes classifier with add-one smoothing.
//
// A model starts untrained and is trained once. Predictions on an untrained model
// return a fixed fallback distribution instead of failing. Train and Reset are
// exclusive against Predict.
type NaiveBayes struct {
	normalizer *Normalizer

	mu         sync.RWMutex
	classes    []Label // first-seen order; breaks ties in Predict
	docCounts  map[Label]int
	wordCounts map[Label]map[string]int
	wordTotals map[Label]int
	vocabulary map[string]struct{}
	totalDocs  int
	trained    bool
}

// NewNaiveBayes creates an untrained model. A nil normalizer selects the default one.
func NewNaiveBayes(normalizer *Normalizer) *NaiveBayes {
	if normalizer == nil {
		normalizer = NewNormalizer()
	}
	nb := &NaiveBayes{normalizer: normalizer}
	nb.reset()
	return nb
}

func (nb *NaiveBayes) reset() {
	nb.classes = nil
	nb.docCounts = make(map[Label]int)
	nb.wordCounts = make(map[Label]map[string]int)
	nb.wordTotals = make(map[Label]int)
	nb.vocabulary = make(map[string]struct{})
	nb.totalDocs = 0
	nb.trained = false
}

// Reset returns the model to the untrained state.
func (nb *NaiveBayes) Reset() {
	nb.mu.Lock()
	defer nb.mu.Unlock()

	nb.reset()
}

// Train counts the normalized tokens of every example. The examples are validated before
// any counting, so a failed Train leaves the model untrained and empty.
func (nb *NaiveBayes) Train(examples []TrainingExample) error {
	if len(examples) == 0 {
		return ErrNoTrainingData
	}
	for i, ex := range examples {
		if !ex.Label.Valid() {
			return fmt.Errorf("example %d: %w: %q", i, ErrUnknownLabel, ex.Label)
		}
	}

	nb.mu.Lock()
	defer nb.mu.Unlock()

	if nb.trained {
		return ErrAlreadyTrained
	}

	for _, ex := range examples {
		if _, seen := nb.docCounts[ex.Label]; !seen {
			nb.classes = append(nb.classes, ex.Label)
			nb.wordCounts[ex.Label] = make(map[string]int)
		}
		nb.docCounts[ex.Label]++
		nb.totalDocs++

		for _, token := range nb.normalizer.Normalize(ex.Text) {
			nb.wordCounts[ex.Label][token]++
			nb.wordTotals[ex.Label]++
			nb.vocabulary[token] = struct{}{}
		}
	}

	nb.trained = true
	return nil
}

// Predict classifies text.
//
// Each class scores log(prior) plus the sum of log((count+1)/(classTotal+|V|)) over the
// normalized tokens; scores are turned into probabilities with log-sum-exp. Ties go to
// the class seen first during training.
func (nb *NaiveBayes) Predict(text string) Prediction {
	nb.mu.RLock()
	defer nb.mu.RUnlock()

	if !nb.trained || len(nb.classes) == 0 {
		return fallbackPrediction()
	}

	tokens, normalizeErr := nb.normalizer.NormalizeDetailed(text)
	vocabSize := float64(len(nb.vocabulary))

	scores := make([]float64, len(nb.classes))
	for i, class := range nb.classes {
		score := math.Log(float64(nb.docCounts[class]) / float64(nb.totalDocs))
		denominator := float64(nb.wordTotals[class]) + vocabSize
		for _, token := range tokens {
			score += math.Log(float64(nb.wordCounts[class][token]+1) / denominator)
		}
		scores[i] = score
	}

	norm := floats.LogSumExp(scores)
	if math.IsInf(norm, 0) || math.IsNaN(norm) {
		prediction := fallbackPrediction()
		prediction.NormalizeErr = normalizeErr
		return prediction
	}

	probs := make([]float64, len(scores))
	for i, score := range scores {
		probs[i] = math.Exp(score - norm)
	}
	floats.Scale(1/floats.Sum(probs), probs)

	prediction := Prediction{
		Label:         nb.classes[floats.MaxIdx(probs)],
		Probabilities: make(map[Label]float64, len(probs)),
		NormalizeErr:  normalizeErr,
	}
	for i, class := range nb.classes {
		prediction.Probabilities[class] = probs[i]
	}
	return prediction
}

func fallbackPrediction() Prediction {
	probs := make(map[Label]float64, len(Labels))
	for _, label := range Labels {
		probs[label] = fallbackProbability
	}
	return Prediction{Label: Neutral, Probabilities: probs, Fallback: true}
}

// Trained reports whether Train has completed.
func (nb *NaiveBayes) Trained() bool {
	nb.mu.RLock()
	defer nb.mu.RUnlock()

	return nb.trained
}

// Labels returns the classes in the order they were first seen during training.
func (nb *NaiveBayes) Labels() []Label {
	nb.mu.RLock()
	defer nb.mu.RUnlock()

	return append([]Label(nil), nb.classes...)
}

// VocabularySize returns the number of distinct normalized tokens seen in training.
func (nb *NaiveBayes) VocabularySize() int {
	nb.mu.RLock()
	defer nb.mu.RUnlock()

	return len(nb.vocabulary)
}

// DocumentCount returns the number of training examples carrying label.
func (nb *NaiveBayes) DocumentCount(label Label) int {
	nb.mu.RLock()
	defer nb.mu.RUnlock()

	return nb.docCounts[label]
}

// WordTotal returns the number of tokens counted for label.
func (nb *NaiveBayes) WordTotal(label Label) int {
	nb.mu.RLock()
	defer nb.mu.RUnlock()

	return nb.wordTotals[label]
}
