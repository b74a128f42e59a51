package sentimen

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the data a Model is built from. Fields left unset in a YAML file keep the
// bundled defaults.
type Config struct {
	Positive          []string          `yaml:"positive"`
	Negative          []string          `yaml:"negative"`
	Stopwords         []string          `yaml:"stopwords"`
	StopwordLanguages []string          `yaml:"stopword_languages"`
	Affixes           []string          `yaml:"affixes"`
	Markers           []string          `yaml:"markers"`
	Training          []TrainingExample `yaml:"training"`
}

// DefaultConfig returns the bundled configuration.
func DefaultConfig() Config {
	return Config{
		Positive:  append([]string(nil), defaultPositiveWords...),
		Negative:  append([]string(nil), defaultNegativeWords...),
		Stopwords: DefaultStopwords(),
		Affixes:   append([]string(nil), defaultAffixes...),
		Markers:   append([]string(nil), defaultMarkers...),
		Training:  DefaultTrainingData(),
	}
}

// LoadConfig decodes YAML from r and lays it over the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	var override Config
	if err := yaml.NewDecoder(r).Decode(&override); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("error parsing config YAML: %w", err)
	}
	return DefaultConfig().Merge(override), nil
}

// LoadConfigFile reads a YAML configuration file.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}
	defer f.Close()

	return LoadConfig(f)
}

// Merge returns c with every field that is set in override replaced.
func (c Config) Merge(override Config) Config {
	if override.Positive != nil {
		c.Positive = override.Positive
	}
	if override.Negative != nil {
		c.Negative = override.Negative
	}
	if override.Stopwords != nil {
		c.Stopwords = override.Stopwords
	}
	if override.StopwordLanguages != nil {
		c.StopwordLanguages = override.StopwordLanguages
	}
	if override.Affixes != nil {
		c.Affixes = override.Affixes
	}
	if override.Markers != nil {
		c.Markers = override.Markers
	}
	if override.Training != nil {
		c.Training = override.Training
	}
	return c
}
