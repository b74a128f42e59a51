// Command sentimen prints a clause-by-clause sentiment report for a piece of
// Indonesian/English text.
package main

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	sentimen "github.com/GenKaiFr/Project-Pengenalan-Pola"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding lexicon, stopwords, markers or training data")
	lexiconPath := flag.String("lexicon", "", "JSON lexicon file with positive and negative word lists")
	sentences := flag.Bool("sentences", false, "segment the text into sentences before splitting clauses")
	plain := flag.Bool("plain", false, "disable terminal styling")
	verbose := flag.Bool("v", false, "log debug output")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           log.InfoLevel,
		Prefix:          "sentimen",
	})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg := sentimen.DefaultConfig()
	if *configPath != "" {
		loaded, err := sentimen.LoadConfigFile(*configPath)
		if err != nil {
			logger.Fatal("failed to load config", "path", *configPath, "err", err)
		}
		cfg = loaded
	}

	sources := []sentimen.DataSource{sentimen.UsingConfig(cfg), sentimen.WithLogger(logger)}
	if *lexiconPath != "" {
		lexicon, err := sentimen.LoadLexiconFile(*lexiconPath)
		if err != nil {
			logger.Fatal("failed to load lexicon", "path", *lexiconPath, "err", err)
		}
		sources = append(sources, sentimen.UsingLexicon(lexicon))
	}

	model := sentimen.ModelFromData("sentimen", sources...)
	if err := model.Train(); err != nil {
		logger.Warn("continuing with untrained naive bayes", "err", err)
	} else {
		logger.Info("naive bayes model trained", "examples", len(cfg.Training))
	}
	analyzer := model.Analyzer()

	text := strings.Join(flag.Args(), " ")
	if strings.TrimSpace(text) == "" {
		text = sentimen.DefaultText
	}

	var report sentimen.Report
	if *sentences {
		var err error
		if report, err = analyzer.AnalyzeDocument(text); err != nil {
			logger.Fatal("sentence segmentation failed", "err", err)
		}
	} else {
		report = analyzer.Analyze(text)
	}

	if err := sentimen.WriteReport(os.Stdout, report, sentimen.ReportOptions{Plain: *plain}); err != nil {
		logger.Fatal("failed to write report", "err", err)
	}
}
