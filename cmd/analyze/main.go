// Command analyze scores résumé files from disk and prints the feedback as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"alfredoptarigan/resume-analyzer/internal/logger"
	"alfredoptarigan/resume-analyzer/internal/services"
)

func main() {
	var (
		vocabPath = flag.String("vocab", "", "YAML vocabulary file replacing the built-in lists")
		matchMode = flag.String("mode", string(services.MatchSubstring), "term matching: substring or word")
		verbose   = flag.Bool("v", false, "log score breakdown and similarity")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: analyze [flags] <file.pdf|file.docx>...\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	level := "warn"
	if *verbose {
		level = "info"
	}
	logger.Init(logger.Config{Level: level, Format: "pretty"})

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	vocab := services.DefaultVocabulary()
	if *vocabPath != "" {
		loaded, err := services.LoadVocabulary(*vocabPath)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to load vocabulary")
		}
		vocab = loaded
	}

	mode, err := services.ParseMatchMode(*matchMode)
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid match mode")
	}

	parser := services.NewDocumentParserService()
	analyzer := services.NewAnalyzerService(vocab, mode)
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	failed := 0
	for _, path := range flag.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Error().Err(err).Str("path", path).Msg("Failed to read file")
			failed++
			continue
		}

		text, err := parser.ExtractText(path, data)
		if err != nil {
			logger.Error().Err(err).Str("path", path).Msg("Failed to extract text")
			failed++
			continue
		}

		result := analyzer.Analyze(text)
		logger.Info().
			Str("path", path).
			Int("words", result.WordCount).
			Int("skill_score", result.Breakdown.SkillScore).
			Int("section_score", result.Breakdown.SectionScore).
			Int("length_score", result.Breakdown.LengthScore).
			Float64("similarity", result.Similarity).
			Msg("Analyzed")

		if err := encoder.Encode(result.Feedback); err != nil {
			logger.Fatal().Err(err).Msg("Failed to write output")
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
