package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"resumerag/internal/config"
	"resumerag/internal/domain"
	"resumerag/internal/extract"
	"resumerag/internal/generate"
	"resumerag/internal/service"
	"resumerag/internal/splitter"
	"resumerag/internal/summarize"
	"resumerag/internal/tui"
)

func main() {
	_ = godotenv.Load()

	cfgPath := flag.String("config", "config.yaml", "Path to config YAML")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	resumePath := cfg.Input.CV
	if args := flag.Args(); len(args) > 0 {
		resumePath = args[0]
	}
	if resumePath == "" {
		fmt.Println("Usage: resume-chat [--config=config.yaml] [resume.docx]")
		os.Exit(1)
	}

	svc, err := buildService(cfg)
	if err != nil {
		log.Fatalf("failed to assemble pipeline: %v", err)
	}
	if err := svc.LoadResume(resumePath); err != nil {
		log.Fatalf("failed to load resume: %v", err)
	}

	m := tui.New(svc)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}

func buildService(cfg *config.AppConfig) (*service.ResumeService, error) {
	var policy splitter.HeaderPolicy
	switch cfg.Splitter.Policy {
	case "catalog", "":
		policy = splitter.NewCatalogPolicy()
	case "uppercase":
		policy = splitter.NewUppercasePolicy()
	default:
		return nil, fmt.Errorf("unknown splitter policy: %s", cfg.Splitter.Policy)
	}

	var gen domain.Generator
	if cfg.Params.HFToken != "" {
		client, err := generate.NewClient(generate.Config{
			Token:   cfg.Params.HFToken,
			BaseURL: cfg.Params.BaseURL,
			Model:   cfg.Params.Model,
			Timeout: time.Duration(cfg.Params.TimeoutSecs) * time.Second,
		})
		if err != nil {
			return nil, err
		}
		gen = client
	} else {
		log.Println("no hf_token configured; answers will show raw sections and summaries use the extractive fallback")
	}

	return service.New(
		extract.NewFileExtractor(),
		splitter.New(policy),
		gen,
		summarize.NewFrequencySummarizer(),
		service.Options{
			TopK:                cfg.Retrieval.TopK,
			MaxFeatures:         cfg.Index.MaxFeatures,
			MaxAnswerTokens:     cfg.Params.MaxAnswerTokens,
			MaxSummaryTokens:    cfg.Params.MaxSummaryTokens,
			Temperature:         cfg.Params.Temperature,
			SummaryMaxSentences: cfg.Summary.MaxSentences,
		},
	), nil
}
