package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"resumerag/internal/config"
	"resumerag/internal/domain"
	"resumerag/internal/extract"
	"resumerag/internal/generate"
	"resumerag/internal/service"
	"resumerag/internal/splitter"
	"resumerag/internal/summarize"
)

// demoQuestions are answered when the tool runs without flags, mirroring
// a quick smoke run over a freshly indexed resume.
var demoQuestions = []string{
	"What programming languages does the candidate know?",
	"What is their most recent work experience?",
	"What degree do they have?",
	"What are their key achievements?",
}

func main() {
	_ = godotenv.Load()

	cfgPath := flag.String("config", "config.yaml", "Path to config YAML")
	question := flag.String("question", "", "Answer a single question and exit")
	summary := flag.Bool("summary", false, "Print the resume summary and exit")
	sections := flag.Bool("sections", false, "Print the recognized section titles and exit")
	topK := flag.Int("k", 0, "Number of sections to retrieve per question (default from config)")
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
		fmt.Println("Usage: resume-qa [--config=config.yaml] [flags] [resume.docx]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	svc, err := buildService(cfg)
	if err != nil {
		log.Fatalf("failed to assemble pipeline: %v", err)
	}
	log.Printf("loading resume from %s", resumePath)
	if err := svc.LoadResume(resumePath); err != nil {
		log.Fatalf("failed to load resume: %v", err)
	}
	log.Printf("extracted %d sections", len(svc.ListSections()))

	ctx := context.Background()
	switch {
	case *sections:
		for _, title := range svc.ListSections() {
			fmt.Println("  -", title)
		}
	case *summary:
		fmt.Println(svc.Summary(ctx))
	case *question != "":
		fmt.Println(svc.AnswerQuestion(ctx, *question, *topK))
	default:
		fmt.Println("Extracted Sections:")
		for _, title := range svc.ListSections() {
			fmt.Println("  -", title)
		}
		fmt.Println("\n" + strings.Repeat("=", 50))
		fmt.Println("RESUME SUMMARY")
		fmt.Println(strings.Repeat("=", 50))
		fmt.Println(svc.Summary(ctx))

		fmt.Println("\n" + strings.Repeat("=", 50))
		fmt.Println("QUESTION ANSWERING")
		fmt.Println(strings.Repeat("=", 50))
		for _, q := range demoQuestions {
			fmt.Printf("\nQ: %s\n", q)
			fmt.Printf("A: %s\n", svc.AnswerQuestion(ctx, q, *topK))
		}
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
		log.Println("no hf_token configured; running in offline mode")
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
