package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/loader"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/scoring"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a job description",
	Long:  "Score a resume text file against a job description from a file or URL, and report matched, missing, and extra skills with suggestions.",
	RunE:  runAnalyze,
}

var (
	analyzeResume  string
	analyzeJob     string
	analyzeJobURL  string
	analyzeLexicon string
	analyzeConfig  string
	analyzeJSON    bool
	analyzeVerbose bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume text file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job posting text file")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch job posting from")
	analyzeCmd.Flags().StringVar(&analyzeLexicon, "lexicon", "", "Path to a lexicon override file")
	analyzeCmd.Flags().StringVarP(&analyzeConfig, "config", "c", "", "Path to JSON config file")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Emit the result as JSON")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print the score breakdown")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Resume:  analyzeResume,
		Job:     analyzeJob,
		JobURL:  analyzeJobURL,
		Lexicon: analyzeLexicon,
		Verbose: analyzeVerbose,
	}

	// Config file values fill in anything the flags left unset.
	if analyzeConfig != "" {
		fileCfg, err := config.LoadConfig(analyzeConfig)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	cfg = cfg.MergeWithDefaults(config.DefaultConfig())

	if cfg.Resume == "" {
		return fmt.Errorf("resume file is required (use --resume)")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lex := lexicon.Default()
	if cfg.Lexicon != "" {
		loaded, err := lexicon.LoadFile(cfg.Lexicon)
		if err != nil {
			log.Printf("Warning: lexicon override rejected, continuing with degraded lexicon: %v", err)
		}
		lex = loaded
	}

	// Load both inputs concurrently; the job side may be a network fetch.
	var resumeText, jobText string
	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		text, err := loader.File(cfg.Resume)
		if err != nil {
			return fmt.Errorf("failed to load resume: %w", err)
		}
		resumeText = text
		return nil
	})
	g.Go(func() error {
		text, err := loader.Job(ctx, cfg.Job, cfg.JobURL)
		if err != nil {
			return fmt.Errorf("failed to load job description: %w", err)
		}
		jobText = text
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	policy := scoring.DefaultPolicy()
	if cfg.Policy != nil {
		policy = cfg.Policy.MergeWithDefaults(policy)
	}

	a := analyzer.NewWithLexicon(lex, policy)
	detailed, err := a.AnalyzeDetailed(resumeText, jobText)
	if err != nil {
		return err
	}

	if analyzeJSON {
		var payload any = &detailed.Result
		if cfg.Verbose {
			payload = detailed
		}
		jsonBytes, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintResult(&detailed.Result)
	if cfg.Verbose {
		printer.PrintBreakdown(detailed)
	}

	return nil
}
