package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/server"
	"github.com/jonathan/resume-analyzer/internal/server/ratelimit"
)

var (
	servePort    int
	serveLexicon string
	serveConfig  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume analysis.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveLexicon, "lexicon", "", "Path to a lexicon override file")
	serveCmd.Flags().StringVarP(&serveConfig, "config", "c", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.DefaultConfig()
	if serveConfig != "" {
		fileCfg, err := config.LoadConfig(serveConfig)
		if err != nil {
			return err
		}
		if err := fileCfg.Validate(); err != nil {
			return err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	// Explicit flags win over the config file.
	if cmd.Flags().Changed("port") || cfg.Port == 0 {
		cfg.Port = servePort
	}
	if serveLexicon != "" {
		cfg.Lexicon = serveLexicon
	}

	lex := lexicon.Default()
	if cfg.Lexicon != "" {
		loaded, err := lexicon.LoadFile(cfg.Lexicon)
		if err != nil {
			log.Printf("Warning: lexicon override rejected, continuing with degraded lexicon: %v", err)
		}
		lex = loaded
	}

	policy := scoring.DefaultPolicy()
	if cfg.Policy != nil {
		policy = cfg.Policy.MergeWithDefaults(policy)
	}
	a := analyzer.NewWithLexicon(lex, policy)

	srvCfg := server.Config{Port: cfg.Port}
	if serveConfig != "" {
		// A config file takes the rate limiter off the environment variables.
		srvCfg.RateLimit = ratelimit.FromSettings(cfg.RateLimit, cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	srv := server.New(srvCfg, a)
	return srv.Start()
}
