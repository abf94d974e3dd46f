// Package main is the HireScope CLI entry point.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hyperjump/hirescope/internal/analyzer"
	"github.com/hyperjump/hirescope/internal/ats"
	"github.com/hyperjump/hirescope/internal/batch"
	"github.com/hyperjump/hirescope/internal/cli"
	"github.com/hyperjump/hirescope/internal/config"
	"github.com/hyperjump/hirescope/internal/embedding"
	"github.com/hyperjump/hirescope/internal/extract"
	"github.com/hyperjump/hirescope/internal/fileid"
	"github.com/hyperjump/hirescope/internal/models"
	"github.com/hyperjump/hirescope/internal/parser"
	"github.com/hyperjump/hirescope/internal/scoring"
	"github.com/hyperjump/hirescope/internal/server"
	"github.com/hyperjump/hirescope/internal/storage"
	"github.com/hyperjump/hirescope/internal/template"
	"github.com/hyperjump/hirescope/internal/tips"
	"github.com/hyperjump/hirescope/internal/watcher"
	"github.com/hyperjump/hirescope/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/hirescope/config.yaml"

// loadConfig loads config from path. When path is the default, a
// config.yaml in the current directory takes precedence (for
// development), and a missing default file yields built-in defaults so
// one-shot commands work without any setup.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			var cfg config.Config
			config.ApplyDefaults(&cfg)
			return &cfg, "", nil
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "analyze":
		runAnalyze()
	case "ats":
		runATS()
	case "batch":
		runBatch()
	case "watch":
		runWatch()
	case "template":
		runTemplate()
	case "version", "--version", "-v":
		fmt.Printf("hirescope version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	components, err := initializeComponents(cfg, logger, true)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}
	defer components.Close()

	srv := server.NewServer(
		components.Analyzer,
		components.Simulator,
		components.Ranker,
		components.Extractor,
		components.Store,
		cfg,
		logger,
	)
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func runAnalyze() {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	jd := fs.String("jd", "", "job description text")
	jdFile := fs.String("jd-file", "", "path to a file holding the job description")
	outputFormat := fs.String("output", "text", "output format: text or json")
	save := fs.Bool("save", false, "persist the result to the configured database")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		fmt.Println("Usage: hirescope analyze [flags] <resume-file>")
		os.Exit(1)
	}
	format, ok := parseFormat(*outputFormat)
	if !ok {
		fmt.Printf("Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}
	jdText, err := readJobDescription(*jd, *jdFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read job description: %v\n", err)
		os.Exit(1)
	}

	cfg, components := mustComponents(*configPath, *save)
	defer components.Close()

	path := fs.Arg(0)
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read resume: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Analysis.AnalyzeTimeoutSec)*time.Second)
	defer cancel()

	result, err := components.Analyzer.Analyze(ctx, filepath.Base(path), content, jdText)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Analysis failed: %v\n", err)
		os.Exit(1)
	}
	if *save && components.Store != nil {
		if err := components.Store.SaveResult(ctx, result, fileid.ContentHash(content)); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to save result: %v\n", err)
		}
	}
	if err := cli.WriteAnalysisResult(os.Stdout, result, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runATS() {
	fs := flag.NewFlagSet("ats", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		fmt.Println("Usage: hirescope ats [flags] <resume-file>")
		os.Exit(1)
	}
	format, ok := parseFormat(*outputFormat)
	if !ok {
		fmt.Printf("Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}

	cfg, components := mustComponents(*configPath, false)
	defer components.Close()

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Analysis.AnalyzeTimeoutSec)*time.Second)
	defer cancel()

	extracted, err := components.Extractor.ExtractFile(ctx, fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Extraction failed: %v\n", err)
		os.Exit(1)
	}
	report := components.Simulator.Simulate(extracted.Text)
	if err := cli.WriteATSReport(os.Stdout, report, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runBatch() {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	jd := fs.String("jd", "", "job description text")
	jdFile := fs.String("jd-file", "", "path to a file holding the job description")
	outputFormat := fs.String("output", "text", "output format: text or json")
	exportPath := fs.String("export", "", "also write an XLSX comparison to this path")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		fmt.Println("Usage: hirescope batch [flags] <resume-file>...")
		os.Exit(1)
	}
	format, ok := parseFormat(*outputFormat)
	if !ok {
		fmt.Printf("Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}
	jdText, err := readJobDescription(*jd, *jdFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read job description: %v\n", err)
		os.Exit(1)
	}

	cfg, components := mustComponents(*configPath, false)
	defer components.Close()

	files := make([]batch.File, 0, fs.NArg())
	for _, path := range fs.Args() {
		content, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read %s: %v\n", path, err)
			os.Exit(1)
		}
		files = append(files, batch.File{Name: filepath.Base(path), Content: content})
	}

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Batch.TimeoutSec)*time.Second)
	defer cancel()

	result, err := components.Ranker.Analyze(ctx, files, jdText)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Batch analysis failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteBatchResult(os.Stdout, result, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
	if *exportPath != "" {
		out, err := os.Create(*exportPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create export file: %v\n", err)
			os.Exit(1)
		}
		defer out.Close()
		if err := batch.WriteXLSX(result, out); err != nil {
			fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nComparison written to %s\n", *exportPath)
	}
}

func runWatch() {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	jd := fs.String("jd", "", "job description text")
	jdFile := fs.String("jd-file", "", "path to a file holding the job description")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		fmt.Println("Usage: hirescope watch [flags] <resume-file>")
		os.Exit(1)
	}
	jdText, err := readJobDescription(*jd, *jdFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read job description: %v\n", err)
		os.Exit(1)
	}

	cfg, components := mustComponents(*configPath, false)
	defer components.Close()

	path := fs.Arg(0)
	reanalyze := func(p string) {
		content, err := os.ReadFile(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read %s: %v\n", p, err)
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.Analysis.LiveTimeoutSec)*time.Second)
		defer cancel()
		resp, err := components.Analyzer.LiveAnalyze(ctx, &models.LiveAnalyzeRequest{
			ResumeText:     string(content),
			JobDescription: jdText,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Analysis failed: %v\n", err)
			return
		}
		_ = cli.WriteLiveResult(os.Stdout, resp, cli.OutputText)
	}

	watchOpts := []watcher.Option{}
	if *debug {
		logger, err := utils.NewLogger(true)
		if err == nil {
			defer logger.Sync()
			watchOpts = append(watchOpts, watcher.WithLogger(logger))
		}
	}
	w, err := watcher.NewWatcher(path, reanalyze, watchOpts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to watch %s: %v\n", path, err)
		os.Exit(1)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start watcher: %v\n", err)
		os.Exit(1)
	}
	defer w.Stop()

	fmt.Printf("Watching %s (Ctrl-C to stop)\n", path)
	reanalyze(path)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
}

func runTemplate() {
	fs := flag.NewFlagSet("template", flag.ExitOnError)
	industry := fs.String("industry", "", "template industry: tech, finance, healthcare, or marketing")
	name := fs.String("name", "", "candidate name placed in the header")
	title := fs.String("title", "", "target job title placed in the header")
	out := fs.String("out", "", "output path (default: resume_template_<industry>.docx)")
	_ = fs.Parse(os.Args[2:])

	req := &models.TemplateRequest{Industry: *industry, Name: *name, Title: *title}
	if err := req.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		fmt.Println("Usage: hirescope template -industry <tech|finance|healthcare|marketing> [flags]")
		os.Exit(1)
	}
	outPath := *out
	if outPath == "" {
		outPath = fmt.Sprintf("resume_template_%s.docx", req.Industry)
	}
	f, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := template.Generate(req, f); err != nil {
		fmt.Fprintf(os.Stderr, "Template generation failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Template written to %s\n", outPath)
}

// parseFormat maps the -output flag value onto a cli.OutputFormat.
func parseFormat(s string) (cli.OutputFormat, bool) {
	switch s {
	case "text", "":
		return cli.OutputText, true
	case "json":
		return cli.OutputJSON, true
	default:
		return cli.OutputText, false
	}
}

// readJobDescription resolves the -jd / -jd-file flags; the inline
// text wins when both are set.
func readJobDescription(inline, path string) (string, error) {
	if strings.TrimSpace(inline) != "" {
		return inline, nil
	}
	if path == "" {
		return "", nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// Components holds initialized services.
type Components struct {
	Store     storage.Store
	Embedder  embedding.Embedder
	Tips      *tips.Engine
	Extractor *extract.Extractor
	Analyzer  *analyzer.Analyzer
	Simulator *ats.Simulator
	Ranker    *batch.Ranker
}

func (c *Components) Close() {
	if c.Store != nil {
		_ = c.Store.Close()
	}
	if c.Tips != nil {
		_ = c.Tips.Close()
	}
	if c.Embedder != nil {
		_ = c.Embedder.Close()
	}
}

// mustComponents loads config and wires components for one-shot CLI
// commands, exiting on failure.
func mustComponents(configPath string, withStore bool) (*config.Config, *Components) {
	cfg, _, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	components, err := initializeComponents(cfg, logger, withStore)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	return cfg, components
}

func initializeComponents(cfg *config.Config, logger *zap.Logger, withStore bool) (*Components, error) {
	embedder := embedding.New(cfg.Embedding, logger)

	var store storage.Store
	if withStore && cfg.Storage.DatabasePath != "" {
		sq, err := storage.NewSQLiteStore(cfg.Storage.DatabasePath)
		if err != nil {
			logger.Warn("storage unavailable, results will not be persisted",
				zap.String("path", cfg.Storage.DatabasePath), zap.Error(err))
		} else {
			store = sq
		}
	}

	tipEngine, err := tips.NewEngine(embedder, cfg.Storage.TipsIndexPath, logger)
	if err != nil {
		logger.Warn("on-disk tips index unavailable, using in-memory index",
			zap.String("path", cfg.Storage.TipsIndexPath), zap.Error(err))
		tipEngine, err = tips.NewEngine(embedder, "", logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize tips engine: %w", err)
		}
	}

	extractor := extract.NewExtractor(extract.WithOCRMinChars(cfg.Analysis.OCRMinChars))
	a := analyzer.New(
		extractor,
		parser.NewParser(embedder, cfg.Analysis, logger),
		scoring.NewScorer(embedder, cfg.Analysis, logger),
		embedder,
		tipEngine,
		logger,
	)

	return &Components{
		Store:     store,
		Embedder:  embedder,
		Tips:      tipEngine,
		Extractor: extractor,
		Analyzer:  a,
		Simulator: ats.NewSimulator(logger),
		Ranker:    batch.NewRanker(a, cfg.Batch, logger),
	}, nil
}

func printUsage() {
	fmt.Println(`hirescope - Resume analysis and job-description matching

Usage:
  hirescope server [flags]             Start the HTTP API server
  hirescope analyze [flags] <file>     Score one resume against a job description
  hirescope ats [flags] <file>         Run the ATS compatibility simulation
  hirescope batch [flags] <file>...    Rank several resumes against one job description
  hirescope watch [flags] <file>       Re-analyze a resume file on every save
  hirescope template [flags]           Generate an ATS-friendly resume template
  hirescope version                    Show version
  hirescope help                       Show this help

Server Flags:
  --config string    Config file path (default: /usr/local/etc/hirescope/config.yaml)
  --debug            Enable debug logging

Analyze Flags:
  --config string    Config file path
  --jd string        Job description text
  --jd-file string   Path to a file holding the job description
  --output string    Output format: text or json (default: text)
  --save             Persist the result to the configured database

Batch Flags:
  --jd / --jd-file   Job description (same as analyze)
  --export string    Also write an XLSX comparison to this path
  --output string    Output format: text or json

Watch Flags:
  --jd / --jd-file   Job description (same as analyze)
  --debug            Enable debug logging

Template Flags:
  --industry string  tech, finance, healthcare, or marketing
  --name string      Candidate name placed in the header
  --title string     Target job title placed in the header
  --out string       Output path (default: resume_template_<industry>.docx)

Examples:
  hirescope server
  hirescope analyze --jd-file posting.txt resume.pdf
  hirescope analyze --output json --jd "Backend engineer, go and kubernetes required for the role" resume.docx
  hirescope ats resume.pdf
  hirescope batch --jd-file posting.txt --export comparison.xlsx resumes/*.pdf
  hirescope watch --jd-file posting.txt resume.txt
  hirescope template --industry tech --name "Jane Smith" --title "Software Engineer"`)
}
