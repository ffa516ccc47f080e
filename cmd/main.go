package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/ats/internal/adapters/report"
	"github.com/okian/ats/internal/adapters/repository"
	app "github.com/okian/ats/internal/app"
	"github.com/okian/ats/internal/config"
	"github.com/okian/ats/internal/domain/dedupe"
	"github.com/okian/ats/internal/domain/scoring"
	"github.com/okian/ats/pkg/logger"
	"github.com/okian/ats/pkg/metrics"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI. The report goes to stdout, logs to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ats", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("verbose", false, "include per-candidate hotness in text output")
	duplicatesOf := fs.String("duplicates", "", "print the possible duplicates of the candidate with this id")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: ats [flags] [dataset.yaml]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(stderr, "failed to load config: "+err.Error())
		return exitError
	}

	if err := logger.InitWithOptions(logger.WithWriter(stderr), logger.WithFormat(cfg.LogFormat)); err != nil {
		fmt.Fprintln(stderr, "failed to initialize logging: "+err.Error())
		return exitError
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Named("ats")

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	if fs.NArg() > 1 {
		fs.Usage()
		return exitUsage
	}
	if fs.NArg() == 1 {
		cfg.DatasetPath = fs.Arg(0)
	}
	if cfg.DatasetPath == "" {
		fmt.Fprintln(stderr, "no dataset: pass a path or set ATS_DATASET_PATH")
		fs.Usage()
		return exitUsage
	}

	svc, err := newService(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "failed to open dataset", logger.String("path", cfg.DatasetPath), logger.Error(err))
		return exitError
	}

	var code int
	if *duplicatesOf != "" {
		code = printDuplicates(ctx, svc, *duplicatesOf, stdout, log)
	} else {
		code = printReport(ctx, svc, cfg, *verbose, stdout, log)
	}

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			log.Error(ctx, "failed to write metrics", logger.String("path", cfg.MetricsFile), logger.Error(err))
			return exitError
		}
		log.Debug(ctx, "metrics written", logger.String("path", cfg.MetricsFile))
	}
	return code
}

func newService(ctx context.Context, cfg *config.Config, log logger.Logger) (*app.Service, error) {
	store, err := repository.OpenFileStore(ctx, cfg.DatasetPath, repository.WithLogger(log.Named("repository")))
	if err != nil {
		return nil, err
	}
	weights, err := cfg.SkillLevelWeights()
	if err != nil {
		return nil, err
	}

	detector := dedupe.NewDetector(
		dedupe.WithWindowDays(cfg.SimilarityWindowDays),
		dedupe.WithNormalizer(dedupe.NewNormalizer(dedupe.WithDiacriticFolding(cfg.FoldDiacritics))),
	)
	scorer := scoring.NewScorer(
		scoring.WithWeightsFromConfig(cfg.GenderWeight, cfg.SkillWeight),
		scoring.WithHotThreshold(cfg.HotThreshold),
	)

	return app.New(
		app.WithLogger(log.Named("service")),
		app.WithStore(store),
		app.WithDetector(detector),
		app.WithScorer(scorer),
		app.WithLevelWeights(weights),
	), nil
}

func printReport(ctx context.Context, svc *app.Service, cfg *config.Config, verbose bool, w io.Writer, log logger.Logger) int {
	r, err := svc.Report(ctx)
	if err != nil {
		return exitError
	}
	out, err := report.NewDefaultRegistry().Export(cfg.OutputFormat, r, report.Options{
		NoColor: cfg.NoColor,
		Verbose: verbose,
	})
	if err != nil {
		log.Error(ctx, "failed to render report", logger.String("format", cfg.OutputFormat), logger.Error(err))
		return exitError
	}
	_, _ = io.WriteString(w, out)
	return exitOK
}

func printDuplicates(ctx context.Context, svc *app.Service, id string, w io.Writer, log logger.Logger) int {
	dups, err := svc.Duplicates(ctx, id)
	if err != nil {
		log.Error(ctx, "duplicate lookup failed", logger.String("id", id), logger.Error(err))
		return exitError
	}
	for _, c := range dups {
		fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, c.Name, c.DateOfBirth.Format("2006-01-02"))
	}
	return exitOK
}
