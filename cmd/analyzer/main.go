package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pterm/pterm"
	"github.com/spf13/pflag"

	"github.com/luca-patrignani/poker-hand-analyzer/config"
	"github.com/luca-patrignani/poker-hand-analyzer/domain/deck"
	"github.com/luca-patrignani/poker-hand-analyzer/domain/poker"
	"github.com/luca-patrignani/poker-hand-analyzer/handsource"
	"github.com/luca-patrignani/poker-hand-analyzer/ledger"
	"github.com/luca-patrignani/poker-hand-analyzer/report"
)

const randomSource = "random"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one analysis and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := config.NewFlagSet("analyzer")
	fs.SetOutput(stderr)
	cfg, err := config.Load(fs, args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, pterm.Error.Sprint(err))
		return 1
	}

	logger, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintln(stderr, pterm.Error.Sprint(err))
		return 1
	}

	a := analyzer{
		cfg:    cfg,
		logger: logger,
		out:    report.NewWriter(stdout, report.WithDescribe(cfg.Describe)),
		stdout: stdout,
	}
	if err := a.analyze(ctx); err != nil {
		logger.Error("analysis failed", "error", err)
		return 1
	}
	return 0
}

// newLogger creates a slog logger backed by the PTerm logger.
func newLogger(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	ptermLogger := pterm.DefaultLogger.WithWriter(w).WithLevel(ptermLevel(level))
	return slog.New(pterm.NewSlogHandler(ptermLogger)), nil
}

func ptermLevel(level slog.Level) pterm.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case level <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case level <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}

type analyzer struct {
	cfg    config.Config
	logger *slog.Logger
	out    *report.Writer
	stdout io.Writer
}

func (a analyzer) analyze(ctx context.Context) error {
	if a.cfg.Style == config.StylePretty {
		fmt.Fprintln(a.stdout, renderBanner())
	} else if err := a.out.Banner(); err != nil {
		return err
	}

	var (
		hands  []poker.Hand
		source string
		err    error
	)
	if a.cfg.File == "" {
		source = randomSource
		hands, err = a.dealRandom()
	} else {
		source = a.cfg.File
		hands, err = a.loadFile()
	}
	if err != nil {
		return err
	}

	ranking := poker.RankHands(hands)
	a.logger.Debug("hands ranked", "hands", len(hands), "source", source)
	if a.cfg.Style == config.StylePretty {
		fmt.Fprintln(a.stdout, renderRanking(ranking, a.cfg.Describe))
	} else if err := a.out.Ranking(ranking); err != nil {
		return err
	}

	if a.cfg.Ledger != "" {
		return a.record(ctx, source, hands, ranking)
	}
	return nil
}

func (a analyzer) dealRandom() ([]poker.Hand, error) {
	var shuffler deck.Shuffler
	if a.cfg.Seed != 0 {
		a.logger.Debug("using seeded shuffle", "seed", a.cfg.Seed)
		shuffler = deck.NewSeededShuffler(a.cfg.Seed)
	} else {
		shuffler = deck.NewCryptoShuffler()
	}

	d := deck.New()
	if err := d.Shuffle(shuffler); err != nil {
		return nil, err
	}
	shuffled := d.Cards()
	hands, err := d.Deal(a.cfg.Hands)
	if err != nil {
		return nil, err
	}

	if a.cfg.Style == config.StylePretty {
		fmt.Fprintln(a.stdout, renderHands(hands))
		return hands, nil
	}
	if err := a.out.ShuffledDeck(shuffled); err != nil {
		return nil, err
	}
	if err := a.out.Hands(hands); err != nil {
		return nil, err
	}
	if err := a.out.Remaining(d.Cards()); err != nil {
		return nil, err
	}
	return hands, nil
}

func (a analyzer) loadFile() ([]poker.Hand, error) {
	src, loadErr := handsource.LoadFile(a.cfg.File, a.cfg.Hands)
	if a.cfg.Style != config.StylePretty {
		// The file is echoed before any validation error is reported.
		if err := a.out.Source(a.cfg.File, src.Lines); err != nil {
			return nil, err
		}
	}
	if loadErr != nil {
		var dup *handsource.DuplicateCardError
		if errors.As(loadErr, &dup) {
			_ = a.out.Duplicate(dup.Card)
		}
		return nil, fmt.Errorf("load %s: %w", a.cfg.File, loadErr)
	}

	if a.cfg.Style == config.StylePretty {
		fmt.Fprintln(a.stdout, renderHands(src.Hands))
		return src.Hands, nil
	}
	if err := a.out.Hands(src.Hands); err != nil {
		return nil, err
	}
	return src.Hands, nil
}

// record appends the run to the ledger at cfg.Ledger.
func (a analyzer) record(ctx context.Context, source string, hands []poker.Hand, ranking poker.Ranking) error {
	store, err := ledger.NewSQLiteStore(ctx, a.cfg.Ledger)
	if err != nil {
		return fmt.Errorf("open ledger %s: %w", a.cfg.Ledger, err)
	}
	defer store.Close()

	chain, err := ledger.Open(ctx, store)
	if err != nil {
		return err
	}

	handLines := make([]string, len(hands))
	for i, h := range hands {
		handLines[i] = h.String()
	}
	run := ledger.NewRun(source, a.cfg.Seed, handLines, report.FormatRanking(ranking, false))
	block, err := chain.Append(ctx, run)
	if err != nil {
		return err
	}
	a.logger.Info("run recorded", "run", run.ID, "block", block.Index, "hash", block.Hash)
	return nil
}
