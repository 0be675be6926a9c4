// Package gobasics provides the main API for running the demonstration program.
package gobasics

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/sivchari/gobasics/internal/compare"
	"github.com/sivchari/gobasics/internal/config"
	"github.com/sivchari/gobasics/internal/logging"
	"github.com/sivchari/gobasics/internal/parity"
	"github.com/sivchari/gobasics/internal/record"
	"github.com/sivchari/gobasics/internal/report"
)

// Engine runs the program described by a Config.
type Engine struct {
	config   *config.Config
	logger   *zap.Logger
	out      io.Writer
	reporter *report.Generator
	now      func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards all entries.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithOutput sets where the report is written. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) {
		e.out = w
	}
}

// NewEngine creates a new engine.
func NewEngine(cfg *config.Config, opts ...Option) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		config: cfg,
		logger: logging.Nop(),
		out:    os.Stdout,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.reporter = report.New(cfg, e.out)

	return e, nil
}

// Run executes the program and writes its report.
func (e *Engine) Run() (*report.Summary, error) {
	summary := e.Execute()

	if err := e.reporter.Generate(summary); err != nil {
		return nil, fmt.Errorf("failed to generate report: %w", err)
	}

	e.logger.Debug("Run completed",
		zap.Int("evens", len(summary.Evens)),
		zap.Duration("duration", summary.Duration))

	return summary, nil
}

// Execute computes the summary without writing anything.
func (e *Engine) Execute() *report.Summary {
	start := e.now()
	cfg := e.config

	rec := record.New(cfg.Record.X, cfg.Record.Name)
	e.logger.Debug("Record created", zap.Int("x", rec.X()), zap.String("name", rec.Name()))

	calc := cfg.Calculate
	result := rec.Calculate(calc.A, calc.B, calc.C)
	e.logger.Debug("Calculated",
		zap.Int("a", calc.A), zap.Int("b", calc.B), zap.Int("c", calc.C),
		zap.Int("result", result))

	opts := compare.NewOptions(
		compare.WithLabel(cfg.Compare.Label),
		compare.WithCount(cfg.CompareCount()),
	)
	branch := compare.Branch(cfg.Compare.X, cfg.Compare.Y)
	e.logger.Debug("Compared",
		zap.Int("x", cfg.Compare.X), zap.Int("y", cfg.Compare.Y),
		zap.String("label", opts.Label), zap.String("branch", branch))

	evens := parity.Evens(cfg.Data)
	e.logger.Debug("Filtered evens", zap.Ints("data", cfg.Data), zap.Ints("evens", evens))

	return &report.Summary{
		Label:   rec.Name(),
		RecordX: rec.X(),
		Calculation: report.Calculation{
			A:      calc.A,
			B:      calc.B,
			C:      calc.C,
			Result: result,
		},
		Branch:    branch,
		Counted:   compare.Sequence(opts.Count),
		Data:      cfg.Data,
		Evens:     evens,
		Duration:  e.now().Sub(start),
		Timestamp: start,
	}
}
