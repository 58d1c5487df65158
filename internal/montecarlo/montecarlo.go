// Package montecarlo estimates the distribution of a dice expression by
// repeated evaluation.
package montecarlo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/DiceBot_Go/internal/dice"
	"github.com/osse101/DiceBot_Go/internal/domain"
	"github.com/osse101/DiceBot_Go/internal/logger"
	"github.com/osse101/DiceBot_Go/internal/metrics"
	"github.com/osse101/DiceBot_Go/internal/random"
)

// SourceFactory returns the entropy source for one worker
type SourceFactory func(worker int) random.Source

// SeededSources gives each worker a deterministic source derived from seed
func SeededSources(seed uint64) SourceFactory {
	return func(worker int) random.Source {
		return random.NewSeededSource(seed + uint64(worker))
	}
}

// Options configures a simulation run
type Options struct {
	// Workers evaluating in parallel, at least 1
	Workers int
	// Sources defaults to one crypto source per worker
	Sources SourceFactory
	// Parser defaults to the package limits of dice
	Parser *dice.Parser
}

// Histogram counts how often each total occurred
type Histogram struct {
	Expression string      `json:"expression"`
	Iterations int         `json:"iterations"`
	Counts     map[int]int `json:"counts"`
}

// Row is one line of the frequency table
type Row struct {
	Value      int     `json:"value"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Run evaluates expression iterations times. Cancellation is checked between
// iterations and aborts the run with ctx.Err().
func Run(ctx context.Context, expression string, iterations int, opts Options) (*Histogram, error) {
	if iterations <= 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgIterations)
	}

	parser := opts.Parser
	if parser == nil {
		parser = dice.NewParser(dice.DefaultMaxDice, dice.DefaultMaxFaces)
	}
	expr, err := parser.Parse(expression)
	if err != nil {
		return nil, err
	}

	workers := max(1, min(opts.Workers, iterations))
	sources := opts.Sources
	if sources == nil {
		sources = func(int) random.Source { return random.NewCryptoSource() }
	}

	log := logger.FromContext(ctx)
	log.Debug(LogMsgRunStarted, "expression", expression, "iterations", iterations, "workers", workers)
	start := time.Now()

	partials := make([]map[int]int, workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		share := iterations / workers
		if w < iterations%workers {
			share++
		}
		g.Go(func() error {
			counts, err := simulate(gctx, expr, share, sources(w))
			partials[w] = counts
			return err
		})
	}
	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			log.Info(LogMsgRunCancelled, "expression", expression, "error", err)
		}
		return nil, err
	}

	h := &Histogram{Expression: expr.Raw, Iterations: iterations, Counts: make(map[int]int)}
	for _, counts := range partials {
		for total, n := range counts {
			h.Counts[total] += n
		}
	}

	log.Debug(LogMsgRunFinished, "expression", expression, "distinct_totals", len(h.Counts), "duration", time.Since(start))
	return h, nil
}

func simulate(ctx context.Context, expr domain.DiceExpression, n int, src random.Source) (map[int]int, error) {
	counts := make(map[int]int)
	defer func() {
		done := 0
		for _, c := range counts {
			done += c
		}
		metrics.SimulationIterations.Add(float64(done))
	}()

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return counts, err
		}
		result, err := dice.Roll(expr, src)
		if err != nil {
			return counts, err
		}
		counts[result.Total]++
	}
	return counts, nil
}

// Rows returns the frequency table sorted ascending by value.
// Percentage is count / iterations * 100.
func (h *Histogram) Rows() []Row {
	rows := make([]Row, 0, len(h.Counts))
	for value, count := range h.Counts {
		rows = append(rows, Row{
			Value:      value,
			Count:      count,
			Percentage: float64(count) / float64(h.Iterations) * 100,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Value < rows[j].Value })
	return rows
}
