// Command stats exports the distribution of a dice expression as a histogram CSV.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/osse101/DiceBot_Go/internal/dice"
	"github.com/osse101/DiceBot_Go/internal/montecarlo"
)

func main() {
	expr := flag.String("expr", "1d20", "Dice expression to sample")
	iterations := flag.Int("n", 1_000_000, "Number of rolls")
	workers := flag.Int("workers", runtime.NumCPU(), "Parallel workers")
	output := flag.String("o", "", "Output CSV file (default stdout)")
	seed := flag.Uint64("seed", 0, "Seed for a reproducible run (0 uses the secure source)")
	maxDice := flag.Int("max-dice", dice.DefaultMaxDice, "Maximum dice per expression")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := montecarlo.Options{
		Workers: *workers,
		Parser:  dice.NewParser(*maxDice, dice.DefaultMaxFaces),
	}
	if *seed != 0 {
		opts.Sources = montecarlo.SeededSources(*seed)
	}

	start := time.Now()
	hist, err := montecarlo.Run(ctx, *expr, *iterations, opts)
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	var w io.Writer = os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		w = f
	}

	if err := hist.WriteCSV(w); err != nil {
		log.Fatalf("Failed to write CSV: %v", err)
	}

	if *output != "" {
		fmt.Printf("✓ Wrote %d values for %s (%d rolls, %s) to %s\n",
			len(hist.Rows()), *expr, *iterations, time.Since(start).Round(time.Millisecond), *output)
	}
}
