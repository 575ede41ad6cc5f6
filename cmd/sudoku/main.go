package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/sudoku-server/internal/sudoku"
)

var (
	log = logrus.New()

	difficulty string
	count      int
	seed       uint64
	logPath    string
	verbose    bool
	solutions  bool
)

func init() {
	flag.StringVar(&difficulty, "difficulty", "easy", "puzzle difficulty (easy|medium|hard)")
	flag.StringVar(&difficulty, "d", "easy", "puzzle difficulty (shorthand)")
	flag.IntVar(&count, "count", 1, "number of puzzles to generate")
	flag.IntVar(&count, "n", 1, "number of puzzles to generate (shorthand)")
	flag.Uint64Var(&seed, "seed", 0, "base random seed, 0 for non-deterministic")
	flag.StringVar(&logPath, "log", "", "also log to a rotated file at this path")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.BoolVar(&solutions, "solutions", false, "print solutions alongside puzzles")
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if verbose {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if logPath == "" {
		return
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   logPath,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		log.Fatal("unable to create log file hook: ", err)
	}
	log.AddHook(hook)
}

func createRand(i int) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, uint64(i)))
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()
	setupLogging()

	d := sudoku.Difficulty(difficulty)
	log.WithFields(logrus.Fields{
		"difficulty": d,
		"removals":   d.TargetRemovals(),
		"count":      count,
	}).Debug("generating")

	var mu sync.Mutex // keeps whole puzzles together on stdout

	g, ctx := errgroup.WithContext(mainCtx)
	for i := range count {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			// each puzzle gets its own grid and randomness stream, so
			// generations are free to run in parallel
			p := sudoku.NewPuzzle(d, createRand(i))

			log.WithFields(logrus.Fields{
				"puzzle": i,
				"clues":  p.Clues.FilledCount(),
			}).Info("generated puzzle")

			mu.Lock()
			defer mu.Unlock()
			fmt.Printf("puzzle %d (%d clues)\n%s", i, p.Clues.FilledCount(), p.Clues)
			if solutions {
				fmt.Printf("solution %d\n%s", i, p.Solution)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatal("exit reason: ", err)
	}
}
