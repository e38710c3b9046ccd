// Copyright 2026 go-sortbench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command sortbench times every algorithm in the sorts catalog over fixed
// and random inputs and prints one line per run.
//
// Usage:
//
//	sortbench                                  # full suite, default sizes
//	sortbench -sizes 1000,1000000 -reps 5      # custom sizes, best of 5
//	sortbench -match quicksort -cpu            # only quicksorts, with CPU time
//	sortbench -skip-slowest=false -sizes 6     # run quadratic sorts everywhere
//
// Each input case prints a header line, then one line per algorithm:
//
//	10-element vector [3, 7, 1, 5, 2, -6, 15, 4, 33, -5].
//	Insertion sort: 0ms [-6, -5, 1, 2, 3, 4, 5, 7, 15, 33] OK.
//	...
//
// Quadratic algorithms are skipped on inputs larger than -slow-limit unless
// -skip-slowest=false. Exit status is 1 if any algorithm produced an
// unsorted result.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ajroetker/go-sortbench/bench"
	"github.com/ajroetker/go-sortbench/sorts"
)

var (
	skipSlowest = flag.Bool("skip-slowest", true, "Skip quadratic algorithms on inputs larger than -slow-limit")
	slowLimit   = flag.Int("slow-limit", 100000, "Largest input size quadratic algorithms still run on")
	sizesFlag   = flag.String("sizes", "6,1000,10000,100000,1000000", "Comma-separated random input sizes")
	reps        = flag.Int("reps", 1, "Timed repetitions per algorithm per input (headline time is the fastest)")
	seed        = flag.Int64("seed", 0, "Random input seed (0 derives one from the clock)")
	match       = flag.String("match", "", "Only run algorithms whose name contains this substring")
	cpuTime     = flag.Bool("cpu", false, "Report user/sys CPU time per run where the platform supports it")
	verbose     = flag.Bool("v", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	log := newLogger(*verbose)
	defer log.Sync()

	sizes, err := parseSizes(*sizesFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))
	log.Debug("inputs seeded", zap.Int64("seed", s), zap.Ints("sizes", sizes))

	opts := bench.DefaultOptions()
	opts.SkipSlowest = *skipSlowest
	opts.SlowLimit = *slowLimit
	opts.Reps = *reps
	opts.Match = *match
	opts.CPUTime = *cpuTime

	runner := bench.NewRunner(os.Stdout, log, opts)
	if err := runner.Run(bench.Cases(sizes, rng), sorts.All[int]()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseSizes turns "6,1000,10000" into sorted-input lengths. Empty entries
// are ignored so trailing commas do not error.
func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid size %q", part)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

// newLogger builds a console zap logger on stderr so diagnostics never mix
// into the report on stdout.
func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.Lock(os.Stderr), level)
	return zap.New(core)
}
