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

// Package bench times the sorts catalog over a suite of input cases and
// writes a line-per-algorithm report. Each algorithm runs on its own copy
// of the input, gets wall-clock timed, and has its output verified; small
// slices are echoed so a reader can eyeball the result. Quadratic
// algorithms are skipped on inputs past a size limit, since a single
// quadratic pass over a million elements would dominate the whole run.
package bench

import (
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/stats"

	"github.com/ajroetker/go-sortbench/sorts"
)

// Options configure a Runner.
type Options struct {
	// SkipSlowest skips algorithms marked Quadratic on inputs longer than
	// SlowLimit elements.
	SkipSlowest bool
	// SlowLimit is the largest input quadratic algorithms still run on.
	SlowLimit int
	// PrintLimit is the largest slice the report echoes in full.
	PrintLimit int
	// Reps is how many times each algorithm runs per case. The headline
	// time is the fastest rep; mean and median are reported alongside.
	Reps int
	// Match, when non-empty, restricts the run to algorithms whose name
	// contains it, case-insensitively.
	Match string
	// CPUTime adds user/sys CPU deltas to each line where the platform
	// can report them.
	CPUTime bool
}

// DefaultOptions mirror a plain benchmark run: skip quadratic algorithms
// past 100000 elements, echo slices up to 20 elements, one rep.
func DefaultOptions() Options {
	return Options{
		SkipSlowest: true,
		SlowLimit:   100000,
		PrintLimit:  20,
		Reps:        1,
	}
}

// Result records one algorithm's timed runs against one case.
type Result struct {
	Algorithm string
	N         int
	Elapsed   []time.Duration
	Sorted    bool
	UserCPU   time.Duration
	SysCPU    time.Duration
	HasCPU    bool
}

// Best returns the fastest rep.
func (r Result) Best() time.Duration {
	best := r.Elapsed[0]
	for _, d := range r.Elapsed[1:] {
		if d < best {
			best = d
		}
	}
	return best
}

// Runner drives the catalog over a case suite.
type Runner struct {
	out  io.Writer
	log  *zap.Logger
	opts Options
}

// NewRunner returns a Runner writing its report to out and diagnostics to
// log. A nil log disables diagnostics.
func NewRunner(out io.Writer, log *zap.Logger, opts Options) *Runner {
	if opts.Reps < 1 {
		opts.Reps = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{out: out, log: log, opts: opts}
}

// Run times every algorithm over every case and returns an error naming the
// algorithms whose output failed verification, if any.
func (r *Runner) Run(cases []Case, algos []sorts.Algorithm[int]) error {
	var failed []string
	ran, skipped := 0, 0

	for _, c := range cases {
		r.header(c)
		for _, algo := range algos {
			if !r.matches(algo.Name) {
				continue
			}
			if r.skips(algo, len(c.Data)) {
				skipped++
				r.log.Debug("skipping quadratic algorithm",
					zap.String("algorithm", algo.Name),
					zap.Int("n", len(c.Data)),
					zap.Int("slowLimit", r.opts.SlowLimit))
				continue
			}
			res := r.runOne(c, algo)
			ran++
			if !res.Sorted {
				failed = append(failed,
					fmt.Sprintf("%s on %d elements", algo.Name, res.N))
			}
		}
		fmt.Fprintln(r.out)
	}

	r.log.Info("run complete",
		zap.Int("cases", len(cases)),
		zap.Int("runs", ran),
		zap.Int("skipped", skipped),
		zap.Int("failed", len(failed)),
		zap.String("mem", memString()))

	if len(failed) > 0 {
		return fmt.Errorf("verification failed: %s", strings.Join(failed, "; "))
	}
	return nil
}

// header introduces a case: length, contents when small, full stop.
func (r *Runner) header(c Case) {
	fmt.Fprintf(r.out, "%d-element vector", len(c.Data))
	if len(c.Data) <= r.opts.PrintLimit {
		fmt.Fprintf(r.out, " %s", formatInts(c.Data))
	}
	fmt.Fprintln(r.out, ".")
	r.log.Debug("case start", zap.String("kind", c.Kind), zap.Int("n", len(c.Data)))
}

// runOne times one algorithm over one case. The label is written before the
// run so the report shows which algorithm a long pause belongs to.
func (r *Runner) runOne(c Case, algo sorts.Algorithm[int]) Result {
	res := Result{Algorithm: algo.Name, N: len(c.Data)}
	fmt.Fprintf(r.out, "%s:", algo.Name)

	buf := make([]int, len(c.Data))
	for rep := 0; rep < r.opts.Reps; rep++ {
		copy(buf, c.Data)

		var u0, s0 time.Duration
		cpuOK := false
		if r.opts.CPUTime {
			u0, s0, cpuOK = cpuTimes()
		}
		start := time.Now()
		algo.Sort(buf)
		elapsed := time.Since(start)
		if cpuOK {
			if u1, s1, ok := cpuTimes(); ok {
				res.UserCPU += u1 - u0
				res.SysCPU += s1 - s0
				res.HasCPU = true
			}
		}
		res.Elapsed = append(res.Elapsed, elapsed)
	}
	res.Sorted = sorts.IsSorted(buf)
	r.log.Debug("timed algorithm",
		zap.String("algorithm", algo.Name), zap.Int("n", res.N),
		zap.Duration("best", res.Best()))

	fmt.Fprintf(r.out, " %dms", res.Best().Milliseconds())
	if len(res.Elapsed) > 1 {
		ms := make([]float64, len(res.Elapsed))
		for i, d := range res.Elapsed {
			ms[i] = float64(d) / float64(time.Millisecond)
		}
		fmt.Fprintf(r.out, " (mean %.1fms, median %.1fms, %d runs)",
			stats.Mean(ms), stats.Median(ms), len(ms))
	}
	if res.HasCPU {
		fmt.Fprintf(r.out, " (user %dms, sys %dms)",
			res.UserCPU.Milliseconds(), res.SysCPU.Milliseconds())
	}
	if res.N <= r.opts.PrintLimit {
		fmt.Fprintf(r.out, " %s", formatInts(buf))
	}
	if res.Sorted {
		fmt.Fprintln(r.out, " OK.")
	} else {
		fmt.Fprintln(r.out, " FAIL!!!")
		r.log.Warn("output not sorted",
			zap.String("algorithm", algo.Name), zap.Int("n", res.N))
	}
	return res
}

func (r *Runner) matches(name string) bool {
	if r.opts.Match == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(r.opts.Match))
}

func (r *Runner) skips(algo sorts.Algorithm[int], n int) bool {
	return r.opts.SkipSlowest && algo.Quadratic && n > r.opts.SlowLimit
}

// formatInts renders a slice the way the report prints it: "[1, 2, 3]".
func formatInts(xs []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range xs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(x))
	}
	b.WriteByte(']')
	return b.String()
}

// memString summarizes heap usage for the completion log line.
func memString() string {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return fmt.Sprintf("alloc=%dMB sys=%dMB total=%dMB",
		ms.Alloc>>20, ms.Sys>>20, ms.TotalAlloc>>20)
}
