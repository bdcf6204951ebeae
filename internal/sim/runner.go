package sim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-velocity/internal/config"
	"github.com/vovakirdan/neon-velocity/internal/core"
	"github.com/vovakirdan/neon-velocity/internal/game/velocity"
)

// ErrBadOptions is returned for batch options that cannot run.
var ErrBadOptions = errors.New("invalid sim options")

// Options controls a batch of headless runs.
type Options struct {
	Runs       int
	Seed       int64   // Run i uses Seed+i
	MaxSeconds float64 // Simulated time limit per run
	Step       float64 // Fixed dt
	Workers    int     // Parallel runs; <= 0 means one per CPU
	ViewW      float64
	ViewH      float64
	Logger     *log.Logger
}

// DefaultOptions returns 100 two-minute runs at 60 steps per second on the
// reference 480x800 viewport.
func DefaultOptions() Options {
	return Options{
		Runs:       100,
		Seed:       1,
		MaxSeconds: 120,
		Step:       1.0 / 60,
		ViewW:      velocity.DefaultViewW,
		ViewH:      velocity.DefaultViewH,
	}
}

// Validate checks the options against the tuning they will run with.
func (o Options) Validate(cfg config.VelocityConfig) error {
	switch {
	case o.Runs <= 0:
		return fmt.Errorf("sim: runs must be positive, got %d: %w", o.Runs, ErrBadOptions)
	case !core.Finite(o.MaxSeconds) || o.MaxSeconds <= 0:
		return fmt.Errorf("sim: seconds must be positive, got %v: %w", o.MaxSeconds, ErrBadOptions)
	case !core.Finite(o.Step) || o.Step <= 0:
		return fmt.Errorf("sim: step must be positive, got %v: %w", o.Step, ErrBadOptions)
	case o.Step > cfg.Track.MaxStep:
		return fmt.Errorf("sim: step %v exceeds max_step %v: %w", o.Step, cfg.Track.MaxStep, ErrBadOptions)
	case !core.Finite(o.ViewW) || !core.Finite(o.ViewH) || o.ViewW <= 0 || o.ViewH <= 0:
		return fmt.Errorf("sim: viewport must be positive, got %vx%v: %w", o.ViewW, o.ViewH, ErrBadOptions)
	}
	return nil
}

// RunResult is the outcome of one run.
type RunResult struct {
	Run       int     `csv:"run"`
	Seed      int64   `csv:"seed"`
	Score     int     `csv:"score"`
	Survival  float64 `csv:"survival_s"`
	Overtakes int     `csv:"overtakes"`
	Level     int     `csv:"level"`
	Pickups   int     `csv:"pickups"`
	Crashed   bool    `csv:"crashed"`
	HitBy     string  `csv:"hit_by"`
}

// RunOne plays a single seeded run to a crash or the time limit.
func RunOne(cfg config.VelocityConfig, seed int64, opts Options) RunResult {
	g := velocity.New(cfg,
		velocity.WithSeed(seed),
		velocity.WithViewport(core.FixedViewport{W: opts.ViewW, H: opts.ViewH}),
	)
	g.Start()

	pilot := NewAutopilot()
	res := RunResult{Seed: seed}
	for g.State().Time < opts.MaxSeconds {
		ev := g.Advance(pilot.Decide(g.State()), opts.Step)
		res.Pickups += len(ev.Pickups)
		if ev.Crashed {
			res.Crashed = true
			res.HitBy = ev.CrashedOn.String()
			break
		}
	}

	st := g.State()
	res.Score = st.Score
	res.Survival = st.Time
	res.Overtakes = st.Overtakes
	res.Level = st.Level
	return res
}

// Run plays opts.Runs runs and aggregates them. Results are ordered by run
// index regardless of which worker finished first.
func Run(ctx context.Context, cfg config.VelocityConfig, opts Options) (Report, error) {
	if err := opts.Validate(cfg); err != nil {
		return Report{}, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, opts.Runs)

	results := make([]RunResult, opts.Runs)
	jobs := make(chan int)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				r := RunOne(cfg, opts.Seed+int64(i), opts)
				r.Run = i
				results[i] = r
				logger.Debug("run finished", "run", i, "seed", r.Seed, "score", r.Score, "time", r.Survival, "hit", r.HitBy)
			}
		}()
	}

	var err error
feed:
	for i := range opts.Runs {
		select {
		case jobs <- i:
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err != nil {
		return Report{}, err
	}
	return NewReport(results), nil
}
