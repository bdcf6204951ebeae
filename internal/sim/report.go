package sim

import (
	"fmt"
	"io"
	"slices"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of one metric across runs.
type Summary struct {
	Mean   float64
	StdDev float64
	Median float64
	P90    float64
	Min    float64
	Max    float64
}

// Summarize computes a Summary. An empty sample yields the zero Summary;
// a single sample has zero spread.
func Summarize(xs []float64) Summary {
	if len(xs) == 0 {
		return Summary{}
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)

	s := Summary{
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90:    stat.Quantile(0.9, stat.Empirical, sorted, nil),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
	}
	if len(sorted) == 1 {
		s.Mean = sorted[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(sorted, nil)
	return s
}

// Report aggregates a batch of runs.
type Report struct {
	Runs      []RunResult
	Score     Summary
	Survival  Summary
	Overtakes Summary
	CrashRate float64 // Fraction of runs that ended in a crash
}

// NewReport summarizes runs.
func NewReport(runs []RunResult) Report {
	scores := make([]float64, len(runs))
	survival := make([]float64, len(runs))
	overtakes := make([]float64, len(runs))
	crashes := 0
	for i, r := range runs {
		scores[i] = float64(r.Score)
		survival[i] = r.Survival
		overtakes[i] = float64(r.Overtakes)
		if r.Crashed {
			crashes++
		}
	}

	rep := Report{
		Runs:      runs,
		Score:     Summarize(scores),
		Survival:  Summarize(survival),
		Overtakes: Summarize(overtakes),
	}
	if len(runs) > 0 {
		rep.CrashRate = float64(crashes) / float64(len(runs))
	}
	return rep
}

// WriteCSV writes one row per run with a header.
func (r Report) WriteCSV(w io.Writer) error {
	if err := gocsv.Marshal(r.Runs, w); err != nil {
		return fmt.Errorf("sim: writing csv: %w", err)
	}
	return nil
}

// WriteText writes a human-readable summary table.
func (r Report) WriteText(w io.Writer) error {
	rows := []struct {
		name string
		s    Summary
	}{
		{"score", r.Score},
		{"survival (s)", r.Survival},
		{"overtakes", r.Overtakes},
	}

	if _, err := fmt.Fprintf(w, "runs: %d  crash rate: %.0f%%\n\n", len(r.Runs), r.CrashRate*100); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%-14s %10s %10s %10s %10s %10s %10s\n", "metric", "mean", "stddev", "median", "p90", "min", "max"); err != nil {
		return err
	}
	for _, row := range rows {
		s := row.s
		if _, err := fmt.Fprintf(w, "%-14s %10.1f %10.1f %10.1f %10.1f %10.1f %10.1f\n",
			row.name, s.Mean, s.StdDev, s.Median, s.P90, s.Min, s.Max); err != nil {
			return err
		}
	}
	return nil
}
