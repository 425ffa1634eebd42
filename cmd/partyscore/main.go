// Package main provides the partyscore CLI for re-scoring a free-text answer
// against a persisted dinner-party puzzle.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/qemqemqem/dinnerbench/task"
)

// CLI flags
var (
	input   string
	line    int
	answer  string
	samples int
	seed    int64
)

func init() {
	flag.StringVar(&input, "input", "dinner_party.jsonl", "Input JSONL puzzle file")
	flag.IntVar(&line, "line", 1, "1-based line number of the puzzle to score against")
	flag.StringVar(&answer, "answer", "", "Model answer text to score")
	flag.IntVar(&samples, "samples", 1000, "Calibration samples for the statistics")
	flag.Int64Var(&seed, "seed", 42, "Random seed for re-calibration")
}

func main() {
	flag.Parse()

	if answer == "" {
		fmt.Fprintln(os.Stderr, "Error: -answer is required")
		os.Exit(1)
	}

	rec, err := loadRecord(input, line)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading puzzle: %v\n", err)
		os.Exit(1)
	}

	party, err := task.FromRecord(rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rebuilding scorer: %v\n", err)
		os.Exit(1)
	}

	// The calibration sample is not persisted; rebuild it so the statistics
	// have a baseline distribution.
	rng := rand.New(rand.NewSource(seed))
	party.CalibrateTarget(samples, 3, rng)

	names := task.ExtractNames(answer, party.SetSize)
	score := party.ScoreSet(names)
	stats := party.Statistics(score)

	fmt.Printf("Puzzle:           %s\n", rec.QuestionID)
	fmt.Printf("Extracted names:  %v\n", names)
	fmt.Printf("Score:            %g (target %g)\n", score, rec.TargetScore)
	fmt.Printf("Percentile:       %.3f\n", stats.Percentile)
	fmt.Printf("Ranking:          %d of %d\n", stats.Ranking, samples)
	fmt.Printf("Percent of max:   %.3f\n", stats.PercentOfMax)
	fmt.Printf("Normalized:       %.3f\n", stats.NormalizedScore)
	fmt.Printf("Rank-normalized:  %.3f\n", stats.RankNormalizedScore)
}

// loadRecord reads the nth line of a JSONL file and decodes it.
func loadRecord(path string, n int) (task.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return task.Record{}, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	current := 0
	for scanner.Scan() {
		current++
		if current == n {
			var rec task.Record
			if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
				return task.Record{}, fmt.Errorf("line %d: %w", n, err)
			}
			return rec, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return task.Record{}, err
	}
	return task.Record{}, fmt.Errorf("line %d not found in %s", n, path)
}
