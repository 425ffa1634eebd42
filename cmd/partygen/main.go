// Package main provides the partygen CLI for generating dinner-party puzzle
// files in JSONL format.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/qemqemqem/dinnerbench/task"
)

// CLI flags
var (
	count            int
	output           string
	numPeople        int
	numInterests     int
	setSize          int
	targetComplexity int
	targetRounds     int
	samples          int
	kth              int
	seed             int64
	verbose          bool
)

func init() {
	flag.IntVar(&count, "n", 20, "Number of puzzles to generate")
	flag.StringVar(&output, "output", "dinner_party.jsonl", "Output JSONL file")
	flag.IntVar(&numPeople, "people", 10, "Guests per roster")
	flag.IntVar(&numInterests, "interests", 6, "Size of the interest universe")
	flag.IntVar(&setSize, "set-size", 5, "Guests to select")
	flag.IntVar(&targetComplexity, "complexity", 10, "Scoring-rule complexity budget (0 = classic scoring)")
	flag.IntVar(&targetRounds, "rounds", 3, "Desired number of scoring rounds")
	flag.IntVar(&samples, "samples", 1000, "Calibration samples per puzzle")
	flag.IntVar(&kth, "kth", 3, "Which ranked calibration score becomes the target")
	flag.Int64Var(&seed, "seed", 0, "Random seed (0 = use current time)")
	flag.BoolVar(&verbose, "verbose", false, "Print each puzzle's target score")
}

func main() {
	flag.Parse()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
			os.Exit(1)
		}
	}

	f, err := os.Create(output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	cfg := task.Config{
		NumPeople:        numPeople,
		NumInterests:     numInterests,
		SetSize:          setSize,
		TargetComplexity: targetComplexity,
		TargetRounds:     targetRounds,
		Samples:          samples,
		Kth:              kth,
	}

	for i := 0; i < count; i++ {
		party, err := task.Random(cfg, rng)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating puzzle %d: %v\n", i+1, err)
			os.Exit(1)
		}

		rec, err := party.Record()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding puzzle %d: %v\n", i+1, err)
			os.Exit(1)
		}
		line, err := json.Marshal(rec)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding puzzle %d: %v\n", i+1, err)
			os.Exit(1)
		}
		w.Write(line)
		w.WriteByte('\n')

		if verbose {
			fmt.Printf("%3d. %s target=%g\n", i+1, rec.QuestionID, rec.TargetScore)
		}
	}

	fmt.Printf("Wrote %d puzzles to %s (seed %d)\n", count, output, seed)
}
