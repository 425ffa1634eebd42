// Package rules implements the dinner-party scoring-rule engine: a closed
// family of round-scoring policies, the round context that threads state
// between rounds, a weighted random composer that assembles rule sequences
// against a complexity budget, and JSON serialization of rule configurations.
package rules

import (
	"github.com/qemqemqem/dinnerbench/guest"
)

// Metadata reports a round's side effects back to the driver: a newly
// discussed interest, a newly assigned host, or (for the niche-interest rule)
// the niche interests it found. Niche interests are reported for visibility
// but never folded into the discussed-interest history.
type Metadata struct {
	Interest       string
	Host           string
	NicheInterests []string
}

// Rule is one round's scoring policy. ScoreRound returns the per-guest score
// deltas for this round only; the driver accumulates them and records any
// metadata into the round context. Rules are stateless beyond the parameters
// they froze at construction time.
type Rule interface {
	ScoreRound(selected []guest.Person, ctx *Context) (map[string]float64, Metadata)

	// Complexity is the rule's fixed complexity rating, used only for
	// budgeting by the composer.
	Complexity() int

	// TypeName identifies the variant for serialization.
	TypeName() string

	// Describe returns a human-readable description of the round's policy.
	Describe() string
}

// bestInterest returns the interest with the highest value, breaking ties
// toward the alphabetically earlier name. ok is false when values is empty.
func bestInterest(values map[string]int) (name string, value int, ok bool) {
	for interest, v := range values {
		if !ok || v > value || (v == value && interest < name) {
			name, value, ok = interest, v, true
		}
	}
	return name, value, ok
}

// mostCommonKey returns the key with the highest count, breaking ties toward
// the alphabetically earlier key. ok is false when counts is empty.
func mostCommonKey(counts map[string]int) (name string, ok bool) {
	best := 0
	for key, c := range counts {
		if !ok || c > best || (c == best && key < name) {
			name, best, ok = key, c, true
		}
	}
	return name, ok
}

// zeroScores returns an all-zero score map for the selected guests.
func zeroScores(selected []guest.Person) map[string]float64 {
	scores := make(map[string]float64, len(selected))
	for _, p := range selected {
		scores[p.Name] = 0
	}
	return scores
}
