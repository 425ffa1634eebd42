package rules

import (
	"fmt"
	"log"
	"strings"

	"github.com/qemqemqem/dinnerbench/guest"
)

// Context is the round-to-round state threaded through a scoring pass:
// which interests have been discussed, which guests have hosted, the current
// round index, and the running per-guest scores. Rules read it; only the
// driver (and the host-rotation reset) writes it.
type Context struct {
	DiscussedInterests []string
	PreviousHosts      []string
	CurrentRound       int
	Scores             map[string]float64
}

// IsDiscussed reports whether an interest was discussed in a prior round of
// this pass.
func (c *Context) IsDiscussed(interest string) bool {
	for _, d := range c.DiscussedInterests {
		if d == interest {
			return true
		}
	}
	return false
}

// HasHosted reports whether the named guest already hosted in this pass.
func (c *Context) HasHosted(name string) bool {
	for _, h := range c.PreviousHosts {
		if h == name {
			return true
		}
	}
	return false
}

// resetHosts clears the host-exclusion list. Host-selecting rules call it
// when every selected guest has already hosted, so hosts cycle rather than
// sticking on one guest.
func (c *Context) resetHosts() {
	c.PreviousHosts = c.PreviousHosts[:0]
}

// reset clears all mutable state so the next scoring pass starts clean.
func (c *Context) reset() {
	c.DiscussedInterests = nil
	c.PreviousHosts = nil
	c.CurrentRound = 0
	c.Scores = make(map[string]float64)
}

// GameScoring is a fixed rule configuration scored round by round. It is
// built once per puzzle and reused across many candidate guest subsets; the
// context is private and ScoreAllRounds resets it before and after every
// pass, so no discussed-interest or host state can leak between passes.
type GameScoring struct {
	TargetComplexity int
	Rules            []Rule

	ctx Context
}

// NewGameScoring builds a scorer from an ordered rule sequence. A mismatch
// between the summed complexity ratings and the target is tolerated (the
// composer cannot always exhaust a budget exactly with discrete ratings) and
// logged as a warning.
func NewGameScoring(targetComplexity int, ruleSeq []Rule) *GameScoring {
	total := 0
	for _, r := range ruleSeq {
		total += r.Complexity()
	}
	if total != targetComplexity {
		log.Printf("warning: rules complexity (%d) doesn't match target (%d)", total, targetComplexity)
	}
	return &GameScoring{TargetComplexity: targetComplexity, Rules: ruleSeq}
}

// ScoreAllRounds scores the selected guests through every rule in order and
// returns the summed total. State is reset going in and coming out, so the
// same GameScoring can score thousands of candidate sets independently.
func (g *GameScoring) ScoreAllRounds(selected []guest.Person) float64 {
	g.ctx.reset()

	for _, rule := range g.Rules {
		deltas, meta := rule.ScoreRound(selected, &g.ctx)
		if meta.Interest != "" {
			g.ctx.DiscussedInterests = append(g.ctx.DiscussedInterests, meta.Interest)
		}
		if meta.Host != "" {
			g.ctx.PreviousHosts = append(g.ctx.PreviousHosts, meta.Host)
		}
		for name, delta := range deltas {
			g.ctx.Scores[name] += delta
		}
		g.ctx.CurrentRound++
	}

	total := 0.0
	for _, score := range g.ctx.Scores {
		total += score
	}

	g.ctx.reset()
	return total
}

// ScoreNames resolves candidate names against a roster and scores the
// resulting guests. Free-text answer extraction is noisy: names not on the
// roster contribute nothing, and a repeated name counts its guest once.
func (g *GameScoring) ScoreNames(roster *guest.Roster, names []string) float64 {
	seen := make(map[string]bool, len(names))
	selected := make([]guest.Person, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		if p, ok := roster.Find(name); ok {
			selected = append(selected, p)
		}
	}
	return g.ScoreAllRounds(selected)
}

// Describe returns a numbered, per-round description of the configuration.
func (g *GameScoring) Describe() string {
	var b strings.Builder
	for i, rule := range g.Rules {
		fmt.Fprintf(&b, "Round %d: %s\n", i+1, rule.Describe())
	}
	return b.String()
}
