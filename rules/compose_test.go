package rules

import (
	"math/rand"
	"testing"

	"github.com/qemqemqem/dinnerbench/guest"
)

func composeRoster(t *testing.T) *guest.Roster {
	t.Helper()
	return testRoster(t,
		guest.NewPerson("Alice", map[string]int{"cooking": 5, "art": 2}),
		guest.NewPerson("Bob", map[string]int{"cooking": 3, "wine": 4}),
		guest.NewPerson("Carol", map[string]int{"art": 1, "wine": 2, "chess": 5}),
	)
}

func totalComplexity(g *GameScoring) int {
	total := 0
	for _, r := range g.Rules {
		total += r.Complexity()
	}
	return total
}

func TestComposeExhaustsBudget(t *testing.T) {
	roster := composeRoster(t)
	rng := rand.New(rand.NewSource(42))
	cfg := ComposeConfig{TargetComplexity: 10, TargetRounds: 3, WeightingExponent: 2.0}

	// With ratings 1-4 available, a budget of 10 is always exactly
	// achievable; the greedy loop should never leave a shortfall.
	for trial := 0; trial < 200; trial++ {
		g := Compose(cfg, roster, rng)
		got := totalComplexity(g)
		if got > 10 {
			t.Fatalf("trial %d: budget overrun: %d > 10", trial, got)
		}
		if got != 10 {
			t.Fatalf("trial %d: budget left unspent: %d != 10", trial, got)
		}
	}
}

func TestComposeSmallBudgets(t *testing.T) {
	roster := composeRoster(t)
	rng := rand.New(rand.NewSource(7))

	for budget := 0; budget <= 6; budget++ {
		for trial := 0; trial < 50; trial++ {
			g := Compose(ComposeConfig{TargetComplexity: budget}, roster, rng)
			if got := totalComplexity(g); got != budget {
				t.Fatalf("budget %d trial %d: composed %d", budget, trial, got)
			}
		}
	}
}

func TestComposeExcludesExceptPreviousFirstRound(t *testing.T) {
	roster := composeRoster(t)
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 300; trial++ {
		g := Compose(ComposeConfig{TargetComplexity: 9, WeightingExponent: 2.0}, roster, rng)
		if len(g.Rules) == 0 {
			t.Fatal("composed no rules")
		}
		if g.Rules[0].TypeName() == TypeMostCommonInterestExceptPrevious {
			t.Fatalf("trial %d: except-previous variant chosen in the first round", trial)
		}
	}
}

func TestComposeRespectsRoundQuota(t *testing.T) {
	roster := composeRoster(t)
	rng := rand.New(rand.NewSource(42))

	// With exponent weighting and budget 12 over 3 rounds the ideal share is
	// 4 each round; weighted draws should land on at least 3 rounds.
	g := Compose(ComposeConfig{TargetComplexity: 12, TargetRounds: 3, WeightingExponent: 2.0}, roster, rng)
	if len(g.Rules) < 3 {
		t.Errorf("expected at least 3 rounds, got %d", len(g.Rules))
	}
}

func TestComposeUnweighted(t *testing.T) {
	roster := composeRoster(t)
	rng := rand.New(rand.NewSource(42))

	g := Compose(ComposeConfig{TargetComplexity: 8, WeightingExponent: 0}, roster, rng)
	if got := totalComplexity(g); got != 8 {
		t.Errorf("unweighted composition should still spend the budget, got %d", got)
	}
}

func TestComposedRulesScoreDeterministically(t *testing.T) {
	roster := composeRoster(t)
	rng := rand.New(rand.NewSource(42))
	g := Compose(ComposeConfig{TargetComplexity: 10, WeightingExponent: 2.0}, roster, rng)

	selected := roster.People()[:2]
	first := g.ScoreAllRounds(selected)
	if second := g.ScoreAllRounds(selected); second != first {
		t.Errorf("composed configuration not deterministic: %v != %v", first, second)
	}
}

func TestOneOfEach(t *testing.T) {
	roster := composeRoster(t)
	rng := rand.New(rand.NewSource(42))

	g := OneOfEach(roster, rng)

	if len(g.Rules) != len(registry()) {
		t.Fatalf("expected %d rules, got %d", len(registry()), len(g.Rules))
	}
	if got := totalComplexity(g); got != g.TargetComplexity {
		t.Errorf("target complexity %d doesn't match rules sum %d", g.TargetComplexity, got)
	}
	seen := make(map[string]bool)
	for _, r := range g.Rules {
		if seen[r.TypeName()] {
			t.Errorf("duplicate variant %q", r.TypeName())
		}
		seen[r.TypeName()] = true
	}
}

func TestWeightedChoiceDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	counts := make([]int, 3)
	for i := 0; i < 3000; i++ {
		counts[weightedChoice([]float64{1, 0, 9}, rng)]++
	}

	if counts[1] != 0 {
		t.Errorf("zero-weight index drawn %d times", counts[1])
	}
	if counts[2] < counts[0] {
		t.Errorf("heavier weight drawn less often: %v", counts)
	}
}
