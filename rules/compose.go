package rules

import (
	"log"
	"math"
	"math/rand"

	"github.com/qemqemqem/dinnerbench/guest"
)

// variantSpec describes one rule variant to the composer: its type name,
// complexity rating, first-round eligibility, and randomized constructor.
type variantSpec struct {
	name       string
	complexity int
	firstRound bool
	build      func(roster *guest.Roster, rng *rand.Rand) Rule
}

// registry enumerates every rule variant. Both the composer and the
// deserializer work from this closed set.
func registry() []variantSpec {
	return []variantSpec{
		{TypeEachPersonSpeaks, 1, true, func(_ *guest.Roster, _ *rand.Rand) Rule {
			return EachPersonSpeaks{}
		}},
		{TypeSingleInterest, 1, true, func(roster *guest.Roster, rng *rand.Rand) Rule {
			return NewRandomSingleInterest(roster, rng)
		}},
		{TypeWellRoundedInterests, 1, true, func(_ *guest.Roster, _ *rand.Rand) Rule {
			return WellRoundedInterests{}
		}},
		{TypeNicheInterests, 2, true, func(_ *guest.Roster, rng *rand.Rand) Rule {
			return NewRandomNicheInterests(rng)
		}},
		{TypeAlphabeticHostInterest, 3, true, func(_ *guest.Roster, _ *rand.Rand) Rule {
			return AlphabeticHostInterest{}
		}},
		{TypeLargestInterestValue, 3, true, func(_ *guest.Roster, _ *rand.Rand) Rule {
			return LargestInterestValue{}
		}},
		{TypeMostCommonInterest, 3, true, func(_ *guest.Roster, _ *rand.Rand) Rule {
			return MostCommonInterest{}
		}},
		// Only makes sense once a previous round has discussed something.
		{TypeMostCommonInterestExceptPrevious, 3, false, func(_ *guest.Roster, _ *rand.Rand) Rule {
			return MostCommonInterest{IgnorePrevious: true}
		}},
		{TypeFewestInterestsHost, 4, true, func(_ *guest.Roster, rng *rand.Rand) Rule {
			return NewRandomFewestInterestsHost(rng)
		}},
		{TypeFewestInterestsLargestValue, 4, true, func(_ *guest.Roster, _ *rand.Rand) Rule {
			return FewestInterestsLargestValue{}
		}},
	}
}

// ComposeConfig controls random rule composition.
type ComposeConfig struct {
	// TargetComplexity is the complexity budget to spend on rules.
	TargetComplexity int

	// TargetRounds is the desired number of rounds (default 3). Once met,
	// selection biases toward the largest affordable rule to finish the
	// budget quickly.
	TargetRounds int

	// WeightingExponent sharpens the preference for rules whose rating is
	// close to the ideal per-round share. Values <= 0 disable weighting and
	// candidates are drawn uniformly.
	WeightingExponent float64
}

// Compose randomly assembles a rule sequence against the complexity budget.
// At each step the affordable variants are weighted by closeness of their
// rating to the ideal share of the remaining budget, and one is drawn. The
// loop stops when the budget is exhausted or nothing affordable remains; a
// shortfall is tolerated and surfaces as the usual complexity-mismatch
// warning from NewGameScoring.
func Compose(cfg ComposeConfig, roster *guest.Roster, rng *rand.Rand) *GameScoring {
	if cfg.TargetRounds <= 0 {
		cfg.TargetRounds = 3
	}

	variants := registry()
	remaining := cfg.TargetComplexity
	var chosen []Rule

	for remaining > 0 {
		var candidates []variantSpec
		maxAffordable := 0
		for _, v := range variants {
			if v.complexity > remaining {
				continue
			}
			if len(chosen) == 0 && !v.firstRound {
				continue
			}
			candidates = append(candidates, v)
			if v.complexity > maxAffordable {
				maxAffordable = v.complexity
			}
		}
		if len(candidates) == 0 {
			break
		}

		var ideal float64
		if len(chosen) < cfg.TargetRounds {
			ideal = float64(remaining) / float64(cfg.TargetRounds-len(chosen))
		} else {
			ideal = float64(maxAffordable)
		}

		weights := make([]float64, len(candidates))
		for i, v := range candidates {
			if cfg.WeightingExponent <= 0 {
				weights[i] = 1
				continue
			}
			w := 1.0 / (math.Abs(float64(v.complexity)-ideal) + 1.0)
			weights[i] = math.Pow(w, cfg.WeightingExponent)
		}

		pick := candidates[weightedChoice(weights, rng)]
		chosen = append(chosen, pick.build(roster, rng))
		remaining -= pick.complexity
	}

	if remaining > 0 {
		log.Printf("composer left %d complexity unspent of %d", remaining, cfg.TargetComplexity)
	}
	return NewGameScoring(cfg.TargetComplexity, chosen)
}

// OneOfEach builds a configuration containing one instance of every variant,
// in registry order. Useful for exercising the whole rule family at once.
func OneOfEach(roster *guest.Roster, rng *rand.Rand) *GameScoring {
	var chosen []Rule
	total := 0
	for _, v := range registry() {
		chosen = append(chosen, v.build(roster, rng))
		total += v.complexity
	}
	return NewGameScoring(total, chosen)
}

// weightedChoice draws an index proportionally to weights, in the spirit of
// roulette-wheel selection. Falls back to uniform when all weights are zero.
func weightedChoice(weights []float64, rng *rand.Rand) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return rng.Intn(len(weights))
	}

	spin := rng.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		if w > 0 {
			cumulative += w
			if cumulative >= spin {
				return i
			}
		}
	}
	return len(weights) - 1
}
