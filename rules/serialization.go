package rules

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownRuleType is returned when a persisted record names a rule variant
// this engine does not know. Skipping such a rule would silently change the
// total score semantics, so deserialization fails instead.
var ErrUnknownRuleType = errors.New("unknown rule type")

// RuleJSON is the flat persisted form of a rule: a type tag plus whatever
// parameters the variant randomized at construction time. Frozen parameters
// are carried in the record so a reloaded rule scores identically, never
// re-randomized on load.
type RuleJSON struct {
	Type       string `json:"type"`
	Interest   string `json:"interest,omitempty"`
	Bonus      int    `json:"bonus,omitempty"`
	Multiplier int    `json:"multiplier,omitempty"`
}

// MarshalRule converts a rule to its persisted record.
func MarshalRule(r Rule) RuleJSON {
	rj := RuleJSON{Type: r.TypeName()}
	switch v := r.(type) {
	case SingleInterest:
		rj.Interest = v.Interest
	case NicheInterests:
		rj.Bonus = v.Bonus
	case FewestInterestsHost:
		rj.Multiplier = v.Multiplier
	}
	return rj
}

// UnmarshalRule reconstructs a rule from its persisted record.
func UnmarshalRule(rj RuleJSON) (Rule, error) {
	switch rj.Type {
	case TypeEachPersonSpeaks:
		return EachPersonSpeaks{}, nil
	case TypeSingleInterest:
		return SingleInterest{Interest: rj.Interest}, nil
	case TypeWellRoundedInterests:
		return WellRoundedInterests{}, nil
	case TypeNicheInterests:
		return NicheInterests{Bonus: rj.Bonus}, nil
	case TypeAlphabeticHostInterest:
		return AlphabeticHostInterest{}, nil
	case TypeLargestInterestValue:
		return LargestInterestValue{}, nil
	case TypeMostCommonInterest:
		return MostCommonInterest{}, nil
	case TypeMostCommonInterestExceptPrevious:
		return MostCommonInterest{IgnorePrevious: true}, nil
	case TypeFewestInterestsHost:
		return FewestInterestsHost{Multiplier: rj.Multiplier}, nil
	case TypeFewestInterestsLargestValue:
		return FewestInterestsLargestValue{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRuleType, rj.Type)
	}
}

// gameScoringJSON is the persisted form of a full rule configuration.
type gameScoringJSON struct {
	TargetComplexity int        `json:"target_complexity"`
	Rules            []RuleJSON `json:"rules"`
}

// MarshalJSON implements json.Marshaler for GameScoring.
func (g *GameScoring) MarshalJSON() ([]byte, error) {
	gj := gameScoringJSON{
		TargetComplexity: g.TargetComplexity,
		Rules:            make([]RuleJSON, len(g.Rules)),
	}
	for i, r := range g.Rules {
		gj.Rules[i] = MarshalRule(r)
	}
	return json.Marshal(gj)
}

// UnmarshalGameScoring reconstructs a scorer from persisted JSON. The rebuilt
// scorer reproduces the original's behavior exactly; an unrecognized rule
// type is fatal.
func UnmarshalGameScoring(data []byte) (*GameScoring, error) {
	var gj gameScoringJSON
	if err := json.Unmarshal(data, &gj); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scoring config: %w", err)
	}

	ruleSeq := make([]Rule, len(gj.Rules))
	for i, rj := range gj.Rules {
		r, err := UnmarshalRule(rj)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		ruleSeq[i] = r
	}
	return NewGameScoring(gj.TargetComplexity, ruleSeq), nil
}
