package rules

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/qemqemqem/dinnerbench/guest"
)

func TestRuleRoundTrip(t *testing.T) {
	selected := []guest.Person{
		guest.NewPerson("Alice", map[string]int{"cooking": 5, "art": 2, "chess": 1}),
		guest.NewPerson("Bob", map[string]int{"cooking": 3, "wine": 4}),
		guest.NewPerson("Carol", map[string]int{"art": 1, "wine": 2}),
	}

	cases := []Rule{
		EachPersonSpeaks{},
		SingleInterest{Interest: "cooking"},
		WellRoundedInterests{},
		NicheInterests{Bonus: 6},
		AlphabeticHostInterest{},
		LargestInterestValue{},
		MostCommonInterest{},
		MostCommonInterest{IgnorePrevious: true},
		FewestInterestsHost{Multiplier: 4},
		FewestInterestsLargestValue{},
	}

	for _, original := range cases {
		t.Run(original.TypeName(), func(t *testing.T) {
			restored, err := UnmarshalRule(MarshalRule(original))
			if err != nil {
				t.Fatalf("round trip failed: %v", err)
			}

			ctx := &Context{DiscussedInterests: []string{"chess"}, PreviousHosts: []string{"Carol"}}
			wantScores, wantMeta := original.ScoreRound(selected, ctx)

			ctx = &Context{DiscussedInterests: []string{"chess"}, PreviousHosts: []string{"Carol"}}
			gotScores, gotMeta := restored.ScoreRound(selected, ctx)

			for name, want := range wantScores {
				if gotScores[name] != want {
					t.Errorf("%s: expected %v, got %v", name, want, gotScores[name])
				}
			}
			if gotMeta.Interest != wantMeta.Interest || gotMeta.Host != wantMeta.Host {
				t.Errorf("metadata mismatch: %+v vs %+v", gotMeta, wantMeta)
			}
			if restored.Complexity() != original.Complexity() {
				t.Errorf("complexity changed: %d vs %d", restored.Complexity(), original.Complexity())
			}
		})
	}
}

func TestRuleRecordCapturesFrozenParameters(t *testing.T) {
	rj := MarshalRule(SingleInterest{Interest: "sailing"})
	if rj.Interest != "sailing" {
		t.Errorf("record must carry the chosen interest, got %q", rj.Interest)
	}

	rj = MarshalRule(NicheInterests{Bonus: 7})
	if rj.Bonus != 7 {
		t.Errorf("record must carry the bonus, got %d", rj.Bonus)
	}

	rj = MarshalRule(FewestInterestsHost{Multiplier: 5})
	if rj.Multiplier != 5 {
		t.Errorf("record must carry the multiplier, got %d", rj.Multiplier)
	}
}

func TestUnmarshalUnknownRuleType(t *testing.T) {
	_, err := UnmarshalRule(RuleJSON{Type: "psychic_host"})
	if err == nil {
		t.Fatal("expected an error for an unknown rule type")
	}
	if !errors.Is(err, ErrUnknownRuleType) {
		t.Errorf("expected ErrUnknownRuleType, got %v", err)
	}
}

func TestGameScoringRoundTrip(t *testing.T) {
	original := NewGameScoring(8, []Rule{
		SingleInterest{Interest: "wine"},
		MostCommonInterest{IgnorePrevious: true},
		FewestInterestsHost{Multiplier: 3},
	})

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	restored, err := UnmarshalGameScoring(data)
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if restored.TargetComplexity != 8 {
		t.Errorf("target complexity lost: %d", restored.TargetComplexity)
	}
	if len(restored.Rules) != 3 {
		t.Fatalf("expected 3 rules, got %d", len(restored.Rules))
	}

	selected := []guest.Person{
		guest.NewPerson("Alice", map[string]int{"cooking": 5, "wine": 2}),
		guest.NewPerson("Bob", map[string]int{"cooking": 3, "wine": 4}),
	}
	if want, got := original.ScoreAllRounds(selected), restored.ScoreAllRounds(selected); want != got {
		t.Errorf("restored scorer disagrees: %v != %v", want, got)
	}
}

func TestUnmarshalGameScoringRejectsUnknownRule(t *testing.T) {
	data := []byte(`{"target_complexity": 3, "rules": [{"type": "telepathy"}]}`)
	_, err := UnmarshalGameScoring(data)
	if !errors.Is(err, ErrUnknownRuleType) {
		t.Errorf("expected ErrUnknownRuleType, got %v", err)
	}
}
