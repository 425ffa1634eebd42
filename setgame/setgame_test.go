package setgame

import (
	"math/rand"
	"strings"
	"testing"
)

func TestCardCodeRoundTrip(t *testing.T) {
	card, err := FromCode("R-O-1-S")
	if err != nil {
		t.Fatalf("FromCode failed: %v", err)
	}
	if card.Color != "R" || card.Shape != "O" || card.Number != 1 || card.Shading != "S" {
		t.Errorf("parsed card wrong: %+v", card)
	}
	if got := card.Code(); got != "R-O-1-S" {
		t.Errorf("expected R-O-1-S, got %q", got)
	}
}

func TestFromCodeInvalid(t *testing.T) {
	for _, code := range []string{"", "R-O-1", "R-O-x-S"} {
		if _, err := FromCode(code); err == nil {
			t.Errorf("expected error for %q", code)
		}
	}
}

func TestIsValidSet(t *testing.T) {
	cases := []struct {
		name  string
		codes [3]string
		want  bool
	}{
		{"all different", [3]string{"R-O-1-S", "G-S-2-H", "P-D-3-O"}, true},
		{"all same color", [3]string{"R-O-1-S", "R-S-2-H", "R-D-3-O"}, true},
		{"two share a shape", [3]string{"R-O-1-S", "G-O-2-H", "P-D-3-O"}, false},
		{"two share a number", [3]string{"R-O-1-S", "G-S-1-H", "P-D-3-O"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var cards [3]Card
			for i, code := range tc.codes {
				card, err := FromCode(code)
				if err != nil {
					t.Fatalf("FromCode(%q) failed: %v", code, err)
				}
				cards[i] = card
			}
			if got := IsValidSet(cards[0], cards[1], cards[2]); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestFindAllSets(t *testing.T) {
	deck := allCards()
	if len(deck) != 81 {
		t.Fatalf("expected 81 cards, got %d", len(deck))
	}

	// The full deck contains many sets; a tiny board may contain none.
	if sets := FindAllSets(deck[:2]); sets != nil {
		t.Errorf("a 2-card board has no sets, got %d", len(sets))
	}

	board := []Card{
		{"R", "O", 1, "S"},
		{"G", "S", 2, "H"},
		{"P", "D", 3, "O"},
	}
	if sets := FindAllSets(board); len(sets) != 1 {
		t.Errorf("expected exactly 1 set, got %d", len(sets))
	}
}

func TestRandomGameHasExactlyOneSet(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	game := RandomGame(12, rng)

	if len(game.Board) != 12 {
		t.Errorf("expected board of 12, got %d", len(game.Board))
	}
	if sets := FindAllSets(game.Board); len(sets) != 1 {
		t.Fatalf("expected exactly 1 valid set on the board, got %d", len(sets))
	}
	if !IsValidSet(game.ValidSet[0], game.ValidSet[1], game.ValidSet[2]) {
		t.Error("the known set is not valid")
	}
}

func TestCheckAnswer(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	game := RandomGame(12, rng)

	codes := []string{
		game.ValidSet[0].Code(),
		game.ValidSet[1].Code(),
		game.ValidSet[2].Code(),
	}
	if !game.CheckAnswer(codes) {
		t.Error("the known valid set should be accepted")
	}

	// Order doesn't matter.
	if !game.CheckAnswer([]string{codes[2], codes[0], codes[1]}) {
		t.Error("set validity is order independent")
	}

	if game.CheckAnswer([]string{codes[0], codes[1]}) {
		t.Error("two cards are not a set")
	}
	if game.CheckAnswer([]string{codes[0], codes[0], codes[1]}) {
		t.Error("duplicate cards are not a set")
	}
	if game.CheckAnswer([]string{codes[0], codes[1], "bogus"}) {
		t.Error("malformed codes should be rejected")
	}
}

func TestPromptListsBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	game := RandomGame(9, rng)

	prompt := game.Prompt()
	if !strings.Contains(prompt, "Board:") {
		t.Errorf("prompt missing board header:\n%s", prompt)
	}
	for _, card := range game.Board {
		if !strings.Contains(prompt, card.Code()) {
			t.Errorf("prompt missing card %s", card.Code())
		}
	}
}
