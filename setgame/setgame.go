// Package setgame generates boards for the card-matching ("Set") task and
// checks candidate answers. A valid set is three cards where every attribute
// is either shared by all three or distinct across all three.
package setgame

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Attribute values. Cards are encoded as "color-shape-number-shading" codes,
// e.g. "R-O-1-S".
var (
	Colors   = []string{"R", "G", "P"} // red, green, purple
	Shapes   = []string{"O", "S", "D"} // oval, squiggle, diamond
	Numbers  = []int{1, 2, 3}
	Shadings = []string{"S", "H", "O"} // solid, shaded, open
)

// Card is one card on the board.
type Card struct {
	Color   string
	Shape   string
	Number  int
	Shading string
}

// FromCode parses a card code like "R-O-1-S".
func FromCode(code string) (Card, error) {
	parts := strings.Split(code, "-")
	if len(parts) != 4 {
		return Card{}, fmt.Errorf("invalid card code %q", code)
	}
	number, err := strconv.Atoi(parts[2])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card code %q: %w", code, err)
	}
	return Card{Color: parts[0], Shape: parts[1], Number: number, Shading: parts[3]}, nil
}

// Code returns the card's string code.
func (c Card) Code() string {
	return fmt.Sprintf("%s-%s-%d-%s", c.Color, c.Shape, c.Number, c.Shading)
}

// IsValidSet reports whether three cards form a set: each attribute is all
// the same or all different.
func IsValidSet(a, b, c Card) bool {
	return attrOK(a.Color, b.Color, c.Color) &&
		attrOK(a.Shape, b.Shape, c.Shape) &&
		attrOK(strconv.Itoa(a.Number), strconv.Itoa(b.Number), strconv.Itoa(c.Number)) &&
		attrOK(a.Shading, b.Shading, c.Shading)
}

func attrOK(x, y, z string) bool {
	allSame := x == y && y == z
	allDifferent := x != y && y != z && x != z
	return allSame || allDifferent
}

// Game is a board with exactly one known valid set.
type Game struct {
	Board    []Card
	ValidSet []Card
}

// FindAllSets enumerates every valid set on a board.
func FindAllSets(board []Card) [][]Card {
	var sets [][]Card
	for i := 0; i < len(board); i++ {
		for j := i + 1; j < len(board); j++ {
			for k := j + 1; k < len(board); k++ {
				if IsValidSet(board[i], board[j], board[k]) {
					sets = append(sets, []Card{board[i], board[j], board[k]})
				}
			}
		}
	}
	return sets
}

// allCards enumerates the full 81-card deck.
func allCards() []Card {
	var deck []Card
	for _, color := range Colors {
		for _, shape := range Shapes {
			for _, number := range Numbers {
				for _, shading := range Shadings {
					deck = append(deck, Card{color, shape, number, shading})
				}
			}
		}
	}
	return deck
}

// RandomGame samples boards until one has exactly one valid set.
func RandomGame(boardSize int, rng *rand.Rand) Game {
	deck := allCards()
	for {
		board := make([]Card, boardSize)
		for i, idx := range rng.Perm(len(deck))[:boardSize] {
			board[i] = deck[idx]
		}
		sets := FindAllSets(board)
		if len(sets) == 1 {
			return Game{Board: board, ValidSet: sets[0]}
		}
	}
}

// CheckAnswer reports whether the answered card codes name a valid set
// present on the board.
func (g Game) CheckAnswer(codes []string) bool {
	if len(codes) != 3 {
		return false
	}
	cards := make([]Card, 3)
	for i, code := range codes {
		card, err := FromCode(strings.TrimSpace(code))
		if err != nil {
			return false
		}
		if !g.onBoard(card) {
			return false
		}
		cards[i] = card
	}
	if cards[0] == cards[1] || cards[1] == cards[2] || cards[0] == cards[2] {
		return false
	}
	return IsValidSet(cards[0], cards[1], cards[2])
}

func (g Game) onBoard(card Card) bool {
	for _, c := range g.Board {
		if c == card {
			return true
		}
	}
	return false
}

// Prompt renders the board as a question.
func (g Game) Prompt() string {
	var b strings.Builder
	b.WriteString("Find a valid Set among the following cards. A Set is three cards where each attribute (color, shape, number, shading) is all the same or all different.\n\nBoard:\n")
	for i, card := range g.Board {
		fmt.Fprintf(&b, "%d. %s\n", i+1, card.Code())
	}
	b.WriteString("\nAnswer with the three card codes, e.g. R-O-1-S, G-S-2-H, P-D-3-O.")
	return b.String()
}
