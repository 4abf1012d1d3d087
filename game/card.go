package game

import (
	"sort"
	"strings"

	"github.com/hearts-online/server/consts"
)

// Suit order doubles as the hand sort priority.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

var suitNames = [...]string{"Clubs", "Diamonds", "Hearts", "Spades"}

func (s Suit) String() string {
	if s < Clubs || s > Spades {
		return "?"
	}
	return suitNames[s]
}

// Rank values follow the Hearts ordering, deuce low and ace high.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankNames = map[Rank]string{
	Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7",
	Eight: "8", Nine: "9", Ten: "10", Jack: "J", Queen: "Q", King: "K", Ace: "A",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return "?"
}

// Card is an immutable rank and suit pair. Equality is value equality,
// which the two-copy deck relies on: both copies of a card compare equal.
type Card struct {
	Rank Rank
	Suit Suit
}

// String renders the boundary form "<rank> of <suit>". Only the
// serialization layer may depend on this text.
func (c Card) String() string {
	return c.Rank.String() + " of " + c.Suit.String()
}

var (
	ranksByName = map[string]Rank{
		"2": Two, "3": Three, "4": Four, "5": Five, "6": Six, "7": Seven,
		"8": Eight, "9": Nine, "10": Ten, "J": Jack, "Q": Queen, "K": King, "A": Ace,
	}
	suitsByName = map[string]Suit{
		"Clubs": Clubs, "Diamonds": Diamonds, "Hearts": Hearts, "Spades": Spades,
	}
)

// ParseCard reads the boundary form back into a Card.
func ParseCard(text string) (Card, error) {
	parts := strings.SplitN(strings.TrimSpace(text), " of ", 2)
	if len(parts) != 2 {
		return Card{}, consts.ErrorsCardInvalid
	}
	rank, ok := ranksByName[strings.TrimSpace(parts[0])]
	if !ok {
		return Card{}, consts.ErrorsCardInvalid
	}
	suit, ok := suitsByName[strings.TrimSpace(parts[1])]
	if !ok {
		return Card{}, consts.ErrorsCardInvalid
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// SortHand orders a hand by suit then rank, Clubs low and Spades high.
// Dealt hands stay in this order for the rest of the round.
func SortHand(hand []Card) {
	sort.Slice(hand, func(i, j int) bool {
		if hand[i].Suit != hand[j].Suit {
			return hand[i].Suit < hand[j].Suit
		}
		return hand[i].Rank < hand[j].Rank
	})
}
