package game

// NewDeck builds the ordered deck: the four suits fully crossed with the
// thirteen ranks, repeated copies times. Two copies (104 cards) is the
// canonical table so that four seats receive 26 cards each.
func NewDeck(copies int) []Card {
	cards := make([]Card, 0, 52*copies)
	for i := 0; i < copies; i++ {
		for suit := Clubs; suit <= Spades; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				cards = append(cards, Card{Rank: rank, Suit: suit})
			}
		}
	}
	return cards
}

// Shuffle permutes deck in place with a Fisher-Yates pass from the last index
// down to 1. Every permutation is equally likely given a uniform source.
func Shuffle(deck []Card, rnd Rand) {
	for i := len(deck) - 1; i > 0; i-- {
		j := int(rnd.Float64() * float64(i+1))
		deck[i], deck[j] = deck[j], deck[i]
	}
}
