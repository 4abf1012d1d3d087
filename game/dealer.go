package game

// Deal splits a shuffled deck round-robin into seats hands of
// floor(len(deck)/seats) cards each and sorts every hand. Any remainder is
// dropped, not dealt; with four seats and whole deck copies the remainder is
// always zero.
func Deal(deck []Card, seats int) (handSize int, hands [][]Card) {
	handSize = len(deck) / seats
	hands = make([][]Card, seats)
	for i := range hands {
		hands[i] = make([]Card, 0, handSize)
	}
	for i := 0; i < handSize; i++ {
		for p := 0; p < seats; p++ {
			hands[p] = append(hands[p], deck[i*seats+p])
		}
	}
	for _, hand := range hands {
		SortHand(hand)
	}
	return handSize, hands
}
