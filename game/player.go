package game

// Player occupies one seat for the lifetime of its connection.
type Player struct {
	ID              string
	Name            string
	Hand            []Card
	RoundScore      int
	CumulativeScore int
}

func (p *Player) Holds(card Card) bool {
	for _, c := range p.Hand {
		if c == card {
			return true
		}
	}
	return false
}

func (p *Player) HoldsSuit(suit Suit) bool {
	for _, c := range p.Hand {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

// RemoveCard takes a single copy of card out of the hand, preserving the
// sorted order. It reports whether a copy was held.
func (p *Player) RemoveCard(card Card) bool {
	for i, c := range p.Hand {
		if c == card {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}
