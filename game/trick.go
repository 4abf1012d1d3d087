package game

// Play is one card laid into the current trick.
type Play struct {
	PlayerID string
	Card     Card
}

// Trick holds at most four plays. The suit of the first play leads.
type Trick struct {
	plays       []Play
	leadingSuit Suit
}

func (t *Trick) Add(playerID string, card Card) {
	if len(t.plays) == 0 {
		t.leadingSuit = card.Suit
	}
	t.plays = append(t.plays, Play{PlayerID: playerID, Card: card})
}

func (t *Trick) Size() int {
	return len(t.plays)
}

// LeadingSuit reports the suit led, false before any play.
func (t *Trick) LeadingSuit() (Suit, bool) {
	if len(t.plays) == 0 {
		return 0, false
	}
	return t.leadingSuit, true
}

func (t *Trick) Plays() []Play {
	plays := make([]Play, len(t.plays))
	copy(plays, t.plays)
	return plays
}

func (t *Trick) Cards() []Card {
	cards := make([]Card, 0, len(t.plays))
	for _, play := range t.plays {
		cards = append(cards, play.Card)
	}
	return cards
}

func (t *Trick) Clear() {
	t.plays = nil
}

// Resolve picks the winning play and the points it takes. Only plays of the
// leading suit compete; the highest rank wins, and a rank tie goes to the
// later play. Ties only occur with two deck copies in play.
func (t *Trick) Resolve() (winnerID string, points int) {
	winning := t.plays[0]
	for _, play := range t.plays[1:] {
		if play.Card.Suit != t.leadingSuit {
			continue
		}
		if play.Card.Rank >= winning.Card.Rank {
			winning = play
		}
	}
	return winning.PlayerID, Points(t.Cards())
}

// Points scores a set of cards: one per heart, twelve per Queen of Spades.
// Duplicate queens count independently.
func Points(cards []Card) int {
	total := 0
	for _, c := range cards {
		if c.Suit == Hearts {
			total++
		}
		if c.Suit == Spades && c.Rank == Queen {
			total += 12
		}
	}
	return total
}
