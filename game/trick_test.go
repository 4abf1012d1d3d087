package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearts-online/server/game"
)

func TestTrickLeadingSuit(t *testing.T) {
	trick := &game.Trick{}
	_, ok := trick.LeadingSuit()
	require.False(t, ok)

	trick.Add("p1", game.Card{Rank: game.Seven, Suit: game.Diamonds})
	lead, ok := trick.LeadingSuit()
	require.True(t, ok)
	assert.Equal(t, game.Diamonds, lead)

	trick.Add("p2", game.Card{Rank: game.Ace, Suit: game.Spades})
	lead, _ = trick.LeadingSuit()
	assert.Equal(t, game.Diamonds, lead)

	trick.Clear()
	_, ok = trick.LeadingSuit()
	require.False(t, ok)
	assert.Equal(t, 0, trick.Size())
}

func TestTrickResolve(t *testing.T) {
	t.Run("highest_of_leading_suit_wins", func(t *testing.T) {
		trick := &game.Trick{}
		trick.Add("p1", game.Card{Rank: game.Seven, Suit: game.Clubs})
		trick.Add("p2", game.Card{Rank: game.King, Suit: game.Clubs})
		trick.Add("p3", game.Card{Rank: game.Nine, Suit: game.Clubs})
		trick.Add("p4", game.Card{Rank: game.Ten, Suit: game.Clubs})
		winner, points := trick.Resolve()
		assert.Equal(t, "p2", winner)
		assert.Equal(t, 0, points)
	})

	t.Run("off_suit_card_never_wins", func(t *testing.T) {
		trick := &game.Trick{}
		trick.Add("p1", game.Card{Rank: game.Three, Suit: game.Diamonds})
		trick.Add("p2", game.Card{Rank: game.Ace, Suit: game.Spades})
		trick.Add("p3", game.Card{Rank: game.Ace, Suit: game.Hearts})
		trick.Add("p4", game.Card{Rank: game.Two, Suit: game.Diamonds})
		winner, points := trick.Resolve()
		assert.Equal(t, "p1", winner)
		assert.Equal(t, 1, points)
	})

	// Two deck copies can put equal cards into one trick; the later play
	// takes it.
	t.Run("rank_tie_goes_to_the_later_play", func(t *testing.T) {
		trick := &game.Trick{}
		trick.Add("p1", game.Card{Rank: game.King, Suit: game.Hearts})
		trick.Add("p2", game.Card{Rank: game.Three, Suit: game.Hearts})
		trick.Add("p3", game.Card{Rank: game.King, Suit: game.Hearts})
		trick.Add("p4", game.Card{Rank: game.Ace, Suit: game.Clubs})
		winner, points := trick.Resolve()
		assert.Equal(t, "p3", winner)
		assert.Equal(t, 3, points)
	})
}

func TestPoints(t *testing.T) {
	assert.Equal(t, 0, game.Points(nil))
	assert.Equal(t, 1, game.Points([]game.Card{{Rank: game.Two, Suit: game.Hearts}}))
	assert.Equal(t, 12, game.Points([]game.Card{{Rank: game.Queen, Suit: game.Spades}}))
	assert.Equal(t, 0, game.Points([]game.Card{{Rank: game.Queen, Suit: game.Clubs}}))

	// duplicate queens from the second deck copy count twice
	assert.Equal(t, 26, game.Points([]game.Card{
		{Rank: game.Queen, Suit: game.Spades},
		{Rank: game.Queen, Suit: game.Spades},
		{Rank: game.Four, Suit: game.Hearts},
		{Rank: game.Jack, Suit: game.Hearts},
	}))
}
