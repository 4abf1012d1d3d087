package game

import "github.com/hearts-online/server/consts"

// Validate decides whether player may lay card into the current trick.
// Checks run in order: acting out of turn, card not held, then the
// follow-suit obligation. The first play of a trick is always legal.
// Validate never mutates; the session applies accepted plays.
func Validate(current *Player, trick *Trick, playerID string, card Card) error {
	if current == nil || current.ID != playerID {
		return consts.ErrorsNotYourTurn
	}
	if !current.Holds(card) {
		return consts.ErrorsCardNotInHand
	}
	if lead, ok := trick.LeadingSuit(); ok && card.Suit != lead && current.HoldsSuit(lead) {
		return consts.ErrorsMustFollowSuit(lead.String())
	}
	return nil
}
