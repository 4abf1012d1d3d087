// Package model holds the wire shapes of session events. Cards cross the
// boundary as the text "<rank> of <suit>"; nothing inside the engine depends
// on that form.
package model

import "github.com/hearts-online/server/game"

type Player struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	RoundScore      int    `json:"roundScore"`
	CumulativeScore int    `json:"cumulativeScore"`
	HandCount       int    `json:"handCount"`
}

type Play struct {
	PlayerID string `json:"playerId"`
	Card     string `json:"card"`
}

type PlayerList struct {
	Players []Player `json:"players"`
}

type Hand struct {
	Cards []string `json:"cards"`
}

type CardPlayed struct {
	PlayerID string `json:"playerId"`
	Card     string `json:"card"`
}

type TrickResolved struct {
	WinnerID   string   `json:"winnerId"`
	WinnerName string   `json:"winnerName"`
	CardsTaken []string `json:"cardsTaken"`
	Points     int      `json:"points"`
}

type RoundResult struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	RoundPoints     int    `json:"roundPoints"`
	CumulativeScore int    `json:"cumulativeScore"`
}

type RoundEnded struct {
	RoundNumber int           `json:"roundNumber"`
	Players     []RoundResult `json:"players"`
}

type GameState struct {
	CurrentTurnPlayerID string `json:"currentTurnPlayerId,omitempty"`
	Trick               []Play `json:"trick"`
	RoundNumber         int    `json:"roundNumber"`
	TrickCount          int    `json:"trickCount"`
}

func Cards(cards []game.Card) []string {
	texts := make([]string, 0, len(cards))
	for _, c := range cards {
		texts = append(texts, c.String())
	}
	return texts
}

func Players(infos []game.PlayerInfo) []Player {
	players := make([]Player, 0, len(infos))
	for _, info := range infos {
		players = append(players, Player{
			ID:              info.ID,
			Name:            info.Name,
			RoundScore:      info.RoundScore,
			CumulativeScore: info.CumulativeScore,
			HandCount:       info.HandCount,
		})
	}
	return players
}

func Plays(plays []game.Play) []Play {
	list := make([]Play, 0, len(plays))
	for _, p := range plays {
		list = append(list, Play{PlayerID: p.PlayerID, Card: p.Card.String()})
	}
	return list
}

// Payload converts an engine event into its wire shape.
func Payload(event game.Event) interface{} {
	switch e := event.(type) {
	case game.PlayerListChanged:
		return PlayerList{Players: Players(e.Players)}
	case game.HandDealt:
		return Hand{Cards: Cards(e.Cards)}
	case game.CardPlayed:
		return CardPlayed{PlayerID: e.PlayerID, Card: e.Card.String()}
	case game.TrickResolved:
		return TrickResolved{
			WinnerID:   e.WinnerID,
			WinnerName: e.WinnerName,
			CardsTaken: Cards(e.CardsTaken),
			Points:     e.Points,
		}
	case game.RoundEnded:
		results := make([]RoundResult, 0, len(e.Players))
		for _, r := range e.Players {
			results = append(results, RoundResult{
				ID:              r.ID,
				Name:            r.Name,
				RoundPoints:     r.RoundPoints,
				CumulativeScore: r.CumulativeScore,
			})
		}
		return RoundEnded{RoundNumber: e.RoundNumber, Players: results}
	case game.StateChanged:
		return GameState{
			CurrentTurnPlayerID: e.CurrentTurnPlayerID,
			Trick:               Plays(e.Trick),
			RoundNumber:         e.RoundNumber,
			TrickCount:          e.TrickCount,
		}
	case game.SessionReset:
		return struct{}{}
	}
	return nil
}
