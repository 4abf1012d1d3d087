package game

// Event is anything the session publishes. EventName is the wire tag; the
// serialization layer maps payloads to their wire form.
type Event interface {
	EventName() string
}

// EventSink receives session events. Broadcast reaches every observer,
// Unicast one seated player. The session calls both while holding its lock,
// so sinks must not call back into the session.
type EventSink interface {
	Broadcast(event Event)
	Unicast(playerID string, event Event)
}

type PlayerInfo struct {
	ID              string
	Name            string
	RoundScore      int
	CumulativeScore int
	HandCount       int
}

type PlayerListChanged struct {
	Players []PlayerInfo
}

func (PlayerListChanged) EventName() string { return "playerListChanged" }

// HandDealt goes privately to the one player whose hand it is.
type HandDealt struct {
	Cards []Card
}

func (HandDealt) EventName() string { return "handDealt" }

type CardPlayed struct {
	PlayerID string
	Card     Card
}

func (CardPlayed) EventName() string { return "cardPlayed" }

type TrickResolved struct {
	WinnerID   string
	WinnerName string
	CardsTaken []Card
	Points     int
}

func (TrickResolved) EventName() string { return "trickResolved" }

type PlayerRoundResult struct {
	ID              string
	Name            string
	RoundPoints     int
	CumulativeScore int
}

type RoundEnded struct {
	RoundNumber int
	Players     []PlayerRoundResult
}

func (RoundEnded) EventName() string { return "roundEnded" }

type StateChanged struct {
	CurrentTurnPlayerID string
	Trick               []Play
	RoundNumber         int
	TrickCount          int
}

func (StateChanged) EventName() string { return "stateChanged" }

// SessionReset tells observers to discard all local state.
type SessionReset struct{}

func (SessionReset) EventName() string { return "sessionReset" }
