package game

import (
	"sync"
	"time"

	"github.com/hearts-online/server/consts"
	"github.com/hearts-online/server/log"
)

type Options struct {
	DeckCopies        int
	RoundRestartDelay time.Duration
}

// Session is the single mutable aggregate. Every operation, including the
// scheduled round restart, runs under one mutex, so mutations apply one at a
// time in arrival order.
type Session struct {
	mu sync.Mutex

	opts  Options
	rnd   Rand
	sched Scheduler
	sink  EventSink

	players        []*Player // seat order is turn order
	turn           *Sequencer
	trick          Trick
	ledger         *Ledger
	roundNumber    int
	gameInProgress bool

	// epoch increments on every hard reset; a pending restart timer from an
	// older epoch is a no-op when it fires.
	epoch int
}

func NewSession(opts Options, rnd Rand, sched Scheduler, sink EventSink) *Session {
	if opts.DeckCopies <= 0 {
		opts.DeckCopies = consts.DefaultDeckCopies
	}
	if opts.RoundRestartDelay <= 0 {
		opts.RoundRestartDelay = consts.DefaultRoundRestartDelay
	}
	return &Session{
		opts:        opts,
		rnd:         rnd,
		sched:       sched,
		sink:        sink,
		turn:        NewSequencer(consts.Seats),
		roundNumber: 1,
	}
}

// Join seats a player under an externally assigned id, stable for the
// connection's lifetime. Seating the fourth player starts the first round
// immediately.
func (s *Session) Join(playerID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.players) >= consts.Seats {
		return consts.ErrorsRoomFull
	}
	s.players = append(s.players, &Player{ID: playerID, Name: name})
	s.sink.Broadcast(s.playerList())
	if len(s.players) == consts.Seats {
		s.startRound()
	}
	return nil
}

// PlayCard validates and applies one play. Rejections leave the session
// untouched and the same seat to act.
func (s *Session) PlayCard(playerID string, card Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.gameInProgress {
		return consts.ErrorsNotYourTurn
	}
	current := s.players[s.turn.Current()]
	if err := Validate(current, &s.trick, playerID, card); err != nil {
		return err
	}
	current.RemoveCard(card)
	s.trick.Add(playerID, card)
	s.sink.Broadcast(CardPlayed{PlayerID: playerID, Card: card})
	if s.trick.Size() == consts.Seats {
		s.resolveTrick()
	} else {
		s.turn.Advance()
		s.broadcastState()
	}
	return nil
}

// Remove frees a seat. Any seat becoming empty hard-resets the whole
// session; there is no pausing or substitution.
func (s *Session) Remove(playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seated := false
	for _, p := range s.players {
		if p.ID == playerID {
			seated = true
			break
		}
	}
	if !seated {
		return
	}
	s.reset()
	s.sink.Broadcast(SessionReset{})
}

func (s *Session) reset() {
	s.epoch++
	s.players = nil
	s.trick.Clear()
	s.ledger = nil
	s.turn.Reset()
	s.gameInProgress = false
	s.roundNumber = 1
}

func (s *Session) startRound() {
	if s.gameInProgress {
		return
	}
	s.gameInProgress = true
	s.trick.Clear()
	s.turn.Reset()

	deck := NewDeck(s.opts.DeckCopies)
	Shuffle(deck, s.rnd)
	handSize, hands := Deal(deck, len(s.players))
	s.ledger = NewLedger(handSize)
	for i, p := range s.players {
		p.Hand = hands[i]
		// the payload outlives this call, never alias the live hand
		s.sink.Unicast(p.ID, HandDealt{Cards: append([]Card(nil), p.Hand...)})
	}
	log.Debugf("round %d dealt, handSize=%d, undealt=%d\n",
		s.roundNumber, handSize, len(deck)-handSize*len(s.players))
	s.sink.Broadcast(s.playerList())
	s.broadcastState()
}

func (s *Session) resolveTrick() {
	winnerID, points := s.trick.Resolve()
	winner, seat := s.playerByID(winnerID)
	winner.RoundScore += points
	s.ledger.TrickResolved()
	s.sink.Broadcast(TrickResolved{
		WinnerID:   winner.ID,
		WinnerName: winner.Name,
		CardsTaken: s.trick.Cards(),
		Points:     points,
	})
	s.trick.Clear()
	s.turn.JumpTo(seat)
	s.broadcastState()
	if s.ledger.Complete() {
		s.endRound()
	}
}

// endRound commits round scores into cumulative scores, exactly once per
// player per round, then schedules the next deal.
func (s *Session) endRound() {
	results := make([]PlayerRoundResult, 0, len(s.players))
	for _, p := range s.players {
		p.CumulativeScore += p.RoundScore
		results = append(results, PlayerRoundResult{
			ID:              p.ID,
			Name:            p.Name,
			RoundPoints:     p.RoundScore,
			CumulativeScore: p.CumulativeScore,
		})
	}
	s.sink.Broadcast(RoundEnded{RoundNumber: s.roundNumber, Players: results})
	for _, p := range s.players {
		p.RoundScore = 0
	}
	s.trick.Clear()
	s.turn.Reset()
	s.gameInProgress = false
	s.roundNumber++
	epoch := s.epoch
	s.sched.Schedule(s.opts.RoundRestartDelay, func() {
		s.restartRound(epoch)
	})
}

// restartRound re-enters the session lock when the inter-round timer fires.
// A reset (or an already running round) between scheduling and firing leaves
// the timer a no-op.
func (s *Session) restartRound(epoch int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.epoch || s.gameInProgress || len(s.players) != consts.Seats {
		return
	}
	s.startRound()
}

func (s *Session) playerByID(playerID string) (*Player, int) {
	for seat, p := range s.players {
		if p.ID == playerID {
			return p, seat
		}
	}
	return nil, -1
}

func (s *Session) playerList() PlayerListChanged {
	infos := make([]PlayerInfo, 0, len(s.players))
	for _, p := range s.players {
		infos = append(infos, PlayerInfo{
			ID:              p.ID,
			Name:            p.Name,
			RoundScore:      p.RoundScore,
			CumulativeScore: p.CumulativeScore,
			HandCount:       len(p.Hand),
		})
	}
	return PlayerListChanged{Players: infos}
}

func (s *Session) broadcastState() {
	state := StateChanged{
		Trick:       s.trick.Plays(),
		RoundNumber: s.roundNumber,
		TrickCount:  s.ledger.TrickCount(),
	}
	if s.gameInProgress && s.turn.Current() < len(s.players) {
		state.CurrentTurnPlayerID = s.players[s.turn.Current()].ID
	}
	s.sink.Broadcast(state)
}
