package game

// Ledger tracks the current round against the dealt hand size. The round is
// complete exactly when as many tricks resolved as cards were dealt per hand.
type Ledger struct {
	handSize   int
	trickCount int
}

func NewLedger(handSize int) *Ledger {
	return &Ledger{handSize: handSize}
}

func (l *Ledger) TrickResolved() {
	l.trickCount++
}

func (l *Ledger) Complete() bool {
	return l.trickCount == l.handSize
}

func (l *Ledger) TrickCount() int {
	if l == nil {
		return 0
	}
	return l.trickCount
}

func (l *Ledger) HandSize() int {
	if l == nil {
		return 0
	}
	return l.handSize
}
