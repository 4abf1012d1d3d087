package game

// Sequencer tracks which seat acts next. Plays advance it one seat at a
// time; a resolved trick jumps it to the winner.
type Sequencer struct {
	seats   int
	current int
}

func NewSequencer(seats int) *Sequencer {
	return &Sequencer{seats: seats}
}

func (s *Sequencer) Current() int {
	return s.current
}

func (s *Sequencer) Advance() int {
	s.current = (s.current + 1) % s.seats
	return s.current
}

func (s *Sequencer) JumpTo(seat int) {
	s.current = seat % s.seats
}

func (s *Sequencer) Reset() {
	s.current = 0
}
