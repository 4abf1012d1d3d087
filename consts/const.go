package consts

import "time"

// The engine deals for exactly four seats; seat order is turn order.
const (
	Seats = 4

	// DefaultDeckCopies is two full 52-card sets, so every seat receives 26 cards.
	DefaultDeckCopies = 2

	// DefaultRoundRestartDelay is the pause between a round ending and the next deal.
	DefaultRoundRestartDelay = 10 * time.Second
)

// Error codes, one per rejection kind.
const (
	_ = iota
	CodeRoomFull
	CodeNotYourTurn
	CodeCardNotInHand
	CodeMustFollowSuit
	CodeCardInvalid
	CodeAlreadySeated
	CodeRequestInvalid
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsRoomFull       = NewErr(CodeRoomFull, false, "Room full. ")
	ErrorsNotYourTurn    = NewErr(CodeNotYourTurn, false, "Not your turn. ")
	ErrorsCardNotInHand  = NewErr(CodeCardNotInHand, false, "Card not found. ")
	ErrorsCardInvalid    = NewErr(CodeCardInvalid, false, "Card invalid. ")
	ErrorsAlreadySeated  = NewErr(CodeAlreadySeated, false, "Already seated. ")
	ErrorsRequestInvalid = NewErr(CodeRequestInvalid, false, "Request invalid. ")
)

// ErrorsMustFollowSuit is built per rejection so the message names the suit owed.
func ErrorsMustFollowSuit(suit string) Error {
	return NewErr(CodeMustFollowSuit, false, "You must follow "+suit+". ")
}
