package truco

import "errors"

// ErrStakeAtMaximum is returned when a raise is requested on a hand worth 12
var ErrStakeAtMaximum = errors.New("the hand is already worth 12")

// ErrInvalidRaiseValue is returned when the proposed value is not the next rung of the ladder
var ErrInvalidRaiseValue = errors.New("raise must be the next value of the ladder")

// ErrTeamOwnsStake is returned when the team that set the current stake tries to raise it again
var ErrTeamOwnsStake = errors.New("your team must wait for the other team to raise")

// ErrRaisePending is returned when a raise is requested while another is waiting for an answer
var ErrRaisePending = errors.New("a raise is already waiting for an answer")

// ErrNoPendingRaise is returned when a response arrives and nothing was requested
var ErrNoPendingRaise = errors.New("there is no raise to answer")

// ErrNotResponder is returned when a seat other than the responder answers a raise
var ErrNotResponder = errors.New("the raise is not addressed to you")

// ErrHandDecided is returned when a trick is recorded after the hand was decided
var ErrHandDecided = errors.New("the hand is already decided")

// ErrTooManyTricks is returned when a fourth trick is recorded
var ErrTooManyTricks = errors.New("a hand has at most three tricks")

// ErrInvalidStake is returned when a stake outside of the ladder is fixed
var ErrInvalidStake = errors.New("stake must be one of 1, 3, 6, 9 or 12")

// ErrStakeFixed is returned when a raise is requested on a hand with a fixed value
var ErrStakeFixed = errors.New("the value of this hand is fixed")

// ErrUnknownResponse is returned when a response cannot be parsed
var ErrUnknownResponse = errors.New("unknown response")
