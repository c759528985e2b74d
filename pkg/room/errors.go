package room

import (
	"errors"
	"fmt"
)

// ErrNotYourTurn is returned when a seat acts out of turn
var ErrNotYourTurn = errors.New("it is not your turn")

// ErrCardNotInHand is returned when a seat plays a card it does not hold
var ErrCardNotInHand = errors.New("card is not in your hand")

// ErrCardRequired is returned when a card is played without specifying it
var ErrCardRequired = errors.New("a card is required")

// ErrRoomFull is returned when joining a room with no open seat
var ErrRoomFull = errors.New("the room is full")

// ErrRoomNotFound is returned when the room does not exist
var ErrRoomNotFound = errors.New("room not found")

// ErrRoomExists is returned when a room is created with a name already in use
var ErrRoomExists = errors.New("a room with that name already exists")

// ErrRoomNameRequired is returned when a room is created without a name
var ErrRoomNameRequired = errors.New("a room name is required")

// ErrAlreadySeated is returned when an occupant already holds a seat
var ErrAlreadySeated = errors.New("you are already seated in a room")

// ErrNotSeated is returned when an occupant acts on a room without a seat in it
var ErrNotSeated = errors.New("you are not seated in this room")

// ErrRaiseNotAllowed is returned when a raise is requested while a team sits on eleven
var ErrRaiseNotAllowed = errors.New("raising is not allowed while a team has 11 points")

// ErrNoElevenDecision is returned when an eleven decision arrives and none is expected
var ErrNoElevenDecision = errors.New("there is no eleven hand to decide")

// ErrElevenPending is returned when play is attempted before the eleven hand is decided
var ErrElevenPending = errors.New("waiting for the eleven hand decision")

// ErrNotDecidingTeam is returned when the team on eleven tries to decide the eleven hand
var ErrNotDecidingTeam = errors.New("your team does not decide this hand")

// ErrMatchOver is returned for any game action after the match ended
var ErrMatchOver = errors.New("the match is over")

// ErrNotPlaying is returned when a game action arrives while no hand is in play
var ErrNotPlaying = errors.New("no hand is in play")

// ErrUnknownAction is returned when a message carries an unsupported action
var ErrUnknownAction = errors.New("unknown action")

// ErrShiftEnded is returned when the pit boss is no longer running
var ErrShiftEnded = errors.New("the server is shutting down")

// SeatCountError is returned when a room is created with an unsupported number of seats
type SeatCountError struct {
	Got int
}

func (s SeatCountError) Error() string {
	return fmt.Sprintf("expected 2 or 4 seats, got %d", s.Got)
}
