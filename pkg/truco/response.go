package truco

import "strings"

// RaiseResponse is the answer to a raise
type RaiseResponse int

// raise responses
const (
	RaiseAccept RaiseResponse = iota
	RaiseRun
	RaiseRaise
)

func (r RaiseResponse) String() string {
	switch r {
	case RaiseAccept:
		return "accept"
	case RaiseRun:
		return "run"
	case RaiseRaise:
		return "raise"
	}

	return "unknown"
}

// ParseRaiseResponse parses accept, run or raise
func ParseRaiseResponse(s string) (RaiseResponse, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "accept":
		return RaiseAccept, nil
	case "run":
		return RaiseRun, nil
	case "raise":
		return RaiseRaise, nil
	}

	return 0, ErrUnknownResponse
}

// ElevenResponse is the decision of the team facing an eleven hand
type ElevenResponse int

// eleven responses
const (
	ElevenPlay ElevenResponse = iota
	ElevenRun
)

func (e ElevenResponse) String() string {
	if e == ElevenRun {
		return "run"
	}

	return "play"
}

// ParseElevenResponse parses play or run
func ParseElevenResponse(s string) (ElevenResponse, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "play":
		return ElevenPlay, nil
	case "run":
		return ElevenRun, nil
	}

	return 0, ErrUnknownResponse
}

// ElevenHandValue is the value of a hand played under the eleven rule
const ElevenHandValue = 3

// ElevenRunValue is awarded to the team at eleven when the other team runs
const ElevenRunValue = 1

// ElevenTeam returns the team sitting on eleven when exactly one team has 11 points
func ElevenTeam(score [2]int) (Team, bool) {
	switch {
	case score[Team0] == 11 && score[Team1] != 11:
		return Team0, true
	case score[Team1] == 11 && score[Team0] != 11:
		return Team1, true
	}

	return NoTeam, false
}

// IsIronHand returns true when both teams have 11 points and the hand is dealt blind
func IsIronHand(score [2]int) bool {
	return score[Team0] == 11 && score[Team1] == 11
}
