package truco

import (
	"encoding/json"

	"truco-server/pkg/deck"
)

// Outcome is the result of a single trick
type Outcome int

// outcome constants
const (
	OutcomeTeam0 Outcome = iota
	OutcomeTeam1
	OutcomeTie
)

// OutcomeFor returns the outcome won by the team
func OutcomeFor(team Team) Outcome {
	if team == Team1 {
		return OutcomeTeam1
	}

	return OutcomeTeam0
}

// Team returns the winning team, or NoTeam on a tie
func (o Outcome) Team() Team {
	switch o {
	case OutcomeTeam0:
		return Team0
	case OutcomeTeam1:
		return Team1
	}

	return NoTeam
}

// IsTie returns true if neither team won the trick
func (o Outcome) IsTie() bool {
	return o == OutcomeTie
}

func (o Outcome) String() string {
	if o.IsTie() {
		return "tie"
	}

	return o.Team().String()
}

// MarshalJSON encodes the outcome as its name
func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// Play is a card laid on the table by a seat
type Play struct {
	Seat int       `json:"seat"`
	Card deck.Card `json:"card"`
}

// TrickResult is the resolved trick
type TrickResult struct {
	Outcome Outcome `json:"outcome"`

	// WinningSeat is the seat that takes the lead, -1 on a tie
	WinningSeat int `json:"winningSeat"`
}

// ResolveTrick resolves a complete trick
// The strongest card of each team is compared. If both teams hold the maximum,
// the trick is a tie (canga).
func ResolveTrick(plays []Play, trump deck.Rank, teams TeamTable) TrickResult {
	best := [2]int{-1, -1}
	bestSeat := [2]int{-1, -1}

	for _, play := range plays {
		team := teams.Of(play.Seat)
		if team == NoTeam {
			continue
		}

		strength := deck.Strength(play.Card, trump)
		if strength > best[team] {
			best[team] = strength
			bestSeat[team] = play.Seat
		}
	}

	switch {
	case best[Team0] > best[Team1]:
		return TrickResult{Outcome: OutcomeTeam0, WinningSeat: bestSeat[Team0]}
	case best[Team1] > best[Team0]:
		return TrickResult{Outcome: OutcomeTeam1, WinningSeat: bestSeat[Team1]}
	}

	return TrickResult{Outcome: OutcomeTie, WinningSeat: -1}
}
