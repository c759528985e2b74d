package truco

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"truco-server/pkg/deck"
)

func plays(seatCards ...string) []Play {
	p := make([]Play, len(seatCards))
	for i, c := range seatCards {
		p[i] = Play{Seat: i, Card: deck.CardFromString(c)}
	}

	return p
}

func TestResolveTrick(t *testing.T) {
	a := assert.New(t)

	teams := NewTeamTable(2)
	trump := deck.TrumpRank(deck.CardFromString("7o")) // queens

	a.Equal(TrickResult{Outcome: OutcomeTeam1, WinningSeat: 1}, ResolveTrick(plays("3p", "Qo"), trump, teams))
	a.Equal(TrickResult{Outcome: OutcomeTeam0, WinningSeat: 0}, ResolveTrick(plays("3p", "2p"), trump, teams))
	a.Equal(TrickResult{Outcome: OutcomeTie, WinningSeat: -1}, ResolveTrick(plays("3p", "3o"), trump, teams))
	a.Equal(TrickResult{Outcome: OutcomeTeam0, WinningSeat: 0}, ResolveTrick(plays("Qp", "Qc"), trump, teams))
}

func TestResolveTrick_FourSeats(t *testing.T) {
	a := assert.New(t)

	teams := NewTeamTable(4)
	trump := deck.TrumpRank(deck.CardFromString("3o")) // fours

	// partners holding the same card do not tie each other
	a.Equal(TrickResult{Outcome: OutcomeTeam1, WinningSeat: 1}, ResolveTrick(plays("Ao", "2e", "5p", "2c"), trump, teams))

	// opponents at the maximum tie
	a.Equal(TrickResult{Outcome: OutcomeTie, WinningSeat: -1}, ResolveTrick(plays("3o", "2e", "5p", "3c"), trump, teams))

	// the zap beats everything
	a.Equal(TrickResult{Outcome: OutcomeTeam1, WinningSeat: 3}, ResolveTrick(plays("4c", "2e", "3p", "4p"), trump, teams))

	// play order decides the seat when the lead is not seat 0
	p := []Play{
		{Seat: 2, Card: deck.CardFromString("Ko")},
		{Seat: 3, Card: deck.CardFromString("7p")},
		{Seat: 0, Card: deck.CardFromString("Kp")},
		{Seat: 1, Card: deck.CardFromString("Jc")},
	}
	a.Equal(TrickResult{Outcome: OutcomeTeam0, WinningSeat: 2}, ResolveTrick(p, trump, teams))
}

func TestOutcome_JSON(t *testing.T) {
	a := assert.New(t)

	b, err := json.Marshal([]Outcome{OutcomeTeam0, OutcomeTie, OutcomeTeam1})
	a.NoError(err)
	a.Equal(`["team0","tie","team1"]`, string(b))
}

func TestTeamTable(t *testing.T) {
	a := assert.New(t)

	teams := NewTeamTable(4)
	a.Equal(TeamTable{Team0, Team1, Team0, Team1}, teams)
	a.Equal([]int{1, 3}, teams.Seats(Team1))
	a.Equal(NoTeam, teams.Of(4))
	a.Equal(Team1, Team0.Other())
	a.Equal(NoTeam, NoTeam.Other())
}
