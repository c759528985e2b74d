package truco

import "fmt"

// Team identifies one of the two partnerships
type Team int

// team constants
const (
	NoTeam Team = -1
	Team0  Team = 0
	Team1  Team = 1
)

// Other returns the opposing team
func (t Team) Other() Team {
	switch t {
	case Team0:
		return Team1
	case Team1:
		return Team0
	}

	return NoTeam
}

func (t Team) String() string {
	if t == NoTeam {
		return "none"
	}

	return fmt.Sprintf("team%d", int(t))
}

// TeamTable maps a seat to its team
// Partners sit across from each other, so seat i belongs to team i mod 2.
type TeamTable []Team

// NewTeamTable returns the team table for a room with seatCount seats
func NewTeamTable(seatCount int) TeamTable {
	teams := make(TeamTable, seatCount)
	for seat := range teams {
		teams[seat] = Team(seat % 2)
	}

	return teams
}

// Of returns the team of the seat, or NoTeam if the seat does not exist
func (t TeamTable) Of(seat int) Team {
	if seat < 0 || seat >= len(t) {
		return NoTeam
	}

	return t[seat]
}

// Seats returns every seat of the team in seat order
func (t TeamTable) Seats(team Team) []int {
	seats := make([]int, 0, len(t)/2)
	for seat, tm := range t {
		if tm == team {
			seats = append(seats, seat)
		}
	}

	return seats
}
