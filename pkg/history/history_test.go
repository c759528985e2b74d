package history

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"truco-server/pkg/db"
)

func TestMatch_Names(t *testing.T) {
	m := &Match{Seats: []Seat{{Seat: 0, Name: "Ana"}, {Seat: 1, Name: "Tatu Bravo"}}}
	assert.Equal(t, []string{"Ana", "Tatu Bravo"}, m.Names())
}

func TestPostgres_Record(t *testing.T) {
	dsn := os.Getenv("TRUCO_PG_DSN")
	if dsn == "" {
		t.Skip("TRUCO_PG_DSN is not set")
	}

	a := assert.New(t)

	dbh, err := db.Open(dsn)
	require.NoError(t, err)
	defer dbh.Close()
	require.NoError(t, db.Migrate(dbh, "../../sql"))

	ended := time.Now().UTC().Truncate(time.Second)
	m := &Match{
		RoomID:    "history-test",
		SeatCount: 2,
		Seats: []Seat{
			{Seat: 0, Team: 0, ID: "a", Name: "Ana"},
			{Seat: 1, Team: 1, ID: "bot-b", Name: "Onça Valente", IsBot: true},
		},
		WinnerTeam:  1,
		Sets:        [2]int{1, 2},
		Reason:      "sets",
		HandsPlayed: 17,
		StartedAt:   ended.Add(-time.Minute * 20),
		EndedAt:     ended,
	}

	p := NewPostgres(dbh)
	a.NoError(p.Record(context.Background(), m))
	a.True(m.ID > 0)

	matches, err := p.Recent(context.Background(), 0, 10)
	a.NoError(err)
	if a.NotEmpty(matches) {
		found := false
		for _, got := range matches {
			if got.ID == m.ID {
				found = true
				a.Equal(m.Seats, got.Seats)
				a.Equal(m.Sets, got.Sets)
				a.True(m.EndedAt.Equal(got.EndedAt))
			}
		}

		a.True(found)
	}
}
