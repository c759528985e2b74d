// Package history keeps a record of finished matches
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/lib/pq"

	"truco-server/pkg/db"
)

const matchColumns = `
matches.id,
matches.room_id,
matches.seat_count,
matches.seats,
matches.names,
matches.winner_team,
matches.team0_sets,
matches.team1_sets,
matches.reason,
matches.hands_played,
matches.started,
matches.ended`

// Seat is an occupant of a finished match
type Seat struct {
	Seat  int    `json:"seat"`
	Team  int    `json:"team"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	IsBot bool   `json:"isBot"`
}

// Match is a record in the `matches` table
type Match struct {
	ID          int64     `json:"id"`
	RoomID      string    `json:"roomId"`
	SeatCount   int       `json:"seatCount"`
	Seats       []Seat    `json:"seats"`
	WinnerTeam  int       `json:"winnerTeam"`
	Sets        [2]int    `json:"sets"`
	Reason      string    `json:"reason"`
	HandsPlayed int       `json:"handsPlayed"`
	StartedAt   time.Time `json:"startedAt"`
	EndedAt     time.Time `json:"endedAt"`
}

// Names returns the occupant names in seat order
func (m *Match) Names() []string {
	names := make([]string, len(m.Seats))
	for i, s := range m.Seats {
		names[i] = s.Name
	}

	return names
}

// Recorder stores finished matches
type Recorder interface {
	Record(ctx context.Context, match *Match) error
}

// Reader lists finished matches
type Reader interface {
	Recent(ctx context.Context, start int64, limit int) ([]*Match, error)
}

// Postgres stores matches in PostgreSQL
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns a recorder backed by the database
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// Record inserts the match
func (p *Postgres) Record(ctx context.Context, match *Match) error {
	const query = `
INSERT INTO matches (room_id, seat_count, seats, names, winner_team, team0_sets, team1_sets, reason, hands_played, started, ended)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id`

	seats, err := json.Marshal(match.Seats)
	if err != nil {
		return err
	}

	row := p.db.QueryRowContext(ctx, query,
		match.RoomID,
		match.SeatCount,
		seats,
		pq.Array(match.Names()),
		match.WinnerTeam,
		match.Sets[0],
		match.Sets[1],
		match.Reason,
		match.HandsPlayed,
		match.StartedAt,
		match.EndedAt,
	)

	return row.Scan(&match.ID)
}

func getMatchByRow(row db.Scanner) (*Match, error) {
	var m Match
	var seats []byte
	var names []string
	if err := row.Scan(&m.ID, &m.RoomID, &m.SeatCount, &seats, pq.Array(&names), &m.WinnerTeam, &m.Sets[0], &m.Sets[1], &m.Reason, &m.HandsPlayed, &m.StartedAt, &m.EndedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(seats, &m.Seats); err != nil {
		return nil, err
	}

	return &m, nil
}

// Recent returns finished matches, newest first
func (p *Postgres) Recent(ctx context.Context, start int64, limit int) ([]*Match, error) {
	const query = `
SELECT ` + matchColumns + `
FROM matches
ORDER BY ended DESC, id DESC
OFFSET $1
LIMIT $2`

	rows, err := p.db.QueryContext(ctx, query, start, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]*Match, 0)
	for rows.Next() {
		m, err := getMatchByRow(rows)
		if err != nil {
			return nil, err
		}

		matches = append(matches, m)
	}

	return matches, rows.Err()
}
