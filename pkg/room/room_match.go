package room

import (
	"time"

	"github.com/sirupsen/logrus"

	"truco-server/pkg/history"
	"truco-server/pkg/protocol"
	"truco-server/pkg/truco"
)

func outcomeSound(won bool) string {
	if won {
		return SoundWin
	}

	return SoundLose
}

// finishMatch ends the match in favor of the team
// The room stays around in MATCH_DONE for the set delay so late actions are answered, then closes.
func (r *Room) finishMatch(winner truco.Team, reason string) {
	r.touch()
	r.stopTimers()
	r.state = StateMatchDone
	r.turn = -1
	r.winner = winner
	r.reason = reason
	r.endedAt = time.Now()

	r.logger.WithFields(logrus.Fields{
		"winner": winner,
		"sets":   r.sets,
		"reason": reason,
	}).Info("match finished")
	r.addLogMessages(protocol.SimpleLogMessage(-1, "%s won the match", winner))

	r.sendEach(func(seat int) *protocol.Response {
		return &protocol.Response{
			Key: protocol.KeyMatchEnd,
			Data: matchEndEvent{
				Winner: winner,
				Won:    r.teams.Of(seat) == winner,
				Sets:   r.sets,
				Score:  r.score,
				Reason: reason,
			},
		}
	})
	r.sendEach(func(seat int) *protocol.Response {
		return &protocol.Response{Key: protocol.KeySound, Value: outcomeSound(r.teams.Of(seat) == winner)}
	})

	r.after(r.timing.SetDelay, r.close)
}

// MatchRecord returns the finished match for the history
// Returns nil if the match never finished.
func (r *Room) MatchRecord() *history.Match {
	if r.winner == truco.NoTeam {
		return nil
	}

	seats := make([]history.Seat, 0, len(r.seats))
	for seat, occ := range r.seats {
		if occ == nil {
			continue
		}

		seats = append(seats, history.Seat{
			Seat:  seat,
			Team:  int(r.teams.Of(seat)),
			ID:    occ.ID,
			Name:  occ.Name,
			IsBot: occ.IsBot,
		})
	}

	return &history.Match{
		RoomID:      r.ID,
		SeatCount:   len(r.seats),
		Seats:       seats,
		WinnerTeam:  int(r.winner),
		Sets:        r.sets,
		Reason:      r.reason,
		HandsPlayed: r.handsPlayed,
		StartedAt:   r.startedAt,
		EndedAt:     r.endedAt,
	}
}
