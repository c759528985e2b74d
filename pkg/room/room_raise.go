package room

import (
	"github.com/sirupsen/logrus"

	"truco-server/pkg/protocol"
	"truco-server/pkg/truco"
)

// canRaise checks whether the seat's team may ask for the next rung
func (r *Room) canRaise(seat int) error {
	if r.score[truco.Team0] == 11 || r.score[truco.Team1] == 11 {
		return ErrRaiseNotAllowed
	}

	if r.hand == nil {
		return ErrNotPlaying
	}

	return r.hand.CanRaise(r.teams.Of(seat))
}

func (r *Room) requestRaise(seat, value int) error {
	if err := r.checkActive(); err != nil {
		return err
	}

	switch r.state {
	case StatePlaying:
	case StateTrucoPending:
		return truco.ErrRaisePending
	case StateElevenPending:
		return ErrElevenPending
	default:
		return ErrNotPlaying
	}

	if r.turn != seat {
		return ErrNotYourTurn
	}

	if err := r.canRaise(seat); err != nil {
		return err
	}

	h := r.hand
	if value == 0 {
		value, _ = h.Next()
	}

	responder := r.nextSeat(seat)
	if err := h.Request(seat, responder, r.teams.Of(seat), value); err != nil {
		return err
	}

	r.touch()
	r.state = StateTrucoPending

	r.logger.WithFields(logrus.Fields{
		"seat":  seat,
		"value": value,
	}).Debug("raise requested")
	r.broadcastSound(raiseSound(value))
	r.addLogMessages(protocol.SimpleLogMessage(seat, "{} asked for %d", value))
	r.askForAnswer(h.Pending())

	return nil
}

// askForAnswer notifies both sides of a raise and wakes a bot responder
func (r *Room) askForAnswer(raise *truco.Raise) {
	requester := r.seats[raise.Requester]
	r.send(raise.Responder, &protocol.Response{
		Key: protocol.KeyRaiseRequested,
		Data: raiseRequestedEvent{
			Value:         raise.Value,
			Requester:     raise.Requester,
			RequesterName: requester.Name,
			Responder:     raise.Responder,
		},
	})
	r.send(raise.Requester, &protocol.Response{
		Key:   protocol.KeyAwaitingRaise,
		Value: r.seats[raise.Responder].Name,
	})
	r.sendGameInfo()

	if r.seats[raise.Responder].IsBot {
		responder := raise.Responder
		r.after(r.timing.BotResponseDelay, func() {
			r.botRespond(responder)
		})
	}
}

func (r *Room) respondRaise(seat int, response truco.RaiseResponse, value int) error {
	if err := r.checkActive(); err != nil {
		return err
	}

	if r.state != StateTrucoPending {
		return truco.ErrNoPendingRaise
	}

	h := r.hand
	switch response {
	case truco.RaiseAccept:
		if _, err := h.Accept(seat); err != nil {
			return err
		}

		r.touch()
		r.state = StatePlaying
		r.addLogMessages(protocol.SimpleLogMessage(seat, "{} accepted, the hand is worth %d", h.Value()))
		r.answered(seat, response)
		r.sendGameInfo()
		r.announceTurn()
	case truco.RaiseRun:
		winner, points, err := h.Run(seat)
		if err != nil {
			return err
		}

		r.touch()
		r.broadcastSound(SoundRun)
		r.addLogMessages(protocol.SimpleLogMessage(seat, "{} ran"))
		r.answered(seat, response)
		_ = h.Concede(winner)
		r.finishHand(h.Result(), points)
	case truco.RaiseRaise:
		if value == 0 {
			if pending := h.Pending(); pending != nil {
				value, _ = truco.NextStake(pending.Value)
			}
		}

		if _, err := h.Raise(seat, r.teams.Of(seat), value); err != nil {
			return err
		}

		r.touch()
		r.broadcastSound(raiseSound(value))
		r.addLogMessages(protocol.SimpleLogMessage(seat, "{} accepted and asked for %d", value))
		r.answered(seat, response)
		r.askForAnswer(h.Pending())
	default:
		return truco.ErrUnknownResponse
	}

	return nil
}

func (r *Room) answered(seat int, response truco.RaiseResponse) {
	r.broadcast(&protocol.Response{
		Key: protocol.KeyRaiseAnswered,
		Data: raiseAnsweredEvent{
			Seat:     seat,
			Response: response.String(),
			Stake:    r.hand.Value(),
		},
	})
}
