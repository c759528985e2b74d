package room

import (
	"github.com/sirupsen/logrus"
)

// botTurn plays for a bot on turn
// The room may have moved on while the bot was thinking, so the turn is checked again.
func (r *Room) botTurn(seat int) {
	if r.state != StatePlaying || r.turn != seat || !r.seats[seat].IsBot {
		return
	}

	h := r.hand
	log := r.logger.WithField("seat", seat)

	if r.canRaise(seat) == nil && r.policy.WantsRaise(h.holdings[seat], h.trump, h.Value()) {
		err := r.requestRaise(seat, 0)
		if err == nil {
			log.Debug("bot raised")
			return
		}

		log.WithError(err).Debug("bot could not raise")
	}

	card, ok := r.policy.ChooseCard(h.holdings[seat], h.trump)
	if !ok {
		log.Error("bot has no card to play")
		return
	}

	if err := r.playCard(seat, card); err != nil {
		log.WithError(err).Error("bot could not play")
	}
}

// botRespond answers a raise addressed to a bot
func (r *Room) botRespond(seat int) {
	if r.state != StateTrucoPending || r.hand == nil {
		return
	}

	pending := r.hand.Pending()
	if pending == nil || pending.Responder != seat || !r.seats[seat].IsBot {
		return
	}

	response := r.policy.RespondRaise()
	if err := r.respondRaise(seat, response, 0); err != nil {
		r.logger.WithError(err).WithFields(logrus.Fields{
			"seat":     seat,
			"response": response,
		}).Error("bot could not answer")
	}
}
