package room

import (
	"time"

	"github.com/sirupsen/logrus"

	"truco-server/pkg/deck"
	"truco-server/pkg/protocol"
	"truco-server/pkg/truco"
)

// pointsToWinSet is the score that closes a set
const pointsToWinSet = 12

// setsToWinMatch is the number of sets that closes the match
const setsToWinMatch = 2

func (r *Room) startMatch() {
	r.startedAt = time.Now()
	r.state = StateDealing
	r.logger.Info("match started")
	r.addLogMessages(protocol.SimpleLogMessage(-1, "the match started"))
	r.startHand()
}

// startHand deals a new hand
// The hand leader moves one seat forward on every deal.
func (r *Room) startHand() {
	switch r.state {
	case StateDealing, StateHandDone, StateSetDone:
	default:
		r.logger.WithField("state", r.state).Debug("not dealing")
		return
	}

	r.touch()
	r.state = StateDealing

	holdings, turnCard, err := r.deck.Deal(len(r.seats))
	if err != nil {
		r.logger.WithError(err).Error("could not deal")
		return
	}

	r.handLeader = r.nextSeat(r.handLeader)
	r.handsPlayed++

	h := &handState{
		Hand:        truco.NewHand(),
		turnCard:    turnCard,
		trump:       deck.TrumpRank(turnCard),
		holdings:    holdings,
		table:       []truco.Play{},
		leader:      r.handLeader,
		trickLeader: r.handLeader,
		blind:       truco.IsIronHand(r.score),
	}
	r.hand = h
	r.turn = r.handLeader

	if h.blind {
		_ = h.Fix(1)
	}

	r.logger.WithFields(logrus.Fields{
		"hand":     r.handsPlayed,
		"leader":   h.leader,
		"turnCard": turnCard,
		"blind":    h.blind,
	}).Debug("hand dealt")

	r.broadcastTable()
	r.broadcastSound(SoundShuffle)
	r.sendEach(func(seat int) *protocol.Response {
		return &protocol.Response{
			Key: protocol.KeyHandDealt,
			Data: handDealtEvent{
				Seat:      seat,
				Team:      r.teams.Of(seat),
				SeatCount: len(r.seats),
				Cards:     h.holdings[seat].Clone(),
				TurnCard:  turnCard,
				Trump:     h.trump,
				Blind:     h.blind,
			},
		}
	})
	r.addLogMessages(protocol.CardLogMessage(-1, turnCard, "new hand, the turn card is %s", turnCard))

	if onEleven, ok := truco.ElevenTeam(r.score); ok {
		r.startElevenHand(onEleven)
		return
	}

	r.state = StatePlaying
	r.sendGameInfo()
	r.announceTurn()
}

// startElevenHand asks the team facing the team on eleven whether the hand is played
func (r *Room) startElevenHand(onEleven truco.Team) {
	h := r.hand
	deciding := onEleven.Other()

	allBots := true
	for _, seat := range r.teams.Seats(deciding) {
		if !r.seats[seat].IsBot {
			allBots = false
		}
	}

	if allBots {
		_ = h.Fix(truco.ElevenHandValue)
		r.state = StatePlaying
		r.addLogMessages(protocol.SimpleLogMessage(-1, "eleven hand, played for %d", truco.ElevenHandValue))
		r.sendGameInfo()
		r.announceTurn()
		return
	}

	h.eleven = &elevenDecision{deciding: deciding, onEleven: onEleven}
	r.state = StateElevenPending
	r.turn = -1

	for _, seat := range r.teams.Seats(deciding) {
		shown, partner := seat, false
		if len(r.seats) == 4 {
			shown, partner = (seat+2)%len(r.seats), true
		}

		r.send(seat, &protocol.Response{
			Key: protocol.KeyElevenDecision,
			Data: elevenDecisionEvent{
				TurnCard: h.turnCard,
				Cards:    h.holdings[shown].Clone(),
				Partner:  partner,
			},
		})
	}

	r.addLogMessages(protocol.SimpleLogMessage(-1, "eleven hand, waiting for %s to decide", deciding))
	r.sendGameInfo()
	r.announceTurn()
}

func (r *Room) respondEleven(seat int, response truco.ElevenResponse) error {
	if err := r.checkActive(); err != nil {
		return err
	}

	if r.state != StateElevenPending || r.hand == nil || r.hand.eleven == nil {
		return ErrNoElevenDecision
	}

	h := r.hand
	if r.teams.Of(seat) != h.eleven.deciding {
		return ErrNotDecidingTeam
	}

	r.touch()
	decision := h.eleven
	h.eleven = nil

	if response == truco.ElevenRun {
		r.broadcastSound(SoundRun)
		r.addLogMessages(protocol.SimpleLogMessage(seat, "{} ran from the eleven hand"))
		_ = h.Concede(decision.onEleven)
		r.finishHand(h.Result(), truco.ElevenRunValue)
		return nil
	}

	_ = h.Fix(truco.ElevenHandValue)
	r.state = StatePlaying
	r.turn = h.leader
	r.addLogMessages(protocol.SimpleLogMessage(seat, "{} accepted the eleven hand, worth %d", truco.ElevenHandValue))
	r.broadcastMessage("eleven hand accepted")
	r.sendGameInfo()
	r.announceTurn()

	return nil
}

func (r *Room) playCard(seat int, card deck.Card) error {
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

	h := r.hand
	if !h.holdings[seat].Discard(card) {
		return ErrCardNotInHand
	}

	r.touch()
	h.table = append(h.table, truco.Play{Seat: seat, Card: card})

	r.logger.WithFields(logrus.Fields{
		"seat": seat,
		"card": card,
	}).Debug("card played")

	r.broadcastSound(SoundCard)
	r.broadcastTable()
	r.addLogMessages(protocol.CardLogMessage(seat, card, "{} played %s", card))

	if len(h.table) < len(r.seats) {
		r.turn = r.nextSeat(seat)
		r.sendGameInfo()
		r.announceTurn()
		return nil
	}

	// trick complete, nobody acts until it resolves
	r.turn = -1
	r.announceTurn()
	r.after(r.timing.TrickDelay, r.resolveTrick)

	return nil
}

func (r *Room) resolveTrick() {
	h := r.hand
	if r.state != StatePlaying || h == nil || len(h.table) != len(r.seats) {
		r.logger.Debug("no trick to resolve")
		return
	}

	trick := h.TrickNumber()
	res := truco.ResolveTrick(h.table, h.trump, r.teams)
	result, err := h.RecordTrick(res.Outcome)
	if err != nil {
		r.logger.WithError(err).Error("could not record trick")
		return
	}

	r.touch()
	r.broadcast(&protocol.Response{
		Key: protocol.KeyTrickResult,
		Data: trickResultEvent{
			Trick:       trick,
			Outcome:     res.Outcome,
			WinningSeat: res.WinningSeat,
			Plays:       h.table,
		},
	})

	if res.Outcome.IsTie() {
		r.addLogMessages(protocol.SimpleLogMessage(-1, "trick %d tied", trick))
	} else {
		r.addLogMessages(protocol.SimpleLogMessage(res.WinningSeat, "{} took trick %d", trick))
	}

	h.table = []truco.Play{}
	r.broadcastTable()

	if result.IsDecided() {
		r.finishHand(result, h.Value())
		return
	}

	if res.WinningSeat >= 0 {
		h.trickLeader = res.WinningSeat
	} else {
		h.trickLeader = h.leader
	}

	r.turn = h.trickLeader
	r.sendGameInfo()
	r.announceTurn()
}

// finishHand scores the hand and schedules what comes next
func (r *Room) finishHand(result truco.Result, points int) {
	r.touch()
	r.state = StateHandDone
	r.turn = -1

	if result == truco.Void {
		r.logger.Debug("hand void")
		r.addLogMessages(protocol.SimpleLogMessage(-1, "every trick tied, nobody scores"))
		r.broadcast(&protocol.Response{
			Key:  protocol.KeyHandEnd,
			Data: handEndEvent{Winner: truco.NoTeam, Void: true, Score: r.score},
		})
		r.sendGameInfo()
		r.after(r.timing.HandDelay, r.startHand)
		return
	}

	winner := result.Winner()
	r.score[winner] += points
	r.logger.WithFields(logrus.Fields{
		"winner": winner,
		"points": points,
		"score":  r.score,
	}).Debug("hand finished")
	r.addLogMessages(protocol.SimpleLogMessage(-1, "%s scored %d", winner, points))

	setWon := r.score[winner] >= pointsToWinSet
	if setWon {
		r.sets[winner]++
		r.score = [2]int{0, 0}
	}

	r.broadcast(&protocol.Response{
		Key:  protocol.KeyHandEnd,
		Data: handEndEvent{Winner: winner, Points: points, Score: r.score},
	})

	if setWon {
		if r.sets[winner] >= setsToWinMatch {
			r.finishMatch(winner, ReasonSets)
			return
		}

		r.state = StateSetDone
		r.addLogMessages(protocol.SimpleLogMessage(-1, "%s won the set", winner))
		r.sendEach(func(seat int) *protocol.Response {
			return &protocol.Response{
				Key:  protocol.KeySetEnd,
				Data: setEndEvent{Winner: winner, Won: r.teams.Of(seat) == winner, Sets: r.sets},
			}
		})
		r.sendEach(func(seat int) *protocol.Response {
			return &protocol.Response{Key: protocol.KeySound, Value: outcomeSound(r.teams.Of(seat) == winner)}
		})
		r.sendGameInfo()
		r.after(r.timing.SetDelay, r.startHand)
		return
	}

	r.sendGameInfo()
	r.after(r.timing.HandDelay, r.startHand)
}
