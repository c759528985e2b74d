// Package room runs truco matches: seating, dealing, turns, raises and scoring
package room

import (
	"time"

	"github.com/sirupsen/logrus"

	"truco-server/internal/config"
	"truco-server/internal/rng"
	"truco-server/pkg/bot"
	"truco-server/pkg/deck"
	"truco-server/pkg/protocol"
	"truco-server/pkg/truco"
)

// Options are the collaborators and pacing of a room
type Options struct {
	Timing    config.Timing
	Scheduler Scheduler
	Notifier  Notifier
	Policy    *bot.Policy
	Rand      rng.Generator
	Logger    logrus.FieldLogger
}

// handState is the hand in progress
type handState struct {
	*truco.Hand

	turnCard deck.Card
	trump    deck.Rank
	holdings []deck.Hand
	table    []truco.Play
	blind    bool

	// leader is the seat that opened the hand, trickLeader opened the current trick
	leader      int
	trickLeader int

	// eleven is only set while the eleven hand decision is pending
	eleven *elevenDecision
}

type elevenDecision struct {
	deciding truco.Team
	onEleven truco.Team
}

// Room is a single truco match
// A room is not safe for concurrent use, every call must come from the scheduler's run loop.
type Room struct {
	ID string

	seats []*Occupant
	teams truco.TeamTable
	deck  *deck.Deck

	state      State
	generation uint64
	closed     bool

	score [2]int
	sets  [2]int
	hand  *handState

	handLeader  int
	turn        int
	handsPlayed int

	winner    truco.Team
	reason    string
	createdAt time.Time
	startedAt time.Time
	endedAt   time.Time

	timing   config.Timing
	sched    Scheduler
	notifier Notifier
	policy   *bot.Policy
	logger   logrus.FieldLogger

	timers      map[uint64]Timer
	nextTimerID uint64

	logMessages []*protocol.LogMessage
}

// NewRoom returns an empty room
func NewRoom(id string, seatCount int, opts Options) (*Room, error) {
	if seatCount != 2 && seatCount != 4 {
		return nil, SeatCountError{Got: seatCount}
	}

	if opts.Rand == nil {
		opts.Rand = rng.Crypto{}
	}

	if opts.Policy == nil {
		opts.Policy = bot.NewPolicy(opts.Rand, config.DefaultConfig().Bot)
	}

	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	d := deck.New(opts.Rand)
	d.Shuffle()

	return &Room{
		ID:         id,
		seats:      make([]*Occupant, seatCount),
		teams:      truco.NewTeamTable(seatCount),
		deck:       d,
		state:      StateWaiting,
		handLeader: -1,
		turn:       -1,
		winner:     truco.NoTeam,
		createdAt:  time.Now(),
		timing:     opts.Timing,
		sched:      opts.Scheduler,
		notifier:   opts.Notifier,
		policy:     opts.Policy,
		logger: opts.Logger.WithFields(logrus.Fields{
			"room":  id,
			"seats": seatCount,
		}),
		timers: make(map[uint64]Timer),
	}, nil
}

// State returns the lifecycle state
func (r *Room) State() State {
	return r.state
}

// Score returns the points of each team in the current set
func (r *Room) Score() [2]int {
	return r.score
}

// Sets returns the sets won by each team
func (r *Room) Sets() [2]int {
	return r.sets
}

// Winner returns the team that won the match, NoTeam until the match is over
func (r *Room) Winner() truco.Team {
	return r.winner
}

// Generation returns the transition counter
func (r *Room) Generation() uint64 {
	return r.generation
}

// IsClosed returns true once the room was torn down
func (r *Room) IsClosed() bool {
	return r.closed
}

// Occupants returns the seated occupants in seat order
func (r *Room) Occupants() []*Occupant {
	occupants := make([]*Occupant, 0, len(r.seats))
	for _, occ := range r.seats {
		if occ != nil {
			occupants = append(occupants, occ)
		}
	}

	return occupants
}

// SeatOf returns the seat of the occupant
func (r *Room) SeatOf(occupantID string) (int, bool) {
	for seat, occ := range r.seats {
		if occ != nil && occ.ID == occupantID {
			return seat, true
		}
	}

	return -1, false
}

func (r *Room) seatOf(occupantID string) (int, error) {
	seat, ok := r.SeatOf(occupantID)
	if !ok {
		return -1, ErrNotSeated
	}

	return seat, nil
}

func (r *Room) names() []string {
	names := make([]string, len(r.seats))
	for seat, occ := range r.seats {
		if occ != nil {
			names[seat] = occ.Name
		}
	}

	return names
}

func (r *Room) nextSeat(seat int) int {
	return (seat + 1) % len(r.seats)
}

// touch invalidates every callback deferred before the transition
func (r *Room) touch() {
	r.generation++
}

// after defers fn on the room's scheduler
// fn is dropped if the room transitioned before the delay elapsed.
func (r *Room) after(delay time.Duration, fn func()) {
	if r.sched == nil || r.closed {
		return
	}

	id := r.nextTimerID
	r.nextTimerID++
	generation := r.generation

	r.timers[id] = r.sched.Defer(delay, r.ID, func(room *Room) {
		delete(r.timers, id)
		if room != r || r.closed || r.generation != generation {
			r.logger.WithFields(logrus.Fields{
				"expected": generation,
				"actual":   r.generation,
			}).Debug("dropping stale callback")
			return
		}

		fn()
	})
}

func (r *Room) stopTimers() {
	for id, timer := range r.timers {
		timer.Stop()
		delete(r.timers, id)
	}
}

// PendingTimers returns the number of deferred callbacks that have not fired
func (r *Room) PendingTimers() int {
	return len(r.timers)
}

// checkActive rejects game actions before the match starts or after it ends
func (r *Room) checkActive() error {
	switch {
	case r.closed:
		return ErrRoomNotFound
	case r.state == StateMatchDone:
		return ErrMatchOver
	case r.state == StateWaiting:
		return ErrNotPlaying
	}

	return nil
}

// Join seats the occupant in the first open seat
// Once every seat is taken, the first hand is dealt.
func (r *Room) Join(occ *Occupant) (int, error) {
	if r.closed {
		return -1, ErrRoomNotFound
	}

	if _, ok := r.SeatOf(occ.ID); ok {
		return -1, ErrAlreadySeated
	}

	if r.state != StateWaiting {
		return -1, ErrRoomFull
	}

	seat := -1
	for i, o := range r.seats {
		if o == nil {
			seat = i
			break
		}
	}

	if seat < 0 {
		return -1, ErrRoomFull
	}

	r.touch()
	r.seats[seat] = occ
	r.logger.WithFields(logrus.Fields{
		"occupant": occ.ID,
		"seat":     seat,
	}).Debug("occupant joined")
	r.addLogMessages(protocol.SimpleLogMessage(seat, "{} sat down"))

	if r.isFull() {
		r.startMatch()
	} else {
		r.send(seat, &protocol.Response{Key: protocol.KeyMessage, Value: "waiting for players"})
	}

	return seat, nil
}

// FillWithBots seats bots in every open seat
func (r *Room) FillWithBots() error {
	for !r.isFull() {
		if _, err := r.Join(NewBot()); err != nil {
			return err
		}
	}

	return nil
}

func (r *Room) isFull() bool {
	for _, occ := range r.seats {
		if occ == nil {
			return false
		}
	}

	return true
}

func (r *Room) hasHumans() bool {
	for _, occ := range r.seats {
		if occ != nil && !occ.IsBot {
			return true
		}
	}

	return false
}

// Forfeit removes the occupant from the match
// The opposing team wins immediately and the room is torn down.
func (r *Room) Forfeit(occupantID string, reason string) error {
	if r.closed {
		return ErrRoomNotFound
	}

	seat, err := r.seatOf(occupantID)
	if err != nil {
		return err
	}

	r.logger.WithFields(logrus.Fields{
		"occupant": occupantID,
		"seat":     seat,
		"reason":   reason,
	}).Info("occupant forfeited")

	switch r.state {
	case StateWaiting:
		r.seats[seat] = nil
		r.broadcastMessage("the room was closed")
	case StateMatchDone:
	default:
		r.addLogMessages(protocol.SimpleLogMessage(seat, "{} left the match"))
		r.finishMatch(r.teams.Of(seat).Other(), reason)
	}

	r.close()
	return nil
}

// close tears the room down
func (r *Room) close() {
	if r.closed {
		return
	}

	r.touch()
	r.stopTimers()
	r.closed = true
	r.logger.Debug("room closed")
}

// Emote relays a reaction to everyone in the room
func (r *Room) Emote(occupantID, kind, content string) error {
	seat, err := r.seatOf(occupantID)
	if err != nil {
		return err
	}

	r.broadcast(&protocol.Response{
		Key:  protocol.KeyEmote,
		Data: emoteEvent{Seat: seat, Kind: kind, Content: content},
	})

	return nil
}

// PlayCard plays a card for the occupant
func (r *Room) PlayCard(occupantID string, card deck.Card) error {
	seat, err := r.seatOf(occupantID)
	if err != nil {
		return err
	}

	return r.playCard(seat, card)
}

// RequestRaise asks to raise the stake to value
// A value of 0 requests the next rung of the ladder.
func (r *Room) RequestRaise(occupantID string, value int) error {
	seat, err := r.seatOf(occupantID)
	if err != nil {
		return err
	}

	return r.requestRaise(seat, value)
}

// RespondRaise answers the pending raise
// value is only read for a counter-raise, 0 meaning the next rung.
func (r *Room) RespondRaise(occupantID string, response truco.RaiseResponse, value int) error {
	seat, err := r.seatOf(occupantID)
	if err != nil {
		return err
	}

	return r.respondRaise(seat, response, value)
}

// RespondEleven decides the eleven hand
func (r *Room) RespondEleven(occupantID string, response truco.ElevenResponse) error {
	seat, err := r.seatOf(occupantID)
	if err != nil {
		return err
	}

	return r.respondEleven(seat, response)
}
