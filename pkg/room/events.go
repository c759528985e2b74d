package room

import (
	"truco-server/pkg/deck"
	"truco-server/pkg/protocol"
	"truco-server/pkg/truco"
)

// audio cues
const (
	SoundCard    = "card"
	SoundShuffle = "shuffle"
	SoundTruco   = "truco"
	SoundSix     = "six"
	SoundNine    = "nine"
	SoundTwelve  = "twelve"
	SoundRun     = "run"
	SoundWin     = "win"
	SoundLose    = "lose"
)

// raiseSound returns the audio cue for a raise to the value
func raiseSound(value int) string {
	switch value {
	case 6:
		return SoundSix
	case 9:
		return SoundNine
	case 12:
		return SoundTwelve
	}

	return SoundTruco
}

type handDealtEvent struct {
	Seat      int         `json:"seat"`
	Team      truco.Team  `json:"team"`
	SeatCount int         `json:"seatCount"`
	Cards     []deck.Card `json:"cards"`
	TurnCard  deck.Card   `json:"turnCard"`
	Trump     deck.Rank   `json:"trump"`
	Blind     bool        `json:"blind"`
}

type elevenDecisionEvent struct {
	TurnCard deck.Card   `json:"turnCard"`
	Cards    []deck.Card `json:"cards"`
	// Partner is true when the cards belong to the partner
	Partner bool `json:"partner"`
}

type tableEvent struct {
	Plays []truco.Play `json:"plays"`
}

type turnEvent struct {
	Seat     int  `json:"seat"`
	YourTurn bool `json:"yourTurn"`
}

type trickResultEvent struct {
	Trick       int           `json:"trick"`
	Outcome     truco.Outcome `json:"outcome"`
	WinningSeat int           `json:"winningSeat"`
	Plays       []truco.Play  `json:"plays"`
}

type gameInfoEvent struct {
	Seat       int             `json:"seat"`
	Team       truco.Team      `json:"team"`
	Names      []string        `json:"names"`
	State      State           `json:"state"`
	Score      [2]int          `json:"score"`
	Sets       [2]int          `json:"sets"`
	Stake      int             `json:"stake"`
	StakeOwner truco.Team      `json:"stakeOwner"`
	OwnsStake  bool            `json:"ownsStake"`
	CanRaise   bool            `json:"canRaise"`
	Leader     int             `json:"leader"`
	Tricks     []truco.Outcome `json:"tricks"`
}

type raiseRequestedEvent struct {
	Value         int    `json:"value"`
	Requester     int    `json:"requester"`
	RequesterName string `json:"requesterName"`
	Responder     int    `json:"responder"`
}

type raiseAnsweredEvent struct {
	Seat     int    `json:"seat"`
	Response string `json:"response"`
	Stake    int    `json:"stake"`
}

type handEndEvent struct {
	Winner truco.Team `json:"winner"`
	Points int        `json:"points"`
	Void   bool       `json:"void"`
	Score  [2]int     `json:"score"`
}

type setEndEvent struct {
	Winner truco.Team `json:"winner"`
	Won    bool       `json:"won"`
	Sets   [2]int     `json:"sets"`
}

type matchEndEvent struct {
	Winner truco.Team `json:"winner"`
	Won    bool       `json:"won"`
	Sets   [2]int     `json:"sets"`
	Score  [2]int     `json:"score"`
	Reason string     `json:"reason"`
}

type emoteEvent struct {
	Seat    int    `json:"seat"`
	Kind    string `json:"kind"`
	Content string `json:"content"`
}

// Summary describes a room in the room list
type Summary struct {
	ID       string `json:"id"`
	Seats    int    `json:"seats"`
	Occupied int    `json:"occupied"`
	State    State  `json:"state"`
}

// send sends a response to the occupant of the seat
// Bots and open seats are skipped.
func (r *Room) send(seat int, res *protocol.Response) {
	occ := r.seats[seat]
	if occ == nil || occ.IsBot {
		return
	}

	r.notifier.Send(occ.ID, res)
}

// sendEach sends a response built for each seat
func (r *Room) sendEach(fn func(seat int) *protocol.Response) {
	for seat := range r.seats {
		if occ := r.seats[seat]; occ != nil && !occ.IsBot {
			r.send(seat, fn(seat))
		}
	}
}

func (r *Room) broadcast(res *protocol.Response) {
	r.sendEach(func(int) *protocol.Response {
		return res
	})
}

func (r *Room) broadcastSound(sound string) {
	r.broadcast(&protocol.Response{Key: protocol.KeySound, Value: sound})
}

func (r *Room) broadcastMessage(msg string) {
	r.broadcast(&protocol.Response{Key: protocol.KeyMessage, Value: msg})
}

func (r *Room) broadcastTable() {
	plays := []truco.Play{}
	if r.hand != nil {
		plays = append(plays, r.hand.table...)
	}

	r.broadcast(&protocol.Response{Key: protocol.KeyTable, Data: tableEvent{Plays: plays}})
}

func (r *Room) announceTurn() {
	r.sendEach(func(seat int) *protocol.Response {
		return &protocol.Response{
			Key:  protocol.KeyTurn,
			Data: turnEvent{Seat: r.turn, YourTurn: seat == r.turn},
		}
	})

	if r.turn >= 0 && r.seats[r.turn].IsBot {
		seat := r.turn
		r.after(r.timing.BotDelay, func() {
			r.botTurn(seat)
		})
	}
}

// gameInfo returns the state of the match from the seat's point of view
func (r *Room) gameInfo(seat int) gameInfoEvent {
	team := r.teams.Of(seat)
	info := gameInfoEvent{
		Seat:       seat,
		Team:       team,
		Names:      r.names(),
		State:      r.state,
		Score:      r.score,
		Sets:       r.sets,
		Stake:      1,
		StakeOwner: truco.NoTeam,
		Leader:     r.handLeader,
		Tricks:     []truco.Outcome{},
	}

	if h := r.hand; h != nil {
		info.Stake = h.Value()
		info.StakeOwner = h.Owner()
		info.OwnsStake = team != truco.NoTeam && h.Owner() == team
		info.CanRaise = r.state == StatePlaying && r.turn == seat && r.canRaise(seat) == nil
		info.Tricks = h.Outcomes()
	}

	return info
}

func (r *Room) sendGameInfo() {
	r.sendEach(func(seat int) *protocol.Response {
		return &protocol.Response{Key: protocol.KeyGameInfo, Data: r.gameInfo(seat)}
	})
}

// Summary returns the room as listed to clients
func (r *Room) Summary() Summary {
	occupied := 0
	for _, occ := range r.seats {
		if occ != nil {
			occupied++
		}
	}

	return Summary{
		ID:       r.ID,
		Seats:    len(r.seats),
		Occupied: occupied,
		State:    r.state,
	}
}
