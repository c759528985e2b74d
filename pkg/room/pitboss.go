package room

import (
	"context"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"truco-server/internal/config"
	"truco-server/internal/rng"
	"truco-server/pkg/bot"
	"truco-server/pkg/deck"
	"truco-server/pkg/history"
	"truco-server/pkg/protocol"
	"truco-server/pkg/truco"
)

// recordTimeout bounds how long a finished match may take to be stored
const recordTimeout = time.Second * 5

// PitBoss owns every room
// All rooms are mutated from a single run loop. Public methods post a closure to
// the loop and wait for its result.
type PitBoss struct {
	rooms     map[string]*Room
	occupants map[string]string
	lastSeen  map[string]time.Time

	notifier Notifier
	recorder history.Recorder
	timing   config.Timing
	policy   *bot.Policy
	rand     rng.Generator
	now      func() time.Time

	execInRunLoop chan func()
	close         chan bool
}

// NewPitBoss returns a new pit boss
func NewPitBoss(notifier Notifier, cfg config.Config) *PitBoss {
	gen := rng.Crypto{}

	return &PitBoss{
		rooms:         make(map[string]*Room),
		occupants:     make(map[string]string),
		lastSeen:      make(map[string]time.Time),
		notifier:      notifier,
		timing:        cfg.Timing,
		policy:        bot.NewPolicy(gen, cfg.Bot),
		rand:          gen,
		now:           time.Now,
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}
}

// SetRecorder stores finished matches with the recorder
// This must be called before StartShift()
func (p *PitBoss) SetRecorder(recorder history.Recorder) {
	p.recorder = recorder
}

// StartShift starts the PitBoss run loop
func (p *PitBoss) StartShift() {
	go p.runLoop()
}

// EndShift stops the run loop and every pending timer
func (p *PitBoss) EndShift() {
	close(p.close)
}

func (p *PitBoss) runLoop() {
	interval := p.timing.LivenessInterval
	if interval <= 0 {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logrus.WithField("interval", interval).Debug("starting pit boss run loop")
	for {
		select {
		case fn := <-p.execInRunLoop:
			fn()
		case now := <-ticker.C:
			p.sweep(now)
		case <-p.close:
			for _, room := range p.rooms {
				room.stopTimers()
			}

			logrus.Debug("terminating pit boss run loop")
			return
		}
	}
}

// post queues fn on the run loop without waiting for it
func (p *PitBoss) post(fn func()) {
	select {
	case p.execInRunLoop <- fn:
	case <-p.close:
	}
}

// do runs fn on the run loop and waits for its result
func (p *PitBoss) do(fn func() error) error {
	errCh := make(chan error, 1)
	select {
	case p.execInRunLoop <- func() { errCh <- fn() }:
	case <-p.close:
		return ErrShiftEnded
	}

	select {
	case err := <-errCh:
		return err
	case <-p.close:
		return ErrShiftEnded
	}
}

// Defer runs fn on the run loop after the delay
// The room is looked up again when the timer fires, if it is gone fn is dropped.
func (p *PitBoss) Defer(delay time.Duration, roomID string, fn func(*Room)) Timer {
	return time.AfterFunc(delay, func() {
		p.post(func() {
			room, ok := p.rooms[roomID]
			if !ok {
				logrus.WithField("room", roomID).Debug("dropping callback for a closed room")
				return
			}

			fn(room)
			p.afterStep(room)
		})
	})
}

// touch marks the occupant as alive
func (p *PitBoss) touch(occupantID string) {
	if occupantID != "" {
		p.lastSeen[occupantID] = p.now()
	}
}

// sweep forfeits the rooms of occupants that went silent
func (p *PitBoss) sweep(now time.Time) {
	for occupantID, seen := range p.lastSeen {
		if now.Sub(seen) <= p.timing.IdleTimeout {
			continue
		}

		logrus.WithField("occupant", occupantID).Info("occupant idle, removing")
		delete(p.lastSeen, occupantID)
		_ = p.forfeit(occupantID, ReasonIdle)
		p.notifier.Disconnect(occupantID, ReasonIdle)
	}
}

// forfeit forfeits the occupant's room, if any
func (p *PitBoss) forfeit(occupantID, reason string) error {
	roomID, ok := p.occupants[occupantID]
	if !ok {
		return ErrNotSeated
	}

	delete(p.occupants, occupantID)
	room, ok := p.rooms[roomID]
	if !ok {
		return ErrRoomNotFound
	}

	err := room.Forfeit(occupantID, reason)
	p.afterStep(room)
	return err
}

// afterStep tears closed rooms down
func (p *PitBoss) afterStep(room *Room) {
	if !room.IsClosed() {
		return
	}

	if p.rooms[room.ID] != room {
		return
	}

	delete(p.rooms, room.ID)
	for _, occ := range room.Occupants() {
		if p.occupants[occ.ID] == room.ID {
			delete(p.occupants, occ.ID)
		}
	}

	logrus.WithField("room", room.ID).Info("room torn down")
	p.record(room)
	p.broadcastRoomList()
}

func (p *PitBoss) record(room *Room) {
	if p.recorder == nil {
		return
	}

	match := room.MatchRecord()
	if match == nil {
		return
	}

	recorder := p.recorder
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()

		if err := recorder.Record(ctx, match); err != nil {
			logrus.WithError(err).WithField("room", match.RoomID).Error("could not record match")
		}
	}()
}

func (p *PitBoss) roomList() []Summary {
	list := make([]Summary, 0, len(p.rooms))
	for _, room := range p.rooms {
		list = append(list, room.Summary())
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})

	return list
}

func (p *PitBoss) broadcastRoomList() {
	p.notifier.Broadcast(&protocol.Response{Key: protocol.KeyRoomList, Data: p.roomList()})
}

func (p *PitBoss) newRoom(id string, seats int) (*Room, error) {
	if id == "" {
		return nil, ErrRoomNameRequired
	}

	if _, ok := p.rooms[id]; ok {
		return nil, ErrRoomExists
	}

	return NewRoom(id, seats, Options{
		Timing:    p.timing,
		Scheduler: p,
		Notifier:  p.notifier,
		Policy:    p.policy,
		Rand:      p.rand,
		Logger:    logrus.StandardLogger(),
	})
}

func (p *PitBoss) createRoom(id string, seats int, occ *Occupant, withBots bool) error {
	return p.do(func() error {
		p.touch(occ.ID)
		if _, ok := p.occupants[occ.ID]; ok {
			return ErrAlreadySeated
		}

		room, err := p.newRoom(id, seats)
		if err != nil {
			return err
		}

		p.rooms[id] = room
		p.occupants[occ.ID] = id
		if _, err := room.Join(occ); err != nil {
			delete(p.rooms, id)
			delete(p.occupants, occ.ID)
			return err
		}

		if withBots {
			if err := room.FillWithBots(); err != nil {
				return err
			}
		}

		p.broadcastRoomList()
		return nil
	})
}

// CreateRoom creates a room and seats the occupant
func (p *PitBoss) CreateRoom(id string, seats int, occ *Occupant) error {
	return p.createRoom(id, seats, occ, false)
}

// CreateBotRoom creates a room, seats the occupant and fills every other seat with bots
// The first hand is dealt right away.
func (p *PitBoss) CreateBotRoom(id string, seats int, occ *Occupant) error {
	return p.createRoom(id, seats, occ, true)
}

// JoinRoom seats the occupant in the room
func (p *PitBoss) JoinRoom(id string, occ *Occupant) error {
	return p.do(func() error {
		p.touch(occ.ID)
		if _, ok := p.occupants[occ.ID]; ok {
			return ErrAlreadySeated
		}

		room, ok := p.rooms[id]
		if !ok {
			return ErrRoomNotFound
		}

		if _, err := room.Join(occ); err != nil {
			return err
		}

		p.occupants[occ.ID] = id
		p.broadcastRoomList()
		return nil
	})
}

// withRoom runs fn against the room after checking the occupant
func (p *PitBoss) withRoom(roomID, occupantID string, fn func(room *Room) error) error {
	return p.do(func() error {
		p.touch(occupantID)
		room, ok := p.rooms[roomID]
		if !ok {
			return ErrRoomNotFound
		}

		err := fn(room)
		p.afterStep(room)
		return err
	})
}

// PlayCard plays a card for the occupant
func (p *PitBoss) PlayCard(roomID, occupantID string, card deck.Card) error {
	return p.withRoom(roomID, occupantID, func(room *Room) error {
		return room.PlayCard(occupantID, card)
	})
}

// RequestRaise asks to raise the stake
func (p *PitBoss) RequestRaise(roomID, occupantID string, value int) error {
	return p.withRoom(roomID, occupantID, func(room *Room) error {
		return room.RequestRaise(occupantID, value)
	})
}

// RespondRaise answers a raise
func (p *PitBoss) RespondRaise(roomID, occupantID string, response truco.RaiseResponse, value int) error {
	return p.withRoom(roomID, occupantID, func(room *Room) error {
		return room.RespondRaise(occupantID, response, value)
	})
}

// RespondEleven decides the eleven hand
func (p *PitBoss) RespondEleven(roomID, occupantID string, response truco.ElevenResponse) error {
	return p.withRoom(roomID, occupantID, func(room *Room) error {
		return room.RespondEleven(occupantID, response)
	})
}

// Heartbeat marks the occupant as alive
func (p *PitBoss) Heartbeat(occupantID string) error {
	return p.do(func() error {
		p.touch(occupantID)
		return nil
	})
}

// LeaveRoom forfeits the occupant's match
func (p *PitBoss) LeaveRoom(occupantID string) error {
	return p.do(func() error {
		p.touch(occupantID)
		return p.forfeit(occupantID, ReasonLeft)
	})
}

// ListRooms returns every open room
func (p *PitBoss) ListRooms() ([]Summary, error) {
	var list []Summary
	err := p.do(func() error {
		list = p.roomList()
		return nil
	})

	return list, err
}

// RoomOf returns the room the occupant is seated in
func (p *PitBoss) RoomOf(occupantID string) (string, bool) {
	var roomID string
	var ok bool
	_ = p.do(func() error {
		roomID, ok = p.occupants[occupantID]
		return nil
	})

	return roomID, ok
}

// Emote relays a reaction to the occupant's room
func (p *PitBoss) Emote(occupantID, kind, content string) error {
	return p.do(func() error {
		p.touch(occupantID)
		roomID, ok := p.occupants[occupantID]
		if !ok {
			return ErrNotSeated
		}

		room, ok := p.rooms[roomID]
		if !ok {
			return ErrRoomNotFound
		}

		return room.Emote(occupantID, kind, content)
	})
}

// ClientConnected starts tracking the occupant and sends the room list
func (p *PitBoss) ClientConnected(occupantID string) {
	p.post(func() {
		logrus.WithField("occupant", occupantID).Debug("client connected")
		p.touch(occupantID)
		p.notifier.Send(occupantID, &protocol.Response{Key: protocol.KeyRoomList, Data: p.roomList()})
	})
}

// ClientDisconnected stops tracking the occupant and forfeits its room
func (p *PitBoss) ClientDisconnected(occupantID string) {
	p.post(func() {
		logrus.WithField("occupant", occupantID).Debug("client disconnected")
		delete(p.lastSeen, occupantID)
		if _, ok := p.occupants[occupantID]; ok {
			_ = p.forfeit(occupantID, ReasonDisconnected)
		}
	})
}
