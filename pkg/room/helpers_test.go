package room

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"truco-server/internal/config"
	"truco-server/pkg/bot"
	"truco-server/pkg/deck"
	"truco-server/pkg/protocol"
)

type fakeTimer struct {
	stopped bool
	fired   bool
}

func (f *fakeTimer) Stop() bool {
	active := !f.stopped && !f.fired
	f.stopped = true
	return active
}

type deferred struct {
	delay  time.Duration
	roomID string
	fn     func(*Room)
	timer  *fakeTimer
}

// fakeScheduler queues deferred work until the test runs it
type fakeScheduler struct {
	queue []*deferred
}

func (f *fakeScheduler) Defer(delay time.Duration, roomID string, fn func(*Room)) Timer {
	d := &deferred{delay: delay, roomID: roomID, fn: fn, timer: &fakeTimer{}}
	f.queue = append(f.queue, d)
	return d.timer
}

// runNext runs the oldest callback that was not stopped
func (f *fakeScheduler) runNext(r *Room) bool {
	for len(f.queue) > 0 {
		d := f.queue[0]
		f.queue = f.queue[1:]
		if d.timer.stopped {
			continue
		}

		d.timer.fired = true
		d.fn(r)
		return true
	}

	return false
}

func (f *fakeScheduler) pending() int {
	n := 0
	for _, d := range f.queue {
		if !d.timer.stopped {
			n++
		}
	}

	return n
}

// recordingNotifier keeps every message it is asked to deliver
type recordingNotifier struct {
	lock        sync.Mutex
	sent        map[string][]*protocol.Response
	broadcasts  []*protocol.Response
	disconnects []string
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{sent: make(map[string][]*protocol.Response)}
}

func (n *recordingNotifier) Send(occupantID string, res *protocol.Response) {
	n.lock.Lock()
	defer n.lock.Unlock()
	n.sent[occupantID] = append(n.sent[occupantID], res)
}

func (n *recordingNotifier) Broadcast(res *protocol.Response) {
	n.lock.Lock()
	defer n.lock.Unlock()
	n.broadcasts = append(n.broadcasts, res)
}

func (n *recordingNotifier) Disconnect(occupantID string, reason string) {
	n.lock.Lock()
	defer n.lock.Unlock()
	n.disconnects = append(n.disconnects, occupantID)
}

// last returns the last message with the key sent to the occupant
func (n *recordingNotifier) last(occupantID, key string) *protocol.Response {
	n.lock.Lock()
	defer n.lock.Unlock()

	messages := n.sent[occupantID]
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Key == key {
			return messages[i]
		}
	}

	return nil
}

func (n *recordingNotifier) count(occupantID, key string) int {
	n.lock.Lock()
	defer n.lock.Unlock()

	c := 0
	for _, msg := range n.sent[occupantID] {
		if msg.Key == key {
			c++
		}
	}

	return c
}

func (n *recordingNotifier) disconnected() []string {
	n.lock.Lock()
	defer n.lock.Unlock()

	return append([]string(nil), n.disconnects...)
}

// fixedGen always returns the same number
type fixedGen int

func (f fixedGen) Intn(n int) int {
	if int(f) >= n {
		return n - 1
	}

	return int(f)
}

type testRoom struct {
	*Room
	sched    *fakeScheduler
	notifier *recordingNotifier
}

func newTestRoom(t *testing.T, seats int, odds config.Bot) *testRoom {
	t.Helper()

	sched := &fakeScheduler{}
	notifier := newRecordingNotifier()
	r, err := NewRoom("mesa", seats, Options{
		Scheduler: sched,
		Notifier:  notifier,
		Policy:    bot.NewPolicy(fixedGen(500), odds),
		Rand:      rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)

	return &testRoom{Room: r, sched: sched, notifier: notifier}
}

// newTwoSeatMatch returns a started 2-seat room with Ana in seat 0 and Bia in seat 1
func newTwoSeatMatch(t *testing.T) *testRoom {
	t.Helper()

	tr := newTestRoom(t, 2, config.Bot{})
	_, err := tr.Join(NewOccupant("ana", "Ana"))
	require.NoError(t, err)
	_, err = tr.Join(NewOccupant("bia", "Bia"))
	require.NoError(t, err)

	return tr
}

// rig replaces the dealt cards of the hand in progress
func (tr *testRoom) rig(turnCard string, holdings ...string) {
	h := tr.hand
	h.turnCard = deck.CardFromString(turnCard)
	h.trump = deck.TrumpRank(h.turnCard)
	for seat, cards := range holdings {
		h.holdings[seat] = deck.CardsFromString(cards)
	}
}

// playOut plays the first held card of whoever is on turn until the hand ends
func (tr *testRoom) playOut(t *testing.T) {
	t.Helper()

	for i := 0; i < 20 && tr.state == StatePlaying; i++ {
		if tr.turn < 0 {
			require.True(t, tr.sched.runNext(tr.Room), "expected a pending callback")
			continue
		}

		seat := tr.turn
		require.NoError(t, tr.playCard(seat, tr.hand.holdings[seat][0]))
	}
}
