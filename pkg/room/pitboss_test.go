package room

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"truco-server/internal/config"
	"truco-server/pkg/history"
	"truco-server/pkg/protocol"
	"truco-server/pkg/truco"
)

type chanRecorder chan *history.Match

func (c chanRecorder) Record(ctx context.Context, match *history.Match) error {
	c <- match
	return nil
}

func newTestPitBoss(t *testing.T, idle time.Duration) (*PitBoss, *recordingNotifier, chanRecorder) {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Timing = config.Timing{
		LivenessInterval: time.Millisecond * 10,
		IdleTimeout:      idle,
		SetDelay:         time.Minute,
	}

	notifier := newRecordingNotifier()
	recorder := make(chanRecorder, 4)

	p := NewPitBoss(notifier, cfg)
	p.SetRecorder(recorder)
	p.StartShift()
	t.Cleanup(p.EndShift)

	return p, notifier, recorder
}

func TestPitBoss_CreateAndJoin(t *testing.T) {
	a := assert.New(t)
	p, notifier, _ := newTestPitBoss(t, time.Minute)

	ana := NewOccupant("ana", "Ana")
	bia := NewOccupant("bia", "Bia")

	var sce SeatCountError
	a.True(errors.As(p.CreateRoom("mesa", 3, ana), &sce))
	a.Equal(ErrRoomNameRequired, p.CreateRoom("", 2, ana))
	a.NoError(p.CreateRoom("mesa", 2, ana))
	a.Equal(ErrAlreadySeated, p.CreateRoom("outra", 2, ana))
	a.Equal(ErrRoomExists, p.CreateRoom("mesa", 2, bia))
	a.Equal(ErrRoomNotFound, p.JoinRoom("nope", bia))

	list, err := p.ListRooms()
	a.NoError(err)
	a.Equal([]Summary{{ID: "mesa", Seats: 2, Occupied: 1, State: StateWaiting}}, list)

	a.NoError(p.JoinRoom("mesa", bia))
	a.Equal(ErrAlreadySeated, p.JoinRoom("mesa", bia))

	roomID, ok := p.RoomOf("bia")
	a.True(ok)
	a.Equal("mesa", roomID)

	list, _ = p.ListRooms()
	a.Equal(StatePlaying, list[0].State)
	a.NotNil(notifier.last("bia", protocol.KeyHandDealt))

	a.Equal(ErrRoomNotFound, p.PlayCard("nope", "ana", c("4o")))
	a.Equal(ErrNotYourTurn, p.RequestRaise("mesa", "bia", 3))
	a.Equal(truco.ErrNoPendingRaise, p.RespondRaise("mesa", "ana", truco.RaiseAccept, 0))
	a.Equal(ErrNoElevenDecision, p.RespondEleven("mesa", "ana", truco.ElevenPlay))
	a.NoError(p.Emote("ana", "emoji", "🙂"))
	a.Equal(ErrNotSeated, p.Emote("caio", "emoji", "🙂"))
}

func TestPitBoss_LeaveRoom(t *testing.T) {
	a := assert.New(t)
	p, notifier, recorder := newTestPitBoss(t, time.Minute)

	a.NoError(p.CreateRoom("mesa", 2, NewOccupant("ana", "Ana")))
	a.NoError(p.JoinRoom("mesa", NewOccupant("bia", "Bia")))
	a.NoError(p.LeaveRoom("ana"))
	a.Equal(ErrNotSeated, p.LeaveRoom("ana"))

	list, err := p.ListRooms()
	a.NoError(err)
	a.Empty(list)

	_, ok := p.RoomOf("bia")
	a.False(ok)

	end := notifier.last("bia", protocol.KeyMatchEnd).Data.(matchEndEvent)
	a.True(end.Won)

	select {
	case match := <-recorder:
		a.Equal("mesa", match.RoomID)
		a.Equal(1, match.WinnerTeam)
		a.Equal(ReasonLeft, match.Reason)
		a.Equal([]string{"Ana", "Bia"}, match.Names())
	case <-time.After(time.Second):
		a.Fail("match was not recorded")
	}
}

func TestPitBoss_LeaveWaitingRoomIsNotRecorded(t *testing.T) {
	a := assert.New(t)
	p, _, recorder := newTestPitBoss(t, time.Minute)

	a.NoError(p.CreateRoom("mesa", 4, NewOccupant("ana", "Ana")))
	a.NoError(p.LeaveRoom("ana"))

	list, _ := p.ListRooms()
	a.Empty(list)

	select {
	case <-recorder:
		a.Fail("unfinished match recorded")
	case <-time.After(time.Millisecond * 50):
	}
}

func TestPitBoss_IdleOccupantsAreRemoved(t *testing.T) {
	a := assert.New(t)
	p, notifier, recorder := newTestPitBoss(t, time.Millisecond*50)

	a.NoError(p.CreateRoom("mesa", 2, NewOccupant("ana", "Ana")))
	a.NoError(p.JoinRoom("mesa", NewOccupant("bia", "Bia")))

	a.Eventually(func() bool {
		list, err := p.ListRooms()
		return err == nil && len(list) == 0
	}, time.Second, time.Millisecond*10)

	a.Eventually(func() bool {
		return len(notifier.disconnected()) == 2
	}, time.Second, time.Millisecond*10)
	a.ElementsMatch([]string{"ana", "bia"}, notifier.disconnected())

	select {
	case match := <-recorder:
		a.Equal(ReasonIdle, match.Reason)
	case <-time.After(time.Second):
		a.Fail("match was not recorded")
	}
}

func TestPitBoss_HeartbeatKeepsOccupantAlive(t *testing.T) {
	a := assert.New(t)
	p, notifier, _ := newTestPitBoss(t, time.Millisecond*100)

	a.NoError(p.CreateRoom("mesa", 4, NewOccupant("ana", "Ana")))
	for i := 0; i < 10; i++ {
		time.Sleep(time.Millisecond * 20)
		a.NoError(p.Heartbeat("ana"))
	}

	list, _ := p.ListRooms()
	a.Len(list, 1)
	a.Empty(notifier.disconnected())
}

func TestPitBoss_ClientDisconnected(t *testing.T) {
	a := assert.New(t)
	p, notifier, _ := newTestPitBoss(t, time.Minute)

	p.ClientConnected("ana")
	a.Eventually(func() bool {
		return notifier.count("ana", protocol.KeyRoomList) == 1
	}, time.Second, time.Millisecond*10)

	a.NoError(p.CreateBotRoom("mesa", 2, NewOccupant("ana", "Ana")))
	list, _ := p.ListRooms()
	a.Equal(2, list[0].Occupied)

	p.ClientDisconnected("ana")
	a.Eventually(func() bool {
		list, _ := p.ListRooms()
		return len(list) == 0
	}, time.Second, time.Millisecond*10)
}

func TestPitBoss_DeferDropsMissingRoom(t *testing.T) {
	p, _, _ := newTestPitBoss(t, time.Minute)

	var called int32
	p.Defer(0, "nope", func(*Room) {
		atomic.StoreInt32(&called, 1)
	})

	// a round trip through the run loop after the timer fired
	time.Sleep(time.Millisecond * 20)
	_, _ = p.ListRooms()
	assert.Equal(t, int32(0), atomic.LoadInt32(&called))
}

func TestPitBoss_EndShift(t *testing.T) {
	notifier := newRecordingNotifier()
	p := NewPitBoss(notifier, config.DefaultConfig())
	p.StartShift()
	p.EndShift()

	_, err := p.ListRooms()
	assert.Equal(t, ErrShiftEnded, err)
}
