package room

import (
	"time"

	"truco-server/pkg/protocol"
)

// Timer is a handle on deferred work
// *time.Timer satisfies this interface.
type Timer interface {
	Stop() bool
}

// Scheduler runs deferred work for a room
// When the delay elapses, the room is fetched again by its ID and the callback
// runs on the scheduler's run loop. If the room is gone, the callback is dropped.
type Scheduler interface {
	Defer(delay time.Duration, roomID string, fn func(*Room)) Timer
}

// Notifier delivers outbound messages to occupants
type Notifier interface {
	// Send sends the response to a single occupant
	Send(occupantID string, res *protocol.Response)

	// Broadcast sends the response to every connected client
	Broadcast(res *protocol.Response)

	// Disconnect closes the occupant's connection
	Disconnect(occupantID string, reason string)
}
