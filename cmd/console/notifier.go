package main

import (
	"github.com/sirupsen/logrus"

	"truco-server/pkg/protocol"
)

// notifier queues everything addressed to the console player
type notifier struct {
	occupantID string
	events     chan *protocol.Response
}

func newNotifier(occupantID string) *notifier {
	return &notifier{
		occupantID: occupantID,
		events:     make(chan *protocol.Response, 1024),
	}
}

func (n *notifier) Send(occupantID string, res *protocol.Response) {
	if occupantID == n.occupantID {
		n.push(res)
	}
}

// Broadcast only carries the room list, which the console ignores
func (n *notifier) Broadcast(res *protocol.Response) {}

func (n *notifier) Disconnect(occupantID string, reason string) {
	if occupantID == n.occupantID {
		n.push(&protocol.Response{Key: protocol.KeyMessage, Value: "disconnected: " + reason})
	}
}

// push never blocks, the pit boss calls it from its run loop
func (n *notifier) push(res *protocol.Response) {
	select {
	case n.events <- res:
	default:
		logrus.WithField("key", res.Key).Warn("console event queue full, dropping event")
	}
}
