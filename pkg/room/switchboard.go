package room

import (
	"sync"

	"github.com/sirupsen/logrus"

	"truco-server/pkg/protocol"
)

// Switchboard routes outbound messages to connected clients
type Switchboard struct {
	clients map[string]*Client
	lock    sync.RWMutex
}

// NewSwitchboard returns an empty switchboard
func NewSwitchboard() *Switchboard {
	return &Switchboard{
		clients: make(map[string]*Client),
	}
}

// Register adds a client
func (s *Switchboard) Register(client *Client) {
	s.lock.Lock()
	s.clients[client.ID] = client
	s.lock.Unlock()
}

// Unregister removes a client
func (s *Switchboard) Unregister(client *Client) {
	s.lock.Lock()
	if s.clients[client.ID] == client {
		delete(s.clients, client.ID)
	}
	s.lock.Unlock()
}

// Clients will return a slice of connected (at the time) clients
func (s *Switchboard) Clients() []*Client {
	s.lock.RLock()
	defer s.lock.RUnlock()

	clients := make([]*Client, 0, len(s.clients))
	for _, client := range s.clients {
		clients = append(clients, client)
	}

	return clients
}

func (s *Switchboard) client(occupantID string) *Client {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.clients[occupantID]
}

// Send sends the response to a single occupant
// Messages to occupants that are not connected are dropped.
func (s *Switchboard) Send(occupantID string, res *protocol.Response) {
	client := s.client(occupantID)
	if client == nil {
		return
	}

	if !client.Send(res) {
		logrus.WithField("client", client.String()).Warn("send buffer full, dropping message")
	}
}

// Broadcast sends the response to every connected client
func (s *Switchboard) Broadcast(res *protocol.Response) {
	for _, client := range s.Clients() {
		if !client.Send(res) {
			logrus.WithField("client", client.String()).Warn("send buffer full, dropping message")
		}
	}
}

// Disconnect closes the occupant's connection
func (s *Switchboard) Disconnect(occupantID string, reason string) {
	if client := s.client(occupantID); client != nil {
		client.Kick(reason)
	}
}
