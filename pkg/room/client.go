package room

import (
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"truco-server/internal/util"
	"truco-server/pkg/protocol"
)

// Client is a client connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// ID identifies the client as an occupant
	ID string

	// Name is the display name used when the client takes a seat
	Name string

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	pitBoss *PitBoss
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, pitBoss *PitBoss, name string) *Client {
	if name == "" {
		name = util.GetRandomName()
	}

	return &Client{
		Conn:    conn,
		ID:      util.NewOccupantID(),
		Name:    name,
		send:    make(chan interface{}, 256),
		Close:   make(chan string, 1),
		pitBoss: pitBoss,
	}
}

// Send send a message to the web client
// Returns false if the client's buffer is full.
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// Kick asks the write loop to close the connection
func (c *Client) Kick(reason string) {
	select {
	case c.Close <- reason:
	default:
	}
}

// Occupant returns the client as a seat occupant
func (c *Client) Occupant() *Occupant {
	return NewOccupant(c.ID, c.Name)
}

// String returns a traceable identifier for the client
func (c *Client) String() string {
	return fmt.Sprintf("%s:%s", c.Name, c.ID)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *protocol.PayloadIn) {
	if c.pitBoss == nil {
		logrus.WithField("msg", msg).Warn("received message, but pit boss not found")
		return
	}

	c.pitBoss.Dispatch(c, msg)
}
