// Package protocol holds the messages exchanged with the clients
package protocol

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"truco-server/pkg/deck"
)

// Outbound message keys
const (
	KeyHandDealt      = "handDealt"
	KeyElevenDecision = "elevenDecision"
	KeyTable          = "table"
	KeyTurn           = "turn"
	KeyTrickResult    = "trickResult"
	KeyGameInfo       = "gameInfo"
	KeyRaiseRequested = "raiseRequested"
	KeyAwaitingRaise  = "awaitingRaise"
	KeyRaiseAnswered  = "raiseAnswered"
	KeyHandEnd        = "handEnd"
	KeySetEnd         = "setEnd"
	KeyMatchEnd       = "matchEnd"
	KeyRoomList       = "roomList"
	KeySound          = "sound"
	KeyEmote          = "emote"
	KeyLogs           = "logs"
	KeyMessage        = "message"
	KeyError          = "error"
	KeyStatus         = "status"
	KeyWelcome        = "welcome"
)

// Inbound actions
const (
	ActionCreateRoom    = "createRoom"
	ActionCreateBotRoom = "createBotRoom"
	ActionJoinRoom      = "joinRoom"
	ActionPlayCard      = "playCard"
	ActionRequestRaise  = "requestRaise"
	ActionRespondRaise  = "respondRaise"
	ActionRespondEleven = "respondEleven"
	ActionHeartbeat     = "heartbeat"
	ActionLeaveRoom     = "leaveRoom"
	ActionListRooms     = "listRooms"
	ActionEmote         = "emote"
)

// LogMessage is an entry of a room's log feed
// If Seats is empty, it's a general statement, otherwise the message reads like "{seat} did X"
type LogMessage struct {
	UUID    string      `json:"uuid"`
	Seats   []int       `json:"seats"`
	Cards   []deck.Card `json:"cards"`
	Message string      `json:"message"`
	Time    time.Time   `json:"time"`
}

// Response is a message sent to one or more clients
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data"`
	Context string      `json:"context"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   KeyStatus,
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

// ErrorResponse returns a response carrying the error message
func ErrorResponse(ctx string, err error) *Response {
	return &Response{
		Key:     KeyError,
		Value:   err.Error(),
		Context: ctx,
	}
}

// PayloadIn is the format we expect from the JS client
type PayloadIn struct {
	Action         string         `json:"action"`
	Room           string         `json:"room"`
	Card           *deck.Card     `json:"card"`
	AdditionalData AdditionalData `json:"additionalData"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// AdditionalData provides additional data in a payload
type AdditionalData map[string]interface{}

// GetString returns a string for the given key
func (a AdditionalData) GetString(key string) (string, bool) {
	s, ok := a[key].(string)
	return s, ok
}

// GetInt returns an integer value for the given key
func (a AdditionalData) GetInt(key string) (int, bool) {
	floatVal, ok := a[key].(float64)
	if !ok {
		return 0, false
	}

	return int(floatVal), true
}

// GetBool returns a boolean value for the given key
func (a AdditionalData) GetBool(key string) (bool, bool) {
	boolVal, ok := a[key].(bool)
	if !ok {
		return false, false
	}

	return boolVal, true
}

// SimpleLogMessage returns a new LogMessage
// A negative seat is a general statement.
func SimpleLogMessage(seat int, format string, a ...interface{}) *LogMessage {
	var seats []int
	if seat >= 0 {
		seats = []int{seat}
	}

	return &LogMessage{
		UUID:    uuid.New().String(),
		Seats:   seats,
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}

// CardLogMessage returns a new LogMessage showing the card
func CardLogMessage(seat int, card deck.Card, format string, a ...interface{}) *LogMessage {
	lm := SimpleLogMessage(seat, format, a...)
	lm.Cards = []deck.Card{card}
	return lm
}
