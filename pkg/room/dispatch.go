package room

import (
	"github.com/sirupsen/logrus"

	"truco-server/pkg/protocol"
	"truco-server/pkg/truco"
)

const defaultBotRoomSeats = 4

// Dispatch performs the action of an inbound message
// Errors are sent back to the client and never change a room.
func (p *PitBoss) Dispatch(c *Client, msg *protocol.PayloadIn) {
	log := logrus.WithFields(logrus.Fields{
		"client": c.String(),
		"action": msg.Action,
	})

	err := p.dispatch(c, msg)
	if err != nil {
		log.WithError(err).Debug("action rejected")
		c.Send(protocol.ErrorResponse(msg.Context, err))
		return
	}

	switch msg.Action {
	case protocol.ActionHeartbeat, protocol.ActionListRooms:
	default:
		c.Send(protocol.OK(msg.Context))
	}
}

func (p *PitBoss) dispatch(c *Client, msg *protocol.PayloadIn) error {
	data := msg.AdditionalData
	occ := c.Occupant()
	if name, ok := data.GetString("name"); ok && name != "" {
		occ.Name = name
	}

	switch msg.Action {
	case protocol.ActionCreateRoom:
		seats, _ := data.GetInt("seats")
		return p.CreateRoom(msg.Room, seats, occ)
	case protocol.ActionCreateBotRoom:
		seats, ok := data.GetInt("seats")
		if !ok {
			seats = defaultBotRoomSeats
		}

		return p.CreateBotRoom(msg.Room, seats, occ)
	case protocol.ActionJoinRoom:
		return p.JoinRoom(msg.Room, occ)
	case protocol.ActionPlayCard:
		if msg.Card == nil {
			return ErrCardRequired
		}

		return p.PlayCard(msg.Room, c.ID, *msg.Card)
	case protocol.ActionRequestRaise:
		value, _ := data.GetInt("value")
		return p.RequestRaise(msg.Room, c.ID, value)
	case protocol.ActionRespondRaise:
		s, _ := data.GetString("response")
		response, err := truco.ParseRaiseResponse(s)
		if err != nil {
			return err
		}

		value, _ := data.GetInt("value")
		return p.RespondRaise(msg.Room, c.ID, response, value)
	case protocol.ActionRespondEleven:
		s, _ := data.GetString("response")
		response, err := truco.ParseElevenResponse(s)
		if err != nil {
			return err
		}

		return p.RespondEleven(msg.Room, c.ID, response)
	case protocol.ActionHeartbeat:
		return p.Heartbeat(c.ID)
	case protocol.ActionLeaveRoom:
		return p.LeaveRoom(c.ID)
	case protocol.ActionListRooms:
		list, err := p.ListRooms()
		if err != nil {
			return err
		}

		c.Send(&protocol.Response{Key: protocol.KeyRoomList, Data: list, Context: msg.Context})
		return nil
	case protocol.ActionEmote:
		kind, _ := data.GetString("type")
		content, _ := data.GetString("content")
		return p.Emote(c.ID, kind, content)
	}

	_ = p.Heartbeat(c.ID)
	return ErrUnknownAction
}
