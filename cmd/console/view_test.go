package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"truco-server/pkg/deck"
	"truco-server/pkg/protocol"
)

func TestView_handle(t *testing.T) {
	a := assert.New(t)

	v := newView(nil, "mesa", "ana")
	a.False(v.handle(&protocol.Response{
		Key: protocol.KeyHandDealt,
		Data: map[string]interface{}{
			"seat":     1,
			"cards":    deck.CardsFromString("3p,Jc,4o"),
			"turnCard": deck.CardFromString("Qo"),
			"trump":    "J",
			"blind":    true,
		},
	}))
	a.Equal(1, v.seat)
	a.Equal(deck.Hand(deck.CardsFromString("3p,Jc,4o")), v.hand)
	a.Equal("??", v.cardLabel(v.hand[0]))

	a.False(v.handle(&protocol.Response{
		Key:  protocol.KeyGameInfo,
		Data: map[string]interface{}{"names": []string{"Bia", "Ana"}, "stake": 3, "canRaise": true},
	}))
	a.Equal("Ana", v.name(1))
	a.Equal("seat 5", v.name(5))
	a.Equal(3, v.info.Stake)

	// not our turn, nothing to ask
	a.False(v.handle(&protocol.Response{Key: protocol.KeyTurn, Data: map[string]interface{}{"seat": 0, "yourTurn": false}}))

	a.True(v.handle(&protocol.Response{
		Key:  protocol.KeyMatchEnd,
		Data: map[string]interface{}{"won": true, "sets": []int{2, 1}, "reason": "sets"},
	}))
}

func TestNotifier(t *testing.T) {
	a := assert.New(t)

	n := newNotifier("ana")
	n.Send("bia", protocol.OK())
	n.Send("ana", protocol.OK("mine"))
	n.Broadcast(protocol.OK("everyone"))
	n.Disconnect("ana", "idle")

	a.Len(n.events, 2)
	a.Equal("mine", (<-n.events).Context)
	a.Equal("disconnected: idle", (<-n.events).Value)
}
