package protocol

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"truco-server/pkg/deck"
)

func TestSimpleLogMessage(t *testing.T) {
	before := time.Now()
	lm := SimpleLogMessage(-1, "test %d", 5)
	assert.Equal(t, "test 5", lm.Message)
	assert.Nil(t, lm.Seats)
	assert.False(t, lm.Time.Before(before))
	assert.Nil(t, lm.Cards)
	assert.Len(t, lm.UUID, 36)
}

func TestSimpleLogMessage_withSeat(t *testing.T) {
	lm := SimpleLogMessage(0, "test %d", 4)
	assert.Equal(t, "test 4", lm.Message)
	assert.Equal(t, []int{0}, lm.Seats)

	lm = CardLogMessage(1, deck.CardFromString("Qo"), "{} played")
	assert.Equal(t, []int{1}, lm.Seats)
	assert.Equal(t, []deck.Card{deck.CardFromString("Qo")}, lm.Cards)
}

func TestOK(t *testing.T) {
	a := assert.New(t)

	a.Equal(&Response{Key: "status", Value: "OK"}, OK())
	a.Equal(&Response{Key: "status", Value: "OK", Context: "abc"}, OK("abc"))
	a.Equal(&Response{Key: "error", Value: "boom", Context: "abc"}, ErrorResponse("abc", errors.New("boom")))
}

func TestPayloadIn(t *testing.T) {
	a := assert.New(t)

	var payload PayloadIn
	a.NoError(json.Unmarshal([]byte(`{
		"action": "playCard",
		"room": "mesa",
		"card": {"rank": "3", "suit": "paus"},
		"additionalData": {"seats": 4, "name": "Ana", "blind": true},
		"context": "ctx"
	}`), &payload))

	a.Equal(ActionPlayCard, payload.Action)
	a.Equal("mesa", payload.Room)
	a.Equal(deck.CardFromString("3p"), *payload.Card)
	a.Equal("ctx", payload.Context)

	seats, ok := payload.AdditionalData.GetInt("seats")
	a.True(ok)
	a.Equal(4, seats)

	name, ok := payload.AdditionalData.GetString("name")
	a.True(ok)
	a.Equal("Ana", name)

	blind, ok := payload.AdditionalData.GetBool("blind")
	a.True(ok)
	a.True(blind)

	_, ok = payload.AdditionalData.GetInt("name")
	a.False(ok)
}
