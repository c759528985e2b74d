package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"truco-server/internal/config"
	"truco-server/pkg/deck"
	"truco-server/pkg/truco"
)

// fixedGen always returns the same number
type fixedGen int

func (f fixedGen) Intn(n int) int {
	if int(f) >= n {
		return n - 1
	}

	return int(f)
}

func hand(s string) deck.Hand {
	return deck.CardsFromString(s)
}

func TestRate(t *testing.T) {
	a := assert.New(t)

	trump := deck.Ace // turn card is a king

	a.Equal(Strong, Rate(hand("Ap,4o,5e"), trump))
	a.Equal(Medium, Rate(hand("Ao,4o,5e"), trump))
	a.Equal(Medium, Rate(hand("2o,3e,5e"), trump))
	a.Equal(Weak, Rate(hand("2o,Ke,5e"), trump))
	a.Equal(Weak, Rate(hand(""), trump))
}

func TestPolicy_ChooseCard(t *testing.T) {
	a := assert.New(t)

	p := NewPolicy(fixedGen(0), config.DefaultConfig().Bot)
	card, ok := p.ChooseCard(hand("3o,Ke,5e"), deck.King)
	a.True(ok)
	a.Equal(deck.CardFromString("Ke"), card)

	_, ok = p.ChooseCard(deck.Hand{}, deck.King)
	a.False(ok)
}

func TestPolicy_WantsRaise(t *testing.T) {
	a := assert.New(t)

	odds := config.DefaultConfig().Bot
	trump := deck.Ace

	// 500 of 1000: strong (800) raises, medium (400) and bluff (50) do not
	p := NewPolicy(fixedGen(500), odds)
	a.True(p.WantsRaise(hand("Ap,4o,5e"), trump, 1))
	a.False(p.WantsRaise(hand("Ao,4o,5e"), trump, 1))

	// 10 of 1000: everything raises, even a bluff
	p = NewPolicy(fixedGen(10), odds)
	a.True(p.WantsRaise(hand("4o,5e,6c"), trump, 3))
	a.True(p.WantsRaise(hand("2o,2e,6c"), trump, 6))

	// never from 9 up
	a.False(p.WantsRaise(hand("Ap,Ac,Ae"), trump, 9))
	a.False(p.WantsRaise(deck.Hand{}, trump, 1))
}

func TestPolicy_Respond(t *testing.T) {
	a := assert.New(t)

	odds := config.DefaultConfig().Bot

	a.Equal(truco.RaiseAccept, NewPolicy(fixedGen(0), odds).RespondRaise())
	a.Equal(truco.RaiseAccept, NewPolicy(fixedGen(665), odds).RespondRaise())
	a.Equal(truco.RaiseRun, NewPolicy(fixedGen(667), odds).RespondRaise())
	a.Equal(truco.ElevenPlay, NewPolicy(fixedGen(999), odds).RespondEleven())
}
