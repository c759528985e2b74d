package deck

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrumpRank(t *testing.T) {
	a := assert.New(t)

	a.Equal(Five, TrumpRank(CardFromString("4o")))
	a.Equal(Jack, TrumpRank(CardFromString("Qp")))
	a.Equal(Four, TrumpRank(CardFromString("3e")))
}

func TestStrength(t *testing.T) {
	a := assert.New(t)

	trump := TrumpRank(CardFromString("Kc")) // aces are trumps

	a.True(Strength(CardFromString("Ap"), trump) > Strength(CardFromString("Ac"), trump))
	a.True(Strength(CardFromString("Ac"), trump) > Strength(CardFromString("Ae"), trump))
	a.True(Strength(CardFromString("Ae"), trump) > Strength(CardFromString("Ao"), trump))
	a.True(Strength(CardFromString("Ao"), trump) > Strength(CardFromString("3p"), trump))
	a.True(Strength(CardFromString("3o"), trump) > Strength(CardFromString("2p"), trump))
	a.Equal(Strength(CardFromString("7o"), trump), Strength(CardFromString("7p"), trump))

	a.True(IsZap(CardFromString("Ap"), trump))
	a.False(IsZap(CardFromString("3p"), trump))
	a.True(IsTrump(CardFromString("Ao"), trump))
}

func TestStrength_Ordering(t *testing.T) {
	a := assert.New(t)

	for _, trump := range Ranks {
		cards := New(nil).Cards
		sort.SliceStable(cards, func(i, j int) bool {
			return Strength(cards[i], trump) > Strength(cards[j], trump)
		})

		// the four trumps lead, ordered by suit weight
		a.Equal([]Card{
			{Rank: trump, Suit: Paus},
			{Rank: trump, Suit: Copas},
			{Rank: trump, Suit: Espadas},
			{Rank: trump, Suit: Ouros},
		}, cards[:4])

		for _, card := range cards[4:] {
			a.False(IsTrump(card, trump))
			a.Less(Strength(card, trump), trumpBase)
		}
	}
}
