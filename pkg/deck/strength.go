package deck

// trumpBase lifts every trump above the strongest plain card
const trumpBase = 100

// TrumpRank returns the trump (manilha) rank fixed by the turn card (vira):
// the rank immediately after it on the ladder, wrapping from Three to Four.
func TrumpRank(turnCard Card) Rank {
	return turnCard.Rank.Next()
}

// Strength returns the strength of the card for the given trump rank
// Trumps score 100 plus their suit weight, all other cards score their ladder position.
// Two plain cards of the same rank have equal strength.
func Strength(card Card, trump Rank) int {
	if card.Rank == trump {
		return trumpBase + card.Suit.Weight()
	}

	return int(card.Rank)
}

// IsTrump returns true if the card belongs to the trump rank
func IsTrump(card Card, trump Rank) bool {
	return card.Rank == trump
}

// IsZap returns true for the strongest card of the hand, the trump of Paus
func IsZap(card Card, trump Rank) bool {
	return card.Rank == trump && card.Suit == Paus
}
