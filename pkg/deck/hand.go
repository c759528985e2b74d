package deck

// Hand represents the cards held by a seat
type Hand []Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c == card {
			return true
		}
	}

	return false
}

// Discard removes the specified card from the hand
// Returns false if the card was not held.
func (h *Hand) Discard(card Card) bool {
	for i, c := range *h {
		if c == card {
			newHand := make(Hand, 0, len(*h)-1)
			newHand = append(newHand, (*h)[:i]...)
			newHand = append(newHand, (*h)[i+1:]...)
			*h = newHand
			return true
		}
	}

	return false
}

// Strongest returns the strongest card for the given trump rank
// The first card wins ties. Returns false if the hand is empty.
func (h Hand) Strongest(trump Rank) (Card, bool) {
	if len(h) == 0 {
		return Card{}, false
	}

	best := h[0]
	for _, c := range h[1:] {
		if Strength(c, trump) > Strength(best, trump) {
			best = c
		}
	}

	return best, true
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
