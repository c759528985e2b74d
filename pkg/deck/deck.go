package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"

	"truco-server/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// ErrInvalidSeatCount is an error when a deal is requested for an unsupported number of seats
var ErrInvalidSeatCount = errors.New("seat count must be 2 or 4")

// Size is the number of cards in a truco deck
const Size = 40

// CardsPerHand is the number of cards dealt to each seat
const CardsPerHand = 3

// Deck represents a 40-card truco deck (no 8s, 9s or 10s)
type Deck struct {
	Cards []Card `json:"cards"`
	rng   rng.Generator
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New(gen rng.Generator) *Deck {
	if gen == nil {
		gen = rng.Crypto{}
	}

	d := &Deck{rng: gen}
	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]Card, 0, Size)
	for _, rank := range Ranks {
		for _, suit := range Suits {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}

	d.Cards = cards
}

// Shuffle rebuilds the full deck and shuffles it
// Discards of previous deals never carry over.
func (d *Deck) Shuffle() {
	d.buildDeck()

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned.
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) <= 0 {
		return Card{}, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// CardsNeeded returns how many cards a deal for seatCount seats consumes, turn card included
func CardsNeeded(seatCount int) int {
	return seatCount*CardsPerHand + 1
}

// Deal deals three cards to each seat and reveals the turn card
// If the deck cannot cover the whole deal, a fresh deck is shuffled first.
func (d *Deck) Deal(seatCount int) ([]Hand, Card, error) {
	if seatCount != 2 && seatCount != 4 {
		return nil, Card{}, ErrInvalidSeatCount
	}

	if !d.CanDraw(CardsNeeded(seatCount)) {
		d.Shuffle()
	}

	hands := make([]Hand, seatCount)
	for seat := range hands {
		hand := make(Hand, 0, CardsPerHand)
		for i := 0; i < CardsPerHand; i++ {
			card, err := d.Draw()
			if err != nil {
				return nil, Card{}, err
			}

			hand.AddCard(card)
		}

		hands[seat] = hand
	}

	turnCard, err := d.Draw()
	if err != nil {
		return nil, Card{}, err
	}

	return hands, turnCard, nil
}
