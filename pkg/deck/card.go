package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnknownRank is returned when a rank cannot be parsed
var ErrUnknownRank = errors.New("unknown rank")

// ErrUnknownSuit is returned when a suit cannot be parsed
var ErrUnknownSuit = errors.New("unknown suit")

// Suit represents a card suit
// The numeric value is the suit's weight when it breaks ties between trumps.
type Suit int

// suit constants
const (
	Ouros   Suit = 1
	Espadas Suit = 2
	Copas   Suit = 3
	Paus    Suit = 4
)

// Suits lists every suit from the weakest to the strongest
var Suits = []Suit{Ouros, Espadas, Copas, Paus}

// Weight is the tie-break strength of the suit
func (s Suit) Weight() int {
	return int(s)
}

func (s Suit) String() string {
	switch s {
	case Ouros:
		return "ouros"
	case Espadas:
		return "espadas"
	case Copas:
		return "copas"
	case Paus:
		return "paus"
	}

	return fmt.Sprintf("suit(%d)", int(s))
}

// MarshalText encodes the suit by name
func (s Suit) MarshalText() ([]byte, error) {
	switch s {
	case Ouros, Espadas, Copas, Paus:
		return []byte(s.String()), nil
	}

	return nil, ErrUnknownSuit
}

// UnmarshalText decodes a suit name
func (s *Suit) UnmarshalText(text []byte) error {
	for _, suit := range Suits {
		if strings.EqualFold(string(text), suit.String()) {
			*s = suit
			return nil
		}
	}

	return ErrUnknownSuit
}

// Rank is a position on the strength ladder, from Four (weakest) to Three (strongest)
type Rank int

// rank constants, in ladder order
const (
	Four Rank = iota
	Five
	Six
	Seven
	Queen
	Jack
	King
	Ace
	Two
	Three
)

// Ranks lists every rank in ladder order
var Ranks = []Rank{Four, Five, Six, Seven, Queen, Jack, King, Ace, Two, Three}

var rankSymbols = [...]string{"4", "5", "6", "7", "Q", "J", "K", "A", "2", "3"}

func (r Rank) String() string {
	if r < Four || r > Three {
		return fmt.Sprintf("rank(%d)", int(r))
	}

	return rankSymbols[r]
}

// Next returns the rank that follows r on the ladder, wrapping from Three to Four
func (r Rank) Next() Rank {
	return Rank((int(r) + 1) % len(Ranks))
}

// MarshalText encodes the rank by its symbol
func (r Rank) MarshalText() ([]byte, error) {
	if r < Four || r > Three {
		return nil, ErrUnknownRank
	}

	return []byte(rankSymbols[r]), nil
}

// UnmarshalText decodes a rank symbol
func (r *Rank) UnmarshalText(text []byte) error {
	for i, symbol := range rankSymbols {
		if strings.EqualFold(string(text), symbol) {
			*r = Rank(i)
			return nil
		}
	}

	return ErrUnknownRank
}

// Card is an individual playing card
// Cards are values and can be compared with ==
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

func (c Card) String() string {
	var suit string
	switch c.Suit {
	case Ouros:
		suit = "♦"
	case Espadas:
		suit = "♠"
	case Copas:
		suit = "♥"
	case Paus:
		suit = "♣"
	default:
		panic("unknown suit")
	}

	return c.Rank.String() + suit
}

var cardRx = regexp.MustCompile(`(?i)^([4-7qjka23])([oecp])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank is one of 4567QJKA23 and suit in [oecp]
func CardFromString(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	return card
}

// ParseCard is the non-panicking version of CardFromString
func ParseCard(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return Card{}, fmt.Errorf("invalid card: %q", s)
	}

	var rank Rank
	if err := rank.UnmarshalText([]byte(match[1])); err != nil {
		return Card{}, err
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "o":
		suit = Ouros
	case "e":
		suit = Espadas
	case "c":
		suit = Copas
	case "p":
		suit = Paus
	default:
		// should never be hit due to the regexp
		return Card{}, ErrUnknownSuit
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []Card {
	if s == "" {
		return []Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Queen of Ouros) to a string (Qo)
func CardToString(card Card) string {
	return card.Rank.String() + card.Suit.String()[:1]
}

// CardsToString will convert a slice of cards to a string in the format of 4o,Qe,3p,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
