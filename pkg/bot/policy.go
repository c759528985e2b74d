// Package bot decides for the seats that are not controlled by a human
package bot

import (
	"truco-server/internal/config"
	"truco-server/internal/rng"
	"truco-server/pkg/deck"
	"truco-server/pkg/truco"
)

// HandStrength is a coarse rating of a hand used to decide on raises
type HandStrength int

// hand strength constants
const (
	Weak HandStrength = iota
	Medium
	Strong
)

func (h HandStrength) String() string {
	switch h {
	case Strong:
		return "strong"
	case Medium:
		return "medium"
	}

	return "weak"
}

// bluffing stops once the hand is worth this much
const noRaiseFrom = 9

// Policy is the decision maker of a bot
type Policy struct {
	gen  rng.Generator
	odds config.Bot
}

// NewPolicy returns a new policy
func NewPolicy(gen rng.Generator, odds config.Bot) *Policy {
	if gen == nil {
		gen = rng.Crypto{}
	}

	return &Policy{
		gen:  gen,
		odds: odds,
	}
}

// Rate rates the hand
// Holding the zap is strong. Two cards at least as strong as a plain 2, or
// any trump, is medium.
func Rate(hand deck.Hand, trump deck.Rank) HandStrength {
	highCards := 0
	hasTrump := false
	for _, card := range hand {
		if deck.IsZap(card, trump) {
			return Strong
		}

		if deck.IsTrump(card, trump) {
			hasTrump = true
		} else if card.Rank >= deck.Two {
			highCards++
		}
	}

	if hasTrump || highCards >= 2 {
		return Medium
	}

	return Weak
}

// ChooseCard returns the strongest held card
func (p *Policy) ChooseCard(hand deck.Hand, trump deck.Rank) (deck.Card, bool) {
	return hand.Strongest(trump)
}

// WantsRaise decides whether the bot asks to raise the stake
func (p *Policy) WantsRaise(hand deck.Hand, trump deck.Rank, stake int) bool {
	if stake >= noRaiseFrom || len(hand) == 0 {
		return false
	}

	switch Rate(hand, trump) {
	case Strong:
		return rng.Chance(p.gen, p.odds.StrongRaiseOdds)
	case Medium:
		return rng.Chance(p.gen, p.odds.MediumRaiseOdds)
	}

	return rng.Chance(p.gen, p.odds.BluffOdds)
}

// RespondRaise answers a raise
// The answer does not depend on the cards held.
func (p *Policy) RespondRaise() truco.RaiseResponse {
	if rng.Chance(p.gen, p.odds.AcceptOdds) {
		return truco.RaiseAccept
	}

	return truco.RaiseRun
}

// RespondEleven always plays the eleven hand
func (p *Policy) RespondEleven() truco.ElevenResponse {
	return truco.ElevenPlay
}
