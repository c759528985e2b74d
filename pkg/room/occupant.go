package room

import (
	"fmt"

	"truco-server/internal/util"
)

// Occupant is whoever holds a seat
type Occupant struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	IsBot bool   `json:"isBot"`
}

// NewOccupant returns a human occupant
// If the name is blank, a random one is picked.
func NewOccupant(id, name string) *Occupant {
	if name == "" {
		name = util.GetRandomName()
	}

	return &Occupant{
		ID:   id,
		Name: name,
	}
}

// NewBot returns a bot occupant
func NewBot() *Occupant {
	return &Occupant{
		ID:    "bot-" + util.NewOccupantID(),
		Name:  util.GetRandomName(),
		IsBot: true,
	}
}

func (o *Occupant) String() string {
	if o.IsBot {
		return fmt.Sprintf("%s (bot)", o.Name)
	}

	return o.Name
}
