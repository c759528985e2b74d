package util

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

var animals = []string{
	"Tatu", "Capivara", "Onça", "Jacaré", "Tucano", "Arara", "Sagui", "Quati", "Lobo-Guará", "Tamanduá",
	"Jabuti", "Boto", "Gambá", "Preá", "Sabiá", "Bem-te-vi", "Anta", "Ema", "Jaguatirica", "Mico",
}

var adjectives = []string{
	"Esperto", "Valente", "Zangado", "Sortudo", "Matreiro", "Ligeiro", "Teimoso", "Faceiro", "Caladão", "Brabo",
	"Manhoso", "Tranquilo", "Arretado", "Mandingueiro", "Sossegado",
}

var (
	random     = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec
	randomLock sync.Mutex
)

// GetRandomName returns a random name by combining an animal with an adjective
func GetRandomName() string {
	randomLock.Lock()
	animalsIndex := random.Intn(len(animals))
	adjectivesIndex := random.Intn(len(adjectives))
	randomLock.Unlock()

	return fmt.Sprintf("%s %s", animals[animalsIndex], adjectives[adjectivesIndex])
}

// NewOccupantID returns a unique identifier for a connection or a bot seat
func NewOccupantID() string {
	return uuid.New().String()
}
