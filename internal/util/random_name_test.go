package util

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRandomName(t *testing.T) {
	random = rand.New(rand.NewSource(0)) // nolint:gosec
	first := GetRandomName()
	parts := strings.SplitN(first, " ", 2)
	assert.Len(t, parts, 2)
	assert.Contains(t, animals, parts[0])
	assert.Contains(t, adjectives, parts[1])

	random = rand.New(rand.NewSource(0)) // nolint:gosec
	assert.Equal(t, first, GetRandomName(), "same seed, same name")
}

func TestNewOccupantID(t *testing.T) {
	a := assert.New(t)
	id := NewOccupantID()
	a.Len(id, 36)
	a.NotEqual(id, NewOccupantID())
}
