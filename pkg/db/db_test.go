package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpen_NoDSN(t *testing.T) {
	db, err := Open("")
	assert.Nil(t, db)
	assert.Equal(t, ErrNoDSN, err)
}
