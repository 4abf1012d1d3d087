package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hearts-online/server/game"
)

func TestSequencer(t *testing.T) {
	seq := game.NewSequencer(4)
	assert.Equal(t, 0, seq.Current())
	assert.Equal(t, 1, seq.Advance())
	assert.Equal(t, 2, seq.Advance())
	assert.Equal(t, 3, seq.Advance())
	assert.Equal(t, 0, seq.Advance())

	seq.JumpTo(2)
	assert.Equal(t, 2, seq.Current())
	assert.Equal(t, 3, seq.Advance())

	seq.Reset()
	assert.Equal(t, 0, seq.Current())
}
