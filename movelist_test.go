package chesscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveListAddAndReset(t *testing.T) {
	var l MoveList
	m := NewMove(E2, E4, FlagDoublePawn)
	l.Add(m)
	assert.Equal(t, 1, l.Len)
	assert.Equal(t, m, l.Moves[0])

	l.Reset()
	assert.Equal(t, 0, l.Len)
}

func TestMoveListOverflowPanics(t *testing.T) {
	var l MoveList
	for i := 0; i < MaxMoves; i++ {
		l.Add(NewMove(A1, A2, FlagQuiet))
	}
	require.Panics(t, func() { l.Add(NewMove(A1, A2, FlagQuiet)) })
}
