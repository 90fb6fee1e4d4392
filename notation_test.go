package chesscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveStringQuiet(t *testing.T) {
	assert.Equal(t, "e2-e4", MoveString(NewMove(E2, E4, FlagDoublePawn)))
}

func TestMoveStringPromotion(t *testing.T) {
	assert.Equal(t, "e7-e8=Q", MoveString(NewMove(E7, E8, FlagPromoQueen)))
	assert.Equal(t, "a7-b8=N", MoveString(NewMove(A7, B8, FlagPromoCaptureKnight)))
}

func TestMoveStringCastle(t *testing.T) {
	assert.Equal(t, "e1-g1", MoveString(NewCastleKingMove(White)))
}
