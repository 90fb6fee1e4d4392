package chesscore

import (
	"os"
	"testing"
)

// TestMain ensures InitCore runs exactly once before any test in this
// package touches the attack or Zobrist tables.
func TestMain(m *testing.M) {
	InitCore()
	os.Exit(m.Run())
}
