// init.go provides InitCore, the one-time setup call required before any
// other function in this package is used: it fills the attack tables and
// Zobrist key tables that everything else treats as read-only global
// state. An explicit function is used instead of a package-level init() so
// the caller decides when setup happens. It takes no arguments; the Zobrist
// keys always come from the fixed seed in zobrist.go.

package chesscore

import "sync"

var initOnce sync.Once

// InitCore fills the package's precomputed attack and Zobrist key tables.
// It is safe to call more than once or from multiple goroutines; only the
// first call has any effect. Every other exported function in this package
// assumes InitCore has already run.
func InitCore() {
	initOnce.Do(func() {
		initAttackTables()
		initZobristKeys()
	})
}
