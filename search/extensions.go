package search

import "github.com/halvorsen/negafish/engine"

// extensionFor returns how many extra plies a move should search at,
// beyond the usual depth-1 recursion. Only promotions and captures
// extend for now; check extensions and passed-pawn pushes are natural
// additions but aren't implemented.
func extensionFor(m engine.Move) int {
	if m.IsPromotion() {
		return 1
	}
	if m.IsCapture() || m.IsEnPassant() {
		return 1
	}
	return 0
}
