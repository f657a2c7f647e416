package score

import (
	"git.lost.host/meutraa/eotm/internal/game"
)

// Scorer decides the fate of every note exactly once: expired fronts
// become misses, commits against held lanes become hits.
type Scorer interface {
	// ExpireDue misses every note at the queue front whose time has
	// been reached. Must run every frame before rendering.
	ExpireDue(st *game.State, q *game.NoteQueue)

	KeyDown(st *game.State, lane game.Lane)
	KeyUp(st *game.State, lane game.Lane)

	// Commit evaluates the held lanes against the queue front and
	// reports whether a hit occurred.
	Commit(st *game.State, q *game.NoteQueue) bool
}
