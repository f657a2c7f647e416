package theme

import "git.lost.host/meutraa/eotm/internal/game"

type Theme interface {
	RenderNote(lane game.Lane) string
	RenderHitField(lane game.Lane, held bool) string
	// RenderDamage draws a lane's miss indicator; level is in
	// [0, 1] where 1 is a fresh miss.
	RenderDamage(lane game.Lane, level float64) string
}
