package theme

import (
	"fmt"
	"image/color"

	"git.lost.host/meutraa/eotm/internal/game"
)

type DefaultTheme struct {
}

const (
	noteSym   = "⬤"
	barSym    = "-"
	heldSym   = "◉"
	damageSym = "╳"
)

var laneColors = [game.NumLanes]color.RGBA{
	{R: 236, G: 30, B: 0},  // red
	{R: 0, G: 118, B: 236}, // blue
	{R: 236, G: 195, B: 0}, // yellow
	{R: 0, G: 236, B: 128}, // green
}

func colored(c color.RGBA, sym string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, sym)
}

func (t *DefaultTheme) RenderNote(lane game.Lane) string {
	return colored(laneColors[lane], noteSym)
}

func (t *DefaultTheme) RenderHitField(lane game.Lane, held bool) string {
	if held {
		return colored(laneColors[lane], heldSym)
	}
	return barSym
}

func (t *DefaultTheme) RenderDamage(lane game.Lane, level float64) string {
	if level <= 0 {
		return " "
	}
	red := uint8(80 + 175*level)
	return fmt.Sprintf("\033[38;2;%v;0;0m%v\033[0m", red, damageSym)
}
