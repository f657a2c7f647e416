package render

import (
	"image/color"
	"time"
)

type Renderer interface {
	Init() error
	Deinit() error
	// Size reports the terminal dimensions captured at Init.
	Size() (rows, columns int)
	AddDecoration(row, column int, content string, frames int)
	// RenderLoop owns frame pacing: it calls render once per frame
	// with the duration since the (delayed) start time, until
	// render returns false.
	RenderLoop(delay time.Duration, render func(duration time.Duration) bool)
	Fill(row, column int, message string)
	FillColor(row, column int, c color.RGBA, message string)
}
