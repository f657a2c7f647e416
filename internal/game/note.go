package game

import (
	"gitlab.com/gomidi/midi/v2"
)

// NumLanes is fixed; the board has four keys.
const NumLanes = 4

// Lane is one of the four input channels a note can belong to,
// ordered identically to the physical keys.
type Lane uint8

const (
	Lane1 Lane = iota
	Lane2
	Lane3
	Lane4
)

// Note is a single gameplay-visible event. Immutable once created.
type Note struct {
	Time float64 // seconds from the start of the score
	Lane Lane
}

// PlaybackEvent carries one message of the score exactly as authored.
// Unlike Note it is never filtered or lane-shifted.
type PlaybackEvent struct {
	Time    float64 // seconds from the start of the score
	Message midi.Message
}
