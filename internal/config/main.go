package config

import (
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	File          = kingpin.Arg("midi", "MIDI score file").Required().ExistingFile()
	Source        = kingpin.Arg("source", "Text file whose tokens are printed on hits").Required().ExistingFile()
	Seed          = kingpin.Flag("seed", "Lane jitter seed").Default("42").Int64()
	Delay         = kingpin.Flag("delay", "Lead-in before the score starts").Default("1.5s").Short('d').Duration()
	FramePeriod   = kingpin.Flag("frame-period", "Render frame period").Default("4ms").Short('p').Duration()
	CatchWindow   = kingpin.Flag("catch-window", "Max lead time for a press to count as a hit").Default("200ms").Duration()
	Keyboard      = kingpin.Flag("kbd", "Keyboard event device").Default("/dev/input/event0").Short('k').String()
	LogFile       = kingpin.Flag("log", "Debug log file").Default("eotm.log").String()
	BarRow        = kingpin.Flag("bar-row", "Console rows from the bottom to the hit bar").Default("4").Uint()
	ColumnSpacing = kingpin.Flag("spacing", "Columns between lanes").Default("6").Short('S').Uint()
	ScrollRows    = kingpin.Flag("scroll-rows", "Rows a note travels per second of lead time").Default("12").Short('s').Uint()
)

func init() {
	kingpin.Version("0.1.0")
	kingpin.Parse()
}
