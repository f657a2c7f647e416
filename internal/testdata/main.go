package testdata

import (
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	TicksPerQuarter = 960
	BPM             = 120 // one beat per half second
)

var (
	// KeptTimes are the note-start times that survive the density
	// filter, in order.
	KeptTimes = []float64{0, 0.5, 1.0, 1.5, 2.0}
	// DroppedTime is the one note start inside the density gap.
	DroppedTime = 0.05
	// PlayableCount is every note on/off across both channels.
	PlayableCount = 12
)

// WriteScore writes a small two-channel score used by the parser
// tests. Channel 0 carries four note starts half a second apart.
// Channel 1 carries one note start 50ms after the first channel 0
// note (inside the density gap) and one at 2.0s.
func WriteScore(path string) error {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(TicksPerQuarter)

	var t0 smf.Track
	t0.Add(0, smf.MetaMeter(4, 4))
	t0.Add(0, smf.MetaTempo(BPM))
	t0.Close(0)
	if err := s.Add(t0); nil != err {
		return err
	}

	// 960 ticks = one beat = 0.5s; 96 ticks = 50ms.
	var t1 smf.Track
	t1.Add(0, midi.NoteOn(0, 60, 100))
	t1.Add(96, midi.NoteOff(0, 60))
	t1.Add(864, midi.NoteOn(0, 62, 100))
	t1.Add(96, midi.NoteOff(0, 62))
	t1.Add(864, midi.NoteOn(0, 64, 100))
	t1.Add(96, midi.NoteOff(0, 64))
	t1.Add(864, midi.NoteOn(0, 65, 100))
	t1.Add(96, midi.NoteOff(0, 65))
	t1.Close(0)
	if err := s.Add(t1); nil != err {
		return err
	}

	var t2 smf.Track
	t2.Add(96, midi.NoteOn(1, 70, 100)) // 0.05s, dropped by the density filter
	t2.Add(96, midi.NoteOff(1, 70))
	t2.Add(3648, midi.NoteOn(1, 72, 100)) // 2.0s
	t2.Add(96, midi.NoteOff(1, 72))
	t2.Close(0)
	if err := s.Add(t2); nil != err {
		return err
	}

	return s.WriteFile(path)
}
