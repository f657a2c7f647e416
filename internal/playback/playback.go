package playback

import (
	"gitlab.com/gomidi/midi/v2"

	"git.lost.host/meutraa/eotm/internal/game"
	"git.lost.host/meutraa/eotm/internal/logger"
)

// Scheduler drains due events from the playback queue and forwards
// them to the midi output. It never filters and never reorders; every
// event goes out exactly once, in queue order.
type Scheduler struct {
	Queue *game.PlaybackQueue

	// Send transmits one message to the output device. A nil Send
	// means no device is present; the queue is still drained so it
	// stays in step with the elapsed clock, there is just no sound.
	Send func(msg midi.Message) error
}

// PumpDue pops and dispatches queue fronts while they are due.
func (s *Scheduler) PumpDue(elapsed float64) {
	for {
		ev, ok := s.Queue.Head()
		if !ok || ev.Time > elapsed {
			return
		}
		s.Queue.Pop()
		if nil == s.Send {
			continue
		}
		if err := s.Send(ev.Message); nil != err {
			// playback is an enhancement, not the scoring path
			logger.L.Debug("unable to send midi message",
				logger.Err(err))
		}
	}
}
