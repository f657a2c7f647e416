package playback

import (
	"errors"
	"testing"

	"gitlab.com/gomidi/midi/v2"

	"git.lost.host/meutraa/eotm/internal/game"
)

func playbackQueue(times ...float64) *game.PlaybackQueue {
	q := &game.PlaybackQueue{}
	for i, t := range times {
		q.Push(game.PlaybackEvent{
			Time:    t,
			Message: midi.NoteOn(0, uint8(60+i), 100),
		})
	}
	return q
}

// Two events at the same instant go out together, in original order,
// and nothing goes out before its time.
func TestPumpDueDispatchOrder(t *testing.T) {
	q := &game.PlaybackQueue{}
	q.Push(game.PlaybackEvent{Time: 0.5, Message: midi.NoteOn(0, 60, 100)})
	q.Push(game.PlaybackEvent{Time: 0.5, Message: midi.NoteOff(0, 60)})

	var sent []midi.Message
	s := &Scheduler{
		Queue: q,
		Send: func(msg midi.Message) error {
			sent = append(sent, msg)
			return nil
		},
	}

	s.PumpDue(0.3)
	if len(sent) != 0 || q.Len() != 2 {
		t.Log("dispatched before due, sent", len(sent))
		t.Fail()
	}

	s.PumpDue(0.6)
	if len(sent) != 2 || q.Len() != 0 {
		t.Log("sent", len(sent), "remaining", q.Len())
		t.Fail()
	}
	var ch, key, vel uint8
	if !sent[0].GetNoteOn(&ch, &key, &vel) {
		t.Log("first dispatched message is not the note on")
		t.Fail()
	}
}

// Each event is forwarded exactly once no matter how often the pump
// runs afterwards.
func TestPumpDueExactlyOnce(t *testing.T) {
	q := playbackQueue(0.1, 0.2, 0.3)
	sent := 0
	s := &Scheduler{
		Queue: q,
		Send: func(msg midi.Message) error {
			sent++
			return nil
		},
	}

	for i := 0; i < 10; i++ {
		s.PumpDue(1.0)
	}
	if sent != 3 || q.Len() != 0 {
		t.Log("sent", sent, "remaining", q.Len())
		t.Fail()
	}
}

// Without a device the queue still drains so its length stays in step
// with elapsed time.
func TestPumpDueNoDevice(t *testing.T) {
	q := playbackQueue(0.1, 0.2, 0.9)
	s := &Scheduler{Queue: q}

	s.PumpDue(0.5)
	if q.Len() != 1 {
		t.Log("remaining", q.Len())
		t.Fail()
	}
}

// Send failures are absorbed; the pump keeps draining.
func TestPumpDueSendError(t *testing.T) {
	q := playbackQueue(0.1, 0.2)
	s := &Scheduler{
		Queue: q,
		Send: func(msg midi.Message) error {
			return errors.New("port closed")
		},
	}

	s.PumpDue(1.0)
	if q.Len() != 0 {
		t.Log("remaining", q.Len())
		t.Fail()
	}
}
