package input

// #include <linux/input-event-codes.h>
// #include <linux/input.h>
import "C"

import (
	"encoding/binary"
	"os"
	"syscall"

	"git.lost.host/meutraa/eotm/internal/game"
	"git.lost.host/meutraa/eotm/internal/logger"
)

type keyEvent struct {
	Time  syscall.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

type Event struct {
	Pressed  bool
	Released bool
	//https://github.com/torvalds/linux/blob/master/include/uapi/linux/input-event-codes.h
	Code uint16
	Time syscall.Timeval
}

// Lane maps the four lane keys F1-F4 onto lanes, in key order.
func (e *Event) Lane() (game.Lane, bool) {
	switch e.Code {
	case C.KEY_F1:
		return game.Lane1, true
	case C.KEY_F2:
		return game.Lane2, true
	case C.KEY_F3:
		return game.Lane3, true
	case C.KEY_F4:
		return game.Lane4, true
	}
	return 0, false
}

// Commit reports whether this is the commit key that triggers hit
// evaluation.
func (e *Event) Commit() bool {
	return e.Code == C.KEY_SPACE
}

func (e *Event) Quit() bool {
	return e.Code == C.KEY_ESC
}

// ReadInput feeds key events from the given device onto the channel
// until a read fails. Unrecognized keys still flow; consumers ignore
// them.
func ReadInput(kbd string, events chan *Event) error {
	file, err := os.Open(kbd)
	if nil != err {
		return err
	}
	go func() {
		defer file.Close()

		var ev keyEvent
		for {
			err = binary.Read(file, binary.LittleEndian, &ev)
			if nil != err {
				logger.L.Warn("unable to read keyboard input",
					logger.Err(err))
				return
			}
			if ev.Type != C.EV_KEY {
				continue
			}
			events <- &Event{
				Pressed:  ev.Value == 1,
				Released: ev.Value == 0,
				Code:     ev.Code,
				Time:     ev.Time,
			}
		}
	}()
	return nil
}
