package playback

import (
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"git.lost.host/meutraa/eotm/internal/logger"
)

// Open connects to the first available midi output port. The absence
// of a driver or a port is a valid, silently degraded state: the send
// func is nil and the closer is still safe to call.
func Open() (func(msg midi.Message) error, func()) {
	drv, err := rtmididrv.New()
	if nil != err {
		logger.L.Warn("unable to init midi driver", logger.Err(err))
		return nil, func() {}
	}

	outs, err := drv.Outs()
	if nil != err || len(outs) == 0 {
		logger.L.Warn("no midi output port")
		drv.Close()
		return nil, func() {}
	}

	out := outs[0]
	if err := out.Open(); nil != err {
		logger.L.Warn("unable to open midi output", logger.Err(err))
		drv.Close()
		return nil, func() {}
	}

	send, err := midi.SendTo(out)
	if nil != err {
		logger.L.Warn("unable to attach midi sender", logger.Err(err))
		closePort(out)
		drv.Close()
		return nil, func() {}
	}

	logger.L.Info("midi output connected",
		logger.String("port", out.String()))
	return send, func() {
		closePort(out)
		drv.Close()
	}
}

func closePort(out drivers.Out) {
	if err := out.Close(); nil != err {
		logger.L.Warn("unable to close midi output", logger.Err(err))
	}
}
