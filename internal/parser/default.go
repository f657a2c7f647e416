package parser

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"git.lost.host/meutraa/eotm/internal/game"
)

// minNoteGap is the smallest distance in seconds between two
// consecutive gameplay notes. Anything denser is playback-only.
const minNoteGap = 0.185

type DefaultParser struct {
	// Rand drives the lane jitter. Callers seed it so note
	// derivation is reproducible.
	Rand *rand.Rand
}

// Parse reads a standard MIDI file and derives the two queues from it:
// the playback queue is every playable message of every track, merged
// to absolute time exactly as authored; the note queue is the
// density-filtered, lane-assigned subset of its note starts.
func (p *DefaultParser) Parse(file string) (*game.Score, error) {
	f, err := os.Open(file)
	if nil != err {
		return nil, fmt.Errorf("unable to open score: %w", err)
	}
	defer f.Close()

	var events []game.PlaybackEvent
	rd := smf.ReadTracksFrom(f)
	rd.Do(func(ev smf.TrackEvent) {
		if !ev.Message.IsPlayable() {
			return
		}
		msg := make(midi.Message, len(ev.Message))
		copy(msg, ev.Message)
		events = append(events, game.PlaybackEvent{
			Time:    float64(ev.AbsMicroSeconds) / 1e6,
			Message: msg,
		})
	})
	if err := rd.Error(); nil != err {
		return nil, fmt.Errorf("unable to parse score: %w", err)
	}

	// The reader walks track by track, so merge to one sequence.
	// The sort is stable to keep each track's relative ordering on
	// equal times.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time < events[j].Time
	})

	score := &game.Score{}
	for _, ev := range events {
		score.Playback.Push(ev)
	}

	lastKept := -2 * minNoteGap
	for _, ev := range events {
		var ch, key, vel uint8
		if !ev.Message.GetNoteStart(&ch, &key, &vel) {
			continue
		}
		if score.Notes.Len() > 0 && ev.Time-lastKept <= minNoteGap {
			continue
		}
		score.Notes.Push(game.Note{Time: ev.Time, Lane: p.lane(ch)})
		lastKept = ev.Time
		score.FinishingTime = ev.Time
	}

	if score.Notes.Len() == 0 {
		return nil, errors.New("score contains no playable notes")
	}
	return score, nil
}

// lane maps a MIDI channel onto one of the four lanes. The base lane
// is channel mod 4; one time in four it is shifted to the next lane so
// lanes are not a pure function of channel.
func (p *DefaultParser) lane(channel uint8) game.Lane {
	lane := game.Lane(channel % game.NumLanes)
	if p.Rand.Intn(4) == 0 {
		lane = (lane + 1) % game.NumLanes
	}
	return lane
}
