package game

// NoteQueue is a time-ordered sequence of notes consumed only from the
// front. Once a note is popped (hit or missed) it is gone for good.
type NoteQueue struct {
	notes []Note
}

func (q *NoteQueue) Push(n Note) {
	q.notes = append(q.notes, n)
}

func (q *NoteQueue) Len() int {
	return len(q.notes)
}

// Head returns the front note without consuming it.
func (q *NoteQueue) Head() (Note, bool) {
	if len(q.notes) == 0 {
		return Note{}, false
	}
	return q.notes[0], true
}

func (q *NoteQueue) Pop() (Note, bool) {
	if len(q.notes) == 0 {
		return Note{}, false
	}
	n := q.notes[0]
	q.notes = q.notes[1:]
	return n, true
}

// Pending is a read-only view of the unconsumed notes, front first.
// The renderer walks this every frame.
func (q *NoteQueue) Pending() []Note {
	return q.notes
}

// PlaybackQueue is the unfiltered twin of NoteQueue, also consumed
// only from the front.
type PlaybackQueue struct {
	events []PlaybackEvent
}

func (q *PlaybackQueue) Push(e PlaybackEvent) {
	q.events = append(q.events, e)
}

func (q *PlaybackQueue) Len() int {
	return len(q.events)
}

func (q *PlaybackQueue) Head() (PlaybackEvent, bool) {
	if len(q.events) == 0 {
		return PlaybackEvent{}, false
	}
	return q.events[0], true
}

func (q *PlaybackQueue) Pop() (PlaybackEvent, bool) {
	if len(q.events) == 0 {
		return PlaybackEvent{}, false
	}
	e := q.events[0]
	q.events = q.events[1:]
	return e, true
}

// Score is what the parser hands to the game: the two queues derived
// from one MIDI file, plus the time of the last gameplay note.
type Score struct {
	Notes    NoteQueue
	Playback PlaybackQueue

	// FinishingTime is the time of the last note in the freshly
	// loaded queue, informational only.
	FinishingTime float64
}
