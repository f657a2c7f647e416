package game

// damageFade is how much of a lane's damage indicator drains away per
// second of elapsed time.
const damageFade = 1.2

// State is all mutable per-session gameplay state, passed explicitly
// into every component call. Everything here is touched from the one
// frame-loop goroutine only.
type State struct {
	// Elapsed is the single monotonic time source, in seconds.
	// Initialized to 0 at game start, advanced once per frame,
	// never reset.
	Elapsed float64

	// Held is the per-lane "currently held" flag; set on key-down,
	// cleared on key-up, read (not cleared) on commit.
	Held [NumLanes]bool

	// Damage is the per-lane miss indicator in [0, 1]; a miss sets
	// it to full and it fades as time advances.
	Damage [NumLanes]float64

	Hits   int
	Misses int
}

// Advance adds a frame's measured delta to the elapsed clock.
// Non-positive deltas are ignored; there is no rollback and no pause.
func (s *State) Advance(delta float64) {
	if delta <= 0 {
		return
	}
	s.Elapsed += delta
	for i := range s.Damage {
		s.Damage[i] -= delta * damageFade
		if s.Damage[i] < 0 {
			s.Damage[i] = 0
		}
	}
}
