package score

import (
	"git.lost.host/meutraa/eotm/internal/game"
)

type DefaultScorer struct {
	// CatchWindow is the max lead time in seconds between the
	// elapsed clock and the front note for a press to count.
	CatchWindow float64

	// OnHit is invoked exactly once per hit, after the note is
	// consumed.
	OnHit func(n game.Note)
}

func (s *DefaultScorer) ExpireDue(st *game.State, q *game.NoteQueue) {
	for {
		head, ok := q.Head()
		if !ok || head.Time > st.Elapsed {
			return
		}
		q.Pop()
		st.Misses++
		st.Damage[head.Lane] = 1.0
	}
}

func (s *DefaultScorer) KeyDown(st *game.State, lane game.Lane) {
	st.Held[lane] = true
}

func (s *DefaultScorer) KeyUp(st *game.State, lane game.Lane) {
	st.Held[lane] = false
}

// Commit checks each lane's held flag against the queue front captured
// on entry. Only the front is ever matched, whichever lane is held; a
// correct press for a note deeper in the queue does not count. At most
// one hit can occur per commit: the first held lane that matches the
// front consumes it and evaluation stops.
func (s *DefaultScorer) Commit(st *game.State, q *game.NoteQueue) bool {
	head, ok := q.Head()
	if !ok {
		return false
	}
	for lane := game.Lane(0); lane < game.NumLanes; lane++ {
		if !st.Held[lane] {
			continue
		}
		if !s.checkHit(head, st.Elapsed, lane) {
			continue
		}
		q.Pop()
		st.Hits++
		if nil != s.OnHit {
			s.OnHit(head)
		}
		return true
	}
	return false
}

// checkHit holds when the front note belongs to the given lane and is
// close enough in the future. Notes already past due are the business
// of ExpireDue, not of commits.
func (s *DefaultScorer) checkHit(head game.Note, elapsed float64, lane game.Lane) bool {
	return head.Lane == lane && head.Time-elapsed < s.CatchWindow
}
