package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/eiannone/keyboard"

	"git.lost.host/meutraa/eotm/internal/config"
	"git.lost.host/meutraa/eotm/internal/game"
	"git.lost.host/meutraa/eotm/internal/input"
	"git.lost.host/meutraa/eotm/internal/logger"
	"git.lost.host/meutraa/eotm/internal/parser"
	"git.lost.host/meutraa/eotm/internal/playback"
	"git.lost.host/meutraa/eotm/internal/render"
	"git.lost.host/meutraa/eotm/internal/score"
	"git.lost.host/meutraa/eotm/internal/theme"
	"git.lost.host/meutraa/eotm/internal/token"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

type cell struct {
	row, col int
}

func run() error {
	if err := logger.Init(*config.LogFile); nil != err {
		return fmt.Errorf("unable to init logger: %w", err)
	}
	defer logger.Sync()

	// Ensure our Default implementations are used as interfaces
	var r render.Renderer = &render.DefaultRenderer{}
	var th theme.Theme = &theme.DefaultTheme{}
	var psr parser.Parser = &parser.DefaultParser{
		Rand: rand.New(rand.NewSource(*config.Seed)),
	}

	sc, err := psr.Parse(*config.File)
	if nil != err {
		return fmt.Errorf("unable to load score: %w", err)
	}

	toks, err := token.Load(*config.Source)
	if nil != err {
		return err
	}

	send, closeOut := playback.Open()
	defer closeOut()

	events := make(chan *input.Event, 128)
	if err := input.ReadInput(*config.Keyboard, events); nil != err {
		return fmt.Errorf("unable to open keyboard %v: %w", *config.Keyboard, err)
	}

	keyChannel, err := keyboard.GetKeys(8)
	if nil != err {
		return fmt.Errorf("unable to open console keyboard: %w", err)
	}
	defer func() {
		if err := keyboard.Close(); nil != err {
			logger.L.Warn("unable to close console keyboard", logger.Err(err))
		}
	}()

	fmt.Printf("%v notes over %.0f seconds", sc.Notes.Len(), sc.FinishingTime)
	if nil == send {
		fmt.Printf(" (no midi output, playing silent)")
	}
	fmt.Printf("\npress any key to start\n")
	key := <-keyChannel
	if key.Key == keyboard.KeyEsc {
		return nil
	}

	if err := r.Init(); nil != err {
		return err
	}
	rc, cc := r.Size()

	mc := cc >> 1
	cen := rc >> 1
	spacing := int(*config.ColumnSpacing)
	cis := [game.NumLanes]int{
		mc - spacing*3,
		mc - spacing,
		mc + spacing,
		mc + spacing*3,
	}
	sideCol := cis[0] - 36
	if sideCol < 2 {
		sideCol = 2
	}
	hitRow := rc - int(*config.BarRow)
	rowsPerSecond := float64(*config.ScrollRows)

	st := &game.State{}
	sched := &playback.Scheduler{Queue: &sc.Playback, Send: send}
	judge := &score.DefaultScorer{
		CatchWindow: config.CatchWindow.Seconds(),
		OnHit: func(n game.Note) {
			t := toks.Advance()
			r.AddDecoration(cen-4, mc-len(t)/2, t, 90)
		},
	}

	win := false
	lastDuration := 0.0
	prev := []cell{}

	r.RenderLoop(*config.Delay, func(duration time.Duration) bool {
		// the one elapsed clock everything else reads
		if d := duration.Seconds(); d > lastDuration {
			st.Advance(d - lastDuration)
			lastDuration = d
		}

		sched.PumpDue(st.Elapsed)
		judge.ExpireDue(st, &sc.Notes)

		// drain the key inputs that occured so far
		for i := len(events); i > 0; i-- {
			ev := <-events
			switch {
			case ev.Quit():
				if ev.Pressed {
					return false
				}
			case ev.Commit():
				if ev.Pressed {
					judge.Commit(st, &sc.Notes)
				}
			default:
				if lane, ok := ev.Lane(); ok {
					if ev.Pressed {
						judge.KeyDown(st, lane)
					} else if ev.Released {
						judge.KeyUp(st, lane)
					}
				}
			}
		}

		// clear last frame's notes before drawing this one
		for _, c := range prev {
			r.Fill(c.row, c.col, " ")
		}
		prev = prev[:0]

		// the hit bar, held markers and damage indicators
		for lane := game.Lane(0); lane < game.NumLanes; lane++ {
			col := cis[lane]
			r.Fill(hitRow, col, th.RenderHitField(lane, st.Held[lane]))
			r.Fill(hitRow+1, col, th.RenderDamage(lane, st.Damage[lane]))
		}

		// notes scroll down towards the hit bar
		for _, n := range sc.Notes.Pending() {
			row := hitRow - int((n.Time-st.Elapsed)*rowsPerSecond)
			if row < 1 {
				break // everything later is above the screen
			}
			if row >= hitRow {
				row = hitRow - 1
			}
			r.Fill(row, cis[n.Lane], th.RenderNote(n.Lane))
			prev = append(prev, cell{row: row, col: cis[n.Lane]})
		}

		r.Fill(2, sideCol, fmt.Sprintf("   Elapsed:  %6.1fs", st.Elapsed))
		r.Fill(3, sideCol, fmt.Sprintf("      Hits:  %6v", st.Hits))
		r.Fill(4, sideCol, fmt.Sprintf("    Misses:  %6v", st.Misses))
		r.Fill(5, sideCol, fmt.Sprintf(" Remaining:  %6v", sc.Notes.Len()))
		r.Fill(6, sideCol, fmt.Sprintf("  Playback:  %6v", sc.Playback.Len()))

		if sc.Notes.Len() == 0 {
			win = true
			return false
		}
		return true
	})

	if err := r.Deinit(); nil != err {
		return err
	}

	if win {
		fmt.Printf("cleared: %v hits, %v misses\n", st.Hits, st.Misses)
	} else {
		fmt.Printf("stopped: %v hits, %v misses, %v notes left\n",
			st.Hits, st.Misses, sc.Notes.Len())
	}
	fmt.Printf("press any key to exit\n")
	_ = <-keyChannel
	return nil
}
