package phh

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-cli/internal/game"
	"github.com/lox/holdem-cli/internal/handid"
)

// RecorderOptions configures a Recorder
type RecorderOptions struct {
	Table  string
	Clock  quartz.Clock
	IDs    *handid.Generator
	Logger *log.Logger
}

// Recorder builds a HandHistory from the engine's callbacks and writes it
// when the hand ends. It follows one table and is not safe for concurrent
// hands.
type Recorder struct {
	out     *Writer
	opts    RecorderOptions
	logger  *log.Logger
	current *handRecord
}

type handRecord struct {
	id     string
	stacks []int
	events []event
	hist   *HandHistory
}

type event struct {
	seat   int
	board  int // board cards visible when the seat acted
	action game.Action
	total  int
}

// NewRecorder creates a recorder writing finished hands to out
func NewRecorder(out *Writer, opts RecorderOptions) *Recorder {
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.IDs == nil {
		opts.IDs = handid.NewGenerator(opts.Clock, nil)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Table == "" {
		opts.Table = "holdem"
	}
	return &Recorder{out: out, opts: opts, logger: opts.Logger.WithPrefix("phh")}
}

// BeginHand snapshots the stacks before the hand is dealt
func (r *Recorder) BeginHand(st *game.State) {
	stacks := make([]int, len(st.Seats))
	for i, seat := range st.Seats {
		stacks[i] = seat.Stack
	}
	r.current = &handRecord{id: r.opts.IDs.Generate(), stacks: stacks}
}

// RecordAction notes an applied decision. An all-in that fails to raise the
// bet is recorded as a call.
func (r *Recorder) RecordAction(st *game.State, idx int, d game.Decision) {
	if r.current == nil || d.Action == game.Skip {
		return
	}
	total := st.Seats[idx].RoundBet
	action := d.Action
	if action == game.Raise && (st.LastRaiser != idx || st.CurrentBet != total) {
		action = game.Call
	}
	r.current.events = append(r.current.events, event{
		seat:   idx,
		board:  len(st.Board),
		action: action,
		total:  total,
	})
}

// EndHand completes the history and writes it
func (r *Recorder) EndHand(st *game.State, outcome game.HandOutcome) error {
	hist := r.Build(st, outcome)
	if hist == nil {
		return nil
	}
	if err := r.out.Write(hist); err != nil {
		return fmt.Errorf("write hand history: %w", err)
	}
	r.logger.Debug("Hand recorded", "hand", hist.HandID, "actions", len(hist.Actions))
	return nil
}

// Build assembles the history of the hand begun by BeginHand. It returns nil
// when no hand is in progress.
func (r *Recorder) Build(st *game.State, outcome game.HandOutcome) *HandHistory {
	rec := r.current
	r.current = nil
	if rec == nil {
		return nil
	}

	order := playerOrder(st)
	pos := make(map[int]int, len(order))
	for p, seat := range order {
		pos[seat] = p
	}

	n := len(order)
	hist := &HandHistory{
		Variant:           "NT",
		Table:             r.opts.Table,
		SeatCount:         len(st.Seats),
		Seats:             make([]int, n),
		Antes:             make([]int, n),
		BlindsOrStraddles: make([]int, n),
		MinBet:            st.BigBlind,
		StartingStacks:    make([]int, n),
		FinishingStacks:   make([]int, n),
		Winnings:          make([]int, n),
		Players:           make([]string, n),
		HandID:            rec.id,
	}
	hist.setTime(r.opts.Clock.Now())

	for p, idx := range order {
		seat := st.Seats[idx]
		hist.Seats[p] = idx + 1
		hist.Players[p] = seat.Name
		hist.StartingStacks[p] = rec.stacks[idx]
		hist.FinishingStacks[p] = seat.Stack
		hist.Winnings[p] = max(seat.Stack-rec.stacks[idx], 0)
		hist.Actions = append(hist.Actions, fmt.Sprintf("d dh p%d %s", p+1, Cards(seat.Hand)))
	}
	if p, ok := pos[st.SBIdx]; ok && st.SBIdx != st.BBIdx {
		hist.BlindsOrStraddles[p] = st.SmallBlind
	}
	if p, ok := pos[st.BBIdx]; ok {
		hist.BlindsOrStraddles[p] = st.BigBlind
	}

	// board deals go in one street at a time: three cards, then one each
	shown := 0
	dealTo := func(upto int) {
		for shown < upto {
			next := max(3, shown+1)
			hist.Actions = append(hist.Actions, "d db "+Cards(st.Board[shown:next]))
			shown = next
		}
	}
	for _, ev := range rec.events {
		dealTo(ev.board)
		if line, ok := FormatAction(pos[ev.seat], ev.action, ev.total); ok {
			hist.Actions = append(hist.Actions, line)
		}
	}
	dealTo(len(st.Board))

	if outcome.Street == game.Showdown {
		for p, idx := range order {
			if seat := st.Seats[idx]; !seat.Folded {
				hist.Actions = append(hist.Actions, fmt.Sprintf("p%d sm %s", p+1, Cards(seat.Hand)))
			}
		}
	}
	return hist
}

// playerOrder lists the seats dealt into the hand, starting at the small
// blind
func playerOrder(st *game.State) []int {
	start := st.SBIdx
	if start == game.NoSeat {
		start = game.NextIdx(st, st.Dealer)
	}
	n := len(st.Seats)
	order := make([]int, 0, n)
	for step := range n {
		idx := (start + step) % n
		if !st.Seats[idx].Out {
			order = append(order, idx)
		}
	}
	return order
}
