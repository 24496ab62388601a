package game

import (
	"context"
	"fmt"
	"sync"

	"github.com/lox/holdem-cli/internal/deck"
	"github.com/lox/holdem-cli/internal/randutil"
)

// newTestState builds a table of human-controlled seats with 10/20 blinds
func newTestState(stacks ...int) *State {
	seats := make([]*Seat, len(stacks))
	for i, stack := range stacks {
		seats[i] = NewSeat(fmt.Sprintf("P%d", i), Human, stack)
	}
	return NewState(randutil.New(42), 10, 20, seats...)
}

// tableLog collects log lines
type tableLog struct {
	mu    sync.Mutex
	lines []string
}

func (l *tableLog) log(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, line)
}

func (l *tableLog) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

// scripted plays queued decisions per seat and checks or calls once a
// seat's script runs out.
type scripted struct {
	scripts map[int][]Decision
	asked   []int
}

func newScripted(scripts map[int][]Decision) *scripted {
	if scripts == nil {
		scripts = map[int][]Decision{}
	}
	return &scripted{scripts: scripts}
}

func (p *scripted) NextAction(_ context.Context, v View) (Decision, error) {
	p.asked = append(p.asked, v.Seat)
	if queue := p.scripts[v.Seat]; len(queue) > 0 {
		p.scripts[v.Seat] = queue[1:]
		return queue[0], nil
	}
	if v.CanCheck() {
		return Decision{Action: Check}, nil
	}
	return Decision{Action: Call}, nil
}

func fold() Decision             { return Decision{Action: Fold} }
func call() Decision             { return Decision{Action: Call} }
func check() Decision            { return Decision{Action: Check} }
func raiseTo(n int) Decision     { return Decision{Action: Raise, Amount: n} }
func cards(s string) []deck.Card { return deck.MustParseCards(s) }

// dealOrder lays out a stacked deck for a hand dealt from seat 0 with no
// seats out: two rounds of hole cards, then burn+flop, burn+turn, burn+river.
func dealOrder(holes []string, board string) []deck.Card {
	var out []deck.Card
	parsed := make([][]deck.Card, len(holes))
	for i, h := range holes {
		parsed[i] = cards(h)
	}
	for round := range 2 {
		for _, h := range parsed {
			out = append(out, h[round])
		}
	}
	b := cards(board)
	burn := cards("2c3c4c")
	out = append(out, burn[0], b[0], b[1], b[2])
	out = append(out, burn[1], b[3])
	out = append(out, burn[2], b[4])
	return out
}
