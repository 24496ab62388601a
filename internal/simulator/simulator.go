// Package simulator plays many independent AI-only sessions in parallel and
// reports results per persona.
package simulator

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-cli/internal/config"
	"github.com/lox/holdem-cli/internal/game"
	"github.com/lox/holdem-cli/internal/randutil"
	"github.com/lox/holdem-cli/internal/session"
	"github.com/lox/holdem-cli/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Table    *config.Config // human seats are played by the pro persona
	Sessions int
	Hands    int // hand limit per session
	Seed     int64
	Workers  int
	Timeout  time.Duration // per session, zero for none
	Logger   *log.Logger
}

// PersonaReport aggregates every seat played by one persona
type PersonaReport struct {
	Persona  string
	Seats    int // seats per table
	Stats    *statistics.Statistics
	NetChips int
	GamesWon int
}

// Report is the outcome of a simulation run
type Report struct {
	Sessions int
	Hands    int
	Finished int // sessions that ended with a single winner
	Personas []*PersonaReport
}

// Persona returns the report for a persona name, or nil
func (r *Report) Persona(name string) *PersonaReport {
	for _, p := range r.Personas {
		if p.Persona == name {
			return p
		}
	}
	return nil
}

// Simulator runs batches of sessions
type Simulator struct {
	config Config
	table  *config.Config
	logger *log.Logger
}

// New creates a new simulator with the given configuration
func New(cfg Config) *Simulator {
	if cfg.Table == nil {
		cfg.Table = config.Default()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	return &Simulator{
		config: cfg,
		table:  cfg.Table.WithoutHuman(),
		logger: cfg.Logger.WithPrefix("simulator"),
	}
}

type sessionResult struct {
	hands    int
	winner   int // seat index, or game.NoSeat
	stats    []*statistics.Statistics
	netChips []int
}

// Run executes every session and aggregates the results. Sessions are
// independent and seeded from Seed plus their index, so a run is
// reproducible regardless of worker count.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	if err := s.table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid table: %w", err)
	}
	if s.config.Sessions <= 0 {
		return nil, fmt.Errorf("sessions must be positive, got %d", s.config.Sessions)
	}

	results := make([]sessionResult, s.config.Sessions)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i := range s.config.Sessions {
		g.Go(func() error {
			res, err := s.runSession(ctx, i)
			if err != nil {
				return fmt.Errorf("session %d (seed %d): %w", i, s.sessionSeed(i), err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := s.aggregate(results)
	s.logger.Info("Simulation complete", "sessions", report.Sessions, "hands", report.Hands, "finished", report.Finished)
	return report, nil
}

func (s *Simulator) sessionSeed(i int) int64 {
	return s.config.Seed + int64(i)
}

func (s *Simulator) runSession(ctx context.Context, i int) (sessionResult, error) {
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	seed := s.sessionSeed(i)
	st := s.table.NewState(randutil.New(seed))
	n := len(st.Seats)
	bigBlind := st.BigBlind

	res := sessionResult{
		winner:   game.NoSeat,
		stats:    make([]*statistics.Statistics, n),
		netChips: make([]int, n),
	}
	for j := range res.stats {
		res.stats[j] = statistics.New(bigBlind)
	}

	stacks := make([]int, n)
	for j, seat := range st.Seats {
		stacks[j] = seat.Stack
	}
	dealer := st.Dealer
	hand := 0

	record := func(_ context.Context, st *game.State) (bool, error) {
		hand++
		pot := 0
		for j, seat := range st.Seats {
			pot = max(pot, seat.Stack-stacks[j])
		}
		for j, seat := range st.Seats {
			if stacks[j] == 0 {
				continue
			}
			delta := seat.Stack - stacks[j]
			res.netChips[j] += delta
			res.stats[j].Add(statistics.HandResult{
				NetBB:          float64(delta) / float64(bigBlind),
				Seed:           seed,
				Hand:           hand,
				Position:       (j - dealer + n) % n,
				WentToShowdown: st.Street == game.Showdown && !seat.Folded,
				FinalPotSize:   pot,
				StreetReached:  st.Street.String(),
			})
			stacks[j] = seat.Stack
		}
		dealer = st.Dealer
		return true, nil
	}

	sess := session.New(st, session.Options{
		Clock:         quartz.NewReal(),
		Policy:        game.NewPolicy(randutil.New(seed ^ 0x5eed)),
		Logger:        s.config.Logger,
		StartingStack: s.table.Table.StartingStack,
		MaxHands:      s.config.Hands,
		Between:       record,
	})
	out, err := sess.Run(ctx)
	if err != nil {
		return res, err
	}

	res.hands = out.Hands
	for j, seat := range st.Seats {
		if out.Winner != "" && seat.Name == out.Winner {
			res.winner = j
		}
	}
	s.logger.Debug("Session complete", "session", i, "seed", seed, "hands", out.Hands, "winner", out.Winner)
	return res, nil
}

func (s *Simulator) aggregate(results []sessionResult) *Report {
	report := &Report{Sessions: len(results)}
	byPersona := make(map[string]*PersonaReport)
	seatPersona := make([]string, len(s.table.Seats))

	for j, seat := range s.table.Seats {
		seatPersona[j] = seat.Persona
		p, ok := byPersona[seat.Persona]
		if !ok {
			p = &PersonaReport{Persona: seat.Persona, Stats: statistics.New(s.table.Table.BigBlind)}
			byPersona[seat.Persona] = p
			report.Personas = append(report.Personas, p)
		}
		p.Seats++
	}

	for _, res := range results {
		report.Hands += res.hands
		if res.winner != game.NoSeat {
			report.Finished++
			byPersona[seatPersona[res.winner]].GamesWon++
		}
		for j, stats := range res.stats {
			p := byPersona[seatPersona[j]]
			p.Stats.Merge(stats)
			p.NetChips += res.netChips[j]
		}
	}
	return report
}

// PrintSummary writes a per-persona summary of the report
func PrintSummary(w io.Writer, r *Report) {
	fmt.Fprintf(w, "\n=== SIMULATION RESULTS ===\n")
	fmt.Fprintf(w, "Sessions: %d (%d played to a winner)\n", r.Sessions, r.Finished)
	fmt.Fprintf(w, "Hands played: %d\n", r.Hands)

	for _, p := range r.Personas {
		stats := p.Stats
		low, high := stats.ConfidenceInterval95()
		fmt.Fprintf(w, "\n--- %s (%d seat(s)) ---\n", p.Persona, p.Seats)
		fmt.Fprintf(w, "Games won: %d\n", p.GamesWon)
		fmt.Fprintf(w, "Net chips: %+d\n", p.NetChips)
		fmt.Fprintf(w, "Mean: %.4f bb/hand, median %.4f, std dev %.4f\n", stats.Mean(), stats.Median(), stats.StdDev())
		fmt.Fprintf(w, "95%% CI: [%.4f, %.4f] bb/hand\n", low, high)
		if stats.Hands > 0 {
			fmt.Fprintf(w, "Showdown: %.3f bb/hand, non-showdown: %.3f bb/hand\n",
				stats.ShowdownBB/float64(stats.Hands), stats.NonShowdownBB/float64(stats.Hands))
		}
		fmt.Fprintf(w, "Max pot: %d chips (%.1f bb), big pots: %d\n", stats.MaxPotChips, stats.MaxPotBB, stats.BigPots)
		for pos := range statistics.MaxPositions {
			if ps := stats.PositionResults[pos]; ps.Hands > 0 {
				fmt.Fprintf(w, "  Button+%d: %d hands, %.3f bb/hand\n", pos, ps.Hands, stats.PositionMean(pos))
			}
		}
	}
}
