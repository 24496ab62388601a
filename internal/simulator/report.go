package simulator

import (
	"encoding/json"
	"io"

	"github.com/lox/holdem-cli/internal/fileutil"
)

// PersonaSummary is the JSON form of a PersonaReport
type PersonaSummary struct {
	Persona   string  `json:"persona"`
	Seats     int     `json:"seats"`
	Hands     int     `json:"hands"`
	GamesWon  int     `json:"games_won"`
	NetChips  int     `json:"net_chips"`
	MeanBB    float64 `json:"mean_bb"`
	MedianBB  float64 `json:"median_bb"`
	StdDevBB  float64 `json:"std_dev_bb"`
	CI95Low   float64 `json:"ci95_low"`
	CI95High  float64 `json:"ci95_high"`
	Showdowns int     `json:"showdown_wins"`
	MaxPot    int     `json:"max_pot"`
}

// Summary is the JSON form of a Report
type Summary struct {
	Sessions int              `json:"sessions"`
	Hands    int              `json:"hands"`
	Finished int              `json:"finished"`
	Personas []PersonaSummary `json:"personas"`
}

// Summarise reduces a report to its headline numbers
func Summarise(r *Report) Summary {
	out := Summary{Sessions: r.Sessions, Hands: r.Hands, Finished: r.Finished}
	for _, p := range r.Personas {
		low, high := p.Stats.ConfidenceInterval95()
		out.Personas = append(out.Personas, PersonaSummary{
			Persona:   p.Persona,
			Seats:     p.Seats,
			Hands:     p.Stats.Hands,
			GamesWon:  p.GamesWon,
			NetChips:  p.NetChips,
			MeanBB:    p.Stats.Mean(),
			MedianBB:  p.Stats.Median(),
			StdDevBB:  p.Stats.StdDev(),
			CI95Low:   low,
			CI95High:  high,
			Showdowns: p.Stats.ShowdownWins,
			MaxPot:    p.Stats.MaxPotChips,
		})
	}
	return out
}

// WriteReport writes the report summary as JSON to path, replacing any
// previous file in one step
func WriteReport(path string, r *Report) error {
	return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(Summarise(r))
	})
}
