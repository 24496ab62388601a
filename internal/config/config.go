// Package config loads the table setup (blinds, starting stack and seats)
// from an HCL file.
package config

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/holdem-cli/internal/game"
)

// Config represents the complete table configuration
type Config struct {
	Table *TableSettings `hcl:"table,block"`
	Seats []SeatConfig   `hcl:"seat,block"`
}

// TableSettings contains stakes and buy-in
type TableSettings struct {
	SmallBlind    int `hcl:"small_blind,optional"`
	BigBlind      int `hcl:"big_blind,optional"`
	StartingStack int `hcl:"starting_stack,optional"`
}

// SeatConfig defines one seat, in clockwise order
type SeatConfig struct {
	Name    string `hcl:"name,label"`
	Persona string `hcl:"persona"`
}

const (
	defaultSmallBlind    = 10
	defaultBigBlind      = 20
	defaultStartingStack = 1000
	minSeats             = 2
	maxSeats             = 10
)

// Default returns the standard five-seat table: four AI personas and you
func Default() *Config {
	return &Config{
		Table: &TableSettings{
			SmallBlind:    defaultSmallBlind,
			BigBlind:      defaultBigBlind,
			StartingStack: defaultStartingStack,
		},
		Seats: []SeatConfig{
			{Name: "Player 1 (Rock)", Persona: "rock"},
			{Name: "Player 2 (Maniac)", Persona: "maniac"},
			{Name: "Player 3 (Station)", Persona: "station"},
			{Name: "Player 4 (Pro)", Persona: "pro"},
			{Name: "You", Persona: "human"},
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields Default.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file.Body)
}

// Parse decodes configuration from HCL source
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file.Body)
}

func decode(body hcl.Body) (*Config, error) {
	var config Config
	if diags := gohcl.DecodeBody(body, nil, &config); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Table == nil {
		config.Table = &TableSettings{}
	}
	if config.Table.SmallBlind == 0 {
		config.Table.SmallBlind = defaultSmallBlind
	}
	if config.Table.BigBlind == 0 {
		config.Table.BigBlind = config.Table.SmallBlind * 2
	}
	if config.Table.StartingStack == 0 {
		config.Table.StartingStack = defaultStartingStack
	}
	if len(config.Seats) == 0 {
		config.Seats = Default().Seats
	}
	return &config, nil
}

// Validate validates the table configuration
func (c *Config) Validate() error {
	if c.Table.SmallBlind <= 0 {
		return fmt.Errorf("small blind must be positive")
	}
	if c.Table.BigBlind < c.Table.SmallBlind {
		return fmt.Errorf("big blind %d must be at least the small blind %d", c.Table.BigBlind, c.Table.SmallBlind)
	}
	if c.Table.StartingStack <= c.Table.BigBlind {
		return fmt.Errorf("starting stack %d must exceed the big blind %d", c.Table.StartingStack, c.Table.BigBlind)
	}
	if len(c.Seats) < minSeats || len(c.Seats) > maxSeats {
		return fmt.Errorf("seat count must be between %d and %d, got %d", minSeats, maxSeats, len(c.Seats))
	}

	names := make(map[string]bool, len(c.Seats))
	humans := 0
	for _, seat := range c.Seats {
		if seat.Name == "" {
			return fmt.Errorf("seat name must not be empty")
		}
		if names[seat.Name] {
			return fmt.Errorf("seat %s: duplicate name", seat.Name)
		}
		names[seat.Name] = true

		persona, err := game.ParsePersona(seat.Persona)
		if err != nil {
			return fmt.Errorf("seat %s: %w", seat.Name, err)
		}
		if persona == game.Human {
			humans++
		}
	}
	if humans > 1 {
		return fmt.Errorf("at most one human seat is supported, got %d", humans)
	}
	return nil
}

// HasHuman reports whether a human seat is configured
func (c *Config) HasHuman() bool {
	for _, seat := range c.Seats {
		if persona, err := game.ParsePersona(seat.Persona); err == nil && persona == game.Human {
			return true
		}
	}
	return false
}

// NewState builds a fresh table from the configuration. It assumes Validate
// has passed.
func (c *Config) NewState(rng *rand.Rand) *game.State {
	seats := make([]*game.Seat, 0, len(c.Seats))
	for _, sc := range c.Seats {
		persona, _ := game.ParsePersona(sc.Persona)
		seats = append(seats, game.NewSeat(sc.Name, persona, c.Table.StartingStack))
	}
	return game.NewState(rng, c.Table.SmallBlind, c.Table.BigBlind, seats...)
}

// WithoutHuman returns a copy with any human seat played by the pro persona,
// used for AI-only simulation.
func (c *Config) WithoutHuman() *Config {
	out := *c
	table := *c.Table
	out.Table = &table
	out.Seats = make([]SeatConfig, len(c.Seats))
	for i, seat := range c.Seats {
		if persona, err := game.ParsePersona(seat.Persona); err == nil && persona == game.Human {
			seat.Persona = game.Pro.String()
		}
		out.Seats[i] = seat
	}
	return &out
}
