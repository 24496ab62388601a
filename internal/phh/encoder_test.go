package phh_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-cli/internal/deck"
	"github.com/lox/holdem-cli/internal/game"
	"github.com/lox/holdem-cli/internal/phh"
)

func TestFormatAction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		player int
		action game.Action
		total  int
		want   string
		ok     bool
	}{
		{"fold", 0, game.Fold, 0, "p1 f", true},
		{"check", 1, game.Check, 0, "p2 cc", true},
		{"call", 3, game.Call, 50, "p4 cc", true},
		{"raise", 0, game.Raise, 120, "p1 cbr 120", true},
		{"zero raise", 2, game.Raise, 0, "", false},
		{"skip", 2, game.Skip, 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := phh.FormatAction(tt.player, tt.action, tt.total)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCards(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "AsTd2c", phh.Cards(deck.MustParseCards("AsTd2c")))
	assert.Empty(t, phh.Cards(nil))
}

func sampleHand() *phh.HandHistory {
	hand := &phh.HandHistory{
		Variant:           "NT",
		Table:             "default",
		SeatCount:         3,
		Seats:             []int{2, 3, 1},
		Antes:             []int{0, 0, 0},
		BlindsOrStraddles: []int{10, 20, 0},
		MinBet:            20,
		StartingStacks:    []int{1000, 1000, 1000},
		FinishingStacks:   []int{990, 980, 1030},
		Winnings:          []int{0, 0, 30},
		Actions: []string{
			"d dh p1 QhQd",
			"d dh p2 7c2h",
			"d dh p3 AsKd",
			"p3 cbr 60",
			"p1 f",
			"p2 f",
		},
		Players: []string{"Rock", "Maniac", "You"},
		HandID:  "hand-00042",
		Time:    "15:22:00",
	}
	hand.TimeZone = "UTC"
	hand.Day, hand.Month, hand.Year = 14, 11, 2025
	hand.Timestamp = time.Date(2025, time.November, 14, 15, 22, 0, 0, time.UTC)
	return hand
}

func TestEncodeHandHistory(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, phh.Encode(&buf, sampleHand()))

	want := "" +
		"variant = \"NT\"\n" +
		"table = \"default\"\n" +
		"seat_count = 3\n" +
		"seats = [2, 3, 1]\n" +
		"antes = [0, 0, 0]\n" +
		"blinds_or_straddles = [10, 20, 0]\n" +
		"min_bet = 20\n" +
		"starting_stacks = [1000, 1000, 1000]\n" +
		"finishing_stacks = [990, 980, 1030]\n" +
		"winnings = [0, 0, 30]\n" +
		"actions = [\"d dh p1 QhQd\", \"d dh p2 7c2h\", \"d dh p3 AsKd\", \"p3 cbr 60\", \"p1 f\", \"p2 f\"]\n" +
		"players = [\"Rock\", \"Maniac\", \"You\"]\n" +
		"hand = \"hand-00042\"\n" +
		"time = \"15:22:00\"\n" +
		"time_zone = \"UTC\"\n" +
		"day = 14\n" +
		"month = 11\n" +
		"year = 2025\n"
	assert.Equal(t, want, buf.String())

	decoded, err := phh.Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, sampleHand().Actions, decoded.Actions)
	assert.Equal(t, []int{990, 980, 1030}, decoded.FinishingStacks)
}

func TestEncodeNil(t *testing.T) {
	t.Parallel()
	assert.Error(t, phh.Encode(&bytes.Buffer{}, nil))
}

func TestWriterNumbersSections(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.phhs")
	last, err := phh.LastSection(path)
	require.NoError(t, err)
	assert.Zero(t, last)

	f, err := os.Create(path)
	require.NoError(t, err)
	w := phh.NewWriter(f, last)
	require.NoError(t, w.Write(sampleHand()))
	require.NoError(t, w.Write(sampleHand()))
	require.NoError(t, f.Close())

	last, err = phh.LastSection(path)
	require.NoError(t, err)
	assert.Equal(t, 2, last)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[1]\nvariant = \"NT\"")
	assert.Contains(t, string(data), "\n[2]\nvariant = \"NT\"")

	// appending continues the numbering
	f, err = os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	require.NoError(t, phh.NewWriter(f, last).Write(sampleHand()))
	require.NoError(t, f.Close())

	last, err = phh.LastSection(path)
	require.NoError(t, err)
	assert.Equal(t, 3, last)
}
