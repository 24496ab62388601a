package phh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/lox/holdem-cli/internal/deck"
	"github.com/lox/holdem-cli/internal/game"
)

// Encode writes the hand history to w in PHH TOML format
func Encode(w io.Writer, hand *HandHistory) error {
	if hand == nil {
		return errors.New("phh: hand history is nil")
	}
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(hand)
}

// Decode parses a single hand written by Encode
func Decode(data []byte) (*HandHistory, error) {
	var hand HandHistory
	if _, err := toml.Decode(string(data), &hand); err != nil {
		return nil, fmt.Errorf("phh: %w", err)
	}
	return &hand, nil
}

// FormatAction converts an applied action to PHH notation. total is the
// player's bet for the street after the action. Skip is not emitted.
func FormatAction(player int, action game.Action, total int) (string, bool) {
	p := fmt.Sprintf("p%d", player+1)
	switch action {
	case game.Fold:
		return p + " f", true
	case game.Check, game.Call:
		return p + " cc", true
	case game.Raise:
		if total <= 0 {
			return "", false
		}
		return fmt.Sprintf("%s cbr %d", p, total), true
	}
	return "", false
}

// Cards joins cards in PHH notation ("AsKd")
func Cards(cards []deck.Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(c.ASCII())
	}
	return b.String()
}

// Writer appends hands to a stream as numbered sections
type Writer struct {
	mu      sync.Mutex
	w       io.Writer
	section int
}

// NewWriter returns a writer whose first hand is numbered after lastSection
func NewWriter(w io.Writer, lastSection int) *Writer {
	return &Writer{w: w, section: lastSection}
}

// Write appends one hand
func (w *Writer) Write(hand *HandHistory) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := fmt.Fprintf(w.w, "[%d]\n", w.section+1); err != nil {
		return err
	}
	if err := Encode(w.w, hand); err != nil {
		return err
	}
	if _, err := io.WriteString(w.w, "\n"); err != nil {
		return err
	}
	w.section++
	return nil
}

// LastSection returns the highest section number in the file at path, or 0
// when the file does not exist
func LastSection(path string) (int, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	defer f.Close()

	last := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) < 3 || line[0] != '[' || line[len(line)-1] != ']' {
			continue
		}
		if n, err := strconv.Atoi(line[1 : len(line)-1]); err == nil && n > last {
			last = n
		}
	}
	return last, scanner.Err()
}
