// Package handid generates identifiers for played hands: a UUIDv7 encoded as
// 26 characters of Crockford base32, so IDs sort by creation time.
package handid

import (
	"crypto/rand"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/coder/quartz"
)

// Crockford's base32, lower case
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the number of characters in an ID
const Length = 26

// RandSource supplies random bytes; *rand.Rand from math/rand/v2 satisfies it
type RandSource interface {
	IntN(n int) int
}

// Generator creates IDs from a clock and a random source
type Generator struct {
	mu    sync.Mutex
	clock quartz.Clock
	rand  RandSource
}

// NewGenerator returns a generator. A nil clock uses the wall clock and a nil
// source uses crypto/rand.
func NewGenerator(clock quartz.Clock, src RandSource) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{clock: clock, rand: src}
}

// Generate returns a new ID
func (g *Generator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return encode(g.uuid())
}

func (g *Generator) uuid() [16]byte {
	var id [16]byte

	// 48-bit millisecond timestamp, then random bits with the version and
	// variant fields overwritten
	ms := g.clock.Now().UnixMilli()
	for i := range 6 {
		id[i] = byte(ms >> (40 - 8*i))
	}
	if g.rand != nil {
		for i := 6; i < 16; i++ {
			id[i] = byte(g.rand.IntN(256))
		}
	} else if _, err := rand.Read(id[6:]); err != nil {
		panic("handid: reading random bytes: " + err.Error())
	}
	id[6] = (id[6] & 0x0f) | 0x70
	id[8] = (id[8] & 0x3f) | 0x80
	return id
}

// encode writes the 128 bits as 26 base32 digits, most significant first,
// with two implicit leading zero bits
func encode(id [16]byte) string {
	var hi, lo uint64
	for i := range 8 {
		hi = hi<<8 | uint64(id[i])
		lo = lo<<8 | uint64(id[8+i])
	}
	out := make([]byte, Length)
	for i := Length - 1; i >= 0; i-- {
		out[i] = alphabet[lo&31]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return string(out)
}

func decode(id string) (hi, lo uint64, err error) {
	if err := Validate(id); err != nil {
		return 0, 0, err
	}
	for i := range len(id) {
		v := uint64(strings.IndexByte(alphabet, id[i]))
		hi = hi<<5 | lo>>59
		lo = lo<<5 | v
	}
	return hi, lo, nil
}

// Validate checks that id is 26 lower-case base32 characters encoding at
// most 128 bits
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("hand ID must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("hand ID first character must be 0-7, got %c", id[0])
	}
	for i := range len(id) {
		if strings.IndexByte(alphabet, id[i]) < 0 {
			return fmt.Errorf("invalid character %c at position %d", id[i], i)
		}
	}
	return nil
}

// Time returns the creation time encoded in id, to the millisecond
func Time(id string) (time.Time, error) {
	hi, _, err := decode(id)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(int64(hi >> 16)), nil
}
