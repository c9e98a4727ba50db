// Package playerid generates the opaque ids assigned to players at connect
// time: UUIDv7 values encoded as 26-character Crockford base32 strings, so
// ids sort roughly by connect time while staying collision-free.
package playerid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strings"
	"time"
)

const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// RandSource supplies the random tail of an id. Injected in tests for
// deterministic output; nil means crypto/rand.
type RandSource interface {
	Intn(n int) int
}

// Generator produces player ids with a configurable randomness source.
type Generator struct {
	src RandSource
}

// NewGenerator creates a generator. A nil source uses crypto/rand.
func NewGenerator(src RandSource) *Generator {
	return &Generator{src: src}
}

// New creates a player id using crypto/rand.
func New() string {
	return NewGenerator(nil).Generate()
}

// Generate creates a new player id.
func (g *Generator) Generate() string {
	var u [16]byte

	// 48-bit millisecond timestamp, then random tail.
	now := uint64(time.Now().UnixMilli())
	u[0] = byte(now >> 40)
	u[1] = byte(now >> 32)
	u[2] = byte(now >> 24)
	u[3] = byte(now >> 16)
	u[4] = byte(now >> 8)
	u[5] = byte(now)

	if g.src != nil {
		for i := 6; i < 16; i++ {
			u[i] = byte(g.src.Intn(256))
		}
	} else {
		if _, err := rand.Read(u[6:]); err != nil {
			panic("playerid: failed to read random bytes: " + err.Error())
		}
	}

	// UUIDv7 version and variant bits.
	u[6] = (u[6] & 0x0f) | 0x70
	u[8] = (u[8] & 0x3f) | 0x80

	return encode(u)
}

// encode writes the 128-bit value as 26 base32 characters, consuming five
// bits at a time from the low end of the 130-bit zero-padded value.
func encode(u [16]byte) string {
	hi := binary.BigEndian.Uint64(u[:8])
	lo := binary.BigEndian.Uint64(u[8:])

	var b [26]byte
	for i := 25; i >= 0; i-- {
		b[i] = alphabet[lo&0x1f]
		lo = hi<<59 | lo>>5
		hi >>= 5
	}
	return string(b[:])
}

// Validate checks that an id is 26 characters of the base32 alphabet with a
// leading character that keeps the value within 128 bits.
func Validate(id string) error {
	if len(id) != 26 {
		return fmt.Errorf("player id must be 26 characters, got %d", len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("player id first character must be 0-7, got %c", id[0])
	}
	for i, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("invalid character %c at position %d", c, i)
		}
	}
	return nil
}
