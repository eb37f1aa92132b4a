// Package gameid creates the identifiers of recorded games: a UUIDv7 written
// as 26 characters of lowercase Crockford base32, so IDs sort by creation
// time.
package gameid

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

const (
	alphabet = "0123456789abcdefghjkmnpqrstvwxyz"
	length   = 26
)

// Generator creates game IDs. A nil reader uses crypto/rand.
type Generator struct {
	r io.Reader
}

// NewGenerator creates a generator reading its random bits from r.
func NewGenerator(r io.Reader) *Generator {
	return &Generator{r: r}
}

// Generate creates a new game ID with crypto/rand
func Generate() (string, error) {
	return NewGenerator(nil).Generate()
}

// Generate creates a new game ID.
func (g *Generator) Generate() (string, error) {
	var (
		id  uuid.UUID
		err error
	)
	if g.r == nil {
		id, err = uuid.NewV7()
	} else {
		id, err = uuid.NewV7FromReader(g.r)
	}
	if err != nil {
		return "", fmt.Errorf("generate game id: %w", err)
	}
	return Encode(id), nil
}

// Encode writes id as 26 base32 characters. The leading character carries
// only the top three bits.
func Encode(id uuid.UUID) string {
	hi := binary.BigEndian.Uint64(id[:8])
	lo := binary.BigEndian.Uint64(id[8:])
	var out [length]byte
	for i := length - 1; i >= 0; i-- {
		out[i] = alphabet[lo&0x1f]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return string(out[:])
}

// Parse decodes a game ID back into its UUID.
func Parse(s string) (uuid.UUID, error) {
	if err := Validate(s); err != nil {
		return uuid.Nil, err
	}
	var hi, lo uint64
	for i := 0; i < length; i++ {
		v := uint64(strings.IndexByte(alphabet, s[i]))
		hi = hi<<5 | lo>>59
		lo = lo<<5 | v
	}
	var id uuid.UUID
	binary.BigEndian.PutUint64(id[:8], hi)
	binary.BigEndian.PutUint64(id[8:], lo)
	if id.Version() != 7 {
		return uuid.Nil, fmt.Errorf("game ID %s is not a version 7 UUID", s)
	}
	return id, nil
}

// Validate checks that s has the shape of a game ID.
func Validate(s string) error {
	if len(s) != length {
		return fmt.Errorf("game ID must be exactly %d characters, got %d", length, len(s))
	}
	if s[0] > '7' {
		return fmt.Errorf("game ID first character must be 0-7, got %c", s[0])
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(alphabet, s[i]) < 0 {
			return fmt.Errorf("invalid character %c at position %d", s[i], i)
		}
	}
	return nil
}
