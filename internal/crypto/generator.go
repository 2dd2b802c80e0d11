package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
)

// MinLength is the shortest password the generator will produce.
const MinLength = 4

var (
	ErrInvalidLengthFormat = errors.New("please enter a valid number")
	ErrLengthTooShort      = errors.New("password length must be at least 4")
)

// RandomSource supplies the bytes every draw and shuffle step is derived from.
// It must be cryptographically secure outside of tests.
type RandomSource = io.Reader

// GenerationRequest is the validated input to a single generation.
type GenerationRequest struct {
	Length  int
	Classes ClassSet
}

// Password is a generated password together with the size of the pool it was
// drawn from.
type Password struct {
	Value    string
	PoolSize int
}

// Strength rates the password from its length and pool size.
func (p Password) Strength() StrengthRating {
	return EstimateStrength(len(p.Value), p.PoolSize)
}

// Generator draws passwords from a RandomSource. It holds no other state and
// is safe for concurrent use when the source is.
type Generator struct {
	source RandomSource
}

// NewGenerator returns a generator reading from source, or from crypto/rand
// when source is nil.
func NewGenerator(source RandomSource) *Generator {
	if source == nil {
		source = rand.Reader
	}
	return &Generator{source: source}
}

// Generate builds the pool for req.Classes and samples req.Length characters.
func (g *Generator) Generate(req GenerationRequest) (Password, error) {
	if req.Length < MinLength {
		return Password{}, ErrLengthTooShort
	}

	pool, err := BuildPool(req.Classes)
	if err != nil {
		return Password{}, err
	}

	value, err := g.Sample(req.Length, pool)
	if err != nil {
		return Password{}, err
	}

	return Password{Value: value, PoolSize: len(pool)}, nil
}

// Sample draws length characters independently and uniformly from pool, then
// applies a Fisher-Yates shuffle to the result.
func (g *Generator) Sample(length int, pool string) (string, error) {
	if length < MinLength {
		return "", ErrLengthTooShort
	}
	if pool == "" {
		return "", ErrEmptyCharacterPool
	}

	result := make([]byte, length)
	for i := range result {
		idx, err := g.randIndex(len(pool))
		if err != nil {
			return "", err
		}
		result[i] = pool[idx]
	}

	if err := g.shuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// randIndex returns a uniform index in [0, n). rand.Int rejects out-of-range
// draws, so there is no modulo bias.
func (g *Generator) randIndex(n int) (int, error) {
	v, err := rand.Int(g.source, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("reading random source: %w", err)
	}
	return int(v.Int64()), nil
}

func (g *Generator) shuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := g.randIndex(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}

// ParseLength parses the raw length field. Anything that is not an integer is
// ErrInvalidLengthFormat; range checks are left to the generator.
func ParseLength(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrInvalidLengthFormat
	}
	return n, nil
}
