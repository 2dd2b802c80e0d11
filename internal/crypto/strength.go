package crypto

import (
	"fmt"
	"math"

	zxcvbn "github.com/ccojocar/zxcvbn-go"
)

// StrengthLabel is the coarse rating shown next to a generated password.
type StrengthLabel string

const (
	Weak       StrengthLabel = "Weak"
	Medium     StrengthLabel = "Medium"
	Strong     StrengthLabel = "Strong"
	VeryStrong StrengthLabel = "Very Strong"
)

// Labels lists every label from weakest to strongest.
var Labels = []StrengthLabel{Weak, Medium, Strong, VeryStrong}

// StrengthRating is derived from length and pool size only, never from the
// password's characters.
type StrengthRating struct {
	Label   StrengthLabel
	Entropy int
}

func (r StrengthRating) String() string {
	return fmt.Sprintf("Strength: %s (Entropy: %d bits)", r.Label, r.Entropy)
}

// EstimateStrength computes floor(length * log2(poolSize)) and maps it onto a
// label: below 40 weak, below 60 medium, below 80 strong, otherwise very strong.
func EstimateStrength(length, poolSize int) StrengthRating {
	var bits float64
	if length > 0 && poolSize > 1 {
		bits = float64(length) * math.Log2(float64(poolSize))
	}
	entropy := int(bits)

	return StrengthRating{Label: labelFor(entropy), Entropy: entropy}
}

func labelFor(entropy int) StrengthLabel {
	switch {
	case entropy < 40:
		return Weak
	case entropy < 60:
		return Medium
	case entropy < 80:
		return Strong
	default:
		return VeryStrong
	}
}

// maxGuessabilityLen bounds the input handed to zxcvbn, whose matchers slow
// down sharply on long inputs.
const maxGuessabilityLen = 50

// Guessability returns the zxcvbn score (0 too guessable .. 4 very
// unguessable) of the first 50 characters of password.
func Guessability(password string) int {
	if len(password) > maxGuessabilityLen {
		password = password[:maxGuessabilityLen]
	}
	return zxcvbn.PasswordStrength(password, nil).Score
}
