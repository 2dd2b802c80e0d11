package crypto

import (
	"errors"
	"fmt"
	"strings"
)

const (
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	digitChars  = "0123456789"
	symbolChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

var (
	ErrEmptyCharacterPool = errors.New("select at least one character type")
	ErrUnknownClass       = errors.New("unknown character class")
)

// CharacterClass is one of the fixed alphabets a password can draw from.
type CharacterClass uint8

const (
	ClassUpper CharacterClass = 1 << iota
	ClassLower
	ClassDigit
	ClassSymbol
)

// classOrder is the order alphabets are concatenated into a pool.
var classOrder = []CharacterClass{ClassUpper, ClassLower, ClassDigit, ClassSymbol}

// Alphabet returns the characters belonging to the class.
func (c CharacterClass) Alphabet() string {
	switch c {
	case ClassUpper:
		return upperChars
	case ClassLower:
		return lowerChars
	case ClassDigit:
		return digitChars
	case ClassSymbol:
		return symbolChars
	}
	return ""
}

func (c CharacterClass) String() string {
	switch c {
	case ClassUpper:
		return "upper"
	case ClassLower:
		return "lower"
	case ClassDigit:
		return "digit"
	case ClassSymbol:
		return "symbol"
	}
	return fmt.Sprintf("class(%d)", uint8(c))
}

// ParseClass maps a user-facing name to a CharacterClass.
func ParseClass(name string) (CharacterClass, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "upper", "uppercase":
		return ClassUpper, nil
	case "lower", "lowercase":
		return ClassLower, nil
	case "digit", "digits", "number", "numbers":
		return ClassDigit, nil
	case "symbol", "symbols":
		return ClassSymbol, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownClass, name)
}

// ClassSet is a set of enabled character classes.
type ClassSet uint8

// AllClasses enables every character class.
const AllClasses = ClassSet(ClassUpper | ClassLower | ClassDigit | ClassSymbol)

// NewClassSet builds a set from the given classes.
func NewClassSet(classes ...CharacterClass) ClassSet {
	var s ClassSet
	for _, c := range classes {
		s = s.With(c)
	}
	return s
}

func (s ClassSet) Has(c CharacterClass) bool { return s&ClassSet(c) != 0 }

func (s ClassSet) With(c CharacterClass) ClassSet { return s | ClassSet(c) }

func (s ClassSet) Without(c CharacterClass) ClassSet { return s &^ ClassSet(c) }

// Toggle flips a single class on or off.
func (s ClassSet) Toggle(c CharacterClass) ClassSet { return s ^ ClassSet(c) }

func (s ClassSet) Empty() bool { return s&AllClasses == 0 }

// Classes lists the enabled classes in pool order.
func (s ClassSet) Classes() []CharacterClass {
	var out []CharacterClass
	for _, c := range classOrder {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s ClassSet) String() string {
	names := make([]string, 0, len(classOrder))
	for _, c := range s.Classes() {
		names = append(names, c.String())
	}
	return strings.Join(names, ",")
}

// BuildPool concatenates the alphabets of the enabled classes in the fixed
// order upper, lower, digit, symbol.
func BuildPool(classes ClassSet) (string, error) {
	var sb strings.Builder
	for _, c := range classes.Classes() {
		sb.WriteString(c.Alphabet())
	}
	if sb.Len() == 0 {
		return "", ErrEmptyCharacterPool
	}
	return sb.String(), nil
}
