package rng

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"unicode/utf16"
)

// Modulus is the LCG modulus, 2^31 - 1.
const Modulus = 2147483647

type seedKind uint8

const (
	seedAbsent seedKind = iota
	seedNumber
	seedString
)

// Seed is a generation seed supplied as a number, a string, or not at all.
// The zero value is an absent seed.
type Seed struct {
	kind seedKind
	num  int64
	text string
}

// NumberSeed returns a numeric seed.
func NumberSeed(n int64) Seed {
	return Seed{kind: seedNumber, num: n}
}

// StringSeed returns a textual seed that is folded through a rolling hash.
func StringSeed(s string) Seed {
	return Seed{kind: seedString, text: s}
}

// ParseSeed interprets s as a number seed when it is an integer literal and
// as a string seed otherwise. An empty string yields an absent seed.
func ParseSeed(s string) Seed {
	if s == "" {
		return Seed{}
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return NumberSeed(n)
	}
	return StringSeed(s)
}

// IsZero reports whether the seed is absent.
func (s Seed) IsZero() bool { return s.kind == seedAbsent }

// IsNumber reports whether the seed was given as a number.
func (s Seed) IsNumber() bool { return s.kind == seedNumber }

// Value returns the initial LCG state for the seed.
// Absent seeds return 0; call Resolve first to get a usable value.
func (s Seed) Value() int64 {
	switch s.kind {
	case seedNumber:
		return normalize(s.num)
	case seedString:
		return normalize(hashString(s.text))
	default:
		return 0
	}
}

// Resolve returns s unchanged unless it is absent, in which case a number
// seed is drawn from ambient entropy.
func (s Seed) Resolve() Seed {
	if !s.IsZero() {
		return s
	}
	return NumberSeed(1 + rand.Int64N(Modulus-1))
}

// String renders the seed as it was supplied.
func (s Seed) String() string {
	switch s.kind {
	case seedNumber:
		return strconv.FormatInt(s.num, 10)
	case seedString:
		return s.text
	default:
		return ""
	}
}

// UnmarshalTOML accepts integer and string TOML values.
func (s *Seed) UnmarshalTOML(v any) error {
	switch val := v.(type) {
	case int64:
		*s = NumberSeed(val)
	case string:
		*s = StringSeed(val)
	case float64:
		*s = NumberSeed(int64(val))
	default:
		return fmt.Errorf("unsupported seed value %v (%T)", v, v)
	}
	return nil
}

// hashString folds s into a 32-bit signed accumulator with h = h*31 + c over
// UTF-16 code units, then takes the absolute value.
func hashString(s string) int64 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + int32(c)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

func normalize(v int64) int64 {
	if v < 0 {
		v = -v
	}
	return v % Modulus
}
