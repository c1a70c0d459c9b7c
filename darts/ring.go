package darts

import (
	"fmt"
	"strings"
)

// Ring identifies which part of the board a dart landed in
type Ring uint8

const (
	Miss Ring = iota
	Single
	Double
	Triple
	Bull     // outer bull, 25 points
	Bullseye // inner bull, 50 points
)

var ringNames = [...]string{"Miss", "Single", "Double", "Triple", "Bull", "Bullseye"}

// String returns the ring name as persisted in throw records
func (r Ring) String() string {
	if int(r) < len(ringNames) {
		return ringNames[r]
	}
	return fmt.Sprintf("Ring(%d)", uint8(r))
}

// Multiplier returns the segment multiplier for numbered rings, 0 otherwise
func (r Ring) Multiplier() int {
	switch r {
	case Single:
		return 1
	case Double:
		return 2
	case Triple:
		return 3
	default:
		return 0
	}
}

// ParseRing parses a ring name, case-insensitively
func ParseRing(s string) (Ring, error) {
	for i, name := range ringNames {
		if strings.EqualFold(s, name) {
			return Ring(i), nil
		}
	}
	return Miss, fmt.Errorf("unknown ring %q", s)
}

// OutRule is the finishing (or opening) rule of an X01-style game
type OutRule uint8

const (
	OutSingle  OutRule = iota // any scoring dart
	OutDouble                 // a double or the bullseye
	OutMasters                // a double, a triple or the bullseye
)

var outRuleNames = [...]string{"Single", "Double", "Masters"}

func (o OutRule) String() string {
	if int(o) < len(outRuleNames) {
		return outRuleNames[o]
	}
	return fmt.Sprintf("OutRule(%d)", uint8(o))
}

// Allows reports whether a dart in ring r satisfies the rule
func (o OutRule) Allows(r Ring) bool {
	switch o {
	case OutSingle:
		return r != Miss
	case OutDouble:
		return r == Double || r == Bullseye
	case OutMasters:
		return r == Double || r == Triple || r == Bullseye
	default:
		return false
	}
}

// ParseOutRule parses "Single", "Double" or "Masters", case-insensitively
func ParseOutRule(s string) (OutRule, error) {
	for i, name := range outRuleNames {
		if strings.EqualFold(s, name) {
			return OutRule(i), nil
		}
	}
	return OutSingle, fmt.Errorf("unknown out rule %q", s)
}
