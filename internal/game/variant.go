package game

import (
	"fmt"
	"strings"
)

// Variant identifies a dart game
type Variant uint8

const (
	X01 Variant = iota
	Cricket
	CutThroat
	Tactics
	Killer
	Elimination
	Shanghai
	Micky
	AroundTheClock
	SplitScore
)

var variantNames = [...]string{
	X01:            "X01",
	Cricket:        "Cricket",
	CutThroat:      "Cut Throat",
	Tactics:        "Tactics",
	Killer:         "Killer",
	Elimination:    "Elimination",
	Shanghai:       "Shanghai",
	Micky:          "Micky Mouse",
	AroundTheClock: "Around the Clock",
	SplitScore:     "Split Score",
}

var variantAliases = map[string]Variant{
	"301": X01,
	"501": X01,
	"701": X01,
	"atc": AroundTheClock,
}

func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return fmt.Sprintf("Variant(%d)", uint8(v))
}

// Variants returns all known variants in registry order
func Variants() []Variant {
	all := make([]Variant, len(variantNames))
	for i := range variantNames {
		all[i] = Variant(i)
	}
	return all
}

// ParseVariant parses a variant name. Case, spaces, dashes and underscores
// are ignored, so "cut-throat" and "CutThroat" are equivalent.
func ParseVariant(s string) (Variant, error) {
	key := normalizeName(s)
	if v, ok := variantAliases[key]; ok {
		return v, nil
	}
	for i, name := range variantNames {
		if normalizeName(name) == key {
			return Variant(i), nil
		}
	}
	if key == "micky" || key == "mickey" || key == "mickeymouse" {
		return Micky, nil
	}
	return X01, fmt.Errorf("unknown game variant %q", s)
}

func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
