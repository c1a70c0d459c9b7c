package darts

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// NoCheckout is returned when no finish exists within the darts left
const NoCheckout = "-"

//go:embed checkout_paths.yaml
var checkoutPathsYAML []byte

// checkoutPaths maps a score to its curated double-out finishes, best first
var checkoutPaths = mustLoadCheckoutPaths(checkoutPathsYAML)

// oneDart maps every score a single dart can make to its label
var oneDart = buildOneDart()

// setupOrder is the search order for setup darts: big trebles first, then
// the bull, doubles, outer bull and singles.
var setupOrder = buildSetupOrder()

var bogeyNumbers = map[int]bool{159: true, 162: true, 163: true, 165: true, 166: true, 168: true, 169: true}

// IsBogey reports whether a score under 171 has no three dart double-out finish
func IsBogey(score int) bool {
	return bogeyNumbers[score]
}

func mustLoadCheckoutPaths(data []byte) map[int][]string {
	var paths map[int][]string
	if err := yaml.Unmarshal(data, &paths); err != nil {
		panic(fmt.Sprintf("darts: invalid checkout table: %v", err))
	}
	return paths
}

func buildOneDart() map[int]string {
	m := make(map[int]string, 64)
	for seg := 1; seg <= 20; seg++ {
		m[3*seg] = NewThrow(Triple, seg).Label()
	}
	for seg := 1; seg <= 20; seg++ {
		m[2*seg] = NewThrow(Double, seg).Label()
	}
	m[50] = NewThrow(Bullseye, 50).Label()
	m[25] = NewThrow(Bull, 25).Label()
	// Singles last so they win ties.
	for seg := 1; seg <= 20; seg++ {
		m[seg] = NewThrow(Single, seg).Label()
	}
	return m
}

func buildSetupOrder() []Throw {
	order := make([]Throw, 0, 62)
	for seg := 20; seg >= 1; seg-- {
		order = append(order, NewThrow(Triple, seg))
	}
	order = append(order, NewThrow(Bullseye, 50))
	for seg := 20; seg >= 1; seg-- {
		order = append(order, NewThrow(Double, seg))
	}
	order = append(order, NewThrow(Bull, 25))
	for seg := 20; seg >= 1; seg-- {
		order = append(order, NewThrow(Single, seg))
	}
	return order
}

// Checkout returns a comma separated finishing path for score, playable with
// dartsLeft darts under the given out rule, or NoCheckout. preferredDouble
// names the double to finish on when possible (1-20, or 25 for the
// bullseye); 0 means no preference.
func Checkout(score int, out OutRule, dartsLeft int, preferredDouble int) string {
	if !reachable(score, out, dartsLeft) {
		return NoCheckout
	}
	if out == OutSingle {
		return singleOut(score, dartsLeft)
	}
	return doubleOut(score, dartsLeft, preferredDouble)
}

func reachable(score int, out OutRule, dartsLeft int) bool {
	if score < 2 || dartsLeft < 1 || dartsLeft > 3 {
		return false
	}
	if out == OutSingle {
		switch dartsLeft {
		case 1:
			return score <= 20 || score == 25
		case 2:
			return score <= 120
		default:
			return score <= 180
		}
	}
	if dartsLeft == 3 && IsBogey(score) {
		return false
	}
	switch dartsLeft {
	case 1:
		return score <= 50
	case 2:
		return score <= 110
	default:
		return score <= 170
	}
}

func singleOut(score, dartsLeft int) string {
	if label, ok := oneDart[score]; ok {
		return label
	}
	if dartsLeft < 2 {
		return NoCheckout
	}
	if path, ok := twoDarts(score); ok {
		return path
	}
	if dartsLeft < 3 {
		return NoCheckout
	}
	if paths := curated(score, dartsLeft); len(paths) > 0 {
		return paths[0]
	}
	for _, first := range setupOrder {
		if first.Points() >= score {
			continue
		}
		if rest, ok := twoDarts(score - first.Points()); ok {
			return first.Label() + ", " + rest
		}
	}
	return NoCheckout
}

func doubleOut(score, dartsLeft, preferredDouble int) string {
	paths := curated(score, dartsLeft)
	if preferredDouble != 0 {
		if path, ok := pathToDouble(score, preferredDouble, dartsLeft); ok {
			if len(paths) == 0 || pathLength(path) <= pathLength(paths[0]) {
				return path
			}
		}
		finish := doubleLabel(preferredDouble)
		for _, p := range paths {
			if lastLabel(p) == finish {
				return p
			}
		}
	}
	if len(paths) > 0 {
		return paths[0]
	}
	return NoCheckout
}

// curated returns the table entries for score that fit within dartsLeft
func curated(score, dartsLeft int) []string {
	var fit []string
	for _, p := range checkoutPaths[score] {
		if pathLength(p) <= dartsLeft {
			fit = append(fit, p)
		}
	}
	return fit
}

// twoDarts finds a greedy two dart path for score using any rings
func twoDarts(score int) (string, bool) {
	for _, first := range setupOrder {
		v := first.Points()
		if v >= score {
			continue
		}
		if label, ok := oneDart[score-v]; ok {
			return first.Label() + ", " + label, true
		}
	}
	return "", false
}

func pathToDouble(score, double, dartsLeft int) (string, bool) {
	finish := doubleLabel(double)
	if finish == "" {
		return "", false
	}
	setup := score - doubleValue(double)
	switch {
	case setup < 0:
		return "", false
	case setup == 0:
		return finish, true
	}
	if dartsLeft >= 2 {
		if label, ok := oneDart[setup]; ok {
			return label + ", " + finish, true
		}
	}
	if dartsLeft >= 3 {
		if path, ok := twoDarts(setup); ok {
			return path + ", " + finish, true
		}
	}
	return "", false
}

func doubleLabel(double int) string {
	switch {
	case double == 25 || double == 50:
		return "BE"
	case double >= 1 && double <= 20:
		return NewThrow(Double, double).Label()
	default:
		return ""
	}
}

func doubleValue(double int) int {
	if double == 25 || double == 50 {
		return 50
	}
	return 2 * double
}

func pathLength(path string) int {
	return strings.Count(path, ",") + 1
}

func lastLabel(path string) string {
	if i := strings.LastIndex(path, ","); i >= 0 {
		return strings.TrimSpace(path[i+1:])
	}
	return strings.TrimSpace(path)
}

// ParsePath parses a comma separated path such as "T20, T20, BE"
func ParsePath(path string) ([]Throw, error) {
	if path == NoCheckout {
		return nil, nil
	}
	parts := strings.Split(path, ",")
	throws := make([]Throw, 0, len(parts))
	for _, part := range parts {
		t, err := ParseLabel(part)
		if err != nil {
			return nil, fmt.Errorf("parse path %q: %w", path, err)
		}
		throws = append(throws, t)
	}
	return throws, nil
}

// PathScore returns the total points of a list of throws
func PathScore(throws []Throw) int {
	total := 0
	for _, t := range throws {
		total += t.Points()
	}
	return total
}
