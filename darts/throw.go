package darts

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Point is a board coordinate recorded alongside a throw
type Point struct {
	X float64
	Y float64
}

// Throw is a single dart as recorded by the scorer. Throws are values and
// are never modified once created.
type Throw struct {
	Ring    Ring
	Segment int
	Coords  *Point
}

// NewThrow creates a throw, normalising the segment of the rings that have
// only one valid value.
func NewThrow(ring Ring, segment int) Throw {
	switch ring {
	case Miss:
		segment = 0
	case Bull:
		segment = 25
	case Bullseye:
		segment = 50
	}
	return Throw{Ring: ring, Segment: segment}
}

// WithCoords returns a copy of t carrying the given board coordinates
func (t Throw) WithCoords(x, y float64) Throw {
	t.Coords = &Point{X: x, Y: y}
	return t
}

// Points returns the score value of the throw
func (t Throw) Points() int {
	switch t.Ring {
	case Bullseye:
		return 50
	case Bull:
		return 25
	case Single, Double, Triple:
		return t.Ring.Multiplier() * t.Segment
	default:
		return 0
	}
}

// Validate checks that ring and segment describe a real spot on the board
func (t Throw) Validate() error {
	switch t.Ring {
	case Miss:
		if t.Segment != 0 {
			return fmt.Errorf("miss with segment %d", t.Segment)
		}
	case Single, Double, Triple:
		if t.Segment < 1 || t.Segment > 20 {
			return fmt.Errorf("%s with segment %d outside 1-20", t.Ring, t.Segment)
		}
	case Bull:
		if t.Segment != 25 {
			return fmt.Errorf("bull with segment %d", t.Segment)
		}
	case Bullseye:
		if t.Segment != 50 {
			return fmt.Errorf("bullseye with segment %d", t.Segment)
		}
	default:
		return fmt.Errorf("invalid ring %d", t.Ring)
	}
	return nil
}

// Label returns the short checkout notation: "20", "D16", "T19", "25", "BE" or "M"
func (t Throw) Label() string {
	switch t.Ring {
	case Single:
		return strconv.Itoa(t.Segment)
	case Double:
		return "D" + strconv.Itoa(t.Segment)
	case Triple:
		return "T" + strconv.Itoa(t.Segment)
	case Bull:
		return "25"
	case Bullseye:
		return "BE"
	default:
		return "M"
	}
}

func (t Throw) String() string {
	return t.Label()
}

// ParseLabel parses the short notation produced by Label. It also accepts an
// "S" prefix for singles and "B", "BULL" or "BULLSEYE" for the bullseye.
func ParseLabel(s string) (Throw, error) {
	label := strings.ToUpper(strings.TrimSpace(s))
	switch label {
	case "":
		return Throw{}, fmt.Errorf("empty throw label")
	case "M", "MISS", "0":
		return NewThrow(Miss, 0), nil
	case "BE", "B", "BULL", "BULLSEYE", "50", "DB":
		return NewThrow(Bullseye, 50), nil
	case "25", "SB", "OB":
		return NewThrow(Bull, 25), nil
	}

	ring := Single
	digits := label
	switch label[0] {
	case 'S':
		digits = label[1:]
	case 'D':
		ring, digits = Double, label[1:]
	case 'T':
		ring, digits = Triple, label[1:]
	}

	segment, err := strconv.Atoi(digits)
	if err != nil {
		return Throw{}, fmt.Errorf("invalid throw label %q", s)
	}
	t := NewThrow(ring, segment)
	if err := t.Validate(); err != nil {
		return Throw{}, fmt.Errorf("invalid throw label %q: %w", s, err)
	}
	return t, nil
}

// MarshalJSON encodes the throw as a [ring, segment, coords] tuple
func (t Throw) MarshalJSON() ([]byte, error) {
	var coords any
	if t.Coords != nil {
		coords = [2]float64{t.Coords.X, t.Coords.Y}
	}
	return json.Marshal([3]any{t.Ring.String(), t.Segment, coords})
}

// UnmarshalJSON decodes the [ring, segment, coords] tuple form
func (t *Throw) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("throw: %w", err)
	}
	if len(raw) < 2 || len(raw) > 3 {
		return fmt.Errorf("throw: expected 2 or 3 elements, got %d", len(raw))
	}

	var ringName string
	if err := json.Unmarshal(raw[0], &ringName); err != nil {
		return fmt.Errorf("throw ring: %w", err)
	}
	ring, err := ParseRing(ringName)
	if err != nil {
		return fmt.Errorf("throw: %w", err)
	}

	var segment int
	if err := json.Unmarshal(raw[1], &segment); err != nil {
		return fmt.Errorf("throw segment: %w", err)
	}

	decoded := Throw{Ring: ring, Segment: segment}
	if len(raw) == 3 {
		var coords []float64
		if err := json.Unmarshal(raw[2], &coords); err != nil {
			return fmt.Errorf("throw coords: %w", err)
		}
		if len(coords) == 2 {
			decoded.Coords = &Point{X: coords[0], Y: coords[1]}
		}
	}
	*t = decoded
	return nil
}
