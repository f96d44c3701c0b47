// Package types holds the small value types shared between the conversion
// stages.
package types

import (
	"fmt"
	"strings"

	"github.com/suker799/ReDet-v1/pkg/geometry"
)

// Level selects one granularity of the ship class hierarchy.
type Level int

// The three granularity levels, from the single-class root to the 31-class
// fine-grained taxonomy.
const (
	L1 Level = 1
	L2 Level = 2
	L3 Level = 3
)

// String returns the lowercase level token used on the command line and in
// output directory names.
func (l Level) String() string {
	return fmt.Sprintf("l%d", int(l))
}

// Suffix returns the output directory suffix for the level, e.g. "_L2".
func (l Level) Suffix() string {
	return fmt.Sprintf("_L%d", int(l))
}

// ParseLevel parses a level token such as "l1", "L2" or "l3".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l1":
		return L1, nil
	case "l2":
		return L2, nil
	case "l3":
		return L3, nil
	}
	return 0, fmt.Errorf("unknown level %q (expected l1, l2 or l3)", s)
}

// Levels lists all levels in order.
func Levels() []Level {
	return []Level{L1, L2, L3}
}

// Object is one extracted annotation instance: its oriented polygon, the raw
// numeric class identifier from the source document and the difficulty flag.
type Object struct {
	Poly      geometry.Polygon
	ClassID   string
	Difficult int
}
