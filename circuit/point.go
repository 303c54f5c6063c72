// Package circuit links junction boxes in 3-D space into circuits by
// repeatedly connecting the closest pair of boxes, tracking which boxes share
// a circuit with a disjoint-set structure.
package circuit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedPoint is returned (wrapped) by ParsePoints for a line that is not
// three comma-separated integers.
var ErrMalformedPoint = errors.New("malformed point")

// Point is a junction box. ID is its index in the parsed input.
type Point struct {
	ID      int
	X, Y, Z int
}

// DistSq returns the squared euclidean distance between p and q.
func (p Point) DistSq(q Point) int64 {
	dx := int64(p.X) - int64(q.X)
	dy := int64(p.Y) - int64(q.Y)
	dz := int64(p.Z) - int64(q.Z)
	return dx*dx + dy*dy + dz*dz
}

func (p Point) String() string {
	return fmt.Sprintf("%d:(%d,%d,%d)", p.ID, p.X, p.Y, p.Z)
}

// ParsePoints parses lines of the form "x,y,z". Blank lines are skipped and do
// not consume an ID.
func ParsePoints(lines []string) ([]Point, error) {
	var pts []Point
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		p, err := parsePoint(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		p.ID = len(pts)
		pts = append(pts, p)
	}
	return pts, nil
}

func parsePoint(line string) (Point, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return Point{}, fmt.Errorf("%w: %q has %d fields, want 3", ErrMalformedPoint, line, len(fields))
	}
	var xyz [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Point{}, fmt.Errorf("%w: %q: %v", ErrMalformedPoint, line, err)
		}
		xyz[i] = v
	}
	return Point{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}
