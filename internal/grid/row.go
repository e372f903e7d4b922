package grid

import (
	"fmt"
	"strings"
)

// Row is one horizontal slice of the map.
//
// Invariant: Walls is non-empty; Walls[0] describes column Start.
type Row struct {
	// Start is the 1-based column of the first occupied cell.
	Start int
	// Walls holds one flag per occupied cell; true means wall.
	Walls []bool
}

// End returns the 1-based column of the last occupied cell.
//
// Precondition: r.Walls must be non-empty.
func (r Row) End() int {
	return r.Start + len(r.Walls) - 1
}

// Contains reports whether column x lies within [Start, End].
func (r Row) Contains(x int) bool {
	return x >= r.Start && x <= r.End()
}

// HasWall reports whether column x is a wall.
//
// Precondition: r.Contains(x). Panics otherwise.
func (r Row) HasWall(x int) bool {
	if !r.Contains(x) {
		panic(fmt.Sprintf("grid: HasWall column %d outside row [%d,%d]", x, r.Start, r.End()))
	}
	return r.Walls[x-r.Start]
}

// parseRow converts one line of map text into a Row.
//
// Postcondition: Returns a Row with non-empty Walls, or an error wrapping ErrMalformedMap.
func parseRow(line string) (Row, error) {
	content := strings.TrimLeft(line, " ")
	start := len(line) - len(content) + 1
	content = strings.TrimRight(content, " ")
	if content == "" {
		return Row{}, fmt.Errorf("%w: row has no tiles", ErrMalformedMap)
	}

	walls := make([]bool, 0, len(content))
	for i, c := range content {
		switch c {
		case '.':
			walls = append(walls, false)
		case '#':
			walls = append(walls, true)
		default:
			return Row{}, fmt.Errorf("%w: unexpected character %q at column %d", ErrMalformedMap, c, start+i)
		}
	}
	return Row{Start: start, Walls: walls}, nil
}

// String renders r back into map text.
func (r Row) String() string {
	var b strings.Builder
	b.Grow(r.End())
	b.WriteString(strings.Repeat(" ", r.Start-1))
	for _, wall := range r.Walls {
		if wall {
			b.WriteByte('#')
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}
