package grid

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedMap is returned when map text contains anything other than
	// leading spaces, '.' and '#', or when a row or the whole map is empty.
	ErrMalformedMap = errors.New("grid: malformed map")
	// ErrNoWrapTarget is returned when a vertical wrap finds no row that
	// contains the column being left.
	ErrNoWrapTarget = errors.New("grid: no wrap target")
)

// Maze is an ordered sequence of rows with independent column extents.
// Row y (1-based) is Rows[y-1].
type Maze struct {
	Rows []Row
}

// ParseMaze parses a block of map text, one row per line.
//
// Precondition: s is the map block only, without the path line.
// Postcondition: Returns a Maze with at least one row, or an error wrapping ErrMalformedMap.
func ParseMaze(s string) (*Maze, error) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedMap)
	}

	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	rows := make([]Row, 0, len(lines))
	for i, line := range lines {
		row, err := parseRow(line)
		if err != nil {
			return nil, fmt.Errorf("parsing row %d: %w", i+1, err)
		}
		rows = append(rows, row)
	}
	return &Maze{Rows: rows}, nil
}

// RowCount returns the number of rows.
func (m *Maze) RowCount() int {
	return len(m.Rows)
}

// Row returns row y.
//
// Precondition: 1 <= y <= RowCount(). Panics otherwise.
func (m *Maze) Row(y int) Row {
	if y < 1 || y > len(m.Rows) {
		panic(fmt.Sprintf("grid: row %d outside [1,%d]", y, len(m.Rows)))
	}
	return m.Rows[y-1]
}

// Start returns the initial position: the first column of row 1.
//
// Precondition: the maze has at least one row.
func (m *Maze) Start() Position {
	return Position{X: m.Row(1).Start, Y: 1}
}

// IsValid reports whether (x, y) is an on-map cell.
func (m *Maze) IsValid(x, y int) bool {
	return y >= 1 && y <= len(m.Rows) && m.Rows[y-1].Contains(x)
}

// HasWall reports whether the cell at p is a wall.
//
// Precondition: m.IsValid(p.X, p.Y). Panics otherwise.
func (m *Maze) HasWall(p Position) bool {
	return m.Row(p.Y).HasWall(p.X)
}

// Next returns the cell reached by one step from p in direction d, wrapping
// across the jagged edge when the naive neighbor is off-map.
//
// Precondition: m.IsValid(p.X, p.Y).
// Postcondition: On success the returned position is valid.
func (m *Maze) Next(p Position, d Direction) (Position, error) {
	n := p.Step(d)
	if m.IsValid(n.X, n.Y) {
		return n, nil
	}
	return m.Wrap(p, d)
}

// Wrap returns the cell an agent re-enters at after leaving the map from p
// in direction d.
//
// Vertical moves re-enter at the opposite end of column p.X: moving Up lands
// on the last row containing the column, moving Down on the first. Horizontal
// moves re-enter at the opposite end of row p.Y.
//
// Precondition: m.IsValid(p.X, p.Y).
// Postcondition: Returns a valid position, or an error wrapping ErrNoWrapTarget.
func (m *Maze) Wrap(p Position, d Direction) (Position, error) {
	if d.IsVertical() {
		y, ok := m.columnEdge(p.X, d == Up)
		if !ok {
			return Position{}, fmt.Errorf("%w: column %d has no rows when leaving %s moving %s",
				ErrNoWrapTarget, p.X, p, d)
		}
		return Position{X: p.X, Y: y}, nil
	}

	row := m.Row(p.Y)
	if d == Left {
		return Position{X: row.End(), Y: p.Y}, nil
	}
	return Position{X: row.Start, Y: p.Y}, nil
}

// columnEdge scans the rows containing column x in row order and returns the
// last one when last is true, otherwise the first.
func (m *Maze) columnEdge(x int, last bool) (int, bool) {
	found := 0
	for i, row := range m.Rows {
		if !row.Contains(x) {
			continue
		}
		found = i + 1
		if !last {
			break
		}
	}
	return found, found != 0
}

// String renders the maze back into map text, one row per line.
func (m *Maze) String() string {
	var b strings.Builder
	for i, row := range m.Rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(row.String())
	}
	return b.String()
}
