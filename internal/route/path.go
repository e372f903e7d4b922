// Package route parses the compact move language into an ordered path.
package route

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedMove is returned when the instruction string contains an empty
// or non-positive step count, or a character other than digits, 'L' and 'R'.
var ErrMalformedMove = errors.New("route: malformed move")

// Kind tags a Move.
type Kind int

// Move kinds.
const (
	Forward Kind = iota
	TurnLeft
	TurnRight
)

// Move is one instruction: advance Steps tiles, or turn in place.
//
// Invariant: Steps > 0 when Kind is Forward, and 0 otherwise.
type Move struct {
	Kind  Kind
	Steps int
}

// Advance returns a Forward move of n tiles.
//
// Precondition: n > 0. Panics otherwise.
func Advance(n int) Move {
	if n <= 0 {
		panic(fmt.Sprintf("route: Advance called with n=%d", n))
	}
	return Move{Kind: Forward, Steps: n}
}

// Left and Right are the two turn moves.
var (
	Left  = Move{Kind: TurnLeft}
	Right = Move{Kind: TurnRight}
)

// String renders m in the compact instruction form.
func (m Move) String() string {
	switch m.Kind {
	case Forward:
		return strconv.Itoa(m.Steps)
	case TurnLeft:
		return "L"
	case TurnRight:
		return "R"
	default:
		return fmt.Sprintf("move(%d)", int(m.Kind))
	}
}

// Path is an ordered sequence of moves in traversal order.
type Path []Move

// String renders p back into the compact instruction form.
func (p Path) String() string {
	var b strings.Builder
	for _, m := range p {
		b.WriteString(m.String())
	}
	return b.String()
}

// Steps returns the total number of tiles requested by all Forward moves.
// The sum is unsigned so counts near math.MaxInt cannot wrap negative.
func (p Path) Steps() uint64 {
	var total uint64
	for _, m := range p {
		total += uint64(m.Steps)
	}
	return total
}

// ParsePath parses an instruction string such as "10R5L5R10L4R5L5".
//
// Every turn letter must be preceded by a step count, so the string always
// starts with digits. A trailing turn letter is allowed.
//
// Precondition: s is a single line; surrounding whitespace is trimmed.
// Postcondition: Returns moves in input order, or an error wrapping ErrMalformedMove.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty path", ErrMalformedMove)
	}

	var path Path
	for offset := 0; offset < len(s); {
		end := strings.IndexAny(s[offset:], "LR")
		run := s[offset:]
		if end >= 0 {
			run = s[offset : offset+end]
		}

		n, err := parseCount(run)
		if err != nil {
			return nil, fmt.Errorf("%w: at offset %d: %v", ErrMalformedMove, offset, err)
		}
		path = append(path, Advance(n))

		if end < 0 {
			break
		}
		offset += end
		if s[offset] == 'L' {
			path = append(path, Left)
		} else {
			path = append(path, Right)
		}
		offset++
	}
	return path, nil
}

// parseCount parses a run of decimal digits into a positive step count.
func parseCount(run string) (int, error) {
	if run == "" {
		return 0, errors.New("missing step count")
	}
	for i := 0; i < len(run); i++ {
		if run[i] < '0' || run[i] > '9' {
			return 0, fmt.Errorf("unexpected character %q", run[i])
		}
	}
	n, err := strconv.Atoi(run)
	if err != nil {
		return 0, fmt.Errorf("invalid step count %q: %w", run, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("step count %q must be >= 1", run)
	}
	return n, nil
}
