package dungeon

import (
	"errors"
	"fmt"
)

// Map is a grid view of a dungeon reconstructed from its room links.
type Map struct {
	Size  int
	Rooms [][]*Room // [row][col]
}

// At returns the room at row, col or nil when out of range.
func (m *Map) At(row, col int) *Room {
	if row < 0 || col < 0 || row >= m.Size || col >= m.Size {
		return nil
	}
	return m.Rooms[row][col]
}

// Position finds a room's row and column.
func (m *Map) Position(r *Room) (row, col int, ok bool) {
	for y, line := range m.Rooms {
		for x, room := range line {
			if room == r {
				return y, x, true
			}
		}
	}
	return 0, 0, false
}

type cell struct{ row, col int }

var step = [4]cell{
	North: {-1, 0},
	South: {1, 0},
	East:  {0, 1},
	West:  {0, -1},
}

// Layout walks the room graph from the entrance and places every reachable
// room on a square grid, entrance at 0,0.
func Layout(entrance *Room) (*Map, error) {
	if entrance == nil {
		return nil, errors.New("nil entrance")
	}

	pos := map[*Room]cell{entrance: {0, 0}}
	taken := map[cell]*Room{{0, 0}: entrance}
	queue := []*Room{entrance}
	maxRow, maxCol := 0, 0

	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]
		at := pos[r]
		for _, d := range Directions {
			next := r.Neighbor(d)
			if next == nil {
				continue
			}
			want := cell{at.row + step[d].row, at.col + step[d].col}
			if want.row < 0 || want.col < 0 {
				return nil, fmt.Errorf("room %q leads %s off the grid", r.Name, d)
			}
			if seen, ok := pos[next]; ok {
				if seen != want {
					return nil, fmt.Errorf("room %q reached at both %d,%d and %d,%d", next.Name, seen.row, seen.col, want.row, want.col)
				}
				continue
			}
			if other, ok := taken[want]; ok {
				return nil, fmt.Errorf("rooms %q and %q overlap at %d,%d", other.Name, next.Name, want.row, want.col)
			}
			pos[next] = want
			taken[want] = next
			maxRow = max(maxRow, want.row)
			maxCol = max(maxCol, want.col)
			queue = append(queue, next)
		}
	}

	size := max(maxRow, maxCol) + 1
	m := &Map{Size: size, Rooms: make([][]*Room, size)}
	for row := range m.Rooms {
		m.Rooms[row] = make([]*Room, size)
	}
	for r, c := range pos {
		m.Rooms[c.row][c.col] = r
	}
	return m, nil
}

// Validate checks that a dungeon is a complete square grid with symmetric
// links and exactly one boss room, in the far corner.
func Validate(entrance *Room) error {
	m, err := Layout(entrance)
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}

	bosses := 0
	for row := 0; row < m.Size; row++ {
		for col := 0; col < m.Size; col++ {
			r := m.At(row, col)
			if r == nil {
				return fmt.Errorf("missing room at %d,%d", row, col)
			}
			for _, d := range Directions {
				next := r.Neighbor(d)
				want := m.At(row+step[d].row, col+step[d].col)
				if next != want {
					return fmt.Errorf("room %d,%d: %s exit does not match grid", row, col, d)
				}
				if next != nil && next.Neighbor(d.Opposite()) != r {
					return fmt.Errorf("room %d,%d: %s link is one-way", row, col, d)
				}
			}
			if r.Boss() {
				bosses++
				if row != m.Size-1 || col != m.Size-1 {
					return fmt.Errorf("boss room at %d,%d, want %d,%d", row, col, m.Size-1, m.Size-1)
				}
			}
		}
	}
	if bosses != 1 {
		return fmt.Errorf("found %d boss rooms, want 1", bosses)
	}
	return nil
}
