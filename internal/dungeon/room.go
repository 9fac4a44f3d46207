package dungeon

import (
	"fmt"
	"strings"

	"dungeon-delve/internal/combat"
)

// Direction is one of the four compass exits of a room.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every valid direction in display order.
var Directions = [4]Direction{North, South, East, West}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the four compass directions.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// Opposite returns the reverse direction. Invalid directions return themselves.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// InvalidDirectionError is returned when a direction token is not one of
// north, south, east or west.
type InvalidDirectionError struct {
	Token string
}

func (e *InvalidDirectionError) Error() string {
	return fmt.Sprintf("invalid direction %q", e.Token)
}

// ParseDirection accepts the full names and their single-letter forms,
// case-insensitively.
func ParseDirection(token string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "north", "n":
		return North, nil
	case "south", "s":
		return South, nil
	case "east", "e":
		return East, nil
	case "west", "w":
		return West, nil
	}
	return 0, &InvalidDirectionError{Token: token}
}

// Kind is the cosmetic flavour of a room.
type Kind int

const (
	KindCave Kind = iota
	KindDungeon
	KindCastle
)

func (k Kind) String() string {
	switch k {
	case KindCave:
		return "cave"
	case KindDungeon:
		return "dungeon"
	case KindCastle:
		return "castle"
	default:
		return "unknown"
	}
}

// Room is a node of the dungeon graph. Neighbor links are only changed
// through Connect so that every link stays symmetric.
type Room struct {
	ID          string
	Name        string
	Description string
	Kind        Kind
	Difficulty  int

	neighbors  [4]*Room
	encounters []*combat.Combatant
	items      []combat.Item
	boss       bool
}

// NewRoom creates an empty, unlinked room.
func NewRoom(id, name, description string, kind Kind, difficulty int) *Room {
	return &Room{
		ID:          id,
		Name:        name,
		Description: description,
		Kind:        kind,
		Difficulty:  difficulty,
	}
}

// Connect links r to other in direction d and other back to r in the
// opposite direction. Any room previously linked on either side loses its
// reverse link. A nil other detaches that side. An invalid direction leaves
// both rooms unchanged.
func (r *Room) Connect(d Direction, other *Room) error {
	if !d.Valid() {
		return &InvalidDirectionError{Token: d.String()}
	}
	back := d.Opposite()

	if old := r.neighbors[d]; old != nil && old.neighbors[back] == r {
		old.neighbors[back] = nil
	}
	if other != nil {
		if old := other.neighbors[back]; old != nil && old.neighbors[d] == other {
			old.neighbors[d] = nil
		}
		other.neighbors[back] = r
	}
	r.neighbors[d] = other
	return nil
}

// North returns the room to the north, or nil.
func (r *Room) North() *Room { return r.neighbors[North] }

// South returns the room to the south, or nil.
func (r *Room) South() *Room { return r.neighbors[South] }

// East returns the room to the east, or nil.
func (r *Room) East() *Room { return r.neighbors[East] }

// West returns the room to the west, or nil.
func (r *Room) West() *Room { return r.neighbors[West] }

// Neighbor returns the room in direction d, or nil.
func (r *Room) Neighbor(d Direction) *Room {
	if !d.Valid() {
		return nil
	}
	return r.neighbors[d]
}

// Exits lists the directions that lead somewhere.
func (r *Room) Exits() []Direction {
	var out []Direction
	for _, d := range Directions {
		if r.neighbors[d] != nil {
			out = append(out, d)
		}
	}
	return out
}

// Encounters returns a copy of the combatants present in the room.
func (r *Room) Encounters() []*combat.Combatant {
	out := make([]*combat.Combatant, len(r.encounters))
	copy(out, r.encounters)
	return out
}

// Items returns a copy of the loot lying in the room.
func (r *Room) Items() []combat.Item {
	out := make([]combat.Item, len(r.items))
	copy(out, r.items)
	return out
}

// AddEncounter places a combatant in the room.
func (r *Room) AddEncounter(c *combat.Combatant) { r.encounters = append(r.encounters, c) }

// AddItem drops an item in the room.
func (r *Room) AddItem(it combat.Item) { r.items = append(r.items, it) }

// TakeItem removes and returns the item at index.
func (r *Room) TakeItem(index int) (combat.Item, bool) {
	if index < 0 || index >= len(r.items) {
		return nil, false
	}
	it := r.items[index]
	r.items = append(r.items[:index], r.items[index+1:]...)
	return it, true
}

// RemoveDefeated drops every combatant at 0 health and returns them.
func (r *Room) RemoveDefeated() []*combat.Combatant {
	var gone []*combat.Combatant
	alive := r.encounters[:0]
	for _, c := range r.encounters {
		if c.Alive() {
			alive = append(alive, c)
		} else {
			gone = append(gone, c)
		}
	}
	clear(r.encounters[len(alive):])
	r.encounters = alive
	return gone
}

// Cleared reports whether no living combatant remains.
func (r *Room) Cleared() bool {
	for _, c := range r.encounters {
		if c.Alive() {
			return false
		}
	}
	return true
}

// Tick advances every combatant's per-update state (heavy attack cooldowns).
func (r *Room) Tick() {
	for _, c := range r.encounters {
		c.Tick()
	}
}

// Boss reports whether this is the boss room.
func (r *Room) Boss() bool {
	return r.boss
}
