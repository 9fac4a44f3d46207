package dungeon

import "fmt"

// Snapshot is a serialisable description of a generated dungeon.
type Snapshot struct {
	Size     int            `json:"size"`
	Entrance string         `json:"entrance"`
	Rooms    []RoomSnapshot `json:"rooms"`
}

// RoomSnapshot describes one room and its contents.
type RoomSnapshot struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Kind        string          `json:"kind"`
	Row         int             `json:"row"`
	Col         int             `json:"col"`
	Difficulty  int             `json:"difficulty"`
	Boss        bool            `json:"boss,omitempty"`
	Exits       []string        `json:"exits"`
	Encounters  []EnemySnapshot `json:"encounters,omitempty"`
	Loot        []string        `json:"loot,omitempty"`
}

// EnemySnapshot describes one combatant.
type EnemySnapshot struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Health    int    `json:"health"`
	MaxHealth int    `json:"max_health"`
	Attack    int    `json:"attack"`
	Defense   int    `json:"defense"`
	Behavior  string `json:"behavior"`
}

// Describe lays the dungeon out and captures it row by row.
func Describe(entrance *Room) (Snapshot, error) {
	m, err := Layout(entrance)
	if err != nil {
		return Snapshot{}, fmt.Errorf("describe dungeon: %w", err)
	}

	s := Snapshot{Size: m.Size, Entrance: entrance.ID}
	for row := range m.Rooms {
		for col, r := range m.Rooms[row] {
			if r == nil {
				continue
			}
			rs := RoomSnapshot{
				ID:          r.ID,
				Name:        r.Name,
				Description: r.Description,
				Kind:        r.Kind.String(),
				Row:         row,
				Col:         col,
				Difficulty:  r.Difficulty,
				Boss:        r.Boss(),
				Exits:       []string{},
			}
			for _, d := range r.Exits() {
				rs.Exits = append(rs.Exits, d.String())
			}
			for _, c := range r.Encounters() {
				rs.Encounters = append(rs.Encounters, EnemySnapshot{
					ID:        c.ID,
					Name:      c.Label,
					Health:    c.CurrentHealth(),
					MaxHealth: c.MaxHealth(),
					Attack:    c.AttackPower(),
					Defense:   c.Defense(),
					Behavior:  c.Variant().String(),
				})
			}
			for _, it := range r.Items() {
				rs.Loot = append(rs.Loot, it.Name())
			}
			s.Rooms = append(s.Rooms, rs)
		}
	}
	return s, nil
}
