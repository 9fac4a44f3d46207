package game

import "dungeon-delve/internal/dungeon"

// Snapshot is a read-only copy of one expedition, sent to its session for
// rendering.
type Snapshot struct {
	Tick  uint64
	State State

	PlayerName string
	Level      int
	Experience int
	ExpToLevel int
	Health     int
	MaxHealth  int
	Attack     int
	Defense    int
	Inventory  []string

	Room    RoomView
	Log     []string
	Visited int
}

// RoomView describes the room the player is standing in.
type RoomView struct {
	Name        string
	Description string
	Kind        string
	Difficulty  int
	Boss        bool
	Exits       []dungeon.Direction
	Enemies     []EnemyView
	Loot        []string
}

// EnemyView is a read-only view of an enemy for rendering.
type EnemyView struct {
	Label     string
	Health    int
	MaxHealth int
	Behavior  string
	Cooldown  int
}

// Snapshot captures the expedition's current state.
func (e *Expedition) Snapshot(tick uint64) Snapshot {
	p := e.Player
	s := Snapshot{
		Tick:       tick,
		State:      e.state,
		PlayerName: p.Name,
		Level:      p.Level(),
		Experience: p.Experience(),
		ExpToLevel: p.ExperienceToLevel(),
		Health:     p.Health(),
		MaxHealth:  p.MaxHealth(),
		Attack:     p.AttackPower(),
		Defense:    p.Defense(),
		Log:        e.Log(),
		Visited:    e.Visited(),
		Room: RoomView{
			Name:        e.room.Name,
			Description: e.room.Description,
			Kind:        e.room.Kind.String(),
			Difficulty:  e.room.Difficulty,
			Boss:        e.room.Boss(),
			Exits:       e.room.Exits(),
		},
	}
	for _, it := range p.Inventory() {
		s.Inventory = append(s.Inventory, it.Name())
	}
	for _, c := range e.room.Encounters() {
		s.Room.Enemies = append(s.Room.Enemies, EnemyView{
			Label:     c.Label,
			Health:    c.CurrentHealth(),
			MaxHealth: c.MaxHealth(),
			Behavior:  c.Variant().String(),
			Cooldown:  c.Cooldown(),
		})
	}
	for _, it := range e.room.Items() {
		s.Room.Loot = append(s.Room.Loot, it.Name())
	}
	return s
}
