package game

import (
	"errors"
	"fmt"

	"dungeon-delve/internal/combat"
	"dungeon-delve/internal/dungeon"
)

// State is the lifecycle stage of an expedition.
type State int

const (
	StatePlaying State = iota
	StateGameOver
	StateVictory
)

func (s State) String() string {
	switch s {
	case StateGameOver:
		return "game over"
	case StateVictory:
		return "victory"
	default:
		return "playing"
	}
}

var (
	ErrExpeditionOver = errors.New("expedition is over")
	ErrNoSuchTarget   = errors.New("no such target")
	ErrNoExit         = errors.New("no exit that way")
)

const maxLogLines = 6

// Config controls how each expedition's dungeon is generated.
type Config struct {
	DungeonSize    int
	BaseDifficulty int
	Seed           int64 // 0 picks a time-based seed
}

// DefaultConfig is a 5x5 dungeon starting at tier 1.
var DefaultConfig = Config{DungeonSize: 5, BaseDifficulty: 1}

// MaxDungeonSize bounds the grid a server will generate per player.
const MaxDungeonSize = 32

// Validate checks that DungeonSize is within [1, MaxDungeonSize].
func (c Config) Validate() error {
	if c.DungeonSize < 1 || c.DungeonSize > MaxDungeonSize {
		return fmt.Errorf("dungeon size %d: must be between 1 and %d", c.DungeonSize, MaxDungeonSize)
	}
	return nil
}

// Expedition is one player's run through one generated dungeon.
type Expedition struct {
	Player *combat.PlayerState

	entrance *dungeon.Room
	room     *dungeon.Room
	src      combat.Source
	state    State
	log      []string
	visited  map[*dungeon.Room]bool
}

// NewExpedition generates a dungeon from cfg and places player at its entrance.
func NewExpedition(player *combat.PlayerState, cfg Config, src combat.Source) (*Expedition, error) {
	entrance, err := dungeon.Generate(cfg.DungeonSize, cfg.BaseDifficulty, src)
	if err != nil {
		return nil, fmt.Errorf("generate dungeon: %w", err)
	}
	e := &Expedition{
		Player:   player,
		entrance: entrance,
		room:     entrance,
		src:      src,
		visited:  map[*dungeon.Room]bool{entrance: true},
	}
	e.addLog(fmt.Sprintf("%s enters %s.", player.Name, entrance.Name))
	return e, nil
}

// Room returns the room the player is standing in.
func (e *Expedition) Room() *dungeon.Room { return e.room }

// Entrance returns the room the dungeon was entered from.
func (e *Expedition) Entrance() *dungeon.Room { return e.entrance }

// State returns whether the run is ongoing, lost or won.
func (e *Expedition) State() State { return e.state }

// Visited returns how many distinct rooms the player has entered.
func (e *Expedition) Visited() int { return len(e.visited) }

// Log returns a copy of the recent battle log, oldest first.
func (e *Expedition) Log() []string {
	out := make([]string, len(e.log))
	copy(out, e.log)
	return out
}

// addLog appends a message to the log, keeping it trimmed.
func (e *Expedition) addLog(msg string) {
	e.log = append(e.log, msg)
	if len(e.log) > maxLogLines {
		e.log = e.log[len(e.log)-maxLogLines:]
	}
}

// Move walks through the exit in direction d.
func (e *Expedition) Move(d dungeon.Direction) error {
	if e.state != StatePlaying {
		return ErrExpeditionOver
	}
	if !d.Valid() {
		return &dungeon.InvalidDirectionError{Token: d.String()}
	}
	next := e.room.Neighbor(d)
	if next == nil {
		return ErrNoExit
	}
	e.room = next
	if !e.visited[next] {
		e.visited[next] = true
		e.addLog(fmt.Sprintf("You enter %s.", next.Name))
	}
	return nil
}

// Fight runs one exchange against the enemy at index in the current room.
// Defeated enemies leave the room; defeating the boss wins the expedition.
func (e *Expedition) Fight(index int) (combat.ExchangeOutcome, error) {
	if e.state != StatePlaying {
		return combat.ExchangeOutcome{}, ErrExpeditionOver
	}
	enemies := e.room.Encounters()
	if index < 0 || index >= len(enemies) {
		return combat.ExchangeOutcome{}, ErrNoSuchTarget
	}

	out := combat.ResolveExchange(e.Player, enemies[index], e.src)
	for _, line := range out.Log {
		e.addLog(line)
	}

	switch {
	case out.PlayerDefeated:
		e.state = StateGameOver
	case out.Result == combat.OutcomeDefeated:
		e.room.RemoveDefeated()
		if e.room.Boss() && e.room.Cleared() {
			e.state = StateVictory
			e.addLog("The dungeon falls silent. Victory!")
		}
	}
	return out, nil
}

// Take moves the loot at index from the room into the player's inventory.
func (e *Expedition) Take(index int) (combat.Item, error) {
	if e.state != StatePlaying {
		return nil, ErrExpeditionOver
	}
	it, ok := e.room.TakeItem(index)
	if !ok {
		return nil, ErrNoSuchTarget
	}
	e.Player.AddItem(it)
	e.addLog(fmt.Sprintf("Picked up %s.", it.Name()))
	return it, nil
}

// Use applies the inventory item at index. It reports whether the item had
// an effect.
func (e *Expedition) Use(index int) (bool, error) {
	if e.state != StatePlaying {
		return false, ErrExpeditionOver
	}
	inv := e.Player.Inventory()
	if index < 0 || index >= len(inv) {
		return false, ErrNoSuchTarget
	}
	used := e.Player.UseItem(index)
	if used {
		e.addLog(fmt.Sprintf("Used %s.", inv[index].Name()))
	} else {
		e.addLog(fmt.Sprintf("%s has no effect.", inv[index].Name()))
	}
	return used, nil
}

// Tick advances enemy cooldowns in the current room.
func (e *Expedition) Tick() {
	if e.state != StatePlaying {
		return
	}
	e.room.Tick()
}
