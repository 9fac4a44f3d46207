package game

import "dungeon-delve/internal/dungeon"

// Action represents a player input action.
type Action int

const (
	ActionNone Action = iota
	ActionNorth
	ActionSouth
	ActionEast
	ActionWest
	ActionFight // attack the enemy at Index
	ActionGrab  // pick up the loot at Index
	ActionUse   // use the inventory item at Index
	ActionQuit
)

// Direction maps a movement action to its compass direction.
func (a Action) Direction() (dungeon.Direction, bool) {
	switch a {
	case ActionNorth:
		return dungeon.North, true
	case ActionSouth:
		return dungeon.South, true
	case ActionEast:
		return dungeon.East, true
	case ActionWest:
		return dungeon.West, true
	}
	return 0, false
}

// InputEvent carries a player action into the game loop.
type InputEvent struct {
	PlayerID string
	Action   Action
	Index    int
}

// Player is a connected session and the expedition it is playing.
type Player struct {
	ID         string
	Name       string
	Expedition *Expedition

	moveCooldown int // ticks until the next move is accepted
}
