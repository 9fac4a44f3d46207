package dungeon

import (
	"fmt"

	"dungeon-delve/internal/combat"
)

// InvalidGenerationParameterError is returned when Generate is asked for a
// grid smaller than 1x1.
type InvalidGenerationParameterError struct {
	Size int
}

func (e *InvalidGenerationParameterError) Error() string {
	return fmt.Sprintf("invalid dungeon size %d: must be at least 1", e.Size)
}

// Room content limits.
const (
	MaxLootPerRoom       = 2
	MaxEncountersPerRoom = 3
)

// BossRoomName is the name given to the far-corner room.
const BossRoomName = "Dragon's Lair"

type flavour struct {
	name        string
	description string
}

var palette = map[Kind]flavour{
	KindCave:    {"Cave", "Water drips from the low rock ceiling."},
	KindDungeon: {"Dungeon Cell", "Rusted chains hang from damp stone walls."},
	KindCastle:  {"Castle Hall", "Tattered banners line a cold stone hall."},
}

// Generate builds a size x size grid of linked rooms and returns the
// entrance at row 0, column 0. Rows grow southward and columns eastward;
// each room's difficulty tier is baseDifficulty + row. The room in the far
// corner holds the boss and its two legendary items.
//
// All randomness comes from src, so a seeded source yields the same dungeon.
func Generate(size, baseDifficulty int, src combat.Source) (*Room, error) {
	if size < 1 {
		return nil, &InvalidGenerationParameterError{Size: size}
	}

	factory := combat.NewEncounterFactory(src)
	grid := make([][]*Room, size)
	for row := range grid {
		grid[row] = make([]*Room, size)
		for col := range grid[row] {
			tier := baseDifficulty + row
			if row == size-1 && col == size-1 {
				grid[row][col] = bossRoom(combat.NewID(src), tier, factory)
				continue
			}
			grid[row][col] = randomRoom(combat.NewID(src), row, col, tier, src, factory)
		}
	}

	for row := range grid {
		for col, room := range grid[row] {
			if row > 0 {
				if err := room.Connect(North, grid[row-1][col]); err != nil {
					return nil, fmt.Errorf("link room %d,%d north: %w", row, col, err)
				}
			}
			if col > 0 {
				if err := room.Connect(West, grid[row][col-1]); err != nil {
					return nil, fmt.Errorf("link room %d,%d west: %w", row, col, err)
				}
			}
		}
	}

	return grid[0][0], nil
}

func randomRoom(id string, row, col, tier int, src combat.Source, factory *combat.EncounterFactory) *Room {
	kind := Kind(src.Intn(3))
	f := palette[kind]
	room := NewRoom(id, fmt.Sprintf("%s %d-%d", f.name, row, col), f.description, kind, tier)

	loot := src.Intn(MaxLootPerRoom + 1)
	for i := 0; i < loot; i++ {
		room.AddItem(combat.RandomItem(src))
	}

	enemies := src.Intn(min(MaxEncountersPerRoom, max(tier, 0)) + 1)
	for i := 0; i < enemies; i++ {
		room.AddEncounter(factory.CreateRandomEncounter(tier))
	}
	labelEncounters(room.encounters)
	return room
}

// labelEncounters tells apart enemies of the same type in one room,
// "Slime A", "Slime B", ... An enemy alone of its type keeps its name.
func labelEncounters(cs []*combat.Combatant) {
	counts := make(map[string]int)
	for _, c := range cs {
		counts[c.Def.Name]++
	}
	next := make(map[string]int)
	for _, c := range cs {
		if counts[c.Def.Name] < 2 {
			continue
		}
		c.Label = c.Def.Name + " " + string(rune('A'+next[c.Def.Name]))
		next[c.Def.Name]++
	}
}

func bossRoom(id string, tier int, factory *combat.EncounterFactory) *Room {
	room := NewRoom(id, BossRoomName, "Heat rolls from a mound of gold. Something vast is breathing.", KindCastle, tier)
	room.boss = true
	room.AddEncounter(factory.CreateBoss())
	room.AddItem(combat.NewWeapon(combat.MaxGearTier))
	room.AddItem(combat.NewArmor(combat.MaxGearTier))
	return room
}
