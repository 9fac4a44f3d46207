package combat

// Starting values for a new player.
const (
	StartHealth            = 100
	StartAttack            = 10
	StartDefense           = 5
	StartExperienceToLevel = 100
)

// Level-up growth.
const (
	LevelHealthGain  = 10
	LevelAttackGain  = 2
	LevelDefenseGain = 1
	LevelCurveFactor = 1.5
)

// PlayerState holds the player's stats, progression and inventory.
type PlayerState struct {
	Name string

	stats             StatBlock
	level             int
	experience        int
	experienceToLevel int
	inventory         []Item
}

// NewPlayer creates a level 1 player.
func NewPlayer(name string) *PlayerState {
	return &PlayerState{
		Name:              name,
		stats:             NewStatBlock(StartHealth, StartAttack, StartDefense),
		level:             1,
		experienceToLevel: StartExperienceToLevel,
	}
}

// Level returns the current level, starting at 1.
func (p *PlayerState) Level() int { return p.level }

// Experience returns experience earned toward the next level.
func (p *PlayerState) Experience() int { return p.experience }

// ExperienceToLevel returns the experience needed for the next level.
func (p *PlayerState) ExperienceToLevel() int { return p.experienceToLevel }

// AttackPower returns attack including equipped weapons.
func (p *PlayerState) AttackPower() int { return p.stats.Attack() }

// Defense returns defense including equipped armor.
func (p *PlayerState) Defense() int { return p.stats.Defense() }

// Health returns current health.
func (p *PlayerState) Health() int { return p.stats.Health() }

// MaxHealth returns the health ceiling for the current level.
func (p *PlayerState) MaxHealth() int { return p.stats.MaxHealth() }

// Alive reports whether the player still has health.
func (p *PlayerState) Alive() bool {
	return p.stats.Alive()
}

// Stats exposes the player's stat block as an attack target.
func (p *PlayerState) Stats() *StatBlock {
	return &p.stats
}

// GainExperience adds experience and applies every level-up it earns,
// carrying the surplus over. It returns the number of levels gained.
func (p *PlayerState) GainExperience(amount int) int {
	p.experience += max(0, amount)
	gained := 0
	for p.experience >= p.experienceToLevel {
		p.levelUp()
		gained++
	}
	return gained
}

func (p *PlayerState) levelUp() {
	p.experience -= p.experienceToLevel
	p.level++
	p.stats.Raise(LevelHealthGain, LevelAttackGain, LevelDefenseGain)
	p.stats.SetHealth(p.stats.MaxHealth())
	p.experienceToLevel = int(float64(p.experienceToLevel) * LevelCurveFactor)
}

// Inventory returns a copy of the carried items in pickup order.
func (p *PlayerState) Inventory() []Item {
	out := make([]Item, len(p.inventory))
	copy(out, p.inventory)
	return out
}

// AddItem appends an item to the inventory.
func (p *PlayerState) AddItem(it Item) {
	p.inventory = append(p.inventory, it)
}

// RemoveItem drops the item at index and returns it.
func (p *PlayerState) RemoveItem(index int) (Item, bool) {
	if index < 0 || index >= len(p.inventory) {
		return nil, false
	}
	it := p.inventory[index]
	p.inventory = append(p.inventory[:index], p.inventory[index+1:]...)
	return it, true
}

// UseItem uses the item at index. Consumables are removed after a
// successful use. Out-of-range indexes report false.
func (p *PlayerState) UseItem(index int) bool {
	if index < 0 || index >= len(p.inventory) {
		return false
	}
	it := p.inventory[index]
	if !it.Use(p) {
		return false
	}
	if it.Consumable() {
		p.RemoveItem(index)
	}
	return true
}
