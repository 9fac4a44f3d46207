package combat

// StatBlock holds the attributes shared by the player and enemies.
// Health is only written through SetHealth so it always stays in [0, MaxHealth].
type StatBlock struct {
	health    int
	maxHealth int
	attack    int
	defense   int
}

// NewStatBlock creates a stat block at full health.
func NewStatBlock(maxHealth, attack, defense int) StatBlock {
	if maxHealth < 1 {
		maxHealth = 1
	}
	return StatBlock{
		health:    maxHealth,
		maxHealth: maxHealth,
		attack:    max(0, attack),
		defense:   max(0, defense),
	}
}

// Health returns current health.
func (s *StatBlock) Health() int { return s.health }

// MaxHealth returns the health ceiling.
func (s *StatBlock) MaxHealth() int { return s.maxHealth }

// Attack returns base attack power.
func (s *StatBlock) Attack() int { return s.attack }

// Defense returns the flat damage reduction.
func (s *StatBlock) Defense() int { return s.defense }

// Alive reports whether health is above zero.
func (s *StatBlock) Alive() bool {
	return s.health > 0
}

// SetHealth writes health, clamped to [0, MaxHealth].
func (s *StatBlock) SetHealth(v int) {
	switch {
	case v < 0:
		s.health = 0
	case v > s.maxHealth:
		s.health = s.maxHealth
	default:
		s.health = v
	}
}

// ApplyDamage reduces health by max(1, amount-defense) and returns that
// damage. Negative amounts count as zero, so the 1-point minimum still lands.
func (s *StatBlock) ApplyDamage(amount int) int {
	dmg := max(1, max(0, amount)-s.defense)
	s.SetHealth(s.health - dmg)
	return dmg
}

// Heal restores up to amount health and returns how much was restored.
// Negative amounts restore nothing.
func (s *StatBlock) Heal(amount int) int {
	restored := min(max(0, amount), s.maxHealth-s.health)
	s.SetHealth(s.health + restored)
	return restored
}

// Raise grows the block by the given deltas. It is the only path that
// changes MaxHealth after creation. Attack and defense never drop below 0.
func (s *StatBlock) Raise(maxHealth, attack, defense int) {
	s.maxHealth = max(1, s.maxHealth+maxHealth)
	s.attack = max(0, s.attack+attack)
	s.defense = max(0, s.defense+defense)
	s.SetHealth(s.health)
}
