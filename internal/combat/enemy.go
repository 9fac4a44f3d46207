package combat

// Tier groups enemies for weighted selection.
type Tier int

const (
	TierLow Tier = iota
	TierMid
	TierTop
)

func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMid:
		return "mid"
	case TierTop:
		return "top"
	default:
		return "unknown"
	}
}

// EnemyDef defines an enemy type's base stats.
type EnemyDef struct {
	Name      string
	MaxHealth int
	Attack    int
	Defense   int
	Variant   Variant
	Tier      Tier
}

// EnemySlime is the low-tier enemy.
var EnemySlime = EnemyDef{
	Name:      "Slime",
	MaxHealth: 15,
	Attack:    3,
	Defense:   1,
	Variant:   VariantWeakChance,
	Tier:      TierLow,
}

// EnemyGoblin is the mid-tier enemy.
var EnemyGoblin = EnemyDef{
	Name:      "Goblin",
	MaxHealth: 25,
	Attack:    6,
	Defense:   2,
	Variant:   VariantDoubleStrike,
	Tier:      TierMid,
}

// EnemyDragon is the top-tier enemy.
var EnemyDragon = EnemyDef{
	Name:      "Dragon",
	MaxHealth: 100,
	Attack:    15,
	Defense:   8,
	Variant:   VariantHeavyCooldown,
	Tier:      TierTop,
}

// EnemyBoss guards the last room of every dungeon.
var EnemyBoss = EnemyDef{
	Name:      "Ancient Dragon",
	MaxHealth: 250,
	Attack:    25,
	Defense:   12,
	Variant:   VariantHeavyCooldown,
	Tier:      TierTop,
}

// Combatant is a live enemy.
type Combatant struct {
	ID    string
	Label string
	Def   EnemyDef

	stats      StatBlock
	behavior   Behavior
	experience int
}

// NewCombatant creates a combatant at full health with its own behavior.
func NewCombatant(id string, def EnemyDef) *Combatant {
	c := &Combatant{
		ID:       id,
		Label:    def.Name,
		Def:      def,
		stats:    NewStatBlock(def.MaxHealth, def.Attack, def.Defense),
		behavior: NewBehavior(def.Variant),
	}
	c.experience = c.stats.Health() + c.stats.Attack() + c.stats.Defense()
	return c
}

// CurrentHealth returns the combatant's remaining health.
func (c *Combatant) CurrentHealth() int { return c.stats.Health() }

// MaxHealth returns the combatant's starting health.
func (c *Combatant) MaxHealth() int { return c.stats.MaxHealth() }

// AttackPower returns the base attack used by its behavior.
func (c *Combatant) AttackPower() int { return c.stats.Attack() }

// Defense returns the flat reduction applied to incoming damage.
func (c *Combatant) Defense() int { return c.stats.Defense() }

// Variant returns the attack behavior in use.
func (c *Combatant) Variant() Variant { return c.behavior.Variant() }

// Alive reports whether this enemy still has health.
func (c *Combatant) Alive() bool {
	return c.stats.Alive()
}

// Experience is the reward for defeating this combatant, fixed at creation.
func (c *Combatant) Experience() int {
	return c.experience
}

// Cooldown returns the heavy-attack cooldown, or 0 for variants without one.
func (c *Combatant) Cooldown() int {
	if h, ok := c.behavior.(*HeavyBehavior); ok {
		return h.Cooldown()
	}
	return 0
}

// ApplyDamage routes incoming damage through the combatant's defense.
func (c *Combatant) ApplyDamage(amount int) int {
	return c.stats.ApplyDamage(amount)
}

// AttackTarget performs this combatant's attack against target.
func (c *Combatant) AttackTarget(target *StatBlock, src Source) []Strike {
	return c.behavior.Attack(c.stats.Attack(), target, src)
}

// Tick advances the behavior's per-update state.
func (c *Combatant) Tick() {
	c.behavior.Tick()
}
