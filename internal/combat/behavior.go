package combat

// Variant tags an attack behavior.
type Variant int

const (
	VariantBasic         Variant = iota // always a single full strike
	VariantWeakChance                   // sometimes swings at half power
	VariantDoubleStrike                 // sometimes follows up with a half-power hit
	VariantHeavyCooldown                // occasional double-power strike, then a cooldown
)

func (v Variant) String() string {
	switch v {
	case VariantBasic:
		return "basic"
	case VariantWeakChance:
		return "weak-chance"
	case VariantDoubleStrike:
		return "double-strike"
	case VariantHeavyCooldown:
		return "heavy-cooldown"
	default:
		return "unknown"
	}
}

// StrikeKind describes a single hit within an attack.
type StrikeKind int

const (
	StrikeNormal StrikeKind = iota
	StrikeWeak
	StrikeFollowUp
	StrikeHeavy
)

// Strike is one hit delivered to a target.
type Strike struct {
	Kind  StrikeKind
	Power int // raw power before the target's defense
	Dealt int // damage the target actually took
}

// Behavior decides how a combatant attacks. Stateful variants keep their own
// counters, so every combatant needs its own instance.
type Behavior interface {
	Variant() Variant
	// Attack hits target using the attacker's power and returns each strike.
	Attack(power int, target *StatBlock, src Source) []Strike
	// Tick advances per-update state such as cooldowns.
	Tick()
}

// Tuning for the special attacks.
const (
	WeakChance       = 0.30
	FollowUpChance   = 0.20
	HeavyChance      = 0.30
	HeavyMultiplier  = 2
	HeavyCooldownLen = 5
)

// NewBehavior returns a fresh behavior for the variant.
func NewBehavior(v Variant) Behavior {
	switch v {
	case VariantWeakChance:
		return &WeakBehavior{Chance: WeakChance}
	case VariantDoubleStrike:
		return &DoubleStrikeBehavior{Chance: FollowUpChance}
	case VariantHeavyCooldown:
		return &HeavyBehavior{Chance: HeavyChance, Multiplier: HeavyMultiplier, CooldownLen: HeavyCooldownLen}
	default:
		return BasicBehavior{}
	}
}

func hit(kind StrikeKind, power int, target *StatBlock) Strike {
	return Strike{Kind: kind, Power: power, Dealt: target.ApplyDamage(power)}
}

func halfPower(power int) int {
	return max(1, power/2)
}

// BasicBehavior always lands one full-power strike.
type BasicBehavior struct{}

func (BasicBehavior) Variant() Variant { return VariantBasic }
func (BasicBehavior) Tick()            {}

func (BasicBehavior) Attack(power int, target *StatBlock, _ Source) []Strike {
	return []Strike{hit(StrikeNormal, power, target)}
}

// WeakBehavior swings at half power with probability Chance.
type WeakBehavior struct {
	Chance float64
}

func (*WeakBehavior) Variant() Variant { return VariantWeakChance }
func (*WeakBehavior) Tick()            {}

func (b *WeakBehavior) Attack(power int, target *StatBlock, src Source) []Strike {
	if roll(src, b.Chance) {
		return []Strike{hit(StrikeWeak, halfPower(power), target)}
	}
	return []Strike{hit(StrikeNormal, power, target)}
}

// DoubleStrikeBehavior always hits once and, with probability Chance, adds a
// half-power follow-up in the same turn.
type DoubleStrikeBehavior struct {
	Chance float64
}

func (*DoubleStrikeBehavior) Variant() Variant { return VariantDoubleStrike }
func (*DoubleStrikeBehavior) Tick()            {}

func (b *DoubleStrikeBehavior) Attack(power int, target *StatBlock, src Source) []Strike {
	strikes := []Strike{hit(StrikeNormal, power, target)}
	if roll(src, b.Chance) {
		strikes = append(strikes, hit(StrikeFollowUp, halfPower(power), target))
	}
	return strikes
}

// HeavyBehavior lands a Multiplier-power strike when off cooldown and the
// roll succeeds, then waits CooldownLen ticks before it can do so again.
type HeavyBehavior struct {
	Chance      float64
	Multiplier  int
	CooldownLen int

	cooldown int
}

func (*HeavyBehavior) Variant() Variant { return VariantHeavyCooldown }

// Cooldown returns the ticks remaining before a heavy strike is available.
func (b *HeavyBehavior) Cooldown() int { return b.cooldown }

// Tick decrements the cooldown whether or not the combatant attacked.
func (b *HeavyBehavior) Tick() {
	if b.cooldown > 0 {
		b.cooldown--
	}
}

func (b *HeavyBehavior) Attack(power int, target *StatBlock, src Source) []Strike {
	if b.cooldown == 0 && roll(src, b.Chance) {
		b.cooldown = b.CooldownLen
		return []Strike{hit(StrikeHeavy, power*b.Multiplier, target)}
	}
	return []Strike{hit(StrikeNormal, power, target)}
}
