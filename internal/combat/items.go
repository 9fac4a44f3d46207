package combat

import "fmt"

// Item is anything that can be picked up and used by the player.
type Item interface {
	Name() string
	Description() string
	// Consumable items leave the inventory after a successful use.
	Consumable() bool
	// Use applies the item to p and reports whether it had an effect.
	Use(p *PlayerState) bool
}

// HealingPotion restores health when drunk.
type HealingPotion struct {
	Amount int
}

func (h *HealingPotion) Name() string {
	return fmt.Sprintf("Healing Potion (%dhp)", h.Amount)
}

func (h *HealingPotion) Description() string {
	return fmt.Sprintf("Restores %d health points when consumed.", h.Amount)
}

func (h *HealingPotion) Consumable() bool { return true }

// Use heals the player. A player already at full health keeps the potion.
func (h *HealingPotion) Use(p *PlayerState) bool {
	if p.Health() >= p.MaxHealth() {
		return false
	}
	p.stats.Heal(h.Amount)
	return true
}

// Weapon raises attack power once equipped.
type Weapon struct {
	Label    string
	Bonus    int
	Equipped bool
}

func (w *Weapon) Name() string { return w.Label }

func (w *Weapon) Description() string {
	return fmt.Sprintf("Increases attack power by %d.", w.Bonus)
}

func (w *Weapon) Consumable() bool { return false }

// Use equips the weapon. Equipping it twice has no further effect.
func (w *Weapon) Use(p *PlayerState) bool {
	if w.Equipped {
		return false
	}
	w.Equipped = true
	p.stats.Raise(0, w.Bonus, 0)
	return true
}

// Armor raises defense once equipped.
type Armor struct {
	Label    string
	Bonus    int
	Equipped bool
}

func (a *Armor) Name() string { return a.Label }

func (a *Armor) Description() string {
	return fmt.Sprintf("Increases defense by %d.", a.Bonus)
}

func (a *Armor) Consumable() bool { return false }

// Use equips the armor. Equipping it twice has no further effect.
func (a *Armor) Use(p *PlayerState) bool {
	if a.Equipped {
		return false
	}
	a.Equipped = true
	p.stats.Raise(0, 0, a.Bonus)
	return true
}

// Key opens a named door or chest; it cannot be used on its own.
type Key struct {
	Target string
}

func (k *Key) Name() string        { return "Key to " + k.Target }
func (k *Key) Description() string { return "Unlocks the " + k.Target + "." }
func (k *Key) Consumable() bool    { return false }
func (k *Key) Use(*PlayerState) bool {
	return false
}

type gear struct {
	name  string
	bonus int
}

var weaponTiers = map[int]gear{
	1: {"Wooden Sword", 5},
	2: {"Iron Sword", 10},
	3: {"Steel Sword", 15},
	4: {"Mythril Blade", 20},
	5: {"Legendary Sword", 30},
}

var armorTiers = map[int]gear{
	1: {"Leather Armor", 2},
	2: {"Chain Mail", 5},
	3: {"Plate Armor", 8},
	4: {"Mythril Armor", 12},
	5: {"Legendary Armor", 20},
}

// MaxGearTier is the highest weapon/armor tier.
const MaxGearTier = 5

// NewHealingPotion creates a potion restoring amount health.
func NewHealingPotion(amount int) *HealingPotion {
	return &HealingPotion{Amount: amount}
}

// NewWeapon creates the weapon for a tier; unknown tiers fall back to tier 1.
func NewWeapon(tier int) *Weapon {
	g, ok := weaponTiers[tier]
	if !ok {
		g = weaponTiers[1]
	}
	return &Weapon{Label: g.name, Bonus: g.bonus}
}

// NewArmor creates the armor for a tier; unknown tiers fall back to tier 1.
func NewArmor(tier int) *Armor {
	g, ok := armorTiers[tier]
	if !ok {
		g = armorTiers[1]
	}
	return &Armor{Label: g.name, Bonus: g.bonus}
}

// NewKey creates a key for target.
func NewKey(target string) *Key {
	return &Key{Target: target}
}

// RandomItem picks a potion, weapon or armor uniformly, at tier 1-3.
func RandomItem(src Source) Item {
	kind := src.Intn(3)
	tier := src.Intn(3) + 1
	switch kind {
	case 0:
		return NewHealingPotion(tier * 10)
	case 1:
		return NewWeapon(tier)
	default:
		return NewArmor(tier)
	}
}
