package combat

// tierOrder is the category order used by EncounterWeights.
var tierOrder = [3]EnemyDef{EnemySlime, EnemyGoblin, EnemyDragon}

// EncounterWeights returns the low/mid/top selection weights for a
// difficulty tier. Each row sums to 1.0.
func EncounterWeights(difficulty int) [3]float64 {
	switch {
	case difficulty <= 2:
		return [3]float64{0.70, 0.25, 0.05}
	case difficulty <= 4:
		return [3]float64{0.30, 0.60, 0.10}
	default:
		return [3]float64{0.10, 0.50, 0.40}
	}
}

// EncounterFactory creates enemies from an injected random source.
type EncounterFactory struct {
	src Source
}

// NewEncounterFactory returns a factory drawing from src.
func NewEncounterFactory(src Source) *EncounterFactory {
	return &EncounterFactory{src: src}
}

// CreateRandomEncounter picks an enemy type with one weighted categorical
// draw for the difficulty tier.
func (f *EncounterFactory) CreateRandomEncounter(difficulty int) *Combatant {
	return f.create(tierOrder[pickWeighted(f.src, EncounterWeights(difficulty))])
}

// CreateSlime returns a new Slime.
func (f *EncounterFactory) CreateSlime() *Combatant { return f.create(EnemySlime) }

// CreateGoblin returns a new Goblin.
func (f *EncounterFactory) CreateGoblin() *Combatant { return f.create(EnemyGoblin) }

// CreateDragon returns a new Dragon.
func (f *EncounterFactory) CreateDragon() *Combatant { return f.create(EnemyDragon) }

// CreateBoss returns the fixed, non-random boss.
func (f *EncounterFactory) CreateBoss() *Combatant { return f.create(EnemyBoss) }

func (f *EncounterFactory) create(def EnemyDef) *Combatant {
	return NewCombatant(NewID(f.src), def)
}

// pickWeighted returns an index into weights using a single uniform draw
// against the cumulative distribution.
func pickWeighted(src Source, weights [3]float64) int {
	u := src.Float64()
	acc := 0.0
	for i, w := range weights {
		acc += w
		if u < acc {
			return i
		}
	}
	// float rounding can leave u just above the final sum
	return len(weights) - 1
}
