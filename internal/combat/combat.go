package combat

import "fmt"

// Outcome is how an exchange ended.
type Outcome int

const (
	OutcomeCounterAttacked Outcome = iota // defender survived and struck back
	OutcomeDefeated                       // defender is at 0 health
)

func (o Outcome) String() string {
	if o == OutcomeDefeated {
		return "defeated"
	}
	return "counter-attacked"
}

// ExchangeOutcome reports everything that happened in one exchange.
type ExchangeOutcome struct {
	Result           Outcome
	DamageDealt      int
	Counter          []Strike
	ExperienceGained int
	LevelsGained     int
	AlreadyDefeated  bool // defender was at 0 before the exchange; nothing happened
	PlayerDefeated   bool
	Log              []string
}

// CounterDamage sums the damage the player took.
func (o ExchangeOutcome) CounterDamage() int {
	total := 0
	for _, s := range o.Counter {
		total += s.Dealt
	}
	return total
}

// ResolveExchange runs one player attack against defender and, if the
// defender survives, its single counter-attack. Defeating the defender awards
// its experience. An already-defeated defender is left untouched.
func ResolveExchange(player *PlayerState, defender *Combatant, src Source) ExchangeOutcome {
	if !defender.Alive() {
		return ExchangeOutcome{
			Result:          OutcomeDefeated,
			AlreadyDefeated: true,
			Log:             []string{fmt.Sprintf("%s is already defeated.", defender.Label)},
		}
	}

	var out ExchangeOutcome
	strike := BasicBehavior{}.Attack(player.AttackPower(), &defender.stats, src)[0]
	out.DamageDealt = strike.Dealt
	out.Log = append(out.Log, fmt.Sprintf("%s slashes %s for %d damage!", player.Name, defender.Label, strike.Dealt))

	if defender.Alive() {
		out.Result = OutcomeCounterAttacked
		out.Counter = defender.AttackTarget(player.Stats(), src)
		for _, s := range out.Counter {
			out.Log = append(out.Log, strikeMessage(defender.Label, player.Name, s))
		}
		if !player.Alive() {
			out.PlayerDefeated = true
			out.Log = append(out.Log, fmt.Sprintf("%s has fallen!", player.Name))
		}
		return out
	}

	out.Result = OutcomeDefeated
	out.ExperienceGained = defender.Experience()
	out.LevelsGained = player.GainExperience(out.ExperienceGained)
	out.Log = append(out.Log, fmt.Sprintf("%s defeated! %s gains %d experience.", defender.Label, player.Name, out.ExperienceGained))
	if out.LevelsGained > 0 {
		out.Log = append(out.Log, fmt.Sprintf("%s reached level %d!", player.Name, player.Level()))
	}
	return out
}

func strikeMessage(attacker, target string, s Strike) string {
	switch s.Kind {
	case StrikeWeak:
		return fmt.Sprintf("%s weakly attacks %s for %d damage!", attacker, target, s.Dealt)
	case StrikeFollowUp:
		return fmt.Sprintf("%s attacks a second time for %d damage!", attacker, s.Dealt)
	case StrikeHeavy:
		return fmt.Sprintf("%s uses FIRE BREATH on %s for %d damage!", attacker, target, s.Dealt)
	default:
		return fmt.Sprintf("%s attacks %s for %d damage!", attacker, target, s.Dealt)
	}
}
