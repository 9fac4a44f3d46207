package game

// TickRate is the number of loop ticks per second.
const TickRate = 20

// SecsToTicks converts a duration in seconds to game ticks, never less than one.
func SecsToTicks(s float64) int {
	t := int(s * TickRate)
	if t < 1 {
		t = 1
	}
	return t
}

// Timing constants, expressed in seconds and converted to ticks at init.
var (
	EnemyTickInterval = SecsToTicks(1.0) // ticks between enemy cooldown updates
	MoveRepeatDelay   = SecsToTicks(0.15)
)
