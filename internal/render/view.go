package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"dungeon-delve/internal/game"
)

const barWidth = 20

var title = cases.Title(language.English)

// HealthBar draws hp out of maxHP as a fixed-width block bar.
func HealthBar(hp, maxHP, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if maxHP > 0 {
		filled = width * max(0, min(hp, maxHP)) / maxHP
	}
	if filled == 0 && hp > 0 {
		filled = 1
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Frame renders a snapshot as a full terminal screen. Lines end in CRLF for
// raw-mode PTYs.
func Frame(s game.Snapshot) string {
	var sb strings.Builder
	sb.WriteString(MoveTo(1, 1))

	line := func() {
		sb.WriteString(ClearLine())
		sb.WriteString("\r\n")
	}

	room := s.Room
	header := fmt.Sprintf("%s  [%s, tier %d]", room.Name, title.String(room.Kind), room.Difficulty)
	Paint(&sb, header, ColorTitle, true)
	line()
	Paint(&sb, room.Description, ColorDim, false)
	line()

	exits := make([]string, len(room.Exits))
	for i, d := range room.Exits {
		exits[i] = d.String()
	}
	sb.WriteString("Exits: " + strings.Join(exits, ", "))
	line()
	line()

	if len(room.Enemies) == 0 {
		Paint(&sb, "No enemies here.", ColorDim, false)
		line()
	}
	for _, e := range room.Enemies {
		Paint(&sb, fmt.Sprintf("%-16s", e.Label), ColorEnemy, true)
		Paint(&sb, HealthBar(e.Health, e.MaxHealth, barWidth), healthColor(e.Health, e.MaxHealth), false)
		fmt.Fprintf(&sb, " %d/%d", e.Health, e.MaxHealth)
		if e.Cooldown > 0 {
			fmt.Fprintf(&sb, "  (recharging %d)", e.Cooldown)
		}
		line()
	}
	for _, name := range room.Loot {
		sb.WriteString("  * ")
		Paint(&sb, name, ColorLoot, false)
		line()
	}
	line()

	fmt.Fprintf(&sb, "%s  Lv %d  XP %d/%d  ATK %d  DEF %d", s.PlayerName, s.Level, s.Experience, s.ExpToLevel, s.Attack, s.Defense)
	line()
	sb.WriteString("HP ")
	Paint(&sb, HealthBar(s.Health, s.MaxHealth, barWidth), healthColor(s.Health, s.MaxHealth), false)
	fmt.Fprintf(&sb, " %d/%d", s.Health, s.MaxHealth)
	line()
	if len(s.Inventory) > 0 {
		items := make([]string, len(s.Inventory))
		for i, name := range s.Inventory {
			items[i] = fmt.Sprintf("%d:%s", i+1, name)
		}
		sb.WriteString("Pack: " + strings.Join(items, "  "))
		line()
	}
	line()

	for _, msg := range s.Log {
		sb.WriteString(msg)
		line()
	}

	switch s.State {
	case game.StateVictory:
		line()
		Paint(&sb, "VICTORY! The dragon is slain. Press q to leave.", ColorVictory, true)
		line()
	case game.StateGameOver:
		line()
		Paint(&sb, "GAME OVER. Press q to leave.", ColorDefeat, true)
		line()
	default:
		line()
		Paint(&sb, "wasd/arrows move  f fight  g grab  1-9 use  q quit", ColorDim, false)
		line()
	}

	sb.WriteString(CSI + "J")
	return sb.String()
}
