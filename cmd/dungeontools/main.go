package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"dungeon-delve/internal/combat"
	"dungeon-delve/internal/dungeon"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "validate":
		os.Exit(runValidate(args))
	case "viz":
		os.Exit(runViz(args))
	case "stats":
		os.Exit(runStats(args))
	case "sim":
		os.Exit(runSim(args))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: dungeontools <command> [flags] <seed>

Commands:
  validate [-size N] [-difficulty D] <seed>   Check links, shape and boss placement
  viz      [-size N] [-difficulty D] <seed>   Draw the room grid as coloured ASCII
  stats    [-size N] [-difficulty D] <seed>   Show enemy, loot and room kind distribution
  sim      [-runs N] [-workers W] [-seed S]   Play many dungeons with a greedy bot`)
}

// generated parses the shared generator flags and the seed argument.
func generated(name string, args []string) (*dungeon.Room, int64, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	size := fs.Int("size", 5, "dungeon width and height in rooms")
	difficulty := fs.Int("difficulty", 1, "difficulty tier of the first row")
	if err := fs.Parse(args); err != nil {
		return nil, 0, err
	}
	if fs.NArg() != 1 {
		return nil, 0, fmt.Errorf("usage: dungeontools %s [-size N] [-difficulty D] <seed>", name)
	}
	seed, err := strconv.ParseInt(fs.Arg(0), 10, 64)
	if err != nil {
		return nil, 0, fmt.Errorf("parse seed: %w", err)
	}
	entrance, err := dungeon.Generate(*size, *difficulty, combat.NewSource(seed))
	if err != nil {
		return nil, 0, fmt.Errorf("generate: %w", err)
	}
	return entrance, seed, nil
}

// --- validate ---

func runValidate(args []string) int {
	entrance, seed, err := generated("validate", args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := dungeon.Validate(entrance); err != nil {
		fmt.Printf("FAIL seed %d: %v\n", seed, err)
		return 1
	}
	m, _ := dungeon.Layout(entrance)
	fmt.Printf("OK seed %d (%dx%d)\n", seed, m.Size, m.Size)
	return 0
}

// --- viz ---

var kindColors = map[dungeon.Kind]int{
	dungeon.KindCave:    33,
	dungeon.KindDungeon: 90,
	dungeon.KindCastle:  37,
}

// ansiColor returns the ANSI escape for the given code.
func ansiColor(code int) string {
	return fmt.Sprintf("\033[%dm", code)
}

func runViz(args []string) int {
	entrance, seed, err := generated("viz", args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	m, err := dungeon.Layout(entrance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("Seed %d (%dx%d)\n\n", seed, m.Size, m.Size)
	for row := 0; row < m.Size; row++ {
		var rooms, links strings.Builder
		for col := 0; col < m.Size; col++ {
			r := m.At(row, col)
			label := fmt.Sprintf("%d/%d", len(r.Encounters()), len(r.Items()))
			switch {
			case r == entrance:
				label = "E " + label
			case r.Boss():
				label = "BOSS"
			}
			rooms.WriteString(ansiColor(kindColors[r.Kind]))
			fmt.Fprintf(&rooms, "[%-5s]", label)
			rooms.WriteString("\033[0m")
			if r.East() != nil {
				rooms.WriteString("--")
			} else {
				rooms.WriteString("  ")
			}
			if r.South() != nil {
				links.WriteString("   |     ")
			} else {
				links.WriteString("         ")
			}
		}
		fmt.Println(rooms.String())
		if row < m.Size-1 {
			fmt.Println(links.String())
		}
	}
	fmt.Println("\n[enemies/loot]  E entrance  yellow cave, grey dungeon, white castle")
	return 0
}

// --- stats ---

func runStats(args []string) int {
	entrance, seed, err := generated("stats", args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	m, err := dungeon.Layout(entrance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	total := m.Size * m.Size
	fmt.Printf("Seed %d (%dx%d = %d rooms)\n\n", seed, m.Size, m.Size, total)

	kinds := make(map[string]int)
	enemies := make(map[string]int)
	loot, fights := 0, 0
	for row := 0; row < m.Size; row++ {
		rowEnemies := 0
		for col := 0; col < m.Size; col++ {
			r := m.At(row, col)
			kinds[r.Kind.String()]++
			loot += len(r.Items())
			for _, c := range r.Encounters() {
				enemies[c.Def.Name]++
				rowEnemies++
			}
		}
		fights += rowEnemies
		tier := m.At(row, 0).Difficulty
		w := combat.EncounterWeights(tier)
		fmt.Printf("  row %d tier %2d: %2d enemies  weights %.2f/%.2f/%.2f\n", row, tier, rowEnemies, w[0], w[1], w[2])
	}

	fmt.Println("\nRoom kinds:")
	printCounts(kinds, total)
	fmt.Println("\nEnemies:")
	printCounts(enemies, fights)
	fmt.Printf("\nLoot: %d items (%.1f per room)\n", loot, float64(loot)/float64(total))
	return 0
}

// printCounts prints a histogram sorted by count descending.
func printCounts(counts map[string]int, total int) {
	type entry struct {
		name  string
		count int
	}
	var sorted []entry
	for name, count := range counts {
		sorted = append(sorted, entry{name, count})
	}
	// Simple insertion sort
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && (sorted[j].count > sorted[j-1].count ||
			sorted[j].count == sorted[j-1].count && sorted[j].name < sorted[j-1].name); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	for _, e := range sorted {
		pct := float64(e.count) / float64(max(total, 1)) * 100
		bar := strings.Repeat("█", int(pct/2))
		fmt.Printf("  %-15s %4d (%5.1f%%) %s\n", e.name, e.count, pct, bar)
	}
}
