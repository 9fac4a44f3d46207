package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"dungeon-delve/internal/combat"
	"dungeon-delve/internal/dungeon"
	"dungeon-delve/internal/game"
)

// runResult summarises one simulated expedition.
type runResult struct {
	state   game.State
	level   int
	visited int
	fought  map[int]int // difficulty tier -> enemies engaged
}

func runSim(args []string) int {
	fs := flag.NewFlagSet("sim", flag.ContinueOnError)
	runs := fs.Int("runs", 200, "number of dungeons to play")
	workers := fs.Int("workers", runtime.NumCPU(), "parallel simulations")
	seed := fs.Int64("seed", 1, "seed of the first run; run i uses seed+i")
	size := fs.Int("size", 5, "dungeon width and height in rooms")
	difficulty := fs.Int("difficulty", 1, "difficulty tier of the first row")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *runs < 1 || *workers < 1 {
		fmt.Fprintln(os.Stderr, "Error: -runs and -workers must be positive")
		return 1
	}

	cfg := game.Config{DungeonSize: *size, BaseDifficulty: *difficulty}
	results := make([]runResult, *runs)
	start := time.Now()

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*workers)
	for i := range results {
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			exp, err := game.NewExpedition(combat.NewPlayer("Bot"), cfg, combat.NewSource(*seed+int64(i)))
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			res, err := playGreedy(exp)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	report(results, time.Since(start))
	return 0
}

// playGreedy snakes through the grid row by row, grabbing and equipping
// everything and fighting every enemy it meets, drinking potions below half
// health.
func playGreedy(exp *game.Expedition) (runResult, error) {
	res := runResult{fought: make(map[int]int)}
	m, err := dungeon.Layout(exp.Entrance())
	if err != nil {
		return res, err
	}

	row, col := 0, 0
	for _, next := range snake(m.Size) {
		if next.row != row || next.col != col {
			if err := exp.Move(stepTo(row, col, next.row, next.col)); err != nil {
				return res, fmt.Errorf("move to %d,%d: %w", next.row, next.col, err)
			}
			row, col = next.row, next.col
		}
		clearRoom(exp, res.fought)
		if exp.State() != game.StatePlaying {
			break
		}
	}

	res.state = exp.State()
	res.level = exp.Player.Level()
	res.visited = exp.Visited()
	return res, nil
}

func clearRoom(exp *game.Expedition, fought map[int]int) {
	for len(exp.Room().Items()) > 0 {
		if _, err := exp.Take(0); err != nil {
			return
		}
	}
	for i, it := range exp.Player.Inventory() {
		if !it.Consumable() {
			exp.Use(i)
		}
	}

	fought[exp.Room().Difficulty] += len(exp.Room().Encounters())
	for len(exp.Room().Encounters()) > 0 && exp.State() == game.StatePlaying {
		if exp.Player.Health()*2 < exp.Player.MaxHealth() {
			drinkPotion(exp)
		}
		if _, err := exp.Fight(0); err != nil {
			return
		}
		exp.Tick()
	}
}

func drinkPotion(exp *game.Expedition) {
	for i, it := range exp.Player.Inventory() {
		if _, ok := it.(*combat.HealingPotion); ok {
			exp.Use(i)
			return
		}
	}
}

type cell struct{ row, col int }

// snake visits every cell, east along even rows and west along odd rows.
func snake(size int) []cell {
	path := make([]cell, 0, size*size)
	for row := 0; row < size; row++ {
		for i := 0; i < size; i++ {
			col := i
			if row%2 == 1 {
				col = size - 1 - i
			}
			path = append(path, cell{row, col})
		}
	}
	return path
}

func stepTo(row, col, nextRow, nextCol int) dungeon.Direction {
	switch {
	case nextRow < row:
		return dungeon.North
	case nextRow > row:
		return dungeon.South
	case nextCol > col:
		return dungeon.East
	default:
		return dungeon.West
	}
}

func report(results []runResult, elapsed time.Duration) {
	wins, deaths, levels, rooms := 0, 0, 0, 0
	tiers := make(map[int]int)
	for _, r := range results {
		switch r.state {
		case game.StateVictory:
			wins++
		case game.StateGameOver:
			deaths++
		}
		levels += r.level
		rooms += r.visited
		for tier, n := range r.fought {
			tiers[tier] += n
		}
	}

	n := float64(len(results))
	fmt.Printf("%d runs in %s\n\n", len(results), elapsed.Round(time.Millisecond))
	fmt.Printf("  Victory:   %5.1f%%\n", float64(wins)/n*100)
	fmt.Printf("  Defeat:    %5.1f%%\n", float64(deaths)/n*100)
	fmt.Printf("  Mean level %5.2f\n", float64(levels)/n)
	fmt.Printf("  Mean rooms %5.2f\n", float64(rooms)/n)

	keys := make([]int, 0, len(tiers))
	for t := range tiers {
		keys = append(keys, t)
	}
	sort.Ints(keys)
	fmt.Println("\nEnemies engaged by tier:")
	for _, t := range keys {
		fmt.Printf("  tier %2d  %6d\n", t, tiers[t])
	}
}
