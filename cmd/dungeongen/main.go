package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"dungeon-delve/internal/combat"
	"dungeon-delve/internal/dungeon"
)

func main() {
	seed := flag.Int64("seed", 0, "random seed (0 = random)")
	size := flag.Int("size", 5, "dungeon width and height in rooms")
	difficulty := flag.Int("difficulty", 1, "difficulty tier of the first row")
	out := flag.String("out", "", "output file (default: stdout)")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	fmt.Fprintf(os.Stderr, "Generating %dx%d dungeon at tier %d (seed %d)...\n", *size, *size, *difficulty, *seed)

	entrance, err := dungeon.Generate(*size, *difficulty, combat.NewSource(*seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	snap, err := dungeon.Describe(entrance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		os.Exit(1)
	}

	if *out == "" {
		os.Stdout.Write(data)
		os.Stdout.WriteString("\n")
	} else {
		if err := os.WriteFile(*out, append(data, '\n'), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s (%d bytes)\n", *out, len(data))
	}

	// Print enemy distribution summary
	counts := make(map[string]int)
	total := 0
	for _, r := range snap.Rooms {
		for _, e := range r.Encounters {
			counts[e.Name]++
			total++
		}
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(os.Stderr, "\nEnemy distribution:\n")
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %-15s %4d (%5.1f%%)\n", name, counts[name], float64(counts[name])/float64(total)*100)
	}
}
