package dungeon

import (
	"errors"
	"reflect"
	"testing"

	"pgregory.net/rapid"

	"dungeon-delve/internal/combat"
)

func TestGenerateRejectsSmallSize(t *testing.T) {
	for _, size := range []int{0, -1, -50} {
		entrance, err := Generate(size, 1, combat.NewSource(1))
		var paramErr *InvalidGenerationParameterError
		if !errors.As(err, &paramErr) || paramErr.Size != size {
			t.Errorf("size %d: got %v, want InvalidGenerationParameterError", size, err)
		}
		if entrance != nil {
			t.Errorf("size %d: returned a room", size)
		}
	}
}

func TestGenerateThreeByThree(t *testing.T) {
	entrance, err := Generate(3, 1, combat.NewSource(42))
	if err != nil {
		t.Fatal(err)
	}
	if err := Validate(entrance); err != nil {
		t.Fatalf("validate: %v", err)
	}

	m, err := Layout(entrance)
	if err != nil {
		t.Fatal(err)
	}
	if m.Size != 3 || m.At(0, 0) != entrance {
		t.Fatalf("size %d, entrance at 0,0: %v", m.Size, m.At(0, 0) == entrance)
	}
	if entrance.North() != nil || entrance.West() != nil {
		t.Error("entrance has exits off the grid")
	}

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			r := m.At(row, col)
			if r.Difficulty != 1+row {
				t.Errorf("room %d,%d difficulty %d, want %d", row, col, r.Difficulty, 1+row)
			}
			if row == 2 && col == 2 {
				continue
			}
			if r.Boss() {
				t.Errorf("room %d,%d flagged boss", row, col)
			}
			if n := len(r.Items()); n > MaxLootPerRoom {
				t.Errorf("room %d,%d has %d items", row, col, n)
			}
			if n := len(r.Encounters()); n > min(MaxEncountersPerRoom, r.Difficulty) {
				t.Errorf("room %d,%d tier %d has %d encounters", row, col, r.Difficulty, n)
			}
		}
	}

	boss := m.At(2, 2)
	if !boss.Boss() || boss.Name != BossRoomName {
		t.Fatalf("far corner is %q boss=%v", boss.Name, boss.Boss())
	}
	enc := boss.Encounters()
	if len(enc) != 1 || enc[0].Def != combat.EnemyBoss {
		t.Errorf("boss room encounters %v", enc)
	}
	items := boss.Items()
	if len(items) != 2 || items[0].Name() != "Legendary Sword" || items[1].Name() != "Legendary Armor" {
		t.Errorf("boss room loot %v", items)
	}
}

func TestGenerateSingleRoom(t *testing.T) {
	entrance, err := Generate(1, 4, combat.NewSource(7))
	if err != nil {
		t.Fatal(err)
	}
	if !entrance.Boss() || len(entrance.Exits()) != 0 {
		t.Errorf("single room boss=%v exits=%v", entrance.Boss(), entrance.Exits())
	}
	if err := Validate(entrance); err != nil {
		t.Error(err)
	}
}

func TestGenerateNegativeDifficultyHasNoEncounters(t *testing.T) {
	entrance, err := Generate(2, -5, combat.NewSource(11))
	if err != nil {
		t.Fatal(err)
	}
	m, _ := Layout(entrance)
	for _, r := range []*Room{m.At(0, 0), m.At(0, 1), m.At(1, 0)} {
		if len(r.Encounters()) != 0 {
			t.Errorf("room %q at tier %d has encounters", r.Name, r.Difficulty)
		}
	}
}

func TestGenerateIsReproducible(t *testing.T) {
	a, err := Generate(4, 2, combat.NewSource(2024))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(4, 2, combat.NewSource(2024))
	if err != nil {
		t.Fatal(err)
	}
	sa, _ := Describe(a)
	sb, _ := Describe(b)
	if !reflect.DeepEqual(sa, sb) {
		t.Error("same seed produced different dungeons")
	}
	if len(sa.Rooms) != 16 || sa.Entrance != a.ID {
		t.Errorf("snapshot has %d rooms, entrance %s", len(sa.Rooms), sa.Entrance)
	}
}

func TestLabelEncounters(t *testing.T) {
	f := combat.NewEncounterFactory(combat.NewSource(1))
	cs := []*combat.Combatant{f.CreateSlime(), f.CreateGoblin(), f.CreateSlime(), f.CreateSlime()}
	labelEncounters(cs)

	var got []string
	for _, c := range cs {
		got = append(got, c.Label)
	}
	want := []string{"Slime A", "Goblin", "Slime B", "Slime C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("labels %v, want %v", got, want)
	}
}

func TestGeneratedLabelsUniquePerRoom(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		entrance, err := Generate(4, 3, combat.NewSource(seed))
		if err != nil {
			t.Fatal(err)
		}
		m, _ := Layout(entrance)
		for _, row := range m.Rooms {
			for _, r := range row {
				seen := make(map[string]bool)
				for _, c := range r.Encounters() {
					if seen[c.Label] {
						t.Fatalf("seed %d: %s has two enemies labelled %q", seed, r.Name, c.Label)
					}
					seen[c.Label] = true
				}
			}
		}
	}
}

func TestValidateCatchesBrokenGrid(t *testing.T) {
	entrance, _ := Generate(3, 1, combat.NewSource(5))
	m, _ := Layout(entrance)
	// cut the centre room loose from its west neighbour
	m.At(1, 1).Connect(West, nil)
	if err := Validate(entrance); err == nil {
		t.Error("validate accepted a grid with a missing link")
	}
}

func TestGenerateProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		size := rapid.IntRange(1, 6).Draw(t, "size")
		base := rapid.IntRange(-2, 8).Draw(t, "base")
		seed := rapid.Int64().Draw(t, "seed")

		entrance, err := Generate(size, base, combat.NewSource(seed))
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if err := Validate(entrance); err != nil {
			t.Fatalf("validate: %v", err)
		}
		m, _ := Layout(entrance)
		if m.Size != size {
			t.Fatalf("layout size %d, want %d", m.Size, size)
		}
		for row := 0; row < size; row++ {
			for col := 0; col < size; col++ {
				r := m.At(row, col)
				if r.Boss() {
					if len(r.Encounters()) != 1 || len(r.Items()) != 2 {
						t.Fatalf("boss room has %d encounters, %d items", len(r.Encounters()), len(r.Items()))
					}
					continue
				}
				if len(r.Items()) > MaxLootPerRoom {
					t.Fatalf("room %d,%d has %d items", row, col, len(r.Items()))
				}
				if len(r.Encounters()) > min(MaxEncountersPerRoom, max(base+row, 0)) {
					t.Fatalf("room %d,%d has %d encounters at tier %d", row, col, len(r.Encounters()), base+row)
				}
			}
		}
	})
}
