package dungeon

import (
	"errors"
	"testing"

	"pgregory.net/rapid"

	"dungeon-delve/internal/combat"
)

func room(name string) *Room {
	return NewRoom(name, name, "", KindCave, 1)
}

func TestConnectIsSymmetric(t *testing.T) {
	tests := []struct {
		dir  Direction
		back Direction
	}{
		{North, South},
		{South, North},
		{East, West},
		{West, East},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			a, b := room("a"), room("b")
			if err := a.Connect(tt.dir, b); err != nil {
				t.Fatalf("connect: %v", err)
			}
			if a.Neighbor(tt.dir) != b {
				t.Errorf("a.%s is not b", tt.dir)
			}
			if b.Neighbor(tt.back) != a {
				t.Errorf("b.%s is not a", tt.back)
			}
			if len(a.Exits()) != 1 || len(b.Exits()) != 1 {
				t.Errorf("exits a=%v b=%v", a.Exits(), b.Exits())
			}
		})
	}
}

func TestConnectInvalidDirection(t *testing.T) {
	a, b, c := room("a"), room("b"), room("c")
	a.Connect(East, c)

	err := a.Connect(Direction(9), b)
	var dirErr *InvalidDirectionError
	if !errors.As(err, &dirErr) {
		t.Fatalf("got %v, want InvalidDirectionError", err)
	}
	if a.East() != c || c.West() != a {
		t.Error("existing link changed")
	}
	if len(b.Exits()) != 0 || len(a.Exits()) != 1 {
		t.Errorf("exits a=%v b=%v", a.Exits(), b.Exits())
	}
}

func TestConnectReplacesOldPartners(t *testing.T) {
	a, b, c, d := room("a"), room("b"), room("c"), room("d")
	a.Connect(North, b)
	c.Connect(North, d)

	// a's north moves from b to d; d's old south partner c loses its link.
	a.Connect(North, d)

	if a.North() != d || d.South() != a {
		t.Fatal("new link missing")
	}
	if b.South() != nil {
		t.Error("b still points back to a")
	}
	if c.North() != nil {
		t.Error("c still points at d")
	}
}

func TestConnectNilDetaches(t *testing.T) {
	a, b := room("a"), room("b")
	a.Connect(West, b)
	if err := a.Connect(West, nil); err != nil {
		t.Fatal(err)
	}
	if a.West() != nil || b.East() != nil {
		t.Error("link not removed on both sides")
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		token   string
		want    Direction
		wantErr bool
	}{
		{"north", North, false},
		{"S", South, false},
		{" East ", East, false},
		{"w", West, false},
		{"up", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseDirection(tt.token)
			if tt.wantErr {
				var dirErr *InvalidDirectionError
				if !errors.As(err, &dirErr) || dirErr.Token != tt.token {
					t.Fatalf("got %v, want InvalidDirectionError for %q", err, tt.token)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("got %v, %v; want %v", got, err, tt.want)
			}
		})
	}
}

func TestRoomContents(t *testing.T) {
	r := room("a")
	f := combat.NewEncounterFactory(combat.NewSource(3))
	slime, goblin := f.CreateSlime(), f.CreateGoblin()
	r.AddEncounter(slime)
	r.AddEncounter(goblin)
	r.AddItem(combat.NewHealingPotion(10))

	if _, ok := r.TakeItem(1); ok {
		t.Error("took a missing item")
	}
	if it, ok := r.TakeItem(0); !ok || it.Name() != "Healing Potion (10hp)" {
		t.Errorf("took %v, %v", it, ok)
	}
	if len(r.Items()) != 0 {
		t.Error("item still in room")
	}

	slime.ApplyDamage(100)
	if r.Cleared() {
		t.Error("room cleared with a goblin alive")
	}
	gone := r.RemoveDefeated()
	if len(gone) != 1 || gone[0] != slime {
		t.Fatalf("removed %v", gone)
	}
	if enc := r.Encounters(); len(enc) != 1 || enc[0] != goblin {
		t.Errorf("remaining %v", enc)
	}
}

func TestConnectSymmetryProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(2, 6).Draw(t, "rooms")
		rooms := make([]*Room, n)
		for i := range rooms {
			rooms[i] = room(string(rune('a' + i)))
		}

		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			from := rapid.IntRange(0, n-1).Draw(t, "from")
			to := rapid.IntRange(-1, n-1).Draw(t, "to")
			d := Direction(rapid.IntRange(0, 3).Draw(t, "dir"))
			var other *Room
			if to >= 0 {
				other = rooms[to]
			}
			if err := rooms[from].Connect(d, other); err != nil {
				t.Fatalf("connect: %v", err)
			}
		}

		for _, r := range rooms {
			for _, d := range Directions {
				if next := r.Neighbor(d); next != nil && next.Neighbor(d.Opposite()) != r {
					t.Fatalf("%s.%s -> %s but %s.%s is not %s", r.Name, d, next.Name, next.Name, d.Opposite(), r.Name)
				}
			}
		}
	})
}
