package game

import (
	"errors"
	"testing"

	"dungeon-delve/internal/combat"
	"dungeon-delve/internal/dungeon"
)

func newExpedition(t *testing.T, size int, seed int64) *Expedition {
	t.Helper()
	e, err := NewExpedition(combat.NewPlayer("Hero"), Config{DungeonSize: size, BaseDifficulty: 1}, combat.NewSource(seed))
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestNewExpeditionRejectsBadConfig(t *testing.T) {
	_, err := NewExpedition(combat.NewPlayer("Hero"), Config{DungeonSize: 0}, combat.NewSource(1))
	var paramErr *dungeon.InvalidGenerationParameterError
	if !errors.As(err, &paramErr) {
		t.Fatalf("got %v, want InvalidGenerationParameterError", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		size    int
		wantErr bool
	}{
		{0, true},
		{-3, true},
		{1, false},
		{DefaultConfig.DungeonSize, false},
		{MaxDungeonSize, false},
		{MaxDungeonSize + 1, true},
		{100000, true},
	}
	for _, tt := range tests {
		err := Config{DungeonSize: tt.size, BaseDifficulty: 1}.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("size %d: err = %v, wantErr %v", tt.size, err, tt.wantErr)
		}
	}
}

func TestMove(t *testing.T) {
	e := newExpedition(t, 3, 1)

	if err := e.Move(dungeon.North); !errors.Is(err, ErrNoExit) {
		t.Errorf("north from entrance: %v", err)
	}
	var dirErr *dungeon.InvalidDirectionError
	if err := e.Move(dungeon.Direction(7)); !errors.As(err, &dirErr) {
		t.Errorf("invalid direction: %v", err)
	}
	if e.Room() != e.Entrance() {
		t.Fatal("failed moves changed the room")
	}

	if err := e.Move(dungeon.East); err != nil {
		t.Fatal(err)
	}
	if e.Room() != e.Entrance().East() || e.Visited() != 2 {
		t.Errorf("visited %d rooms", e.Visited())
	}
	if err := e.Move(dungeon.West); err != nil || e.Room() != e.Entrance() {
		t.Errorf("back west: %v", err)
	}
	if e.Visited() != 2 {
		t.Errorf("revisit counted: %d", e.Visited())
	}
}

func TestTakeAndUse(t *testing.T) {
	e := newExpedition(t, 1, 3) // the lone room holds the boss loot

	if _, err := e.Take(5); !errors.Is(err, ErrNoSuchTarget) {
		t.Errorf("take missing item: %v", err)
	}
	it, err := e.Take(0)
	if err != nil || it.Name() != "Legendary Sword" {
		t.Fatalf("took %v, %v", it, err)
	}
	if len(e.Room().Items()) != 1 || len(e.Player.Inventory()) != 1 {
		t.Fatal("item did not move to the inventory")
	}

	used, err := e.Use(0)
	if err != nil || !used || e.Player.AttackPower() != 40 {
		t.Errorf("use sword: %v %v attack %d", used, err, e.Player.AttackPower())
	}
	if used, _ := e.Use(0); used {
		t.Error("sword equipped twice")
	}
	if _, err := e.Use(3); !errors.Is(err, ErrNoSuchTarget) {
		t.Errorf("use missing item: %v", err)
	}
}

func TestFightToVictory(t *testing.T) {
	e := newExpedition(t, 1, 5)
	e.Take(0)
	e.Take(0)
	e.Use(0)
	e.Use(1)

	if _, err := e.Fight(1); !errors.Is(err, ErrNoSuchTarget) {
		t.Errorf("fight missing enemy: %v", err)
	}
	for i := 0; i < 20 && e.State() == StatePlaying; i++ {
		if _, err := e.Fight(0); err != nil {
			t.Fatal(err)
		}
	}

	if e.State() != StateVictory {
		t.Fatalf("state %v, health %d", e.State(), e.Player.Health())
	}
	if len(e.Room().Encounters()) != 0 {
		t.Error("defeated boss still in the room")
	}
	if e.Player.Experience() == 0 && e.Player.Level() == 1 {
		t.Error("no experience for the boss")
	}
	if _, err := e.Fight(0); !errors.Is(err, ErrExpeditionOver) {
		t.Errorf("fight after victory: %v", err)
	}
}

func TestFightToGameOver(t *testing.T) {
	e := newExpedition(t, 1, 8)
	for i := 0; i < 50 && e.State() == StatePlaying; i++ {
		e.Fight(0)
	}

	if e.State() != StateGameOver || e.Player.Alive() {
		t.Fatalf("state %v, health %d", e.State(), e.Player.Health())
	}
	if err := e.Move(dungeon.East); !errors.Is(err, ErrExpeditionOver) {
		t.Errorf("move after game over: %v", err)
	}
	if _, err := e.Take(0); !errors.Is(err, ErrExpeditionOver) {
		t.Errorf("take after game over: %v", err)
	}
}

func TestLogIsBounded(t *testing.T) {
	e := newExpedition(t, 1, 2)
	e.Take(0)
	for i := 0; i < 20; i++ {
		e.Use(0)
	}
	if n := len(e.Log()); n != maxLogLines {
		t.Errorf("log has %d lines, want %d", n, maxLogLines)
	}
}

func TestSnapshot(t *testing.T) {
	e := newExpedition(t, 1, 4)
	s := e.Snapshot(7)

	if s.Tick != 7 || s.State != StatePlaying || s.PlayerName != "Hero" {
		t.Errorf("header %+v", s)
	}
	if s.Health != 100 || s.MaxHealth != 100 || s.Level != 1 {
		t.Errorf("player stats %d/%d level %d", s.Health, s.MaxHealth, s.Level)
	}
	if !s.Room.Boss || len(s.Room.Enemies) != 1 || len(s.Room.Loot) != 2 {
		t.Errorf("room %+v", s.Room)
	}
	if s.Room.Enemies[0].Label != combat.EnemyBoss.Name || s.Room.Enemies[0].Behavior != combat.VariantHeavyCooldown.String() {
		t.Errorf("enemy %+v", s.Room.Enemies[0])
	}
}
