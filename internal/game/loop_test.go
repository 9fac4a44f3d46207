package game

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"dungeon-delve/internal/combat"
	"dungeon-delve/internal/combat/mocks"
)

func TestAddPlayerDuplicateName(t *testing.T) {
	gl := NewGameLoop(Config{DungeonSize: 2, BaseDifficulty: 1, Seed: 9})
	a, _, err := gl.AddPlayer("alice")
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := gl.AddPlayer("alice")
	if err != nil {
		t.Fatal(err)
	}
	if a != "alice" || b == a {
		t.Errorf("ids %q and %q", a, b)
	}
	if gl.players[a].Expedition == gl.players[b].Expedition {
		t.Error("two sessions share one expedition")
	}
}

func TestAddPlayerBadConfig(t *testing.T) {
	gl := NewGameLoop(Config{DungeonSize: 0, Seed: 1})
	if _, _, err := gl.AddPlayer("bob"); err == nil {
		t.Fatal("expected an error for a zero-size dungeon")
	}
}

func TestReconnectResumesExpedition(t *testing.T) {
	gl := NewGameLoop(Config{DungeonSize: 2, BaseDifficulty: 1, Seed: 9})
	id, ch, _ := gl.AddPlayer("alice")
	exp := gl.players[id].Expedition

	gl.RemovePlayer(id)
	if _, open := <-ch; open {
		t.Error("render channel left open")
	}

	id, _, _ = gl.AddPlayer("alice")
	if gl.players[id].Expedition != exp {
		t.Error("reconnect started a new expedition")
	}
}

func TestTickProcessesInputAndBroadcasts(t *testing.T) {
	gl := NewGameLoop(Config{DungeonSize: 2, BaseDifficulty: 1, Seed: 9})
	id, ch, _ := gl.AddPlayer("alice")
	exp := gl.players[id].Expedition
	east := exp.Entrance().East()

	gl.InputChan() <- InputEvent{PlayerID: id, Action: ActionEast}
	gl.InputChan() <- InputEvent{PlayerID: id, Action: ActionSouth} // inside the move delay
	gl.InputChan() <- InputEvent{PlayerID: "nobody", Action: ActionWest}
	gl.tick()

	if exp.Room() != east {
		t.Fatalf("player in %q, want %q", exp.Room().Name, east.Name)
	}

	select {
	case s := <-ch:
		if s.Tick != 1 || s.Room.Name != east.Name || s.PlayerName != "alice" {
			t.Errorf("snapshot tick %d room %q player %q", s.Tick, s.Room.Name, s.PlayerName)
		}
	default:
		t.Fatal("no snapshot sent")
	}
}

func TestTickDropsFramesForSlowClients(t *testing.T) {
	gl := NewGameLoop(Config{DungeonSize: 1, BaseDifficulty: 1, Seed: 3})
	_, ch, _ := gl.AddPlayer("alice")
	for i := 0; i < 10; i++ {
		gl.tick()
	}
	if len(ch) != cap(ch) {
		t.Errorf("buffer holds %d of %d", len(ch), cap(ch))
	}
}

func TestEnemyCooldownAdvancesOnEnemyTicks(t *testing.T) {
	gl := NewGameLoop(Config{DungeonSize: 2, BaseDifficulty: 1, Seed: 9})
	id, _, _ := gl.AddPlayer("alice")
	exp := gl.players[id].Expedition

	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)
	src.EXPECT().Float64().Return(0.0).Times(1)

	dragon := combat.NewCombatant("dragon", combat.EnemyDragon)
	dragon.AttackTarget(exp.Player.Stats(), src)
	if dragon.Cooldown() != combat.HeavyCooldownLen {
		t.Fatalf("cooldown after heavy strike = %d", dragon.Cooldown())
	}
	exp.Room().AddEncounter(dragon)

	for i := 0; i < EnemyTickInterval-1; i++ {
		gl.tick()
	}
	if dragon.Cooldown() != combat.HeavyCooldownLen {
		t.Fatalf("cooldown moved before an enemy tick: %d", dragon.Cooldown())
	}
	gl.tick()
	if dragon.Cooldown() != combat.HeavyCooldownLen-1 {
		t.Errorf("cooldown = %d, want %d", dragon.Cooldown(), combat.HeavyCooldownLen-1)
	}
}

func TestRemovePlayerDuringInput(t *testing.T) {
	gl := NewGameLoop(Config{DungeonSize: 3, BaseDifficulty: 1, Seed: 4})
	if _, _, err := gl.AddPlayer("alice"); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		actions := []Action{ActionEast, ActionFight, ActionGrab, ActionWest, ActionUse}
		for i := 0; i < 200; i++ {
			gl.InputChan() <- InputEvent{PlayerID: "alice", Action: actions[i%len(actions)]}
			gl.tick()
		}
	}()

	for i := 0; i < 50; i++ {
		gl.RemovePlayer("alice")
		if _, _, err := gl.AddPlayer("alice"); err != nil {
			t.Error(err)
			break
		}
	}
	wg.Wait()
}

func TestRunStopsOnCancel(t *testing.T) {
	gl := NewGameLoop(DefaultConfig)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gl.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("run did not stop")
	}
}

func TestSecsToTicks(t *testing.T) {
	tests := []struct {
		secs float64
		want int
	}{
		{1.0, TickRate},
		{0.5, TickRate / 2},
		{0.0, 1},
		{0.001, 1},
	}
	for _, tt := range tests {
		if got := SecsToTicks(tt.secs); got != tt.want {
			t.Errorf("SecsToTicks(%v) = %d, want %d", tt.secs, got, tt.want)
		}
	}
}
