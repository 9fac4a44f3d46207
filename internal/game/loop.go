package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"dungeon-delve/internal/combat"
)

const InputChanSize = 256

// RenderChan is the per-session channel that receives snapshots.
type RenderChan chan Snapshot

// GameLoop is the central game loop. It owns every expedition; sessions
// only talk to it through the input channel and their render channel.
type GameLoop struct {
	cfg       Config
	seed      int64
	inputCh   chan InputEvent
	tickCount uint64
	runs      int64

	mu          sync.RWMutex
	players     map[string]*Player
	renderChans map[string]RenderChan
	saved       map[string]*Expedition // unfinished runs keyed by username
}

// NewGameLoop creates a loop that generates dungeons from cfg.
func NewGameLoop(cfg Config) *GameLoop {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &GameLoop{
		cfg:         cfg,
		seed:        seed,
		inputCh:     make(chan InputEvent, InputChanSize),
		players:     make(map[string]*Player),
		renderChans: make(map[string]RenderChan),
		saved:       make(map[string]*Expedition),
	}
}

// InputChan returns the shared input channel for sessions to send events.
func (gl *GameLoop) InputChan() chan<- InputEvent {
	return gl.inputCh
}

// AddPlayer registers a player using their username as identity. A player
// who left mid-run picks the same expedition back up. Returns the effective
// player ID and the render channel.
func (gl *GameLoop) AddPlayer(name string) (string, RenderChan, error) {
	gl.mu.Lock()
	defer gl.mu.Unlock()

	id := name
	if _, online := gl.players[id]; online {
		id = fmt.Sprintf("%s_%04d", name, time.Now().UnixNano()%10000)
	}

	exp, ok := gl.saved[name]
	if ok {
		delete(gl.saved, name)
	} else {
		gl.runs++
		src := combat.NewSource(gl.seed + gl.runs)
		var err error
		exp, err = NewExpedition(combat.NewPlayer(name), gl.cfg, src)
		if err != nil {
			return "", nil, fmt.Errorf("start expedition for %s: %w", name, err)
		}
	}

	gl.players[id] = &Player{ID: id, Name: name, Expedition: exp}
	ch := make(RenderChan, 2)
	gl.renderChans[id] = ch
	return id, ch, nil
}

// RemovePlayer keeps an unfinished expedition for reconnection and
// unregisters the player.
func (gl *GameLoop) RemovePlayer(id string) {
	gl.mu.Lock()
	defer gl.mu.Unlock()

	if p, ok := gl.players[id]; ok {
		if p.Expedition.State() == StatePlaying {
			gl.saved[p.Name] = p.Expedition
		}
		delete(gl.players, id)
	}
	if ch, ok := gl.renderChans[id]; ok {
		close(ch)
		delete(gl.renderChans, id)
	}
}

// Run drives the loop at TickRate until ctx is cancelled.
func (gl *GameLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			gl.tick()
		}
	}
}

func (gl *GameLoop) tick() {
	// Drain all pending input events
drain:
	for {
		select {
		case ev := <-gl.inputCh:
			gl.processInput(ev)
		default:
			break drain
		}
	}

	gl.tickCount++
	enemyTick := gl.tickCount%uint64(EnemyTickInterval) == 0

	gl.mu.RLock()
	defer gl.mu.RUnlock()
	for id, p := range gl.players {
		if p.moveCooldown > 0 {
			p.moveCooldown--
		}
		if enemyTick {
			p.Expedition.Tick()
		}
		// Non-blocking send; slow clients drop frames
		select {
		case gl.renderChans[id] <- p.Expedition.Snapshot(gl.tickCount):
		default:
		}
	}
}

// processInput applies one event under the write lock.
func (gl *GameLoop) processInput(ev InputEvent) {
	gl.mu.Lock()
	defer gl.mu.Unlock()

	player, ok := gl.players[ev.PlayerID]
	if !ok {
		return
	}
	exp := player.Expedition
	before := exp.State()

	var err error
	switch ev.Action {
	case ActionNorth, ActionSouth, ActionEast, ActionWest:
		if player.moveCooldown > 0 {
			return
		}
		d, _ := ev.Action.Direction()
		err = exp.Move(d)
		player.moveCooldown = MoveRepeatDelay
	case ActionFight:
		_, err = exp.Fight(ev.Index)
	case ActionGrab:
		_, err = exp.Take(ev.Index)
	case ActionUse:
		_, err = exp.Use(ev.Index)
	default:
		return
	}

	switch {
	case errors.Is(err, ErrNoExit):
		exp.addLog("There is no exit that way.")
	case errors.Is(err, ErrNoSuchTarget):
		exp.addLog("Nothing there.")
	case err != nil && !errors.Is(err, ErrExpeditionOver):
		log.Printf("player %s: %v", player.ID, err)
	}

	if after := exp.State(); after != before {
		log.Printf("player %s expedition ended: %s (level %d, %d rooms visited)",
			player.ID, after, exp.Player.Level(), exp.Visited())
	}
}
