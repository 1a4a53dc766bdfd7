// internal/app/game.go
package app

import (
	"log"

	"github.com/segmentio/ksuid"

	"go-shooting-gallery/internal/component"
	"go-shooting-gallery/internal/config"
	"go-shooting-gallery/internal/entity"
	"go-shooting-gallery/internal/event"
	"go-shooting-gallery/internal/interfaces"
	"go-shooting-gallery/internal/system"
	"go-shooting-gallery/internal/types"
)

// FixedViewport is a play field that never changes size.
type FixedViewport struct {
	W, H float64
}

func (v FixedViewport) Size() (float64, float64) {
	return v.W, v.H
}

// seeded is implemented by random sources that can report their seed.
type seeded interface {
	Seed() int64
}

// Game holds the simulation of one shooting-gallery session at a time.
type Game struct {
	ECS             *entity.ECS
	Bus             *event.Bus
	EventDispatcher *event.Dispatcher
	Tuning          *config.Tuning
	Formation       component.Formation

	CollisionSystem     *system.CollisionSystem
	ProjectileSystem    *system.ProjectileSystem
	FormationSystem     *system.FormationSystem
	EnemyMovementSystem *system.EnemyMovementSystem
	EnemyShootingSystem *system.EnemyShootingSystem
	EnemyDamageSystem   *system.EnemyDamageSystem
	RoundSystem         *system.RoundSystem
	PlayerSystem        *system.PlayerSystem

	viewport interfaces.Viewport
	input    interfaces.Input
	seed     int64

	phase        component.Phase
	sessionID    ksuid.KSUID
	defeated     bool
	defeatReason string
	stats        Stats
}

// NewGame wires the systems together. The game starts in the menu.
func NewGame(tuning *config.Tuning, viewport interfaces.Viewport, in interfaces.Input, rng interfaces.RandomSource) *Game {
	if viewport == nil {
		panic("viewport cannot be nil")
	}
	if in == nil {
		panic("input cannot be nil")
	}
	if rng == nil {
		panic("random source cannot be nil")
	}
	if tuning == nil {
		tuning = config.DefaultTuning()
	}

	ecs := entity.NewECS()
	bus := event.NewBus()
	eventDispatcher := event.NewDispatcher()

	g := &Game{
		ECS:             ecs,
		Bus:             bus,
		EventDispatcher: eventDispatcher,
		Tuning:          tuning,
		Formation:       initialFormation(tuning),
		viewport:        viewport,
		input:           in,
		phase:           component.PhaseMenu,
	}
	if s, ok := rng.(seeded); ok {
		g.seed = s.Seed()
	}

	g.CollisionSystem = system.NewCollisionSystem(ecs, bus)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, bus, eventDispatcher)
	g.FormationSystem = system.NewFormationSystem(ecs, eventDispatcher, rng, tuning)
	g.EnemyMovementSystem = system.NewEnemyMovementSystem(ecs, g, tuning)
	g.EnemyShootingSystem = system.NewEnemyShootingSystem(ecs, bus, tuning)
	g.EnemyDamageSystem = system.NewEnemyDamageSystem(ecs, bus, eventDispatcher)
	g.RoundSystem = system.NewRoundSystem(ecs, bus, eventDispatcher)
	g.PlayerSystem = system.NewPlayerSystem(ecs, bus, g, tuning)

	listener := &GameEventListener{game: g}
	for _, t := range []event.EventType{
		event.SessionStarted,
		event.SessionEnded,
		event.RoundStarted,
		event.EnemyDestroyed,
		event.BulletFired,
		event.PlayerDefeated,
	} {
		eventDispatcher.Subscribe(t, listener)
	}

	return g
}

func initialFormation(t *config.Tuning) component.Formation {
	return component.Formation{
		Rows:    t.Formation.Rows,
		Cols:    t.Formation.Cols,
		CenterX: t.Formation.CenterX,
		CenterY: t.Formation.CenterY,
		Round:   1,
	}
}

// Phase is the current session state.
func (g *Game) Phase() component.Phase {
	return g.phase
}

// Round is the wave in play, or 0 before the first wave spawned.
func (g *Game) Round() int {
	return g.Formation.Round - 1
}

// Enemies is the number of enemies on the board.
func (g *Game) Enemies() int {
	return len(g.ECS.Enemies)
}

// PlayerID is the ship of the running session.
func (g *Game) PlayerID() types.EntityID {
	return g.PlayerSystem.PlayerID()
}

// SessionID identifies the running or last session. It is empty before the first Start.
func (g *Game) SessionID() string {
	if g.sessionID.IsNil() {
		return ""
	}
	return g.sessionID.String()
}

// Stats returns the counters of the running or last session.
func (g *Game) Stats() Stats {
	return g.stats
}

// Start enters active play. The first wave spawns on the next Update.
func (g *Game) Start() {
	if g.phase == component.PhaseActivePlay {
		return
	}
	g.phase = component.PhaseActivePlay
	g.sessionID = ksuid.New()
	g.defeated = false
	g.defeatReason = ""

	g.PlayerSystem.Spawn()
	g.EventDispatcher.Dispatch(event.Event{Type: event.SessionStarted, Data: event.SessionInfo{
		ID:   g.sessionID.String(),
		Seed: g.seed,
	}})
}

// Defeat ends active play once the current tick has finished.
// Only the first reason of a tick is kept.
func (g *Game) Defeat(reason string) {
	if g.phase != component.PhaseActivePlay || g.defeated {
		return
	}
	g.defeated = true
	g.defeatReason = reason
}

// Stop leaves active play and tears the board down. Stopping in the menu does nothing.
func (g *Game) Stop() {
	if g.phase != component.PhaseActivePlay {
		return
	}
	g.phase = component.PhaseMenu

	if g.defeated {
		g.EventDispatcher.Dispatch(event.Event{Type: event.PlayerDefeated, Data: g.defeatReason})
	}

	g.ProjectileSystem.Clear()
	g.FormationSystem.Clear()
	g.PlayerSystem.Clear()
	g.ECS.Flush()
	g.Bus.Reset()

	g.EnemyMovementSystem.Reset()
	g.RoundSystem.Reset()
	g.Formation.Reset(initialFormation(g.Tuning))

	reason := g.defeatReason
	if reason == "" {
		reason = "stopped"
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.SessionEnded, Data: event.SessionInfo{
		ID:     g.sessionID.String(),
		Seed:   g.seed,
		Reason: reason,
	}})
	g.defeated = false
	g.defeatReason = ""
}

// Update advances active play by one tick. It does nothing in the menu.
func (g *Game) Update(deltaTime float64) {
	if g.phase != component.PhaseActivePlay {
		return
	}
	if limit := g.Tuning.Session.MaxDeltaTime; deltaTime > limit {
		deltaTime = limit
	}
	g.Bus.Reset()
	g.stats.Ticks++
	g.stats.Elapsed += deltaTime

	g.PlayerSystem.Update(deltaTime, g.input, g.viewport)
	g.EnemyMovementSystem.Update(deltaTime, g.viewport)
	g.EnemyShootingSystem.Update(deltaTime)

	g.ProjectileSystem.Update(deltaTime, g.viewport)
	g.ProjectileSystem.SpawnRequested()
	g.ECS.Flush()

	g.CollisionSystem.Update()
	g.ProjectileSystem.OnCollisions()
	g.EnemyDamageSystem.OnCollisions()
	g.PlayerSystem.OnCollisions()
	g.ECS.Flush()

	if g.RoundSystem.Update() {
		g.ProjectileSystem.OnRoundOver()
		g.ECS.Flush()
		g.FormationSystem.Spawn(&g.Formation)
		// Re-arm now, a wave wiped out on its first tick must still end.
		g.RoundSystem.Update()
	}

	if g.defeated {
		log.Printf("Session %s lost: %s", g.sessionID, g.defeatReason)
		g.Stop()
	}
}
