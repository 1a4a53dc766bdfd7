// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-shooting-gallery/internal/component"
	"go-shooting-gallery/internal/types"
)

// ECS is the entity registry: one table per component kind, keyed by entity id.
// Relations between entities are stored as ids and resolved through the tables on every access.
type ECS struct {
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Colliders   map[types.EntityID]*component.Collider
	Bullets     map[types.EntityID]*component.Bullet
	Enemies     map[types.EntityID]*component.Enemy
	ShootCycles map[types.EntityID]*component.ShootCycle
	Players     map[types.EntityID]*component.Player
	Renderables map[types.EntityID]*component.Renderable

	live    map[types.EntityID]struct{}
	doomed  map[types.EntityID]struct{}
	pending []types.EntityID
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Colliders:   make(map[types.EntityID]*component.Collider),
		Bullets:     make(map[types.EntityID]*component.Bullet),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		ShootCycles: make(map[types.EntityID]*component.ShootCycle),
		Players:     make(map[types.EntityID]*component.Player),
		Renderables: make(map[types.EntityID]*component.Renderable),
		live:        make(map[types.EntityID]struct{}),
		doomed:      make(map[types.EntityID]struct{}),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	ecs.live[id] = struct{}{}
	return id
}

// Exists reports whether id has been issued and not yet removed by Flush.
func (ecs *ECS) Exists(id types.EntityID) bool {
	_, ok := ecs.live[id]
	return ok
}

// Count is the number of live entities.
func (ecs *ECS) Count() int {
	return len(ecs.live)
}

// IsBullet, IsEnemy and IsPlayer classify an id. Stale ids are none of them.
func (ecs *ECS) IsBullet(id types.EntityID) bool {
	_, ok := ecs.Bullets[id]
	return ok
}

func (ecs *ECS) IsEnemy(id types.EntityID) bool {
	_, ok := ecs.Enemies[id]
	return ok
}

func (ecs *ECS) IsPlayer(id types.EntityID) bool {
	_, ok := ecs.Players[id]
	return ok
}

// Enemy resolves an enemy id; ok is false once the enemy is gone.
func (ecs *ECS) Enemy(id types.EntityID) (*component.Enemy, bool) {
	if id == types.NoEntity {
		return nil, false
	}
	e, ok := ecs.Enemies[id]
	return e, ok
}

// Despawn marks id for removal. The entity keeps resolving until the next Flush,
// so every reaction in one phase sees the same world. Marking twice is harmless.
func (ecs *ECS) Despawn(id types.EntityID) {
	if !ecs.Exists(id) {
		return
	}
	if _, marked := ecs.doomed[id]; marked {
		return
	}
	ecs.doomed[id] = struct{}{}
	ecs.pending = append(ecs.pending, id)
}

// Doomed reports whether id is waiting for the next Flush.
func (ecs *ECS) Doomed(id types.EntityID) bool {
	_, ok := ecs.doomed[id]
	return ok
}

// Flush removes every marked entity from all tables and returns how many were removed.
func (ecs *ECS) Flush() int {
	n := len(ecs.pending)
	for _, id := range ecs.pending {
		ecs.remove(id)
	}
	ecs.pending = ecs.pending[:0]
	clear(ecs.doomed)
	return n
}

func (ecs *ECS) remove(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Colliders, id)
	delete(ecs.Bullets, id)
	delete(ecs.Enemies, id)
	delete(ecs.ShootCycles, id)
	delete(ecs.Players, id)
	delete(ecs.Renderables, id)
	delete(ecs.live, id)
}

// SortedIDs returns the keys of a component table in ascending order, which is spawn order.
func SortedIDs[T any](table map[types.EntityID]*T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
