// internal/system/collision.go
package system

import (
	"go-shooting-gallery/internal/entity"
	"go-shooting-gallery/internal/event"
	"go-shooting-gallery/internal/types"
)

type aabb struct {
	id                     types.EntityID
	minX, minY, maxX, maxY float64
}

// CollisionSystem finds overlapping colliders once per tick.
//
// The scan is a plain incremental all-pairs test: every entity is checked against the
// boxes of the entities processed before it. That is O(n²), which is fine for one screen
// of enemies and bullets.
type CollisionSystem struct {
	ecs    *entity.ECS
	bus    *event.Bus
	passed []aabb
}

func NewCollisionSystem(ecs *entity.ECS, bus *event.Bus) *CollisionSystem {
	return &CollisionSystem{ecs: ecs, bus: bus}
}

// Overlaps is the strict AABB test on X and Y. Touching edges do not overlap.
func Overlaps(minAX, minAY, maxAX, maxAY, minBX, minBY, maxBX, maxBY float64) bool {
	return minAX < maxBX && minAY < maxBY && minBX < maxAX && minBY < maxAY
}

// Update emits one Collision per overlapping pair, in processing order (ascending id),
// and returns how many it emitted.
func (s *CollisionSystem) Update() int {
	s.passed = s.passed[:0]
	emitted := 0

	for _, id := range entity.SortedIDs(s.ecs.Colliders) {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		minX, minY, maxX, maxY := s.ecs.Colliders[id].Bounds(*pos)

		for _, other := range s.passed {
			if Overlaps(minX, minY, maxX, maxY, other.minX, other.minY, other.maxX, other.maxY) {
				s.bus.Collisions.Push(event.Collision{A: id, B: other.id})
				emitted++
			}
		}

		s.passed = append(s.passed, aabb{id: id, minX: minX, minY: minY, maxX: maxX, maxY: maxY})
	}
	return emitted
}
