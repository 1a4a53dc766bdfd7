package system

import (
	"go-shooting-gallery/internal/component"
	"go-shooting-gallery/internal/config"
	"go-shooting-gallery/internal/entity"
	"go-shooting-gallery/internal/event"
	"go-shooting-gallery/internal/types"
)

type viewport struct{ w, h float64 }

func (v viewport) Size() (float64, float64) { return v.w, v.h }

type constRand float64

func (r constRand) Float64() float64 { return float64(r) }

type recordingSession struct {
	reasons []string
}

func (s *recordingSession) Defeat(reason string) {
	s.reasons = append(s.reasons, reason)
}

type world struct {
	ecs      *entity.ECS
	bus      *event.Bus
	disp     *event.Dispatcher
	session  *recordingSession
	tuning   *config.Tuning
	received []event.Event
}

func newWorld() *world {
	w := &world{
		ecs:     entity.NewECS(),
		bus:     event.NewBus(),
		disp:    event.NewDispatcher(),
		session: &recordingSession{},
		tuning:  config.DefaultTuning(),
	}
	record := event.ListenerFunc(func(e event.Event) { w.received = append(w.received, e) })
	for _, t := range []event.EventType{event.EnemyDestroyed, event.BulletFired, event.RoundStarted, event.RoundOver} {
		w.disp.Subscribe(t, record)
	}
	return w
}

func (w *world) box(x, y, size float64) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Colliders[id] = component.NewCollider(size, size)
	return id
}

func (w *world) bullet(x, y, vx, vy float64) types.EntityID {
	id := w.box(x, y, 10)
	w.ecs.Bullets[id] = &component.Bullet{VX: vx, VY: vy}
	return id
}

func (w *world) enemy(x, y float64) types.EntityID {
	id := w.box(x, y, 20)
	w.ecs.Enemies[id] = &component.Enemy{}
	w.ecs.ShootCycles[id] = &component.ShootCycle{Timer: 1, Reset: 5}
	return id
}

func (w *world) count(t event.EventType) int {
	n := 0
	for _, e := range w.received {
		if e.Type == t {
			n++
		}
	}
	return n
}
