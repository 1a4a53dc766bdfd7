package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-shooting-gallery/internal/component"
	"go-shooting-gallery/internal/types"
)

func TestNewEntity_IDsStartAtOneAndIncrease(t *testing.T) {
	ecs := NewECS()
	a := ecs.NewEntity()
	b := ecs.NewEntity()
	assert.Equal(t, types.EntityID(1), a)
	assert.Equal(t, types.EntityID(2), b)
	assert.True(t, ecs.Exists(a))
	assert.False(t, ecs.Exists(types.NoEntity))
	assert.Equal(t, 2, ecs.Count())
}

func TestDespawn_DeferredUntilFlush(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{}
	ecs.Bullets[id] = &component.Bullet{VY: 1}

	ecs.Despawn(id)
	ecs.Despawn(id)
	assert.True(t, ecs.Exists(id), "marked entity still resolves before flush")
	assert.True(t, ecs.IsBullet(id))
	assert.True(t, ecs.Doomed(id))

	removed := ecs.Flush()
	assert.Equal(t, 1, removed)
	assert.False(t, ecs.Exists(id))
	assert.False(t, ecs.IsBullet(id))
	assert.Empty(t, ecs.Positions)
	assert.False(t, ecs.Doomed(id))
	assert.Zero(t, ecs.Flush())
}

func TestDespawn_UnknownIDIgnored(t *testing.T) {
	ecs := NewECS()
	ecs.Despawn(42)
	assert.Zero(t, ecs.Flush())
}

func TestEnemy_StaleReferenceIsAbsent(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Enemies[id] = &component.Enemy{}

	e, ok := ecs.Enemy(id)
	require.True(t, ok)
	require.NotNil(t, e)

	ecs.Despawn(id)
	ecs.Flush()
	_, ok = ecs.Enemy(id)
	assert.False(t, ok)
	_, ok = ecs.Enemy(types.NoEntity)
	assert.False(t, ok)
}

func TestSortedIDs_AscendingSpawnOrder(t *testing.T) {
	ecs := NewECS()
	for i := 0; i < 10; i++ {
		id := ecs.NewEntity()
		ecs.Positions[id] = &component.Position{X: float64(i)}
	}
	ids := SortedIDs(ecs.Positions)
	require.Len(t, ids, 10)
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}
}
