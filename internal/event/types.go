// internal/event/types.go
package event

const (
	SessionStarted EventType = "SessionStarted" // Data: SessionInfo
	SessionEnded   EventType = "SessionEnded"   // Data: SessionInfo
	RoundStarted   EventType = "RoundStarted"   // Data: RoundInfo
	RoundOver      EventType = "RoundOver"
	EnemyDestroyed EventType = "EnemyDestroyed" // Data: types.EntityID
	BulletFired    EventType = "BulletFired"    // Data: SpawnBullet
	PlayerDefeated EventType = "PlayerDefeated" // Data: string reason
)

// SessionInfo accompanies SessionStarted and SessionEnded.
type SessionInfo struct {
	ID     string
	Seed   int64
	Reason string
}

// RoundInfo accompanies RoundStarted.
type RoundInfo struct {
	Round   int
	Rows    int
	Cols    int
	Enemies int
}
