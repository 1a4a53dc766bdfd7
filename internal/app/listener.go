// internal/app/listener.go
package app

import (
	"fmt"
	"log"
	"strings"
	"time"

	"go-shooting-gallery/internal/event"
)

// Stats are the counters of one session.
type Stats struct {
	SessionID        string
	Seed             int64
	PlayerShots      int
	EnemyShots       int
	EnemiesDestroyed int
	Round            int
	Ticks            int
	Elapsed          float64 // simulated seconds
	EndReason        string
}

// Summary renders the counters as a short report.
func (s Stats) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "session    %s (seed %d)\n", s.SessionID, s.Seed)
	fmt.Fprintf(&b, "played     %s in %d ticks\n", time.Duration(s.Elapsed*float64(time.Second)).Round(time.Millisecond), s.Ticks)
	fmt.Fprintf(&b, "round      %d\n", s.Round)
	fmt.Fprintf(&b, "destroyed  %d\n", s.EnemiesDestroyed)
	fmt.Fprintf(&b, "shots      %d player, %d enemy\n", s.PlayerShots, s.EnemyShots)
	if s.EndReason != "" {
		fmt.Fprintf(&b, "ended      %s\n", s.EndReason)
	}
	return b.String()
}

// GameEventListener keeps the session counters and logs session milestones.
type GameEventListener struct {
	game *Game
}

// OnEvent implements event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	stats := &l.game.stats
	switch e.Type {
	case event.SessionStarted:
		if info, ok := e.Data.(event.SessionInfo); ok {
			*stats = Stats{SessionID: info.ID, Seed: info.Seed}
			log.Printf("Session %s started (seed %d)", info.ID, info.Seed)
		}
	case event.SessionEnded:
		if info, ok := e.Data.(event.SessionInfo); ok {
			stats.EndReason = info.Reason
			log.Printf("Session %s ended: %s", info.ID, info.Reason)
		}
	case event.RoundStarted:
		if info, ok := e.Data.(event.RoundInfo); ok {
			stats.Round = info.Round
		}
	case event.EnemyDestroyed:
		stats.EnemiesDestroyed++
	case event.BulletFired:
		if req, ok := e.Data.(event.SpawnBullet); ok {
			if req.Hostile {
				stats.EnemyShots++
			} else {
				stats.PlayerShots++
			}
		}
	case event.PlayerDefeated:
		if reason, ok := e.Data.(string); ok {
			log.Printf("Defeated: %s", reason)
		}
	}
}
