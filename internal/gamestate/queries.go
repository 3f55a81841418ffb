package gamestate

import (
	"time"

	"github.com/questforge/adventure-api/internal/entities/adventure"
)

// Query helpers. All pure; none mutate the snapshot.

// HasVisitedScenario reports whether a node id is in the visited set.
func HasVisitedScenario(p adventure.ProgressData, nodeID string) bool {
	for _, id := range p.VisitedScenarios {
		if id == nodeID {
			return true
		}
	}
	return false
}

// HasInventoryItem reports whether at least minQuantity of an item is held.
func HasInventoryItem(p adventure.ProgressData, itemID string, minQuantity int) bool {
	item, ok := p.Inventory[itemID]
	return ok && item.Quantity >= minQuantity
}

// GetPlayerStat returns the named stat value, or false when unset.
func GetPlayerStat(p adventure.ProgressData, name string) (any, bool) {
	stat, ok := p.PlayerStats[name]
	if !ok {
		return nil, false
	}
	return stat.Value, true
}

// TotalChoicesMade returns the monotonic choice counter.
func TotalChoicesMade(p adventure.ProgressData) int {
	return p.GameplayStats.TotalChoicesMade
}

// GameStartTime returns when the adventure started.
func GameStartTime(p adventure.ProgressData) time.Time {
	return time.Unix(p.GameplayStats.StartTime, 0)
}

// GameplayDuration returns whole minutes elapsed since the adventure
// started. Computed at call time, so repeated calls reflect real elapsed
// time rather than a cached figure.
func (s *Store) GameplayDuration(p adventure.ProgressData) int {
	elapsed := s.clock.Now().Unix() - p.GameplayStats.StartTime
	if elapsed < 0 {
		return 0
	}
	return int(elapsed / 60)
}
