// Package adventure implements the adventure game entities
package adventure

// CurrentVersion is the schema generation tag for ProgressData. Every record
// that passes through validate/migrate carries this version. Bumping it is
// the only sanctioned way to introduce a new progress schema generation.
const CurrentVersion = 1

// ProgressData is the serializable record of one player's journey through
// an adventure: visited nodes, choice log, inventory, free-form stats, and
// an optional party.
// NOTE: This is a data-only struct. All mutation is done by the gamestate
// package through copy-on-write functions, not here.
type ProgressData struct {
	VisitedScenarios []string                 `json:"visitedScenarios"`
	ChoiceHistory    []ChoiceRecord           `json:"choiceHistory"`
	Inventory        map[string]InventoryItem `json:"inventory"`
	PlayerStats      map[string]PlayerStat    `json:"playerStats"`
	Party            *PartyConfiguration      `json:"party,omitempty"`
	GameplayStats    GameplayStats            `json:"gameplayStats"`
	Version          int                      `json:"version"`
}

// ChoiceRecord is one entry in the append-only choice log. Records are never
// mutated or reordered after append.
type ChoiceRecord struct {
	NodeID     string `json:"nodeId"`
	ChoiceID   string `json:"choiceId"`
	ChoiceText string `json:"choiceText"`
	NextNodeID string `json:"nextNodeId"`
	Timestamp  int64  `json:"timestamp"`
}

// InventoryItem is one owned item. Quantity is always positive; an entry
// whose quantity would reach zero is removed instead.
type InventoryItem struct {
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	AcquiredAt  int64  `json:"acquiredAt"`
	Description string `json:"description,omitempty"`
}

// PlayerStat is a free-form named stat. Value is a JSON-native scalar
// (number, string, or bool); a stat name is not type-locked across updates.
type PlayerStat struct {
	Value       any   `json:"value"`
	LastUpdated int64 `json:"lastUpdated"`
}

// GameplayStats tracks session-level counters.
type GameplayStats struct {
	StartTime          int64  `json:"startTime"`
	TotalChoicesMade   int    `json:"totalChoicesMade"`
	CurrentPlaySession string `json:"currentPlaySession"`
}

// GameStateRecord is the persisted envelope handed to the storage layer.
// The storage layer stores and retrieves the serialized form byte-for-byte.
type GameStateRecord struct {
	ID            string       `json:"id"`
	SessionID     string       `json:"session_id"`
	StoryID       string       `json:"story_id"`
	CurrentNodeID string       `json:"current_node_id"`
	ProgressData  ProgressData `json:"progress_data"`
	CreatedAt     int64        `json:"created_at,omitempty"`
	UpdatedAt     int64        `json:"updated_at,omitempty"`
}
