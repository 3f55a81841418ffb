// Package gamestate implements the progress state store: the canonical shape
// of a player's save data and every operation that evolves it.
//
// All mutators are copy-on-write: they return a new ProgressData and never
// touch the input snapshot. The caller owns sequencing by threading the
// returned snapshot into the next call. There is no I/O in this package;
// persistence belongs to the repositories layer.
package gamestate

import (
	"maps"

	"github.com/questforge/adventure-api/internal/entities/adventure"
	"github.com/questforge/adventure-api/internal/errors"
	"github.com/questforge/adventure-api/internal/pkg/clock"
	"github.com/questforge/adventure-api/internal/pkg/idgen"
)

// Store owns creation, mutation, validation, and migration of ProgressData.
type Store struct {
	clock clock.Clock
	idGen idgen.Generator
}

// Config contains configuration for the progress state store.
type Config struct {
	// Clock stamps choice records, inventory acquisitions, and stat updates.
	// Defaults to the real clock.
	Clock clock.Clock
	// IDGenerator seeds play-session identifiers. Defaults to UUIDs.
	IDGenerator idgen.Generator
}

// New creates a new progress state store
func New(cfg *Config) (*Store, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	g := cfg.IDGenerator
	if g == nil {
		g = idgen.NewUUID("play")
	}

	return &Store{
		clock: c,
		idGen: g,
	}, nil
}

// NewInitialProgress returns the zero state for a fresh adventure: empty
// history, inventory, and stats, no party, start time now, current version.
// The sessionID seeds the play-session tag; when empty a new one is generated.
func (s *Store) NewInitialProgress(sessionID string) adventure.ProgressData {
	playSession := sessionID
	if playSession == "" {
		playSession = s.idGen.Generate()
	}

	return adventure.ProgressData{
		VisitedScenarios: []string{},
		ChoiceHistory:    []adventure.ChoiceRecord{},
		Inventory:        map[string]adventure.InventoryItem{},
		PlayerStats:      map[string]adventure.PlayerStat{},
		GameplayStats: adventure.GameplayStats{
			StartTime:          s.clock.Now().Unix(),
			TotalChoicesMade:   0,
			CurrentPlaySession: playSession,
		},
		Version: adventure.CurrentVersion,
	}
}

// RecordChoice appends one record to the choice history and increments the
// total choice counter. Node ids are not checked against the story graph;
// that validation belongs to the story service.
func (s *Store) RecordChoice(p adventure.ProgressData, nodeID, choiceID, choiceText, nextNodeID string) adventure.ProgressData {
	out := cloneProgress(p)
	out.ChoiceHistory = append(out.ChoiceHistory, adventure.ChoiceRecord{
		NodeID:     nodeID,
		ChoiceID:   choiceID,
		ChoiceText: choiceText,
		NextNodeID: nextNodeID,
		Timestamp:  s.clock.Now().Unix(),
	})
	out.GameplayStats.TotalChoicesMade++
	return out
}

// RecordVisitedScenario inserts a node id into the visited set. Idempotent:
// a node already present adds no new entry.
func (s *Store) RecordVisitedScenario(p adventure.ProgressData, nodeID string) adventure.ProgressData {
	if HasVisitedScenario(p, nodeID) {
		return p
	}
	out := cloneProgress(p)
	out.VisitedScenarios = append(out.VisitedScenarios, nodeID)
	return out
}

// AddInventoryItem adds quantity of an item. An existing entry accumulates
// quantity and keeps its name and description; a new entry is stamped with
// the acquisition time.
func (s *Store) AddInventoryItem(p adventure.ProgressData, itemID, name string, quantity int, description string) adventure.ProgressData {
	out := cloneProgress(p)
	if existing, ok := out.Inventory[itemID]; ok {
		existing.Quantity += quantity
		out.Inventory[itemID] = existing
		return out
	}
	out.Inventory[itemID] = adventure.InventoryItem{
		Name:        name,
		Quantity:    quantity,
		AcquiredAt:  s.clock.Now().Unix(),
		Description: description,
	}
	return out
}

// RemoveInventoryItem removes quantity of an item. Absent items are a no-op.
// An entry whose quantity drops to zero or below is deleted entirely; no
// zero-quantity entries persist.
func (s *Store) RemoveInventoryItem(p adventure.ProgressData, itemID string, quantity int) adventure.ProgressData {
	existing, ok := p.Inventory[itemID]
	if !ok {
		return p
	}
	out := cloneProgress(p)
	remaining := existing.Quantity - quantity
	if remaining <= 0 {
		delete(out.Inventory, itemID)
		return out
	}
	existing.Quantity = remaining
	out.Inventory[itemID] = existing
	return out
}

// UpdatePlayerStat overwrites the named stat. Values may be numbers, strings,
// or booleans, and a stat name is not type-locked across calls; callers are
// responsible for consistency.
func (s *Store) UpdatePlayerStat(p adventure.ProgressData, name string, value any) adventure.ProgressData {
	out := cloneProgress(p)
	out.PlayerStats[name] = adventure.PlayerStat{
		Value:       value,
		LastUpdated: s.clock.Now().Unix(),
	}
	return out
}

// cloneProgress copies the snapshot so mutators never alias the caller's
// maps and slices. The party pointer is shared; parties are only ever
// replaced wholesale.
func cloneProgress(p adventure.ProgressData) adventure.ProgressData {
	out := p
	out.VisitedScenarios = append([]string{}, p.VisitedScenarios...)
	out.ChoiceHistory = append([]adventure.ChoiceRecord{}, p.ChoiceHistory...)
	out.Inventory = maps.Clone(p.Inventory)
	if out.Inventory == nil {
		out.Inventory = map[string]adventure.InventoryItem{}
	}
	out.PlayerStats = maps.Clone(p.PlayerStats)
	if out.PlayerStats == nil {
		out.PlayerStats = map[string]adventure.PlayerStat{}
	}
	return out
}
