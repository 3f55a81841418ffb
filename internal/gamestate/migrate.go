package gamestate

import (
	"encoding/json"

	"github.com/questforge/adventure-api/internal/entities/adventure"
)

// Validate is the structural type guard for ProgressData. It is a shallow
// contract: the six required fields must be present (non-nil collections)
// and the version positive. Nested record shapes are intentionally not
// deep-validated.
func Validate(p adventure.ProgressData) bool {
	if p.VisitedScenarios == nil || p.ChoiceHistory == nil {
		return false
	}
	if p.Inventory == nil || p.PlayerStats == nil {
		return false
	}
	if p.GameplayStats.StartTime == 0 {
		return false
	}
	return p.Version > 0
}

// ValidateRaw applies the same shallow guard to an undecoded JSON payload:
// an object with all six required keys, sequences where sequences belong,
// mappings where mappings belong, and a positive numeric version.
func ValidateRaw(raw json.RawMessage) bool {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return false
	}

	var seq []json.RawMessage
	if err := json.Unmarshal(keys["visitedScenarios"], &seq); err != nil {
		return false
	}
	if err := json.Unmarshal(keys["choiceHistory"], &seq); err != nil {
		return false
	}

	var mapping map[string]json.RawMessage
	for _, key := range []string{"inventory", "playerStats", "gameplayStats"} {
		if err := json.Unmarshal(keys[key], &mapping); err != nil {
			return false
		}
	}

	var version float64
	if err := json.Unmarshal(keys["version"], &version); err != nil {
		return false
	}
	return version > 0
}

// Migrate flattens a partially populated or stale snapshot into the current
// shape: every missing or zero required field gets its zero-value default
// and the version is set to current unconditionally. Already-current valid
// data passes through structurally unchanged, so migrating is idempotent.
//
// Future schema generations append their own steps here, gated on the stored
// version; shipped steps are never deleted.
func (s *Store) Migrate(p adventure.ProgressData) adventure.ProgressData {
	out := p
	if out.VisitedScenarios == nil {
		out.VisitedScenarios = []string{}
	}
	if out.ChoiceHistory == nil {
		out.ChoiceHistory = []adventure.ChoiceRecord{}
	}
	if out.Inventory == nil {
		out.Inventory = map[string]adventure.InventoryItem{}
	}
	if out.PlayerStats == nil {
		out.PlayerStats = map[string]adventure.PlayerStat{}
	}
	if out.GameplayStats.StartTime == 0 {
		out.GameplayStats.StartTime = s.clock.Now().Unix()
	}
	if out.GameplayStats.CurrentPlaySession == "" {
		out.GameplayStats.CurrentPlaySession = s.idGen.Generate()
	}
	out.Version = adventure.CurrentVersion
	return out
}

// MigrateRaw absorbs an arbitrary stored payload into the current shape.
// Two paths:
//
//  1. Legacy: a payload that is not an object, or an object without a
//     "version" key, is treated as a pre-versioning free-form stat bag.
//     A fresh initial state is built and every top-level key of the legacy
//     object lands in PlayerStats with its original value.
//  2. Partial: a payload with a "version" key is decoded field-by-field
//     (malformed fields are dropped rather than failing the whole decode)
//     and then flattened via Migrate.
//
// MigrateRaw never fails: no legacy or partially written record causes an
// error, it is silently upgraded.
func (s *Store) MigrateRaw(raw json.RawMessage) adventure.ProgressData {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return s.NewInitialProgress("")
	}

	if _, ok := keys["version"]; !ok {
		out := s.NewInitialProgress("")
		now := s.clock.Now().Unix()
		for key, value := range keys {
			var stat any
			if err := json.Unmarshal(value, &stat); err != nil {
				continue
			}
			out.PlayerStats[key] = adventure.PlayerStat{Value: stat, LastUpdated: now}
		}
		return out
	}

	var p adventure.ProgressData
	tryUnmarshal(keys["visitedScenarios"], &p.VisitedScenarios)
	tryUnmarshal(keys["choiceHistory"], &p.ChoiceHistory)
	tryUnmarshal(keys["inventory"], &p.Inventory)
	tryUnmarshal(keys["playerStats"], &p.PlayerStats)
	tryUnmarshal(keys["party"], &p.Party)
	tryUnmarshal(keys["gameplayStats"], &p.GameplayStats)
	return s.Migrate(p)
}

func tryUnmarshal(raw json.RawMessage, target any) {
	if len(raw) == 0 {
		return
	}
	_ = json.Unmarshal(raw, target)
}
