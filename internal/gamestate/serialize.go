package gamestate

import (
	"encoding/json"
	"fmt"

	"github.com/questforge/adventure-api/internal/entities/adventure"
)

// SerializationError reports that an envelope could not be encoded to text.
// Structurally invalid progress data is never the cause; it is healed by
// migration before encoding.
type SerializationError struct {
	Cause error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("failed to encode game state: %v", e.Cause)
}

func (e *SerializationError) Unwrap() error {
	return e.Cause
}

// DeserializationError reports text that could not be decoded into a
// structure at all. Malformed schemas inside well-formed text do not raise
// it; they are healed by migration instead.
type DeserializationError struct {
	Cause error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("failed to decode game state: %v", e.Cause)
}

func (e *DeserializationError) Unwrap() error {
	return e.Cause
}

// serializedRecord defers progress decoding so a legacy or partial payload
// inside an otherwise well-formed envelope never fails the decode.
type serializedRecord struct {
	ID            string          `json:"id"`
	SessionID     string          `json:"session_id"`
	StoryID       string          `json:"story_id"`
	CurrentNodeID string          `json:"current_node_id"`
	ProgressData  json.RawMessage `json:"progress_data"`
	CreatedAt     int64           `json:"created_at,omitempty"`
	UpdatedAt     int64           `json:"updated_at,omitempty"`
}

// Serialize encodes a persisted envelope to its flat text form. Progress
// data is validated and, when invalid, migrated before encoding, so the
// stored form is always current-version. Fails only when the encode step
// itself fails.
func (s *Store) Serialize(rec *adventure.GameStateRecord) (string, error) {
	healed := *rec
	if !Validate(healed.ProgressData) {
		healed.ProgressData = s.Migrate(healed.ProgressData)
	}

	data, err := json.Marshal(healed)
	if err != nil {
		return "", &SerializationError{Cause: err}
	}
	return string(data), nil
}

// Deserialize decodes the flat text form back into an envelope. The embedded
// progress data is validated and migrated after decode, so callers never
// observe a stale or partial shape. Fails only when the text cannot be
// decoded into a structure at all.
func (s *Store) Deserialize(text string) (*adventure.GameStateRecord, error) {
	var raw serializedRecord
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, &DeserializationError{Cause: err}
	}

	return &adventure.GameStateRecord{
		ID:            raw.ID,
		SessionID:     raw.SessionID,
		StoryID:       raw.StoryID,
		CurrentNodeID: raw.CurrentNodeID,
		ProgressData:  s.MigrateRaw(raw.ProgressData),
		CreatedAt:     raw.CreatedAt,
		UpdatedAt:     raw.UpdatedAt,
	}, nil
}
