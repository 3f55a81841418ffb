// Package gamestate provides the interface for game state persistence
package gamestate

//go:generate mockgen -destination=mock/mock_repository.go -package=gamestatemock github.com/questforge/adventure-api/internal/repositories/gamestate Repository

import (
	"context"

	"github.com/questforge/adventure-api/internal/entities/adventure"
)

// Repository defines the interface for game state persistence.
// The stored form is the serialized envelope text; implementations store and
// retrieve it byte-for-byte and run it through the codec on the way in and
// out, so legacy or partial records are healed on read.
type Repository interface {
	// Create creates a new game state record
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a record with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a game state record by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the record doesn't exist
	// Returns errors.DataLoss if the stored text cannot be decoded
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update updates an existing game state record
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the record doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes a game state record by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the record doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListBySessionID retrieves all game states for a session
	// Returns errors.InvalidArgument for empty session IDs
	// Returns errors.Internal for storage failures
	ListBySessionID(ctx context.Context, input ListBySessionIDInput) (*ListBySessionIDOutput, error)

	// ListByStoryID retrieves all game states for a story
	// Returns errors.InvalidArgument for empty story IDs
	// Returns errors.Internal for storage failures
	ListByStoryID(ctx context.Context, input ListByStoryIDInput) (*ListByStoryIDOutput, error)

	// GetBySessionAndStory retrieves the most recently updated game state
	// matching both a session and a story, for resuming an adventure
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if no record matches both
	// Returns errors.Internal for storage failures
	GetBySessionAndStory(ctx context.Context, input GetBySessionAndStoryInput) (*GetBySessionAndStoryOutput, error)
}

// Codec serializes envelopes to and from their stored text form.
// The gamestate store implements it.
type Codec interface {
	Serialize(rec *adventure.GameStateRecord) (string, error)
	Deserialize(text string) (*adventure.GameStateRecord, error)
}

// CreateInput defines the input for creating a game state record
type CreateInput struct {
	Record *adventure.GameStateRecord
}

// CreateOutput defines the output for creating a game state record
type CreateOutput struct {
	Record *adventure.GameStateRecord
}

// GetInput defines the input for getting a game state record
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a game state record
type GetOutput struct {
	Record *adventure.GameStateRecord
}

// UpdateInput defines the input for updating a game state record
type UpdateInput struct {
	Record *adventure.GameStateRecord
}

// UpdateOutput defines the output for updating a game state record
type UpdateOutput struct {
	Record *adventure.GameStateRecord
}

// DeleteInput defines the input for deleting a game state record
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a game state record
type DeleteOutput struct {
	// Empty for now, can be extended later
}

// ListBySessionIDInput defines the input for listing game states by session
type ListBySessionIDInput struct {
	SessionID string
}

// ListBySessionIDOutput defines the output for listing game states by session
type ListBySessionIDOutput struct {
	Records []*adventure.GameStateRecord
}

// ListByStoryIDInput defines the input for listing game states by story
type ListByStoryIDInput struct {
	StoryID string
}

// ListByStoryIDOutput defines the output for listing game states by story
type ListByStoryIDOutput struct {
	Records []*adventure.GameStateRecord
}

// GetBySessionAndStoryInput defines the input for the resume lookup
type GetBySessionAndStoryInput struct {
	SessionID string
	StoryID   string
}

// GetBySessionAndStoryOutput defines the output for the resume lookup
type GetBySessionAndStoryOutput struct {
	Record *adventure.GameStateRecord
}
