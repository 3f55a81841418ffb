// Package adventure defines the service interface for adventure game
// state operations. Implementations live in the orchestrators package.
package adventure

import (
	"context"

	"github.com/questforge/adventure-api/internal/entities/adventure"
	"github.com/questforge/adventure-api/internal/party"
)

//go:generate mockgen -destination=mock/mock_service.go -package=adventuremock github.com/questforge/adventure-api/internal/services/adventure Service

// Service orchestrates game state lifecycle, progress mutation, and
// party management.
type Service interface {
	// StartAdventure creates a new game state for a session and story.
	StartAdventure(ctx context.Context, input *StartAdventureInput) (*StartAdventureOutput, error)

	// ResumeAdventure finds the most recent game state for a session and
	// story so an in-progress adventure can continue.
	ResumeAdventure(ctx context.Context, input *ResumeAdventureInput) (*ResumeAdventureOutput, error)

	// GetGameState retrieves a game state by ID.
	GetGameState(ctx context.Context, input *GetGameStateInput) (*GetGameStateOutput, error)

	// ListGameStatesBySession retrieves all game states for a session.
	ListGameStatesBySession(ctx context.Context, input *ListGameStatesBySessionInput) (*ListGameStatesBySessionOutput, error)

	// DeleteGameState removes a game state.
	DeleteGameState(ctx context.Context, input *DeleteGameStateInput) (*DeleteGameStateOutput, error)

	// RecordChoice appends a player choice and advances the current node.
	RecordChoice(ctx context.Context, input *RecordChoiceInput) (*RecordChoiceOutput, error)

	// VisitScenario marks a scenario as visited.
	VisitScenario(ctx context.Context, input *VisitScenarioInput) (*VisitScenarioOutput, error)

	// AddInventoryItem adds quantity of an item to the inventory.
	AddInventoryItem(ctx context.Context, input *AddInventoryItemInput) (*AddInventoryItemOutput, error)

	// RemoveInventoryItem removes quantity of an item from the inventory.
	RemoveInventoryItem(ctx context.Context, input *RemoveInventoryItemInput) (*RemoveInventoryItemOutput, error)

	// UpdatePlayerStat sets a named player stat.
	UpdatePlayerStat(ctx context.Context, input *UpdatePlayerStatInput) (*UpdatePlayerStatOutput, error)

	// ListClasses returns the available party member classes.
	ListClasses(ctx context.Context, input *ListClassesInput) (*ListClassesOutput, error)

	// CreatePartyMember builds a new party member from a class.
	CreatePartyMember(ctx context.Context, input *CreatePartyMemberInput) (*CreatePartyMemberOutput, error)

	// SetParty validates and attaches a party configuration to a game state.
	SetParty(ctx context.Context, input *SetPartyInput) (*SetPartyOutput, error)

	// GetParty retrieves the party configuration of a game state,
	// migrated to the current character model version.
	GetParty(ctx context.Context, input *GetPartyInput) (*GetPartyOutput, error)
}

// StartAdventureInput defines what's needed to start an adventure
type StartAdventureInput struct {
	SessionID   string
	StoryID     string
	StartNodeID string
}

// StartAdventureOutput returns the created game state
type StartAdventureOutput struct {
	Record *adventure.GameStateRecord
}

// ResumeAdventureInput identifies the adventure to resume
type ResumeAdventureInput struct {
	SessionID string
	StoryID   string
}

// ResumeAdventureOutput returns the game state to continue from
type ResumeAdventureOutput struct {
	Record *adventure.GameStateRecord
}

// GetGameStateInput for retrieving a game state
type GetGameStateInput struct {
	GameStateID string
}

// GetGameStateOutput returns the game state
type GetGameStateOutput struct {
	Record *adventure.GameStateRecord
}

// ListGameStatesBySessionInput for listing session game states
type ListGameStatesBySessionInput struct {
	SessionID string
}

// ListGameStatesBySessionOutput returns the session's game states
type ListGameStatesBySessionOutput struct {
	Records []*adventure.GameStateRecord
}

// DeleteGameStateInput for deleting a game state
type DeleteGameStateInput struct {
	GameStateID string
}

// DeleteGameStateOutput confirms deletion
type DeleteGameStateOutput struct {
	GameStateID string
}

// RecordChoiceInput captures a player choice
type RecordChoiceInput struct {
	GameStateID string
	NodeID      string
	ChoiceID    string
	ChoiceText  string
	NextNodeID  string
}

// RecordChoiceOutput returns the updated game state
type RecordChoiceOutput struct {
	Record *adventure.GameStateRecord
}

// VisitScenarioInput marks a scenario visited
type VisitScenarioInput struct {
	GameStateID string
	ScenarioID  string
}

// VisitScenarioOutput returns the updated game state
type VisitScenarioOutput struct {
	Record *adventure.GameStateRecord
}

// AddInventoryItemInput adds items to inventory
type AddInventoryItemInput struct {
	GameStateID string
	ItemID      string
	Name        string
	Description string
	Quantity    int
}

// AddInventoryItemOutput returns the updated game state
type AddInventoryItemOutput struct {
	Record *adventure.GameStateRecord
}

// RemoveInventoryItemInput removes items from inventory
type RemoveInventoryItemInput struct {
	GameStateID string
	ItemID      string
	Quantity    int
}

// RemoveInventoryItemOutput returns the updated game state
type RemoveInventoryItemOutput struct {
	Record *adventure.GameStateRecord
}

// UpdatePlayerStatInput sets a player stat
type UpdatePlayerStatInput struct {
	GameStateID string
	Name        string
	Value       any
}

// UpdatePlayerStatOutput returns the updated game state
type UpdatePlayerStatOutput struct {
	Record *adventure.GameStateRecord
}

// ListClassesInput has no parameters yet
type ListClassesInput struct{}

// ListClassesOutput returns the class catalog
type ListClassesOutput struct {
	Classes []adventure.PartyMemberClass
}

// CreatePartyMemberInput builds a member from a class
type CreatePartyMemberInput struct {
	ClassID string
	Name    string
	Options *party.MemberOptions
}

// CreatePartyMemberOutput returns the new member
type CreatePartyMemberOutput struct {
	Member *adventure.PartyMember
}

// SetPartyInput attaches a party to a game state
type SetPartyInput struct {
	GameStateID string
	Party       *adventure.PartyConfiguration
}

// SetPartyOutput returns the updated game state and validation result
type SetPartyOutput struct {
	Record     *adventure.GameStateRecord
	Validation *party.ValidationResult
}

// GetPartyInput retrieves a game state's party
type GetPartyInput struct {
	GameStateID string
}

// GetPartyOutput returns the party, nil when none is configured
type GetPartyOutput struct {
	Party *adventure.PartyConfiguration
}
