// Package adventure implements the adventure service by composing the
// pure game state store, the party manager, and the repository layer.
package adventure

import (
	"context"
	"log/slog"
	"strings"

	"github.com/questforge/adventure-api/internal/entities/adventure"
	"github.com/questforge/adventure-api/internal/errors"
	"github.com/questforge/adventure-api/internal/gamestate"
	"github.com/questforge/adventure-api/internal/party"
	"github.com/questforge/adventure-api/internal/pkg/idgen"
	gamestaterepo "github.com/questforge/adventure-api/internal/repositories/gamestate"
	adventuresvc "github.com/questforge/adventure-api/internal/services/adventure"
)

// Config holds the orchestrator's dependencies
type Config struct {
	GameStateRepo gamestaterepo.Repository
	StateStore    *gamestate.Store
	PartyManager  *party.Manager
	IDGenerator   idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.GameStateRepo == nil {
		vb.RequiredField("GameStateRepo")
	}
	if c.StateStore == nil {
		vb.RequiredField("StateStore")
	}
	if c.PartyManager == nil {
		vb.RequiredField("PartyManager")
	}
	return vb.Build()
}

// Orchestrator implements the adventure service
type Orchestrator struct {
	repo    gamestaterepo.Repository
	store   *gamestate.Store
	parties *party.Manager
	idGen   idgen.Generator
}

var _ adventuresvc.Service = (*Orchestrator)(nil)

// New creates a new adventure orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = idgen.NewUUID("game")
	}

	return &Orchestrator{
		repo:    cfg.GameStateRepo,
		store:   cfg.StateStore,
		parties: cfg.PartyManager,
		idGen:   idGen,
	}, nil
}

// StartAdventure creates a new game state for a session and story.
func (o *Orchestrator) StartAdventure(ctx context.Context, input *adventuresvc.StartAdventureInput) (*adventuresvc.StartAdventureOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if strings.TrimSpace(input.SessionID) == "" {
		vb.RequiredField("SessionID")
	}
	if strings.TrimSpace(input.StoryID) == "" {
		vb.RequiredField("StoryID")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	startNode := input.StartNodeID
	if startNode == "" {
		startNode = "start"
	}

	rec := &adventure.GameStateRecord{
		ID:            o.idGen.Generate(),
		SessionID:     input.SessionID,
		StoryID:       input.StoryID,
		CurrentNodeID: startNode,
		ProgressData:  o.store.NewInitialProgress(input.SessionID),
	}

	out, err := o.repo.Create(ctx, gamestaterepo.CreateInput{Record: rec})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "started adventure",
		"game_state_id", out.Record.ID,
		"session_id", input.SessionID,
		"story_id", input.StoryID,
	)

	return &adventuresvc.StartAdventureOutput{Record: out.Record}, nil
}

// ResumeAdventure finds the most recent game state for a session and story.
func (o *Orchestrator) ResumeAdventure(ctx context.Context, input *adventuresvc.ResumeAdventureInput) (*adventuresvc.ResumeAdventureOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.SessionID == "" {
		vb.RequiredField("SessionID")
	}
	if input.StoryID == "" {
		vb.RequiredField("StoryID")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.repo.GetBySessionAndStory(ctx, gamestaterepo.GetBySessionAndStoryInput{
		SessionID: input.SessionID,
		StoryID:   input.StoryID,
	})
	if err != nil {
		return nil, err
	}

	return &adventuresvc.ResumeAdventureOutput{Record: out.Record}, nil
}

// GetGameState retrieves a game state by ID.
func (o *Orchestrator) GetGameState(ctx context.Context, input *adventuresvc.GetGameStateInput) (*adventuresvc.GetGameStateOutput, error) {
	if input == nil || input.GameStateID == "" {
		return nil, errors.InvalidArgument("game state ID is required")
	}

	out, err := o.repo.Get(ctx, gamestaterepo.GetInput{ID: input.GameStateID})
	if err != nil {
		return nil, err
	}

	return &adventuresvc.GetGameStateOutput{Record: out.Record}, nil
}

// ListGameStatesBySession retrieves all game states for a session.
func (o *Orchestrator) ListGameStatesBySession(ctx context.Context, input *adventuresvc.ListGameStatesBySessionInput) (*adventuresvc.ListGameStatesBySessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	out, err := o.repo.ListBySessionID(ctx, gamestaterepo.ListBySessionIDInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}

	return &adventuresvc.ListGameStatesBySessionOutput{Records: out.Records}, nil
}

// DeleteGameState removes a game state.
func (o *Orchestrator) DeleteGameState(ctx context.Context, input *adventuresvc.DeleteGameStateInput) (*adventuresvc.DeleteGameStateOutput, error) {
	if input == nil || input.GameStateID == "" {
		return nil, errors.InvalidArgument("game state ID is required")
	}

	if _, err := o.repo.Delete(ctx, gamestaterepo.DeleteInput{ID: input.GameStateID}); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "deleted game state", "game_state_id", input.GameStateID)

	return &adventuresvc.DeleteGameStateOutput{GameStateID: input.GameStateID}, nil
}

// RecordChoice appends a player choice and advances the current node.
func (o *Orchestrator) RecordChoice(ctx context.Context, input *adventuresvc.RecordChoiceInput) (*adventuresvc.RecordChoiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.GameStateID == "" {
		vb.RequiredField("GameStateID")
	}
	if input.NodeID == "" {
		vb.RequiredField("NodeID")
	}
	if input.ChoiceID == "" {
		vb.RequiredField("ChoiceID")
	}
	if input.NextNodeID == "" {
		vb.RequiredField("NextNodeID")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	rec, err := o.applyProgress(ctx, input.GameStateID, func(p adventure.ProgressData) adventure.ProgressData {
		return o.store.RecordChoice(p, input.NodeID, input.ChoiceID, input.ChoiceText, input.NextNodeID)
	}, input.NextNodeID)
	if err != nil {
		return nil, err
	}

	return &adventuresvc.RecordChoiceOutput{Record: rec}, nil
}

// VisitScenario marks a scenario as visited.
func (o *Orchestrator) VisitScenario(ctx context.Context, input *adventuresvc.VisitScenarioInput) (*adventuresvc.VisitScenarioOutput, error) {
	if input == nil || input.GameStateID == "" || input.ScenarioID == "" {
		return nil, errors.InvalidArgument("game state ID and scenario ID are required")
	}

	rec, err := o.applyProgress(ctx, input.GameStateID, func(p adventure.ProgressData) adventure.ProgressData {
		return o.store.RecordVisitedScenario(p, input.ScenarioID)
	}, "")
	if err != nil {
		return nil, err
	}

	return &adventuresvc.VisitScenarioOutput{Record: rec}, nil
}

// AddInventoryItem adds quantity of an item to the inventory.
func (o *Orchestrator) AddInventoryItem(ctx context.Context, input *adventuresvc.AddInventoryItemInput) (*adventuresvc.AddInventoryItemOutput, error) {
	if input == nil || input.GameStateID == "" || input.ItemID == "" {
		return nil, errors.InvalidArgument("game state ID and item ID are required")
	}
	if input.Quantity <= 0 {
		return nil, errors.InvalidArgument("quantity must be positive")
	}

	rec, err := o.applyProgress(ctx, input.GameStateID, func(p adventure.ProgressData) adventure.ProgressData {
		return o.store.AddInventoryItem(p, input.ItemID, input.Name, input.Quantity, input.Description)
	}, "")
	if err != nil {
		return nil, err
	}

	return &adventuresvc.AddInventoryItemOutput{Record: rec}, nil
}

// RemoveInventoryItem removes quantity of an item from the inventory.
func (o *Orchestrator) RemoveInventoryItem(ctx context.Context, input *adventuresvc.RemoveInventoryItemInput) (*adventuresvc.RemoveInventoryItemOutput, error) {
	if input == nil || input.GameStateID == "" || input.ItemID == "" {
		return nil, errors.InvalidArgument("game state ID and item ID are required")
	}
	if input.Quantity <= 0 {
		return nil, errors.InvalidArgument("quantity must be positive")
	}

	rec, err := o.applyProgress(ctx, input.GameStateID, func(p adventure.ProgressData) adventure.ProgressData {
		return o.store.RemoveInventoryItem(p, input.ItemID, input.Quantity)
	}, "")
	if err != nil {
		return nil, err
	}

	return &adventuresvc.RemoveInventoryItemOutput{Record: rec}, nil
}

// UpdatePlayerStat sets a named player stat.
func (o *Orchestrator) UpdatePlayerStat(ctx context.Context, input *adventuresvc.UpdatePlayerStatInput) (*adventuresvc.UpdatePlayerStatOutput, error) {
	if input == nil || input.GameStateID == "" || input.Name == "" {
		return nil, errors.InvalidArgument("game state ID and stat name are required")
	}

	rec, err := o.applyProgress(ctx, input.GameStateID, func(p adventure.ProgressData) adventure.ProgressData {
		return o.store.UpdatePlayerStat(p, input.Name, input.Value)
	}, "")
	if err != nil {
		return nil, err
	}

	return &adventuresvc.UpdatePlayerStatOutput{Record: rec}, nil
}

// ListClasses returns the available party member classes.
func (o *Orchestrator) ListClasses(_ context.Context, _ *adventuresvc.ListClassesInput) (*adventuresvc.ListClassesOutput, error) {
	return &adventuresvc.ListClassesOutput{Classes: party.AvailableClasses()}, nil
}

// CreatePartyMember builds a new party member from a class.
func (o *Orchestrator) CreatePartyMember(ctx context.Context, input *adventuresvc.CreatePartyMemberInput) (*adventuresvc.CreatePartyMemberOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.ClassID == "" {
		vb.RequiredField("ClassID")
	}
	if strings.TrimSpace(input.Name) == "" {
		vb.RequiredField("Name")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	member := o.parties.NewMember(input.Name, input.ClassID, nil, input.Options)
	if member == nil {
		return nil, errors.InvalidArgumentf("unknown class %q", input.ClassID)
	}

	slog.InfoContext(ctx, "created party member",
		"member_id", member.ID,
		"class", input.ClassID,
	)

	return &adventuresvc.CreatePartyMemberOutput{Member: member}, nil
}

// SetParty validates and attaches a party configuration to a game state.
func (o *Orchestrator) SetParty(ctx context.Context, input *adventuresvc.SetPartyInput) (*adventuresvc.SetPartyOutput, error) {
	if input == nil || input.GameStateID == "" {
		return nil, errors.InvalidArgument("game state ID is required")
	}
	if input.Party == nil {
		return nil, errors.InvalidArgument("party is required")
	}

	getOut, err := o.repo.Get(ctx, gamestaterepo.GetInput{ID: input.GameStateID})
	if err != nil {
		return nil, err
	}

	progress, err := o.parties.SetPartyConfiguration(getOut.Record.ProgressData, *input.Party)
	if err != nil {
		return nil, err
	}

	updated := *getOut.Record
	updated.ProgressData = progress

	updateOut, err := o.repo.Update(ctx, gamestaterepo.UpdateInput{Record: &updated})
	if err != nil {
		return nil, err
	}

	validation := party.ValidateParty(*updateOut.Record.ProgressData.Party)

	slog.InfoContext(ctx, "set party configuration",
		"game_state_id", input.GameStateID,
		"members", len(input.Party.Members),
	)

	return &adventuresvc.SetPartyOutput{
		Record:     updateOut.Record,
		Validation: &validation,
	}, nil
}

// GetParty retrieves a game state's party configuration.
func (o *Orchestrator) GetParty(ctx context.Context, input *adventuresvc.GetPartyInput) (*adventuresvc.GetPartyOutput, error) {
	if input == nil || input.GameStateID == "" {
		return nil, errors.InvalidArgument("game state ID is required")
	}

	getOut, err := o.repo.Get(ctx, gamestaterepo.GetInput{ID: input.GameStateID})
	if err != nil {
		return nil, err
	}

	return &adventuresvc.GetPartyOutput{
		Party: o.parties.PartyConfigurationOf(getOut.Record.ProgressData),
	}, nil
}

// applyProgress loads a game state, applies a pure progress mutation,
// and persists the result. When nextNodeID is non-empty the record's
// current node advances to it.
func (o *Orchestrator) applyProgress(ctx context.Context, id string, fn func(adventure.ProgressData) adventure.ProgressData, nextNodeID string) (*adventure.GameStateRecord, error) {
	getOut, err := o.repo.Get(ctx, gamestaterepo.GetInput{ID: id})
	if err != nil {
		return nil, err
	}

	updated := *getOut.Record
	updated.ProgressData = fn(updated.ProgressData)
	if nextNodeID != "" {
		updated.CurrentNodeID = nextNodeID
	}

	updateOut, err := o.repo.Update(ctx, gamestaterepo.UpdateInput{Record: &updated})
	if err != nil {
		return nil, err
	}

	return updateOut.Record, nil
}
