package party

import (
	"fmt"
	"strings"

	"github.com/questforge/adventure-api/internal/entities/adventure"
	"github.com/questforge/adventure-api/internal/errors"
)

// Party composition defaults.
const (
	DefaultMaxPartySize  = 4
	MinPartySize         = 1
	DefaultPartyCohesion = 50
)

// PartyOptions carries optional extensible fields for a new configuration.
type PartyOptions struct {
	MaxSize       int
	PartyTraits   map[string]adventure.CharacterTrait
	Dynamics      *adventure.PartyDynamics
	ExtensionData map[string]any
}

// ValidationResult accumulates every violated composition rule so a caller
// can present all problems at once rather than one at a time.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// NewParty creates a party configuration from members. Members are migrated
// on the way in, so a configuration is never built from stale member shapes.
func (m *Manager) NewParty(members []adventure.PartyMember, formation string, opts *PartyOptions) adventure.PartyConfiguration {
	if opts == nil {
		opts = &PartyOptions{}
	}

	maxSize := opts.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMaxPartySize
	}

	migrated := make([]adventure.PartyMember, len(members))
	for i, member := range members {
		migrated[i] = m.MigrateMember(member)
	}

	traits := opts.PartyTraits
	if traits == nil {
		traits = map[string]adventure.CharacterTrait{}
	}
	dynamics := opts.Dynamics
	if dynamics == nil {
		dynamics = &adventure.PartyDynamics{
			Cohesion:        DefaultPartyCohesion,
			Specializations: map[string]string{},
		}
	}
	extension := opts.ExtensionData
	if extension == nil {
		extension = map[string]any{}
	}

	return adventure.PartyConfiguration{
		Members:       migrated,
		Formation:     formation,
		MaxSize:       maxSize,
		CreatedAt:     m.clock.Now().Unix(),
		PartyTraits:   traits,
		Dynamics:      dynamics,
		ExtensionData: extension,
		ModelVersion:  adventure.CurrentCharacterModelVersion,
	}
}

// ValidateParty checks every composition invariant and reports all
// violations, not just the first: size bounds, empty member names,
// case-insensitive duplicate names, and unknown class ids. Duplicate
// classes across members are explicitly permitted.
func ValidateParty(p adventure.PartyConfiguration) ValidationResult {
	var errs []string

	maxSize := p.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMaxPartySize
	}

	if len(p.Members) < MinPartySize {
		errs = append(errs, fmt.Sprintf("party must have at least %d member", MinPartySize))
	}
	if len(p.Members) > maxSize {
		errs = append(errs, fmt.Sprintf("party cannot exceed %d members", maxSize))
	}

	seen := map[string]string{}
	for _, member := range p.Members {
		name := strings.TrimSpace(member.Name)
		if name == "" {
			errs = append(errs, "party member names cannot be empty")
			continue
		}
		lower := strings.ToLower(name)
		if original, ok := seen[lower]; ok {
			errs = append(errs, fmt.Sprintf("party member names must be unique: %q is already taken", original))
		} else {
			seen[lower] = name
		}

		if _, ok := ClassByID(member.ClassID); !ok {
			errs = append(errs, fmt.Sprintf("unknown class %q for member %q", member.ClassID, name))
		}
	}

	return ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}

// SetPartyConfiguration embeds a party into the progress snapshot. The party
// is migrated and validated first; an invalid composition is rejected with
// an error rather than silently dropped.
func (m *Manager) SetPartyConfiguration(progress adventure.ProgressData, p adventure.PartyConfiguration) (adventure.ProgressData, error) {
	migrated := m.MigrateParty(p)

	result := ValidateParty(migrated)
	if !result.IsValid {
		return adventure.ProgressData{}, errors.
			InvalidArgumentf("invalid party configuration: %s", strings.Join(result.Errors, "; ")).
			WithMeta("party_errors", result.Errors)
	}

	out := progress
	out.Party = &migrated
	return out, nil
}

// PartyConfigurationOf returns the party embedded in a progress snapshot,
// or nil when no party has been created. The party is re-migrated on every
// read, so one saved under an older model version is upgraded transparently
// with no separate upgrade pass.
func (m *Manager) PartyConfigurationOf(progress adventure.ProgressData) *adventure.PartyConfiguration {
	if progress.Party == nil {
		return nil
	}
	migrated := m.MigrateParty(*progress.Party)
	return &migrated
}
