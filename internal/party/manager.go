// Package party implements the extensible character model: party members
// layered as fixed base stats plus dynamic attributes, traits, and
// relationships, with version-gated migration from older shapes.
//
// Like the gamestate package, every operation here is copy-on-write over
// immutable-by-convention snapshots; nothing mutates its input.
package party

import (
	"maps"
	"strings"

	"github.com/questforge/adventure-api/internal/entities/adventure"
	"github.com/questforge/adventure-api/internal/errors"
	"github.com/questforge/adventure-api/internal/pkg/clock"
	"github.com/questforge/adventure-api/internal/pkg/idgen"
)

// AttributeCategoryCore tags attributes bridged from fixed base stats.
const AttributeCategoryCore = "core"

// Default constraint range for core attributes.
const (
	coreAttributeMin = 1
	coreAttributeMax = 20
)

// Manager owns creation and migration of party members and configurations.
type Manager struct {
	clock clock.Clock
	idGen idgen.Generator
}

// Config contains configuration for the party manager.
type Config struct {
	// Clock stamps member creation and trait acquisition. Defaults to the
	// real clock.
	Clock clock.Clock
	// IDGenerator mints member ids. Defaults to UUIDs.
	IDGenerator idgen.Generator
}

// New creates a new party manager
func New(cfg *Config) (*Manager, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	g := cfg.IDGenerator
	if g == nil {
		g = idgen.NewUUID("member")
	}

	return &Manager{
		clock: c,
		idGen: g,
	}, nil
}

// MemberOptions carries optional extensible fields for a new member.
type MemberOptions struct {
	Level int
	// DynamicAttributes overrides the default seeding from class base stats.
	DynamicAttributes map[string]adventure.CharacterAttribute
	Traits            map[string]adventure.CharacterTrait
	ExtensionData     map[string]any
}

// NewMember creates a party member of the given class. Returns nil when the
// class id is not in the catalog; an unknown class is an expected outcome,
// not an exceptional one. Dynamic attributes are seeded from the class's
// base stats unless the caller supplies overrides.
func (m *Manager) NewMember(name, classID string, customAttributes map[string]any, opts *MemberOptions) *adventure.PartyMember {
	class, ok := ClassByID(classID)
	if !ok {
		return nil
	}

	if opts == nil {
		opts = &MemberOptions{}
	}

	level := opts.Level
	if level <= 0 {
		level = 1
	}

	attrs := opts.DynamicAttributes
	if attrs == nil {
		attrs = CoreStatsToAttributes(class.BaseStats)
	}
	traits := opts.Traits
	if traits == nil {
		traits = map[string]adventure.CharacterTrait{}
	}
	extension := opts.ExtensionData
	if extension == nil {
		extension = map[string]any{}
	}

	return &adventure.PartyMember{
		ID:               m.idGen.Generate(),
		Name:             name,
		ClassID:          classID,
		Level:            level,
		CustomAttributes: customAttributes,
		CreatedAt:        m.clock.Now().Unix(),

		DynamicAttributes: attrs,
		Traits:            traits,
		Relationships:     map[string]adventure.CharacterRelationship{},
		Experience:        newExperienceData(),
		ExtensionData:     extension,
		ModelVersion:      adventure.CurrentCharacterModelVersion,
	}
}

// CoreStatsToAttributes bridges the legacy fixed-stat world into the
// extensible-attribute world: each base stat becomes a core-category
// attribute with a title-cased display name and the default [1,20]
// constraint range. Idempotent: the same base stats always yield the same
// attributes.
func CoreStatsToAttributes(base adventure.CoreStats) map[string]adventure.CharacterAttribute {
	attrs := make(map[string]adventure.CharacterAttribute, len(adventure.CoreStatKeys))
	for _, key := range adventure.CoreStatKeys {
		value, _ := base.Value(key)
		attrs[key] = adventure.CharacterAttribute{
			Value:       value,
			Category:    AttributeCategoryCore,
			DisplayName: titleCase(key),
			Constraints: &adventure.AttributeConstraints{
				Min: coreAttributeMin,
				Max: coreAttributeMax,
			},
		}
	}
	return attrs
}

// AttributeValue resolves an attribute for a member: dynamic attributes
// first, then the class's base stat of the same key, then nothing. Dynamic
// overrides shadow base stats but never delete them, so a stat that was
// never overridden stays readable.
func AttributeValue(member adventure.PartyMember, key string) (any, bool) {
	if attr, ok := member.DynamicAttributes[key]; ok {
		return attr.Value, true
	}
	if class, ok := ClassByID(member.ClassID); ok {
		if value, ok := class.BaseStats.Value(key); ok {
			return value, true
		}
	}
	return nil, false
}

// SetAttribute returns a copy of the member with the attribute set and the
// model version bumped to current.
func (m *Manager) SetAttribute(member adventure.PartyMember, id string, attr adventure.CharacterAttribute) adventure.PartyMember {
	out := cloneMember(member)
	out.DynamicAttributes[id] = attr
	out.ModelVersion = adventure.CurrentCharacterModelVersion
	return out
}

// SetTrait returns a copy of the member with the trait set. A trait without
// an acquisition time is stamped now.
func (m *Manager) SetTrait(member adventure.PartyMember, id string, trait adventure.CharacterTrait) adventure.PartyMember {
	out := cloneMember(member)
	if trait.AcquiredAt == 0 {
		trait.AcquiredAt = m.clock.Now().Unix()
	}
	out.Traits[id] = trait
	out.ModelVersion = adventure.CurrentCharacterModelVersion
	return out
}

// SetRelationship returns a copy of the member with a directed relationship
// to the target member set. Relationships are not reciprocated automatically;
// a symmetric bond takes one call per member.
func (m *Manager) SetRelationship(member adventure.PartyMember, targetMemberID string, rel adventure.CharacterRelationship) adventure.PartyMember {
	out := cloneMember(member)
	out.Relationships[targetMemberID] = rel
	out.ModelVersion = adventure.CurrentCharacterModelVersion
	return out
}

func newExperienceData() *adventure.ExperienceData {
	return &adventure.ExperienceData{
		SkillXP:    map[string]int{},
		Milestones: []string{},
	}
}

func cloneMember(member adventure.PartyMember) adventure.PartyMember {
	out := member
	out.DynamicAttributes = maps.Clone(member.DynamicAttributes)
	if out.DynamicAttributes == nil {
		out.DynamicAttributes = map[string]adventure.CharacterAttribute{}
	}
	out.Traits = maps.Clone(member.Traits)
	if out.Traits == nil {
		out.Traits = map[string]adventure.CharacterTrait{}
	}
	out.Relationships = maps.Clone(member.Relationships)
	if out.Relationships == nil {
		out.Relationships = map[string]adventure.CharacterRelationship{}
	}
	if member.Experience != nil {
		exp := *member.Experience
		exp.SkillXP = maps.Clone(member.Experience.SkillXP)
		exp.Milestones = append([]string{}, member.Experience.Milestones...)
		out.Experience = &exp
	}
	out.ExtensionData = maps.Clone(member.ExtensionData)
	return out
}

func titleCase(key string) string {
	if key == "" {
		return ""
	}
	return strings.ToUpper(key[:1]) + key[1:]
}
