package party

import (
	"maps"

	"github.com/questforge/adventure-api/internal/entities/adventure"
)

// MigrateMember upgrades a member stored under an older model version to
// the current shape. A member already at or past the current version passes
// through untouched; migrating twice is a no-op the second time.
//
// Each future generation appends its own `if version < N` block below the
// existing ones. Steps are strictly additive and never deleted once shipped.
func (m *Manager) MigrateMember(member adventure.PartyMember) adventure.PartyMember {
	if member.ModelVersion >= adventure.CurrentCharacterModelVersion {
		return member
	}

	out := cloneMember(member)

	if member.ModelVersion < 1 {
		// v0 -> v1: the pre-extensible shape had only base stats and
		// customAttributes. Seed the dynamic layer without disturbing
		// anything already present.
		if member.DynamicAttributes == nil {
			if class, ok := ClassByID(out.ClassID); ok {
				out.DynamicAttributes = CoreStatsToAttributes(class.BaseStats)
			}
		}
		if out.Experience == nil {
			out.Experience = newExperienceData()
		}
	}

	out.ModelVersion = adventure.CurrentCharacterModelVersion
	return out
}

// MigrateParty upgrades a party configuration: every member is migrated and
// missing party-level extensible fields get their defaults. Idempotent on
// already-current parties.
func (m *Manager) MigrateParty(p adventure.PartyConfiguration) adventure.PartyConfiguration {
	out := cloneParty(p)

	for i, member := range out.Members {
		out.Members[i] = m.MigrateMember(member)
	}

	if out.MaxSize <= 0 {
		out.MaxSize = DefaultMaxPartySize
	}
	if out.PartyTraits == nil {
		out.PartyTraits = map[string]adventure.CharacterTrait{}
	}
	if out.Dynamics == nil {
		out.Dynamics = &adventure.PartyDynamics{
			Cohesion:        DefaultPartyCohesion,
			Specializations: map[string]string{},
		}
	}
	if out.ExtensionData == nil {
		out.ExtensionData = map[string]any{}
	}
	out.ModelVersion = adventure.CurrentCharacterModelVersion
	return out
}

func cloneParty(p adventure.PartyConfiguration) adventure.PartyConfiguration {
	out := p
	out.Members = make([]adventure.PartyMember, len(p.Members))
	for i, member := range p.Members {
		out.Members[i] = cloneMember(member)
	}
	out.PartyTraits = maps.Clone(p.PartyTraits)
	if p.Dynamics != nil {
		dyn := *p.Dynamics
		dyn.Specializations = maps.Clone(p.Dynamics.Specializations)
		out.Dynamics = &dyn
	}
	out.ExtensionData = maps.Clone(p.ExtensionData)
	return out
}
