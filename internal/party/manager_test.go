package party_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/questforge/adventure-api/internal/entities/adventure"
	"github.com/questforge/adventure-api/internal/party"
	mockclock "github.com/questforge/adventure-api/internal/pkg/clock/mock"
	"github.com/questforge/adventure-api/internal/pkg/idgen"
)

type ManagerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	manager *party.Manager
	now     time.Time
}

func (s *ManagerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	mockClock := mockclock.NewMockClock(s.ctrl)
	s.now = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	mockClock.EXPECT().Now().Return(s.now).AnyTimes()

	manager, err := party.New(&party.Config{
		Clock:       mockClock,
		IDGenerator: idgen.NewSequential("member"),
	})
	s.Require().NoError(err)
	s.manager = manager
}

func (s *ManagerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerTestSuite))
}

func (s *ManagerTestSuite) TestAvailableClasses() {
	classes := party.AvailableClasses()
	s.Len(classes, 5)

	ids := make([]string, len(classes))
	for i, class := range classes {
		ids[i] = class.ID
	}
	s.ElementsMatch([]string{"barbarian", "mage", "priest", "rogue", "bard"}, ids)
}

func (s *ManagerTestSuite) TestNewMember() {
	member := s.manager.NewMember("Shadow", "rogue", nil, nil)
	s.Require().NotNil(member)

	s.Equal("member_1", member.ID)
	s.Equal("Shadow", member.Name)
	s.Equal("rogue", member.ClassID)
	s.Equal(1, member.Level)
	s.Equal(s.now.Unix(), member.CreatedAt)
	s.Equal(adventure.CurrentCharacterModelVersion, member.ModelVersion)
	s.Empty(member.Traits)
	s.Empty(member.Relationships)
	s.NotNil(member.Experience)

	// Dynamic attributes are seeded from the class's base stats.
	rogueClass, ok := party.ClassByID("rogue")
	s.Require().True(ok)
	attr := member.DynamicAttributes["dexterity"]
	s.Equal(rogueClass.BaseStats.Dexterity, attr.Value)
	s.Equal(party.AttributeCategoryCore, attr.Category)
}

func (s *ManagerTestSuite) TestNewMemberUnknownClass() {
	s.Nil(s.manager.NewMember("Nobody", "necromancer", nil, nil))
}

func (s *ManagerTestSuite) TestNewMemberWithOverrides() {
	custom := map[string]any{"backstory": "orphan"}
	attrs := map[string]adventure.CharacterAttribute{
		"luck": {Value: 7, Category: "derived"},
	}
	member := s.manager.NewMember("Lucky", "bard", custom, &party.MemberOptions{
		Level:             3,
		DynamicAttributes: attrs,
	})
	s.Require().NotNil(member)

	s.Equal(3, member.Level)
	s.Equal(custom, member.CustomAttributes)
	// Caller-supplied attributes replace the base-stat seeding entirely.
	s.Equal(attrs, member.DynamicAttributes)
}

func (s *ManagerTestSuite) TestCoreStatsToAttributes() {
	stats := adventure.CoreStats{
		Strength:     16,
		Dexterity:    12,
		Intelligence: 8,
		Wisdom:       10,
		Charisma:     10,
		Constitution: 15,
	}

	attrs := party.CoreStatsToAttributes(stats)
	s.Len(attrs, 6)

	str := attrs["strength"]
	s.Equal(16, str.Value)
	s.Equal("Strength", str.DisplayName)
	s.Equal(party.AttributeCategoryCore, str.Category)
	s.Require().NotNil(str.Constraints)
	s.Equal(1, str.Constraints.Min)
	s.Equal(20, str.Constraints.Max)

	// Idempotent: re-running on the same stats yields the same attributes.
	s.Equal(attrs, party.CoreStatsToAttributes(stats))
}

func (s *ManagerTestSuite) TestAttributeFallback() {
	member := s.manager.NewMember("Grok", "barbarian", nil, nil)
	s.Require().NotNil(member)
	class, ok := party.ClassByID("barbarian")
	s.Require().True(ok)

	// Freshly created: resolves to the class base stat.
	value, ok := party.AttributeValue(*member, "strength")
	s.True(ok)
	s.Equal(class.BaseStats.Strength, value)

	// After one override: resolves to the overridden value.
	updated := s.manager.SetAttribute(*member, "strength", adventure.CharacterAttribute{
		Value:    18,
		Category: party.AttributeCategoryCore,
	})
	value, ok = party.AttributeValue(updated, "strength")
	s.True(ok)
	s.Equal(18, value)

	// The override shadows without deleting other base stats.
	value, ok = party.AttributeValue(updated, "constitution")
	s.True(ok)
	s.Equal(class.BaseStats.Constitution, value)

	_, ok = party.AttributeValue(updated, "swagger")
	s.False(ok)
}

func (s *ManagerTestSuite) TestAttributeFallbackWithoutDynamicLayer() {
	// A legacy member that never went through migration still resolves
	// base stats.
	legacy := adventure.PartyMember{Name: "Old Timer", ClassID: "priest"}
	value, ok := party.AttributeValue(legacy, "wisdom")
	s.True(ok)
	s.Equal(16, value)
}

func (s *ManagerTestSuite) TestSetTraitStampsAcquisition() {
	member := s.manager.NewMember("Shadow", "rogue", nil, nil)
	s.Require().NotNil(member)

	updated := s.manager.SetTrait(*member, "brave", adventure.CharacterTrait{
		Value:  true,
		Source: "quest:dragon",
	})

	trait := updated.Traits["brave"]
	s.Equal(true, trait.Value)
	s.Equal("quest:dragon", trait.Source)
	s.Equal(s.now.Unix(), trait.AcquiredAt)

	// Copy-on-write: the input snapshot is untouched.
	s.Empty(member.Traits)
}

func (s *ManagerTestSuite) TestSetRelationshipIsDirectional() {
	a := s.manager.NewMember("Alice", "mage", nil, nil)
	b := s.manager.NewMember("Belle", "bard", nil, nil)
	s.Require().NotNil(a)
	s.Require().NotNil(b)

	updatedA := s.manager.SetRelationship(*a, b.ID, adventure.CharacterRelationship{
		Type:     "rivalry",
		Strength: 70,
	})

	s.Equal("rivalry", updatedA.Relationships[b.ID].Type)
	// Not auto-reciprocated.
	s.Empty(b.Relationships)
}

func (s *ManagerTestSuite) TestMigrateMemberFromV0() {
	legacy := adventure.PartyMember{
		ID:      "m_legacy",
		Name:    "Old Timer",
		ClassID: "priest",
		Level:   2,
		CustomAttributes: map[string]any{
			"hometown": "Riverfen",
		},
	}

	migrated := s.manager.MigrateMember(legacy)

	s.Equal(adventure.CurrentCharacterModelVersion, migrated.ModelVersion)
	s.NotEmpty(migrated.DynamicAttributes)
	s.NotNil(migrated.Traits)
	s.NotNil(migrated.Relationships)
	s.NotNil(migrated.Experience)
	// Legacy fields survive untouched.
	s.Equal("Old Timer", migrated.Name)
	s.Equal(map[string]any{"hometown": "Riverfen"}, migrated.CustomAttributes)

	wisdom, ok := party.AttributeValue(migrated, "wisdom")
	s.True(ok)
	s.Equal(16, wisdom)
}

func (s *ManagerTestSuite) TestMigrateMemberMonotonic() {
	legacy := adventure.PartyMember{Name: "Old Timer", ClassID: "priest"}

	once := s.manager.MigrateMember(legacy)
	s.Equal(adventure.CurrentCharacterModelVersion, once.ModelVersion)

	twice := s.manager.MigrateMember(once)
	s.Equal(once, twice)
}

func (s *ManagerTestSuite) TestMigrateMemberKeepsExistingAttributes() {
	member := adventure.PartyMember{
		Name:    "Tuned",
		ClassID: "mage",
		DynamicAttributes: map[string]adventure.CharacterAttribute{
			"intelligence": {Value: 19, Category: party.AttributeCategoryCore},
		},
	}

	migrated := s.manager.MigrateMember(member)

	// Migration never overwrites an attribute layer that already exists.
	s.Equal(19, migrated.DynamicAttributes["intelligence"].Value)
	s.Len(migrated.DynamicAttributes, 1)
}
