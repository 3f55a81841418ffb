package party_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/questforge/adventure-api/internal/entities/adventure"
	"github.com/questforge/adventure-api/internal/errors"
	"github.com/questforge/adventure-api/internal/party"
	mockclock "github.com/questforge/adventure-api/internal/pkg/clock/mock"
	"github.com/questforge/adventure-api/internal/pkg/idgen"
)

type PartyTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	manager *party.Manager
	now     time.Time
}

func (s *PartyTestSuite) SetupTest() {
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

func (s *PartyTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPartySuite(t *testing.T) {
	suite.Run(t, new(PartyTestSuite))
}

func (s *PartyTestSuite) member(name, classID string) adventure.PartyMember {
	m := s.manager.NewMember(name, classID, nil, nil)
	s.Require().NotNil(m, "class %s should exist", classID)
	return *m
}

func (s *PartyTestSuite) TestNewPartyDefaults() {
	p := s.manager.NewParty([]adventure.PartyMember{s.member("Shadow", "rogue")}, "", nil)

	s.Equal(party.DefaultMaxPartySize, p.MaxSize)
	s.Equal(s.now.Unix(), p.CreatedAt)
	s.NotNil(p.PartyTraits)
	s.Require().NotNil(p.Dynamics)
	s.Equal(party.DefaultPartyCohesion, p.Dynamics.Cohesion)
	s.Equal(adventure.CurrentCharacterModelVersion, p.ModelVersion)
}

func (s *PartyTestSuite) TestNewPartyMigratesStaleMembers() {
	stale := adventure.PartyMember{Name: "Old Timer", ClassID: "priest"}

	p := s.manager.NewParty([]adventure.PartyMember{stale}, "line", nil)

	s.Require().Len(p.Members, 1)
	s.Equal(adventure.CurrentCharacterModelVersion, p.Members[0].ModelVersion)
	s.NotEmpty(p.Members[0].DynamicAttributes)
}

func (s *PartyTestSuite) TestValidatePartyOK() {
	p := s.manager.NewParty([]adventure.PartyMember{
		s.member("Grok", "barbarian"),
		s.member("Lyra", "mage"),
	}, "", nil)

	result := party.ValidateParty(p)
	s.True(result.IsValid)
	s.Empty(result.Errors)
}

func (s *PartyTestSuite) TestValidatePartyDuplicateClassesAllowed() {
	p := s.manager.NewParty([]adventure.PartyMember{
		s.member("First", "rogue"),
		s.member("Second", "rogue"),
	}, "", nil)

	s.True(party.ValidateParty(p).IsValid)
}

func (s *PartyTestSuite) TestValidatePartyDuplicateNames() {
	p := s.manager.NewParty([]adventure.PartyMember{
		s.member("Rogue1", "rogue"),
		s.member("Rogue1", "barbarian"),
	}, "", nil)

	result := party.ValidateParty(p)
	s.False(result.IsValid)
	s.True(s.containsSubstring(result.Errors, "unique"), "errors should mention unique names: %v", result.Errors)
}

func (s *PartyTestSuite) TestValidatePartyNamesCaseInsensitive() {
	p := s.manager.NewParty([]adventure.PartyMember{
		s.member("Shadow", "rogue"),
		s.member("sHaDoW", "bard"),
	}, "", nil)

	s.False(party.ValidateParty(p).IsValid)
}

func (s *PartyTestSuite) TestValidatePartyTooLarge() {
	members := make([]adventure.PartyMember, 5)
	names := []string{"One", "Two", "Three", "Four", "Five"}
	for i, name := range names {
		members[i] = s.member(name, "bard")
	}
	p := s.manager.NewParty(members, "", nil)

	result := party.ValidateParty(p)
	s.False(result.IsValid)
	s.True(s.containsSubstring(result.Errors, "cannot exceed 4"), "errors: %v", result.Errors)
}

func (s *PartyTestSuite) TestValidatePartyAccumulatesAllViolations() {
	// Empty party AND a duplicate-name pair cannot coexist, so use the
	// spec's composite case: zero members plus size bound yields one error,
	// while a bad party with several problems yields one error each.
	empty := adventure.PartyConfiguration{MaxSize: 4}
	result := party.ValidateParty(empty)
	s.False(result.IsValid)
	s.NotEmpty(result.Errors)

	bad := adventure.PartyConfiguration{
		MaxSize: 2,
		Members: []adventure.PartyMember{
			{Name: "Twin", ClassID: "rogue"},
			{Name: "twin", ClassID: "necromancer"},
			{Name: "", ClassID: "bard"},
		},
	}
	result = party.ValidateParty(bad)
	s.False(result.IsValid)
	// Size bound, duplicate name, unknown class, empty name: all reported.
	s.GreaterOrEqual(len(result.Errors), 4)
}

func (s *PartyTestSuite) containsSubstring(errs []string, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func (s *PartyTestSuite) TestSetPartyConfiguration() {
	progress := adventure.ProgressData{
		VisitedScenarios: []string{},
		ChoiceHistory:    []adventure.ChoiceRecord{},
		Inventory:        map[string]adventure.InventoryItem{},
		PlayerStats:      map[string]adventure.PlayerStat{},
		GameplayStats:    adventure.GameplayStats{StartTime: s.now.Unix()},
		Version:          adventure.CurrentVersion,
	}
	p := s.manager.NewParty([]adventure.PartyMember{s.member("Shadow", "rogue")}, "", nil)

	updated, err := s.manager.SetPartyConfiguration(progress, p)
	s.Require().NoError(err)
	s.Require().NotNil(updated.Party)
	s.Len(updated.Party.Members, 1)

	// Copy-on-write: the input snapshot has no party.
	s.Nil(progress.Party)
}

func (s *PartyTestSuite) TestSetPartyConfigurationRejectsInvalid() {
	progress := adventure.ProgressData{Version: adventure.CurrentVersion}
	invalid := adventure.PartyConfiguration{}

	_, err := s.manager.SetPartyConfiguration(progress, invalid)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	var structured *errors.Error
	s.Require().True(errors.As(err, &structured))
	s.NotEmpty(structured.Meta["party_errors"])
}

func (s *PartyTestSuite) TestPartyConfigurationOf() {
	s.Nil(s.manager.PartyConfigurationOf(adventure.ProgressData{}))

	// A party saved under an older model shape is upgraded on read.
	stale := &adventure.PartyConfiguration{
		Members: []adventure.PartyMember{{Name: "Old Timer", ClassID: "priest"}},
	}
	progress := adventure.ProgressData{Party: stale}

	loaded := s.manager.PartyConfigurationOf(progress)
	s.Require().NotNil(loaded)
	s.Equal(adventure.CurrentCharacterModelVersion, loaded.ModelVersion)
	s.Equal(adventure.CurrentCharacterModelVersion, loaded.Members[0].ModelVersion)
	s.Equal(party.DefaultMaxPartySize, loaded.MaxSize)

	// The stored snapshot itself is untouched.
	s.Equal(0, stale.ModelVersion)
}

func (s *PartyTestSuite) TestMigratePartyMonotonic() {
	p := adventure.PartyConfiguration{
		Members: []adventure.PartyMember{{Name: "Old Timer", ClassID: "priest"}},
	}

	once := s.manager.MigrateParty(p)
	s.Equal(adventure.CurrentCharacterModelVersion, once.ModelVersion)

	twice := s.manager.MigrateParty(once)
	s.Equal(once, twice)
}
