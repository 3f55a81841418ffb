package gamestate_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/questforge/adventure-api/internal/entities/adventure"
	statestore "github.com/questforge/adventure-api/internal/gamestate"
	"github.com/questforge/adventure-api/internal/errors"
	mockclock "github.com/questforge/adventure-api/internal/pkg/clock/mock"
	"github.com/questforge/adventure-api/internal/pkg/idgen"
	gamestaterepo "github.com/questforge/adventure-api/internal/repositories/gamestate"
	"github.com/questforge/adventure-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	miniRedis *miniredis.Miniredis
	cleanup   func()
	store     *statestore.Store
	repo      gamestaterepo.Repository
	ctx       context.Context
	now       time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	mockClock := mockclock.NewMockClock(s.ctrl)
	s.now = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	mockClock.EXPECT().Now().Return(s.now).AnyTimes()

	client, mr, cleanup := testutils.CreateTestRedisClient(s.T())
	s.miniRedis = mr
	s.cleanup = cleanup

	store, err := statestore.New(&statestore.Config{
		Clock:       mockClock,
		IDGenerator: idgen.NewSequential("play"),
	})
	s.Require().NoError(err)
	s.store = store

	repo, err := gamestaterepo.NewRedis(&gamestaterepo.RedisConfig{
		Client: client,
		Codec:  store,
		Clock:  mockClock,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
	s.ctrl.Finish()
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) testRecord(id string) *adventure.GameStateRecord {
	p := s.store.NewInitialProgress("sess_1")
	p = s.store.RecordVisitedScenario(p, "start")
	return &adventure.GameStateRecord{
		ID:            id,
		SessionID:     "sess_1",
		StoryID:       "story_1",
		CurrentNodeID: "start",
		ProgressData:  p,
	}
}

func (s *RedisRepositoryTestSuite) TestFullLifecycle() {
	rec := s.testRecord("game_001")

	// Create
	createOut, err := s.repo.Create(s.ctx, gamestaterepo.CreateInput{Record: rec})
	s.Require().NoError(err)
	s.Equal(s.now.Unix(), createOut.Record.CreatedAt)
	s.True(s.miniRedis.Exists("gamestate:game_001"))

	// Get
	getOut, err := s.repo.Get(s.ctx, gamestaterepo.GetInput{ID: "game_001"})
	s.Require().NoError(err)
	s.Equal("sess_1", getOut.Record.SessionID)
	s.Equal([]string{"start"}, getOut.Record.ProgressData.VisitedScenarios)
	s.True(statestore.Validate(getOut.Record.ProgressData))

	// Update with new progress
	updated := *getOut.Record
	updated.ProgressData = s.store.RecordChoice(updated.ProgressData, "start", "c1", "Open door", "room2")
	updated.CurrentNodeID = "room2"

	updateOut, err := s.repo.Update(s.ctx, gamestaterepo.UpdateInput{Record: &updated})
	s.Require().NoError(err)
	s.Equal(createOut.Record.CreatedAt, updateOut.Record.CreatedAt)

	getOut2, err := s.repo.Get(s.ctx, gamestaterepo.GetInput{ID: "game_001"})
	s.Require().NoError(err)
	s.Equal("room2", getOut2.Record.CurrentNodeID)
	s.Equal(1, getOut2.Record.ProgressData.GameplayStats.TotalChoicesMade)

	// Delete
	_, err = s.repo.Delete(s.ctx, gamestaterepo.DeleteInput{ID: "game_001"})
	s.Require().NoError(err)
	s.False(s.miniRedis.Exists("gamestate:game_001"))

	_, err = s.repo.Get(s.ctx, gamestaterepo.GetInput{ID: "game_001"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicate() {
	rec := s.testRecord("game_dup")

	_, err := s.repo.Create(s.ctx, gamestaterepo.CreateInput{Record: rec})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, gamestaterepo.CreateInput{Record: rec})
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, gamestaterepo.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, gamestaterepo.CreateInput{Record: &adventure.GameStateRecord{}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestUpdateMissingRecord() {
	_, err := s.repo.Update(s.ctx, gamestaterepo.UpdateInput{Record: s.testRecord("ghost")})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListBySessionID() {
	for _, id := range []string{"game_a", "game_b"} {
		_, err := s.repo.Create(s.ctx, gamestaterepo.CreateInput{Record: s.testRecord(id)})
		s.Require().NoError(err)
	}

	other := s.testRecord("game_c")
	other.SessionID = "sess_other"
	_, err := s.repo.Create(s.ctx, gamestaterepo.CreateInput{Record: other})
	s.Require().NoError(err)

	listOut, err := s.repo.ListBySessionID(s.ctx, gamestaterepo.ListBySessionIDInput{SessionID: "sess_1"})
	s.Require().NoError(err)
	s.Len(listOut.Records, 2)

	ids := []string{listOut.Records[0].ID, listOut.Records[1].ID}
	s.ElementsMatch([]string{"game_a", "game_b"}, ids)
}

func (s *RedisRepositoryTestSuite) TestListSelfHealsDanglingIndex() {
	_, err := s.repo.Create(s.ctx, gamestaterepo.CreateInput{Record: s.testRecord("game_live")})
	s.Require().NoError(err)

	// Simulate a record deleted out-of-band, leaving its index entry behind.
	s.miniRedis.SAdd("gamestate:session:sess_1", "game_gone")

	listOut, err := s.repo.ListBySessionID(s.ctx, gamestaterepo.ListBySessionIDInput{SessionID: "sess_1"})
	s.Require().NoError(err)
	s.Len(listOut.Records, 1)
	s.Equal("game_live", listOut.Records[0].ID)

	members, err := s.miniRedis.SMembers("gamestate:session:sess_1")
	s.Require().NoError(err)
	s.NotContains(members, "game_gone")
}

func (s *RedisRepositoryTestSuite) TestGetHealsLegacyStoredRecord() {
	// A record written by the pre-versioning implementation: free-form
	// stat bag in progress_data.
	legacy := `{"id":"game_legacy","session_id":"sess_legacy","story_id":"story_1",` +
		`"current_node_id":"start","progress_data":{"health":100,"hasKey":true}}`
	s.Require().NoError(s.miniRedis.Set("gamestate:game_legacy", legacy))

	getOut, err := s.repo.Get(s.ctx, gamestaterepo.GetInput{ID: "game_legacy"})
	s.Require().NoError(err)

	p := getOut.Record.ProgressData
	s.True(statestore.Validate(p))
	s.Equal(adventure.CurrentVersion, p.Version)

	health, ok := statestore.GetPlayerStat(p, "health")
	s.True(ok)
	s.Equal(float64(100), health)
}

func (s *RedisRepositoryTestSuite) TestGetUndecodableRecord() {
	s.Require().NoError(s.miniRedis.Set("gamestate:game_bad", "{{{not json"))

	_, err := s.repo.Get(s.ctx, gamestaterepo.GetInput{ID: "game_bad"})
	s.Require().Error(err)
	s.True(errors.IsDataLoss(err))
}

func (s *RedisRepositoryTestSuite) TestGetBySessionAndStory() {
	_, err := s.repo.Create(s.ctx, gamestaterepo.CreateInput{Record: s.testRecord("game_resume")})
	s.Require().NoError(err)

	other := s.testRecord("game_other_story")
	other.StoryID = "story_2"
	_, err = s.repo.Create(s.ctx, gamestaterepo.CreateInput{Record: other})
	s.Require().NoError(err)

	out, err := s.repo.GetBySessionAndStory(s.ctx, gamestaterepo.GetBySessionAndStoryInput{
		SessionID: "sess_1",
		StoryID:   "story_1",
	})
	s.Require().NoError(err)
	s.Equal("game_resume", out.Record.ID)

	_, err = s.repo.GetBySessionAndStory(s.ctx, gamestaterepo.GetBySessionAndStoryInput{
		SessionID: "sess_1",
		StoryID:   "story_missing",
	})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.GetBySessionAndStory(s.ctx, gamestaterepo.GetBySessionAndStoryInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestListByStoryID() {
	_, err := s.repo.Create(s.ctx, gamestaterepo.CreateInput{Record: s.testRecord("game_story")})
	s.Require().NoError(err)

	listOut, err := s.repo.ListByStoryID(s.ctx, gamestaterepo.ListByStoryIDInput{StoryID: "story_1"})
	s.Require().NoError(err)
	s.Len(listOut.Records, 1)

	_, err = s.repo.ListByStoryID(s.ctx, gamestaterepo.ListByStoryIDInput{StoryID: ""})
	s.True(errors.IsInvalidArgument(err))
}
