package gamestate_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/questforge/adventure-api/internal/entities/adventure"
	"github.com/questforge/adventure-api/internal/gamestate"
	mockclock "github.com/questforge/adventure-api/internal/pkg/clock/mock"
	"github.com/questforge/adventure-api/internal/pkg/idgen"
)

type SerializeTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	store *gamestate.Store
	now   time.Time
}

func (s *SerializeTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	mockClock := mockclock.NewMockClock(s.ctrl)
	s.now = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	mockClock.EXPECT().Now().Return(s.now).AnyTimes()

	store, err := gamestate.New(&gamestate.Config{
		Clock:       mockClock,
		IDGenerator: idgen.NewSequential("play"),
	})
	s.Require().NoError(err)
	s.store = store
}

func (s *SerializeTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSerializeSuite(t *testing.T) {
	suite.Run(t, new(SerializeTestSuite))
}

func (s *SerializeTestSuite) testRecord() *adventure.GameStateRecord {
	p := s.store.NewInitialProgress("sess_1")
	p = s.store.RecordVisitedScenario(p, "start")
	p = s.store.RecordChoice(p, "start", "c1", "Open door", "room2")
	p = s.store.AddInventoryItem(p, "torch", "Torch", 1, "Lights the way")
	p = s.store.UpdatePlayerStat(p, "health", 100)

	return &adventure.GameStateRecord{
		ID:            "game_1",
		SessionID:     "sess_1",
		StoryID:       "story_1",
		CurrentNodeID: "room2",
		ProgressData:  p,
		CreatedAt:     s.now.Unix(),
		UpdatedAt:     s.now.Unix(),
	}
}

func (s *SerializeTestSuite) TestRoundTrip() {
	rec := s.testRecord()

	text, err := s.store.Serialize(rec)
	s.Require().NoError(err)

	decoded, err := s.store.Deserialize(text)
	s.Require().NoError(err)

	s.Equal(rec.ID, decoded.ID)
	s.Equal(rec.SessionID, decoded.SessionID)
	s.Equal(rec.StoryID, decoded.StoryID)
	s.Equal(rec.CurrentNodeID, decoded.CurrentNodeID)
	s.Equal(rec.ProgressData.VisitedScenarios, decoded.ProgressData.VisitedScenarios)
	s.Equal(rec.ProgressData.ChoiceHistory, decoded.ProgressData.ChoiceHistory)
	s.Equal(rec.ProgressData.Inventory, decoded.ProgressData.Inventory)
	s.Equal(1, decoded.ProgressData.GameplayStats.TotalChoicesMade)

	// JSON numbers decode as float64; the stat survives with its value.
	health, ok := gamestate.GetPlayerStat(decoded.ProgressData, "health")
	s.True(ok)
	s.Equal(float64(100), health)
}

func (s *SerializeTestSuite) TestSerializeHealsInvalidProgress() {
	rec := &adventure.GameStateRecord{
		ID:           "game_2",
		SessionID:    "sess_2",
		ProgressData: adventure.ProgressData{},
	}

	text, err := s.store.Serialize(rec)
	s.Require().NoError(err)

	decoded, err := s.store.Deserialize(text)
	s.Require().NoError(err)
	s.True(gamestate.Validate(decoded.ProgressData))
	s.Equal(adventure.CurrentVersion, decoded.ProgressData.Version)
}

func (s *SerializeTestSuite) TestSerializeDoesNotMutateInput() {
	rec := &adventure.GameStateRecord{ID: "game_3"}

	_, err := s.store.Serialize(rec)
	s.Require().NoError(err)
	s.False(gamestate.Validate(rec.ProgressData))
}

func (s *SerializeTestSuite) TestSerializeEncodeFailure() {
	rec := s.testRecord()
	rec.ProgressData = s.store.UpdatePlayerStat(rec.ProgressData, "cursed", math.NaN())

	_, err := s.store.Serialize(rec)
	s.Require().Error(err)

	var serErr *gamestate.SerializationError
	s.ErrorAs(err, &serErr)
}

func (s *SerializeTestSuite) TestDeserializeMalformedText() {
	_, err := s.store.Deserialize("{not json")
	s.Require().Error(err)

	var deserErr *gamestate.DeserializationError
	s.ErrorAs(err, &deserErr)
}

func (s *SerializeTestSuite) TestDeserializeHealsLegacyProgress() {
	text := `{"id":"game_4","session_id":"sess_4","story_id":"story_1",` +
		`"current_node_id":"start","progress_data":{"health":100,"hasKey":true}}`

	decoded, err := s.store.Deserialize(text)
	s.Require().NoError(err)
	s.True(gamestate.Validate(decoded.ProgressData))
	s.Equal(1, decoded.ProgressData.Version)

	health, ok := gamestate.GetPlayerStat(decoded.ProgressData, "health")
	s.True(ok)
	s.Equal(float64(100), health)

	hasKey, ok := gamestate.GetPlayerStat(decoded.ProgressData, "hasKey")
	s.True(ok)
	s.Equal(true, hasKey)
}

func (s *SerializeTestSuite) TestDeserializeMissingProgress() {
	decoded, err := s.store.Deserialize(`{"id":"game_5","session_id":"sess_5"}`)
	s.Require().NoError(err)
	s.True(gamestate.Validate(decoded.ProgressData))
}
