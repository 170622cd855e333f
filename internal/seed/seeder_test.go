package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mwhitfield/clubstore/internal/dependencies/mocks"
	"github.com/mwhitfield/clubstore/internal/model"
	"github.com/mwhitfield/clubstore/internal/storage"
	"github.com/mwhitfield/clubstore/internal/storage/memory"
	"github.com/mwhitfield/clubstore/internal/testutil"
)

type SeederSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	seeder  *Seeder
	ctx     context.Context
}

func TestSeederSuite(t *testing.T) {
	suite.Run(t, new(SeederSuite))
}

func (s *SeederSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC))
	s.seeder = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *SeederSuite) TestInitializePopulatesEveryCollection() {
	s.Require().NoError(s.seeder.Initialize(s.ctx))

	teams, err := storage.ReadCollection[model.Team](s.ctx, s.storage, storage.KeyTeams)
	s.Require().NoError(err)
	s.NotEmpty(teams)

	players, err := storage.ReadCollection[model.Player](s.ctx, s.storage, storage.KeyPlayers)
	s.Require().NoError(err)
	s.NotEmpty(players)

	events, err := storage.ReadCollection[model.Event](s.ctx, s.storage, storage.KeyEvents)
	s.Require().NoError(err)
	s.NotEmpty(events)

	announcements, err := storage.ReadCollection[model.Announcement](s.ctx, s.storage, storage.KeyAnnouncements)
	s.Require().NoError(err)
	s.NotEmpty(announcements)

	users, err := storage.ReadCollection[model.User](s.ctx, s.storage, storage.KeyUsers)
	s.Require().NoError(err)
	s.Require().Len(users, 1)
	s.Equal(AdminUsername, users[0].Username)
}

func (s *SeederSuite) TestInitializeIsIdempotent() {
	s.Require().NoError(s.seeder.Initialize(s.ctx))

	first, err := s.storage.Get(s.ctx, storage.KeyTeams)
	s.Require().NoError(err)

	s.clock.Advance(48 * time.Hour)
	s.Require().NoError(s.seeder.Initialize(s.ctx))

	second, err := s.storage.Get(s.ctx, storage.KeyTeams)
	s.Require().NoError(err)
	s.Equal(string(first), string(second))

	players, err := storage.ReadCollection[model.Player](s.ctx, s.storage, storage.KeyPlayers)
	s.Require().NoError(err)
	s.Len(players, len(samplePlayers()))
}

func (s *SeederSuite) TestInitializeLeavesExistingDataUntouched() {
	custom := []model.Team{{ID: "team_custom", Name: "Custom FC", Division: "Premier", Category: "Senior"}}
	s.Require().NoError(storage.WriteCollection(s.ctx, s.storage, storage.KeyTeams, custom))

	s.Require().NoError(s.seeder.Initialize(s.ctx))

	teams, err := storage.ReadCollection[model.Team](s.ctx, s.storage, storage.KeyTeams)
	s.Require().NoError(err)
	s.Require().Len(teams, 1)
	s.Equal("Custom FC", teams[0].Name)
}

func (s *SeederSuite) TestInitializeDoesNotTouchSession() {
	s.Require().NoError(s.seeder.Initialize(s.ctx))

	session, err := storage.ReadString(s.ctx, s.storage, storage.KeySession)
	s.Require().NoError(err)
	s.Empty(session)
}

func (s *SeederSuite) TestSeededPlayersReferenceSeededTeams() {
	s.Require().NoError(s.seeder.Initialize(s.ctx))

	teams, err := storage.ReadCollection[model.Team](s.ctx, s.storage, storage.KeyTeams)
	s.Require().NoError(err)
	known := make(map[model.TeamID]bool, len(teams))
	for _, team := range teams {
		known[team.ID] = true
	}

	players, err := storage.ReadCollection[model.Player](s.ctx, s.storage, storage.KeyPlayers)
	s.Require().NoError(err)
	for _, player := range players {
		s.True(known[player.TeamID], "player %s references unknown team %s", player.ID, player.TeamID)
	}
}
