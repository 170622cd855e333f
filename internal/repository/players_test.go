package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mwhitfield/clubstore/internal/dependencies/mocks"
	"github.com/mwhitfield/clubstore/internal/model"
	"github.com/mwhitfield/clubstore/internal/storage/memory"
	"github.com/mwhitfield/clubstore/internal/testutil"
)

type PlayersSuite struct {
	suite.Suite
	storage *memory.Storage
	teams   *Teams
	repo    *Players
	ctx     context.Context
}

func TestPlayersSuite(t *testing.T) {
	suite.Run(t, new(PlayersSuite))
}

func (s *PlayersSuite) SetupTest() {
	s.storage = memory.New()
	random := mocks.NewMockRandom()
	s.teams = NewTeams(s.storage, random, testutil.NopLogger())
	s.repo = NewPlayers(s.storage, random, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *PlayersSuite) draft(teamID model.TeamID) PlayerDraft {
	return PlayerDraft{
		FirstName:   "Jamie",
		LastName:    "Okafor",
		DateOfBirth: model.NewDate(2001, time.February, 3),
		Gender:      "Male",
		TeamID:      teamID,
		Position:    model.PositionForward,
		Email:       "jamie@example.com",
		Phone:       "555-0101",
	}
}

func (s *PlayersSuite) TestSaveThenGetByID() {
	player, err := s.repo.Save(s.ctx, s.draft("team-1"))
	s.Require().NoError(err)
	s.NotEmpty(player.ID)

	stored, err := s.repo.GetByID(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Equal(player.ID, stored.ID)
	s.Equal(player.FirstName, stored.FirstName)
	s.Equal(player.LastName, stored.LastName)
	s.Equal(player.TeamID, stored.TeamID)
	s.Equal(player.Email, stored.Email)
	s.Equal(player.DateOfBirth.String(), stored.DateOfBirth.String())
}

func (s *PlayersSuite) TestSaveValidatesRequiredFields() {
	_, err := s.repo.Save(s.ctx, PlayerDraft{FirstName: "Jamie"})

	var verr *model.ValidationError
	s.Require().True(errors.As(err, &verr))
	s.ElementsMatch([]string{"lastName", "teamId", "email", "phone"}, verr.Fields)
}

func (s *PlayersSuite) TestUpdateChangesOnlyPatchedField() {
	player, _ := s.repo.Save(s.ctx, s.draft("team-1"))

	newPhone := "555-0202"
	updated, err := s.repo.Update(s.ctx, player.ID, PlayerPatch{Phone: &newPhone})
	s.Require().NoError(err)

	s.Equal("555-0202", updated.Phone)
	s.Equal(player.FirstName, updated.FirstName)
	s.Equal(player.Email, updated.Email)
	s.Equal(player.TeamID, updated.TeamID)
	s.Equal(player.DateOfBirth.String(), updated.DateOfBirth.String())
}

func (s *PlayersSuite) TestUpdateUnknownIsNotFound() {
	pos := model.PositionDefender
	_, err := s.repo.Update(s.ctx, "missing", PlayerPatch{Position: &pos})
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *PlayersSuite) TestDeleteThenGetByIDIsNotFound() {
	player, _ := s.repo.Save(s.ctx, s.draft("team-1"))

	s.Require().NoError(s.repo.Delete(s.ctx, player.ID))

	_, err := s.repo.GetByID(s.ctx, player.ID)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *PlayersSuite) TestDeleteAbsentIsNoop() {
	_, _ = s.repo.Save(s.ctx, s.draft("team-1"))

	s.Require().NoError(s.repo.Delete(s.ctx, "missing"))

	players, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 1)
}

func (s *PlayersSuite) TestTeamNameResolvesStoredTeam() {
	team, _ := s.teams.Save(s.ctx, TeamDraft{Name: "First XI", Division: "Premier", Category: "Senior"})

	name, err := s.repo.TeamName(s.ctx, team.ID)
	s.Require().NoError(err)
	s.Equal("First XI", name)
}

func (s *PlayersSuite) TestTeamNameFallsBackForDanglingReference() {
	team, _ := s.teams.Save(s.ctx, TeamDraft{Name: "First XI", Division: "Premier", Category: "Senior"})
	player, _ := s.repo.Save(s.ctx, s.draft(team.ID))

	// Deleting the team does not cascade to players
	s.Require().NoError(s.teams.Delete(s.ctx, team.ID))

	stored, err := s.repo.GetByID(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Equal(team.ID, stored.TeamID)

	name, err := s.repo.TeamName(s.ctx, stored.TeamID)
	s.Require().NoError(err)
	s.Equal(UnknownTeamName, name)
}

func (s *PlayersSuite) TestTeamNameFallsBackForEmptyReference() {
	name, err := s.repo.TeamName(s.ctx, "")
	s.Require().NoError(err)
	s.Equal(UnknownTeamName, name)
}

func (s *PlayersSuite) TestCountByTeam() {
	_, _ = s.repo.Save(s.ctx, s.draft("team-a"))
	_, _ = s.repo.Save(s.ctx, s.draft("team-a"))
	_, _ = s.repo.Save(s.ctx, s.draft("team-b"))

	counts, err := s.repo.CountByTeam(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, counts["team-a"])
	s.Equal(1, counts["team-b"])
}
