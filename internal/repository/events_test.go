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

type EventsSuite struct {
	suite.Suite
	storage *memory.Storage
	repo    *Events
	ctx     context.Context
}

func TestEventsSuite(t *testing.T) {
	suite.Run(t, new(EventsSuite))
}

func (s *EventsSuite) SetupTest() {
	s.storage = memory.New()
	s.repo = NewEvents(s.storage, mocks.NewMockRandom(), testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *EventsSuite) draft() EventDraft {
	return EventDraft{
		Title:                "Summer Tournament",
		Category:             "Tournament",
		Date:                 time.Date(2024, time.July, 20, 9, 0, 0, 0, time.UTC),
		Location:             "Northside Grounds",
		RegistrationDeadline: time.Date(2024, time.July, 10, 18, 0, 0, 0, time.UTC),
	}
}

func (s *EventsSuite) TestSaveThenGetByID() {
	event, err := s.repo.Save(s.ctx, s.draft())
	s.Require().NoError(err)
	s.NotEmpty(event.ID)

	stored, err := s.repo.GetByID(s.ctx, event.ID)
	s.Require().NoError(err)
	s.Equal(event.Title, stored.Title)
	s.True(event.RegistrationDeadline.Equal(stored.RegistrationDeadline))
}

func (s *EventsSuite) TestSaveValidatesRequiredFields() {
	_, err := s.repo.Save(s.ctx, EventDraft{Title: "Summer Tournament"})

	var verr *model.ValidationError
	s.Require().True(errors.As(err, &verr))
	s.ElementsMatch([]string{"category", "location", "date", "registrationDeadline"}, verr.Fields)
}

func (s *EventsSuite) TestUpdateChangesOnlyPatchedField() {
	event, _ := s.repo.Save(s.ctx, s.draft())

	newLocation := "Riverside Park"
	updated, err := s.repo.Update(s.ctx, event.ID, EventPatch{Location: &newLocation})
	s.Require().NoError(err)

	s.Equal("Riverside Park", updated.Location)
	s.Equal(event.Title, updated.Title)
	s.True(event.Date.Equal(updated.Date))
}

func (s *EventsSuite) TestDeleteThenGetByIDIsNotFound() {
	event, _ := s.repo.Save(s.ctx, s.draft())

	s.Require().NoError(s.repo.Delete(s.ctx, event.ID))

	_, err := s.repo.GetByID(s.ctx, event.ID)
	s.ErrorIs(err, model.ErrEventNotFound)
}

func (s *EventsSuite) TestDeleteAbsentIsNoop() {
	_, _ = s.repo.Save(s.ctx, s.draft())

	s.Require().NoError(s.repo.Delete(s.ctx, "missing"))

	events, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Len(events, 1)
}

func (s *EventsSuite) TestDeadlineSurvivesStorageRoundTrip() {
	event, _ := s.repo.Save(s.ctx, s.draft())

	stored, err := s.repo.GetByID(s.ctx, event.ID)
	s.Require().NoError(err)

	window := stored.RegistrationWindow(stored.RegistrationDeadline.Add(-24 * time.Hour))
	s.True(window.Open)
	s.Equal(1, window.DaysRemaining)
}
