package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/mwhitfield/clubstore/internal/dependencies/random"
	"github.com/mwhitfield/clubstore/internal/model"
	"github.com/mwhitfield/clubstore/internal/storage"
)

// EventDraft carries the fields required to create an event
type EventDraft struct {
	Title                string
	Category             string
	Date                 time.Time
	Location             string
	RegistrationDeadline time.Time
}

// EventPatch carries optional field updates; nil fields are left unchanged
type EventPatch struct {
	Title                *string
	Category             *string
	Date                 *time.Time
	Location             *string
	RegistrationDeadline *time.Time
}

// Events provides CRUD over the events collection
type Events struct {
	store  storage.Store
	random random.Random
	logger *slog.Logger
}

// NewEvents creates a new Events repository
func NewEvents(store storage.Store, random random.Random, logger *slog.Logger) *Events {
	return &Events{
		store:  store,
		random: random,
		logger: logger,
	}
}

// List returns all events in insertion order
func (r *Events) List(ctx context.Context) ([]model.Event, error) {
	return storage.ReadCollection[model.Event](ctx, r.store, storage.KeyEvents)
}

// GetByID returns the event with the given id
func (r *Events) GetByID(ctx context.Context, id model.EventID) (*model.Event, error) {
	events, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range events {
		if events[i].ID == id {
			return &events[i], nil
		}
	}
	return nil, model.ErrEventNotFound
}

// Save validates the draft, assigns a fresh id and appends the event
func (r *Events) Save(ctx context.Context, draft EventDraft) (*model.Event, error) {
	missing := model.RequireFields(map[string]string{
		"title":    draft.Title,
		"category": draft.Category,
		"location": draft.Location,
	})
	if draft.Date.IsZero() {
		missing = appendField(missing, "date")
	}
	if draft.RegistrationDeadline.IsZero() {
		missing = appendField(missing, "registrationDeadline")
	}
	if missing != nil {
		return nil, missing
	}

	events, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	event := model.Event{
		ID:                   model.EventID(r.random.ID("event_")),
		Title:                draft.Title,
		Category:             draft.Category,
		Date:                 draft.Date,
		Location:             draft.Location,
		RegistrationDeadline: draft.RegistrationDeadline,
	}

	events = append(events, event)
	if err := storage.WriteCollection(ctx, r.store, storage.KeyEvents, events); err != nil {
		return nil, err
	}

	r.logger.Info("event saved", slog.String("event_id", string(event.ID)))
	return &event, nil
}

// Update merges the patch onto the stored event and rewrites the collection
func (r *Events) Update(ctx context.Context, id model.EventID, patch EventPatch) (*model.Event, error) {
	events, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range events {
		if events[i].ID != id {
			continue
		}

		if patch.Title != nil {
			events[i].Title = *patch.Title
		}
		if patch.Category != nil {
			events[i].Category = *patch.Category
		}
		if patch.Date != nil {
			events[i].Date = *patch.Date
		}
		if patch.Location != nil {
			events[i].Location = *patch.Location
		}
		if patch.RegistrationDeadline != nil {
			events[i].RegistrationDeadline = *patch.RegistrationDeadline
		}

		if err := storage.WriteCollection(ctx, r.store, storage.KeyEvents, events); err != nil {
			return nil, err
		}
		return &events[i], nil
	}

	return nil, model.ErrEventNotFound
}

// Delete removes the event with the given id. Deleting an absent id is a no-op.
func (r *Events) Delete(ctx context.Context, id model.EventID) error {
	events, err := r.List(ctx)
	if err != nil {
		return err
	}

	kept := events[:0]
	for _, event := range events {
		if event.ID != id {
			kept = append(kept, event)
		}
	}
	if len(kept) == len(events) {
		return nil
	}

	return storage.WriteCollection(ctx, r.store, storage.KeyEvents, kept)
}

// appendField extends a possibly-nil ValidationError with another field
func appendField(err *model.ValidationError, field string) *model.ValidationError {
	if err == nil {
		return model.NewValidationError(field)
	}
	err.Fields = append(err.Fields, field)
	return err
}
