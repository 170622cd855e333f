package repository

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/mwhitfield/clubstore/internal/dependencies/random"
	"github.com/mwhitfield/clubstore/internal/model"
	"github.com/mwhitfield/clubstore/internal/storage"
)

// AnnouncementDraft carries the fields required to create an announcement
type AnnouncementDraft struct {
	Title     string
	Date      time.Time
	Message   string
	Important bool
}

// AnnouncementPatch carries optional field updates; nil fields are left unchanged
type AnnouncementPatch struct {
	Title     *string
	Date      *time.Time
	Message   *string
	Important *bool
}

// Announcements provides CRUD over the announcements collection.
// Listings are ordered by date, newest first.
type Announcements struct {
	store  storage.Store
	random random.Random
	logger *slog.Logger
}

// NewAnnouncements creates a new Announcements repository
func NewAnnouncements(store storage.Store, random random.Random, logger *slog.Logger) *Announcements {
	return &Announcements{
		store:  store,
		random: random,
		logger: logger,
	}
}

// List returns all announcements, newest first
func (r *Announcements) List(ctx context.Context) ([]model.Announcement, error) {
	announcements, err := storage.ReadCollection[model.Announcement](ctx, r.store, storage.KeyAnnouncements)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(announcements, func(i, j int) bool {
		return announcements[i].Date.After(announcements[j].Date)
	})
	return announcements, nil
}

// Recent returns at most n of the newest announcements
func (r *Announcements) Recent(ctx context.Context, n int) ([]model.Announcement, error) {
	announcements, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(announcements) > n {
		announcements = announcements[:n]
	}
	return announcements, nil
}

// GetByID returns the announcement with the given id
func (r *Announcements) GetByID(ctx context.Context, id model.AnnouncementID) (*model.Announcement, error) {
	announcements, err := storage.ReadCollection[model.Announcement](ctx, r.store, storage.KeyAnnouncements)
	if err != nil {
		return nil, err
	}

	for i := range announcements {
		if announcements[i].ID == id {
			return &announcements[i], nil
		}
	}
	return nil, model.ErrAnnouncementNotFound
}

// Save validates the draft, assigns a fresh id and appends the announcement
func (r *Announcements) Save(ctx context.Context, draft AnnouncementDraft) (*model.Announcement, error) {
	missing := model.RequireFields(map[string]string{
		"title":   draft.Title,
		"message": draft.Message,
	})
	if draft.Date.IsZero() {
		missing = appendField(missing, "date")
	}
	if missing != nil {
		return nil, missing
	}

	announcements, err := storage.ReadCollection[model.Announcement](ctx, r.store, storage.KeyAnnouncements)
	if err != nil {
		return nil, err
	}

	announcement := model.Announcement{
		ID:        model.AnnouncementID(r.random.ID("ann_")),
		Title:     draft.Title,
		Date:      draft.Date,
		Message:   draft.Message,
		Important: draft.Important,
	}

	announcements = append(announcements, announcement)
	if err := storage.WriteCollection(ctx, r.store, storage.KeyAnnouncements, announcements); err != nil {
		return nil, err
	}

	r.logger.Info("announcement saved", slog.String("announcement_id", string(announcement.ID)))
	return &announcement, nil
}

// Update merges the patch onto the stored announcement and rewrites the collection
func (r *Announcements) Update(ctx context.Context, id model.AnnouncementID, patch AnnouncementPatch) (*model.Announcement, error) {
	announcements, err := storage.ReadCollection[model.Announcement](ctx, r.store, storage.KeyAnnouncements)
	if err != nil {
		return nil, err
	}

	for i := range announcements {
		if announcements[i].ID != id {
			continue
		}

		if patch.Title != nil {
			announcements[i].Title = *patch.Title
		}
		if patch.Date != nil {
			announcements[i].Date = *patch.Date
		}
		if patch.Message != nil {
			announcements[i].Message = *patch.Message
		}
		if patch.Important != nil {
			announcements[i].Important = *patch.Important
		}

		if err := storage.WriteCollection(ctx, r.store, storage.KeyAnnouncements, announcements); err != nil {
			return nil, err
		}
		return &announcements[i], nil
	}

	return nil, model.ErrAnnouncementNotFound
}

// Delete removes the announcement with the given id. Deleting an absent
// id is a no-op.
func (r *Announcements) Delete(ctx context.Context, id model.AnnouncementID) error {
	announcements, err := storage.ReadCollection[model.Announcement](ctx, r.store, storage.KeyAnnouncements)
	if err != nil {
		return err
	}

	kept := announcements[:0]
	for _, announcement := range announcements {
		if announcement.ID != id {
			kept = append(kept, announcement)
		}
	}
	if len(kept) == len(announcements) {
		return nil
	}

	return storage.WriteCollection(ctx, r.store, storage.KeyAnnouncements, kept)
}
