package repository

import (
	"context"
	"log/slog"

	"github.com/mwhitfield/clubstore/internal/dependencies/random"
	"github.com/mwhitfield/clubstore/internal/model"
	"github.com/mwhitfield/clubstore/internal/storage"
)

// TeamDraft carries the fields required to create a team
type TeamDraft struct {
	Name     string
	Division string
	Category string
}

// TeamPatch carries optional field updates; nil fields are left unchanged
type TeamPatch struct {
	Name     *string
	Division *string
	Category *string
}

// Teams provides CRUD over the teams collection
type Teams struct {
	store  storage.Store
	random random.Random
	logger *slog.Logger
}

// NewTeams creates a new Teams repository
func NewTeams(store storage.Store, random random.Random, logger *slog.Logger) *Teams {
	return &Teams{
		store:  store,
		random: random,
		logger: logger,
	}
}

// List returns all teams in insertion order
func (r *Teams) List(ctx context.Context) ([]model.Team, error) {
	return storage.ReadCollection[model.Team](ctx, r.store, storage.KeyTeams)
}

// GetByID returns the team with the given id
func (r *Teams) GetByID(ctx context.Context, id model.TeamID) (*model.Team, error) {
	teams, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range teams {
		if teams[i].ID == id {
			return &teams[i], nil
		}
	}
	return nil, model.ErrTeamNotFound
}

// Save validates the draft, assigns a fresh id and appends the team
func (r *Teams) Save(ctx context.Context, draft TeamDraft) (*model.Team, error) {
	if err := model.RequireFields(map[string]string{
		"name":     draft.Name,
		"division": draft.Division,
		"category": draft.Category,
	}); err != nil {
		return nil, err
	}

	teams, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	team := model.Team{
		ID:       model.TeamID(r.random.ID("team_")),
		Name:     draft.Name,
		Division: draft.Division,
		Category: draft.Category,
	}

	teams = append(teams, team)
	if err := storage.WriteCollection(ctx, r.store, storage.KeyTeams, teams); err != nil {
		return nil, err
	}

	r.logger.Info("team saved", slog.String("team_id", string(team.ID)))
	return &team, nil
}

// Update merges the patch onto the stored team and rewrites the collection
func (r *Teams) Update(ctx context.Context, id model.TeamID, patch TeamPatch) (*model.Team, error) {
	teams, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range teams {
		if teams[i].ID != id {
			continue
		}

		if patch.Name != nil {
			teams[i].Name = *patch.Name
		}
		if patch.Division != nil {
			teams[i].Division = *patch.Division
		}
		if patch.Category != nil {
			teams[i].Category = *patch.Category
		}

		if err := storage.WriteCollection(ctx, r.store, storage.KeyTeams, teams); err != nil {
			return nil, err
		}
		return &teams[i], nil
	}

	return nil, model.ErrTeamNotFound
}

// Delete removes the team with the given id. Deleting an absent id is a
// no-op. Players referencing the team keep their TeamID; lookups then
// resolve to the unknown-team sentinel.
func (r *Teams) Delete(ctx context.Context, id model.TeamID) error {
	teams, err := r.List(ctx)
	if err != nil {
		return err
	}

	kept := teams[:0]
	for _, team := range teams {
		if team.ID != id {
			kept = append(kept, team)
		}
	}
	if len(kept) == len(teams) {
		return nil
	}

	return storage.WriteCollection(ctx, r.store, storage.KeyTeams, kept)
}
