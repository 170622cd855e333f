package repository

import (
	"context"
	"log/slog"

	"github.com/mwhitfield/clubstore/internal/dependencies/random"
	"github.com/mwhitfield/clubstore/internal/model"
	"github.com/mwhitfield/clubstore/internal/storage"
)

// UnknownTeamName is the sentinel used when a player's team reference
// does not resolve to a stored team.
const UnknownTeamName = "Unknown Team"

// PlayerDraft carries the fields to create a player. FirstName, LastName,
// TeamID, Email and Phone are required; the rest are optional.
type PlayerDraft struct {
	FirstName    string
	LastName     string
	DateOfBirth  model.Date
	Gender       string
	TeamID       model.TeamID
	Position     string
	Email        string
	Phone        string
	ProfileImage string
}

// PlayerPatch carries optional field updates; nil fields are left unchanged
type PlayerPatch struct {
	FirstName    *string
	LastName     *string
	DateOfBirth  *model.Date
	Gender       *string
	TeamID       *model.TeamID
	Position     *string
	Email        *string
	Phone        *string
	ProfileImage *string
}

// Players provides CRUD over the players collection
type Players struct {
	store  storage.Store
	random random.Random
	logger *slog.Logger
}

// NewPlayers creates a new Players repository
func NewPlayers(store storage.Store, random random.Random, logger *slog.Logger) *Players {
	return &Players{
		store:  store,
		random: random,
		logger: logger,
	}
}

// List returns all players in insertion order
func (r *Players) List(ctx context.Context) ([]model.Player, error) {
	return storage.ReadCollection[model.Player](ctx, r.store, storage.KeyPlayers)
}

// GetByID returns the player with the given id
func (r *Players) GetByID(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	players, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range players {
		if players[i].ID == id {
			return &players[i], nil
		}
	}
	return nil, model.ErrPlayerNotFound
}

// Save validates the draft, assigns a fresh id and appends the player
func (r *Players) Save(ctx context.Context, draft PlayerDraft) (*model.Player, error) {
	if err := model.RequireFields(map[string]string{
		"firstName": draft.FirstName,
		"lastName":  draft.LastName,
		"teamId":    string(draft.TeamID),
		"email":     draft.Email,
		"phone":     draft.Phone,
	}); err != nil {
		return nil, err
	}

	players, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	player := model.Player{
		ID:           model.PlayerID(r.random.ID("player_")),
		FirstName:    draft.FirstName,
		LastName:     draft.LastName,
		DateOfBirth:  draft.DateOfBirth,
		Gender:       draft.Gender,
		TeamID:       draft.TeamID,
		Position:     draft.Position,
		Email:        draft.Email,
		Phone:        draft.Phone,
		ProfileImage: draft.ProfileImage,
	}

	players = append(players, player)
	if err := storage.WriteCollection(ctx, r.store, storage.KeyPlayers, players); err != nil {
		return nil, err
	}

	r.logger.Info("player saved",
		slog.String("player_id", string(player.ID)),
		slog.String("team_id", string(player.TeamID)),
	)
	return &player, nil
}

// Update merges the patch onto the stored player and rewrites the collection
func (r *Players) Update(ctx context.Context, id model.PlayerID, patch PlayerPatch) (*model.Player, error) {
	players, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range players {
		if players[i].ID != id {
			continue
		}

		if patch.FirstName != nil {
			players[i].FirstName = *patch.FirstName
		}
		if patch.LastName != nil {
			players[i].LastName = *patch.LastName
		}
		if patch.DateOfBirth != nil {
			players[i].DateOfBirth = *patch.DateOfBirth
		}
		if patch.Gender != nil {
			players[i].Gender = *patch.Gender
		}
		if patch.TeamID != nil {
			players[i].TeamID = *patch.TeamID
		}
		if patch.Position != nil {
			players[i].Position = *patch.Position
		}
		if patch.Email != nil {
			players[i].Email = *patch.Email
		}
		if patch.Phone != nil {
			players[i].Phone = *patch.Phone
		}
		if patch.ProfileImage != nil {
			players[i].ProfileImage = *patch.ProfileImage
		}

		if err := storage.WriteCollection(ctx, r.store, storage.KeyPlayers, players); err != nil {
			return nil, err
		}
		return &players[i], nil
	}

	return nil, model.ErrPlayerNotFound
}

// Delete removes the player with the given id. Deleting an absent id is a no-op.
func (r *Players) Delete(ctx context.Context, id model.PlayerID) error {
	players, err := r.List(ctx)
	if err != nil {
		return err
	}

	kept := players[:0]
	for _, player := range players {
		if player.ID != id {
			kept = append(kept, player)
		}
	}
	if len(kept) == len(players) {
		return nil
	}

	return storage.WriteCollection(ctx, r.store, storage.KeyPlayers, kept)
}

// TeamName resolves a player's team reference to the team name. A blank
// or dangling reference resolves to UnknownTeamName; the reference is
// weak and never enforced.
func (r *Players) TeamName(ctx context.Context, teamID model.TeamID) (string, error) {
	if teamID == "" {
		return UnknownTeamName, nil
	}

	teams, err := storage.ReadCollection[model.Team](ctx, r.store, storage.KeyTeams)
	if err != nil {
		return "", err
	}

	for _, team := range teams {
		if team.ID == teamID {
			return team.Name, nil
		}
	}
	return UnknownTeamName, nil
}

// CountByTeam returns the number of players per referenced team id.
// Players without a team are not counted.
func (r *Players) CountByTeam(ctx context.Context) (map[model.TeamID]int, error) {
	players, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[model.TeamID]int)
	for _, player := range players {
		if player.TeamID != "" {
			counts[player.TeamID]++
		}
	}
	return counts, nil
}
