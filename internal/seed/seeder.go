package seed

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mwhitfield/clubstore/internal/dependencies/clock"
	"github.com/mwhitfield/clubstore/internal/model"
	"github.com/mwhitfield/clubstore/internal/storage"
)

// Default admin credentials written on first run
const (
	AdminUsername = "admin"
	AdminPassword = "admin123"
	AdminEmail    = "admin@clubstore.local"
)

// Seeder populates empty collections with baseline sample data. It runs
// on every start and only writes a collection that is empty or absent,
// so existing user data is never clobbered.
type Seeder struct {
	store  storage.Store
	clock  clock.Clock
	logger *slog.Logger
}

// New creates a new Seeder
func New(store storage.Store, clock clock.Clock, logger *slog.Logger) *Seeder {
	return &Seeder{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// Initialize seeds every empty collection. Safe to call repeatedly.
func (s *Seeder) Initialize(ctx context.Context) error {
	now := s.clock.Now()

	if err := seedCollection(ctx, s, storage.KeyTeams, sampleTeams()); err != nil {
		return err
	}
	if err := seedCollection(ctx, s, storage.KeyPlayers, samplePlayers()); err != nil {
		return err
	}
	if err := seedCollection(ctx, s, storage.KeyEvents, sampleEvents(now)); err != nil {
		return err
	}
	if err := seedCollection(ctx, s, storage.KeyAnnouncements, sampleAnnouncements(now)); err != nil {
		return err
	}

	adminUser, err := adminUser(now)
	if err != nil {
		return err
	}
	return seedCollection(ctx, s, storage.KeyUsers, []model.User{adminUser})
}

// seedCollection writes the baseline only when the stored collection is
// empty or was never written.
func seedCollection[T any](ctx context.Context, s *Seeder, key string, baseline []T) error {
	existing, err := storage.ReadCollection[T](ctx, s.store, key)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	if err := storage.WriteCollection(ctx, s.store, key, baseline); err != nil {
		return err
	}

	s.logger.Info("seeded collection",
		slog.String("key", key),
		slog.Int("records", len(baseline)),
	)
	return nil
}

func sampleTeams() []model.Team {
	return []model.Team{
		{ID: "team_first_xi", Name: "First XI", Division: "Premier", Category: "Senior"},
		{ID: "team_reserves", Name: "Reserves", Division: "Second", Category: "Senior"},
		{ID: "team_u18", Name: "Under 18s", Division: "Youth A", Category: "Junior"},
		{ID: "team_womens", Name: "Women's First", Division: "Premier", Category: "Senior"},
	}
}

func samplePlayers() []model.Player {
	return []model.Player{
		{
			ID:          "player_okafor",
			FirstName:   "Jamie",
			LastName:    "Okafor",
			DateOfBirth: model.NewDate(1998, time.March, 12),
			Gender:      "Male",
			TeamID:      "team_first_xi",
			Position:    model.PositionForward,
			Email:       "jamie.okafor@example.com",
			Phone:       "555-0101",
		},
		{
			ID:          "player_reyes",
			FirstName:   "Marco",
			LastName:    "Reyes",
			DateOfBirth: model.NewDate(2000, time.June, 15),
			Gender:      "Male",
			TeamID:      "team_first_xi",
			Position:    model.PositionMidfielder,
			Email:       "marco.reyes@example.com",
			Phone:       "555-0102",
		},
		{
			ID:          "player_lindqvist",
			FirstName:   "Sofia",
			LastName:    "Lindqvist",
			DateOfBirth: model.NewDate(1999, time.November, 2),
			Gender:      "Female",
			TeamID:      "team_womens",
			Position:    model.PositionDefender,
			Email:       "sofia.lindqvist@example.com",
			Phone:       "555-0103",
		},
		{
			ID:          "player_baptiste",
			FirstName:   "Remy",
			LastName:    "Baptiste",
			DateOfBirth: model.NewDate(2007, time.January, 28),
			Gender:      "Male",
			TeamID:      "team_u18",
			Position:    model.PositionGoalkeeper,
			Email:       "remy.baptiste@example.com",
			Phone:       "555-0104",
		},
		{
			ID:          "player_chen",
			FirstName:   "Wei",
			LastName:    "Chen",
			DateOfBirth: model.NewDate(2001, time.August, 9),
			Gender:      "Male",
			TeamID:      "team_reserves",
			Position:    model.PositionMidfielder,
			Email:       "wei.chen@example.com",
			Phone:       "555-0105",
		},
		{
			ID:          "player_adeyemi",
			FirstName:   "Funke",
			LastName:    "Adeyemi",
			DateOfBirth: model.NewDate(2002, time.April, 22),
			Gender:      "Female",
			TeamID:      "team_womens",
			Position:    model.PositionForward,
			Email:       "funke.adeyemi@example.com",
			Phone:       "555-0106",
		},
	}
}

// sampleEvents keeps deadlines relative to the clock so the registration
// window reads sensibly on a fresh install.
func sampleEvents(now time.Time) []model.Event {
	return []model.Event{
		{
			ID:                   "event_summer_tournament",
			Title:                "Summer Tournament",
			Category:             "Tournament",
			Date:                 now.AddDate(0, 0, 21),
			Location:             "Northside Grounds",
			RegistrationDeadline: now.AddDate(0, 0, 14),
		},
		{
			ID:                   "event_preseason_trials",
			Title:                "Pre-season Trials",
			Category:             "Trials",
			Date:                 now.AddDate(0, 0, 10),
			Location:             "Club Training Pitch",
			RegistrationDeadline: now.AddDate(0, 0, 7),
		},
		{
			ID:                   "event_agm",
			Title:                "Annual General Meeting",
			Category:             "Meeting",
			Date:                 now.AddDate(0, 1, 0),
			Location:             "Clubhouse",
			RegistrationDeadline: now.AddDate(0, 0, 25),
		},
		{
			ID:                   "event_family_day",
			Title:                "Family Fun Day",
			Category:             "Social",
			Date:                 now.AddDate(0, 0, -7),
			Location:             "Riverside Park",
			RegistrationDeadline: now.AddDate(0, 0, -10),
		},
	}
}

func sampleAnnouncements(now time.Time) []model.Announcement {
	return []model.Announcement{
		{
			ID:        "ann_kit_orders",
			Title:     "New Kit Orders Open",
			Date:      now.AddDate(0, 0, -1),
			Message:   "Orders for next season's kit close at the end of the month. See the club office for sizing.",
			Important: false,
		},
		{
			ID:        "ann_pitch_closure",
			Title:     "Main Pitch Closed for Maintenance",
			Date:      now.AddDate(0, 0, -3),
			Message:   "The main pitch is closed this week for reseeding. All sessions move to the training pitch.",
			Important: true,
		},
		{
			ID:        "ann_volunteers",
			Title:     "Matchday Volunteers Needed",
			Date:      now.AddDate(0, 0, -5),
			Message:   "We need volunteers for the gate and canteen on home matchdays. Sign up at the clubhouse.",
			Important: false,
		},
		{
			ID:        "ann_membership",
			Title:     "Membership Renewals Due",
			Date:      now.AddDate(0, 0, -12),
			Message:   "Annual membership renewals are due. Unrenewed memberships lapse at the end of the month.",
			Important: false,
		},
	}
}

func adminUser(now time.Time) (model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, err
	}

	return model.User{
		ID:           "user_admin",
		Username:     AdminUsername,
		Email:        AdminEmail,
		PasswordHash: string(hash),
		CreatedAt:    now,
	}, nil
}
