package auth

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mwhitfield/clubstore/internal/dependencies/clock"
	"github.com/mwhitfield/clubstore/internal/dependencies/random"
	"github.com/mwhitfield/clubstore/internal/model"
	"github.com/mwhitfield/clubstore/internal/storage"
)

// Errors
var (
	// ErrInvalidCredentials is deliberately generic: it does not reveal
	// whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameExists     = errors.New("username already exists")
)

// MinPasswordLength is the minimum accepted password length
const MinPasswordLength = 5

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Service handles registration, login and the single persisted session.
// The session is a pointer to a user id stored under its own key; at most
// one session exists at a time.
type Service struct {
	store  storage.Store
	clock  clock.Clock
	random random.Random
	logger *slog.Logger
}

// New creates a new auth Service
func New(store storage.Store, clock clock.Clock, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		clock:  clock,
		random: random,
		logger: logger,
	}
}

// Register creates a new user account. It does not establish a session;
// the caller is routed through Login afterwards.
func (s *Service) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	if err := validateRegistration(username, email, password); err != nil {
		return nil, err
	}

	users, err := storage.ReadCollection[model.User](ctx, s.store, storage.KeyUsers)
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		if user.Username == username {
			return nil, ErrUsernameExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := model.User{
		ID:           model.UserID(s.random.ID("user_")),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.clock.Now(),
	}

	users = append(users, user)
	if err := storage.WriteCollection(ctx, s.store, storage.KeyUsers, users); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", slog.String("user_id", string(user.ID)))
	return &user, nil
}

// Login checks the credentials and, on success, points the session at
// the user and returns the user record.
func (s *Service) Login(ctx context.Context, username, password string) (*model.User, error) {
	users, err := storage.ReadCollection[model.User](ctx, s.store, storage.KeyUsers)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Username != username {
			continue
		}

		if bcrypt.CompareHashAndPassword([]byte(users[i].PasswordHash), []byte(password)) != nil {
			return nil, ErrInvalidCredentials
		}

		if err := storage.WriteString(ctx, s.store, storage.KeySession, string(users[i].ID)); err != nil {
			return nil, err
		}

		s.logger.Info("user logged in", slog.String("user_id", string(users[i].ID)))
		return &users[i], nil
	}

	return nil, ErrInvalidCredentials
}

// CurrentUser resolves the session pointer to a user record. It returns
// (nil, nil) when logged out or when the referenced user no longer exists.
func (s *Service) CurrentUser(ctx context.Context) (*model.User, error) {
	userID, err := storage.ReadString(ctx, s.store, storage.KeySession)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, nil
	}

	users, err := storage.ReadCollection[model.User](ctx, s.store, storage.KeyUsers)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID == model.UserID(userID) {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Logout clears the session unconditionally; logging out while logged
// out is a no-op.
func (s *Service) Logout(ctx context.Context) error {
	return s.store.Remove(ctx, storage.KeySession)
}

// validateRegistration enforces presence, email shape and password length
func validateRegistration(username, email, password string) error {
	if verr := model.RequireFields(map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}); verr != nil {
		return verr
	}

	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		return model.NewValidationError("email")
	}
	if len(password) < MinPasswordLength {
		return model.NewValidationError("password")
	}
	return nil
}
