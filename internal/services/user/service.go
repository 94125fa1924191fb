package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/liarsdice/internal/common/clock"
	"github.com/KirkDiggler/liarsdice/internal/common/uuid"
	"github.com/KirkDiggler/liarsdice/internal/models"
	userRepo "github.com/KirkDiggler/liarsdice/internal/repositories/user"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxNameLength     = 32
	minPasswordLength = 8
)

// service implements the Service interface
type service struct {
	userRepo      userRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
	passwordCost  int
}

// New creates a new user service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.UserRepo == nil {
		return nil, ErrNilUserRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	cost := cfg.PasswordCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &service{
		userRepo:      cfg.UserRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		passwordCost:  cost,
	}, nil
}

// CreateUser hashes the password and stores a new user under a unique name
func (s *service) CreateUser(ctx context.Context, input *CreateUserInput) (*CreateUserOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" || utf8.RuneCountInString(name) > maxNameLength {
		return nil, ErrInvalidName
	}

	if len(input.Password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.passwordCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           s.uuidGenerator.NewUUID(),
		Name:         name,
		Email:        strings.TrimSpace(input.Email),
		PasswordHash: string(hash),
		CreatedAt:    s.clock.Now(),
	}

	if err := s.userRepo.CreateUser(ctx, &userRepo.CreateUserInput{
		User: user,
	}); err != nil {
		if errors.Is(err, userRepo.ErrNameTaken) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &CreateUserOutput{
		User: user,
	}, nil
}

// Authenticate returns the user when the password matches its stored hash
func (s *service) Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthenticateOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	user, err := s.userRepo.GetUserByName(ctx, &userRepo.GetUserByNameInput{
		Name: input.Name,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Users created through Discord have no password and cannot log in here
	if user.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return &AuthenticateOutput{
		User: user,
	}, nil
}

// EnsureUser creates the user on first sight and keeps the display name current
func (s *service) EnsureUser(ctx context.Context, input *EnsureUserInput) (*EnsureUserOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	existing, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{
		UserID: input.ID,
	})
	if err != nil && !errors.Is(err, userRepo.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if existing != nil && (input.Name == "" || existing.Name == input.Name) {
		return &EnsureUserOutput{User: existing}, nil
	}

	user := existing
	created := false
	if user == nil {
		user = &models.User{
			ID:        input.ID,
			CreatedAt: s.clock.Now(),
		}
		created = true
	}
	if input.Name != "" {
		user.Name = input.Name
	}

	if err := s.userRepo.SaveUser(ctx, &userRepo.SaveUserInput{
		User: user,
	}); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	return &EnsureUserOutput{
		User:    user,
		Created: created,
	}, nil
}

// GetUser returns a user by ID
func (s *service) GetUser(ctx context.Context, input *GetUserInput) (*GetUserOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	user, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{
		UserID: input.UserID,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &GetUserOutput{
		User: user,
	}, nil
}
