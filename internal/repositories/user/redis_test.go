package user

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/liarsdice/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetUser() {
	ctx := context.Background()
	err := s.repo.CreateUser(ctx, &CreateUserInput{
		User: &models.User{
			ID:           "user-1",
			Name:         "Alice",
			Email:        "alice@example.com",
			PasswordHash: "hash",
			CreatedAt:    s.testNow,
		},
	})
	s.Require().NoError(err)

	user, err := s.repo.GetUser(ctx, &GetUserInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Equal("Alice", user.Name)
	s.Equal("alice@example.com", user.Email)
	s.Equal("hash", user.PasswordHash)

	byName, err := s.repo.GetUserByName(ctx, &GetUserByNameInput{Name: "alice"})
	s.Require().NoError(err)
	s.Equal("user-1", byName.ID)
}

func (s *RedisRepositoryTestSuite) TestCreateUserRejectsTakenName() {
	ctx := context.Background()
	s.Require().NoError(s.repo.CreateUser(ctx, &CreateUserInput{
		User: &models.User{ID: "user-1", Name: "Alice"},
	}))

	err := s.repo.CreateUser(ctx, &CreateUserInput{
		User: &models.User{ID: "user-2", Name: " ALICE "},
	})
	s.ErrorIs(err, ErrNameTaken)

	_, err = s.repo.GetUser(ctx, &GetUserInput{UserID: "user-2"})
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveUserUpserts() {
	ctx := context.Background()
	s.Require().NoError(s.repo.SaveUser(ctx, &SaveUserInput{
		User: &models.User{ID: "discord-1", Name: "Bob"},
	}))
	s.Require().NoError(s.repo.SaveUser(ctx, &SaveUserInput{
		User: &models.User{ID: "discord-1", Name: "Bobby"},
	}))

	user, err := s.repo.GetUser(ctx, &GetUserInput{UserID: "discord-1"})
	s.Require().NoError(err)
	s.Equal("Bobby", user.Name)

	// The first name claimed stays with the user
	byName, err := s.repo.GetUserByName(ctx, &GetUserByNameInput{Name: "bob"})
	s.Require().NoError(err)
	s.Equal("discord-1", byName.ID)
}

func (s *RedisRepositoryTestSuite) TestGetUserNotFound() {
	_, err := s.repo.GetUser(context.Background(), &GetUserInput{UserID: "missing"})
	s.ErrorIs(err, ErrUserNotFound)

	_, err = s.repo.GetUserByName(context.Background(), &GetUserByNameInput{Name: "missing"})
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetUsers() {
	ctx := context.Background()
	for _, id := range []string{"user-1", "user-2"} {
		s.Require().NoError(s.repo.SaveUser(ctx, &SaveUserInput{
			User: &models.User{ID: id, Name: "name-" + id},
		}))
	}

	output, err := s.repo.GetUsers(ctx, &GetUsersInput{
		UserIDs: []string{"user-2", "missing", "user-1"},
	})
	s.Require().NoError(err)
	s.Require().Len(output.Users, 2)
	s.Equal("user-2", output.Users[0].ID)
	s.Equal("user-1", output.Users[1].ID)
	s.Equal([]string{"missing"}, output.Missing)
}
