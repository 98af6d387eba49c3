package user

import (
	"context"
	"testing"

	"github.com/KirkDiggler/forfeit/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context
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

	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestNewRedis_Validation() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetUser() {
	err := s.repo.SaveUser(s.ctx, &SaveUserInput{
		User: &models.User{ID: "user-1", Name: "Alice", Email: "alice@example.com"},
	})
	s.Require().NoError(err)

	user, err := s.repo.GetUser(s.ctx, &GetUserInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Equal("Alice", user.Name)
	s.Equal("alice@example.com", user.Email)
}

func (s *RedisRepositoryTestSuite) TestGetUser_NotFound() {
	_, err := s.repo.GetUser(s.ctx, &GetUserInput{UserID: "missing"})
	s.Equal(ErrUserNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestSaveUser_Validation() {
	s.Error(s.repo.SaveUser(s.ctx, nil))
	s.Error(s.repo.SaveUser(s.ctx, &SaveUserInput{User: &models.User{}}))
}
