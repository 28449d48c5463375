package token

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
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
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestCreateAndValidateToken() {
	out, err := s.repo.CreateToken(context.Background(), &CreateTokenInput{
		TTL: time.Hour,
	})
	s.Require().NoError(err)
	s.Require().NotEmpty(out.Token)

	err = s.repo.ValidateToken(context.Background(), &ValidateTokenInput{
		Token: out.Token,
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestValidateUnknownToken() {
	err := s.repo.ValidateToken(context.Background(), &ValidateTokenInput{
		Token: "not-a-token",
	})
	s.Require().ErrorIs(err, ErrTokenNotFound)
}

func (s *RedisRepositoryTestSuite) TestTokenExpires() {
	out, err := s.repo.CreateToken(context.Background(), &CreateTokenInput{
		TTL: time.Minute,
	})
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Minute)

	err = s.repo.ValidateToken(context.Background(), &ValidateTokenInput{
		Token: out.Token,
	})
	s.Require().ErrorIs(err, ErrTokenNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteToken() {
	out, err := s.repo.CreateToken(context.Background(), &CreateTokenInput{
		TTL: time.Hour,
	})
	s.Require().NoError(err)

	err = s.repo.DeleteToken(context.Background(), &DeleteTokenInput{
		Token: out.Token,
	})
	s.Require().NoError(err)

	err = s.repo.ValidateToken(context.Background(), &ValidateTokenInput{
		Token: out.Token,
	})
	s.Require().ErrorIs(err, ErrTokenNotFound)
}
