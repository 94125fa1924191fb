package score

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

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

func (s *RedisRepositoryTestSuite) TestApplyGameResultCreatesAndUpdatesRecords() {
	ctx := context.Background()

	output, err := s.repo.ApplyGameResult(ctx, &ApplyGameResultInput{
		GameID:    "game-1",
		PlayerIDs: []string{"alice", "bob"},
		WinnerID:  "bob",
		Points:    4,
		Timestamp: s.testNow,
	})
	s.Require().NoError(err)
	s.True(output.Applied)

	alice, err := s.repo.GetScoreRecord(ctx, &GetScoreRecordInput{UserID: "alice"})
	s.Require().NoError(err)
	s.Equal(1, alice.GamesPlayed)
	s.Equal(0, alice.Wins)
	s.Equal(0, alice.CumulativeScore)
	s.True(s.testNow.Equal(alice.CreatedAt))

	bob, err := s.repo.GetScoreRecord(ctx, &GetScoreRecordInput{UserID: "bob"})
	s.Require().NoError(err)
	s.Equal(1, bob.GamesPlayed)
	s.Equal(1, bob.Wins)
	s.Equal(4, bob.CumulativeScore)
	s.Greater(bob.CreatedSeq, alice.CreatedSeq)

	// A second game accumulates on the same records
	output, err = s.repo.ApplyGameResult(ctx, &ApplyGameResultInput{
		GameID:    "game-2",
		PlayerIDs: []string{"alice", "bob", "carol"},
		WinnerID:  "alice",
		Points:    7,
		Timestamp: s.testNow.Add(time.Hour),
	})
	s.Require().NoError(err)
	s.True(output.Applied)

	alice, err = s.repo.GetScoreRecord(ctx, &GetScoreRecordInput{UserID: "alice"})
	s.Require().NoError(err)
	s.Equal(2, alice.GamesPlayed)
	s.Equal(1, alice.Wins)
	s.Equal(7, alice.CumulativeScore)
	s.True(s.testNow.Equal(alice.CreatedAt))
}

func (s *RedisRepositoryTestSuite) TestApplyGameResultIsAppliedOnce() {
	ctx := context.Background()
	input := &ApplyGameResultInput{
		GameID:    "game-1",
		PlayerIDs: []string{"alice", "bob"},
		WinnerID:  "alice",
		Points:    3,
		Timestamp: s.testNow,
	}

	output, err := s.repo.ApplyGameResult(ctx, input)
	s.Require().NoError(err)
	s.True(output.Applied)

	output, err = s.repo.ApplyGameResult(ctx, input)
	s.Require().NoError(err)
	s.False(output.Applied)

	alice, err := s.repo.GetScoreRecord(ctx, &GetScoreRecordInput{UserID: "alice"})
	s.Require().NoError(err)
	s.Equal(1, alice.GamesPlayed)
	s.Equal(1, alice.Wins)
	s.Equal(3, alice.CumulativeScore)
}

func (s *RedisRepositoryTestSuite) TestApplyGameResultConcurrentGamesAllCounted() {
	ctx := context.Background()
	const games = 20

	var wg sync.WaitGroup
	errs := make(chan error, games)
	for i := 0; i < games; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			output, err := s.repo.ApplyGameResult(ctx, &ApplyGameResultInput{
				GameID:    fmt.Sprintf("game-%d", i),
				PlayerIDs: []string{"shared", fmt.Sprintf("opponent-%d", i)},
				WinnerID:  "shared",
				Points:    2,
				Timestamp: s.testNow,
			})
			if err == nil && !output.Applied {
				err = fmt.Errorf("game-%d was not applied", i)
			}
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.Require().NoError(err)
	}

	shared, err := s.repo.GetScoreRecord(ctx, &GetScoreRecordInput{UserID: "shared"})
	s.Require().NoError(err)
	s.Equal(games, shared.GamesPlayed)
	s.Equal(games, shared.Wins)
	s.Equal(2*games, shared.CumulativeScore)

	output, err := s.repo.GetScoreRecords(ctx, &GetScoreRecordsInput{})
	s.Require().NoError(err)
	s.Len(output.Records, games+1)

	seqs := make(map[int64]bool)
	for _, record := range output.Records {
		s.False(seqs[record.CreatedSeq], "duplicate creation sequence %d", record.CreatedSeq)
		seqs[record.CreatedSeq] = true
	}
}

func (s *RedisRepositoryTestSuite) TestGetScoreRecordsInCreationOrder() {
	ctx := context.Background()

	_, err := s.repo.ApplyGameResult(ctx, &ApplyGameResultInput{
		GameID:    "game-1",
		PlayerIDs: []string{"zed", "amy"},
		WinnerID:  "amy",
		Points:    2,
		Timestamp: s.testNow,
	})
	s.Require().NoError(err)

	_, err = s.repo.ApplyGameResult(ctx, &ApplyGameResultInput{
		GameID:    "game-2",
		PlayerIDs: []string{"amy", "bea"},
		WinnerID:  "bea",
		Points:    1,
		Timestamp: s.testNow,
	})
	s.Require().NoError(err)

	output, err := s.repo.GetScoreRecords(ctx, &GetScoreRecordsInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Records, 3)
	s.Equal("zed", output.Records[0].UserID)
	s.Equal("amy", output.Records[1].UserID)
	s.Equal("bea", output.Records[2].UserID)
	s.Equal(2, output.Records[1].GamesPlayed)
}

func (s *RedisRepositoryTestSuite) TestGetScoreRecordNotFound() {
	_, err := s.repo.GetScoreRecord(context.Background(), &GetScoreRecordInput{UserID: "nobody"})
	s.ErrorIs(err, ErrScoreNotFound)

	output, err := s.repo.GetScoreRecords(context.Background(), &GetScoreRecordsInput{})
	s.Require().NoError(err)
	s.Empty(output.Records)
}
