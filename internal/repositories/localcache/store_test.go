package localcache_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/ProLedger/project_ledger_app/internal/apperrors"
	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	"github.com/ProLedger/project_ledger_app/internal/repositories/localcache"
)

type StoreTestSuite struct {
	suite.Suite
	mr    *miniredis.Miniredis
	store *localcache.Store
	ctx   context.Context
}

func (s *StoreTestSuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())
	rdb := redis.NewClient(&redis.Options{Addr: s.mr.Addr()})
	s.store = localcache.NewStore(rdb)
	s.ctx = context.Background()
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) TestGetCollection_MissReportsNotFound() {
	var users []domain.User
	err := s.store.GetCollection(s.ctx, "users", &users)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *StoreTestSuite) TestReplaceThenGetRoundTrips() {
	in := []domain.User{
		{UserID: "u-1", Username: "dana", Role: domain.RoleAdmin},
		{UserID: "u-2", Username: "yossi", Role: domain.RoleUser},
	}
	s.Require().NoError(s.store.ReplaceCollection(s.ctx, "users", in))

	var out []domain.User
	s.Require().NoError(s.store.GetCollection(s.ctx, "users", &out))
	s.Len(out, 2)
	s.Equal("dana", out[0].Username)
	s.Equal(domain.RoleUser, out[1].Role)
}

func (s *StoreTestSuite) TestReplaceCollection_LastWriteWins() {
	// Whole-collection writes mean concurrent writers race: whoever
	// writes last overwrites the other's changes wholesale.
	first := []domain.Category{{CategoryID: "c-1", Name: "Materials"}}
	second := []domain.Category{{CategoryID: "c-2", Name: "Labor"}}

	s.Require().NoError(s.store.ReplaceCollection(s.ctx, "categories", first))
	s.Require().NoError(s.store.ReplaceCollection(s.ctx, "categories", second))

	var out []domain.Category
	s.Require().NoError(s.store.GetCollection(s.ctx, "categories", &out))
	s.Require().Len(out, 1)
	s.Equal("c-2", out[0].CategoryID)
}

var testLogger = slog.New(slog.NewTextHandler(discardWriter{}, &slog.HandlerOptions{Level: slog.LevelError}))

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
